package utilcss

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name          string
		raw           string
		wantModifiers []string
		wantBase      string
		wantImportant bool
	}{
		{
			name:     "bare utility",
			raw:      "flex",
			wantBase: "flex",
		},
		{
			name:          "single state modifier",
			raw:           "hover:bg-blue-500",
			wantModifiers: []string{"hover"},
			wantBase:      "bg-blue-500",
		},
		{
			name:          "modifier chain keeps written order",
			raw:           "dark:hover:bg-red-500/40",
			wantModifiers: []string{"dark", "hover"},
			wantBase:      "bg-red-500/40",
		},
		{
			name:          "responsive modifier",
			raw:           "md:flex",
			wantModifiers: []string{"md"},
			wantBase:      "flex",
		},
		{
			name:     "colon inside brackets is not a split point",
			raw:      "bg-[url(http://example.com/x.png)]",
			wantBase: "bg-[url(http://example.com/x.png)]",
		},
		{
			name:          "modifier before bracketed value",
			raw:           "hover:w-[calc(100%_-_2rem)]",
			wantModifiers: []string{"hover"},
			wantBase:      "w-[calc(100%_-_2rem)]",
		},
		{
			name:     "colon inside parens is not a split point",
			raw:      "mask-size-(--my:var)",
			wantBase: "mask-size-(--my:var)",
		},
		{
			name:          "important prefix on base",
			raw:           "!font-bold",
			wantBase:      "font-bold",
			wantImportant: true,
		},
		{
			name:          "important after modifiers",
			raw:           "hover:!p-4",
			wantModifiers: []string{"hover"},
			wantBase:      "p-4",
			wantImportant: true,
		},
		{
			name:     "unknown segment stops modifier consumption",
			raw:      "foo:bar",
			wantBase: "foo:bar",
		},
		{
			name:          "unknown segment folds the rest into the base",
			raw:           "md:foo:hover:flex",
			wantModifiers: []string{"md"},
			wantBase:      "foo:hover:flex",
		},
		{
			name:          "group state modifier",
			raw:           "group-hover:underline",
			wantModifiers: []string{"group-hover"},
			wantBase:      "underline",
		},
		{
			name:          "peer state modifier",
			raw:           "peer-checked:block",
			wantModifiers: []string{"peer-checked"},
			wantBase:      "block",
		},
		{
			name:          "media preference modifiers",
			raw:           "motion-reduce:print:hidden",
			wantModifiers: []string{"motion-reduce", "print"},
			wantBase:      "hidden",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			modifiers, base, important := Tokenize(tt.raw, nil)
			if len(tt.wantModifiers) == 0 {
				require.Empty(t, modifiers)
			} else {
				require.Equal(t, tt.wantModifiers, modifiers)
			}
			require.Equal(t, tt.wantBase, base)
			require.Equal(t, tt.wantImportant, important)
		})
	}
}

func TestTokenize_CustomVariants(t *testing.T) {
	custom := NewCustomVariants(CustomVariant{Name: "aria-busy", Selector: `&[aria-busy="true"]`})

	modifiers, base, important := Tokenize("aria-busy:opacity-40", custom)
	require.Equal(t, []string{"aria-busy"}, modifiers)
	require.Equal(t, "opacity-40", base)
	require.False(t, important)

	// the same spelling without a registration is base text
	modifiers, base, _ = Tokenize("aria-busy:opacity-40", nil)
	require.Empty(t, modifiers)
	require.Equal(t, "aria-busy:opacity-40", base)
}

func TestSplitTopLevel(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "no separator", in: "flex", want: []string{"flex"}},
		{name: "plain split", in: "a:b:c", want: []string{"a", "b", "c"}},
		{name: "brackets are opaque", in: "a:b-[x:y]:c", want: []string{"a", "b-[x:y]", "c"}},
		{name: "parens are opaque", in: "a:b-(x:y)", want: []string{"a", "b-(x:y)"}},
		{name: "unbalanced closer is ignored", in: "a]:b", want: []string{"a]", "b"}},
		{name: "trailing separator yields empty segment", in: "a:", want: []string{"a", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, splitTopLevel(tt.in, ':'))
		})
	}
}

func TestIsKnownModifier(t *testing.T) {
	require.True(t, isKnownModifier("hover", nil))
	require.True(t, isKnownModifier("2xl", nil))
	require.True(t, isKnownModifier("dark", nil))
	require.True(t, isKnownModifier("group-focus", nil))
	require.True(t, isKnownModifier("peer-disabled", nil))

	require.False(t, isKnownModifier("", nil))
	require.False(t, isKnownModifier("group-bogus", nil))
	require.False(t, isKnownModifier("bg-blue-500", nil))
}
