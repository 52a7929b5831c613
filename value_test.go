package utilcss

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		name   string
		rest   string
		prefix string
		want   ValueSpec
	}{
		{
			name:   "scale keyword",
			rest:   "full",
			prefix: "w",
			want:   ValueSpec{Kind: ValueKeyword, Keyword: "full"},
		},
		{
			name:   "palette keyword",
			rest:   "red-500",
			prefix: "bg",
			want:   ValueSpec{Kind: ValueKeyword, Keyword: "red-500"},
		},
		{
			name:   "arbitrary value",
			rest:   "[3.5rem]",
			prefix: "w",
			want:   ValueSpec{Kind: ValueArbitrary, Raw: "3.5rem"},
		},
		{
			name:   "arbitrary value with unescaped spaces",
			rest:   "[1px_solid_black]",
			prefix: "border",
			want:   ValueSpec{Kind: ValueArbitrary, Raw: "1px solid black"},
		},
		{
			name:   "arbitrary value with escaped underscore",
			rest:   `[var(--my\_var)]`,
			prefix: "w",
			want:   ValueSpec{Kind: ValueArbitrary, Raw: "var(--my_var)"},
		},
		{
			name:   "custom property reference",
			rest:   "(--m)",
			prefix: "mask-size",
			want:   ValueSpec{Kind: ValueCustomProperty, VarName: "--m"},
		},
		{
			name:   "fraction",
			rest:   "1/2",
			prefix: "w",
			want:   ValueSpec{Kind: ValueFraction, Num: 1, Den: 2},
		},
		{
			name:   "fraction on a color prefix is still a fraction",
			rest:   "1/2",
			prefix: "bg",
			want:   ValueSpec{Kind: ValueFraction, Num: 1, Den: 2},
		},
		{
			name:   "color with opacity",
			rest:   "red-500/50",
			prefix: "bg",
			want:   ValueSpec{Kind: ValueColorOpacity, ColorKey: "red-500", Opacity: 50},
		},
		{
			name:   "opacity suffix on non-color prefix is a keyword",
			rest:   "red-500/50",
			prefix: "grid-cols",
			want:   ValueSpec{Kind: ValueKeyword, Keyword: "red-500/50"},
		},
		{
			name:   "opacity out of range is keyword",
			rest:   "red-500/150",
			prefix: "bg",
			want:   ValueSpec{Kind: ValueKeyword, Keyword: "red-500/150"},
		},
		{
			name:   "non-numeric opacity is keyword",
			rest:   "red-500/half",
			prefix: "bg",
			want:   ValueSpec{Kind: ValueKeyword, Keyword: "red-500/half"},
		},
		{
			name:   "unterminated bracket falls through to keyword",
			rest:   "[3.5rem",
			prefix: "w",
			want:   ValueSpec{Kind: ValueKeyword, Keyword: "[3.5rem"},
		},
		{
			name:   "trailing text after bracket falls through to keyword",
			rest:   "[3.5rem]x",
			prefix: "w",
			want:   ValueSpec{Kind: ValueKeyword, Keyword: "[3.5rem]x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ParseValue(tt.rest, tt.prefix))
		})
	}
}

func TestCutWrapped(t *testing.T) {
	inner, ok := cutWrapped("[x]", '[', ']')
	require.True(t, ok)
	require.Equal(t, "x", inner)

	_, ok = cutWrapped("[]", '[', ']')
	require.True(t, ok)

	_, ok = cutWrapped("[", '[', ']')
	require.False(t, ok)

	_, ok = cutWrapped("x[y]", '[', ']')
	require.False(t, ok)
}

func TestUnescapeArbitrary(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"3.5rem", "3.5rem"},
		{"1px_solid_black", "1px solid black"},
		{`a\_b`, "a_b"},
		{`a\_b_c`, "a_b c"},
		{`trailing\`, `trailing\`},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, unescapeArbitrary(tt.in), "input %q", tt.in)
	}
}
