package utilcss

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveVariants_CanonicalOrder(t *testing.T) {
	// written order hover:md must resolve as md, hover
	combo, err := ResolveVariants([]string{"hover", "md"}, nil)
	require.NoError(t, err)
	require.Len(t, combo.Modifiers, 2)
	require.Equal(t, ModResponsive, combo.Modifiers[0].Kind)
	require.Equal(t, "md", combo.Modifiers[0].Name)
	require.Equal(t, ModState, combo.Modifiers[1].Kind)
	require.Equal(t, "hover", combo.Modifiers[1].Name)
	require.Equal(t, "(min-width: 768px)", combo.MediaQuery)
}

func TestResolveVariants_OrderIndependent(t *testing.T) {
	permutations := [][]string{
		{"hover", "md", "dark"},
		{"hover", "dark", "md"},
		{"md", "hover", "dark"},
		{"md", "dark", "hover"},
		{"dark", "hover", "md"},
		{"dark", "md", "hover"},
	}

	first, err := ResolveVariants(permutations[0], nil)
	require.NoError(t, err)

	for _, perm := range permutations[1:] {
		combo, err := ResolveVariants(perm, nil)
		require.NoError(t, err)
		require.Equal(t, first, combo, "permutation %v", perm)
		require.Equal(t, first.ApplySelector(".x"), combo.ApplySelector(".x"))
	}
}

func TestResolveVariants_ConflictNamesModifiers(t *testing.T) {
	_, err := ResolveVariants([]string{"sm", "md"}, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "sm")
	require.Contains(t, err.Error(), "md")
}

func TestResolveVariants_DuplicatesCollapse(t *testing.T) {
	combo, err := ResolveVariants([]string{"hover", "hover"}, nil)
	require.NoError(t, err)
	require.Len(t, combo.Modifiers, 1)
}

func TestResolveVariants_Conflicts(t *testing.T) {
	tests := []struct {
		name  string
		texts []string
	}{
		{name: "two breakpoints", texts: []string{"sm", "lg"}},
		{name: "print and screen", texts: []string{"print", "screen"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveVariants(tt.texts, nil)
			require.Error(t, err)
			var conflict *VariantConflictError
			require.ErrorAs(t, err, &conflict)
		})
	}
}

func TestResolveVariants_UnknownModifier(t *testing.T) {
	_, err := ResolveVariants([]string{"bogus"}, nil)
	require.Error(t, err)
	var unknown *TokenizeConflictError
	require.ErrorAs(t, err, &unknown)
	require.Contains(t, err.Error(), "bogus")
}

func TestResolveVariants_MediaQueries(t *testing.T) {
	tests := []struct {
		name  string
		texts []string
		want  string
	}{
		{name: "breakpoint", texts: []string{"sm"}, want: "(min-width: 640px)"},
		{name: "dark", texts: []string{"dark"}, want: "(prefers-color-scheme: dark)"},
		{name: "breakpoint and dark", texts: []string{"dark", "md"}, want: "(min-width: 768px) and (prefers-color-scheme: dark)"},
		{name: "motion reduce", texts: []string{"motion-reduce"}, want: "(prefers-reduced-motion: reduce)"},
		{name: "motion safe", texts: []string{"motion-safe"}, want: "(prefers-reduced-motion: no-preference)"},
		{name: "contrast more", texts: []string{"contrast-more"}, want: "(prefers-contrast: more)"},
		{name: "orientation", texts: []string{"landscape"}, want: "(orientation: landscape)"},
		{name: "media type comes first", texts: []string{"print", "dark"}, want: "print and (prefers-color-scheme: dark)"},
		{name: "state only needs no media", texts: []string{"hover"}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			combo, err := ResolveVariants(tt.texts, nil)
			require.NoError(t, err)
			require.Equal(t, tt.want, combo.MediaQuery)
		})
	}
}

func TestResolveVariants_SpecificityRank(t *testing.T) {
	base, err := ResolveVariants(nil, nil)
	require.NoError(t, err)

	sm, err := ResolveVariants([]string{"sm"}, nil)
	require.NoError(t, err)
	lg, err := ResolveVariants([]string{"lg"}, nil)
	require.NoError(t, err)
	dark, err := ResolveVariants([]string{"dark"}, nil)
	require.NoError(t, err)

	require.Less(t, base.SpecificityRank, sm.SpecificityRank)
	require.Less(t, sm.SpecificityRank, lg.SpecificityRank)
	require.Less(t, dark.SpecificityRank, sm.SpecificityRank)
}

func TestApplySelector(t *testing.T) {
	tests := []struct {
		name  string
		texts []string
		want  string
	}{
		{name: "no modifiers", texts: nil, want: ".x"},
		{name: "hover", texts: []string{"hover"}, want: ".x:hover"},
		{name: "first child", texts: []string{"first"}, want: ".x:first-child"},
		{name: "odd child", texts: []string{"odd"}, want: ".x:nth-child(odd)"},
		{name: "focus-within chains before state", texts: []string{"hover", "focus-within"}, want: ".x:hover:focus-within"},
		{name: "group state", texts: []string{"group-hover"}, want: ".group:hover .x"},
		{name: "peer state", texts: []string{"peer-checked"}, want: ".peer:checked ~ .x"},
		{name: "responsive leaves selector alone", texts: []string{"md"}, want: ".x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			combo, err := ResolveVariants(tt.texts, nil)
			require.NoError(t, err)
			require.Equal(t, tt.want, combo.ApplySelector(".x"))
		})
	}
}

func TestCustomVariants(t *testing.T) {
	custom := NewCustomVariants(
		CustomVariant{Name: "children", Selector: "& > *"},
		CustomVariant{Name: "aria-busy", Selector: `[aria-busy="true"]`},
		CustomVariant{Name: "wide", Media: "(min-width: 1920px)"},
		CustomVariant{Name: "hocus", Expands: []string{"hover", "focus"}},
	)

	t.Run("selector fragment with placeholder", func(t *testing.T) {
		combo, err := ResolveVariants([]string{"children"}, custom)
		require.NoError(t, err)
		require.Equal(t, ".x > *", combo.ApplySelector(".x"))
	})

	t.Run("selector fragment without placeholder appends", func(t *testing.T) {
		combo, err := ResolveVariants([]string{"aria-busy"}, custom)
		require.NoError(t, err)
		require.Equal(t, `.x[aria-busy="true"]`, combo.ApplySelector(".x"))
	})

	t.Run("media-only custom variant", func(t *testing.T) {
		combo, err := ResolveVariants([]string{"wide"}, custom)
		require.NoError(t, err)
		require.Equal(t, "(min-width: 1920px)", combo.MediaQuery)
		require.Equal(t, ".x", combo.ApplySelector(".x"))
	})

	t.Run("expansion into state modifiers", func(t *testing.T) {
		combo, err := ResolveVariants([]string{"hocus"}, custom)
		require.NoError(t, err)
		require.Len(t, combo.Modifiers, 2)
		require.Equal(t, ".x:focus:hover", combo.ApplySelector(".x"))
	})

	t.Run("with returns an extended copy", func(t *testing.T) {
		extended := custom.With(CustomVariant{Name: "rtl", Selector: `[dir="rtl"] &`})
		require.True(t, extended.Has("rtl"))
		require.True(t, extended.Has("children"))
		require.False(t, custom.Has("rtl"))
	})
}

func TestCustomVariants_ExpansionDepthLimit(t *testing.T) {
	custom := NewCustomVariants(CustomVariant{Name: "loop", Expands: []string{"loop"}})

	_, err := ResolveVariants([]string{"loop"}, custom)
	require.Error(t, err)
	require.Contains(t, err.Error(), "too deep")
}
