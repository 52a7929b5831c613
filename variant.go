package utilcss

import (
	"fmt"
	"sort"
	"strings"
)

// ModifierKind is the semantic category of a variant modifier.
type ModifierKind int

// Kinds in canonical cascade order. Sorting modifiers by kind yields the
// deterministic ordering required for stable selector output.
const (
	ModResponsive ModifierKind = iota
	ModDark
	ModFocusWithin
	ModState
	ModGroupState
	ModPeerState
	ModMotion
	ModContrast
	ModOrientation
	ModPrintScreen
	ModCustom
)

// Modifier is a single classified variant in a modifier chain.
type Modifier struct {
	Kind     ModifierKind
	Name     string // canonical spelling, e.g. "hover", "md", "group-focus"
	Source   string // text as written
	Selector string // custom variants only: selector fragment with '&' placeholder
}

// VariantCombination is the resolved, deduplicated, canonically ordered form
// of a modifier chain.
type VariantCombination struct {
	Modifiers       []Modifier
	SpecificityRank uint32 // lower = earlier in cascade
	MediaQuery      string // empty when the combination needs no @media wrapper
}

// CustomVariant is a user-registered modifier. Selector fragments use '&' as
// the placeholder for the element selector; Expands lists other variant names
// the custom variant stands for.
type CustomVariant struct {
	Name     string
	Selector string
	Media    string
	Expands  []string
}

// CustomVariants is an append-only, immutable set of registered custom
// variants. Build it once at startup and share it freely; it is never
// mutated after construction.
type CustomVariants struct {
	m map[string]CustomVariant
}

// NewCustomVariants builds a variant set from the given definitions.
func NewCustomVariants(variants ...CustomVariant) *CustomVariants {
	m := make(map[string]CustomVariant, len(variants))
	for _, v := range variants {
		m[v.Name] = v
	}
	return &CustomVariants{m: m}
}

// With returns a copy of the set extended with v. The receiver is unchanged.
func (c *CustomVariants) With(v CustomVariant) *CustomVariants {
	m := make(map[string]CustomVariant, len(c.m)+1)
	for k, existing := range c.m {
		m[k] = existing
	}
	m[v.Name] = v
	return &CustomVariants{m: m}
}

// Has reports whether name is a registered custom variant.
func (c *CustomVariants) Has(name string) bool {
	if c == nil {
		return false
	}
	_, ok := c.m[name]
	return ok
}

func (c *CustomVariants) get(name string) (CustomVariant, bool) {
	if c == nil {
		return CustomVariant{}, false
	}
	v, ok := c.m[name]
	return v, ok
}

// maxVariantExpansionDepth bounds the fixed-point expansion of custom
// variants that themselves name other variants.
const maxVariantExpansionDepth = 8

// ResolveVariants classifies each modifier text, expands custom variants,
// rejects conflicting combinations, and returns the canonical ordering plus
// the media query the combination implies.
//
// Unknown modifier text is an error here: by the time the resolver runs, the
// tokenizer has already folded unrecognized segments into the base utility,
// so anything left unclassifiable indicates a typo the caller should see.
func ResolveVariants(texts []string, custom *CustomVariants) (VariantCombination, error) {
	expanded, err := expandModifiers(texts, custom, 0)
	if err != nil {
		return VariantCombination{}, err
	}

	var mods []Modifier
	seen := make(map[string]bool, len(expanded))
	for _, m := range expanded {
		key := fmt.Sprintf("%d/%s", m.Kind, m.Name)
		if seen[key] {
			continue // duplicate identical modifiers collapse to one
		}
		seen[key] = true
		mods = append(mods, m)
	}

	if err := checkConflicts(mods); err != nil {
		return VariantCombination{}, err
	}

	sort.SliceStable(mods, func(i, j int) bool {
		if mods[i].Kind != mods[j].Kind {
			return mods[i].Kind < mods[j].Kind
		}
		if mods[i].Kind == ModResponsive {
			return defaultBreakpoints[mods[i].Name].Order < defaultBreakpoints[mods[j].Name].Order
		}
		return false
	})

	return VariantCombination{
		Modifiers:       mods,
		SpecificityRank: specificityRank(mods),
		MediaQuery:      buildMediaQuery(mods, custom),
	}, nil
}

func expandModifiers(texts []string, custom *CustomVariants, depth int) ([]Modifier, error) {
	if depth > maxVariantExpansionDepth {
		return nil, &VariantConflictError{Modifiers: texts, Reason: "custom variant expansion too deep"}
	}

	var mods []Modifier
	for _, text := range texts {
		if v, ok := custom.get(text); ok && len(v.Expands) > 0 {
			sub, err := expandModifiers(v.Expands, custom, depth+1)
			if err != nil {
				return nil, err
			}
			mods = append(mods, sub...)
			continue
		}

		m, err := classifyModifier(text, custom)
		if err != nil {
			return nil, err
		}
		mods = append(mods, m)
	}

	return mods, nil
}

func classifyModifier(text string, custom *CustomVariants) (Modifier, error) {
	if text == "focus-within" {
		return Modifier{Kind: ModFocusWithin, Name: text, Source: text}, nil
	}
	if _, ok := stateModifiers[text]; ok {
		return Modifier{Kind: ModState, Name: text, Source: text}, nil
	}
	if _, ok := defaultBreakpoints[text]; ok {
		return Modifier{Kind: ModResponsive, Name: text, Source: text}, nil
	}

	switch text {
	case "dark":
		return Modifier{Kind: ModDark, Name: text, Source: text}, nil
	case "motion-safe", "motion-reduce":
		return Modifier{Kind: ModMotion, Name: text, Source: text}, nil
	case "contrast-more", "contrast-less":
		return Modifier{Kind: ModContrast, Name: text, Source: text}, nil
	case "portrait", "landscape":
		return Modifier{Kind: ModOrientation, Name: text, Source: text}, nil
	case "print", "screen":
		return Modifier{Kind: ModPrintScreen, Name: text, Source: text}, nil
	}

	if state, ok := strings.CutPrefix(text, "group-"); ok {
		if _, known := stateModifiers[state]; known {
			return Modifier{Kind: ModGroupState, Name: text, Source: text}, nil
		}
	}
	if state, ok := strings.CutPrefix(text, "peer-"); ok {
		if _, known := stateModifiers[state]; known {
			return Modifier{Kind: ModPeerState, Name: text, Source: text}, nil
		}
	}

	if v, ok := custom.get(text); ok {
		return Modifier{Kind: ModCustom, Name: text, Source: text, Selector: v.Selector}, nil
	}

	return Modifier{}, &TokenizeConflictError{Modifier: text}
}

func checkConflicts(mods []Modifier) error {
	var breakpoints, mediaTypes []string
	for _, m := range mods {
		switch m.Kind {
		case ModResponsive:
			breakpoints = append(breakpoints, m.Name)
		case ModPrintScreen:
			mediaTypes = append(mediaTypes, m.Name)
		}
	}

	if len(breakpoints) > 1 {
		return &VariantConflictError{Modifiers: breakpoints, Reason: "at most one responsive breakpoint allowed"}
	}
	if len(mediaTypes) > 1 {
		return &VariantConflictError{Modifiers: mediaTypes, Reason: "print and screen are mutually exclusive"}
	}

	return nil
}

// specificityRank orders combinations for cascade emission: base utilities
// first, then responsive tiers ascending, then dark, then stateful variants.
func specificityRank(mods []Modifier) uint32 {
	var rank uint32
	for _, m := range mods {
		switch m.Kind {
		case ModResponsive:
			rank += uint32(defaultBreakpoints[m.Name].Order+1) << 16
		case ModDark:
			rank += 1 << 12
		case ModFocusWithin, ModState, ModGroupState, ModPeerState:
			rank += 1 << 8
		case ModMotion, ModContrast, ModOrientation, ModPrintScreen:
			rank += 1 << 4
		case ModCustom:
			rank++
		}
	}
	return rank
}

// buildMediaQuery synthesizes the @media condition for the combination:
// media type first, then features in canonical order.
func buildMediaQuery(mods []Modifier, custom *CustomVariants) string {
	var parts []string

	for _, m := range mods {
		if m.Kind == ModPrintScreen {
			parts = append(parts, m.Name)
		}
	}

	for _, m := range mods {
		switch m.Kind {
		case ModResponsive:
			parts = append(parts, fmt.Sprintf("(min-width: %dpx)", defaultBreakpoints[m.Name].MinWidthPx))
		case ModDark:
			parts = append(parts, "(prefers-color-scheme: dark)")
		case ModMotion:
			if m.Name == "motion-reduce" {
				parts = append(parts, "(prefers-reduced-motion: reduce)")
			} else {
				parts = append(parts, "(prefers-reduced-motion: no-preference)")
			}
		case ModContrast:
			if m.Name == "contrast-more" {
				parts = append(parts, "(prefers-contrast: more)")
			} else {
				parts = append(parts, "(prefers-contrast: less)")
			}
		case ModOrientation:
			parts = append(parts, fmt.Sprintf("(orientation: %s)", m.Name))
		case ModCustom:
			if v, ok := custom.get(m.Name); ok && v.Media != "" {
				parts = append(parts, v.Media)
			}
		}
	}

	return strings.Join(parts, " and ")
}

// ApplySelector rewrites the escaped element selector according to the
// combination: pseudo-class modifiers append chained suffixes in reverse
// canonical rank (the innermost state is applied last), group/peer modifiers
// rewrite into ancestor/sibling form, custom selector fragments substitute
// '&'.
func (v VariantCombination) ApplySelector(selector string) string {
	var pseudo []Modifier
	for _, m := range v.Modifiers {
		switch m.Kind {
		case ModFocusWithin, ModState:
			pseudo = append(pseudo, m)
		}
	}
	for i := len(pseudo) - 1; i >= 0; i-- {
		selector += stateModifiers[pseudo[i].Name]
	}

	for _, m := range v.Modifiers {
		switch m.Kind {
		case ModGroupState:
			state := strings.TrimPrefix(m.Name, "group-")
			selector = ".group" + stateModifiers[state] + " " + selector
		case ModPeerState:
			state := strings.TrimPrefix(m.Name, "peer-")
			selector = ".peer" + stateModifiers[state] + " ~ " + selector
		case ModCustom:
			// Selector fragments only; media-only custom variants are
			// handled in buildMediaQuery.
			if m.Selector != "" {
				if strings.Contains(m.Selector, "&") {
					selector = strings.ReplaceAll(m.Selector, "&", selector)
				} else {
					selector += m.Selector
				}
			}
		}
	}

	return selector
}
