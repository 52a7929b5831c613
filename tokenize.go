package utilcss

import "strings"

// Tokenize splits a raw class string into its ordered modifier chain and the
// base utility remainder, e.g. "dark:hover:bg-red-500/40" into
// ["dark", "hover"] and "bg-red-500/40".
//
// Colons are only split points at bracket/paren depth zero, so arbitrary
// values such as bg-[url(http://x)] survive intact. Splitting stops at the
// first segment that is not a known modifier spelling; everything from that
// segment on, rejoined with ':', is the base utility string.
//
// A leading '!' on the base segment marks the utility important and is
// stripped before further parsing.
func Tokenize(raw string, custom *CustomVariants) (modifiers []string, base string, important bool) {
	segments := splitTopLevel(raw, ':')

	i := 0
	for ; i < len(segments); i++ {
		if !isKnownModifier(segments[i], custom) {
			break
		}
	}

	modifiers = segments[:i]
	base = strings.Join(segments[i:], ":")

	if strings.HasPrefix(base, "!") {
		important = true
		base = base[1:]
	}

	return modifiers, base, important
}

// splitTopLevel splits s on sep, treating [...] and (...) spans as opaque.
// One level of nesting is all the generated class grammar needs; deeper
// nesting simply keeps the depth counter above zero and is never split.
func splitTopLevel(s string, sep byte) []string {
	var parts []string
	depth := 0
	start := 0

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[', '(':
			depth++
		case ']', ')':
			if depth > 0 {
				depth--
			}
		case sep:
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}

	parts = append(parts, s[start:])
	return parts
}

// isKnownModifier reports whether segment belongs to the closed modifier
// vocabulary: state names, breakpoints, dark, group-*/peer-* states,
// motion/contrast/orientation preferences, print/screen, or a registered
// custom variant.
func isKnownModifier(segment string, custom *CustomVariants) bool {
	if segment == "" {
		return false
	}

	if _, ok := stateModifiers[segment]; ok {
		return true
	}
	if _, ok := defaultBreakpoints[segment]; ok {
		return true
	}

	switch segment {
	case "dark",
		"motion-safe", "motion-reduce",
		"contrast-more", "contrast-less",
		"portrait", "landscape",
		"print", "screen":
		return true
	}

	if state, ok := strings.CutPrefix(segment, "group-"); ok {
		_, known := stateModifiers[state]
		return known
	}
	if state, ok := strings.CutPrefix(segment, "peer-"); ok {
		_, known := stateModifiers[state]
		return known
	}

	return custom != nil && custom.Has(segment)
}
