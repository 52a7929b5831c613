package utilcss

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultRegistry builds the standard matcher set. Registration order below
// is the priority tiebreak, so it must stay stable; new families are appended
// to the end of their tier.
func DefaultRegistry() *Registry {
	return NewRegistry(
		displayMatcher(),
		flexGridMatcher(),
		spacingMatcher(),
		sizingMatcher(),
		positionMatcher(),
		scaleAxisMatcher(),
		translateMatcher(),
		rotateMatcher(),
		scaleMatcher(),
		effectsMatcher(),
		borderWidthMatcher(),
		textMatcher(),
		fontMatcher(),
		colorMatcher(),
	)
}

// displayMatcher handles bare display and position keywords.
func displayMatcher() Matcher {
	statics := map[string][]CssDeclaration{
		"block":        {{Property: "display", Value: "block"}},
		"inline-block": {{Property: "display", Value: "inline-block"}},
		"inline":       {{Property: "display", Value: "inline"}},
		"flex":         {{Property: "display", Value: "flex"}},
		"inline-flex":  {{Property: "display", Value: "inline-flex"}},
		"grid":         {{Property: "display", Value: "grid"}},
		"inline-grid":  {{Property: "display", Value: "inline-grid"}},
		"hidden":       {{Property: "display", Value: "none"}},
		"static":       {{Property: "position", Value: "static"}},
		"relative":     {{Property: "position", Value: "relative"}},
		"absolute":     {{Property: "position", Value: "absolute"}},
		"fixed":        {{Property: "position", Value: "fixed"}},
		"sticky":       {{Property: "position", Value: "sticky"}},
	}

	return &matcherFunc{
		name:     "display",
		category: CategoryLayout,
		priority: 90,
		parse: func(base string) []CssDeclaration {
			return cloneDecls(statics[base])
		},
	}
}

func flexGridMatcher() Matcher {
	statics := map[string][]CssDeclaration{
		"flex-row":         {{Property: "flex-direction", Value: "row"}},
		"flex-row-reverse": {{Property: "flex-direction", Value: "row-reverse"}},
		"flex-col":         {{Property: "flex-direction", Value: "column"}},
		"flex-col-reverse": {{Property: "flex-direction", Value: "column-reverse"}},
		"flex-wrap":        {{Property: "flex-wrap", Value: "wrap"}},
		"flex-nowrap":      {{Property: "flex-wrap", Value: "nowrap"}},
		"flex-1":           {{Property: "flex", Value: "1 1 0%"}},
		"flex-auto":        {{Property: "flex", Value: "1 1 auto"}},
		"flex-none":        {{Property: "flex", Value: "none"}},
		"grow":             {{Property: "flex-grow", Value: "1"}},
		"grow-0":           {{Property: "flex-grow", Value: "0"}},
		"shrink":           {{Property: "flex-shrink", Value: "1"}},
		"shrink-0":         {{Property: "flex-shrink", Value: "0"}},

		"justify-start":   {{Property: "justify-content", Value: "flex-start"}},
		"justify-center":  {{Property: "justify-content", Value: "center"}},
		"justify-end":     {{Property: "justify-content", Value: "flex-end"}},
		"justify-between": {{Property: "justify-content", Value: "space-between"}},
		"justify-around":  {{Property: "justify-content", Value: "space-around"}},
		"justify-evenly":  {{Property: "justify-content", Value: "space-evenly"}},

		"items-start":    {{Property: "align-items", Value: "flex-start"}},
		"items-center":   {{Property: "align-items", Value: "center"}},
		"items-end":      {{Property: "align-items", Value: "flex-end"}},
		"items-stretch":  {{Property: "align-items", Value: "stretch"}},
		"items-baseline": {{Property: "align-items", Value: "baseline"}},

		"self-start":  {{Property: "align-self", Value: "flex-start"}},
		"self-center": {{Property: "align-self", Value: "center"}},
		"self-end":    {{Property: "align-self", Value: "flex-end"}},

		"col-span-full": {{Property: "grid-column", Value: "1 / -1"}},
		"row-span-full": {{Property: "grid-row", Value: "1 / -1"}},
	}

	return &matcherFunc{
		name:     "flexgrid",
		category: CategoryFlexGrid,
		priority: 80,
		parse: func(base string) []CssDeclaration {
			if d, ok := statics[base]; ok {
				return cloneDecls(d)
			}

			if call, ok := splitCall(base, "grid-cols"); ok && call.Value != nil {
				if n, ok := keywordInt(call.Value); ok {
					return []CssDeclaration{{Property: "grid-template-columns", Value: fmt.Sprintf("repeat(%d, minmax(0, 1fr))", n)}}
				}
			}
			if call, ok := splitCall(base, "col-span"); ok && call.Value != nil {
				if n, ok := keywordInt(call.Value); ok {
					return []CssDeclaration{{Property: "grid-column", Value: fmt.Sprintf("span %d / span %d", n, n)}}
				}
			}
			if call, ok := splitCall(base, "row-span"); ok && call.Value != nil {
				if n, ok := keywordInt(call.Value); ok {
					return []CssDeclaration{{Property: "grid-row", Value: fmt.Sprintf("span %d / span %d", n, n)}}
				}
			}

			return nil
		},
	}
}

// spacingPrefixes pairs each spacing prefix with the properties it sets.
// Order matters for nothing but readability; lookups go through the map.
var spacingPrefixes = map[string][]string{
	"p":  {"padding"},
	"px": {"padding-left", "padding-right"},
	"py": {"padding-top", "padding-bottom"},
	"pt": {"padding-top"},
	"pr": {"padding-right"},
	"pb": {"padding-bottom"},
	"pl": {"padding-left"},

	"m":  {"margin"},
	"mx": {"margin-left", "margin-right"},
	"my": {"margin-top", "margin-bottom"},
	"mt": {"margin-top"},
	"mr": {"margin-right"},
	"mb": {"margin-bottom"},
	"ml": {"margin-left"},

	"gap":   {"gap"},
	"gap-x": {"column-gap"},
	"gap-y": {"row-gap"},
}

func spacingMatcher() Matcher {
	// Longest prefixes first so gap-x wins over gap.
	ordered := []string{
		"gap-x", "gap-y", "gap",
		"px", "py", "pt", "pr", "pb", "pl", "p",
		"mx", "my", "mt", "mr", "mb", "ml", "m",
	}

	return &matcherFunc{
		name:     "spacing",
		category: CategorySpacing,
		priority: 70,
		parse: func(base string) []CssDeclaration {
			for _, prefix := range ordered {
				call, ok := splitCall(base, prefix)
				if !ok || call.Value == nil {
					continue
				}
				// auto margins (m-auto, mx-auto)
				if prefix[0] == 'm' && call.Value.Kind == ValueKeyword && call.Value.Keyword == "auto" {
					return propsWithValue(spacingPrefixes[prefix], "auto")
				}
				v, ok := spacingValue(call.Value, call.Negative)
				if !ok {
					return nil
				}
				return propsWithValue(spacingPrefixes[prefix], v)
			}
			return nil
		},
	}
}

func sizingMatcher() Matcher {
	props := map[string]string{
		"w":     "width",
		"h":     "height",
		"min-w": "min-width",
		"min-h": "min-height",
		"max-w": "max-width",
		"max-h": "max-height",
	}
	ordered := []string{"min-w", "min-h", "max-w", "max-h", "w", "h"}

	return &matcherFunc{
		name:     "sizing",
		category: CategorySizing,
		priority: 70,
		parse: func(base string) []CssDeclaration {
			for _, prefix := range ordered {
				call, ok := splitCall(base, prefix)
				if !ok || call.Value == nil {
					continue
				}

				prop := props[prefix]
				if call.Value.Kind == ValueKeyword {
					switch call.Value.Keyword {
					case "full":
						return []CssDeclaration{{Property: prop, Value: "100%"}}
					case "screen":
						if strings.HasSuffix(prefix, "h") {
							return []CssDeclaration{{Property: prop, Value: "100vh"}}
						}
						return []CssDeclaration{{Property: prop, Value: "100vw"}}
					case "auto":
						return []CssDeclaration{{Property: prop, Value: "auto"}}
					case "min":
						return []CssDeclaration{{Property: prop, Value: "min-content"}}
					case "max":
						return []CssDeclaration{{Property: prop, Value: "max-content"}}
					case "fit":
						return []CssDeclaration{{Property: prop, Value: "fit-content"}}
					}
				}

				v, ok := spacingValue(call.Value, false)
				if !ok {
					return nil
				}
				return []CssDeclaration{{Property: prop, Value: v}}
			}
			return nil
		},
	}
}

func positionMatcher() Matcher {
	props := map[string]string{
		"inset":  "inset",
		"top":    "top",
		"right":  "right",
		"bottom": "bottom",
		"left":   "left",
	}
	ordered := []string{"inset", "top", "right", "bottom", "left"}

	return &matcherFunc{
		name:     "position",
		category: CategoryLayout,
		priority: 65,
		parse: func(base string) []CssDeclaration {
			if call, ok := splitCall(base, "z"); ok && call.Value != nil {
				switch call.Value.Kind {
				case ValueKeyword:
					if call.Value.Keyword == "auto" {
						return []CssDeclaration{{Property: "z-index", Value: "auto"}}
					}
					if _, err := strconv.Atoi(call.Value.Keyword); err == nil {
						return []CssDeclaration{{Property: "z-index", Value: call.Value.Keyword}}
					}
				case ValueArbitrary:
					return []CssDeclaration{{Property: "z-index", Value: call.Value.Raw}}
				}
				return nil
			}

			for _, prefix := range ordered {
				call, ok := splitCall(base, prefix)
				if !ok || call.Value == nil {
					continue
				}
				if call.Value.Kind == ValueKeyword && call.Value.Keyword == "auto" {
					return []CssDeclaration{{Property: props[prefix], Value: "auto"}}
				}
				v, ok := spacingValue(call.Value, call.Negative)
				if !ok {
					return nil
				}
				return []CssDeclaration{{Property: props[prefix], Value: v}}
			}
			return nil
		},
	}
}

// scaleAxisMatcher outranks the generic scale matcher so scale-x-50 is never
// parsed as scale with value "x-50".
func scaleAxisMatcher() Matcher {
	return &matcherFunc{
		name:     "scale-axis",
		category: CategoryTransform,
		priority: 60,
		parse: func(base string) []CssDeclaration {
			for _, axis := range []string{"x", "y"} {
				call, ok := splitCall(base, "scale-"+axis)
				if !ok || call.Value == nil {
					continue
				}
				v, ok := scaleAmount(call.Value)
				if !ok {
					return nil
				}
				return []CssDeclaration{{Property: "transform", Value: fmt.Sprintf("scale%s(%s)", strings.ToUpper(axis), v)}}
			}
			return nil
		},
	}
}

func scaleMatcher() Matcher {
	return &matcherFunc{
		name:     "scale",
		category: CategoryTransform,
		priority: 50,
		parse: func(base string) []CssDeclaration {
			call, ok := splitCall(base, "scale")
			if !ok || call.Value == nil {
				return nil
			}
			v, ok := scaleAmount(call.Value)
			if !ok {
				return nil
			}
			return []CssDeclaration{{Property: "transform", Value: fmt.Sprintf("scale(%s)", v)}}
		},
	}
}

func translateMatcher() Matcher {
	return &matcherFunc{
		name:     "translate",
		category: CategoryTransform,
		priority: 60,
		parse: func(base string) []CssDeclaration {
			for _, axis := range []string{"x", "y"} {
				call, ok := splitCall(base, "translate-"+axis)
				if !ok || call.Value == nil {
					continue
				}
				var v string
				if call.Value.Kind == ValueKeyword && call.Value.Keyword == "full" {
					v = "100%"
					if call.Negative {
						v = "-100%"
					}
				} else {
					var ok bool
					v, ok = spacingValue(call.Value, call.Negative)
					if !ok {
						return nil
					}
				}
				return []CssDeclaration{{Property: "transform", Value: fmt.Sprintf("translate%s(%s)", strings.ToUpper(axis), v)}}
			}
			return nil
		},
	}
}

func rotateMatcher() Matcher {
	return &matcherFunc{
		name:     "rotate",
		category: CategoryTransform,
		priority: 60,
		parse: func(base string) []CssDeclaration {
			call, ok := splitCall(base, "rotate")
			if !ok || call.Value == nil {
				return nil
			}
			switch call.Value.Kind {
			case ValueKeyword:
				if _, err := strconv.Atoi(call.Value.Keyword); err != nil {
					return nil
				}
				deg := call.Value.Keyword + "deg"
				if call.Negative {
					deg = "-" + deg
				}
				return []CssDeclaration{{Property: "transform", Value: fmt.Sprintf("rotate(%s)", deg)}}
			case ValueArbitrary:
				return []CssDeclaration{{Property: "transform", Value: fmt.Sprintf("rotate(%s)", call.Value.Raw)}}
			}
			return nil
		},
	}
}

func effectsMatcher() Matcher {
	return &matcherFunc{
		name:     "effects",
		category: CategoryEffects,
		priority: 55,
		parse: func(base string) []CssDeclaration {
			if call, ok := splitCall(base, "opacity"); ok && call.Value != nil {
				switch call.Value.Kind {
				case ValueKeyword:
					if n, err := strconv.Atoi(call.Value.Keyword); err == nil && n >= 0 && n <= 100 {
						return []CssDeclaration{{Property: "opacity", Value: formatOpacity(n)}}
					}
				case ValueArbitrary:
					return []CssDeclaration{{Property: "opacity", Value: call.Value.Raw}}
				}
				return nil
			}

			if base == "shadow" {
				return []CssDeclaration{{Property: "box-shadow", Value: shadowScale[""]}}
			}
			if call, ok := splitCall(base, "shadow"); ok && call.Value != nil {
				if call.Value.Kind == ValueKeyword {
					if v, ok := shadowScale[call.Value.Keyword]; ok {
						return []CssDeclaration{{Property: "box-shadow", Value: v}}
					}
					// shadow-<color> falls through to the color matcher
					return nil
				}
				if call.Value.Kind == ValueArbitrary {
					return []CssDeclaration{{Property: "box-shadow", Value: call.Value.Raw}}
				}
				return nil
			}

			if base == "rounded" {
				return []CssDeclaration{{Property: "border-radius", Value: radiusScale[""]}}
			}
			if call, ok := splitCall(base, "rounded"); ok && call.Value != nil {
				switch call.Value.Kind {
				case ValueKeyword:
					if v, ok := radiusScale[call.Value.Keyword]; ok {
						return []CssDeclaration{{Property: "border-radius", Value: v}}
					}
				case ValueArbitrary:
					return []CssDeclaration{{Property: "border-radius", Value: call.Value.Raw}}
				}
				return nil
			}

			return nil
		},
	}
}

// borderWidthMatcher claims bare and numeric border spellings; everything
// else under border- falls through to the color matcher.
func borderWidthMatcher() Matcher {
	widths := map[string]string{"0": "0px", "2": "2px", "4": "4px", "8": "8px"}

	return &matcherFunc{
		name:     "border-width",
		category: CategoryLayout,
		priority: 46,
		parse: func(base string) []CssDeclaration {
			if base == "border" {
				return []CssDeclaration{{Property: "border-width", Value: "1px"}}
			}
			call, ok := splitCall(base, "border")
			if !ok || call.Value == nil || call.Value.Kind != ValueKeyword {
				return nil
			}
			if v, ok := widths[call.Value.Keyword]; ok {
				return []CssDeclaration{{Property: "border-width", Value: v}}
			}
			return nil
		},
	}
}

// textMatcher disambiguates the three text- families: size keywords,
// alignment keywords, then color.
func textMatcher() Matcher {
	aligns := map[string]bool{"left": true, "center": true, "right": true, "justify": true}

	return &matcherFunc{
		name:     "text",
		category: CategoryTypography,
		priority: 45,
		parse: func(base string) []CssDeclaration {
			call, ok := splitCall(base, "text")
			if !ok || call.Value == nil {
				return nil
			}

			if call.Value.Kind == ValueKeyword {
				if size, ok := fontSizeScale[call.Value.Keyword]; ok {
					return []CssDeclaration{
						{Property: "font-size", Value: size[0]},
						{Property: "line-height", Value: size[1]},
					}
				}
				if aligns[call.Value.Keyword] {
					return []CssDeclaration{{Property: "text-align", Value: call.Value.Keyword}}
				}
			}

			if v, ok := colorValue(call.Value); ok {
				return []CssDeclaration{{Property: "color", Value: v}}
			}
			return nil
		},
	}
}

func fontMatcher() Matcher {
	families := map[string]string{
		"sans":  `ui-sans-serif, system-ui, sans-serif`,
		"serif": `ui-serif, Georgia, serif`,
		"mono":  `ui-monospace, SFMono-Regular, monospace`,
	}

	return &matcherFunc{
		name:     "font",
		category: CategoryTypography,
		priority: 45,
		parse: func(base string) []CssDeclaration {
			call, ok := splitCall(base, "font")
			if !ok || call.Value == nil || call.Value.Kind != ValueKeyword {
				return nil
			}
			if w, ok := fontWeightScale[call.Value.Keyword]; ok {
				return []CssDeclaration{{Property: "font-weight", Value: w}}
			}
			if f, ok := families[call.Value.Keyword]; ok {
				return []CssDeclaration{{Property: "font-family", Value: f}}
			}
			return nil
		},
	}
}

// colorPrefixProps pairs each color-bearing prefix with the property it sets.
var colorPrefixProps = []struct {
	prefix   string
	property string
}{
	{"bg", "background-color"},
	{"border", "border-color"},
	{"outline", "outline-color"},
	{"accent", "accent-color"},
	{"caret", "caret-color"},
	{"decoration", "text-decoration-color"},
	{"fill", "fill"},
	{"stroke", "stroke"},
}

func colorMatcher() Matcher {
	return &matcherFunc{
		name:     "color",
		category: CategoryColor,
		priority: 40,
		parse: func(base string) []CssDeclaration {
			for _, p := range colorPrefixProps {
				call, ok := splitCall(base, p.prefix)
				if !ok || call.Value == nil {
					continue
				}
				if v, ok := colorValue(call.Value); ok {
					return []CssDeclaration{{Property: p.property, Value: v}}
				}
				return nil
			}

			if call, ok := splitCall(base, "ring"); ok && call.Value != nil {
				if v, ok := colorValue(call.Value); ok {
					return []CssDeclaration{{Property: "box-shadow", Value: "0 0 0 3px " + v}}
				}
			}
			if call, ok := splitCall(base, "shadow"); ok && call.Value != nil {
				if v, ok := colorValue(call.Value); ok {
					return []CssDeclaration{{Property: "--un-shadow-color", Value: v}}
				}
			}

			return nil
		},
	}
}

// --- shared value rendering ---

func cloneDecls(d []CssDeclaration) []CssDeclaration {
	if d == nil {
		return nil
	}
	out := make([]CssDeclaration, len(d))
	copy(out, d)
	return out
}

func propsWithValue(props []string, value string) []CssDeclaration {
	decls := make([]CssDeclaration, 0, len(props))
	for _, p := range props {
		decls = append(decls, CssDeclaration{Property: p, Value: value})
	}
	return decls
}

func keywordInt(v *ValueSpec) (int, bool) {
	if v.Kind != ValueKeyword {
		return 0, false
	}
	n, err := strconv.Atoi(v.Keyword)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// spacingValue renders a ValueSpec against the spacing scale. Fractions
// become percentages; arbitrary values and custom properties pass through.
func spacingValue(v *ValueSpec, negative bool) (string, bool) {
	var out string

	switch v.Kind {
	case ValueKeyword:
		s, ok := spacingScale[v.Keyword]
		if !ok {
			return "", false
		}
		out = s
	case ValueFraction:
		out = fractionPercent(v.Num, v.Den)
	case ValueArbitrary:
		out = v.Raw
	case ValueCustomProperty:
		out = "var(" + v.VarName + ")"
	default:
		return "", false
	}

	if negative && out != "0px" {
		out = "-" + out
	}
	return out, true
}

func scaleAmount(v *ValueSpec) (string, bool) {
	switch v.Kind {
	case ValueKeyword:
		n, err := strconv.Atoi(v.Keyword)
		if err != nil {
			return "", false
		}
		return formatOpacity(n), true
	case ValueArbitrary:
		return v.Raw, true
	case ValueCustomProperty:
		return "var(" + v.VarName + ")", true
	}
	return "", false
}

// colorValue renders a ValueSpec against the color palette.
func colorValue(v *ValueSpec) (string, bool) {
	switch v.Kind {
	case ValueKeyword:
		c, ok := colorPalette[v.Keyword]
		return c, ok
	case ValueColorOpacity:
		hex, ok := colorPalette[v.ColorKey]
		if !ok {
			return "", false
		}
		return hexWithOpacity(hex, v.Opacity), true
	case ValueArbitrary:
		return v.Raw, true
	case ValueCustomProperty:
		return "var(" + v.VarName + ")", true
	}
	return "", false
}

// hexWithOpacity converts #rrggbb plus a 0..100 percentage into the
// space-separated rgb() form. Non-hex palette entries (currentColor,
// transparent) ignore the opacity rather than failing.
func hexWithOpacity(hex string, pct int) string {
	if len(hex) != 7 || hex[0] != '#' {
		return hex
	}
	r, _ := strconv.ParseUint(hex[1:3], 16, 8)
	g, _ := strconv.ParseUint(hex[3:5], 16, 8)
	b, _ := strconv.ParseUint(hex[5:7], 16, 8)
	return fmt.Sprintf("rgb(%d %d %d / %s)", r, g, b, formatOpacity(pct))
}

// formatOpacity renders a 0..100 percentage as a compact decimal: 40 -> 0.4,
// 55 -> 0.55, 100 -> 1.
func formatOpacity(pct int) string {
	s := strconv.FormatFloat(float64(pct)/100, 'f', -1, 64)
	return s
}

// fractionPercent renders n/d as a percentage with up to six decimals.
func fractionPercent(num, den int) string {
	if den == 0 {
		return "0%"
	}
	v := 100 * float64(num) / float64(den)
	s := strconv.FormatFloat(v, 'f', 6, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	return s + "%"
}
