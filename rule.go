package utilcss

import "strings"

// CssDeclaration is a single property: value pair produced for a utility.
type CssDeclaration struct {
	Property  string
	Value     string
	Important bool
}

// CascadeBucket orders rules for emission. Buckets with smaller values are
// serialized first; responsive buckets are spread across a reserved range so
// breakpoints emit in ascending min-width order.
type CascadeBucket int

// Bucket ordering: Base < Responsive(asc) < Dark < State < Custom.
const (
	BucketBase CascadeBucket = 0
	// responsive buckets occupy 10..10+len(breakpoints)
	BucketDark   CascadeBucket = 100
	BucketState  CascadeBucket = 200
	BucketCustom CascadeBucket = 300
)

func bucketResponsive(order int) CascadeBucket {
	return CascadeBucket(10 + order)
}

// CssRule is one emitted rule: an escaped selector, its declarations, and the
// cascade position it belongs to.
type CssRule struct {
	Selector     string
	Declarations []CssDeclaration
	MediaQuery   string
	Bucket       CascadeBucket
}

// AssembleRule combines a resolved variant chain with the declarations the
// registry produced into a CssRule keyed on the raw class spelling.
func AssembleRule(raw string, variant VariantCombination, decls []CssDeclaration, important bool) CssRule {
	if important {
		for i := range decls {
			decls[i].Important = true
		}
	}

	return CssRule{
		Selector:     variant.ApplySelector("." + EscapeClass(raw)),
		Declarations: decls,
		MediaQuery:   variant.MediaQuery,
		Bucket:       bucketFor(variant),
	}
}

// bucketFor picks the cascade bucket from the highest-ranked modifier kind in
// the combination.
func bucketFor(v VariantCombination) CascadeBucket {
	bucket := BucketBase
	for _, m := range v.Modifiers {
		var b CascadeBucket
		switch m.Kind {
		case ModResponsive:
			b = bucketResponsive(defaultBreakpoints[m.Name].Order)
		case ModDark:
			b = BucketDark
		case ModFocusWithin, ModState, ModGroupState, ModPeerState,
			ModMotion, ModContrast, ModOrientation, ModPrintScreen:
			b = BucketState
		case ModCustom:
			b = BucketCustom
		}
		if b > bucket {
			bucket = b
		}
	}
	return bucket
}

// EscapeClass CSS-escapes a raw class name for use in a selector: every byte
// that is not alphanumeric, '-' or '_' gets a backslash. A digit in ident-start
// position (2xl:flex, -2xl:flex) gets a hex escape instead, since an ident
// cannot begin with a bare digit. Multi-byte UTF-8 sequences pass through
// untouched.
func EscapeClass(raw string) string {
	var b strings.Builder
	b.Grow(len(raw) + 8)

	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case c >= '0' && c <= '9':
			if i == 0 || (i == 1 && raw[0] == '-') {
				// digits are 0x30-0x39; the space terminates the escape
				b.WriteString("\\3")
				b.WriteByte(c)
				b.WriteByte(' ')
				continue
			}
			b.WriteByte(c)
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '-', c == '_':
			b.WriteByte(c)
		case c >= 0x80:
			b.WriteByte(c)
		default:
			b.WriteByte('\\')
			b.WriteByte(c)
		}
	}

	return b.String()
}

// UnescapeClass reverses EscapeClass, recovering the raw class spelling from
// an escaped selector ident. Both backslash escapes (\:) and the hex form a
// leading digit produces (\32 ) are decoded.
func UnescapeClass(escaped string) string {
	var b strings.Builder
	b.Grow(len(escaped))

	for i := 0; i < len(escaped); i++ {
		if escaped[i] != '\\' || i+1 >= len(escaped) {
			b.WriteByte(escaped[i])
			continue
		}
		// EscapeClass never backslash-escapes a digit, so '3' after the
		// backslash means a hex-escaped leading digit
		if i+2 < len(escaped) && escaped[i+1] == '3' && escaped[i+2] >= '0' && escaped[i+2] <= '9' {
			b.WriteByte(escaped[i+2])
			i += 2
			if i+1 < len(escaped) && escaped[i+1] == ' ' {
				i++
			}
			continue
		}
		i++
		b.WriteByte(escaped[i])
	}

	return b.String()
}
