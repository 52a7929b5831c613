package utilcss

import (
	"regexp"
	"strconv"
	"strings"
)

// ValueKind discriminates the forms a utility value can take.
type ValueKind int

// Exactly one kind applies per class.
const (
	ValueKeyword ValueKind = iota // bg-red-500, w-full
	ValueFraction                 // w-1/2
	ValueArbitrary                // w-[3.5rem]
	ValueCustomProperty           // mask-size-(--m)
	ValueColorOpacity             // bg-red-500/50
)

// ValueSpec is the parsed trailing token of a utility class.
type ValueSpec struct {
	Kind ValueKind

	Keyword  string // ValueKeyword: scale key, e.g. "red-500", "full"
	Num, Den int    // ValueFraction
	Raw      string // ValueArbitrary: literal CSS value, underscores unescaped
	VarName  string // ValueCustomProperty: "--m", rendered as var(--m)
	ColorKey string // ValueColorOpacity: palette key, e.g. "red-500"
	Opacity  int    // ValueColorOpacity: 0..100
}

var fractionRe = regexp.MustCompile(`^\d+/\d+$`)

// colorPrefixes is the closed set of utilities that treat a trailing /N as an
// opacity suffix rather than a fraction. The list is extended deliberately
// when a new color-like utility family is added; it is never inferred from
// naming convention.
var colorPrefixes = map[string]bool{
	"bg":         true,
	"text":       true,
	"border":     true,
	"outline":    true,
	"ring":       true,
	"accent":     true,
	"caret":      true,
	"divide":     true,
	"decoration": true,
	"shadow":     true,
	"fill":       true,
	"stroke":     true,
	"from":       true,
	"via":        true,
	"to":         true,
}

// ParseValue interprets the remainder of a utility class after "prefix-".
//
// Resolution order: bracketed arbitrary value, parenthesized custom property
// reference, numeric fraction, color+opacity (only for color-bearing
// prefixes), plain scale keyword. A malformed bracket (unterminated '[') is
// not arbitrary and falls through to keyword matching.
func ParseValue(rest, prefix string) ValueSpec {
	if inner, ok := cutWrapped(rest, '[', ']'); ok {
		return ValueSpec{Kind: ValueArbitrary, Raw: unescapeArbitrary(inner)}
	}

	if inner, ok := cutWrapped(rest, '(', ')'); ok {
		return ValueSpec{Kind: ValueCustomProperty, VarName: inner}
	}

	if fractionRe.MatchString(rest) {
		slash := strings.IndexByte(rest, '/')
		num, _ := strconv.Atoi(rest[:slash])
		den, _ := strconv.Atoi(rest[slash+1:])
		return ValueSpec{Kind: ValueFraction, Num: num, Den: den}
	}

	if colorPrefixes[prefix] && strings.Count(rest, "/") == 1 {
		slash := strings.IndexByte(rest, '/')
		if opacity, err := strconv.Atoi(rest[slash+1:]); err == nil && opacity >= 0 && opacity <= 100 {
			return ValueSpec{Kind: ValueColorOpacity, ColorKey: rest[:slash], Opacity: opacity}
		}
	}

	return ValueSpec{Kind: ValueKeyword, Keyword: rest}
}

// cutWrapped returns the interior of rest when it is fully wrapped in the
// given delimiter pair with the closer at the very end.
func cutWrapped(rest string, open, close byte) (string, bool) {
	if len(rest) < 2 || rest[0] != open || rest[len(rest)-1] != close {
		return "", false
	}
	return rest[1 : len(rest)-1], true
}

// unescapeArbitrary converts the class-name spelling of an arbitrary value
// back to CSS: '_' stands for a space, '\_' for a literal underscore.
func unescapeArbitrary(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '\\' && i+1 < len(s) && s[i+1] == '_':
			b.WriteByte('_')
			i++
		case s[i] == '_':
			b.WriteByte(' ')
		default:
			b.WriteByte(s[i])
		}
	}

	return b.String()
}
