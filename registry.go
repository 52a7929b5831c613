package utilcss

import (
	"sort"
	"strings"
)

// Category groups matcher families for reporting and diagnostics.
type Category string

// Matcher categories.
const (
	CategorySpacing    Category = "spacing"
	CategorySizing     Category = "sizing"
	CategoryColor      Category = "color"
	CategoryTypography Category = "typography"
	CategoryLayout     Category = "layout"
	CategoryFlexGrid   Category = "flexgrid"
	CategoryEffects    Category = "effects"
	CategoryTransform  Category = "transform"
)

// UtilityCall is the parsed base utility of a class string.
type UtilityCall struct {
	Prefix    string
	Value     *ValueSpec // nil for bare utilities like "flex"
	Negative  bool       // leading '-' on the base, e.g. -translate-x-4
	Important bool
}

// Matcher recognizes one utility family. TryParse returns nil when the
// matcher does not claim the base string; a nil return must have no
// observable side effect.
type Matcher interface {
	Name() string
	Category() Category
	Priority() uint32
	TryParse(base string) []CssDeclaration
}

// Registry is an immutable, priority-ordered set of matchers. Build it once
// at startup and pass it into every compilation call; lookups are read-only
// and safe for concurrent use.
type Registry struct {
	matchers []Matcher
}

// NewRegistry sorts matchers by priority descending; ties keep registration
// order, which therefore must be stable across runs.
func NewRegistry(matchers ...Matcher) *Registry {
	sorted := make([]Matcher, len(matchers))
	copy(sorted, matchers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority() > sorted[j].Priority()
	})
	return &Registry{matchers: sorted}
}

// Matchers returns the registry's matcher list in dispatch order.
func (r *Registry) Matchers() []Matcher {
	return r.matchers
}

// ResolveDeclarations dispatches base to the first matcher that claims it.
// A nil result means no matcher recognized the utility — callers treat that
// as "not a utility class", not an error.
func (r *Registry) ResolveDeclarations(base string) []CssDeclaration {
	for _, m := range r.matchers {
		if decls := m.TryParse(base); decls != nil {
			return decls
		}
	}
	return nil
}

// matcherFunc is the value-object form of Matcher used by the built-in
// families.
type matcherFunc struct {
	name     string
	category Category
	priority uint32
	parse    func(base string) []CssDeclaration
}

func (m *matcherFunc) Name() string { return m.name }

func (m *matcherFunc) Category() Category { return m.category }

func (m *matcherFunc) Priority() uint32 { return m.priority }
func (m *matcherFunc) TryParse(base string) []CssDeclaration {
	return m.parse(base)
}

// splitCall interprets base as prefix, prefix-value, or -prefix-value. The
// prefix must end on a segment boundary, so "p-4" never matches prefix "px".
func splitCall(base, prefix string) (UtilityCall, bool) {
	call := UtilityCall{Prefix: prefix}

	if strings.HasPrefix(base, "-") {
		call.Negative = true
		base = base[1:]
	}

	if base == prefix {
		return call, true
	}

	rest, ok := strings.CutPrefix(base, prefix+"-")
	if !ok || rest == "" {
		return UtilityCall{}, false
	}

	v := ParseValue(rest, prefix)
	call.Value = &v
	return call, true
}
