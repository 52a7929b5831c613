package utilcss

import (
	"sort"
	"strings"
)

// Stylesheet owns every rule produced during one compilation run, grouped by
// cascade bucket. It is created per run, serialized once, then discarded.
type Stylesheet struct {
	buckets    map[CascadeBucket][]*CssRule
	bySelector map[string]*CssRule
}

// NewStylesheet returns an empty stylesheet.
func NewStylesheet() *Stylesheet {
	return &Stylesheet{
		buckets:    make(map[CascadeBucket][]*CssRule),
		bySelector: make(map[string]*CssRule),
	}
}

// Add inserts rule into its cascade bucket. If a rule with the same selector
// was already added, the declarations are merged instead, with the later
// write winning per property — the stylesheet never emits two rules for the
// same selector.
func (s *Stylesheet) Add(rule CssRule) {
	if existing, ok := s.bySelector[rule.Selector]; ok {
		existing.Declarations = mergeDeclarations(existing.Declarations, rule.Declarations)
		return
	}

	r := rule
	s.buckets[r.Bucket] = append(s.buckets[r.Bucket], &r)
	s.bySelector[r.Selector] = &r
}

// Len returns the number of distinct rules.
func (s *Stylesheet) Len() int {
	return len(s.bySelector)
}

// Rules returns all rules in cascade order. The returned slice is freshly
// allocated; the rules themselves are the stylesheet's own.
func (s *Stylesheet) Rules() []*CssRule {
	var out []*CssRule
	for _, bucket := range s.sortedBuckets() {
		out = append(out, s.buckets[bucket]...)
	}
	return out
}

func mergeDeclarations(existing, incoming []CssDeclaration) []CssDeclaration {
	index := make(map[string]int, len(existing))
	for i, d := range existing {
		index[d.Property] = i
	}

	for _, d := range incoming {
		if i, ok := index[d.Property]; ok {
			existing[i] = d
			continue
		}
		index[d.Property] = len(existing)
		existing = append(existing, d)
	}

	return existing
}

func (s *Stylesheet) sortedBuckets() []CascadeBucket {
	buckets := make([]CascadeBucket, 0, len(s.buckets))
	for b := range s.buckets {
		buckets = append(buckets, b)
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i] < buckets[j] })
	return buckets
}

// Serialize emits the stylesheet as CSS text. Buckets are walked in cascade
// order; within a bucket, bare rules come first in discovery order, then one
// @media block per distinct query in first-appearance order, each holding its
// rules in discovery order.
func (s *Stylesheet) Serialize() string {
	var b strings.Builder

	for _, bucket := range s.sortedBuckets() {
		rules := s.buckets[bucket]

		for _, r := range rules {
			if r.MediaQuery == "" {
				writeRule(&b, r, "")
			}
		}

		var queries []string
		byQuery := make(map[string][]*CssRule)
		for _, r := range rules {
			if r.MediaQuery == "" {
				continue
			}
			if _, ok := byQuery[r.MediaQuery]; !ok {
				queries = append(queries, r.MediaQuery)
			}
			byQuery[r.MediaQuery] = append(byQuery[r.MediaQuery], r)
		}

		for _, q := range queries {
			b.WriteString("@media ")
			b.WriteString(q)
			b.WriteString(" {\n")
			for _, r := range byQuery[q] {
				writeRule(&b, r, "  ")
			}
			b.WriteString("}\n")
		}
	}

	return b.String()
}

func writeRule(b *strings.Builder, r *CssRule, indent string) {
	b.WriteString(indent)
	b.WriteString(r.Selector)
	b.WriteString(" {\n")

	for _, d := range r.Declarations {
		b.WriteString(indent)
		b.WriteString("  ")
		b.WriteString(d.Property)
		b.WriteString(": ")
		b.WriteString(d.Value)
		if d.Important {
			b.WriteString(" !important")
		}
		b.WriteString(";\n")
	}

	b.WriteString(indent)
	b.WriteString("}\n")
}
