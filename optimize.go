package utilcss

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/tdewolff/minify/v2"
	minifycss "github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// OptimizeOptions selects which rewrite passes run over a stylesheet.
type OptimizeOptions struct {
	// RemoveDuplicates drops repeated properties within a rule (last write
	// wins) and exact duplicate rules within the same block.
	RemoveDuplicates bool

	// MergeRules merges adjacent rules that share a selector, and joins
	// adjacent rules with identical bodies into one comma-separated
	// selector.
	MergeRules bool

	// SortProperties orders declarations by group (layout, box, typography,
	// visual, effects) and alphabetically within each group.
	SortProperties bool

	Minify bool

	// CompressionLevel 1-9. Levels 6 and up trade numeric precision for
	// size when minifying; zero means the default (6).
	CompressionLevel int
}

// propertyGroup is the sort tier a CSS property belongs to.
type propertyGroup int

const (
	groupLayout propertyGroup = iota
	groupBox
	groupTypography
	groupVisual
	groupEffects
	groupOther
)

var propertyGroups = map[string]propertyGroup{
	"display":               groupLayout,
	"position":              groupLayout,
	"inset":                 groupLayout,
	"top":                   groupLayout,
	"right":                 groupLayout,
	"bottom":                groupLayout,
	"left":                  groupLayout,
	"z-index":               groupLayout,
	"flex":                  groupLayout,
	"flex-direction":        groupLayout,
	"flex-wrap":             groupLayout,
	"flex-grow":             groupLayout,
	"flex-shrink":           groupLayout,
	"justify-content":       groupLayout,
	"align-items":           groupLayout,
	"align-self":            groupLayout,
	"gap":                   groupLayout,
	"row-gap":               groupLayout,
	"column-gap":            groupLayout,
	"grid-template-columns": groupLayout,
	"grid-column":           groupLayout,
	"grid-row":              groupLayout,

	"width":      groupBox,
	"height":     groupBox,
	"min-width":  groupBox,
	"min-height": groupBox,
	"max-width":  groupBox,
	"max-height": groupBox,

	"font-family":     groupTypography,
	"font-size":       groupTypography,
	"font-weight":     groupTypography,
	"line-height":     groupTypography,
	"letter-spacing":  groupTypography,
	"text-align":      groupTypography,
	"text-decoration": groupTypography,

	"color":                 groupVisual,
	"background-color":      groupVisual,
	"border-color":          groupVisual,
	"border-width":          groupVisual,
	"border-radius":         groupVisual,
	"outline-color":         groupVisual,
	"accent-color":          groupVisual,
	"caret-color":           groupVisual,
	"text-decoration-color": groupVisual,
	"fill":                  groupVisual,
	"stroke":                groupVisual,
	"box-shadow":            groupVisual,
	"opacity":               groupVisual,

	"transform":  groupEffects,
	"transition": groupEffects,
	"animation":  groupEffects,
	"filter":     groupEffects,
}

func groupOf(property string) propertyGroup {
	if g, ok := propertyGroups[property]; ok {
		return g
	}
	switch {
	case strings.HasPrefix(property, "padding") || strings.HasPrefix(property, "margin"):
		return groupBox
	case strings.HasPrefix(property, "flex-") || strings.HasPrefix(property, "grid-"):
		return groupLayout
	case strings.HasPrefix(property, "border-") || strings.HasPrefix(property, "background-"):
		return groupVisual
	case strings.HasPrefix(property, "font-") || strings.HasPrefix(property, "text-"):
		return groupTypography
	}
	return groupOther
}

// optItem is one entry in a block: either a structured ruleset the optimizer
// can rewrite, or raw text passed through untouched.
type optItem struct {
	raw      string
	selector string
	decls    []CssDeclaration
}

func (it optItem) isRule() bool { return it.raw == "" }

type optFrame struct {
	header string
	items  []optItem
	nested []*optFrame
}

// frameMarker is the raw-item sentinel standing in for a nested frame; the
// n-th marker in items corresponds to nested[n].
const frameMarker = "\x00frame"

// Optimize reparses the stylesheet and applies the selected rewrite passes.
// Without Minify the output is compact but unminified (one rule per
// serialized unit, no whitespace tricks).
func Optimize(stylesheet string, opts OptimizeOptions) (string, error) {
	root, err := parseBlocks(stylesheet)
	if err != nil {
		return "", err
	}

	out := serializeFrame(root, opts)

	if opts.Minify {
		return minifyCSS(out, opts.CompressionLevel)
	}
	return out, nil
}

// parseBlocks walks the stylesheet into nested frames of optimizer items.
func parseBlocks(stylesheet string) (*optFrame, error) {
	p := css.NewParser(parse.NewInputString(stylesheet), false)

	root := &optFrame{}
	stack := []*optFrame{root}
	top := func() *optFrame { return stack[len(stack)-1] }

	var (
		current     *optItem
		pendingSels []string
	)

	for {
		gt, _, data := p.Next()

		switch gt {
		case css.ErrorGrammar:
			if err := p.Err(); err == io.EOF {
				if len(stack) != 1 {
					return nil, fmt.Errorf("unbalanced at-rule block")
				}
				return root, nil
			}
			return nil, fmt.Errorf("parse stylesheet: %w", p.Err())

		case css.CommentGrammar:
			// dropped

		case css.AtRuleGrammar:
			top().items = append(top().items, optItem{
				raw: string(data) + string(renderTokens(p.Values())) + ";",
			})

		case css.BeginAtRuleGrammar:
			frame := &optFrame{header: string(data) + string(renderTokens(p.Values()))}
			stack = append(stack, frame)

		case css.EndAtRuleGrammar:
			if len(stack) < 2 {
				return nil, fmt.Errorf("unbalanced at-rule close")
			}
			frame := top()
			stack = stack[:len(stack)-1]
			top().items = append(top().items, optItem{raw: frameMarker})
			top().nested = append(top().nested, frame)

		case css.QualifiedRuleGrammar:
			pendingSels = append(pendingSels, string(renderTokens(p.Values())))

		case css.BeginRulesetGrammar:
			sel := strings.Join(append(pendingSels, string(data)+string(renderTokens(p.Values()))), ",")
			pendingSels = nil
			current = &optItem{selector: sel}

		case css.EndRulesetGrammar:
			if current != nil {
				top().items = append(top().items, *current)
				current = nil
			}

		case css.DeclarationGrammar, css.CustomPropertyGrammar:
			decl := CssDeclaration{
				Property: string(data),
				Value:    strings.TrimSpace(string(renderTokens(p.Values()))),
			}
			if v, ok := strings.CutSuffix(decl.Value, "!important"); ok {
				decl.Value = strings.TrimSpace(v)
				decl.Important = true
			}
			if current != nil {
				current.decls = append(current.decls, decl)
			} else {
				// declaration directly inside an at-rule (@font-face)
				top().items = append(top().items, optItem{
					raw: decl.Property + ":" + decl.Value + ";",
				})
			}

		case css.TokenGrammar:
			top().items = append(top().items, optItem{raw: string(data)})
		}
	}
}

func serializeFrame(f *optFrame, opts OptimizeOptions) string {
	items := f.items

	if opts.RemoveDuplicates {
		items = removeDuplicateItems(items)
	}
	if opts.MergeRules {
		items = mergeAdjacentRules(items)
	}

	var b strings.Builder
	nested := 0
	for _, it := range items {
		if it.raw == frameMarker {
			inner := serializeFrame(f.nested[nested], opts)
			nested++
			if inner == "" {
				continue
			}
			b.WriteString(f.nested[nested-1].header)
			b.WriteByte('{')
			b.WriteString(inner)
			b.WriteByte('}')
			continue
		}
		if !it.isRule() {
			b.WriteString(it.raw)
			continue
		}

		decls := it.decls
		if opts.RemoveDuplicates {
			decls = dedupeDecls(decls)
		}
		if opts.SortProperties {
			decls = sortDecls(decls)
		}

		b.WriteString(it.selector)
		b.WriteByte('{')
		for _, d := range decls {
			b.WriteString(d.Property)
			b.WriteByte(':')
			b.WriteString(d.Value)
			if d.Important {
				b.WriteString(" !important")
			}
			b.WriteByte(';')
		}
		b.WriteByte('}')
	}
	return b.String()
}

// dedupeDecls keeps the last write for each property.
func dedupeDecls(decls []CssDeclaration) []CssDeclaration {
	last := make(map[string]int, len(decls))
	for i, d := range decls {
		last[d.Property] = i
	}
	out := make([]CssDeclaration, 0, len(last))
	for i, d := range decls {
		if last[d.Property] == i {
			out = append(out, d)
		}
	}
	return out
}

func sortDecls(decls []CssDeclaration) []CssDeclaration {
	out := make([]CssDeclaration, len(decls))
	copy(out, decls)
	sort.SliceStable(out, func(i, j int) bool {
		gi, gj := groupOf(out[i].Property), groupOf(out[j].Property)
		if gi != gj {
			return gi < gj
		}
		return out[i].Property < out[j].Property
	})
	return out
}

// removeDuplicateItems drops rules that are exact copies of a later rule in
// the same block. Keeping the last copy preserves cascade outcomes.
func removeDuplicateItems(items []optItem) []optItem {
	keyOf := func(it optItem) string {
		var b strings.Builder
		b.WriteString(it.selector)
		b.WriteByte('|')
		for _, d := range it.decls {
			fmt.Fprintf(&b, "%s:%s:%v;", d.Property, d.Value, d.Important)
		}
		return b.String()
	}

	last := make(map[string]int, len(items))
	for i, it := range items {
		if it.isRule() {
			last[keyOf(it)] = i
		}
	}

	out := items[:0:0]
	for i, it := range items {
		if it.isRule() && last[keyOf(it)] != i {
			continue
		}
		out = append(out, it)
	}
	return out
}

// mergeAdjacentRules folds neighboring rules together where cascade-safe:
// same selector means concatenated declarations, same body means a grouped
// selector.
func mergeAdjacentRules(items []optItem) []optItem {
	var out []optItem
	for _, it := range items {
		if !it.isRule() || len(out) == 0 || !out[len(out)-1].isRule() {
			out = append(out, it)
			continue
		}
		prev := &out[len(out)-1]

		if prev.selector == it.selector {
			prev.decls = append(prev.decls, it.decls...)
			continue
		}
		if declsEqual(prev.decls, it.decls) {
			prev.selector = prev.selector + "," + it.selector
			continue
		}
		out = append(out, it)
	}
	return out
}

func declsEqual(a, b []CssDeclaration) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// minifyCSS runs the stylesheet through the tdewolff minifier. Levels 6-9
// progressively lower numeric precision.
func minifyCSS(stylesheet string, level int) (string, error) {
	if level == 0 {
		level = 6
	}
	if level < 1 || level > 9 {
		return "", fmt.Errorf("compression level %d out of range 1-9", level)
	}

	precision := 0 // full precision
	if level >= 6 {
		precision = 10 - level // 6 -> 4 digits, 9 -> 1 digit
	}

	m := minify.New()
	m.Add("text/css", &minifycss.Minifier{Precision: precision})

	var out bytes.Buffer
	if err := m.Minify("text/css", &out, strings.NewReader(stylesheet)); err != nil {
		return "", fmt.Errorf("minify: %w", err)
	}
	return out.String(), nil
}
