package utilcss

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// PurgeOptions controls what the purger keeps and how the survivors are
// rewritten.
type PurgeOptions struct {
	// Safelist patterns are doublestar globs matched against class names,
	// e.g. "bg-*" or "grid-cols-?". Matching classes are never purged.
	Safelist []string

	// Aggressive additionally drops rules whose selectors contain no class
	// at all (element and attribute selectors). The default keeps them.
	Aggressive bool

	RemoveDuplicates bool
	MergeRules       bool
	SortProperties   bool

	// Minify runs the surviving CSS through the minifier.
	Minify bool

	// CompressionLevel 1-9 tunes the minifier; see Optimize. Zero means
	// the default level.
	CompressionLevel int
}

// PurgeResult reports what the purge did, with byte-accurate sizes.
type PurgeResult struct {
	CSS string

	BytesIn     int `json:"bytes_in"`
	BytesOut    int `json:"bytes_out"`
	RulesIn     int `json:"rules_in"`
	RulesKept   int `json:"rules_kept"`
	RulesPurged int `json:"rules_purged"`

	Elapsed time.Duration `json:"elapsed_ns"`
}

// SavedPercent is how much of the input the purge removed.
func (r PurgeResult) SavedPercent() float64 {
	if r.BytesIn == 0 {
		return 0
	}
	return 100 * float64(r.BytesIn-r.BytesOut) / float64(r.BytesIn)
}

// Purge removes rules whose classes do not appear in the used set. The
// stylesheet is walked with a real CSS parser, so selectors with escaped
// characters (.hover\:bg-blue-500) resolve to their unescaped class names
// before matching. At-rule blocks left empty by purging are dropped.
func Purge(stylesheet string, used []string, opts PurgeOptions) (*PurgeResult, error) {
	start := time.Now()

	usedSet := make(map[string]bool, len(used))
	for _, c := range used {
		usedSet[c] = true
	}

	keep := func(classes []string) bool {
		if len(classes) == 0 {
			return !opts.Aggressive
		}
		for _, c := range classes {
			if usedSet[c] {
				return true
			}
			for _, pattern := range opts.Safelist {
				if ok, err := doublestar.Match(pattern, c); err == nil && ok {
					return true
				}
			}
		}
		return false
	}

	out, rulesIn, rulesKept, err := purgeWalk(stylesheet, keep)
	if err != nil {
		return nil, err
	}

	result := &PurgeResult{
		BytesIn:     len(stylesheet),
		RulesIn:     rulesIn,
		RulesKept:   rulesKept,
		RulesPurged: rulesIn - rulesKept,
	}

	final, err := Optimize(out, OptimizeOptions{
		RemoveDuplicates: opts.RemoveDuplicates,
		MergeRules:       opts.MergeRules,
		SortProperties:   opts.SortProperties,
		Minify:           opts.Minify,
		CompressionLevel: opts.CompressionLevel,
	})
	if err != nil {
		return nil, err
	}

	result.CSS = final
	result.BytesOut = len(final)
	result.Elapsed = time.Since(start)
	return result, nil
}

// purgeFrame buffers the body of one at-rule block so the block can be
// dropped wholesale when everything inside it was purged.
type purgeFrame struct {
	header bytes.Buffer // "@media (min-width: 640px){"
	body   bytes.Buffer
	kept   int
}

// purgeWalk streams the stylesheet through the CSS parser, writing kept
// rules and counting the rest.
func purgeWalk(stylesheet string, keep func(classes []string) bool) (string, int, int, error) {
	p := css.NewParser(parse.NewInputString(stylesheet), false)

	var root purgeFrame
	stack := []*purgeFrame{&root}
	top := func() *purgeFrame { return stack[len(stack)-1] }

	var (
		rulesIn, rulesKept int
		pendingSelectors   [][]byte // qualified selectors before the final one
		pendingClasses     []string
		skipping           bool
	)

	for {
		gt, _, data := p.Next()

		switch gt {
		case css.ErrorGrammar:
			if err := p.Err(); err == io.EOF {
				if len(stack) != 1 {
					return "", 0, 0, fmt.Errorf("unbalanced at-rule block")
				}
				return root.body.String(), rulesIn, rulesKept, nil
			}
			return "", 0, 0, fmt.Errorf("parse stylesheet: %w", p.Err())

		case css.CommentGrammar:
			// dropped: purge output is machine-written

		case css.AtRuleGrammar:
			// block-less at-rules (@import, @charset) pass through
			top().body.Write(data)
			writeTokens(&top().body, p.Values())
			top().body.WriteByte(';')

		case css.BeginAtRuleGrammar:
			frame := &purgeFrame{}
			frame.header.Write(data)
			writeTokens(&frame.header, p.Values())
			frame.header.WriteByte('{')
			stack = append(stack, frame)

		case css.EndAtRuleGrammar:
			if len(stack) < 2 {
				return "", 0, 0, fmt.Errorf("unbalanced at-rule close")
			}
			frame := top()
			stack = stack[:len(stack)-1]
			// a block left empty by purging disappears entirely
			if frame.body.Len() > 0 {
				parent := top()
				frame.header.WriteTo(&parent.body)
				frame.body.WriteTo(&parent.body)
				parent.body.WriteByte('}')
				parent.kept += frame.kept
			}

		case css.QualifiedRuleGrammar:
			// one selector of a comma-separated list; the last arrives with
			// the BeginRulesetGrammar event
			sel := renderTokens(p.Values())
			pendingSelectors = append(pendingSelectors, sel)
			pendingClasses = append(pendingClasses, selectorClasses(p.Values())...)

		case css.BeginRulesetGrammar:
			rulesIn++
			classes := append(pendingClasses, selectorClasses(p.Values())...)
			if !keep(classes) {
				skipping = true
				pendingSelectors = nil
				pendingClasses = nil
				continue
			}
			rulesKept++
			top().kept++

			body := &top().body
			for _, sel := range pendingSelectors {
				body.Write(sel)
				body.WriteByte(',')
			}
			body.Write(data)
			writeTokens(body, p.Values())
			body.WriteByte('{')
			pendingSelectors = nil
			pendingClasses = nil

		case css.EndRulesetGrammar:
			if skipping {
				skipping = false
				continue
			}
			top().body.WriteByte('}')

		case css.DeclarationGrammar, css.CustomPropertyGrammar:
			if skipping {
				continue
			}
			body := &top().body
			body.Write(data)
			body.WriteByte(':')
			writeTokens(body, p.Values())
			body.WriteByte(';')

		case css.TokenGrammar:
			if skipping {
				continue
			}
			top().body.Write(data)
		}
	}
}

func writeTokens(b *bytes.Buffer, tokens []css.Token) {
	for _, t := range tokens {
		b.Write(t.Data)
	}
}

func renderTokens(tokens []css.Token) []byte {
	var b bytes.Buffer
	writeTokens(&b, tokens)
	return b.Bytes()
}

// selectorClasses extracts every unescaped class name from a selector's
// token stream: Delim('.') followed by an Ident.
func selectorClasses(tokens []css.Token) []string {
	var classes []string
	for i := 0; i+1 < len(tokens); i++ {
		if tokens[i].TokenType != css.DelimToken || !bytes.Equal(tokens[i].Data, []byte(".")) {
			continue
		}
		if tokens[i+1].TokenType != css.IdentToken {
			continue
		}
		classes = append(classes, UnescapeClass(string(tokens[i+1].Data)))
	}
	return classes
}
