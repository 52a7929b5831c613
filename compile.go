package utilcss

import (
	"fmt"
	"runtime"
	"sort"
	"sync"
)

// CompileOptions configures a compilation run. The zero value compiles with
// the default registry, no custom variants, and a single worker.
type CompileOptions struct {
	Registry *Registry
	Custom   *CustomVariants

	// Workers > 1 compiles classes concurrently. Output is deterministic
	// regardless of worker count: rules are inserted in input order.
	Workers int
}

func (o CompileOptions) withDefaults() CompileOptions {
	if o.Registry == nil {
		o.Registry = DefaultRegistry()
	}
	if o.Custom == nil {
		o.Custom = NewCustomVariants()
	}
	if o.Workers <= 0 {
		o.Workers = 1
	}
	if o.Workers > runtime.NumCPU()*2 {
		o.Workers = runtime.NumCPU() * 2
	}
	return o
}

// compiled is the per-class result before stylesheet insertion.
type compiled struct {
	rule CssRule
	ok   bool
	diag *Diagnostic
}

// Compile turns a set of class strings into a stylesheet. Unrecognized
// utilities are skipped silently; variant conflicts surface as error
// diagnostics. Duplicate class strings collapse to a single rule.
func Compile(classes []string, opts CompileOptions) (*Stylesheet, []Diagnostic) {
	opts = opts.withDefaults()

	unique := dedupeClasses(classes)
	results := make([]compiled, len(unique))

	if opts.Workers == 1 || len(unique) < 2 {
		for i, class := range unique {
			results[i] = compileClass(class, opts)
		}
	} else {
		var wg sync.WaitGroup
		jobs := make(chan int)
		for w := 0; w < opts.Workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := range jobs {
					results[i] = compileClass(unique[i], opts)
				}
			}()
		}
		for i := range unique {
			jobs <- i
		}
		close(jobs)
		wg.Wait()
	}

	sheet := NewStylesheet()
	var diags []Diagnostic
	for _, res := range results {
		if res.diag != nil {
			diags = append(diags, *res.diag)
		}
		if res.ok {
			sheet.Add(res.rule)
		}
	}
	return sheet, diags
}

// CompileSorted is Compile with the input classes sorted first, for callers
// that collect classes from unordered sources and want stable output.
func CompileSorted(classes []string, opts CompileOptions) (*Stylesheet, []Diagnostic) {
	sorted := make([]string, len(classes))
	copy(sorted, classes)
	sort.Strings(sorted)
	return Compile(sorted, opts)
}

func compileClass(class string, opts CompileOptions) compiled {
	modifiers, base, important := Tokenize(class, opts.Custom)
	if base == "" {
		return compiled{}
	}

	variant, err := ResolveVariants(modifiers, opts.Custom)
	if err != nil {
		return compiled{diag: &Diagnostic{
			Severity: SeverityError,
			Source:   class,
			Message:  err.Error(),
		}}
	}

	decls := opts.Registry.ResolveDeclarations(base)
	if decls == nil {
		// Not a utility class. Content scanning over-captures by design,
		// so this is expected and not worth a diagnostic.
		return compiled{}
	}

	return compiled{rule: AssembleRule(class, variant, decls, important), ok: true}
}

// CompileToCSS is the convenience entry point: compile and serialize in one
// call.
func CompileToCSS(classes []string, opts CompileOptions) (string, []Diagnostic) {
	sheet, diags := Compile(classes, opts)
	return sheet.Serialize(), diags
}

func dedupeClasses(classes []string) []string {
	seen := make(map[string]struct{}, len(classes))
	out := make([]string, 0, len(classes))
	for _, c := range classes {
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

// ClassStats summarizes a compilation for reporting.
type ClassStats struct {
	Input      int `json:"input"`
	Unique     int `json:"unique"`
	Compiled   int `json:"compiled"`
	Skipped    int `json:"skipped"`
	Conflicted int `json:"conflicted"`
}

func (s ClassStats) String() string {
	return fmt.Sprintf("%d classes in (%d unique), %d compiled, %d skipped, %d conflicts",
		s.Input, s.Unique, s.Compiled, s.Skipped, s.Conflicted)
}

// CompileWithStats is Compile plus a summary of what happened, for CLI
// reporting.
func CompileWithStats(classes []string, opts CompileOptions) (*Stylesheet, []Diagnostic, ClassStats) {
	unique := dedupeClasses(classes)
	sheet, diags := Compile(unique, opts)

	stats := ClassStats{
		Input:    len(classes),
		Unique:   len(unique),
		Compiled: sheet.Len(),
	}
	for _, d := range diags {
		if d.Severity == SeverityError {
			stats.Conflicted++
		}
	}
	stats.Skipped = stats.Unique - stats.Compiled - stats.Conflicted
	return sheet, diags, stats
}
