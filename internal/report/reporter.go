package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/yacobolo/utilcss"
)

// Reporter formats diagnostics and run summaries for terminal output.
type Reporter struct {
	w         io.Writer
	useColors bool
}

// NewReporter creates a reporter writing to w.
func NewReporter(w io.Writer, useColors bool) *Reporter {
	return &Reporter{w: w, useColors: useColors}
}

// UseColors returns whether colors are enabled.
func (r *Reporter) UseColors() bool {
	return r.useColors
}

// PrintDiagnostics outputs diagnostics one per line, errors styled red and
// warnings yellow, sorted by source then message.
func (r *Reporter) PrintDiagnostics(diags []utilcss.Diagnostic) {
	sorted := make([]utilcss.Diagnostic, len(diags))
	copy(sorted, diags)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Source != sorted[j].Source {
			return sorted[i].Source < sorted[j].Source
		}
		return sorted[i].Message < sorted[j].Message
	})

	for _, d := range sorted {
		style := StyleYellow
		if d.Severity == utilcss.SeverityError {
			style = StyleRed
		}
		fmt.Fprintf(r.w, "%s %s: %s\n",
			RenderStyle(style, d.Severity+":", r.useColors),
			RenderStyle(StyleCyan, d.Source, r.useColors),
			d.Message)
	}
}

// PrintDiagnosticSummary outputs the issue count line after the diagnostics.
func (r *Reporter) PrintDiagnosticSummary(diags []utilcss.Diagnostic) {
	if len(diags) == 0 {
		return
	}

	var errors, warnings int
	for _, d := range diags {
		switch d.Severity {
		case utilcss.SeverityError:
			errors++
		case utilcss.SeverityWarning:
			warnings++
		}
	}

	fmt.Fprintln(r.w, "")
	switch {
	case errors > 0 && warnings > 0:
		fmt.Fprintf(r.w, "%s (%s, %s)\n",
			pluralizeCount(len(diags), "issue", "issues"),
			pluralizeCount(errors, "error", "errors"),
			pluralizeCount(warnings, "warning", "warnings"))
	default:
		fmt.Fprintf(r.w, "%s\n", pluralizeCount(len(diags), "issue", "issues"))
	}
}

// PrintBuildSummary outputs scan and compile statistics.
func (r *Reporter) PrintBuildSummary(scan utilcss.ScanStats, stats utilcss.ClassStats) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Build Summary", r.useColors))
	fmt.Fprintln(r.w, "-------------")
	fmt.Fprintf(r.w, "Files scanned:     %d", scan.FilesScanned)
	if scan.FilesSkipped > 0 {
		fmt.Fprintf(r.w, " (%d skipped)", scan.FilesSkipped)
	}
	fmt.Fprintln(r.w, "")
	fmt.Fprintf(r.w, "Class candidates:  %d (%d unique)\n", stats.Input, stats.Unique)
	fmt.Fprintf(r.w, "Rules compiled:    %d\n", stats.Compiled)
	fmt.Fprintf(r.w, "Skipped:           %d\n", stats.Skipped)
	if stats.Conflicted > 0 {
		fmt.Fprintf(r.w, "%s %d\n",
			RenderStyle(StyleRed, "Conflicts:        ", r.useColors), stats.Conflicted)
	}
}

// PrintPurgeSummary outputs purge statistics with a savings bar.
func (r *Reporter) PrintPurgeSummary(result utilcss.PurgeResult) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Purge Summary", r.useColors))
	fmt.Fprintln(r.w, "-------------")
	fmt.Fprintf(r.w, "Rules:  %d in, %d kept, %d purged\n",
		result.RulesIn, result.RulesKept, result.RulesPurged)
	fmt.Fprintf(r.w, "Bytes:  %d in, %d out\n", result.BytesIn, result.BytesOut)

	saved := result.SavedPercent()
	fmt.Fprintf(r.w, "%s %s\n",
		progressBar(saved),
		RenderStyle(StyleGreen, fmt.Sprintf("%.1f%% smaller", saved), r.useColors))
}

// progressBar renders percentage as a 20-cell bar.
func progressBar(percentage float64) string {
	const barWidth = 20
	filled := int(percentage / 100 * float64(barWidth))
	if filled > barWidth {
		filled = barWidth
	}

	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < barWidth; i++ {
		if i < filled {
			b.WriteString("█")
		} else {
			b.WriteString("░")
		}
	}
	b.WriteByte(']')
	return b.String()
}

func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
