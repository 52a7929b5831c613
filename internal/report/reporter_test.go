package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yacobolo/utilcss"
)

func TestPrintDiagnostics(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, false)

	r.PrintDiagnostics([]utilcss.Diagnostic{
		{Severity: utilcss.SeverityWarning, Source: "b.html", Message: "cannot read file"},
		{Severity: utilcss.SeverityError, Source: "a:class", Message: "conflicting modifiers"},
	})

	out := buf.String()
	require.Contains(t, out, "error: a:class: conflicting modifiers")
	require.Contains(t, out, "warning: b.html: cannot read file")
	// sorted by source
	require.Less(t, strings.Index(out, "error:"), strings.Index(out, "warning:"))
}

func TestPrintDiagnosticSummary(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, false)

	r.PrintDiagnosticSummary(nil)
	require.Empty(t, buf.String())

	r.PrintDiagnosticSummary([]utilcss.Diagnostic{
		{Severity: utilcss.SeverityError},
		{Severity: utilcss.SeverityWarning},
		{Severity: utilcss.SeverityWarning},
	})
	require.Contains(t, buf.String(), "3 issues (1 error, 2 warnings)")
}

func TestPrintBuildSummary(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, false)

	r.PrintBuildSummary(
		utilcss.ScanStats{FilesScanned: 12, FilesSkipped: 3},
		utilcss.ClassStats{Input: 40, Unique: 25, Compiled: 20, Skipped: 5},
	)

	out := buf.String()
	require.Contains(t, out, "Build Summary")
	require.Contains(t, out, "Files scanned:     12 (3 skipped)")
	require.Contains(t, out, "Class candidates:  40 (25 unique)")
	require.Contains(t, out, "Rules compiled:    20")
	require.NotContains(t, out, "Conflicts")
}

func TestPrintPurgeSummary(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, false)

	r.PrintPurgeSummary(utilcss.PurgeResult{
		BytesIn: 200, BytesOut: 50,
		RulesIn: 10, RulesKept: 4, RulesPurged: 6,
	})

	out := buf.String()
	require.Contains(t, out, "10 in, 4 kept, 6 purged")
	require.Contains(t, out, "200 in, 50 out")
	require.Contains(t, out, "75.0% smaller")
}

func TestProgressBar(t *testing.T) {
	require.Equal(t, "[░░░░░░░░░░░░░░░░░░░░]", progressBar(0))
	require.Equal(t, "[██████████░░░░░░░░░░]", progressBar(50))
	require.Equal(t, "[████████████████████]", progressBar(100))
	require.Equal(t, "[████████████████████]", progressBar(150))
}

func TestPluralizeCount(t *testing.T) {
	require.Equal(t, "1 issue", pluralizeCount(1, "issue", "issues"))
	require.Equal(t, "2 issues", pluralizeCount(2, "issue", "issues"))
}
