package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/yacobolo/utilcss"
)

// JSONReport is the structured export schema for a build or purge run.
type JSONReport struct {
	Version     string               `json:"version"`
	Timestamp   string               `json:"timestamp"`
	Summary     JSONSummary          `json:"summary"`
	Scan        *utilcss.ScanStats   `json:"scan,omitempty"`
	Build       *utilcss.ClassStats  `json:"build,omitempty"`
	Purge       *JSONPurgeStats      `json:"purge,omitempty"`
	Diagnostics []utilcss.Diagnostic `json:"diagnostics"`
}

// JSONSummary contains high-level issue counts.
type JSONSummary struct {
	TotalIssues int `json:"total_issues"`
	Errors      int `json:"errors"`
	Warnings    int `json:"warnings"`
}

// JSONPurgeStats mirrors PurgeResult without the CSS payload.
type JSONPurgeStats struct {
	BytesIn      int     `json:"bytes_in"`
	BytesOut     int     `json:"bytes_out"`
	RulesIn      int     `json:"rules_in"`
	RulesKept    int     `json:"rules_kept"`
	RulesPurged  int     `json:"rules_purged"`
	SavedPercent float64 `json:"saved_percent"`
}

// NewJSONReport assembles the export structure from run results. Any of the
// stats arguments may be nil when that phase did not run.
func NewJSONReport(scan *utilcss.ScanStats, build *utilcss.ClassStats, purge *utilcss.PurgeResult, diags []utilcss.Diagnostic) JSONReport {
	var errors, warnings int
	for _, d := range diags {
		switch d.Severity {
		case utilcss.SeverityError:
			errors++
		case utilcss.SeverityWarning:
			warnings++
		}
	}
	if diags == nil {
		diags = []utilcss.Diagnostic{}
	}

	r := JSONReport{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues: len(diags),
			Errors:      errors,
			Warnings:    warnings,
		},
		Scan:        scan,
		Build:       build,
		Diagnostics: diags,
	}

	if purge != nil {
		r.Purge = &JSONPurgeStats{
			BytesIn:      purge.BytesIn,
			BytesOut:     purge.BytesOut,
			RulesIn:      purge.RulesIn,
			RulesKept:    purge.RulesKept,
			RulesPurged:  purge.RulesPurged,
			SavedPercent: purge.SavedPercent(),
		}
	}
	return r
}

// WriteJSON writes the report as indented JSON.
func WriteJSON(w io.Writer, r JSONReport) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r)
}
