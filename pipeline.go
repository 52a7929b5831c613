package utilcss

import (
	"fmt"
	"os"
)

// BuildConfig holds the scan-and-compile pipeline configuration.
type BuildConfig struct {
	// ContentGlobs are doublestar patterns for the files to scan.
	ContentGlobs []string

	// GitignorePath points at exclusion rules for the scan; empty disables
	// gitignore filtering.
	GitignorePath string

	// Variants holds user-defined custom variants.
	Variants []CustomVariant

	// Registry overrides the default matcher set.
	Registry *Registry

	Workers int
}

// BuildResult is the outcome of a full scan-and-compile run.
type BuildResult struct {
	Stylesheet  *Stylesheet
	CSS         string
	ScanStats   ScanStats
	ClassStats  ClassStats
	Diagnostics []Diagnostic
}

// Build scans content files for class candidates and compiles them into a
// stylesheet.
func Build(config BuildConfig) (*BuildResult, error) {
	if len(config.ContentGlobs) == 0 {
		return nil, fmt.Errorf("no content patterns configured")
	}

	scanOpts := []ScannerOption{}
	if config.Workers > 0 {
		scanOpts = append(scanOpts, WithWorkers(config.Workers))
	}
	if config.GitignorePath != "" {
		scanOpts = append(scanOpts, WithGitignore(config.GitignorePath))
	}

	scanner := NewScanner(config.ContentGlobs, scanOpts...)
	scan, err := scanner.Scan()
	if err != nil {
		return nil, fmt.Errorf("scan content: %w", err)
	}

	sheet, diags, stats := CompileWithStats(scan.Classes, CompileOptions{
		Registry: config.Registry,
		Custom:   NewCustomVariants(config.Variants...),
		Workers:  config.Workers,
	})

	return &BuildResult{
		Stylesheet:  sheet,
		CSS:         sheet.Serialize(),
		ScanStats:   scan.Stats,
		ClassStats:  stats,
		Diagnostics: append(scan.Diagnostics, diags...),
	}, nil
}

// PurgeConfig holds the scan-and-purge pipeline configuration.
type PurgeConfig struct {
	// StylesheetPath is the CSS file to purge.
	StylesheetPath string

	ContentGlobs  []string
	GitignorePath string
	Workers       int

	Options PurgeOptions
}

// PurgeFile scans content files and purges the stylesheet down to the
// classes they use.
func PurgeFile(config PurgeConfig) (*PurgeResult, []Diagnostic, error) {
	if len(config.ContentGlobs) == 0 {
		return nil, nil, fmt.Errorf("no content patterns configured")
	}

	raw, err := os.ReadFile(config.StylesheetPath)
	if err != nil {
		return nil, nil, fmt.Errorf("read stylesheet: %w", err)
	}

	scanOpts := []ScannerOption{}
	if config.Workers > 0 {
		scanOpts = append(scanOpts, WithWorkers(config.Workers))
	}
	if config.GitignorePath != "" {
		scanOpts = append(scanOpts, WithGitignore(config.GitignorePath))
	}

	scanner := NewScanner(config.ContentGlobs, scanOpts...)
	scan, err := scanner.Scan()
	if err != nil {
		return nil, nil, fmt.Errorf("scan content: %w", err)
	}

	result, err := Purge(string(raw), scan.Classes, config.Options)
	if err != nil {
		return nil, scan.Diagnostics, err
	}
	return result, scan.Diagnostics, nil
}
