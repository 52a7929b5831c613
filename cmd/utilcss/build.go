package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/yacobolo/utilcss"
	"github.com/yacobolo/utilcss/internal/report"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Scan content files and compile utility classes to CSS",
	Long: `Scan content files for utility class candidates, compile the recognized
ones into CSS, and write the stylesheet to the output path.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runBuild,
}

func init() {
	f := buildCmd.Flags()
	f.StringSlice("content", nil, "Glob patterns for content files to scan")
	f.StringP("output", "o", "", "Output CSS file (default: stdout)")
	f.String("gitignore", ".gitignore", "Gitignore file for scan filtering")
	f.Bool("minify", false, "Minify the generated CSS")
	f.String("output-format", "", "Report format: text|json")
}

func runBuild(_ *cobra.Command, _ []string) error {
	config, err := buildBuildConfig()
	if err != nil {
		return err
	}

	log.Debug().Strs("content", config.ContentGlobs).Msg("starting build")

	result, err := utilcss.Build(config)
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	css := result.CSS
	if getBoolWithFallback("minify", "build.minify", false) {
		css, err = utilcss.Optimize(css, utilcss.OptimizeOptions{Minify: true})
		if err != nil {
			return fmt.Errorf("minify failed: %w", err)
		}
	}

	output := getStringWithFallback("output", "build.output", "")
	if output == "" {
		fmt.Print(css)
	} else {
		if err := writeOutputFile(output, css); err != nil {
			return err
		}
		log.Info().Str("path", output).Int("bytes", len(css)).Msg("stylesheet written")
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	if !quiet {
		writeBuildReport(result)
	}

	// Variant conflicts fail the build; unrecognized classes do not.
	for _, d := range result.Diagnostics {
		if d.Severity == utilcss.SeverityError {
			os.Exit(1)
		}
	}
	return nil
}

func writeBuildReport(result *utilcss.BuildResult) {
	useColors := report.ShouldUseColors(getBoolWithFallback("color", "color", false))
	format := getStringWithFallback("output-format", "build.output-format", "text")

	if format == "json" {
		_ = report.WriteJSON(os.Stderr, report.NewJSONReport(
			&result.ScanStats, &result.ClassStats, nil, result.Diagnostics))
		return
	}

	r := report.NewReporter(os.Stderr, useColors)
	r.PrintDiagnostics(result.Diagnostics)
	r.PrintBuildSummary(result.ScanStats, result.ClassStats)
	r.PrintDiagnosticSummary(result.Diagnostics)
}

func writeOutputFile(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	return nil
}
