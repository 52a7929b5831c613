package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/yacobolo/utilcss"
	"github.com/yacobolo/utilcss/internal/report"
)

var purgeCmd = &cobra.Command{
	Use:   "purge [stylesheet]",
	Short: "Remove unused rules from a stylesheet",
	Long: `Scan content files for the classes actually in use and rewrite the
stylesheet without the rules nothing references.`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runPurge,
}

func init() {
	f := purgeCmd.Flags()
	f.String("stylesheet", "", "CSS file to purge")
	f.StringSlice("content", nil, "Glob patterns for content files to scan")
	f.StringP("output", "o", "", "Output CSS file (default: stdout)")
	f.String("gitignore", ".gitignore", "Gitignore file for scan filtering")
	f.StringSlice("safelist", nil, "Class patterns to always keep (doublestar globs)")
	f.Bool("aggressive", false, "Also drop rules whose selectors have no class")
	f.Bool("minify", false, "Minify the purged CSS")
	f.Bool("merge-rules", false, "Merge adjacent rules where cascade-safe")
	f.Bool("remove-duplicates", true, "Drop duplicate properties and rules")
	f.Bool("sort-properties", false, "Sort declarations by property group")
	f.Int("compression-level", 0, "Minifier level 1-9 (0 = default)")
	f.String("output-format", "", "Report format: text|json")
}

func runPurge(_ *cobra.Command, args []string) error {
	stylesheet := getStringWithFallback("stylesheet", "purge.stylesheet", "")
	if len(args) > 0 {
		stylesheet = args[0]
	}
	if stylesheet == "" {
		return fmt.Errorf("no stylesheet given (pass a path or set purge.stylesheet)")
	}

	config := utilcss.PurgeConfig{
		StylesheetPath: stylesheet,
		GitignorePath:  getStringWithFallback("gitignore", "purge.gitignore", ".gitignore"),
		Workers:        getIntWithFallback("workers", "workers", 0),
		Options:        buildPurgeOptions(),
	}
	if content := k.Strings("content"); len(content) > 0 {
		config.ContentGlobs = content
	} else if content := k.Strings("purge.content"); len(content) > 0 {
		config.ContentGlobs = content
	} else {
		config.ContentGlobs = []string{"**/*.html", "**/*.templ"}
	}

	log.Debug().Str("stylesheet", stylesheet).Strs("content", config.ContentGlobs).Msg("starting purge")

	result, diags, err := utilcss.PurgeFile(config)
	if err != nil {
		return fmt.Errorf("purge failed: %w", err)
	}

	output := getStringWithFallback("output", "purge.output", "")
	if output == "" {
		fmt.Print(result.CSS)
	} else {
		if err := writeOutputFile(output, result.CSS); err != nil {
			return err
		}
		log.Info().Str("path", output).Int("bytes", result.BytesOut).Msg("purged stylesheet written")
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	if !quiet {
		writePurgeReport(result, diags)
	}
	return nil
}

func writePurgeReport(result *utilcss.PurgeResult, diags []utilcss.Diagnostic) {
	useColors := report.ShouldUseColors(getBoolWithFallback("color", "color", false))
	format := getStringWithFallback("output-format", "purge.output-format", "text")

	if format == "json" {
		_ = report.WriteJSON(os.Stderr, report.NewJSONReport(nil, nil, result, diags))
		return
	}

	r := report.NewReporter(os.Stderr, useColors)
	r.PrintDiagnostics(diags)
	r.PrintPurgeSummary(*result)
	r.PrintDiagnosticSummary(diags)
}
