package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/yacobolo/utilcss"
	"github.com/yacobolo/utilcss/internal/report"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "List utility class candidates found in content files",
	Long: `Scan content files and print the deduplicated class candidates, one per
line. Useful for inspecting what a build or purge would see.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runScan,
}

func init() {
	f := scanCmd.Flags()
	f.StringSlice("content", nil, "Glob patterns for content files to scan")
	f.String("gitignore", ".gitignore", "Gitignore file for scan filtering")
	f.Bool("json", false, "Output as JSON")
}

func runScan(_ *cobra.Command, _ []string) error {
	config, err := buildBuildConfig()
	if err != nil {
		return err
	}

	scanner := utilcss.NewScanner(config.ContentGlobs,
		utilcss.WithWorkers(config.Workers),
		utilcss.WithGitignore(config.GitignorePath))

	result, err := scanner.Scan()
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	log.Debug().
		Int("files", result.Stats.FilesScanned).
		Int("classes", len(result.Classes)).
		Msg("scan complete")

	if getBoolWithFallback("json", "scan.json", false) {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Classes []string          `json:"classes"`
			Stats   utilcss.ScanStats `json:"stats"`
		}{result.Classes, result.Stats})
	}

	for _, c := range result.Classes {
		fmt.Println(c)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	if !quiet && len(result.Diagnostics) > 0 {
		useColors := report.ShouldUseColors(getBoolWithFallback("color", "color", false))
		r := report.NewReporter(os.Stderr, useColors)
		r.PrintDiagnostics(result.Diagnostics)
	}
	return nil
}
