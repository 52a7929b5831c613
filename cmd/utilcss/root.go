package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "utilcss",
	Short: "Utility-first CSS compiler and purger",
	Long: `Compile utility class strings found in content files into CSS,
and strip unused rules out of existing stylesheets.`,
	// Default behavior: run build when no subcommand is given. loadConfig
	// must run here because buildCmd's PreRunE is not triggered when
	// delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runBuild(buildCmd, nil)
	},
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		setupLogging(cmd)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// setupLogging configures the global zerolog logger from the persistent
// flags. Logs go to stderr so piped CSS output stays clean.
func setupLogging(cmd *cobra.Command) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	quiet, _ := cmd.Flags().GetBool("quiet")

	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	if quiet {
		level = zerolog.Disabled
	}

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", ".utilcss.yaml", "Config file path")
	rootCmd.PersistentFlags().Int("workers", 0, "Concurrent workers (0 = auto)")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(purgeCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
