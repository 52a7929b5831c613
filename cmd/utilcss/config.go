package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/yacobolo/utilcss"
)

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".utilcss.yaml"
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// CLI flags (highest precedence — only flags that were explicitly set)
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment
// variables. Separated from loadConfig to allow testing without a cobra
// command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (UTILCSS_* prefix)
	if err := k.Load(env.Provider("UTILCSS_", ".", func(s string) string {
		// UTILCSS_BUILD_OUTPUT -> build.output
		// UTILCSS_PURGE_STRICT -> purge.strict
		// UTILCSS_VERBOSE -> verbose
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "UTILCSS_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// variantConfig is the YAML shape of a custom variant definition.
type variantConfig struct {
	Name     string   `koanf:"name"`
	Selector string   `koanf:"selector"`
	Media    string   `koanf:"media"`
	Expands  []string `koanf:"expands"`
}

// buildBuildConfig constructs the library's BuildConfig from koanf state.
func buildBuildConfig() (utilcss.BuildConfig, error) {
	config := utilcss.BuildConfig{
		GitignorePath: getStringWithFallback("gitignore", "build.gitignore", ".gitignore"),
		Workers:       getIntWithFallback("workers", "workers", 0),
	}

	// Content globs: flag key first, then config key
	if content := k.Strings("content"); len(content) > 0 {
		config.ContentGlobs = content
	} else if content := k.Strings("build.content"); len(content) > 0 {
		config.ContentGlobs = content
	} else {
		config.ContentGlobs = []string{
			"**/*.html",
			"**/*.templ",
			"src/**/*.{js,jsx,ts,tsx}",
		}
	}

	var variants []variantConfig
	if err := k.Unmarshal("variants", &variants); err != nil {
		return config, fmt.Errorf("parsing variants config: %w", err)
	}
	for _, v := range variants {
		config.Variants = append(config.Variants, utilcss.CustomVariant{
			Name:     v.Name,
			Selector: v.Selector,
			Media:    v.Media,
			Expands:  v.Expands,
		})
	}

	return config, nil
}

// buildPurgeOptions constructs the library's PurgeOptions from koanf state.
func buildPurgeOptions() utilcss.PurgeOptions {
	// Safelist: flag key first, then config key
	safelist := k.Strings("safelist")
	if len(safelist) == 0 {
		safelist = k.Strings("purge.safelist")
	}

	return utilcss.PurgeOptions{
		Safelist:         safelist,
		Aggressive:       getBoolWithFallback("aggressive", "purge.aggressive", false),
		RemoveDuplicates: getBoolWithFallback("remove-duplicates", "purge.remove-duplicates", true),
		MergeRules:       getBoolWithFallback("merge-rules", "purge.merge-rules", false),
		SortProperties:   getBoolWithFallback("sort-properties", "purge.sort-properties", false),
		Minify:           getBoolWithFallback("minify", "purge.minify", false),
		CompressionLevel: getIntWithFallback("compression-level", "purge.compression-level", 0),
	}
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}
