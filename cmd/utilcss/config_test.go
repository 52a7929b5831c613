package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetKoanf creates a fresh koanf instance for each test.
func resetKoanf() {
	k = koanf.New(".")
}

func TestConfigFileLoading(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".utilcss.yaml")
	configContent := `
verbose: true
workers: 8

build:
  content:
    - "custom/**/*.html"
  output: out/app.css
  minify: true

purge:
  stylesheet: out/app.css
  aggressive: true
  compression-level: 9
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	assert.True(t, k.Bool("verbose"))
	assert.Equal(t, 8, k.Int("workers"))
	assert.Equal(t, []string{"custom/**/*.html"}, k.Strings("build.content"))
	assert.Equal(t, "out/app.css", k.String("build.output"))
	assert.True(t, k.Bool("build.minify"))
	assert.True(t, k.Bool("purge.aggressive"))
	assert.Equal(t, 9, k.Int("purge.compression-level"))
}

func TestConfigFileNotFound_UsesDefaults(t *testing.T) {
	resetKoanf()

	// Point to non-existent config — should not error
	require.NoError(t, loadConfigFromPath("/nonexistent/.utilcss.yaml"))

	config, err := buildBuildConfig()
	require.NoError(t, err)
	assert.Equal(t, ".gitignore", config.GitignorePath)
	assert.Equal(t, []string{
		"**/*.html",
		"**/*.templ",
		"src/**/*.{js,jsx,ts,tsx}",
	}, config.ContentGlobs)
	assert.Empty(t, config.Variants)
}

func TestEnvVarOverridesConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".utilcss.yaml")
	configContent := `
build:
  output: from-file.css
purge:
  aggressive: false
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	t.Setenv("UTILCSS_BUILD_OUTPUT", "from-env.css")
	t.Setenv("UTILCSS_PURGE_AGGRESSIVE", "true")

	require.NoError(t, loadConfigFromPath(configPath))

	assert.Equal(t, "from-env.css", k.String("build.output"))
	assert.True(t, k.Bool("purge.aggressive"))
}

func TestBuildBuildConfig_Variants(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".utilcss.yaml")
	configContent := `
variants:
  - name: aria-busy
    selector: "&[aria-busy=true]"
  - name: wide
    media: "(min-width: 1800px)"
  - name: fancy
    expands: ["hover", "focus"]
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	config, err := buildBuildConfig()
	require.NoError(t, err)
	require.Len(t, config.Variants, 3)
	assert.Equal(t, "aria-busy", config.Variants[0].Name)
	assert.Equal(t, "&[aria-busy=true]", config.Variants[0].Selector)
	assert.Equal(t, "(min-width: 1800px)", config.Variants[1].Media)
	assert.Equal(t, []string{"hover", "focus"}, config.Variants[2].Expands)
}

func TestBuildPurgeOptions_Defaults(t *testing.T) {
	resetKoanf()

	opts := buildPurgeOptions()
	assert.Empty(t, opts.Safelist)
	assert.False(t, opts.Aggressive)
	assert.True(t, opts.RemoveDuplicates)
	assert.False(t, opts.MergeRules)
	assert.False(t, opts.SortProperties)
	assert.False(t, opts.Minify)
	assert.Equal(t, 0, opts.CompressionLevel)
}

func TestBuildPurgeOptions_FromConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".utilcss.yaml")
	configContent := `
purge:
  safelist:
    - "bg-*"
    - "grid-cols-?"
  merge-rules: true
  sort-properties: true
  minify: true
  compression-level: 7
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	opts := buildPurgeOptions()
	assert.Equal(t, []string{"bg-*", "grid-cols-?"}, opts.Safelist)
	assert.True(t, opts.MergeRules)
	assert.True(t, opts.SortProperties)
	assert.True(t, opts.Minify)
	assert.Equal(t, 7, opts.CompressionLevel)
}

func TestBuildPurgeOptions_SafelistFlag(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".utilcss.yaml")
	configContent := `
purge:
  safelist:
    - "from-file-*"
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	// flags go through the same posflag provider loadConfig uses
	flags := pflag.NewFlagSet("purge", pflag.ContinueOnError)
	flags.StringSlice("safelist", nil, "")
	require.NoError(t, flags.Parse([]string{"--safelist", "bg-*", "--safelist", "grid-cols-?"}))
	require.NoError(t, k.Load(posflag.Provider(flags, ".", k), nil))

	opts := buildPurgeOptions()
	assert.Equal(t, []string{"bg-*", "grid-cols-?"}, opts.Safelist)
}

func TestInitCommand_CreatesConfigFile(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})

	cmd := rootCmd
	cmd.SetArgs([]string{"init"})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(".utilcss.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "build:")
	assert.Contains(t, string(data), "purge:")
}

func TestInitCommand_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})

	require.NoError(t, os.WriteFile(".utilcss.yaml", []byte("existing"), 0644))

	cmd := rootCmd
	cmd.SetArgs([]string{"init"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInitCommand_ForceOverwrite(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})

	require.NoError(t, os.WriteFile(".utilcss.yaml", []byte("existing"), 0644))

	cmd := rootCmd
	cmd.SetArgs([]string{"init", "--force"})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(".utilcss.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "build:")
}

func TestVersionCommand(t *testing.T) {
	cmd := rootCmd
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
}

func TestGetStringWithFallback(t *testing.T) {
	resetKoanf()

	assert.Equal(t, "default", getStringWithFallback("flag-key", "config.key", "default"))
}

func TestGetBoolWithFallback(t *testing.T) {
	resetKoanf()

	assert.False(t, getBoolWithFallback("flag-key", "config.key", false))
	assert.True(t, getBoolWithFallback("flag-key", "config.key", true))
}

func TestGetIntWithFallback(t *testing.T) {
	resetKoanf()

	assert.Equal(t, 42, getIntWithFallback("flag-key", "config.key", 42))
}
