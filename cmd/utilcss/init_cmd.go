package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .utilcss.yaml config file",
	Long:  `Create a .utilcss.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".utilcss.yaml"); err == nil && !force {
			return fmt.Errorf(".utilcss.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".utilcss.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .utilcss.yaml")
		return nil
	},
}

const defaultConfig = `# utilcss configuration
# Docs: https://github.com/yacobolo/utilcss

# Shared settings
verbose: false
workers: 0               # 0 = auto

# Build settings
build:
  content:
    - "**/*.html"
    - "**/*.templ"
    - "src/**/*.{js,jsx,ts,tsx}"
  output: dist/utilcss.css
  gitignore: .gitignore
  minify: false

# Custom variants
# variants:
#   - name: aria-busy
#     selector: "&[aria-busy=true]"
#   - name: wide
#     media: "(min-width: 1800px)"

# Purge settings
purge:
  stylesheet: dist/utilcss.css
  content:
    - "**/*.html"
    - "**/*.templ"
  safelist: []             # doublestar globs, e.g. "bg-*"
  aggressive: false
  remove-duplicates: true
  merge-rules: false
  sort-properties: false
  minify: false
  compression-level: 0     # 1-9, 0 = default
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
