// Package main provides the utilcss CLI for compiling utility classes to
// CSS and purging unused rules from stylesheets.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
