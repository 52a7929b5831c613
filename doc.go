// Package utilcss compiles utility class strings into CSS and strips unused
// rules out of existing stylesheets.
//
// utilcss is the engine behind a utility-first workflow: scan content files
// for class candidates, compile the recognized ones into deterministic CSS,
// and purge a stylesheet down to what is actually used.
//
// # Compiling
//
// Compile class strings into a stylesheet:
//
//	sheet, diags := utilcss.Compile([]string{"flex", "p-4", "hover:bg-blue-500"}, utilcss.CompileOptions{})
//	css := sheet.Serialize()
//
// # Scanning
//
// Collect class candidates from content files:
//
//	scanner := utilcss.NewScanner([]string{"src/**/*.{html,tsx,templ}"})
//	result, err := scanner.Scan()
//
// # Purging
//
// Remove unused rules from a stylesheet:
//
//	result, err := utilcss.Purge(cssText, result.Classes, utilcss.PurgeOptions{Minify: true})
//
// # CLI Tool
//
// utilcss also provides a CLI tool. Install with:
//
//	go install github.com/yacobolo/utilcss/cmd/utilcss@latest
//
// Run "utilcss --help" for the available commands and flags.
package utilcss
