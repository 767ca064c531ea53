// Package ui provides colored terminal output helpers for the restorm CLI.
package ui

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	keyColor     = color.New(color.FgCyan)
)

// PrintJSON pretty-prints a decoded JSON value to stdout.
func PrintJSON(v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to render response: %w", err)
	}
	fmt.Println(string(raw))
	return nil
}

// Success prints a green confirmation line.
func Success(format string, args ...any) {
	successColor.Printf("✓ "+format+"\n", args...)
}

// Error prints a red error line to stderr.
func Error(format string, args ...any) {
	errorColor.Fprintf(os.Stderr, "✗ "+format+"\n", args...)
}

// Field prints a cyan key with a plain value, used for request echo
// in verbose mode.
func Field(key string, value any) {
	keyColor.Printf("%s: ", key)
	fmt.Printf("%v\n", value)
}
