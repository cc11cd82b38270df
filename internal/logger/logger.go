package logger

import (
	"github.com/fatih/color" // Import the fatih/color package for colored console output
)

// Define colorized printing functions for different log levels using fatih/color.
// These are package-level variables holding functions that behave like fmt.Printf,
// but with text colored appropriately for the log level.

// Info logs informational messages in green color.
var Info = color.New(color.FgGreen).PrintfFunc()

// Warn logs warning messages in bright magenta color.
var Warn = color.New(color.FgHiMagenta).PrintfFunc()

// Error logs error messages in red color.
var Error = color.New(color.FgRed).PrintfFunc()

// Plain prints uncolored output, used for prompts and progress lines that should
// not change color between samples.
var Plain = color.New(color.Reset).PrintfFunc()

// Debug logs debug messages in cyan color if enabled, otherwise is a no-op.
// It starts as a no-op so packages can log before Init runs (tests, early flag parsing).
var Debug = func(format string, a ...any) {}

// Init initializes the logger package, specifically enabling or disabling debug logging.
// When enabled, Debug will print messages in cyan color.
// When disabled, Debug will be a no-op function that silently ignores debug logs.
func Init(enableDebug bool) {
	if enableDebug {
		Debug = color.New(color.FgCyan).PrintfFunc()
	} else {
		Debug = func(format string, a ...any) {}
	}
}
