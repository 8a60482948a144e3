package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagLogLevel string
	flagLogFile  string
)

var rootCmd = &cobra.Command{
	Use:   "snipex",
	Short: "snipex — recover structured snippets from noisy text",
	Long: `snipex extracts a single embedded JSON value or HTML/XML element from
noisy surrounding text, such as model output mixed with commentary or
markdown fences. Every run reports a tri-state verdict (success, check,
fail) instead of erroring on ambiguous input.

Usage:
  snipex extract [file] [flags]`,
}

func init() {
	// Defaults are resolved at run time so values from a .env file loaded in
	// main are honored: flag > environment > built-in default.
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default from SNIPEX_LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log to a rotating file instead of stderr (default from SNIPEX_LOG_FILE)")
}

// logLevel resolves the effective log level.
func logLevel() string {
	if flagLogLevel != "" {
		return flagLogLevel
	}
	return envOr("SNIPEX_LOG_LEVEL", "info")
}

// logFile resolves the effective log file path; empty means stderr.
func logFile() string {
	if flagLogFile != "" {
		return flagLogFile
	}
	return os.Getenv("SNIPEX_LOG_FILE")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
