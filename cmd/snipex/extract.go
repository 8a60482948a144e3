package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/leofalp/snipex/core/extract"
	"github.com/leofalp/snipex/core/query"
	"github.com/leofalp/snipex/core/render"
	"github.com/leofalp/snipex/internal/logging"
	"github.com/leofalp/snipex/internal/utils"
	"github.com/leofalp/snipex/providers/observability/slogobs"
)

var (
	flagFormat        string
	flagCaseSensitive bool
	flagStrict        bool
	flagQuery         string
	flagMarkdown      bool
	flagPretty        bool
)

var extractCmd = &cobra.Command{
	Use:   "extract [file]",
	Short: "Extract a structured snippet from a file or stdin",
	Long: `Extract reads text from the given file (or stdin when omitted), recovers
the first embedded JSON value or tag element, and prints the full result
record as JSON.

Examples:
  snipex extract response.txt
  cat response.txt | snipex extract --format tag --markdown
  snipex extract response.txt --query '.name'
  snipex extract response.txt --strict --pretty`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringVar(&flagFormat, "format", "json", "Snippet format: json or tag")
	extractCmd.Flags().BoolVar(&flagCaseSensitive, "case-sensitive", false, "Compare tag names exactly (tag format only)")
	extractCmd.Flags().BoolVar(&flagStrict, "strict", false, "Exit non-zero on any non-success result and print only the data")
	extractCmd.Flags().StringVar(&flagQuery, "query", "", "jq expression to run over the extracted JSON value")
	extractCmd.Flags().BoolVar(&flagMarkdown, "markdown", false, "Render an extracted tag snippet as Markdown")
	extractCmd.Flags().BoolVar(&flagPretty, "pretty", false, "Pretty-print JSON output")
}

func runExtract(cmd *cobra.Command, args []string) error {
	content, err := readInput(args)
	if err != nil {
		return err
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = logLevel()
	logCfg.FilePath = logFile()

	logger, cleanup, err := logging.Setup(logCfg)
	if err != nil {
		return fmt.Errorf("configuring logging: %w", err)
	}
	defer cleanup()

	observer := slogobs.New(slogobs.WithLogger(logger))

	res := extract.Extract(content,
		extract.WithFormat(extract.Format(flagFormat)),
		extract.WithTagCaseSensitive(flagCaseSensitive),
		extract.WithObserver(observer),
	)

	if flagStrict && !res.OK() {
		return &extract.ResultError{Result: res}
	}

	switch {
	case flagQuery != "":
		if res.Data == nil {
			return fmt.Errorf("no extracted data to query: %s", res.Comments)
		}
		values, err := query.Run(res.Data, flagQuery)
		if err != nil {
			return err
		}
		for _, v := range values {
			fmt.Fprintln(cmd.OutOrStdout(), utils.JSONToString(v, flagPretty))
		}
	case flagMarkdown:
		markdown, err := render.MarkdownResult(res)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), markdown)
	case flagStrict:
		fmt.Fprintln(cmd.OutOrStdout(), utils.JSONToString(res.Data, flagPretty))
	default:
		fmt.Fprintln(cmd.OutOrStdout(), utils.JSONToString(res, flagPretty))
	}
	return nil
}

func readInput(args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", args[0], err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}
