package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tsawler/rowscan/tables"
)

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rowscan",
		Short: "Find the table lines of statements and ledgers",
		Long: `rowscan classifies every line of a document as possibly part of a
date-led table or not, using only the positions of the text on the page.

Input may be a PDF, an hOCR file, a JSON fragment file or (when built with
the ocr tag) a scanned image.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().CountP("verbose", "v", "increase log verbosity (-v info, -vv debug)")
	rootCmd.PersistentFlags().String("log-format", "text", "log format (text, json)")
	rootCmd.PersistentFlags().StringP("config", "c", "", "YAML configuration file")

	rootCmd.AddCommand(newClassifyCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// newLogger builds the logger selected by the persistent flags. Logs go to
// the command's error stream.
func newLogger(cmd *cobra.Command) (*slog.Logger, error) {
	verbose, _ := cmd.Flags().GetCount("verbose")
	logFormat, _ := cmd.Flags().GetString("log-format")

	level := slog.LevelWarn
	switch {
	case verbose >= 2:
		level = slog.LevelDebug
	case verbose == 1:
		level = slog.LevelInfo
	}

	return buildLogger(cmd.ErrOrStderr(), logFormat, level)
}

func buildLogger(w io.Writer, logFormat string, level slog.Level) (*slog.Logger, error) {
	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(logFormat) {
	case "text", "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format: %s (must be one of: text, json)", logFormat)
	}
}

// loadConfig reads the --config file on top of the defaults.
func loadConfig(cmd *cobra.Command) (tables.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return tables.DefaultConfig(), nil
	}
	return tables.LoadConfig(path)
}
