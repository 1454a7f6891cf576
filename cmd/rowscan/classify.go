package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tsawler/rowscan"
	"github.com/tsawler/rowscan/format"
	"github.com/tsawler/rowscan/report"
)

func newClassifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify [file...]",
		Short: "Classify the lines of one or more documents",
		Long: `Classify every line of each document as possibly part of a table.

The text report lists each line as "line=N text", with a T in front of the
lines that are possibly part of a table.

Examples:
  rowscan classify statement.pdf
  rowscan classify statement.pdf --pages 2-4 --diagnostics
  rowscan classify scan.hocr --format json --output lines.json
  rowscan classify statement.pdf --annotate checked.pdf`,
		Args: cobra.MinimumNArgs(1),
		RunE: runClassify,
	}

	cmd.Flags().StringP("format", "f", "text", "output format (text, json, csv, pdf)")
	cmd.Flags().StringP("output", "o", "", "output file (default: stdout)")
	cmd.Flags().String("pages", "", "pages to classify (e.g., '1-5', '1,3,5')")
	cmd.Flags().Int("window", 0, "lines per classification window (default from config)")
	cmd.Flags().Bool("table-only", false, "list only lines classified as part of a table")
	cmd.Flags().Bool("diagnostics", false, "print the diagnostic of every line")
	cmd.Flags().String("annotate", "", "also write an annotated PDF to this file")
	cmd.Flags().String("input-format", "auto", "input format (auto, pdf, hocr, json, image)")
	cmd.Flags().StringP("language", "l", "eng", "OCR language for image input")

	return cmd
}

func runClassify(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(cmd)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	formatName, _ := cmd.Flags().GetString("format")
	outputFile, _ := cmd.Flags().GetString("output")
	pagesFlag, _ := cmd.Flags().GetString("pages")
	window, _ := cmd.Flags().GetInt("window")
	tableOnly, _ := cmd.Flags().GetBool("table-only")
	diagnostics, _ := cmd.Flags().GetBool("diagnostics")
	annotate, _ := cmd.Flags().GetString("annotate")
	inputFormat, _ := cmd.Flags().GetString("input-format")
	language, _ := cmd.Flags().GetString("language")

	outFormat, err := report.ParseFormat(formatName)
	if err != nil {
		return err
	}
	if outFormat == report.FormatPDF && outputFile == "" {
		return errors.New("pdf output requires --output")
	}
	inFormat, err := parseInputFormat(inputFormat)
	if err != nil {
		return err
	}

	var pages []int
	if pagesFlag != "" {
		pages, err = parsePageRange(pagesFlag)
		if err != nil {
			return fmt.Errorf("invalid page range: %w", err)
		}
	}
	if window > 0 {
		cfg.WindowSize = window
	}

	// Scan everything first so a failure leaves no partial output
	var all []report.PageResult
	for _, file := range args {
		sc := rowscan.Open(file).
			Format(inFormat).
			WithConfig(cfg).
			WithLogger(logger).
			WithTableCache().
			Language(language)
		if len(pages) > 0 {
			sc = sc.Pages(pages...)
		}

		results, warnings, err := sc.Scan()
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		for _, w := range warnings {
			logger.Warn("page skipped", "file", file, "page", w.Page, "reason", w.Message)
		}
		logger.Info("classified", "file", file, "pages", len(results))
		all = append(all, results...)
	}

	var out io.Writer = cmd.OutOrStdout()
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if outFormat == report.FormatText {
		err = report.WriteText(out, all, report.TextOptions{Diagnostics: diagnostics, TableOnly: tableOnly})
	} else {
		err = report.Write(out, all, outFormat)
	}
	if err != nil {
		return err
	}

	if annotate != "" {
		if err := writeAnnotated(annotate, all); err != nil {
			return err
		}
		logger.Info("annotated PDF written", "path", annotate)
	}
	return nil
}

func writeAnnotated(path string, results []report.PageResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create annotated PDF: %w", err)
	}
	if err := report.WritePDF(f, results); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func parseInputFormat(name string) (format.Format, error) {
	switch strings.ToLower(name) {
	case "auto", "":
		return format.Unknown, nil
	case "pdf":
		return format.PDF, nil
	case "hocr", "html":
		return format.HOCR, nil
	case "json":
		return format.JSON, nil
	case "image":
		return format.Image, nil
	default:
		return format.Unknown, fmt.Errorf("invalid input format: %s (must be one of: auto, pdf, hocr, json, image)", name)
	}
}
