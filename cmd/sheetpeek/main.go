// Package main provides the CLI entry point for sheetpeek.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/ukaji3/sheetpeek/internal/config"
	"github.com/ukaji3/sheetpeek/internal/logger"
	"github.com/ukaji3/sheetpeek/internal/ui"
	"github.com/ukaji3/sheetpeek/pkg/sheetpeek"
	"github.com/ukaji3/sheetpeek/pkg/sheetpeek/models"
	"github.com/ukaji3/sheetpeek/pkg/sheetpeek/output"
)

var configPath string

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sheetpeek [file.xlsx...]",
		Short: "Print the leading rows of xlsx files",
		Long: `sheetpeek reads the shared strings and first worksheet of each xlsx file
and prints its leading rows as text values. A file that cannot be read is
reported and the remaining files are still processed.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, stdout, stderr)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&configPath, "config", "", "Config file (default: ./sheetpeek.yaml if present)")
	flags.String("dir", "", "Base directory for relative file names")
	flags.String("sheet", "", "Worksheet name (default: first worksheet part)")
	flags.String("format", config.FormatText, "Output format: text, json")
	flags.Int("limit", 60, "Leading rows considered per file (0 = all)")
	flags.Bool("skip-empty", true, "Skip rows without any value")
	flags.Bool("pretty", false, "Pretty-print JSON output")
	flags.Bool("progress", false, "Show a progress bar on stderr")
	flags.BoolP("verbose", "v", false, "Show debug diagnostics")
	flags.String("log-file", "", "Also append diagnostics to this file")

	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd
}

func run(cmd *cobra.Command, args []string, stdout, stderr io.Writer) error {
	cfg, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return err
	}

	if err := logger.Init(stderr, cfg.Log.File, cfg.Log.Verbose); err != nil {
		return err
	}
	defer logger.Close()

	files := args
	if len(files) == 0 {
		files = cfg.Input.Files
	}
	if len(files) == 0 {
		return fmt.Errorf("no input files: pass paths as arguments or set input.files")
	}
	paths := sheetpeek.Paths(cfg.Input.Dir, files)

	var progressOut io.Writer
	if cfg.Output.Progress {
		progressOut = stderr
	}
	progress := ui.NewProgress(len(paths), progressOut)

	opts := sheetpeek.Options{Sheet: cfg.Input.Sheet}
	failed := 0
	results := sheetpeek.Run(paths, opts, func(r models.FileResult) {
		progress.Step(filepath.Base(r.Path))
		if !r.OK() {
			failed++
			logger.Error("Error reading %s: %v", r.Path, r.Err)
			return
		}
		if r.Sheet.SheetPath == "" {
			logger.Warn("%s has no worksheet part; no rows extracted", r.Path)
		}
		logger.Debug("Extracted %s: %d rows, %d shared strings",
			r.Path, len(r.Sheet.Rows), len(r.Sheet.SharedStrings))
	})
	progress.Finish()
	logger.Info("%d files, %d failed", len(results), failed)

	textOpts := output.TextOptions{Limit: cfg.Output.Limit, SkipEmpty: cfg.Output.SkipEmpty}
	if cfg.Output.Format == config.FormatJSON {
		return output.WriteJSON(stdout, results, textOpts, cfg.Output.Pretty)
	}
	return output.WriteText(stdout, results, textOpts)
}
