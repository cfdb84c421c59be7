// Package cmd implements the taskreport CLI commands.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/twiced-technology-gmbh/taskreport/internal/clierr"
	"github.com/twiced-technology-gmbh/taskreport/internal/config"
	"github.com/twiced-technology-gmbh/taskreport/internal/logging"
	"github.com/twiced-technology-gmbh/taskreport/internal/output"
	"github.com/twiced-technology-gmbh/taskreport/internal/task"
)

// version is set at build time via ldflags.
var version = "dev"

// Global flags.
var (
	flagJSON     bool
	flagCompact  bool
	flagDir      string
	flagNoColor  bool
	flagLogLevel string
)

// logger is configured in PersistentPreRun from --log-level.
var logger = logging.Nop()

var rootCmd = &cobra.Command{
	Use:   "taskreport",
	Short: "Task list with width-aware table reports",
	Long: `taskreport keeps tasks as markdown files and prints them as table reports.
Hierarchical projects (Home.Repairs.Kitchen) can be shown in full, by top-level
parent, or indented one level per segment.`,
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		level := flagLogLevel
		if level == "" {
			level = os.Getenv(logging.EnvLevel)
		}
		if level == "" {
			level = logging.DefaultLevel
		}
		logger = logging.New(os.Stderr, level)
		slog.SetDefault(logger)

		if colorDisabled() {
			lipgloss.SetColorProfile(termenv.Ascii)
			output.DisableColor()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagCompact, "compact", false, "compact one-line-per-record output")
	rootCmd.PersistentFlags().BoolVar(&flagCompact, "oneline", false, "alias for --compact")
	rootCmd.PersistentFlags().StringVar(&flagDir, "dir", "", "path to board directory")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable color output")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "",
		"log level: DEBUG, INFO, WARN or ERROR (env "+logging.EnvLevel+")")
}

// Execute runs the root command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	_, err := rootCmd.ExecuteContextC(ctx)
	stop()
	if err == nil {
		return
	}

	w := os.Stderr
	format := outputFormat()
	if format == output.FormatJSON {
		w = os.Stdout
	}
	os.Exit(output.Error(w, format, err))
}

func colorDisabled() bool {
	return flagNoColor || os.Getenv("NO_COLOR") != "" || outputFormat() != output.FormatTable
}

// resolveDir returns the board directory from --dir or by walking upward
// from the working directory.
func resolveDir() (string, error) {
	if flagDir != "" {
		return flagDir, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting working directory: %w", err)
	}
	return config.FindDir(cwd)
}

// loadConfig finds and loads the board config.
func loadConfig() (*config.Config, error) {
	dir, err := resolveDir()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(dir)
	if errors.Is(err, config.ErrNotFound) {
		return nil, clierr.New(clierr.BoardNotFound, err.Error()).
			WithDetails(map[string]any{"dir": dir})
	}
	if err != nil {
		return nil, err
	}
	logger.Debug("config loaded", "dir", cfg.Dir(), "version", cfg.Version)
	return cfg, nil
}

// outputFormat returns the detected output format from flags/env.
func outputFormat() output.Format {
	return output.Detect(flagJSON, flagCompact)
}

// printWarnings writes task read warnings to stderr.
func printWarnings(warnings []task.ReadWarning) {
	for _, w := range warnings {
		logger.Warn("skipping malformed task file", "file", w.File, "error", w.Err)
	}
}
