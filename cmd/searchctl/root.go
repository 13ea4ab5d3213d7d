package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/cesargomez89/soundscout/internal/app"
	"github.com/cesargomez89/soundscout/internal/catalog"
	"github.com/cesargomez89/soundscout/internal/config"
	"github.com/cesargomez89/soundscout/internal/logger"
)

// commandContext builds the search stack lazily so --help never opens the
// database.
type commandContext struct {
	mock     bool
	jsonOut  bool
	logLevel string
	app      *app.App
}

func (c *commandContext) open() (*app.App, error) {
	if c.app != nil {
		return c.app, nil
	}
	cfg := config.Load()
	if c.logLevel != "" {
		cfg.LogLevel = c.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	// stdout carries command output.
	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, File: cfg.LogFile, Output: os.Stderr})

	var provider catalog.Provider
	if c.mock || cfg.MockProvider {
		provider = catalog.NewMockProvider()
	}
	a, err := app.New(cfg, log, provider)
	if err != nil {
		return nil, err
	}
	c.app = a
	return a, nil
}

func (c *commandContext) close() {
	if c.app != nil {
		_ = c.app.Close()
		_ = c.app.Logger.Close()
	}
}

func newRootCommand() *cobra.Command {
	ctx := &commandContext{}

	rootCmd := &cobra.Command{
		Use:           "searchctl",
		Short:         "Query the soundscout search engine from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			ctx.close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().BoolVar(&ctx.mock, "mock", false, "Use the built-in mock catalog instead of the provider URL")
	rootCmd.PersistentFlags().BoolVar(&ctx.jsonOut, "json", false, "Print results as JSON")
	rootCmd.PersistentFlags().StringVar(&ctx.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(newSearchCommand(ctx))
	rootCmd.AddCommand(newLocalCommand(ctx))
	rootCmd.AddCommand(newPrecacheCommand(ctx))
	rootCmd.AddCommand(newExportCommand(ctx))

	return rootCmd
}
