// Package cli implements the healthlog command line: the API server and the
// maintenance commands that work on the local database.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/terraincognita07/healthlog/internal/config"
	"github.com/terraincognita07/healthlog/internal/db"
	"github.com/terraincognita07/healthlog/internal/logging"
	"github.com/terraincognita07/healthlog/internal/models"
	"github.com/terraincognita07/healthlog/internal/state"
)

type rootOptions struct {
	configFile string
	noColor    bool
}

// NewRootCommand wires every subcommand. Output goes to the command's
// configured writers so callers can capture it.
func NewRootCommand() *cobra.Command {
	options := &rootOptions{}

	root := &cobra.Command{
		Use:           "healthlog",
		Short:         "Personal health and period tracker",
		Long:          `Healthlog records ailments, daily moods and period days in a local SQLite database and serves them over a small JSON API.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if options.noColor {
				color.NoColor = true
			}
		},
	}

	root.PersistentFlags().StringVar(&options.configFile, "config", "", "path to a config file (default ./config.yaml)")
	root.PersistentFlags().BoolVar(&options.noColor, "no-color", false, "disable coloured output")

	root.AddCommand(
		newServeCommand(options),
		newStatsCommand(options),
		newExportCommand(options),
		newImportCommand(options),
		newResetCommand(options),
		newKeygenCommand(),
		newTokenCommand(options),
	)
	return root
}

// Execute runs the command line and returns the process exit code.
func Execute() int {
	root := NewRootCommand()
	if err := root.Execute(); err != nil {
		red := color.New(color.FgRed).SprintFunc()
		fmt.Fprintf(os.Stderr, "%s %v\n", red("Error:"), err)
		return 1
	}
	return 0
}

type session struct {
	config *config.Config
	logger *slog.Logger
}

func loadSession(options *rootOptions, logOutput io.Writer) (*session, error) {
	cfg, err := config.Load(options.configFile)
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, logOutput)
	if err != nil {
		return nil, err
	}
	return &session{config: cfg, logger: logger}, nil
}

// openTracker opens the configured database and loads the tracker. The
// returned function closes the database.
func (s *session) openTracker(ctx context.Context) (*state.Tracker, func(), error) {
	location, err := s.config.Location()
	if err != nil {
		return nil, nil, err
	}

	database, err := db.OpenSQLite(ctx, s.config.DBPath, s.logger)
	if err != nil {
		return nil, nil, fmt.Errorf("database init failed: %w", err)
	}
	closeDatabase := func() {
		if err := db.Close(database); err != nil {
			s.logger.Warn("close database", "error", err)
		}
	}

	tracker := state.New(db.NewStore(database),
		state.WithLocation(location),
		state.WithLogger(s.logger),
		state.WithLanguage(models.Language(s.config.DefaultLanguage)),
	)
	if err := tracker.Initialize(ctx); err != nil {
		closeDatabase()
		return nil, nil, err
	}
	return tracker, closeDatabase, nil
}
