package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/terraincognita07/healthlog/internal/api"
	"github.com/terraincognita07/healthlog/internal/i18n"
	"github.com/terraincognita07/healthlog/internal/security"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(options *rootOptions) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		Long:  `Start the JSON API server. Every /api route requires a bearer token issued with "healthlog token".`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(options, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if port != "" {
				s.config.Port = port
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return s.serve(ctx)
		},
	}
	cmd.Flags().StringVarP(&port, "port", "p", "", "port to listen on (overrides config)")
	return cmd
}

func (s *session) serve(ctx context.Context) error {
	if err := s.config.ValidateSecret(); err != nil {
		return err
	}
	signingKey, err := security.SigningKey(s.config.SecretKey)
	if err != nil {
		return err
	}

	i18nManager, err := i18n.NewManager(s.config.DefaultLanguage)
	if err != nil {
		return fmt.Errorf("i18n init failed: %w", err)
	}

	tracker, closeDatabase, err := s.openTracker(ctx)
	if err != nil {
		return err
	}
	defer closeDatabase()

	handler, err := api.NewHandler(tracker, signingKey, i18nManager, s.logger)
	if err != nil {
		return fmt.Errorf("handler init failed: %w", err)
	}
	app := api.NewApp(handler)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		s.logger.Info("healthlog listening",
			"address", s.config.Address(),
			"db", s.config.DBPath,
			"tz", s.config.Timezone,
		)
		if err := app.Listen(s.config.Address()); err != nil {
			return fmt.Errorf("server exited: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		s.logger.Info("healthlog stopped")
		return nil
	})

	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
