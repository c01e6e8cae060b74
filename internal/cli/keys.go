package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/terraincognita07/healthlog/internal/security"
)

func newKeygenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Print a random value for secret_key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, err := security.GenerateSecret()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), secret)
			return nil
		},
	}
}

func newTokenCommand(options *rootOptions) *cobra.Command {
	var subject string
	var ttl time.Duration

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for the API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(options, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if err := s.config.ValidateSecret(); err != nil {
				return err
			}
			key, err := security.SigningKey(s.config.SecretKey)
			if err != nil {
				return err
			}
			token, err := security.IssueToken(key, subject, ttl, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "local", "token subject")
	cmd.Flags().DurationVar(&ttl, "ttl", security.DefaultTokenTTL, "token lifetime")
	return cmd
}
