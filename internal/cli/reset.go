package cli

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var errResetNotConfirmed = errors.New("reset needs --yes")

func newResetCommand(options *rootOptions) *cobra.Command {
	var all bool
	var confirmed bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete logged data",
		Long: `Delete every health entry, check-in, period day and custom symptom.
Ailment types, trigger types and settings stay unless --all is given, which
restores the database to its first-run state.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirmed {
				return errResetNotConfirmed
			}

			s, err := loadSession(options, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			tracker, closeDatabase, err := s.openTracker(cmd.Context())
			if err != nil {
				return err
			}
			defer closeDatabase()

			if all {
				err = tracker.ResetAll(cmd.Context())
			} else {
				err = tracker.ClearUserData(cmd.Context())
			}
			if err != nil {
				return fmt.Errorf("reset: %w", err)
			}

			green := color.New(color.FgGreen).SprintFunc()
			if all {
				fmt.Fprintf(cmd.OutOrStdout(), "%s database restored to defaults\n", green("✓"))
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s logged data deleted\n", green("✓"))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "also restore default types and settings")
	cmd.Flags().BoolVarP(&confirmed, "yes", "y", false, "confirm the deletion")
	return cmd
}
