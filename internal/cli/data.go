package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/terraincognita07/healthlog/internal/export"
)

func newExportCommand(options *rootOptions) *cobra.Command {
	var formatName string
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a backup of every record",
		Long:  `Write a backup as json, yaml or csv. Without --output the backup goes to stdout; csv holds the health entries only.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := resolveFormat(formatName, output, export.FormatJSON)
			if err != nil {
				return err
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

			snapshot, err := tracker.Export(cmd.Context())
			if err != nil {
				return err
			}

			var buffer bytes.Buffer
			if err := export.Encode(&buffer, snapshot, format, tracker.Language()); err != nil {
				return err
			}
			if output == "" {
				_, err := cmd.OutOrStdout().Write(buffer.Bytes())
				return err
			}
			if err := writeFileAtomic(output, buffer.Bytes()); err != nil {
				return err
			}

			green := color.New(color.FgGreen).SprintFunc()
			fmt.Fprintf(cmd.ErrOrStderr(), "%s exported %d entries to %s\n", green("✓"), len(snapshot.HealthEntries), output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&formatName, "format", "f", "", "json, yaml or csv (default from the file extension, else json)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "file to write (default stdout)")
	return cmd
}

func newImportCommand(options *rootOptions) *cobra.Command {
	var formatName string

	cmd := &cobra.Command{
		Use:   "import <file|->",
		Short: "Replace every record with a backup",
		Long:  `Replace every record with the contents of a json or yaml backup. Use - to read from stdin.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := args[0]
			var format export.Format
			if source != "-" || formatName != "" {
				resolved, err := resolveFormat(formatName, source, "")
				if err != nil {
					return err
				}
				format = resolved
			}

			content, err := readSource(cmd.InOrStdin(), source)
			if err != nil {
				return err
			}
			snapshot, report, err := export.Decode(bytes.NewReader(content), format)
			if err != nil {
				return err
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

			if err := tracker.Import(cmd.Context(), snapshot); err != nil {
				return err
			}

			green := color.New(color.FgGreen).SprintFunc()
			yellow := color.New(color.FgYellow).SprintFunc()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s imported %d entries, %d check-ins and %d period days\n",
				green("✓"), len(snapshot.HealthEntries), len(snapshot.DailyCheckIns), len(snapshot.PeriodEntries))
			if report.Total() > 0 {
				fmt.Fprintf(out, "%s skipped %d invalid records\n", yellow("!"), report.Total())
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&formatName, "format", "f", "", "json or yaml (default from the file extension, else detected)")
	return cmd
}

// resolveFormat prefers the explicit flag, then the file extension.
func resolveFormat(flag string, path string, fallback export.Format) (export.Format, error) {
	if strings.TrimSpace(flag) != "" {
		return export.ParseFormat(flag)
	}
	if ext := filepath.Ext(path); ext != "" {
		if format, err := export.ParseFormat(ext); err == nil {
			return format, nil
		}
	}
	return fallback, nil
}

func readSource(stdin io.Reader, source string) ([]byte, error) {
	if source == "-" {
		return io.ReadAll(stdin)
	}
	content, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("read backup: %w", err)
	}
	return content, nil
}

func writeFileAtomic(path string, content []byte) error {
	temporary, err := os.CreateTemp(filepath.Dir(path), ".healthlog-export-*")
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer os.Remove(temporary.Name())

	if _, err := temporary.Write(content); err != nil {
		temporary.Close()
		return fmt.Errorf("write export file: %w", err)
	}
	if err := temporary.Close(); err != nil {
		return fmt.Errorf("close export file: %w", err)
	}
	if err := os.Rename(temporary.Name(), path); err != nil {
		return fmt.Errorf("move export file: %w", err)
	}
	return nil
}
