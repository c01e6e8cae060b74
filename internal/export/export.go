// Package export reads and writes backup documents.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/terraincognita07/healthlog/internal/i18n"
	"github.com/terraincognita07/healthlog/internal/models"
	"github.com/terraincognita07/healthlog/internal/services"
	"gopkg.in/yaml.v3"
)

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCSV  Format = "csv"
)

var (
	ErrUnsupportedFormat  = errors.New("unsupported export format")
	ErrUnsupportedVersion = errors.New("unsupported backup version")
	ErrInvalidDocument    = errors.New("invalid backup document")
)

type Format string

// ParseFormat accepts a format name or a file extension.
func ParseFormat(raw string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(raw), ".")) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, raw)
	}
}

func (format Format) ContentType() string {
	switch format {
	case FormatYAML:
		return "application/yaml"
	case FormatCSV:
		return "text/csv; charset=utf-8"
	default:
		return "application/json"
	}
}

// Encode writes snapshot in format. CSV holds the health entries only, with
// ailment and trigger names in language.
func Encode(w io.Writer, snapshot models.Snapshot, format Format, language models.Language) error {
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(snapshot); err != nil {
			return fmt.Errorf("encode json backup: %w", err)
		}
		return nil
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(snapshot); err != nil {
			return fmt.Errorf("encode yaml backup: %w", err)
		}
		return encoder.Close()
	case FormatCSV:
		return encodeCSV(w, snapshot, language)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

var csvHeader = []string{"date", "time", "ailment", "severity", "triggers", "notes"}

func encodeCSV(w io.Writer, snapshot models.Snapshot, language models.Language) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, entry := range services.WithDetails(snapshot.HealthEntries, snapshot.AilmentTypes, snapshot.TriggerTypes) {
		triggers := make([]string, 0, len(entry.Triggers))
		for _, trigger := range entry.Triggers {
			triggers = append(triggers, i18n.LocalizedName(language, trigger.Name, trigger.NameZh))
		}
		record := []string{
			entry.Date,
			entry.Time,
			i18n.LocalizedName(language, entry.AilmentType.Name, entry.AilmentType.NameZh),
			strconv.Itoa(int(entry.Severity)),
			strings.Join(triggers, "; "),
			entry.Notes,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// Decode reads a JSON or YAML backup. Format may be empty, in which case a
// leading '{' selects JSON.
func Decode(r io.Reader, format Format) (models.Snapshot, Report, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return models.Snapshot{}, Report{}, fmt.Errorf("read backup: %w", err)
	}
	if format == "" {
		format = FormatYAML
		if bytes.HasPrefix(bytes.TrimSpace(body), []byte("{")) {
			format = FormatJSON
		}
	}

	var snapshot models.Snapshot
	switch format {
	case FormatJSON:
		err = json.Unmarshal(body, &snapshot)
	case FormatYAML:
		err = yaml.Unmarshal(body, &snapshot)
	default:
		return models.Snapshot{}, Report{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return models.Snapshot{}, Report{}, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	if err := checkVersion(snapshot.Version); err != nil {
		return models.Snapshot{}, Report{}, err
	}
	sanitized, report := Sanitize(snapshot)
	return sanitized, report, nil
}

// checkVersion accepts any version whose major part matches SnapshotVersion.
func checkVersion(version string) error {
	version = strings.TrimPrefix(strings.TrimSpace(version), "v")
	if version == "" {
		return fmt.Errorf("%w: missing version", ErrInvalidDocument)
	}
	major, _, _ := strings.Cut(version, ".")
	supported, _, _ := strings.Cut(models.SnapshotVersion, ".")
	if major != supported {
		return fmt.Errorf("%w: %s", ErrUnsupportedVersion, version)
	}
	return nil
}
