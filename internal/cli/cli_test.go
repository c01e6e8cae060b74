package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/terraincognita07/healthlog/internal/security"
	"github.com/terraincognita07/healthlog/internal/services"
)

const testSecret = "0123456789abcdef0123456789abcdef"

// isolate points the configuration at a fresh database in a temporary
// working directory.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("HEALTHLOG_DB_PATH", filepath.Join(dir, "healthlog.db"))
	t.Setenv("HEALTHLOG_SECRET_KEY", testSecret)
	t.Setenv("HEALTHLOG_LOG_LEVEL", "error")
	color.NoColor = true
	return dir
}

func runCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), err
}

// seedEntry logs one entry through the same tracker the commands open.
func seedEntry(t *testing.T, input services.EntryInput) {
	t.Helper()
	s, err := loadSession(&rootOptions{}, &bytes.Buffer{})
	require.NoError(t, err)
	tracker, closeDatabase, err := s.openTracker(context.Background())
	require.NoError(t, err)
	defer closeDatabase()
	_, err = tracker.AddEntry(context.Background(), input)
	require.NoError(t, err)
}

func TestKeygenPrintsValidSecret(t *testing.T) {
	output, err := runCommand(t, "", "keygen")
	require.NoError(t, err)

	secret := strings.TrimSpace(output)
	require.Len(t, secret, security.GeneratedSecretLength)
	require.NoError(t, security.ValidateSecret(secret))
}

func TestTokenIsAcceptedBySigningKey(t *testing.T) {
	isolate(t)

	output, err := runCommand(t, "", "token", "--subject", "phone", "--ttl", "2h")
	require.NoError(t, err)

	key, err := security.SigningKey(testSecret)
	require.NoError(t, err)
	claims, err := security.ParseToken(key, strings.TrimSpace(output), time.Now())
	require.NoError(t, err)
	require.Equal(t, "phone", claims.Subject)
}

func TestTokenRejectsPlaceholderSecret(t *testing.T) {
	isolate(t)
	t.Setenv("HEALTHLOG_SECRET_KEY", "change-me")

	_, err := runCommand(t, "", "token")
	require.ErrorIs(t, err, security.ErrSecretIsDefault)
}

func TestExportImportRoundTrip(t *testing.T) {
	dir := isolate(t)
	seedEntry(t, services.EntryInput{Date: "2024-03-02", Time: "08:00", AilmentTypeID: "headache", Severity: 3})

	backup := filepath.Join(dir, "backup.yaml")
	_, err := runCommand(t, "", "export", "--output", backup)
	require.NoError(t, err)

	content, err := os.ReadFile(backup)
	require.NoError(t, err)
	require.Contains(t, string(content), "ailmentTypeId: headache")

	_, err = runCommand(t, "", "reset", "--yes")
	require.NoError(t, err)

	output, err := runCommand(t, "", "import", backup)
	require.NoError(t, err)
	require.Contains(t, output, "imported 1 entries")

	output, err = runCommand(t, "", "export", "--format", "csv")
	require.NoError(t, err)
	require.Contains(t, output, "2024-03-02,08:00,Headache / Migraine,3")
}

func TestImportReadsStdin(t *testing.T) {
	isolate(t)

	doc := `{"version":"1.0","healthEntries":[{"id":"e1","date":"2024-03-01","time":"9:00","ailmentTypeId":"fatigue","severity":2},{"id":"e2","date":"bad","time":"9:00","ailmentTypeId":"fatigue","severity":2}]}`
	output, err := runCommand(t, doc, "import", "-")
	require.NoError(t, err)
	require.Contains(t, output, "imported 1 entries")
	require.Contains(t, output, "skipped 1 invalid records")
}

func TestResetNeedsConfirmation(t *testing.T) {
	isolate(t)

	_, err := runCommand(t, "", "reset", "--all")
	require.ErrorIs(t, err, errResetNotConfirmed)

	output, err := runCommand(t, "", "reset", "--all", "--yes")
	require.NoError(t, err)
	require.Contains(t, output, "restored to defaults")
}

func TestStatsPrintsSummary(t *testing.T) {
	isolate(t)
	seedEntry(t, services.EntryInput{Date: "2024-03-02", Time: "08:00", AilmentTypeID: "headache", Severity: 4, TriggerIDs: []string{"caffeine"}})
	seedEntry(t, services.EntryInput{Date: "2024-03-09", Time: "20:00", AilmentTypeID: "headache", Severity: 2})

	output, err := runCommand(t, "", "stats", "--month", "2024-03")
	require.NoError(t, err)
	require.Contains(t, output, "March 2024")
	require.Contains(t, output, "Total Entries: 2")
	require.Contains(t, output, "Average Severity: 3.0")
	require.Contains(t, output, "Headache / Migraine")
	require.Contains(t, output, "Caffeine")
	require.Contains(t, output, "Log period data to see correlations")

	output, err = runCommand(t, "", "stats", "--month", "2024-02", "--lang", "zh-HK")
	require.NoError(t, err)
	require.Contains(t, output, "2024年2月")

	_, err = runCommand(t, "", "stats", "--month", "March")
	require.Error(t, err)
}

func TestResolveFormat(t *testing.T) {
	format, err := resolveFormat("", "backup.yml", "")
	require.NoError(t, err)
	require.Equal(t, "yaml", string(format))

	format, err = resolveFormat("csv", "backup.json", "")
	require.NoError(t, err)
	require.Equal(t, "csv", string(format))

	format, err = resolveFormat("", "backup.txt", "json")
	require.NoError(t, err)
	require.Equal(t, "json", string(format))

	_, err = resolveFormat("xml", "", "")
	require.Error(t, err)
}

// chdir changes the working directory for the duration of the test and
// restores it afterwards (equivalent of testing.T.Chdir for Go < 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	previous, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(previous))
	})
}
