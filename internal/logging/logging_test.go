package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNewJSONRespectsLevel(t *testing.T) {
	var buffer bytes.Buffer
	logger, err := New("warn", "json", &buffer)
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}

	logger.Info("hidden")
	logger.Warn("shown", "entries", 3)

	lines := strings.Split(strings.TrimSpace(buffer.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 log line, got %d: %q", len(lines), buffer.String())
	}
	record := map[string]any{}
	if err := json.Unmarshal([]byte(lines[0]), &record); err != nil {
		t.Fatalf("log line is not json: %v", err)
	}
	if record["msg"] != "shown" || record["entries"] != float64(3) {
		t.Fatalf("unexpected record: %v", record)
	}
}

func TestNewText(t *testing.T) {
	var buffer bytes.Buffer
	logger, err := New("", "", &buffer)
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}
	logger.Debug("hidden")
	logger.Info("hello", "lang", "en")
	if got := buffer.String(); !strings.Contains(got, "msg=hello") || !strings.Contains(got, "lang=en") {
		t.Fatalf("unexpected text output: %q", got)
	}
}

func TestNewRejectsUnknownSettings(t *testing.T) {
	if _, err := New("trace", "text", &bytes.Buffer{}); err == nil {
		t.Fatal("New(trace) expected error")
	}
	if _, err := New("info", "xml", &bytes.Buffer{}); err == nil {
		t.Fatal("New(xml) expected error")
	}
	if level, _ := ParseLevel("WARNING"); level != slog.LevelWarn {
		t.Fatalf("ParseLevel(WARNING) = %v", level)
	}
}
