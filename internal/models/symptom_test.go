package models

import (
	"encoding/json"
	"testing"
)

func TestParseSymptom(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantCustom bool
		wantText   string
	}{
		{name: "builtin", raw: "cramps", wantText: "cramps"},
		{name: "prefixed custom", raw: "custom:abc-123", wantCustom: true, wantText: "custom:abc-123"},
		{name: "legacy bare custom id", raw: "9b2f7c4e-0000-4000-8000-000000000000", wantCustom: true, wantText: "custom:9b2f7c4e-0000-4000-8000-000000000000"},
		{name: "builtin names are case sensitive", raw: "Cramps", wantCustom: true, wantText: "custom:Cramps"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			symptom, err := ParseSymptom(testCase.raw)
			if err != nil {
				t.Fatalf("ParseSymptom(%q) unexpected error: %v", testCase.raw, err)
			}
			if symptom.IsCustom() != testCase.wantCustom {
				t.Fatalf("expected custom=%v for %q", testCase.wantCustom, testCase.raw)
			}
			if symptom.String() != testCase.wantText {
				t.Fatalf("expected text %q, got %q", testCase.wantText, symptom.String())
			}
		})
	}
}

func TestParseSymptomRejectsEmpty(t *testing.T) {
	for _, raw := range []string{"", "   ", "custom:"} {
		if _, err := ParseSymptom(raw); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}

func TestSymptomJSONUsesTextForm(t *testing.T) {
	entry := PeriodEntry{Symptoms: []Symptom{Builtin(SymptomAcne), Custom("c1")}}
	encoded, err := json.Marshal(entry.Symptoms)
	if err != nil {
		t.Fatalf("marshal symptoms: %v", err)
	}
	if string(encoded) != `["acne","custom:c1"]` {
		t.Fatalf("unexpected symptom encoding %s", encoded)
	}

	var decoded []Symptom
	if err := json.Unmarshal([]byte(`["nausea","c2"]`), &decoded); err != nil {
		t.Fatalf("unmarshal symptoms: %v", err)
	}
	if builtin, ok := decoded[0].Builtin(); !ok || builtin != SymptomNausea {
		t.Fatalf("expected nausea builtin, got %v", decoded[0])
	}
	if id, ok := decoded[1].CustomID(); !ok || id != "c2" {
		t.Fatalf("expected custom c2, got %v", decoded[1])
	}
}

func TestClampSeverity(t *testing.T) {
	cases := map[int]Severity{-3: 1, 0: 1, 1: 1, 3: 3, 5: 5, 6: 5, 99: 5}
	for input, want := range cases {
		if got := ClampSeverity(input); got != want {
			t.Fatalf("ClampSeverity(%d) = %d, want %d", input, got, want)
		}
	}
}
