package models

import (
	"errors"
	"strings"
)

const (
	SymptomCramps     BuiltinSymptom = "cramps"
	SymptomBloating   BuiltinSymptom = "bloating"
	SymptomHeadache   BuiltinSymptom = "headache"
	SymptomBackPain   BuiltinSymptom = "backPain"
	SymptomFatigue    BuiltinSymptom = "fatigue"
	SymptomMoodSwings BuiltinSymptom = "moodSwings"
	SymptomAcne       BuiltinSymptom = "acne"
	SymptomCravings   BuiltinSymptom = "cravings"
	SymptomInsomnia   BuiltinSymptom = "insomnia"
	SymptomNausea     BuiltinSymptom = "nausea"
)

const customSymptomPrefix = "custom:"

var ErrEmptySymptom = errors.New("empty symptom identifier")

type BuiltinSymptom string

func BuiltinSymptoms() []BuiltinSymptom {
	return []BuiltinSymptom{
		SymptomCramps,
		SymptomBloating,
		SymptomHeadache,
		SymptomBackPain,
		SymptomFatigue,
		SymptomMoodSwings,
		SymptomAcne,
		SymptomCravings,
		SymptomInsomnia,
		SymptomNausea,
	}
}

func (symptom BuiltinSymptom) Valid() bool {
	for _, known := range BuiltinSymptoms() {
		if symptom == known {
			return true
		}
	}
	return false
}

// Symptom identifies a period symptom: either one of the built-in symptoms or
// a user-defined CustomPeriodSymptom referenced by id. The zero value is
// invalid.
//
// The text form is the built-in name ("cramps") or "custom:<id>". Any other
// non-empty text is read as a custom id, which keeps older exports readable.
type Symptom struct {
	builtin  BuiltinSymptom
	customID string
}

func Builtin(symptom BuiltinSymptom) Symptom {
	return Symptom{builtin: symptom}
}

func Custom(id string) Symptom {
	return Symptom{customID: id}
}

func ParseSymptom(raw string) (Symptom, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return Symptom{}, ErrEmptySymptom
	}
	if id, ok := strings.CutPrefix(value, customSymptomPrefix); ok {
		if strings.TrimSpace(id) == "" {
			return Symptom{}, ErrEmptySymptom
		}
		return Custom(id), nil
	}
	if builtin := BuiltinSymptom(value); builtin.Valid() {
		return Builtin(builtin), nil
	}
	return Custom(value), nil
}

func (symptom Symptom) IsZero() bool {
	return symptom.builtin == "" && symptom.customID == ""
}

func (symptom Symptom) IsCustom() bool {
	return symptom.customID != ""
}

func (symptom Symptom) Builtin() (BuiltinSymptom, bool) {
	return symptom.builtin, symptom.builtin != ""
}

func (symptom Symptom) CustomID() (string, bool) {
	return symptom.customID, symptom.customID != ""
}

func (symptom Symptom) String() string {
	if symptom.customID != "" {
		return customSymptomPrefix + symptom.customID
	}
	return string(symptom.builtin)
}

func (symptom Symptom) MarshalText() ([]byte, error) {
	if symptom.IsZero() {
		return nil, ErrEmptySymptom
	}
	return []byte(symptom.String()), nil
}

func (symptom *Symptom) UnmarshalText(text []byte) error {
	parsed, err := ParseSymptom(string(text))
	if err != nil {
		return err
	}
	*symptom = parsed
	return nil
}
