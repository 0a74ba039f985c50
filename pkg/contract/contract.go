// Package contract serializes a resolved field set into the canonical
// variable contract consumed by the backend template service. The contract is
// a pure value: building it never mutates the field set, and validation
// reports one structured violation per offending field so callers can fix
// individual entries and resubmit.
package contract

import (
	"strings"

	"github.com/devnolife/go-fieldmap/pkg/field"
	"github.com/devnolife/go-fieldmap/pkg/fieldset"
)

// Position locates an entry inside the normalized source text.
type Position struct {
	StartIndex int `json:"startIndex"`
	EndIndex   int `json:"endIndex"`
}

// Entry is one variable in the exported contract. DefaultValue falls back to
// the original substring when no explicit default was set.
type Entry struct {
	Key           string          `json:"key"`
	Label         string          `json:"label"`
	Type          field.FieldType `json:"type"`
	DefaultValue  string          `json:"defaultValue"`
	OriginalValue string          `json:"originalValue"`
	IsRequired    bool            `json:"isRequired"`
	IsAutoNumber  bool            `json:"isAutoNumber,omitempty"`
	Options       []string        `json:"options,omitempty"`
	Position      Position        `json:"position"`
	Confidence    float64         `json:"confidence"`
}

// Rule identifies which contract requirement a violation breaks.
type Rule string

const (
	RuleEmptyKey     Rule = "empty_key"
	RuleUnknownType  Rule = "unknown_type"
	RuleDuplicateKey Rule = "duplicate_key"
)

// Violation reports a single contract failure, tied to the field that caused
// it so the caller can surface and fix it in place.
type Violation struct {
	FieldID string `json:"fieldId"`
	Key     string `json:"key"`
	Rule    Rule   `json:"rule"`
	Message string `json:"message"`
}

// Export converts a field set into contract entries (variables only, in
// reading order) and validates them. A non-empty violations slice means the
// contract must not cross the boundary; entries are still returned so the
// caller can inspect what would have shipped.
func Export(set fieldset.Set) ([]Entry, []Violation) {
	variables := set.Variables()
	entries := make([]Entry, 0, len(variables))
	var violations []Violation

	seen := make(map[string]string, len(variables))
	for _, f := range variables {
		entries = append(entries, entryFromField(f))

		key := strings.ToLower(f.Key)
		switch {
		case key == "":
			violations = append(violations, Violation{
				FieldID: f.ID,
				Rule:    RuleEmptyKey,
				Message: "variable key must not be empty",
			})
		case seen[key] != "":
			violations = append(violations, Violation{
				FieldID: f.ID,
				Key:     f.Key,
				Rule:    RuleDuplicateKey,
				Message: "variable key duplicates field " + seen[key],
			})
		default:
			seen[key] = f.ID
		}
		if !f.Type.Valid() {
			violations = append(violations, Violation{
				FieldID: f.ID,
				Key:     f.Key,
				Rule:    RuleUnknownType,
				Message: "unknown field type " + string(f.Type),
			})
		}
	}
	return entries, violations
}

func entryFromField(f field.Field) Entry {
	defaultValue := f.DefaultValue
	if defaultValue == "" {
		defaultValue = f.Value
	}
	var options []string
	if len(f.Options) > 0 {
		options = append([]string(nil), f.Options...)
	}
	return Entry{
		Key:           f.Key,
		Label:         f.Label,
		Type:          f.Type,
		DefaultValue:  defaultValue,
		OriginalValue: f.Value,
		IsRequired:    f.IsRequired,
		IsAutoNumber:  f.IsAutoNumber,
		Options:       options,
		Position:      Position{StartIndex: f.StartIndex, EndIndex: f.EndIndex},
		Confidence:    f.Confidence,
	}
}
