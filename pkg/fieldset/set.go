// Package fieldset holds the per-document field collection and the two stages
// that maintain its invariants: the deduplication resolver that collapses
// overlapping and duplicate candidates, and the manual-operation reducer that
// applies human edits. A Set is a value; every mutation returns a new Set and
// a rejected operation leaves the original untouched.
package fieldset

import (
	"sort"
	"strings"

	"github.com/devnolife/go-fieldmap/pkg/field"
)

// Set is the immutable field collection for one document session. The zero
// value is an empty set over empty text.
type Set struct {
	text   string
	fields []field.Field
}

// New builds a Set over the given normalized text without running any
// resolution. Use Resolve to apply the deduplication rules to raw candidates.
func New(text string, fields ...field.Field) Set {
	return Set{text: text, fields: cloneFields(fields)}
}

// Text returns the normalized document text the offsets refer to.
func (s Set) Text() string {
	return s.text
}

// Fields returns a copy of all fields in reading order, demoted
// duplicates included.
func (s Set) Fields() []field.Field {
	return cloneFields(s.fields)
}

// Variables returns only the fields that participate in the variable
// contract, in reading order.
func (s Set) Variables() []field.Field {
	var out []field.Field
	for _, f := range s.fields {
		if f.IsVariable {
			out = append(out, f)
		}
	}
	return out
}

// Len reports the total number of fields, demoted ones included.
func (s Set) Len() int {
	return len(s.fields)
}

// Find returns the field with the given id.
func (s Set) Find(id string) (field.Field, bool) {
	for _, f := range s.fields {
		if f.ID == id {
			return f, true
		}
	}
	return field.Field{}, false
}

// conflict scans the variable fields for a case-insensitive key collision or
// a range overlap, ignoring the field with excludeID. It returns nil when the
// candidate key/span is admissible.
func (s Set) conflict(key string, start, end int, excludeID string) *ConflictError {
	candidate := field.Field{StartIndex: start, EndIndex: end}
	for _, f := range s.fields {
		if !f.IsVariable || f.ID == excludeID {
			continue
		}
		if key != "" && strings.EqualFold(f.Key, key) {
			return &ConflictError{Reason: ConflictDuplicateKey, Key: key, Start: start, End: end}
		}
		if end > start && f.Overlaps(candidate) {
			return &ConflictError{Reason: ConflictOverlappingRange, Key: key, Start: start, End: end}
		}
	}
	return nil
}

func cloneFields(fields []field.Field) []field.Field {
	if len(fields) == 0 {
		return nil
	}
	out := make([]field.Field, len(fields))
	copy(out, fields)
	for i := range out {
		if len(out[i].Options) > 0 {
			out[i].Options = append([]string(nil), out[i].Options...)
		}
	}
	return out
}

func sortByOffset(fields []field.Field) {
	sort.SliceStable(fields, func(i, j int) bool {
		return fields[i].StartIndex < fields[j].StartIndex
	})
}
