package fieldset

import (
	"strings"

	"github.com/google/uuid"

	"github.com/devnolife/go-fieldmap/pkg/field"
)

// Operation is a single manual edit applied through Set.Apply. Operations are
// the only way a field set changes after resolution; each either yields a new
// Set or an error describing why it was rejected, with the receiver unchanged
// either way.
type Operation interface {
	apply(Set) (Set, error)
}

// Apply runs the reducer: op against the current set, producing the next set.
func (s Set) Apply(op Operation) (Set, error) {
	return op.apply(s)
}

// AddManual creates a placeholder from a verbatim substring selection. The
// span is located by first occurrence; the key derives from the label unless
// Key is set explicitly. ID may be left empty to get a generated one. Manual
// fields always carry field.ManualConfidence.
type AddManual struct {
	SelectedText string
	Label        string
	Type         field.FieldType
	Key          string
	ID           string
}

func (op AddManual) apply(s Set) (Set, error) {
	if strings.TrimSpace(op.SelectedText) == "" {
		return s, ErrEmptySelection
	}
	if strings.TrimSpace(op.Label) == "" {
		return s, ErrEmptyLabel
	}

	start := strings.Index(s.text, op.SelectedText)
	if start < 0 {
		return s, ErrSelectionNotFound
	}
	end := start + len(op.SelectedText)

	key := field.NormalizeKey(op.Key)
	if key == "" {
		key = field.NormalizeKey(op.Label)
	}
	if conflict := s.conflict(key, start, end, ""); conflict != nil {
		return s, conflict
	}

	fieldType := op.Type
	if fieldType == "" {
		fieldType = field.FieldTypeContent
	}
	id := op.ID
	if id == "" {
		id = uuid.NewString()
	}

	added := field.Field{
		ID:         id,
		Type:       fieldType,
		RawMatch:   op.SelectedText,
		Key:        key,
		Label:      strings.TrimSpace(op.Label),
		Value:      op.SelectedText,
		StartIndex: start,
		EndIndex:   end,
		IsVariable: true,
		Confidence: field.ManualConfidence,
		Origin:     field.OriginManual,
	}

	next := cloneFields(s.fields)
	next = append(next, added)
	sortByOffset(next)
	return Set{text: s.text, fields: next}, nil
}

// Remove deletes the field with the given id. Removing an unknown id is a
// no-op, not an error.
type Remove struct {
	FieldID string
}

func (op Remove) apply(s Set) (Set, error) {
	next := make([]field.Field, 0, len(s.fields))
	for _, f := range s.fields {
		if f.ID != op.FieldID {
			next = append(next, f)
		}
	}
	return Set{text: s.text, fields: next}, nil
}

// FieldPatch is a partial update for Edit. Nil pointers leave the attribute
// alone; Options replaces wholesale when non-nil.
type FieldPatch struct {
	Key          *string
	Label        *string
	Type         *field.FieldType
	Required     *bool
	DefaultValue *string
	Options      []string
}

// Edit applies a partial update to an existing field. A key change re-derives
// RawMatch as {{newKey}}. Editing never changes confidence or offsets.
type Edit struct {
	FieldID string
	Patch   FieldPatch
}

func (op Edit) apply(s Set) (Set, error) {
	index := -1
	for i, f := range s.fields {
		if f.ID == op.FieldID {
			index = i
			break
		}
	}
	if index < 0 {
		return s, ErrFieldNotFound
	}

	updated := s.fields[index]
	if op.Patch.Key != nil {
		key := field.NormalizeKey(*op.Patch.Key)
		if key == "" {
			return s, ErrEmptyKey
		}
		if !strings.EqualFold(key, updated.Key) {
			if conflict := s.conflict(key, updated.StartIndex, updated.StartIndex, updated.ID); conflict != nil {
				return s, conflict
			}
			updated.Key = key
			updated.RawMatch = "{{" + key + "}}"
		}
	}
	if op.Patch.Label != nil {
		label := strings.TrimSpace(*op.Patch.Label)
		if label == "" {
			return s, ErrEmptyLabel
		}
		updated.Label = label
	}
	if op.Patch.Type != nil {
		updated.Type = *op.Patch.Type
	}
	if op.Patch.Required != nil {
		updated.IsRequired = *op.Patch.Required
	}
	if op.Patch.DefaultValue != nil {
		updated.DefaultValue = *op.Patch.DefaultValue
	}
	if op.Patch.Options != nil {
		updated.Options = append([]string(nil), op.Patch.Options...)
	}

	next := cloneFields(s.fields)
	next[index] = updated
	return Set{text: s.text, fields: next}, nil
}
