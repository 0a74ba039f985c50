package analyzer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/devnolife/go-fieldmap/pkg/backend"
	"github.com/devnolife/go-fieldmap/pkg/contract"
	"github.com/devnolife/go-fieldmap/pkg/convert"
	"github.com/devnolife/go-fieldmap/pkg/field"
	"github.com/devnolife/go-fieldmap/pkg/fieldset"
)

// ErrNoBackend is returned by Submit when the analyzer was built without a
// backend client.
var ErrNoBackend = errors.New("analyzer: no backend client configured")

// ValidationError carries the per-field contract violations that blocked a
// submission. The session's field set is left untouched so individual fields
// can be fixed and the export retried.
type ValidationError struct {
	Violations []contract.Violation
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("analyzer: contract validation failed with %d violation(s)", len(e.Violations))
}

// Session is the live editing state for one document. Its lifetime is one
// template-editing session; nothing is persisted until the contract is
// submitted. Manual edits are expected to arrive one at a time (the engine is
// logically single-threaded per document), so Session does no locking.
type Session struct {
	analyzer *Analyzer
	set      fieldset.Set
	removed  []removal
}

// removal remembers a detected field the user deleted, so reconciliation
// does not resurrect it from a fresh detection pass over the same text.
type removal struct {
	key   string
	start int
	end   int
}

// Text returns the normalized document text the session operates on.
func (s *Session) Text() string {
	return s.set.Text()
}

// Fields returns the current field set in reading order, demoted duplicates
// included.
func (s *Session) Fields() []field.Field {
	return s.set.Fields()
}

// Variables returns only the fields bound for the variable contract.
func (s *Session) Variables() []field.Field {
	return s.set.Variables()
}

// Metadata recomputes the template statistics from the current field set.
func (s *Session) Metadata() field.TemplateMetadata {
	return s.set.Metadata()
}

// Reanalyze re-runs the detection pipeline over the session text,
// reconciling ids, edits, manual fields, and removals onto the fresh
// result. On unchanged text this is idempotent.
func (s *Session) Reanalyze() {
	s.set = s.withoutRemoved(s.analyzer.resolve(s.set.Text(), &s.set))
}

// Reload replaces the session text with a fresh extraction and re-runs the
// pipeline. Manual fields are re-located by their selection; those that no
// longer occur in the new text are dropped. Removal history refers to spans
// of the old text, so it only carries over when the text is unchanged.
func (s *Session) Reload(extraction convert.Extraction) error {
	text, err := extraction.Text()
	if err != nil {
		return err
	}
	if text != s.set.Text() {
		s.removed = nil
	}
	s.set = s.withoutRemoved(s.analyzer.resolve(text, &s.set))
	return nil
}

// withoutRemoved filters out detected fields the user previously deleted.
func (s *Session) withoutRemoved(set fieldset.Set) fieldset.Set {
	if len(s.removed) == 0 {
		return set
	}
	fields := set.Fields()
	kept := fields[:0]
	for _, f := range fields {
		if f.Origin == field.OriginDetected && s.isRemoved(f) {
			continue
		}
		kept = append(kept, f)
	}
	return fieldset.New(set.Text(), kept...)
}

func (s *Session) isRemoved(f field.Field) bool {
	for _, r := range s.removed {
		if r.start == f.StartIndex && r.end == f.EndIndex && strings.EqualFold(r.key, f.Key) {
			return true
		}
	}
	return false
}

// AddManual creates a placeholder from a verbatim substring selection, with
// maximum confidence. The returned field carries the assigned id.
func (s *Session) AddManual(selectedText, label string, fieldType field.FieldType) (field.Field, error) {
	op := fieldset.AddManual{
		SelectedText: selectedText,
		Label:        label,
		Type:         fieldType,
		ID:           s.analyzer.newID(),
	}
	next, err := s.set.Apply(op)
	if err != nil {
		return field.Field{}, err
	}
	s.set = next
	added, _ := next.Find(op.ID)
	return added, nil
}

// Remove deletes a field by id. Unknown ids are a no-op. Removing a
// detected field is remembered: reanalysis of the same text will not bring
// it back.
func (s *Session) Remove(fieldID string) {
	target, found := s.set.Find(fieldID)
	next, err := s.set.Apply(fieldset.Remove{FieldID: fieldID})
	if err != nil {
		return
	}
	if found && target.Origin == field.OriginDetected {
		s.removed = append(s.removed, removal{
			key:   target.Key,
			start: target.StartIndex,
			end:   target.EndIndex,
		})
	}
	s.set = next
}

// Edit applies a partial update to a field and returns the updated value.
func (s *Session) Edit(fieldID string, patch fieldset.FieldPatch) (field.Field, error) {
	next, err := s.set.Apply(fieldset.Edit{FieldID: fieldID, Patch: patch})
	if err != nil {
		return field.Field{}, err
	}
	s.set = next
	updated, _ := next.Find(fieldID)
	return updated, nil
}

// Export builds the variable contract from the current set and validates it.
func (s *Session) Export() ([]contract.Entry, []contract.Violation) {
	return contract.Export(s.set)
}

// Submit validates and hands the contract to the backend template service.
// A *ValidationError means the contract never left the engine; a response
// with Success=false is the service's verdict, surfaced unchanged. The field
// set is preserved in all cases so the caller can fix and retry.
func (s *Session) Submit(ctx context.Context, templateID string, file backend.FileMetadata) (backend.SubmitResponse, error) {
	if s.analyzer.backendClient == nil {
		return backend.SubmitResponse{}, ErrNoBackend
	}
	entries, violations := s.Export()
	if len(violations) > 0 {
		return backend.SubmitResponse{}, &ValidationError{Violations: violations}
	}
	return s.analyzer.backendClient.Submit(ctx, backend.SubmitRequest{
		TemplateID:     templateID,
		DetectedFields: entries,
		SourceFile:     file,
	})
}
