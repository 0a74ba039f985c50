package fieldset

import (
	"errors"
	"fmt"
)

// Input errors. These reject an operation without touching the set.
var (
	ErrEmptySelection = errors.New("fieldset: selected text is empty")
	ErrEmptyLabel     = errors.New("fieldset: label is empty")
	ErrEmptyKey       = errors.New("fieldset: key is empty")
	// ErrSelectionNotFound means the selected text is not a verbatim
	// substring of the document.
	ErrSelectionNotFound = errors.New("fieldset: selected text not found in template")
	ErrFieldNotFound     = errors.New("fieldset: field not found")
)

// ConflictReason enumerates why an operation would break a set invariant.
type ConflictReason string

const (
	ConflictDuplicateKey     ConflictReason = "duplicate_key"
	ConflictOverlappingRange ConflictReason = "overlapping_range"
)

// ConflictError reports an operation rejected because it would violate the
// uniqueness or non-overlap invariants. The set it was applied to is
// unchanged.
type ConflictError struct {
	Reason ConflictReason
	Key    string
	Start  int
	End    int
}

func (e *ConflictError) Error() string {
	switch e.Reason {
	case ConflictDuplicateKey:
		return fmt.Sprintf("fieldset: duplicate key %q", e.Key)
	case ConflictOverlappingRange:
		return fmt.Sprintf("fieldset: range [%d,%d) overlaps an existing field", e.Start, e.End)
	}
	return fmt.Sprintf("fieldset: conflict %s", e.Reason)
}

// AsConflict unwraps err into a ConflictError when possible.
func AsConflict(err error) (*ConflictError, bool) {
	var conflict *ConflictError
	if errors.As(err, &conflict) {
		return conflict, true
	}
	return nil, false
}
