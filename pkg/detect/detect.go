// Package detect exposes the pattern-detection stage of the pipeline: scanning
// normalized template text for {{key}} and {key} placeholder syntax. The
// two-pass tokenizer lives in internal/scan; this package re-exports its types
// and wraps it behind the Detector interface so callers can substitute their
// own detection strategy.
package detect

import "github.com/devnolife/go-fieldmap/internal/scan"

// Token re-exports the tokenizer candidate record.
type Token = scan.Token

// Bracket re-exports the bracket kind enumeration.
type Bracket = scan.Bracket

const (
	BracketDouble = scan.BracketDouble
	BracketSingle = scan.BracketSingle
)

// Detector finds raw placeholder candidates in normalized template text.
// Implementations must return candidates ordered by start offset and must
// treat "no matches" as a normal empty result.
type Detector interface {
	Detect(text string) []Token
}

// DetectorFunc adapts a plain function to the Detector interface.
type DetectorFunc func(text string) []Token

// Detect calls the wrapped function.
func (f DetectorFunc) Detect(text string) []Token {
	return f(text)
}

// New returns the default brace Detector backed by the two-pass tokenizer.
func New() Detector {
	return DetectorFunc(scan.Scan)
}
