// Package fieldmap detects placeholder fields in uploaded document templates
// and maps them into a backend-consumable variable contract. The pipeline
// scans normalized text for {{key}} and {key} syntax, classifies each
// candidate, scores its confidence, collapses duplicates, reconciles human
// edits, and exports the final contract. See pkg/analyzer for the session
// API; this package re-exports the common types and offers one-call entry
// points.
package fieldmap

import (
	"github.com/devnolife/go-fieldmap/pkg/analyzer"
	"github.com/devnolife/go-fieldmap/pkg/backend"
	"github.com/devnolife/go-fieldmap/pkg/classify"
	"github.com/devnolife/go-fieldmap/pkg/contract"
	"github.com/devnolife/go-fieldmap/pkg/convert"
	"github.com/devnolife/go-fieldmap/pkg/field"
)

// Field is a single placeholder candidate; see pkg/field.
type Field = field.Field

// FieldType enumerates the semantic field kinds.
type FieldType = field.FieldType

const (
	FieldTypeContent  = field.FieldTypeContent
	FieldTypeDate     = field.FieldTypeDate
	FieldTypeNumber   = field.FieldTypeNumber
	FieldTypeEmail    = field.FieldTypeEmail
	FieldTypeTextarea = field.FieldTypeTextarea
	FieldTypeIdentity = field.FieldTypeIdentity
	FieldTypeSelect   = field.FieldTypeSelect
)

// TemplateMetadata aggregates template-level statistics.
type TemplateMetadata = field.TemplateMetadata

// Extraction is the payload from the document-conversion collaborator.
type Extraction = convert.Extraction

// Entry is one variable in the exported contract.
type Entry = contract.Entry

// Violation reports a contract validation failure for one field.
type Violation = contract.Violation

// Session is the live editing state for one document.
type Session = analyzer.Session

// Option customises the analyzer configuration.
type Option = analyzer.Option

// Analyze runs the full detection pipeline over plain template text and
// returns an editable session. It is the simplest entry point for callers
// that just want the detected fields.
func Analyze(text string, options ...Option) (*Session, error) {
	return analyzer.New(options...).NewSessionFromText(text)
}

// AnalyzeExtraction runs the pipeline over a conversion-service payload,
// falling back to the HTML rendition when no plain text was extracted.
func AnalyzeExtraction(extraction Extraction, options ...Option) (*Session, error) {
	return analyzer.New(options...).NewSession(extraction)
}

// WithDictionary replaces the built-in classification dictionary.
func WithDictionary(dict classify.Dictionary) Option {
	return analyzer.WithDictionary(dict)
}

// WithScorer overrides the confidence tuning constants.
func WithScorer(scorer classify.Scorer) Option {
	return analyzer.WithScorer(scorer)
}

// WithBackend wires the template-service client used by Session.Submit.
func WithBackend(client *backend.Client) Option {
	return analyzer.WithBackend(client)
}
