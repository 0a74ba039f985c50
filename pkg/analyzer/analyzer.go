// Package analyzer coordinates the full pipeline from extracted template text
// to a backend-ready variable contract: detection, classification, confidence
// scoring, deduplication, manual reconciliation, metadata, export, and
// submission. It applies sensible defaults (brace detector, built-in
// dictionary, tuned scorer) while remaining open to dependency injection.
package analyzer

import (
	"github.com/google/uuid"

	"github.com/devnolife/go-fieldmap/pkg/backend"
	"github.com/devnolife/go-fieldmap/pkg/classify"
	"github.com/devnolife/go-fieldmap/pkg/convert"
	"github.com/devnolife/go-fieldmap/pkg/detect"
	"github.com/devnolife/go-fieldmap/pkg/field"
	"github.com/devnolife/go-fieldmap/pkg/fieldset"
)

// Option customises the analyzer configuration.
type Option func(*Analyzer)

// WithDetector injects a custom pattern detector.
func WithDetector(detector detect.Detector) Option {
	return func(a *Analyzer) {
		if detector != nil {
			a.detector = detector
		}
	}
}

// WithDictionary replaces the built-in classification dictionary.
func WithDictionary(dict classify.Dictionary) Option {
	return func(a *Analyzer) {
		a.dictionary = &dict
	}
}

// WithScorer overrides the confidence tuning constants.
func WithScorer(scorer classify.Scorer) Option {
	return func(a *Analyzer) {
		a.scorer = scorer
	}
}

// WithIDGenerator replaces the uuid-based field id generator. Useful for
// deterministic ids in tests.
func WithIDGenerator(generate func() string) Option {
	return func(a *Analyzer) {
		if generate != nil {
			a.newID = generate
		}
	}
}

// WithBackend wires the template-service client used by Session.Submit.
func WithBackend(client *backend.Client) Option {
	return func(a *Analyzer) {
		a.backendClient = client
	}
}

// Analyzer owns the pipeline configuration. One Analyzer can serve many
// concurrent sessions; each session's field set is independent mutable state.
type Analyzer struct {
	detector      detect.Detector
	dictionary    *classify.Dictionary
	classifier    *classify.Classifier
	scorer        classify.Scorer
	newID         func() string
	backendClient *backend.Client
}

// New constructs an Analyzer applying any provided options. Missing
// dependencies are initialised with the built-in implementations.
func New(options ...Option) *Analyzer {
	a := &Analyzer{
		detector: detect.New(),
		scorer:   classify.DefaultScorer(),
		newID:    uuid.NewString,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(a)
	}
	if a.dictionary == nil {
		dict := classify.Default()
		a.dictionary = &dict
	}
	a.classifier = classify.NewClassifier(*a.dictionary)
	return a
}

// NewSession runs the detection pipeline over the extraction and returns a
// session holding the resolved field set. An extraction without text is an
// input error; text without placeholders is a legitimate empty result.
func (a *Analyzer) NewSession(extraction convert.Extraction) (*Session, error) {
	text, err := extraction.Text()
	if err != nil {
		return nil, err
	}
	return &Session{
		analyzer: a,
		set:      a.resolve(text, nil),
	}, nil
}

// NewSessionFromText is a convenience wrapper for callers that already hold
// plain text.
func (a *Analyzer) NewSessionFromText(text string) (*Session, error) {
	return a.NewSession(convert.Extraction{PlainText: text})
}

// resolve runs detect→classify→score→dedupe over the text. When prev is
// non-nil its ids, manual edits, and manual fields are reconciled onto the
// fresh result so re-running on unchanged text is idempotent.
func (a *Analyzer) resolve(text string, prev *fieldset.Set) fieldset.Set {
	tokens := a.detector.Detect(text)

	candidates := make([]field.Field, 0, len(tokens))
	for _, token := range tokens {
		key := field.NormalizeKey(token.Key)
		verdict := a.classifier.Classify(key)
		candidates = append(candidates, field.Field{
			ID:           a.newID(),
			Type:         verdict.Type,
			RawMatch:     token.FullMatch,
			Key:          key,
			Label:        verdict.Label,
			Value:        token.FullMatch,
			StartIndex:   token.Start,
			EndIndex:     token.End,
			IsVariable:   true,
			Confidence:   a.scorer.Score(token.Bracket, verdict.DictionaryMatch),
			IsAutoNumber: verdict.AutoNumber,
			Origin:       field.OriginDetected,
		})
	}

	set := fieldset.Resolve(text, candidates)
	if prev != nil {
		set = a.reconcile(*prev, set)
	}
	return set
}

// reconcile carries detected fields' ids and edits across a re-run (matched
// by span) and re-applies manual fields through the reducer so conflicts
// against the fresh detection are caught. Manual fields whose selection no
// longer exists in the text are dropped.
func (a *Analyzer) reconcile(prev, next fieldset.Set) fieldset.Set {
	merged := next.Fields()
	for i, fresh := range merged {
		if carried, ok := matchBySpan(prev, fresh); ok {
			merged[i] = carried
		}
	}
	out := fieldset.New(next.Text(), merged...)

	for _, f := range prev.Fields() {
		if f.Origin != field.OriginManual {
			continue
		}
		applied, err := out.Apply(fieldset.AddManual{
			SelectedText: f.Value,
			Label:        f.Label,
			Type:         f.Type,
			Key:          f.Key,
			ID:           f.ID,
		})
		if err != nil {
			continue
		}
		restored, err := applied.Apply(fieldset.Edit{
			FieldID: f.ID,
			Patch: fieldset.FieldPatch{
				Required:     &f.IsRequired,
				DefaultValue: &f.DefaultValue,
				Options:      f.Options,
			},
		})
		if err == nil {
			applied = restored
		}
		out = applied
	}
	return out
}

func matchBySpan(prev fieldset.Set, fresh field.Field) (field.Field, bool) {
	for _, f := range prev.Fields() {
		if f.Origin != field.OriginDetected {
			continue
		}
		if f.StartIndex == fresh.StartIndex && f.EndIndex == fresh.EndIndex {
			return f, true
		}
	}
	return field.Field{}, false
}
