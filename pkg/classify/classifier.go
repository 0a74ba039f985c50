// Package classify implements the heuristic stages of the pipeline that turn
// a raw placeholder key into something a form can work with: the Classifier
// infers a semantic type and display label, and the Scorer assigns a
// confidence. Both are driven by the injectable Dictionary so the curated
// vocabulary can evolve without touching pipeline logic.
package classify

import (
	"strings"

	"github.com/devnolife/go-fieldmap/pkg/field"
)

// Classification is the classifier verdict for one candidate key.
type Classification struct {
	Type       field.FieldType
	Label      string
	AutoNumber bool
	// DictionaryMatch reports whether the label came from the curated table
	// rather than mechanical derivation. The scorer treats it as a strong
	// signal.
	DictionaryMatch bool
}

// Classifier infers field types and labels from normalized keys. It is a pure
// function of the key and the dictionary tables; construct once and share.
type Classifier struct {
	dict Dictionary
}

// NewClassifier returns a Classifier backed by the given dictionary. Use
// Default() for the built-in vocabulary.
func NewClassifier(dict Dictionary) *Classifier {
	return &Classifier{dict: dict}
}

// Classify applies the ordered heuristics to a key. First match wins:
//
//  1. document-numbering vocabulary  → content, auto-number
//  2. tanggal/date                   → date
//  3. nomor/number/no_ prefix        → number
//  4. email                          → email
//  5. alamat/keterangan/deskripsi    → textarea
//  6. anything else                  → content
//
// The curated label always wins over the derived one when present.
func (c *Classifier) Classify(key string) Classification {
	normalized := field.NormalizeKey(key)

	out := Classification{Type: field.FieldTypeContent}
	switch {
	case c.dict.IsAutoNumber(normalized):
		out.Type = field.FieldTypeContent
		out.AutoNumber = true
	case containsAny(normalized, "tanggal", "date"):
		out.Type = field.FieldTypeDate
	case containsAny(normalized, "nomor", "number") || strings.HasPrefix(normalized, "no_"):
		out.Type = field.FieldTypeNumber
	case strings.Contains(normalized, "email"):
		out.Type = field.FieldTypeEmail
	case containsAny(normalized, "alamat", "keterangan", "deskripsi"):
		out.Type = field.FieldTypeTextarea
	}

	if label, ok := c.dict.Label(normalized); ok {
		out.Label = label
		out.DictionaryMatch = true
	} else {
		out.Label = field.DeriveLabel(normalized)
	}
	return out
}

func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
