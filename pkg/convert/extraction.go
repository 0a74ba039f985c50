// Package convert models the boundary with the external document-conversion
// collaborator. The engine never touches the original binary document; it
// receives an Extraction holding already-extracted plain text and optionally
// HTML, normalizes the text, and derives plain text from the HTML rendition
// when the converter supplied nothing else.
package convert

import (
	"errors"
	"strings"
)

// ErrEmptyExtraction is returned when neither plain text nor HTML is present.
var ErrEmptyExtraction = errors.New("convert: extraction carries no text")

// Extraction is the payload handed over by the document-conversion service.
type Extraction struct {
	PlainText string `json:"plainText"`
	HTML      string `json:"html,omitempty"`
}

// Text returns the normalized plain text for downstream scanning. When the
// converter produced no plain text, the HTML rendition is sanitized down to
// text instead. Offsets reported by the detector refer to this normalized
// form.
func (e Extraction) Text() (string, error) {
	if strings.TrimSpace(e.PlainText) != "" {
		return Normalize(e.PlainText), nil
	}
	if strings.TrimSpace(e.HTML) != "" {
		text := HTMLToText(e.HTML)
		if strings.TrimSpace(text) == "" {
			return "", ErrEmptyExtraction
		}
		return text, nil
	}
	return "", ErrEmptyExtraction
}
