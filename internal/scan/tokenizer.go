package scan

import (
	"regexp"
	"sort"
	"strings"
)

// Bracket identifies which placeholder syntax produced a token.
type Bracket string

const (
	// BracketDouble marks a {{key}} match, the strong placeholder signal.
	BracketDouble Bracket = "double"
	// BracketSingle marks a {key} match, a weaker signal that can collide
	// with ordinary document punctuation.
	BracketSingle Bracket = "single"
)

// Token is a raw placeholder candidate produced by the tokenizer. Start/End
// are half-open offsets into the scanned text covering the full match
// including delimiters. Key is the inner text with surrounding whitespace
// trimmed.
type Token struct {
	FullMatch string
	Key       string
	Bracket   Bracket
	Start     int
	End       int
}

var (
	doublePattern = regexp.MustCompile(`\{\{([^{}]*)\}\}`)
	singlePattern = regexp.MustCompile(`\{([^{}]*)\}`)
)

// Scan tokenizes text in two passes: the double-brace pass runs to completion
// first, then the single-brace pass covers the residual text. Spans consumed
// by a double-brace match are excluded from single-brace consideration, and a
// single-brace match adjacent to another brace is dropped so a {{key}} token
// is never mis-segmented into two single-brace reads. Empty keys are
// rejected. No matches yields an empty slice, not an error.
func Scan(text string) []Token {
	if text == "" {
		return nil
	}

	var tokens []Token
	var consumed [][2]int

	for _, m := range doublePattern.FindAllStringSubmatchIndex(text, -1) {
		start, end := m[0], m[1]
		key := strings.TrimSpace(text[m[2]:m[3]])
		if key == "" {
			continue
		}
		tokens = append(tokens, Token{
			FullMatch: text[start:end],
			Key:       key,
			Bracket:   BracketDouble,
			Start:     start,
			End:       end,
		})
		consumed = append(consumed, [2]int{start, end})
	}

	for _, m := range singlePattern.FindAllStringSubmatchIndex(text, -1) {
		start, end := m[0], m[1]
		if overlapsConsumed(consumed, start, end) {
			continue
		}
		if start > 0 && isBrace(text[start-1]) {
			continue
		}
		if end < len(text) && isBrace(text[end]) {
			continue
		}
		key := strings.TrimSpace(text[m[2]:m[3]])
		if key == "" {
			continue
		}
		tokens = append(tokens, Token{
			FullMatch: text[start:end],
			Key:       key,
			Bracket:   BracketSingle,
			Start:     start,
			End:       end,
		})
	}

	sort.SliceStable(tokens, func(i, j int) bool {
		return tokens[i].Start < tokens[j].Start
	})
	return tokens
}

func overlapsConsumed(consumed [][2]int, start, end int) bool {
	for _, span := range consumed {
		if start < span[1] && span[0] < end {
			return true
		}
	}
	return false
}

func isBrace(b byte) bool {
	return b == '{' || b == '}'
}
