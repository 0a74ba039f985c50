package field

import (
	"regexp"
	"strings"
)

var keySeparatorPattern = regexp.MustCompile(`[\s\-]+`)

// NormalizeKey converts an arbitrary key or label into the canonical variable
// name: lowercase, underscores for spaces and dashes, no leading/trailing
// separators. Deduplication and contract validation key on this form.
func NormalizeKey(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	lowered := strings.ToLower(keySeparatorPattern.ReplaceAllString(trimmed, "_"))
	for strings.Contains(lowered, "__") {
		lowered = strings.ReplaceAll(lowered, "__", "_")
	}
	return strings.Trim(lowered, "_")
}

// DeriveLabel converts a normalized key into a human-friendly display label by
// replacing underscores with spaces and title-casing each word. Curated
// dictionary labels take priority over this derivation; see pkg/classify.
func DeriveLabel(key string) string {
	if key == "" {
		return ""
	}
	words := strings.Split(key, "_")
	segments := make([]string, 0, len(words))
	for _, word := range words {
		if word == "" {
			continue
		}
		segments = append(segments, titleCase(word))
	}
	return strings.Join(segments, " ")
}

func titleCase(word string) string {
	if word == "" {
		return ""
	}
	lower := strings.ToLower(word)
	return strings.ToUpper(lower[:1]) + lower[1:]
}
