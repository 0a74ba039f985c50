package fieldset

import (
	"strings"

	"github.com/devnolife/go-fieldmap/pkg/field"
)

// Resolve applies the deduplication rules to raw classified candidates and
// returns the canonical Set:
//
//   - a single-brace match whose range overlaps a double-brace match is
//     discarded, it is a mis-parse of the same characters;
//   - for duplicate keys the earliest occurrence in reading order stays the
//     variable and later occurrences are demoted to IsVariable=false, even
//     when the duplicates came from different bracket kinds.
//
// Candidates are processed in descending start order so that downstream
// consumers splicing the text by offset never invalidate earlier positions.
func Resolve(text string, candidates []field.Field) Set {
	fields := cloneFields(candidates)
	sortByOffset(fields)

	survivors := make([]field.Field, 0, len(fields))
	for i, f := range fields {
		if isDoubleBrace(f) || !overlapsDouble(fields, i) {
			survivors = append(survivors, f)
		}
	}

	for i := len(survivors) - 1; i > 0; i-- {
		for j := 0; j < i; j++ {
			if strings.EqualFold(survivors[j].Key, survivors[i].Key) {
				survivors[i].IsVariable = false
				break
			}
		}
	}

	return Set{text: text, fields: survivors}
}

func isDoubleBrace(f field.Field) bool {
	return strings.HasPrefix(f.RawMatch, "{{")
}

func overlapsDouble(fields []field.Field, index int) bool {
	for j, other := range fields {
		if j == index || !isDoubleBrace(other) {
			continue
		}
		if fields[index].Overlaps(other) {
			return true
		}
	}
	return false
}
