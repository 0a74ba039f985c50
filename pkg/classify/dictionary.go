package classify

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/devnolife/go-fieldmap/pkg/field"
)

// Dictionary is the curated lookup data the classifier consults: a key to
// label table covering common academic and administrative fields, and the
// document-numbering vocabulary that flags auto-number placeholders. It is
// configuration, not code. Load overrides from YAML with LoadFS or start
// from Default and extend.
type Dictionary struct {
	labels     map[string]string
	autoNumber []string
}

type dictionaryDocument struct {
	Labels     map[string]string `yaml:"labels"`
	AutoNumber []string          `yaml:"autoNumber"`
}

// NewDictionary builds a Dictionary from explicit tables. Keys are normalized
// on the way in so lookups are case-insensitive.
func NewDictionary(labels map[string]string, autoNumber []string) Dictionary {
	d := Dictionary{
		labels:     make(map[string]string, len(labels)),
		autoNumber: make([]string, 0, len(autoNumber)),
	}
	for key, label := range labels {
		normalized := field.NormalizeKey(key)
		if normalized == "" || strings.TrimSpace(label) == "" {
			continue
		}
		d.labels[normalized] = strings.TrimSpace(label)
	}
	seen := make(map[string]struct{}, len(autoNumber))
	for _, key := range autoNumber {
		normalized := field.NormalizeKey(key)
		if normalized == "" {
			continue
		}
		if _, dup := seen[normalized]; dup {
			continue
		}
		seen[normalized] = struct{}{}
		d.autoNumber = append(d.autoNumber, normalized)
	}
	sort.Strings(d.autoNumber)
	return d
}

// LoadFS walks the provided filesystem and merges every YAML/JSON dictionary
// file into one Dictionary. Later files win on label collisions. A nil fsys
// or an fsys without dictionary files yields an empty Dictionary.
func LoadFS(fsys fs.FS) (Dictionary, error) {
	labels := make(map[string]string)
	var autoNumber []string
	if fsys == nil {
		return NewDictionary(labels, autoNumber), nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isDictionaryFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("classify: read %s: %w", path, err)
		}
		var doc dictionaryDocument
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("classify: parse %s: %w", path, err)
		}
		for key, label := range doc.Labels {
			labels[key] = label
		}
		autoNumber = append(autoNumber, doc.AutoNumber...)
		return nil
	})
	if err != nil {
		return Dictionary{}, err
	}
	return NewDictionary(labels, autoNumber), nil
}

// Label returns the curated display label for a key. The lookup is
// case-insensitive via key normalization.
func (d Dictionary) Label(key string) (string, bool) {
	label, ok := d.labels[field.NormalizeKey(key)]
	return label, ok
}

// IsAutoNumber reports whether the key belongs to the document-numbering
// vocabulary, either exactly or by containing a vocabulary entry.
func (d Dictionary) IsAutoNumber(key string) bool {
	normalized := field.NormalizeKey(key)
	if normalized == "" {
		return false
	}
	for _, entry := range d.autoNumber {
		if normalized == entry || strings.Contains(normalized, entry) {
			return true
		}
	}
	return false
}

// Merge overlays other onto d, returning a new Dictionary. Labels from other
// win on collision and vocabularies are unioned.
func (d Dictionary) Merge(other Dictionary) Dictionary {
	labels := make(map[string]string, len(d.labels)+len(other.labels))
	for key, label := range d.labels {
		labels[key] = label
	}
	for key, label := range other.labels {
		labels[key] = label
	}
	vocab := make([]string, 0, len(d.autoNumber)+len(other.autoNumber))
	vocab = append(vocab, d.autoNumber...)
	vocab = append(vocab, other.autoNumber...)
	return NewDictionary(labels, vocab)
}

// Len returns the number of curated labels. Mostly useful in tests.
func (d Dictionary) Len() int {
	return len(d.labels)
}

func isDictionaryFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}
