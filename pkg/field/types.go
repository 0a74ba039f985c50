package field

// FieldType enumerates the semantic kinds a template placeholder can take.
// The set is fixed: exporters reject anything outside it.
type FieldType string

const (
	FieldTypeContent  FieldType = "content"
	FieldTypeDate     FieldType = "date"
	FieldTypeNumber   FieldType = "number"
	FieldTypeEmail    FieldType = "email"
	FieldTypeTextarea FieldType = "textarea"
	FieldTypeIdentity FieldType = "identity"
	FieldTypeSelect   FieldType = "select"
)

// Valid reports whether t is one of the known field types.
func (t FieldType) Valid() bool {
	switch t {
	case FieldTypeContent, FieldTypeDate, FieldTypeNumber, FieldTypeEmail,
		FieldTypeTextarea, FieldTypeIdentity, FieldTypeSelect:
		return true
	}
	return false
}

// Origin records which side of the pipeline created a field.
type Origin string

const (
	OriginDetected Origin = "detected"
	OriginManual   Origin = "manual"
)

// ManualConfidence is the confidence assigned to fields a human added by
// selecting text. Manual additions always outrank detected candidates.
const ManualConfidence = 1.0

// Field models a single placeholder candidate inside a template document.
// StartIndex/EndIndex are half-open character offsets into the normalized
// source text. Fields demoted by deduplication stay in the set with
// IsVariable=false so aggregate counts can distinguish boilerplate from
// true variables.
type Field struct {
	ID           string    `json:"id"`
	Type         FieldType `json:"type"`
	RawMatch     string    `json:"rawMatch"`
	Key          string    `json:"key"`
	Label        string    `json:"label"`
	Value        string    `json:"value"`
	DefaultValue string    `json:"defaultValue,omitempty"`
	StartIndex   int       `json:"startIndex"`
	EndIndex     int       `json:"endIndex"`
	IsVariable   bool      `json:"isVariable"`
	Confidence   float64   `json:"confidence"`
	IsRequired   bool      `json:"isRequired"`
	IsAutoNumber bool      `json:"isAutoNumber"`
	Options      []string  `json:"options,omitempty"`
	Origin       Origin    `json:"origin,omitempty"`
}

// Overlaps reports whether the character ranges of two fields intersect.
func (f Field) Overlaps(other Field) bool {
	return f.StartIndex < other.EndIndex && other.StartIndex < f.EndIndex
}

// TemplateMetadata aggregates template-level statistics over a field set.
// Both scores are clamped to [0,1].
type TemplateMetadata struct {
	TotalFields        int     `json:"totalFields"`
	VariableFields     int     `json:"variableFields"`
	CommonFields       int     `json:"commonFields"`
	TemplateComplexity float64 `json:"templateComplexity"`
	ReusabilityScore   float64 `json:"reusabilityScore"`
}
