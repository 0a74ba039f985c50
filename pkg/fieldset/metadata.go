package fieldset

import "github.com/devnolife/go-fieldmap/pkg/field"

// complexityCeiling is the variable-field count at which a template counts as
// maximally dynamic.
const complexityCeiling = 10.0

// Metadata recomputes the template-level statistics from the current fields.
// Nothing is cached: every call reflects the set as it stands, including the
// effect of any manual edits.
func (s Set) Metadata() field.TemplateMetadata {
	total := len(s.fields)
	variables := 0
	for _, f := range s.fields {
		if f.IsVariable {
			variables++
		}
	}

	complexity := float64(variables) / complexityCeiling
	if complexity > 1 {
		complexity = 1
	}

	reusability := 0.0
	if total > 0 {
		reusability = float64(variables) / float64(total)
	}

	return field.TemplateMetadata{
		TotalFields:        total,
		VariableFields:     variables,
		CommonFields:       total - variables,
		TemplateComplexity: complexity,
		ReusabilityScore:   reusability,
	}
}
