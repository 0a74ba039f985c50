package contract

import (
	"github.com/getkin/kin-openapi/openapi3"

	"github.com/devnolife/go-fieldmap/pkg/field"
)

// Schema builds an OpenAPI 3 object schema describing the variable contract:
// one property per entry, required list from IsRequired, enum values for
// select fields. Form-generation layers can feed it straight into their
// builders to render a fill-in form for the template.
func Schema(title string, entries []Entry) *openapi3.Schema {
	schema := &openapi3.Schema{
		Type:       &openapi3.Types{openapi3.TypeObject},
		Title:      title,
		Properties: make(openapi3.Schemas, len(entries)),
	}

	for _, entry := range entries {
		property := propertySchema(entry)
		schema.Properties[entry.Key] = openapi3.NewSchemaRef("", property)
		if entry.IsRequired {
			schema.Required = append(schema.Required, entry.Key)
		}
	}
	return schema
}

func propertySchema(entry Entry) *openapi3.Schema {
	property := &openapi3.Schema{
		Type:  &openapi3.Types{openapi3.TypeString},
		Title: entry.Label,
	}

	switch entry.Type {
	case field.FieldTypeNumber:
		property.Type = &openapi3.Types{openapi3.TypeNumber}
	case field.FieldTypeDate:
		property.Format = "date"
	case field.FieldTypeEmail:
		property.Format = "email"
	case field.FieldTypeTextarea:
		property.Format = "textarea"
	case field.FieldTypeSelect:
		for _, option := range entry.Options {
			property.Enum = append(property.Enum, option)
		}
	}

	if entry.DefaultValue != "" {
		property.Default = entry.DefaultValue
	}
	return property
}
