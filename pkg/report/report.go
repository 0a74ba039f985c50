// Package report renders a human-readable analysis summary for a template:
// the detected fields, the aggregate scores, and any contract violations.
// Output is markdown produced from an embedded pongo2 template, suitable for
// terminals and review comments alike. This renders the engine's findings,
// never the document itself.
package report

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/flosch/pongo2/v6"

	"github.com/devnolife/go-fieldmap/pkg/contract"
	"github.com/devnolife/go-fieldmap/pkg/field"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// Data is the report input, a snapshot of one analysis session.
type Data struct {
	Title      string
	Fields     []field.Field
	Metadata   field.TemplateMetadata
	Violations []contract.Violation
}

// Render produces the markdown analysis report.
func Render(data Data) (string, error) {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return "", fmt.Errorf("report: embedded templates: %w", err)
	}
	set := pongo2.NewSet("fieldmap-report", pongo2.NewFSLoader(sub))
	tpl, err := set.FromFile("analysis.tpl")
	if err != nil {
		return "", fmt.Errorf("report: load template: %w", err)
	}

	out, err := tpl.Execute(pongo2.Context{
		"title":      data.Title,
		"fields":     fieldRows(data.Fields),
		"meta":       metaRow(data.Metadata),
		"violations": violationRows(data.Violations),
	})
	if err != nil {
		return "", fmt.Errorf("report: execute template: %w", err)
	}
	return out, nil
}

func fieldRows(fields []field.Field) []map[string]any {
	rows := make([]map[string]any, 0, len(fields))
	for _, f := range fields {
		rows = append(rows, map[string]any{
			"key":        f.Key,
			"label":      f.Label,
			"type":       string(f.Type),
			"confidence": fmt.Sprintf("%.2f", f.Confidence),
			"variable":   f.IsVariable,
			"required":   f.IsRequired,
			"autoNumber": f.IsAutoNumber,
			"manual":     f.Origin == field.OriginManual,
			"start":      f.StartIndex,
			"end":        f.EndIndex,
		})
	}
	return rows
}

func metaRow(meta field.TemplateMetadata) map[string]any {
	return map[string]any{
		"total":       meta.TotalFields,
		"variables":   meta.VariableFields,
		"common":      meta.CommonFields,
		"complexity":  fmt.Sprintf("%.2f", meta.TemplateComplexity),
		"reusability": fmt.Sprintf("%.2f", meta.ReusabilityScore),
	}
}

func violationRows(violations []contract.Violation) []map[string]any {
	rows := make([]map[string]any, 0, len(violations))
	for _, v := range violations {
		rows = append(rows, map[string]any{
			"fieldId": v.FieldID,
			"key":     v.Key,
			"rule":    string(v.Rule),
			"message": v.Message,
		})
	}
	return rows
}
