package main

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	fieldmap "github.com/devnolife/go-fieldmap"
	"github.com/devnolife/go-fieldmap/pkg/field"
	"github.com/devnolife/go-fieldmap/pkg/fieldset"
)

var fieldTypeOptions = []string{
	string(field.FieldTypeContent),
	string(field.FieldTypeDate),
	string(field.FieldTypeNumber),
	string(field.FieldTypeEmail),
	string(field.FieldTypeTextarea),
	string(field.FieldTypeIdentity),
	string(field.FieldTypeSelect),
}

// reviewSession drives the interactive loop: list the current fields, let the
// user edit, add, or remove until they accept the set. Ctrl-C accepts the
// current state rather than aborting the analysis.
func reviewSession(session *fieldmap.Session) error {
	for {
		meta := session.Metadata()
		fmt.Printf("\n%d field(s), %d variable, complexity %.2f\n",
			meta.TotalFields, meta.VariableFields, meta.TemplateComplexity)
		for _, f := range session.Fields() {
			marker := " "
			if !f.IsVariable {
				marker = "-"
			}
			fmt.Printf(" %s %-24s %-9s %.2f  %s\n", marker, f.Key, f.Type, f.Confidence, f.Label)
		}

		var action string
		prompt := &survey.Select{
			Message: "Review detected fields:",
			Options: []string{"accept", "edit a field", "add manual field", "remove a field"},
		}
		if err := survey.AskOne(prompt, &action); err != nil {
			if errors.Is(err, terminal.InterruptErr) {
				return nil
			}
			return err
		}

		var actionErr error
		switch action {
		case "accept":
			return nil
		case "edit a field":
			actionErr = editField(session)
		case "add manual field":
			actionErr = addManualField(session)
		case "remove a field":
			actionErr = removeField(session)
		}
		if actionErr != nil {
			if errors.Is(actionErr, terminal.InterruptErr) {
				continue
			}
			// Conflicts and input errors are part of the loop, not fatal.
			fmt.Printf("rejected: %v\n", actionErr)
		}
	}
}

func pickField(session *fieldmap.Session, message string) (fieldmap.Field, error) {
	fields := session.Fields()
	if len(fields) == 0 {
		return fieldmap.Field{}, errors.New("no fields to choose from")
	}
	options := make([]string, len(fields))
	for i, f := range fields {
		options[i] = fmt.Sprintf("%s (%s)", f.Key, f.Label)
	}
	var index int
	if err := survey.AskOne(&survey.Select{Message: message, Options: options}, &index); err != nil {
		return fieldmap.Field{}, err
	}
	return fields[index], nil
}

func editField(session *fieldmap.Session) error {
	target, err := pickField(session, "Field to edit:")
	if err != nil {
		return err
	}

	label := target.Label
	if err := survey.AskOne(&survey.Input{Message: "Label:", Default: target.Label}, &label); err != nil {
		return err
	}
	typeName := string(target.Type)
	if err := survey.AskOne(&survey.Select{
		Message: "Type:",
		Options: fieldTypeOptions,
		Default: typeName,
	}, &typeName); err != nil {
		return err
	}
	required := target.IsRequired
	if err := survey.AskOne(&survey.Confirm{Message: "Required?", Default: required}, &required); err != nil {
		return err
	}

	fieldType := field.FieldType(typeName)
	_, err = session.Edit(target.ID, fieldset.FieldPatch{
		Label:    &label,
		Type:     &fieldType,
		Required: &required,
	})
	return err
}

func addManualField(session *fieldmap.Session) error {
	var selected, label string
	if err := survey.AskOne(&survey.Input{Message: "Selected text (verbatim):"}, &selected); err != nil {
		return err
	}
	if err := survey.AskOne(&survey.Input{Message: "Label:"}, &label); err != nil {
		return err
	}
	typeName := string(field.FieldTypeContent)
	if err := survey.AskOne(&survey.Select{
		Message: "Type:",
		Options: fieldTypeOptions,
		Default: typeName,
	}, &typeName); err != nil {
		return err
	}

	_, err := session.AddManual(selected, label, field.FieldType(typeName))
	return err
}

func removeField(session *fieldmap.Session) error {
	target, err := pickField(session, "Field to remove:")
	if err != nil {
		return err
	}
	session.Remove(target.ID)
	return nil
}
