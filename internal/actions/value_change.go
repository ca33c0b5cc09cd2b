package actions

import (
	"context"
	"fmt"
	"strings"

	"github.com/pixil98/gonorth-export/internal/content"
	"github.com/pixil98/gonorth-export/internal/flexfield"
	"github.com/pixil98/gonorth-export/internal/localization"
	"github.com/pixil98/gonorth-export/internal/placeholder"
	"github.com/pixil98/gonorth-export/internal/templates"
)

// valueChange describes one of the change-value actions. Only the subject
// lookup and naming differ between them.
type valueChange struct {
	action       ActionType
	templateType templates.Type
	prefix       string
	objectType   flexfield.ObjectType
	phrase       string
	subject      func(ctx context.Context, e *env, p valueChangePayload) content.FlexFieldExportable
	label        func(subject content.FlexFieldExportable, field *content.FlexField) string
}

func fieldLabel(_ content.FlexFieldExportable, field *content.FlexField) string {
	return field.Name
}

func changePlayerValue() variant[valueChangePayload] {
	return valueChange{
		action:       ActionChangePlayerValue,
		templateType: templates.TaleActionChangePlayerValue,
		prefix:       prefixPlayer,
		objectType:   flexfield.ObjectTypePlayer,
		phrase:       localization.PhraseChangePlayerValue,
		subject: func(ctx context.Context, e *env, _ valueChangePayload) content.FlexFieldExportable {
			if n := e.playerNpc(ctx); n != nil {
				return n
			}
			return nil
		},
		label: fieldLabel,
	}.variant()
}

func changeNpcValue() variant[valueChangePayload] {
	return valueChange{
		action:       ActionChangeNpcValue,
		templateType: templates.TaleActionChangeNpcValue,
		prefix:       prefixNpc,
		objectType:   flexfield.ObjectTypeNpc,
		phrase:       localization.PhraseChangeNpcValue,
		subject: func(_ context.Context, e *env, _ valueChangePayload) content.FlexFieldExportable {
			return e.dialogNpc()
		},
		label: fieldLabel,
	}.variant()
}

func changeQuestValue() variant[valueChangePayload] {
	return valueChange{
		action:       ActionChangeQuestValue,
		templateType: templates.TaleActionChangeQuestValue,
		prefix:       prefixQuest,
		objectType:   flexfield.ObjectTypeQuest,
		phrase:       localization.PhraseChangeQuestValue,
		subject: func(ctx context.Context, e *env, p valueChangePayload) content.FlexFieldExportable {
			if q := e.quest(ctx, p.ObjectId); q != nil {
				return q
			}
			return nil
		},
		label: func(subject content.FlexFieldExportable, field *content.FlexField) string {
			return subject.GetName() + "." + field.Name
		},
	}.variant()
}

func (vc valueChange) variant() variant[valueChangePayload] {
	return variant[valueChangePayload]{
		action:       vc.action,
		templateType: vc.templateType,
		placeholders: placeholder.List{}.
			Token(phValueName, "Name of the value that is changed").
			Token(phOperator, "Operator code of the change, taken from the general logic templates").
			Token(phValueChange, "Value the field is changed by or set to").
			Block(phValueIsString, "Only rendered if the field is a string").
			Block(phValueIsNumber, "Only rendered if the field is a number").
			Block(phOperatorIsSetTo, "Only rendered if the value is assigned").
			Block(phOperatorIsNotSetTo, "Only rendered if the value is changed by an operator").
			Append(flexfield.Placeholders(vc.prefix, vc.objectType)),
		resolve: vc.resolve,
		preview: vc.preview,
	}
}

func (vc valueChange) field(ctx context.Context, e *env, p valueChangePayload) (content.FlexFieldExportable, *content.FlexField) {
	subject := vc.subject(ctx, e, p)
	if subject == nil {
		return nil, nil
	}
	field := content.FindField(subject, p.FieldId, p.FieldName)
	if field == nil {
		e.errs.AddFlexFieldNotFound(subject.GetName(), p.FieldName)
		return nil, nil
	}
	return subject, field
}

func (vc valueChange) resolve(ctx context.Context, e *env, p valueChangePayload) (*output, error) {
	subject, field := vc.field(ctx, e, p)
	if field == nil {
		return nil, nil
	}

	opCode, err := operatorCode(ctx, e, p.Operator)
	if err != nil {
		return nil, err
	}

	isNumber := field.IsNumber()
	value := placeholder.Escape(p.ValueChange, e.settings.EscapeSettings)
	if isNumber {
		value = numberLiteral(p.ValueChange)
	}
	isAssign := p.Operator.Kind == OperatorAssign

	return newOutput().
		block(phValueIsString, !isNumber).
		block(phValueIsNumber, isNumber).
		block(phOperatorIsSetTo, isAssign).
		block(phOperatorIsNotSetTo, !isAssign).
		object(vc.prefix, flexfield.ObjectData{Object: subject, ObjectType: vc.objectType}).
		token(phValueName, placeholder.Escape(field.Name, e.settings.EscapeSettings)).
		token(phOperator, opCode).
		token(phValueChange, value), nil
}

func (vc valueChange) preview(ctx context.Context, e *env, p valueChangePayload) (string, error) {
	subject, field := vc.field(ctx, e, p)
	if field == nil {
		return "", nil
	}
	return e.phrase(vc.phrase, vc.label(subject, field)), nil
}

// operatorCode looks up the project's code for an operator. Unknown operators
// are recorded and render as "".
func operatorCode(ctx context.Context, e *env, op Operator) (string, error) {
	t, ok := op.TemplateType()
	if !ok {
		e.errs.AddUnknownOperator(op.Raw)
		return "", nil
	}
	tmpl, err := e.templates.GetTemplate(ctx, e.project.Id, t)
	if err != nil {
		return "", fmt.Errorf("loading operator template %s: %w", t, err)
	}
	return tmpl.Code, nil
}

func numberLiteral(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "0"
	}
	return v
}
