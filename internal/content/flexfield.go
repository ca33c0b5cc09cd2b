// Package content holds the authored records an export reads: projects, npcs,
// items, quests, skills, maps and their flex fields.
package content

import (
	"fmt"
	"strings"

	"github.com/pixil98/go-errors"
)

// FieldType is the declared type of a flex field.
type FieldType string

const (
	FieldTypeString FieldType = "string"
	FieldTypeNumber FieldType = "number"
	FieldTypeOption FieldType = "option"
)

// FlexField is a dynamically named, typed attribute of an object.
type FlexField struct {
	Id        string    `json:"id" yaml:"id"`
	Name      string    `json:"name" yaml:"name"`
	FieldType FieldType `json:"field_type" yaml:"field_type"`
	Value     string    `json:"value" yaml:"value"`
}

// IsNumber reports whether the field holds a number.
func (f *FlexField) IsNumber() bool {
	return f.FieldType == FieldTypeNumber
}

func (f *FlexField) Validate() error {
	el := errors.NewErrorList()

	if f.Id == "" {
		el.Add(fmt.Errorf("field id is required"))
	}
	if f.Name == "" {
		el.Add(fmt.Errorf("field %q: name is required", f.Id))
	}
	switch f.FieldType {
	case FieldTypeString, FieldTypeNumber, FieldTypeOption:
	default:
		el.Add(fmt.Errorf("field %q: unknown field_type %q", f.Name, f.FieldType))
	}

	return el.Err()
}

// FlexFieldExportable is implemented by every record whose fields can be
// referenced from export templates.
type FlexFieldExportable interface {
	GetId() string
	GetName() string
	GetFields() []FlexField
}

// FindField looks a field up by id and falls back to a case-insensitive name
// match. Returns nil if neither matches.
func FindField(obj FlexFieldExportable, id string, name string) *FlexField {
	fields := obj.GetFields()
	for i := range fields {
		if id != "" && fields[i].Id == id {
			return &fields[i]
		}
	}
	if name == "" {
		return nil
	}
	for i := range fields {
		if strings.EqualFold(fields[i].Name, name) {
			return &fields[i]
		}
	}
	return nil
}

// FieldByName looks a field up by exact name.
func FieldByName(obj FlexFieldExportable, name string) *FlexField {
	fields := obj.GetFields()
	for i := range fields {
		if fields[i].Name == name {
			return &fields[i]
		}
	}
	return nil
}

func validateFields(fields []FlexField) error {
	el := errors.NewErrorList()
	seen := map[string]bool{}
	for i := range fields {
		el.Add(fields[i].Validate())
		if seen[fields[i].Id] {
			el.Add(fmt.Errorf("duplicate field id %q", fields[i].Id))
		}
		seen[fields[i].Id] = true
	}
	return el.Err()
}
