package schema

import (
	"fmt"
	"strings"
)

// FieldKind is the simplified enum for form-friendly field kinds.
type FieldKind string

const (
	FieldKindText        FieldKind = "text"
	FieldKindTextArea    FieldKind = "textarea"
	FieldKindSelect      FieldKind = "select"
	FieldKindMultiSelect FieldKind = "multiselect"
	FieldKindInt         FieldKind = "int"
	FieldKindDate        FieldKind = "date"
)

// DateFormat is the single canonical layout accepted for date fields.
const DateFormat = "2006-01-02"

// FieldDef models one input inside a form schema. Struct fields carry YAML
// tags so deployment schema documents can declare them directly.
type FieldDef struct {
	Key         string    `yaml:"key"`
	Label       string    `yaml:"label"`
	Kind        FieldKind `yaml:"kind"`
	Options     []string  `yaml:"options,omitempty"`
	Required    bool      `yaml:"required,omitempty"`
	Placeholder string    `yaml:"placeholder,omitempty"`
}

// Enum reports whether the field draws its value from a declared option set.
func (f FieldDef) Enum() bool {
	return f.Kind == FieldKindSelect || f.Kind == FieldKindMultiSelect
}

// FreeText reports whether the field accepts arbitrary text input.
func (f FieldDef) FreeText() bool {
	return f.Kind == FieldKindText || f.Kind == FieldKindTextArea
}

// FormSchema is an ordered sequence of field definitions. Field order is the
// display and collection order, and the order record fields are emitted in.
type FormSchema struct {
	Name   string     `yaml:"name"`
	Fields []FieldDef `yaml:"fields"`
}

// Field looks up a definition by key.
func (s FormSchema) Field(key string) (FieldDef, bool) {
	for _, field := range s.Fields {
		if field.Key == key {
			return field, true
		}
	}
	return FieldDef{}, false
}

// Keys returns the field keys in schema order.
func (s FormSchema) Keys() []string {
	keys := make([]string, 0, len(s.Fields))
	for _, field := range s.Fields {
		keys = append(keys, field.Key)
	}
	return keys
}

// Validate checks the schema definition itself: keys must be unique and
// non-empty, enum kinds must declare options, and non-enum kinds must not.
func (s FormSchema) Validate() error {
	if len(s.Fields) == 0 {
		return fmt.Errorf("schema: %q declares no fields", s.Name)
	}

	seen := make(map[string]struct{}, len(s.Fields))
	for _, field := range s.Fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			return fmt.Errorf("schema: field with empty key (label %q)", field.Label)
		}
		if key != field.Key {
			return fmt.Errorf("schema: field key %q has surrounding whitespace", field.Key)
		}
		if _, exists := seen[key]; exists {
			return fmt.Errorf("schema: duplicate field key %q", key)
		}
		seen[key] = struct{}{}

		switch field.Kind {
		case FieldKindText, FieldKindTextArea, FieldKindInt, FieldKindDate:
			if len(field.Options) > 0 {
				return fmt.Errorf("schema: field %q kind %q does not take options", key, field.Kind)
			}
		case FieldKindSelect, FieldKindMultiSelect:
			if len(field.Options) == 0 {
				return fmt.Errorf("schema: field %q kind %q requires options", key, field.Kind)
			}
		default:
			return fmt.Errorf("schema: field %q has unknown kind %q", key, field.Kind)
		}
	}
	return nil
}
