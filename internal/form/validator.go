// Package form validates candidate field values against a FormSchema before
// a record may be built. Validation is pure: violations are returned, never
// thrown, and the collection layer decides how to surface them.
package form

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-internform/components/vocab"
	"github.com/goliatone/go-internform/pkg/schema"
)

// Violation names one field that failed validation.
type Violation struct {
	Field   string
	Message string
}

func (v Violation) String() string {
	return v.Field + ": " + v.Message
}

// Violations aggregates per-field failures into a single error value.
type Violations []Violation

func (vs Violations) Error() string {
	if len(vs) == 0 {
		return "form: no violations"
	}
	parts := make([]string, 0, len(vs))
	for _, v := range vs {
		parts = append(parts, v.String())
	}
	return "form: " + strings.Join(parts, "; ")
}

// Fields returns the violating field keys in report order.
func (vs Violations) Fields() []string {
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.Field)
	}
	return out
}

// Validate checks values against the schema and returns the validated value
// mapping, or the list of violations when any rule fails. Enum values must
// already have had sentinel substitution applied: the sentinel itself is
// never a valid resolved value. Free-text values are sanitized (HTML
// stripped, whitespace trimmed) on the way into the validated set.
func Validate(s schema.FormSchema, values schema.Values) (schema.Values, Violations) {
	var violations Violations
	validated := make(schema.Values, len(values))

	for key := range values {
		if _, ok := s.Field(key); !ok {
			violations = append(violations, Violation{
				Field:   key,
				Message: "does not match any schema field",
			})
		}
	}

	for _, field := range s.Fields {
		value := values.Get(field.Key)
		if field.FreeText() {
			value = SanitizeText(value)
		}

		if value == "" {
			if field.Required {
				violations = append(violations, Violation{
					Field:   field.Key,
					Message: "required field is empty",
				})
				continue
			}
			validated[field.Key] = ""
			continue
		}

		if v, ok := checkValue(field, value); !ok {
			violations = append(violations, v)
			continue
		}
		validated[field.Key] = value
	}

	if len(violations) > 0 {
		return nil, violations
	}
	return validated, nil
}

func checkValue(field schema.FieldDef, value string) (Violation, bool) {
	switch field.Kind {
	case schema.FieldKindDate:
		if _, err := time.Parse(schema.DateFormat, value); err != nil {
			return Violation{
				Field:   field.Key,
				Message: fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", value),
			}, false
		}
	case schema.FieldKindInt:
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return Violation{
				Field:   field.Key,
				Message: fmt.Sprintf("invalid number %q, expected a non-negative integer", value),
			}, false
		}
	case schema.FieldKindSelect:
		return checkEnum(field, value)
	case schema.FieldKindMultiSelect:
		for _, choice := range strings.Split(value, schema.MultiValueSeparator) {
			if v, ok := checkEnum(field, strings.TrimSpace(choice)); !ok {
				return v, false
			}
		}
	}
	return Violation{}, true
}

// checkEnum enforces membership in the declared option set. Lists carrying
// the "Other" sentinel accept any free-text replacement verbatim, but never
// the sentinel token itself.
func checkEnum(field schema.FieldDef, value string) (Violation, bool) {
	if value == vocab.OptionOther {
		return Violation{
			Field:   field.Key,
			Message: "the sentinel option must be replaced with free text before validation",
		}, false
	}
	for _, option := range field.Options {
		if option == value {
			return Violation{}, true
		}
	}
	if vocab.HasOther(field.Options) {
		return Violation{}, true
	}
	return Violation{
		Field:   field.Key,
		Message: fmt.Sprintf("value %q is not an allowed option", value),
	}, false
}
