package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-internform/components/vocab"
	"github.com/goliatone/go-internform/pkg/schema"
)

// Collector walks a form schema and gathers raw field values through the
// prompt driver. It performs sentinel substitution: when the user picks the
// "Other" option the replacement free text is what validation sees.
type Collector struct {
	driver PromptDriver
}

// NewCollector builds a collector over the given driver.
func NewCollector(driver PromptDriver) *Collector {
	return &Collector{driver: driver}
}

// Collect prompts for every schema field in order and returns the raw value
// mapping ready for validation.
func (c *Collector) Collect(ctx context.Context, s schema.FormSchema) (schema.Values, error) {
	values := make(schema.Values, len(s.Fields))
	for _, field := range s.Fields {
		value, err := c.collectField(ctx, field)
		if err != nil {
			return nil, err
		}
		values[field.Key] = value
	}
	return values, nil
}

func (c *Collector) collectField(ctx context.Context, field schema.FieldDef) (string, error) {
	switch field.Kind {
	case schema.FieldKindSelect:
		return c.collectSelect(ctx, field)
	case schema.FieldKindMultiSelect:
		return c.collectMultiSelect(ctx, field)
	case schema.FieldKindTextArea:
		return c.driver.TextArea(ctx, InputConfig{
			Message:   field.Label,
			Help:      field.Placeholder,
			Validator: requiredValidator(field),
		})
	case schema.FieldKindDate:
		return c.driver.Input(ctx, InputConfig{
			Message:   field.Label + " (YYYY-MM-DD)",
			Help:      field.Placeholder,
			Validator: chainValidators(requiredValidator(field), dateValidator),
		})
	case schema.FieldKindInt:
		return c.driver.Input(ctx, InputConfig{
			Message:   field.Label,
			Help:      field.Placeholder,
			Validator: chainValidators(requiredValidator(field), intValidator),
		})
	default:
		return c.driver.Input(ctx, InputConfig{
			Message:   field.Label,
			Help:      field.Placeholder,
			Validator: requiredValidator(field),
		})
	}
}

func (c *Collector) collectSelect(ctx context.Context, field schema.FieldDef) (string, error) {
	idx, err := c.driver.Select(ctx, SelectConfig{
		Message:  field.Label,
		Options:  field.Options,
		PageSize: pageSize(field.Options),
	})
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(field.Options) {
		return "", nil
	}

	choice := field.Options[idx]
	if choice != vocab.OptionOther {
		return choice, nil
	}
	return c.collectOther(ctx, field)
}

func (c *Collector) collectMultiSelect(ctx context.Context, field schema.FieldDef) (string, error) {
	indices, err := c.driver.MultiSelect(ctx, SelectConfig{
		Message:  field.Label,
		Options:  field.Options,
		PageSize: pageSize(field.Options),
	})
	if err != nil {
		return "", err
	}

	choices := make([]string, 0, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= len(field.Options) {
			continue
		}
		choice := field.Options[idx]
		if choice == vocab.OptionOther {
			replacement, err := c.collectOther(ctx, field)
			if err != nil {
				return "", err
			}
			if replacement != "" {
				choices = append(choices, replacement)
			}
			continue
		}
		choices = append(choices, choice)
	}
	return schema.JoinMulti(choices), nil
}

// collectOther prompts for the free-text replacement of the sentinel option.
func (c *Collector) collectOther(ctx context.Context, field schema.FieldDef) (string, error) {
	return c.driver.Input(ctx, InputConfig{
		Message: field.Label + " (other)",
		Help:    field.Placeholder,
		Validator: func(value string) error {
			trimmed := strings.TrimSpace(value)
			if trimmed == "" {
				return fmt.Errorf("a replacement value is required")
			}
			if trimmed == vocab.OptionOther {
				return fmt.Errorf("enter the actual value, not %q", vocab.OptionOther)
			}
			return nil
		},
	})
}

func requiredValidator(field schema.FieldDef) func(string) error {
	if !field.Required {
		return nil
	}
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%s is required", field.Label)
		}
		return nil
	}
}

func dateValidator(value string) error {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	if _, err := time.Parse(schema.DateFormat, strings.TrimSpace(value)); err != nil {
		return fmt.Errorf("expected YYYY-MM-DD")
	}
	return nil
}

func intValidator(value string) error {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 0 {
		return fmt.Errorf("expected a non-negative integer")
	}
	return nil
}

func chainValidators(validators ...func(string) error) func(string) error {
	return func(value string) error {
		for _, validate := range validators {
			if validate == nil {
				continue
			}
			if err := validate(value); err != nil {
				return err
			}
		}
		return nil
	}
}

func pageSize(options []string) int {
	if len(options) > 10 {
		return 10
	}
	return 0
}
