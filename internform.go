// Package internform generates internship posting records: fixed option
// vocabularies feed a validated form schema, validated values build a
// canonical record with a rendered multi-section description, and optional
// persistence sinks (Notion database, Google Sheets, SMTP) receive the
// finished record.
package internform

import (
	"context"
	"io/fs"

	"github.com/goliatone/go-internform/internal/form"
	"github.com/goliatone/go-internform/internal/record"
	"github.com/goliatone/go-internform/pkg/pipeline"
	"github.com/goliatone/go-internform/pkg/schema"
	"github.com/goliatone/go-internform/pkg/sink"
)

// Record is the immutable, fully rendered output of one submission.
type Record = record.Record

// Field is one resolved record entry.
type Field = record.Field

// Values is the raw field mapping a collection layer hands to validation.
type Values = schema.Values

// FormSchema is the ordered definition of fields a submission must supply.
type FormSchema = schema.FormSchema

// Violation names one field that failed validation.
type Violation = form.Violation

// Violations aggregates validation failures into a single error value.
type Violations = form.Violations

// Result carries the built record plus the per-sink delivery outcomes.
type Result = pipeline.Result

// DefaultSchema returns the built-in internship posting schema.
func DefaultSchema() FormSchema {
	return schema.Default()
}

// NewPipeline exposes the pipeline constructor from the top-level module.
func NewPipeline(options ...pipeline.Option) *pipeline.Pipeline {
	return pipeline.New(options...)
}

// NewSinkRegistry creates an empty sink registry.
func NewSinkRegistry() *sink.Registry {
	return sink.NewRegistry()
}

// Generate validates the values against the built-in schema and builds the
// record without delivering anywhere. The simplest entry point for callers
// that just want the rendered posting.
func Generate(values Values) (Record, error) {
	return pipeline.New().Generate(values)
}

// Run validates, builds, and delivers to the named sinks in one call.
func Run(ctx context.Context, values Values, sinks []string, options ...pipeline.Option) (Result, error) {
	return pipeline.New(options...).Run(ctx, pipeline.Request{
		Values: values,
		Sinks:  sinks,
	})
}

// DescriptionTemplates exposes the embedded description template set so
// callers can reuse or extend it.
func DescriptionTemplates() fs.FS {
	return record.TemplatesFS()
}
