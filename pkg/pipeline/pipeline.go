// Package pipeline coordinates one submission end to end: validate the raw
// field values, build the record, then deliver it to the requested sinks.
// Each submission is processed synchronously; nothing mutable is shared
// across submissions except the read-only schema and vocabulary tables.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-internform/internal/form"
	"github.com/goliatone/go-internform/internal/record"
	"github.com/goliatone/go-internform/pkg/schema"
	"github.com/goliatone/go-internform/pkg/sink"
)

// Option customises the pipeline configuration.
type Option func(*Pipeline)

// WithSchema sets the active form schema. Defaults to schema.Default().
func WithSchema(s schema.FormSchema) Option {
	return func(p *Pipeline) {
		p.schema = s
		p.schemaSpecified = true
	}
}

// ValidatorFunc checks raw values against a schema, returning either the
// validated mapping or the violations found.
type ValidatorFunc func(schema.FormSchema, schema.Values) (schema.Values, form.Violations)

// WithValidatorFunc replaces the default validator. Defaults to
// form.Validate.
func WithValidatorFunc(fn ValidatorFunc) Option {
	return func(p *Pipeline) {
		if fn != nil {
			p.validate = fn
		}
	}
}

// WithBuilder injects a custom record builder.
func WithBuilder(b *record.Builder) Option {
	return func(p *Pipeline) {
		p.builder = b
	}
}

// WithRegistry injects a sink registry.
func WithRegistry(r *sink.Registry) Option {
	return func(p *Pipeline) {
		p.registry = r
	}
}

// WithSinks registers sinks on the pipeline's registry.
func WithSinks(sinks ...sink.Sink) Option {
	return func(p *Pipeline) {
		p.pending = append(p.pending, sinks...)
	}
}

// Pipeline runs validate → build → deliver for one submission at a time. It
// applies sensible defaults (built-in schema, embedded template builder,
// empty registry) while remaining open to dependency injection.
type Pipeline struct {
	schema          schema.FormSchema
	schemaSpecified bool
	validate        ValidatorFunc
	builder         *record.Builder
	registry        *sink.Registry
	pending         []sink.Sink
	initialiseErr   error
	defaultsApplied bool
}

// New constructs a Pipeline applying any provided options.
func New(options ...Option) *Pipeline {
	p := &Pipeline{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(p)
	}
	p.applyDefaults()
	return p
}

// Request describes one submission: the raw field values (enum sentinels
// already substituted) and the names of the sinks to deliver to. Zero sinks
// is a supported pattern; the record is still built and returned.
type Request struct {
	Values schema.Values
	Sinks  []string
}

// Delivery records the outcome of one sink invocation.
type Delivery struct {
	Sink    string
	Receipt sink.Receipt
	Err     error
}

// Result carries the built record plus the per-sink outcomes. The record is
// always present on success even when every delivery failed: a persistence
// failure never discards the user's composed input.
type Result struct {
	Record     record.Record
	Deliveries []Delivery
}

// Failed returns the deliveries that errored.
func (r Result) Failed() []Delivery {
	var out []Delivery
	for _, d := range r.Deliveries {
		if d.Err != nil {
			out = append(out, d)
		}
	}
	return out
}

// Run executes the submission. Validation failures return form.Violations
// and no record is constructed. Sink failures are reported per delivery and
// never abort the remaining sinks.
func (p *Pipeline) Run(ctx context.Context, req Request) (Result, error) {
	if ctx == nil {
		return Result{}, errors.New("pipeline: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if err := p.initialiseErr; err != nil {
		return Result{}, err
	}

	rec, err := p.Generate(req.Values)
	if err != nil {
		return Result{}, err
	}

	result := Result{Record: rec}
	for _, name := range req.Sinks {
		result.Deliveries = append(result.Deliveries, p.deliver(ctx, name, rec))
	}
	return result, nil
}

// Generate validates and builds without delivering anywhere.
func (p *Pipeline) Generate(values schema.Values) (record.Record, error) {
	if err := p.initialiseErr; err != nil {
		return record.Record{}, err
	}

	validated, violations := p.validate(p.schema, values)
	if len(violations) > 0 {
		return record.Record{}, violations
	}

	rec, err := p.builder.Build(validated)
	if err != nil {
		return record.Record{}, fmt.Errorf("pipeline: build record: %w", err)
	}
	return rec, nil
}

// Schema returns the active form schema.
func (p *Pipeline) Schema() schema.FormSchema {
	return p.schema
}

// Sinks returns the registered sink names.
func (p *Pipeline) Sinks() []string {
	if p.registry == nil {
		return nil
	}
	return p.registry.List()
}

func (p *Pipeline) deliver(ctx context.Context, name string, rec record.Record) Delivery {
	target, err := p.registry.Get(name)
	if err != nil {
		return Delivery{Sink: name, Err: err}
	}

	receipt, err := target.Deliver(ctx, rec)
	if err != nil {
		return Delivery{Sink: name, Err: fmt.Errorf("pipeline: deliver to %s: %w", name, err)}
	}
	return Delivery{Sink: name, Receipt: receipt}
}

func (p *Pipeline) applyDefaults() {
	if p.defaultsApplied {
		return
	}

	if !p.schemaSpecified && len(p.schema.Fields) == 0 {
		p.schema = schema.Default()
	}
	if p.validate == nil {
		p.validate = form.Validate
	}
	if err := p.schema.Validate(); err != nil {
		p.initialiseErr = fmt.Errorf("pipeline: %w", err)
	}
	if p.builder == nil && p.initialiseErr == nil {
		builder, err := record.New(p.schema)
		if err != nil {
			p.initialiseErr = fmt.Errorf("pipeline: default builder: %w", err)
		} else {
			p.builder = builder
		}
	}
	if p.registry == nil {
		p.registry = sink.NewRegistry()
	}
	for _, pending := range p.pending {
		if pending == nil {
			continue
		}
		if err := p.registry.Register(pending); err != nil && p.initialiseErr == nil {
			p.initialiseErr = fmt.Errorf("pipeline: %w", err)
		}
	}
	p.pending = nil

	p.defaultsApplied = true
}
