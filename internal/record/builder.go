package record

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-internform/components/vocab"
	"github.com/goliatone/go-internform/pkg/schema"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// DefaultTitleTemplate is the fixed title pattern. It is configured once per
// deployment and never varies with which optional fields are present, so
// title shape stays predictable.
const DefaultTitleTemplate = "{{ company }} {{ position }} internship"

const descriptionTemplateName = "description.tpl"

// TemplatesFS exposes the built-in description template so callers can reuse
// or extend it without reaching into the package layout.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return embeddedTemplates
	}
	return sub
}

// Option configures the builder before construction.
type Option func(*config)

type config struct {
	templates     fs.FS
	titleTemplate string
}

// WithTemplatesFS overrides the embedded description template set.
func WithTemplatesFS(fsys fs.FS) Option {
	return func(cfg *config) {
		if fsys != nil {
			cfg.templates = fsys
		}
	}
}

// WithTitleTemplate overrides the deployment title pattern.
func WithTitleTemplate(tpl string) Option {
	return func(cfg *config) {
		if trimmed := strings.TrimSpace(tpl); trimmed != "" {
			cfg.titleTemplate = trimmed
		}
	}
}

// Builder deterministically renders Records from validated field values.
// Rendering the same values twice yields byte-identical output.
type Builder struct {
	mu sync.RWMutex

	schema      schema.FormSchema
	description *pongo2.Template
	title       *pongo2.Template
}

// New constructs a Builder for the given schema. Construction fails only on
// template problems; Build never fails on validated input.
func New(s schema.FormSchema, options ...Option) (*Builder, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("record: invalid schema: %w", err)
	}

	cfg := &config{
		templates:     TemplatesFS(),
		titleTemplate: DefaultTitleTemplate,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	set := pongo2.NewSet("internform", pongo2.NewFSLoader(cfg.templates))

	description, err := set.FromFile(descriptionTemplateName)
	if err != nil {
		return nil, fmt.Errorf("record: load description template: %w", err)
	}
	title, err := set.FromString(cfg.titleTemplate)
	if err != nil {
		return nil, fmt.Errorf("record: parse title template: %w", err)
	}

	return &Builder{
		schema:      s,
		description: description,
		title:       title,
	}, nil
}

// Build renders a Record from a validated value mapping. Any failure here
// indicates bad input slipped past validation, which is a validator defect,
// not a builder one.
func (b *Builder) Build(values schema.Values) (Record, error) {
	if b == nil || b.description == nil {
		return Record{}, errors.New("record: builder is not initialised")
	}

	ctx := b.templateContext(values)

	b.mu.RLock()
	defer b.mu.RUnlock()

	title, err := b.title.Execute(ctx)
	if err != nil {
		return Record{}, fmt.Errorf("record: render title: %w", err)
	}
	description, err := b.description.Execute(ctx)
	if err != nil {
		return Record{}, fmt.Errorf("record: render description: %w", err)
	}

	fields := make([]Field, 0, len(b.schema.Fields))
	for _, def := range b.schema.Fields {
		fields = append(fields, Field{
			Key:   def.Key,
			Label: def.Label,
			Value: values.Get(def.Key),
		})
	}

	return Record{
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description) + "\n",
		Fields:      fields,
	}, nil
}

// templateContext exposes every field value under its key plus the derived
// working_hours and weekly_hours_text entries the section template uses.
func (b *Builder) templateContext(values schema.Values) pongo2.Context {
	ctx := make(pongo2.Context, len(b.schema.Fields)+2)
	for _, def := range b.schema.Fields {
		ctx[def.Key] = values.Get(def.Key)
	}
	ctx["working_hours"] = FormatWorkingHours(values.Get(schema.KeyStartTime), values.Get(schema.KeyEndTime))
	ctx["weekly_hours_text"] = formatWeeklyHours(values.Get(schema.KeyWeeklyHours))
	return ctx
}

// FormatWorkingHours renders a time range as "start〜end" (full-width tilde),
// collapsing to the flexible-schedule sentinel when either endpoint is it.
// Both endpoints empty render as empty.
func FormatWorkingHours(start, end string) string {
	if start == vocab.FlexibleSchedule || end == vocab.FlexibleSchedule {
		return vocab.FlexibleSchedule
	}
	if start == "" && end == "" {
		return ""
	}
	return start + "〜" + end
}

func formatWeeklyHours(hours string) string {
	if hours == "" {
		return ""
	}
	return hours + " hours/week"
}
