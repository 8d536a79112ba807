// Package notion delivers records to a Notion database, one page per
// submission. The property mapping onto the target schema is fixed at
// construction time, mirroring the record key set.
package notion

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jomei/notionapi"

	"github.com/goliatone/go-internform/internal/record"
	"github.com/goliatone/go-internform/pkg/schema"
	"github.com/goliatone/go-internform/pkg/sink"
)

// SinkName identifies this adapter in the registry.
const SinkName = "notion"

// Config carries the adapter's external-service configuration. It is passed
// in explicitly at construction, never read from ambient process state inside
// business logic.
type Config struct {
	Token      string
	DatabaseID string
}

// Enabled reports whether the adapter has everything it needs to deliver.
func (c Config) Enabled() bool {
	return c.Token != "" && c.DatabaseID != ""
}

// PageCreator is the slice of the Notion API the sink needs. Tests provide a
// fake; production uses the real client's page service.
type PageCreator interface {
	Create(ctx context.Context, request *notionapi.PageCreateRequest) (*notionapi.Page, error)
}

// Option configures the sink before construction.
type Option func(*Sink)

// WithPageCreator swaps the Notion page service, primarily for tests.
func WithPageCreator(pages PageCreator) Option {
	return func(s *Sink) {
		if pages != nil {
			s.pages = pages
		}
	}
}

// Sink writes one Notion page per delivered record.
type Sink struct {
	cfg   Config
	pages PageCreator
}

var _ sink.Sink = (*Sink)(nil)

// New constructs the Notion sink. An unconfigured sink is still constructable
// so it can report ErrNotConfigured when invoked anyway.
func New(cfg Config, options ...Option) *Sink {
	s := &Sink{cfg: cfg}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if s.pages == nil && cfg.Enabled() {
		s.pages = notionapi.NewClient(notionapi.Token(cfg.Token)).Page
	}
	return s
}

// Name implements sink.Sink.
func (s *Sink) Name() string { return SinkName }

// Deliver creates the page and returns its URL as the receipt location.
func (s *Sink) Deliver(ctx context.Context, rec record.Record) (sink.Receipt, error) {
	if !s.cfg.Enabled() || s.pages == nil {
		return sink.Receipt{}, sink.NotConfigured(SinkName)
	}

	page, err := s.pages.Create(ctx, PageRequest(s.cfg.DatabaseID, rec))
	if err != nil {
		return sink.Receipt{}, fmt.Errorf("sink %s: create page: %w", SinkName, err)
	}
	return sink.Receipt{Location: page.URL}, nil
}

// selectKeys are the record fields stored as single-select values constrained
// to the vocabulary tables; everything else non-typed below is rich text.
var selectKeys = map[string]struct{}{
	schema.KeyIndustry: {},
	schema.KeyWorkType: {},
	schema.KeyPeriod:   {},
	schema.KeyPosition: {},
}

var dateKeys = map[string]struct{}{
	schema.KeyDeadline:  {},
	schema.KeyStartDate: {},
}

var numberKeys = map[string]struct{}{
	schema.KeyHeadcount:   {},
	schema.KeyWeeklyHours: {},
}

// PageRequest maps a record onto the target database schema: the title
// property from the record title, selects/dates/numbers for the typed
// columns, rich text for the rest, and the rendered description as a
// paragraph child block. Pure; exported so the mapping is testable without a
// live workspace.
func PageRequest(databaseID string, rec record.Record) *notionapi.PageCreateRequest {
	properties := notionapi.Properties{
		"Name": notionapi.TitleProperty{
			Title: richText(rec.Title),
		},
	}

	for _, field := range rec.Fields {
		if _, ok := selectKeys[field.Key]; ok {
			if field.Value != "" {
				properties[field.Label] = notionapi.SelectProperty{
					Select: notionapi.Option{Name: field.Value},
				}
			}
			continue
		}
		if _, ok := dateKeys[field.Key]; ok {
			if date, err := parseDate(field.Value); err == nil {
				properties[field.Label] = notionapi.DateProperty{
					Date: &notionapi.DateObject{Start: date},
				}
			}
			continue
		}
		if _, ok := numberKeys[field.Key]; ok {
			if n, err := strconv.Atoi(field.Value); err == nil {
				properties[field.Label] = notionapi.NumberProperty{
					Number: float64(n),
				}
			}
			continue
		}
		properties[field.Label] = notionapi.RichTextProperty{
			RichText: richText(field.Value),
		}
	}

	return &notionapi.PageCreateRequest{
		Parent: notionapi.Parent{
			Type:       notionapi.ParentTypeDatabaseID,
			DatabaseID: notionapi.DatabaseID(databaseID),
		},
		Properties: properties,
		Children: []notionapi.Block{
			notionapi.ParagraphBlock{
				BasicBlock: notionapi.BasicBlock{
					Object: notionapi.ObjectTypeBlock,
					Type:   notionapi.BlockTypeParagraph,
				},
				Paragraph: notionapi.Paragraph{
					RichText: richText(rec.Description),
				},
			},
		},
	}
}

func richText(content string) []notionapi.RichText {
	return []notionapi.RichText{
		{Text: &notionapi.Text{Content: content}},
	}
}

func parseDate(value string) (*notionapi.Date, error) {
	t, err := time.Parse(schema.DateFormat, value)
	if err != nil {
		return nil, err
	}
	date := notionapi.Date(t)
	return &date, nil
}
