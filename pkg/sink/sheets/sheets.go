// Package sheets appends records to a Google Sheets spreadsheet, one row per
// submission, auto-creating the target sheet with a fixed header row when it
// does not exist yet.
package sheets

import (
	"context"
	"fmt"
	"sync"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/goliatone/go-internform/internal/record"
	"github.com/goliatone/go-internform/pkg/sink"
)

// SinkName identifies this adapter in the registry.
const SinkName = "sheets"

// Config carries the adapter's external-service configuration.
type Config struct {
	CredentialsFile string
	SpreadsheetID   string
	SheetName       string
}

// Enabled reports whether the adapter has everything it needs to deliver.
func (c Config) Enabled() bool {
	return c.CredentialsFile != "" && c.SpreadsheetID != "" && c.SheetName != ""
}

// Option configures the sink before construction.
type Option func(*Sink)

// WithService injects a pre-built Sheets service, primarily for tests.
func WithService(svc *sheets.Service) Option {
	return func(s *Sink) {
		s.svc = svc
	}
}

// Sink appends one spreadsheet row per delivered record. Writes are
// serialized through a sink-level mutex because the row position is computed
// by reading the current row count before writing; the remote append is not
// atomic across concurrent writers.
type Sink struct {
	mu  sync.Mutex
	cfg Config
	svc *sheets.Service
}

var _ sink.Sink = (*Sink)(nil)

// New constructs the Sheets sink.
func New(cfg Config, options ...Option) *Sink {
	s := &Sink{cfg: cfg}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s
}

// Name implements sink.Sink.
func (s *Sink) Name() string { return SinkName }

// Deliver appends the record as the next row, creating the sheet and header
// on first use, and returns "row N" as the receipt location.
func (s *Sink) Deliver(ctx context.Context, rec record.Record) (sink.Receipt, error) {
	if !s.cfg.Enabled() {
		return sink.Receipt{}, sink.NotConfigured(SinkName)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	svc, err := s.service(ctx)
	if err != nil {
		return sink.Receipt{}, fmt.Errorf("sink %s: %w", SinkName, err)
	}

	if err := s.ensureSheet(ctx, svc, rec); err != nil {
		return sink.Receipt{}, fmt.Errorf("sink %s: %w", SinkName, err)
	}

	existing, err := svc.Spreadsheets.Values.
		Get(s.cfg.SpreadsheetID, s.rangeRef("A:A")).
		Context(ctx).Do()
	if err != nil {
		return sink.Receipt{}, fmt.Errorf("sink %s: read row count: %w", SinkName, err)
	}

	row := len(existing.Values) + 1
	if err := s.writeRow(ctx, svc, row, Row(rec)); err != nil {
		return sink.Receipt{}, fmt.Errorf("sink %s: append row %d: %w", SinkName, row, err)
	}

	return sink.Receipt{Location: fmt.Sprintf("row %d", row)}, nil
}

func (s *Sink) service(ctx context.Context) (*sheets.Service, error) {
	if s.svc != nil {
		return s.svc, nil
	}
	svc, err := sheets.NewService(ctx, option.WithCredentialsFile(s.cfg.CredentialsFile))
	if err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}
	s.svc = svc
	return svc, nil
}

// ensureSheet creates the target sheet with its header row when the
// spreadsheet does not contain it yet.
func (s *Sink) ensureSheet(ctx context.Context, svc *sheets.Service, rec record.Record) error {
	doc, err := svc.Spreadsheets.Get(s.cfg.SpreadsheetID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("get spreadsheet: %w", err)
	}
	for _, sheet := range doc.Sheets {
		if sheet.Properties != nil && sheet.Properties.Title == s.cfg.SheetName {
			return nil
		}
	}

	_, err = svc.Spreadsheets.BatchUpdate(s.cfg.SpreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{
			{
				AddSheet: &sheets.AddSheetRequest{
					Properties: &sheets.SheetProperties{Title: s.cfg.SheetName},
				},
			},
		},
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("create sheet %q: %w", s.cfg.SheetName, err)
	}

	if err := s.writeRow(ctx, svc, 1, Header(rec)); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	return nil
}

func (s *Sink) writeRow(ctx context.Context, svc *sheets.Service, row int, values []any) error {
	_, err := svc.Spreadsheets.Values.
		Update(s.cfg.SpreadsheetID, s.rangeRef(fmt.Sprintf("A%d", row)), &sheets.ValueRange{
			Values: [][]any{values},
		}).
		ValueInputOption("RAW").
		Context(ctx).Do()
	return err
}

func (s *Sink) rangeRef(cells string) string {
	return fmt.Sprintf("'%s'!%s", s.cfg.SheetName, cells)
}

// Header returns the fixed column order: Title, one column per record field
// in schema order, Description last. Pure; exported so the layout is
// testable without a live spreadsheet.
func Header(rec record.Record) []any {
	out := make([]any, 0, len(rec.Fields)+2)
	out = append(out, "Title")
	for _, field := range rec.Fields {
		out = append(out, field.Label)
	}
	out = append(out, "Description")
	return out
}

// Row returns the record's values in the same fixed order as Header.
func Row(rec record.Record) []any {
	out := make([]any, 0, len(rec.Fields)+2)
	out = append(out, rec.Title)
	for _, field := range rec.Fields {
		out = append(out, field.Value)
	}
	out = append(out, rec.Description)
	return out
}
