package sheets_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-internform/internal/record"
	"github.com/goliatone/go-internform/pkg/schema"
	"github.com/goliatone/go-internform/pkg/sink"
	"github.com/goliatone/go-internform/pkg/sink/sheets"
)

func sampleRecord() record.Record {
	return record.Record{
		Title:       "Acme Inc. Engineer internship",
		Description: "【Recruitment Details】\n### Role\nEngineer\n",
		Fields: []record.Field{
			{Key: schema.KeyCompany, Label: "Company", Value: "Acme Inc."},
			{Key: schema.KeyLocation, Label: "Location", Value: "Tokyo"},
			{Key: schema.KeyPreferredSkills, Label: "Preferred Skills", Value: ""},
		},
	}
}

func TestHeaderAndRowShareOrder(t *testing.T) {
	rec := sampleRecord()

	header := sheets.Header(rec)
	row := sheets.Row(rec)

	wantHeader := []any{"Title", "Company", "Location", "Preferred Skills", "Description"}
	if diff := cmp.Diff(wantHeader, header); diff != "" {
		t.Fatalf("header mismatch (-want +got):\n%s", diff)
	}

	wantRow := []any{
		"Acme Inc. Engineer internship",
		"Acme Inc.",
		"Tokyo",
		"",
		"【Recruitment Details】\n### Role\nEngineer\n",
	}
	if diff := cmp.Diff(wantRow, row); diff != "" {
		t.Fatalf("row mismatch (-want +got):\n%s", diff)
	}

	if len(header) != len(row) {
		t.Fatalf("header/row length mismatch: %d vs %d", len(header), len(row))
	}
}

func TestDeliverUnconfigured(t *testing.T) {
	s := sheets.New(sheets.Config{})

	_, err := s.Deliver(context.Background(), sampleRecord())
	if !errors.Is(err, sink.ErrNotConfigured) {
		t.Fatalf("err = %v, want ErrNotConfigured", err)
	}
}
