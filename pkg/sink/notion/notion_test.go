package notion_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jomei/notionapi"

	"github.com/goliatone/go-internform/internal/record"
	"github.com/goliatone/go-internform/pkg/schema"
	"github.com/goliatone/go-internform/pkg/sink"
	"github.com/goliatone/go-internform/pkg/sink/notion"
)

func sampleRecord() record.Record {
	return record.Record{
		Title:       "Acme Inc. Engineer internship",
		Description: "【Recruitment Details】\n### Role\nEngineer\n",
		Fields: []record.Field{
			{Key: schema.KeyCompany, Label: "Company", Value: "Acme Inc."},
			{Key: schema.KeyIndustry, Label: "Industry", Value: "IT / Technology"},
			{Key: schema.KeyNearestStation, Label: "Nearest Station", Value: ""},
			{Key: schema.KeyDeadline, Label: "Application Deadline", Value: "2024-03-15"},
			{Key: schema.KeyStartDate, Label: "Start Date", Value: ""},
			{Key: schema.KeyHeadcount, Label: "Headcount", Value: "3"},
		},
	}
}

func TestPageRequestMapping(t *testing.T) {
	req := notion.PageRequest("db-123", sampleRecord())

	if got := string(req.Parent.DatabaseID); got != "db-123" {
		t.Fatalf("database id = %q", got)
	}

	title, ok := req.Properties["Name"].(notionapi.TitleProperty)
	if !ok {
		t.Fatalf("Name property = %T", req.Properties["Name"])
	}
	if got := title.Title[0].Text.Content; got != "Acme Inc. Engineer internship" {
		t.Fatalf("title content = %q", got)
	}

	industry, ok := req.Properties["Industry"].(notionapi.SelectProperty)
	if !ok {
		t.Fatalf("Industry property = %T", req.Properties["Industry"])
	}
	if industry.Select.Name != "IT / Technology" {
		t.Fatalf("industry = %q", industry.Select.Name)
	}

	company, ok := req.Properties["Company"].(notionapi.RichTextProperty)
	if !ok {
		t.Fatalf("Company property = %T", req.Properties["Company"])
	}
	if got := company.RichText[0].Text.Content; got != "Acme Inc." {
		t.Fatalf("company = %q", got)
	}

	if _, ok := req.Properties["Application Deadline"].(notionapi.DateProperty); !ok {
		t.Fatalf("deadline property = %T", req.Properties["Application Deadline"])
	}
	// Empty dates are omitted rather than sent as invalid values.
	if _, present := req.Properties["Start Date"]; present {
		t.Fatal("empty start date should be omitted")
	}

	headcount, ok := req.Properties["Headcount"].(notionapi.NumberProperty)
	if !ok {
		t.Fatalf("headcount property = %T", req.Properties["Headcount"])
	}
	if headcount.Number != 3 {
		t.Fatalf("headcount = %v", headcount.Number)
	}

	if len(req.Children) != 1 {
		t.Fatalf("children = %d", len(req.Children))
	}
}

type fakePages struct {
	req  *notionapi.PageCreateRequest
	page *notionapi.Page
	err  error
}

func (f *fakePages) Create(_ context.Context, request *notionapi.PageCreateRequest) (*notionapi.Page, error) {
	f.req = request
	if f.err != nil {
		return nil, f.err
	}
	return f.page, nil
}

func TestDeliver(t *testing.T) {
	pages := &fakePages{page: &notionapi.Page{URL: "https://notion.so/abc"}}
	s := notion.New(
		notion.Config{Token: "secret", DatabaseID: "db-123"},
		notion.WithPageCreator(pages),
	)

	receipt, err := s.Deliver(context.Background(), sampleRecord())
	if err != nil {
		t.Fatalf("deliver: %v", err)
	}
	if receipt.Location != "https://notion.so/abc" {
		t.Fatalf("location = %q", receipt.Location)
	}
	if pages.req == nil {
		t.Fatal("no request sent")
	}
}

func TestDeliverUnconfigured(t *testing.T) {
	s := notion.New(notion.Config{})

	_, err := s.Deliver(context.Background(), sampleRecord())
	if !errors.Is(err, sink.ErrNotConfigured) {
		t.Fatalf("err = %v, want ErrNotConfigured", err)
	}
}

func TestDeliverRemoteFailure(t *testing.T) {
	pages := &fakePages{err: errors.New("unauthorized")}
	s := notion.New(
		notion.Config{Token: "secret", DatabaseID: "db-123"},
		notion.WithPageCreator(pages),
	)

	_, err := s.Deliver(context.Background(), sampleRecord())
	if err == nil {
		t.Fatal("expected error")
	}
}
