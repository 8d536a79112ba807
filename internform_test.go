package internform_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	internform "github.com/goliatone/go-internform"
	"github.com/goliatone/go-internform/pkg/pipeline"
	"github.com/goliatone/go-internform/pkg/schema"
)

func firstOptionValues(t *testing.T) internform.Values {
	t.Helper()

	values := internform.Values{
		schema.KeyCompany:        "Acme Inc.",
		schema.KeyLocation:       "Tokyo",
		schema.KeyRequiredSkills: "communication",
		schema.KeyWeeklyHours:    "15",
		schema.KeyDeadline:       "2024-03-15",
		schema.KeyStartDate:      "2024-04-01",
		schema.KeyHeadcount:      "1",
	}
	for _, field := range internform.DefaultSchema().Fields {
		if field.Enum() && len(field.Options) > 0 {
			values[field.Key] = field.Options[0]
		}
	}
	return values
}

func TestGenerateEndToEnd(t *testing.T) {
	rec, err := internform.Generate(firstOptionValues(t))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if !strings.Contains(rec.Title, "Acme Inc.") {
		t.Fatalf("title = %q", rec.Title)
	}
	for _, header := range []string{"### Role", "### Preferred Skills", "### Headcount"} {
		if !strings.Contains(rec.Description, header) {
			t.Fatalf("description missing %q", header)
		}
	}
}

func TestGenerateViolations(t *testing.T) {
	values := firstOptionValues(t)
	delete(values, schema.KeyCompany)

	_, err := internform.Generate(values)

	var violations internform.Violations
	if !errors.As(err, &violations) {
		t.Fatalf("err = %v, want Violations", err)
	}
}

func TestRunWithoutSinks(t *testing.T) {
	result, err := internform.Run(context.Background(), firstOptionValues(t), nil)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if result.Record.Title == "" {
		t.Fatal("record not built")
	}
}

func TestNewPipelineOptionsForwarded(t *testing.T) {
	custom := schema.FormSchema{
		Name: "minimal",
		Fields: []schema.FieldDef{
			{Key: "company", Label: "Company", Kind: schema.FieldKindText, Required: true},
		},
	}

	pipe := internform.NewPipeline(pipeline.WithSchema(custom))
	if got := pipe.Schema().Name; got != "minimal" {
		t.Fatalf("schema name = %q", got)
	}
}

func TestDescriptionTemplatesExposed(t *testing.T) {
	fsys := internform.DescriptionTemplates()
	if _, err := fsys.Open("description.tpl"); err != nil {
		t.Fatalf("open template: %v", err)
	}
}
