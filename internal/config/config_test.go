package config_test

import (
	"testing"

	"github.com/goliatone/go-internform/internal/config"
)

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("NOTION_TOKEN", "secret")
	t.Setenv("NOTION_DATABASE_ID", "db-123")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_PORT", "587")
	t.Setenv("MAIL_FROM", "noreply@example.com")
	t.Setenv("MAIL_TO", "talent@example.com")

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if !cfg.Notion.Enabled() {
		t.Fatal("notion should be enabled")
	}
	if cfg.Sheets.Enabled() {
		t.Fatal("sheets should be disabled")
	}
	if !cfg.Mail.Enabled() || cfg.Mail.Port != 587 {
		t.Fatalf("mail config = %+v", cfg.Mail)
	}
}

func TestLoadInvalidPort(t *testing.T) {
	t.Setenv("SMTP_PORT", "not-a-port")

	if _, err := config.Load(""); err == nil {
		t.Fatal("expected error")
	}
}

func TestLoadMissingEnvFileIsFine(t *testing.T) {
	if _, err := config.Load("testdata/does-not-exist.env"); err != nil {
		t.Fatalf("load: %v", err)
	}
}
