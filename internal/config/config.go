// Package config loads deployment configuration for the persistence sinks
// and the active schema. Values come from an optional .env file plus the
// process environment, and are handed to each sink as an explicit object;
// nothing reads ambient state inside business logic.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/goliatone/go-internform/pkg/sink/mail"
	"github.com/goliatone/go-internform/pkg/sink/notion"
	"github.com/goliatone/go-internform/pkg/sink/sheets"
)

// Config aggregates the per-sink configurations plus the optional schema
// document path.
type Config struct {
	Notion     notion.Config
	Sheets     sheets.Config
	Mail       mail.Config
	SchemaFile string
}

// Load reads the .env file at envPath when present, then resolves the
// configuration from the environment. A missing .env file is not an error;
// the environment alone may carry everything.
func Load(envPath string) (Config, error) {
	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("config: load %s: %w", envPath, err)
		}
	}

	cfg := Config{
		Notion: notion.Config{
			Token:      os.Getenv("NOTION_TOKEN"),
			DatabaseID: os.Getenv("NOTION_DATABASE_ID"),
		},
		Sheets: sheets.Config{
			CredentialsFile: os.Getenv("SHEETS_CREDENTIALS_FILE"),
			SpreadsheetID:   os.Getenv("SHEETS_SPREADSHEET_ID"),
			SheetName:       os.Getenv("SHEETS_SHEET_NAME"),
		},
		Mail: mail.Config{
			Host:     os.Getenv("SMTP_HOST"),
			Username: os.Getenv("SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     os.Getenv("MAIL_FROM"),
			To:       os.Getenv("MAIL_TO"),
		},
		SchemaFile: os.Getenv("INTERNFORM_SCHEMA"),
	}

	if raw := os.Getenv("SMTP_PORT"); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil || port <= 0 {
			return Config{}, fmt.Errorf("config: invalid SMTP_PORT %q", raw)
		}
		cfg.Mail.Port = port
	}

	return cfg, nil
}
