package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/goliatone/go-internform/internal/config"
	"github.com/goliatone/go-internform/internal/form"
	"github.com/goliatone/go-internform/pkg/pipeline"
	"github.com/goliatone/go-internform/pkg/schema"
	"github.com/goliatone/go-internform/pkg/sink"
	mailsink "github.com/goliatone/go-internform/pkg/sink/mail"
	notionsink "github.com/goliatone/go-internform/pkg/sink/notion"
	sheetssink "github.com/goliatone/go-internform/pkg/sink/sheets"
)

func main() {
	var (
		configFlag    = flag.String("config", ".env", "Path to a .env file with sink credentials")
		schemaFlag    = flag.String("schema", "", "Optional YAML schema document overriding the built-in form")
		outputFlag    = flag.String("output", "", "Optional file path for the rendered description (stdout only when empty)")
		listSinksFlag = flag.Bool("list-sinks", false, "Print configured sinks and exit")
	)
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	activeSchema, err := resolveSchema(*schemaFlag, cfg)
	if err != nil {
		log.Fatalf("resolve schema: %v", err)
	}

	registry := sink.NewRegistry()
	registry.MustRegister(notionsink.New(cfg.Notion))
	registry.MustRegister(sheetssink.New(cfg.Sheets))
	registry.MustRegister(mailsink.New(cfg.Mail))

	enabled := enabledSinks(cfg)
	if *listSinksFlag {
		if len(enabled) == 0 {
			fmt.Println("no sinks configured")
			return
		}
		for _, name := range enabled {
			fmt.Println(name)
		}
		return
	}

	pipe := pipeline.New(
		pipeline.WithSchema(activeSchema),
		pipeline.WithRegistry(registry),
	)

	driver := &surveyDriver{}
	collector := NewCollector(driver)

	values, err := collector.Collect(ctx, activeSchema)
	if err != nil {
		if errors.Is(err, ErrAborted) {
			log.Fatal("aborted")
		}
		log.Fatalf("collect values: %v", err)
	}

	rec, err := pipe.Generate(values)
	if err != nil {
		var violations form.Violations
		if errors.As(err, &violations) {
			for _, v := range violations {
				fmt.Fprintf(os.Stderr, "invalid %s: %s\n", v.Field, v.Message)
			}
			os.Exit(1)
		}
		log.Fatalf("generate record: %v", err)
	}

	if err := driver.Info(ctx, "\n"+rec.Title+"\n\n"+rec.Description); err != nil {
		log.Fatalf("print record: %v", err)
	}

	if *outputFlag != "" {
		if err := writeFile(*outputFlag, []byte(rec.Description)); err != nil {
			log.Fatalf("write output: %v", err)
		}
		log.Printf("wrote %d bytes to %s", len(rec.Description), *outputFlag)
	}

	// The record stands on its own; each delivery is optional and a failed
	// sink never blocks the next one.
	var chosen []string
	for _, name := range enabled {
		ok, err := driver.Confirm(ctx, ConfirmConfig{
			Message: fmt.Sprintf("Deliver to %s?", name),
		})
		if err != nil {
			log.Fatalf("confirm delivery: %v", err)
		}
		if ok {
			chosen = append(chosen, name)
		}
	}
	if len(chosen) == 0 {
		return
	}

	result, err := pipe.Run(ctx, pipeline.Request{Values: values, Sinks: chosen})
	if err != nil {
		log.Fatalf("deliver record: %v", err)
	}
	for _, delivery := range result.Deliveries {
		if delivery.Err != nil {
			fmt.Fprintf(os.Stderr, "%s: delivery failed: %v\n", delivery.Sink, delivery.Err)
			continue
		}
		fmt.Printf("%s: delivered (%s)\n", delivery.Sink, delivery.Receipt.Location)
	}
}

func resolveSchema(flagPath string, cfg config.Config) (schema.FormSchema, error) {
	path := flagPath
	if path == "" {
		path = cfg.SchemaFile
	}
	if path == "" {
		return schema.Default(), nil
	}
	return schema.LoadFile(path)
}

func enabledSinks(cfg config.Config) []string {
	var out []string
	if cfg.Notion.Enabled() {
		out = append(out, notionsink.SinkName)
	}
	if cfg.Sheets.Enabled() {
		out = append(out, sheetssink.SinkName)
	}
	if cfg.Mail.Enabled() {
		out = append(out, mailsink.SinkName)
	}
	return out
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
