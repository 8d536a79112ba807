package sink_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-internform/internal/record"
	"github.com/goliatone/go-internform/pkg/sink"
)

type stubSink struct {
	name string
}

func (s stubSink) Name() string { return s.name }

func (s stubSink) Deliver(context.Context, record.Record) (sink.Receipt, error) {
	return sink.Receipt{Location: s.name}, nil
}

func TestRegistryRegisterAndGet(t *testing.T) {
	registry := sink.NewRegistry()

	if err := registry.Register(stubSink{name: "notion"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := registry.Register(stubSink{name: "mail"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	got, err := registry.Get("notion")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name() != "notion" {
		t.Fatalf("name = %q", got.Name())
	}

	if diff := cmp.Diff([]string{"mail", "notion"}, registry.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
	if !registry.Has("mail") || registry.Has("sheets") {
		t.Fatal("membership mismatch")
	}
}

func TestRegistryRejectsDuplicatesAndEmptyNames(t *testing.T) {
	registry := sink.NewRegistry()
	registry.MustRegister(stubSink{name: "notion"})

	if err := registry.Register(stubSink{name: "notion"}); err == nil {
		t.Fatal("expected duplicate error")
	}
	if err := registry.Register(stubSink{}); err == nil {
		t.Fatal("expected empty-name error")
	}
	if err := registry.Register(nil); err == nil {
		t.Fatal("expected nil-sink error")
	}
}

func TestRegistryGetUnknown(t *testing.T) {
	registry := sink.NewRegistry()
	_, err := registry.Get("sheets")
	if err == nil || !strings.Contains(err.Error(), "sheets") {
		t.Fatalf("err = %v", err)
	}
}

func TestNotConfiguredError(t *testing.T) {
	err := sink.NotConfigured("notion")
	if !strings.Contains(err.Error(), "notion") {
		t.Fatalf("err = %v", err)
	}
}
