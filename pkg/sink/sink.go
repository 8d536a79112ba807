// Package sink defines the persistence contract finished records are handed
// to. Sinks are independently callable: delivering to zero, one, or many
// sinks per submission is a supported pattern, and a failure in one sink
// never touches the record or other sinks.
package sink

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-internform/internal/record"
)

// ErrNotConfigured signals a sink was invoked without credentials or a
// target. Callers should treat it as a disabled capability, not a crash.
var ErrNotConfigured = errors.New("sink is not configured")

// Receipt points at where a delivered record landed: a created page URL, a
// spreadsheet row, a mail recipient.
type Receipt struct {
	Location string
}

// Sink durably records or forwards a finished Record. Implementations own
// their external-service configuration and must fail gracefully (error
// return, never panic) when the service is unreachable or rejects the write.
type Sink interface {
	Name() string
	Deliver(ctx context.Context, rec record.Record) (Receipt, error)
}

// NotConfigured builds the canonical error for a sink invoked without
// configuration, naming the sink.
func NotConfigured(name string) error {
	return fmt.Errorf("sink %s: %w", name, ErrNotConfigured)
}
