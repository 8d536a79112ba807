// Package mail forwards records over SMTP: one message per submission with
// the subject synthesized from the record title and the rendered description
// as the plain-text body.
package mail

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"

	"github.com/goliatone/go-internform/internal/record"
	"github.com/goliatone/go-internform/pkg/sink"
)

// SinkName identifies this adapter in the registry.
const SinkName = "mail"

// Config carries the adapter's SMTP configuration.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string
}

// Enabled reports whether the adapter has everything it needs to deliver.
func (c Config) Enabled() bool {
	return c.Host != "" && c.From != "" && c.To != ""
}

// Sender dials the SMTP server and sends a composed message. Tests provide a
// fake; production uses the go-mail client.
type Sender func(ctx context.Context, cfg Config, msg *gomail.Msg) error

// Option configures the sink before construction.
type Option func(*Sink)

// WithSender swaps the SMTP transport, primarily for tests.
func WithSender(send Sender) Option {
	return func(s *Sink) {
		if send != nil {
			s.send = send
		}
	}
}

// Sink sends one email per delivered record.
type Sink struct {
	cfg  Config
	send Sender
}

var _ sink.Sink = (*Sink)(nil)

// New constructs the mail sink.
func New(cfg Config, options ...Option) *Sink {
	s := &Sink{
		cfg:  cfg,
		send: smtpSend,
	}
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

// Deliver composes and sends the message, returning the recipient as the
// receipt location.
func (s *Sink) Deliver(ctx context.Context, rec record.Record) (sink.Receipt, error) {
	if !s.cfg.Enabled() {
		return sink.Receipt{}, sink.NotConfigured(SinkName)
	}

	msg, err := Compose(s.cfg, rec)
	if err != nil {
		return sink.Receipt{}, fmt.Errorf("sink %s: compose message: %w", SinkName, err)
	}
	if err := s.send(ctx, s.cfg, msg); err != nil {
		return sink.Receipt{}, fmt.Errorf("sink %s: send message: %w", SinkName, err)
	}
	return sink.Receipt{Location: s.cfg.To}, nil
}

// Compose builds the outgoing message from a record. Pure; exported so the
// message shape is testable without an SMTP server.
func Compose(cfg Config, rec record.Record) (*gomail.Msg, error) {
	msg := gomail.NewMsg()
	if err := msg.From(cfg.From); err != nil {
		return nil, fmt.Errorf("from address %q: %w", cfg.From, err)
	}
	if err := msg.To(cfg.To); err != nil {
		return nil, fmt.Errorf("to address %q: %w", cfg.To, err)
	}
	msg.Subject(rec.Title)
	msg.SetBodyString(gomail.TypeTextPlain, rec.Description)
	return msg, nil
}

func smtpSend(ctx context.Context, cfg Config, msg *gomail.Msg) error {
	opts := []gomail.Option{
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	}
	if cfg.Port > 0 {
		opts = append(opts, gomail.WithPort(cfg.Port))
	}
	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	return client.DialAndSendWithContext(ctx, msg)
}
