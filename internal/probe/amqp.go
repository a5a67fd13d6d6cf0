package probe

import (
	"context"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// AMQP probes a RabbitMQ broker given as an amqp:// or amqps:// URL.
type AMQP struct {
	URL string
}

// NewAMQP returns a probe for the broker at url.
func NewAMQP(url string) *AMQP { return &AMQP{URL: url} }

func (p *AMQP) Name() string { return "RabbitMQ" }

// Check dials the broker and opens a channel, then closes both. The dial
// itself is not cancellable; ctx is only consulted before dialing.
func (p *AMQP) Check(ctx context.Context) error {
	if p.URL == "" {
		return ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	conn, err := amqp.Dial(p.URL)
	if err != nil {
		return fmt.Errorf("rabbitmq probe: dial: %w", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("rabbitmq probe: channel open: %w", err)
	}
	_ = ch.Close()
	return nil
}
