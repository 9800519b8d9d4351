package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher relays events to the fanout exchange. It keeps one channel open and reopens
// it after a failed publish.
type Publisher struct {
	conn     Connection
	exchange string
	origin   string

	mu sync.Mutex
	ch Channel

	now func() time.Time
}

func NewPublisher(conn Connection, exchange, origin string) *Publisher {
	return &Publisher{
		conn:     conn,
		exchange: exchange,
		origin:   origin,
		now:      time.Now,
	}
}

// Relay implements realtime.Relay.
func (p *Publisher) Relay(ctx context.Context, room, eventType string, payload json.RawMessage) error {
	body, err := json.Marshal(Message{
		Origin:    p.origin,
		Room:      room,
		Type:      eventType,
		Payload:   payload,
		RelayedAt: p.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	ch, err := p.channelLocked()
	if err != nil {
		return err
	}

	err = ch.PublishWithContext(ctx, p.exchange, "", false, false, amqp.Publishing{
		ContentType: "application/json",
		Timestamp:   p.now().UTC(),
		Body:        body,
	})
	if err != nil {
		_ = ch.Close()
		p.ch = nil
		return fmt.Errorf("failed to publish message: %w", err)
	}
	return nil
}

// Close releases the publishing channel. The connection is owned by the caller.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch == nil {
		return nil
	}
	err := p.ch.Close()
	p.ch = nil
	return err
}

func (p *Publisher) channelLocked() (Channel, error) {
	if p.ch != nil {
		return p.ch, nil
	}

	ch, err := p.conn.Channel()
	if err != nil {
		return nil, err
	}
	if err = DeclareExchange(ch, p.exchange); err != nil {
		_ = ch.Close()
		return nil, err
	}

	p.ch = ch
	return ch, nil
}
