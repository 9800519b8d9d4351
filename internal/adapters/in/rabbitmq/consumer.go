// Package rabbitmq feeds events relayed by other instances into the local EventHub.
package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	out "apparel/internal/adapters/out/rabbitmq"

	amqp "github.com/rabbitmq/amqp091-go"
)

// DefaultReconnectDelay is how long the consumer waits before reopening a lost channel.
const DefaultReconnectDelay = 5 * time.Second

var errChannelClosed = errors.New("channel closed")

// LocalPublisher delivers an encoded event to this instance's subscribers.
type LocalPublisher interface {
	PublishRaw(room, eventType string, payload json.RawMessage) int
}

// Consumer binds an exclusive, auto-deleted queue to the fanout exchange and republishes
// every foreign message to the hub.
type Consumer struct {
	conn           out.Connection
	exchange       string
	origin         string
	hub            LocalPublisher
	logger         *slog.Logger
	reconnectDelay time.Duration
}

func NewConsumer(
	conn out.Connection,
	exchange, origin string,
	hub LocalPublisher,
	logger *slog.Logger,
) *Consumer {
	return &Consumer{
		conn:           conn,
		exchange:       exchange,
		origin:         origin,
		hub:            hub,
		logger:         logger.With("component", "rabbitmq_consumer"),
		reconnectDelay: DefaultReconnectDelay,
	}
}

// Run consumes until ctx is cancelled, reopening the channel after failures.
func (c *Consumer) Run(ctx context.Context) error {
	for {
		err := c.consume(ctx)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if errors.Is(err, out.ErrConnectionClosed) {
			return err
		}

		c.logger.WarnContext(ctx, "Relay consumer disconnected, reconnecting",
			"error", err,
			"delay", c.reconnectDelay,
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.reconnectDelay):
		}
	}
}

func (c *Consumer) consume(ctx context.Context) error {
	ch, err := c.conn.Channel()
	if err != nil {
		return err
	}
	defer func() { _ = ch.Close() }()

	if err = out.DeclareExchange(ch, c.exchange); err != nil {
		return err
	}

	q, err := ch.QueueDeclare("", false, true, true, false, nil)
	if err != nil {
		return fmt.Errorf("failed to declare queue: %w", err)
	}
	if err = ch.QueueBind(q.Name, "", c.exchange, false, nil); err != nil {
		return fmt.Errorf("failed to bind queue: %w", err)
	}

	deliveries, err := ch.Consume(q.Name, "", true, true, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}

	closed := ch.NotifyClose(make(chan *amqp.Error, 1))
	c.logger.InfoContext(ctx, "Relay consumer started", "queue", q.Name, "exchange", c.exchange)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case amqpErr, ok := <-closed:
			if ok && amqpErr != nil {
				return fmt.Errorf("%w: %v", errChannelClosed, amqpErr)
			}
			return errChannelClosed
		case delivery, ok := <-deliveries:
			if !ok {
				return fmt.Errorf("%w: deliveries stopped", errChannelClosed)
			}
			c.handle(ctx, delivery.Body)
		}
	}
}

// handle is best effort: malformed messages are logged and skipped.
func (c *Consumer) handle(ctx context.Context, body []byte) {
	var msg out.Message
	if err := json.Unmarshal(body, &msg); err != nil {
		c.logger.WarnContext(ctx, "Skipping malformed relay message", "error", err)
		return
	}
	if msg.Origin == c.origin {
		return
	}
	if msg.Room == "" || msg.Type == "" {
		c.logger.WarnContext(ctx, "Skipping relay message without room or type", "origin", msg.Origin)
		return
	}

	delivered := c.hub.PublishRaw(msg.Room, msg.Type, msg.Payload)
	c.logger.DebugContext(ctx, "Relayed event published",
		"room", msg.Room,
		"type", msg.Type,
		"origin", msg.Origin,
		"delivered", delivered,
	)
}
