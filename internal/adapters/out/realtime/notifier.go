package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"apparel/internal/core/domain/model/order"
	"apparel/internal/core/domain/model/timeline"
	"apparel/internal/core/domain/services"
	"apparel/internal/eventhub"
)

// LocalPublisher delivers an encoded event to the subscribers connected to this instance.
type LocalPublisher interface {
	PublishRaw(room, eventType string, payload json.RawMessage) int
}

// Relay forwards an encoded event to the other instances.
type Relay interface {
	Relay(ctx context.Context, room, eventType string, payload json.RawMessage) error
}

// DefaultRelayTimeout bounds a relay publish when NewNotifier is given a non-positive timeout.
const DefaultRelayTimeout = 2 * time.Second

// Notifier implements ports.OrderEventNotifier on top of the EventHub. When a relay is
// configured every event is also forwarded to it; a relay failure is returned after the
// local delivery has happened.
type Notifier struct {
	hub          LocalPublisher
	relay        Relay
	relayTimeout time.Duration
	logger       *slog.Logger
}

// NewNotifier creates a notifier. relay may be nil for a single-instance deployment.
// Each relay publish gets at most relayTimeout, so broker flow control cannot stall the
// caller for longer.
func NewNotifier(hub LocalPublisher, relay Relay, relayTimeout time.Duration, logger *slog.Logger) *Notifier {
	if relayTimeout <= 0 {
		relayTimeout = DefaultRelayTimeout
	}
	return &Notifier{
		hub:          hub,
		relay:        relay,
		relayTimeout: relayTimeout,
		logger:       logger.With("component", "realtime_notifier"),
	}
}

func (n *Notifier) OrderUpdated(ctx context.Context, o *order.Order) error {
	return n.publish(ctx, eventhub.OrderRoom(o.ID()), eventhub.EventOrderUpdated, NewOrderPayload(o))
}

func (n *Notifier) TimelineEntryCreated(ctx context.Context, entry *timeline.Entry) error {
	return n.publish(ctx, eventhub.OrderRoom(entry.OrderID()), eventhub.EventTimelineEntryCreated,
		NewTimelineEntryPayload(entry))
}

func (n *Notifier) ProductionUpdateCreated(ctx context.Context, update *timeline.ProductionUpdate) error {
	return n.publish(ctx, eventhub.OrderRoom(update.OrderID()), eventhub.EventProductionUpdateCreated,
		NewProductionUpdatePayload(update))
}

func (n *Notifier) OrderLate(ctx context.Context, o *order.Order, eta services.Eta) error {
	return n.publish(ctx, eventhub.OrderRoom(o.ID()), eventhub.EventOrderLate, NewOrderLatePayload(o, eta))
}

func (n *Notifier) publish(ctx context.Context, room, eventType string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", eventType, err)
	}

	delivered := n.hub.PublishRaw(room, eventType, raw)
	n.logger.DebugContext(ctx, "Event published",
		"room", room,
		"type", eventType,
		"delivered", delivered,
	)

	if n.relay == nil {
		return nil
	}
	relayCtx, cancel := context.WithTimeout(ctx, n.relayTimeout)
	defer cancel()
	if err = n.relay.Relay(relayCtx, room, eventType, raw); err != nil {
		return fmt.Errorf("failed to relay %s: %w", eventType, err)
	}
	return nil
}
