package ports

import (
	"context"

	"apparel/internal/core/domain/model/order"
	"apparel/internal/core/domain/model/timeline"
	"apparel/internal/core/domain/services"
)

// OrderEventNotifier publishes order mutations to realtime subscribers of the order's room.
//
// Implementations are best effort. Callers invoke them only after the mutation has been
// committed and log a returned error instead of failing the request.
type OrderEventNotifier interface {
	OrderUpdated(ctx context.Context, o *order.Order) error
	TimelineEntryCreated(ctx context.Context, entry *timeline.Entry) error
	ProductionUpdateCreated(ctx context.Context, update *timeline.ProductionUpdate) error
	OrderLate(ctx context.Context, o *order.Order, eta services.Eta) error
}
