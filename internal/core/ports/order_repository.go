// Package ports defines the contracts between the scheduler core and its collaborators:
// the order store, the lead-time settings store, the timeline writer and the realtime
// notifier. Adapters under internal/adapters implement them.
package ports

import (
	"context"

	"apparel/internal/core/domain/model/kernel"
	"apparel/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order. The order must not already exist.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update writes the status, paidAt and updatedAt of an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by identifier.
	// Returns *errs.ObjectNotFoundError when no order has that identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllInProgress retrieves the orders whose current stage is assessed for
	// lateness, that is orders in paid or shipping status, oldest first.
	GetAllInProgress(ctx context.Context) ([]*order.Order, error)
}
