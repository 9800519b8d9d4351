package ports

import (
	"context"

	"apparel/internal/core/domain/model/kernel"
	"apparel/internal/core/domain/model/timeline"
)

// TimelineRepository appends immutable records to an order's history.
type TimelineRepository interface {
	AddEntry(ctx context.Context, entry *timeline.Entry) error
	AddProductionUpdate(ctx context.Context, update *timeline.ProductionUpdate) error

	// ListEntries returns the timeline entries of an order, oldest first.
	ListEntries(ctx context.Context, orderID kernel.UUID) ([]*timeline.Entry, error)
}
