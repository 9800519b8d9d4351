package queries

import (
	"errors"
	"time"

	"apparel/internal/core/domain/model/kernel"
	"apparel/internal/pkg/guard"
)

var ErrGetOrderTimelineQueryIsNotConstructed = errors.New(
	"GetOrderTimelineQuery must be created via NewGetOrderTimelineQuery constructor",
)

// TimelineSource tells timeline entries and production updates apart in a merged timeline.
type TimelineSource string

const (
	SourceEntry            TimelineSource = "entry"
	SourceProductionUpdate TimelineSource = "production_update"
)

// GetOrderTimelineQuery reads the merged history of an order.
//
// Example:
//
//	query, _ := NewGetOrderTimelineQuery(orderID)
//	handler := NewGetOrderTimelineQueryHandler(db)
//
//	items, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to read timeline: %w", err)
//	}
//	for _, item := range items {
//	    fmt.Printf("%s %s: %s\n", item.CreatedAt.Format(time.RFC3339), item.Source, item.Message)
//	}
type GetOrderTimelineQuery struct {
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

func NewGetOrderTimelineQuery(orderID kernel.UUID) (GetOrderTimelineQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderTimelineQuery{}, err
	}
	return GetOrderTimelineQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderTimelineQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderTimelineQueryIsNotConstructed)
}

func (q GetOrderTimelineQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderTimelineQueryResponse is one item of the merged timeline.
// Kind is empty for production updates.
type GetOrderTimelineQueryResponse struct {
	ID        kernel.UUID
	Source    TimelineSource
	Kind      string
	Message   string
	ActorID   string
	CreatedAt time.Time
}
