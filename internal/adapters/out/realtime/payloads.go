// Package realtime turns order mutations into EventHub events.
package realtime

import (
	"time"

	"apparel/internal/core/domain/model/order"
	"apparel/internal/core/domain/model/timeline"
	"apparel/internal/core/domain/services"
)

// OrderPayload is the body of order.updated.
type OrderPayload struct {
	ID        string     `json:"id"`
	ProductID *string    `json:"productId,omitempty"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	PaidAt    *time.Time `json:"paidAt,omitempty"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// TimelineEntryPayload is the body of order.timeline.created.
type TimelineEntryPayload struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"orderId"`
	Kind      string    `json:"kind"`
	Message   string    `json:"message"`
	ActorID   string    `json:"actorId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ProductionUpdatePayload is the body of order.production.created.
type ProductionUpdatePayload struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"orderId"`
	Message   string    `json:"message"`
	ActorID   string    `json:"actorId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// WindowPayload is a start/end pair of instants.
type WindowPayload struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// OrderLatePayload is the body of order.late.
type OrderLatePayload struct {
	OrderID        string        `json:"orderId"`
	Status         string        `json:"status"`
	LateStage      string        `json:"lateStage"`
	DaysLate       int           `json:"daysLate"`
	ExpectedEndAt  time.Time     `json:"expectedEndAt"`
	DeliveryWindow WindowPayload `json:"deliveryWindow"`
}

func NewOrderPayload(o *order.Order) OrderPayload {
	p := OrderPayload{
		ID:        o.ID().String(),
		Status:    o.Status().String(),
		CreatedAt: o.CreatedAt().UTC(),
		UpdatedAt: o.UpdatedAt().UTC(),
	}
	if id := o.ProductID(); id != nil {
		s := id.String()
		p.ProductID = &s
	}
	if at := o.PaidAt(); at != nil {
		utc := at.UTC()
		p.PaidAt = &utc
	}
	return p
}

func NewTimelineEntryPayload(e *timeline.Entry) TimelineEntryPayload {
	return TimelineEntryPayload{
		ID:        e.ID().String(),
		OrderID:   e.OrderID().String(),
		Kind:      string(e.Kind()),
		Message:   e.Message(),
		ActorID:   e.ActorID(),
		CreatedAt: e.CreatedAt().UTC(),
	}
}

func NewProductionUpdatePayload(u *timeline.ProductionUpdate) ProductionUpdatePayload {
	return ProductionUpdatePayload{
		ID:        u.ID().String(),
		OrderID:   u.OrderID().String(),
		Message:   u.Message(),
		ActorID:   u.ActorID(),
		CreatedAt: u.CreatedAt().UTC(),
	}
}

func NewOrderLatePayload(o *order.Order, eta services.Eta) OrderLatePayload {
	return OrderLatePayload{
		OrderID:       o.ID().String(),
		Status:        o.Status().String(),
		LateStage:     string(eta.LateStage),
		DaysLate:      eta.DaysLate,
		ExpectedEndAt: eta.Stage(eta.LateStage).ExpectedEndAt.UTC(),
		DeliveryWindow: WindowPayload{
			Start: eta.DeliveryWindow.StartAt.UTC(),
			End:   eta.DeliveryWindow.EndAt.UTC(),
		},
	}
}
