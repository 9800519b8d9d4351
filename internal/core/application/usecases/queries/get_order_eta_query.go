package queries

import (
	"context"
	"errors"
	"time"

	"apparel/internal/core/domain/model/kernel"
	"apparel/internal/core/domain/model/order"
	"apparel/internal/core/domain/services"
	"apparel/internal/pkg/guard"
)

var ErrGetOrderEtaQueryIsNotConstructed = errors.New(
	"GetOrderEtaQuery must be created via NewGetOrderEtaQuery constructor",
)

// OrderReader is the read side of the order store.
type OrderReader interface {
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
	GetAllInProgress(ctx context.Context) ([]*order.Order, error)
}

// GetOrderEtaQuery asks for the current projection of an order.
type GetOrderEtaQuery struct {
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

func NewGetOrderEtaQuery(orderID kernel.UUID) (GetOrderEtaQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderEtaQuery{}, err
	}
	return GetOrderEtaQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderEtaQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderEtaQueryIsNotConstructed)
}

func (q GetOrderEtaQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderEtaQueryResponse carries the projection together with the status it was derived from.
type GetOrderEtaQueryResponse struct {
	OrderID kernel.UUID
	Status  order.Status
	Eta     services.Eta
}

// GetOrderEtaQueryHandler loads the order, resolves its effective lead times and
// projects it at the current instant of the injected clock.
//
// Example:
//
//	handler := NewGetOrderEtaQueryHandler(orderRepo, resolver, services.NewEtaCalculator(), time.Now)
//	query, _ := NewGetOrderEtaQuery(orderID)
//
//	resp, err := handler.Handle(ctx, query)
//	if errors.Is(err, services.ErrMissingAnchor) {
//	    // corrupt order row, surfaced as a server error
//	}
type GetOrderEtaQueryHandler struct {
	orders     OrderReader
	resolver   ProfileResolver
	calculator services.EtaCalculator
	now        func() time.Time
}

func NewGetOrderEtaQueryHandler(
	orders OrderReader,
	resolver ProfileResolver,
	calculator services.EtaCalculator,
	now func() time.Time,
) GetOrderEtaQueryHandler {
	return GetOrderEtaQueryHandler{
		orders:     orders,
		resolver:   resolver,
		calculator: calculator,
		now:        now,
	}
}

func (h GetOrderEtaQueryHandler) Handle(ctx context.Context, query GetOrderEtaQuery) (GetOrderEtaQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderEtaQueryResponse{}, err
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return GetOrderEtaQueryResponse{}, err
	}

	profile := h.resolver.Effective(ctx, o.ProductID())
	eta, err := h.calculator.Compute(o, profile, h.now())
	if err != nil {
		return GetOrderEtaQueryResponse{}, err
	}

	return GetOrderEtaQueryResponse{
		OrderID: o.ID(),
		Status:  o.Status(),
		Eta:     eta,
	}, nil
}
