package queries

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"apparel/internal/core/domain/model/leadtime"
	"apparel/internal/core/domain/model/order"
	"apparel/internal/core/domain/services"
	"apparel/internal/pkg/guard"
)

var ErrGetLateOrdersQueryIsNotConstructed = errors.New(
	"GetLateOrdersQuery must be created via NewGetLateOrdersQuery constructor",
)

// GetLateOrdersQuery lists the in-progress orders whose current stage is overdue.
type GetLateOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetLateOrdersQuery() GetLateOrdersQuery {
	return GetLateOrdersQuery{guard: guard.NewConstructorGuard()}
}

func (q GetLateOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetLateOrdersQueryIsNotConstructed)
}

// LateOrder pairs an overdue order with the projection that flagged it.
type LateOrder struct {
	Order *order.Order
	Eta   services.Eta
}

// GetLateOrdersQueryHandler projects every in-progress order and keeps the late ones.
// An order that cannot be projected is logged and skipped so one corrupt row does not
// hide the others.
type GetLateOrdersQueryHandler struct {
	orders     OrderReader
	resolver   ProfileResolver
	calculator services.EtaCalculator
	now        func() time.Time
	logger     *slog.Logger
}

func NewGetLateOrdersQueryHandler(
	orders OrderReader,
	resolver ProfileResolver,
	calculator services.EtaCalculator,
	now func() time.Time,
	logger *slog.Logger,
) GetLateOrdersQueryHandler {
	return GetLateOrdersQueryHandler{
		orders:     orders,
		resolver:   resolver,
		calculator: calculator,
		now:        now,
		logger:     logger.With("component", "late_orders_query"),
	}
}

func (h GetLateOrdersQueryHandler) Handle(ctx context.Context, query GetLateOrdersQuery) ([]LateOrder, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orders.GetAllInProgress(ctx)
	if err != nil {
		return nil, err
	}

	now := h.now()
	profiles := make(map[string]leadtime.Profile)
	late := make([]LateOrder, 0)

	for _, o := range orders {
		key := ""
		if o.ProductID() != nil {
			key = o.ProductID().String()
		}
		profile, ok := profiles[key]
		if !ok {
			profile = h.resolver.Effective(ctx, o.ProductID())
			profiles[key] = profile
		}

		eta, etaErr := h.calculator.Compute(o, profile, now)
		if etaErr != nil {
			h.logger.ErrorContext(ctx, "Failed to project order", "order_id", o.ID().String(), "error", etaErr)
			continue
		}
		if eta.IsLate {
			late = append(late, LateOrder{Order: o, Eta: eta})
		}
	}

	return late, nil
}
