package commands

import (
	"context"
	"log/slog"

	"apparel/internal/core/domain/model/order"
	"apparel/internal/core/ports"
)

// CreateOrderCommandHandler persists new orders and announces them to the order's room.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.OrderEventNotifier
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.OrderEventNotifier,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "create_order_handler"),
	}
}

// Handle creates the order in submitted status inside a transaction.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	o, err := order.NewOrder(cmd.OrderID(), cmd.ProductID(), cmd.CreatedAt())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	logNotifyFailure(ctx, h.logger, "order.updated", o.ID(), h.notifier.OrderUpdated(ctx, o))
	return nil
}
