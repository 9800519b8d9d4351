package commands

import (
	"context"
	"log/slog"

	"apparel/internal/core/domain/model/order"
	"apparel/internal/core/domain/model/timeline"
	"apparel/internal/core/ports"
)

// ChangeOrderStatusCommandHandler applies administrative status writes.
//
// A write that changes the status appends a status_changed timeline entry. Moving
// backwards is allowed and logged as an override.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.OrderEventNotifier
	logger     *slog.Logger
}

func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.OrderEventNotifier,
	logger *slog.Logger,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "change_order_status_handler"),
	}
}

// Handle returns the updated order.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	previous, err := o.ChangeStatus(cmd.Status(), cmd.PaidAt(), cmd.At())
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	var entry *timeline.Entry
	if previous != o.Status() {
		entry, err = timeline.NewEntry(
			o.ID(),
			timeline.KindStatusChanged,
			timeline.StatusChangedMessage(previous, o.Status()),
			cmd.ActorID(),
			cmd.At(),
		)
		if err != nil {
			return nil, err
		}
		if err = uow.TimelineRepository().AddEntry(ctx, entry); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if order.IsRegression(previous, o.Status()) {
		h.logger.WarnContext(ctx, "Order status moved backwards by administrative override",
			"order_id", o.ID().String(),
			"from", previous.String(),
			"to", o.Status().String(),
			"actor_id", cmd.ActorID(),
		)
	}

	logNotifyFailure(ctx, h.logger, "order.updated", o.ID(), h.notifier.OrderUpdated(ctx, o))
	if entry != nil {
		logNotifyFailure(ctx, h.logger, "order.timeline.created", o.ID(), h.notifier.TimelineEntryCreated(ctx, entry))
	}
	return o, nil
}
