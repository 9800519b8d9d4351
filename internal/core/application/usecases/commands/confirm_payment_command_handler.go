package commands

import (
	"context"
	"log/slog"

	"apparel/internal/core/domain/model/order"
	"apparel/internal/core/domain/model/timeline"
	"apparel/internal/core/ports"
)

const paymentConfirmedMessage = "Payment confirmed"

// ConfirmPaymentCommandHandler sets paidAt once, moves a submitted order to paid and
// appends a payment_confirmed timeline entry in the same transaction.
type ConfirmPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.OrderEventNotifier
	logger     *slog.Logger
}

func NewConfirmPaymentCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.OrderEventNotifier,
	logger *slog.Logger,
) ConfirmPaymentCommandHandler {
	return ConfirmPaymentCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "confirm_payment_handler"),
	}
}

// Handle returns the updated order. A second confirmation fails with a
// *errs.ValueIsInvalidError on paidAt and leaves the order unchanged.
func (h *ConfirmPaymentCommandHandler) Handle(ctx context.Context, cmd ConfirmPaymentCommand) (*order.Order, error) {
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

	if err = o.ConfirmPayment(cmd.PaidAt()); err != nil {
		return nil, err
	}

	entry, err := timeline.NewEntry(o.ID(), timeline.KindPaymentConfirmed, paymentConfirmedMessage, cmd.ActorID(), cmd.PaidAt())
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.TimelineRepository().AddEntry(ctx, entry); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	logNotifyFailure(ctx, h.logger, "order.updated", o.ID(), h.notifier.OrderUpdated(ctx, o))
	logNotifyFailure(ctx, h.logger, "order.timeline.created", o.ID(), h.notifier.TimelineEntryCreated(ctx, entry))
	return o, nil
}
