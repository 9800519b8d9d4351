package commands

import (
	"context"
	"log/slog"

	"apparel/internal/core/domain/model/timeline"
	"apparel/internal/core/ports"
)

// AddProductionUpdateCommandHandler stores a production update for an existing order
// and publishes it as order.production.created.
type AddProductionUpdateCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.OrderEventNotifier
	logger     *slog.Logger
}

func NewAddProductionUpdateCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.OrderEventNotifier,
	logger *slog.Logger,
) AddProductionUpdateCommandHandler {
	return AddProductionUpdateCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "add_production_update_handler"),
	}
}

func (h *AddProductionUpdateCommandHandler) Handle(
	ctx context.Context,
	cmd AddProductionUpdateCommand,
) (*timeline.ProductionUpdate, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	update, err := timeline.NewProductionUpdate(cmd.OrderID(), cmd.Message(), cmd.ActorID(), cmd.At())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err = uow.OrderRepository().Get(ctx, cmd.OrderID()); err != nil {
		return nil, err
	}

	if err = uow.TimelineRepository().AddProductionUpdate(ctx, update); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	logNotifyFailure(ctx, h.logger, "order.production.created", update.OrderID(), h.notifier.ProductionUpdateCreated(ctx, update))
	return update, nil
}
