package commands

import (
	"context"
	"log/slog"

	"apparel/internal/core/domain/model/timeline"
	"apparel/internal/core/ports"
)

// AddTimelineEntryCommandHandler stores a timeline entry for an existing order and
// publishes it as order.timeline.created.
type AddTimelineEntryCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.OrderEventNotifier
	logger     *slog.Logger
}

func NewAddTimelineEntryCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.OrderEventNotifier,
	logger *slog.Logger,
) AddTimelineEntryCommandHandler {
	return AddTimelineEntryCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "add_timeline_entry_handler"),
	}
}

func (h *AddTimelineEntryCommandHandler) Handle(ctx context.Context, cmd AddTimelineEntryCommand) (*timeline.Entry, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	entry, err := timeline.NewEntry(cmd.OrderID(), cmd.Kind(), cmd.Message(), cmd.ActorID(), cmd.At())
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

	if err = uow.TimelineRepository().AddEntry(ctx, entry); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	logNotifyFailure(ctx, h.logger, "order.timeline.created", entry.OrderID(), h.notifier.TimelineEntryCreated(ctx, entry))
	return entry, nil
}
