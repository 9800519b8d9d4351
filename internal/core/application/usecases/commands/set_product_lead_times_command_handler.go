package commands

import (
	"context"
	"log/slog"

	"apparel/internal/core/domain/model/leadtime"
)

// SetProductLeadTimesCommandHandler stores per-product overrides. The merged override
// must resolve to a valid profile against the current global defaults.
type SetProductLeadTimesCommandHandler struct {
	uowFactory LeadTimeUoWFactory
	logger     *slog.Logger
}

func NewSetProductLeadTimesCommandHandler(
	uowFactory LeadTimeUoWFactory,
	logger *slog.Logger,
) SetProductLeadTimesCommandHandler {
	return SetProductLeadTimesCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "set_product_lead_times_handler"),
	}
}

// Handle returns the stored override.
func (h *SetProductLeadTimesCommandHandler) Handle(
	ctx context.Context,
	cmd SetProductLeadTimesCommand,
) (leadtime.Override, error) {
	if err := cmd.Validate(); err != nil {
		return leadtime.Override{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return leadtime.Override{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.LeadTimeRepository()
	global, err := globalOrDefault(ctx, repo)
	if err != nil {
		return leadtime.Override{}, err
	}

	stored, err := repo.GetProductOverride(ctx, cmd.ProductID())
	if err != nil {
		return leadtime.Override{}, err
	}

	merged := stored.Merge(cmd.Override())
	if _, err = global.Apply(merged); err != nil {
		return leadtime.Override{}, err
	}

	if err = repo.SetProductOverride(ctx, cmd.ProductID(), merged, cmd.ActorID()); err != nil {
		return leadtime.Override{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return leadtime.Override{}, err
	}

	h.logger.InfoContext(ctx, "Product lead times updated",
		"product_id", cmd.ProductID().String(),
		"actor_id", cmd.ActorID(),
	)
	return merged, nil
}
