package commands

import (
	"context"
	"errors"
	"log/slog"

	"apparel/internal/core/domain/model/leadtime"
	"apparel/internal/core/ports"
	"apparel/internal/pkg/errs"
)

// UpdateLeadTimeDefaultsCommandHandler merges a partial update over the stored global
// profile, or over the hardcoded defaults on first write, and upserts the result.
// A merge that fails validation is rejected before anything is written.
type UpdateLeadTimeDefaultsCommandHandler struct {
	uowFactory LeadTimeUoWFactory
	logger     *slog.Logger
}

func NewUpdateLeadTimeDefaultsCommandHandler(
	uowFactory LeadTimeUoWFactory,
	logger *slog.Logger,
) UpdateLeadTimeDefaultsCommandHandler {
	return UpdateLeadTimeDefaultsCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "update_lead_time_defaults_handler"),
	}
}

// Handle returns the stored profile.
func (h *UpdateLeadTimeDefaultsCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateLeadTimeDefaultsCommand,
) (leadtime.Profile, error) {
	if err := cmd.Validate(); err != nil {
		return leadtime.Profile{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return leadtime.Profile{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.LeadTimeRepository()
	current, err := globalOrDefault(ctx, repo)
	if err != nil {
		return leadtime.Profile{}, err
	}

	updated, err := current.Apply(cmd.Override())
	if err != nil {
		return leadtime.Profile{}, err
	}

	if err = repo.SetGlobal(ctx, updated, cmd.ActorID()); err != nil {
		return leadtime.Profile{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return leadtime.Profile{}, err
	}

	h.logger.InfoContext(ctx, "Global lead times updated",
		"actor_id", cmd.ActorID(),
		"production", updated.Production().String(),
		"shipping", updated.Shipping().String(),
		"calendar", updated.Calendar().String(),
	)
	return updated, nil
}

// globalOrDefault reads the global profile, using the hardcoded defaults when none has
// been stored. Any other read failure is returned.
func globalOrDefault(ctx context.Context, repo ports.LeadTimeRepository) (leadtime.Profile, error) {
	profile, err := repo.GetGlobal(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return leadtime.DefaultProfile(), nil
	}
	if err != nil {
		return leadtime.Profile{}, err
	}
	return profile, nil
}
