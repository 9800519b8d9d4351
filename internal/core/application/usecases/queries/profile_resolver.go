package queries

import (
	"context"
	"errors"
	"log/slog"

	"apparel/internal/core/domain/model/kernel"
	"apparel/internal/core/domain/model/leadtime"
	"apparel/internal/pkg/errs"
)

// LeadTimeReader is the read side of the lead-time settings store.
type LeadTimeReader interface {
	GetGlobal(ctx context.Context) (leadtime.Profile, error)
	GetProductOverride(ctx context.Context, productID kernel.UUID) (leadtime.Override, error)
}

// ProfileResolver resolves the lead-time profile that applies to a product.
//
// The read path never fails: a missing or unreadable global profile resolves to
// leadtime.DefaultProfile, and an unreadable or unusable product override resolves to
// the global profile. Each fallback is logged at warn level.
type ProfileResolver struct {
	reader LeadTimeReader
	logger *slog.Logger
}

func NewProfileResolver(reader LeadTimeReader, logger *slog.Logger) ProfileResolver {
	return ProfileResolver{
		reader: reader,
		logger: logger.With("component", "profile_resolver"),
	}
}

// Global returns the stored global profile or the hardcoded defaults.
func (r ProfileResolver) Global(ctx context.Context) leadtime.Profile {
	profile, err := r.reader.GetGlobal(ctx)
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		r.logger.WarnContext(ctx, "No global lead times stored, using defaults")
		return leadtime.DefaultProfile()
	case err != nil:
		r.logger.WarnContext(ctx, "Failed to read global lead times, using defaults", "error", err)
		return leadtime.DefaultProfile()
	}
	return profile
}

// Effective layers the override of productID over the global profile. A nil productID
// yields the global profile. Each part of the override that no longer fits the global
// profile falls back to global alone.
func (r ProfileResolver) Effective(ctx context.Context, productID *kernel.UUID) leadtime.Profile {
	global := r.Global(ctx)
	if productID == nil {
		return global
	}

	override, err := r.reader.GetProductOverride(ctx, *productID)
	if err != nil {
		r.logger.WarnContext(ctx, "Failed to read product lead times, using global",
			"product_id", productID.String(), "error", err)
		return global
	}
	if override.IsEmpty() {
		return global
	}

	profile, err := global.ApplyEach(override)
	if err != nil {
		r.logger.WarnContext(ctx, "Some product lead times do not fit global defaults, using global for those",
			"product_id", productID.String(), "error", err)
	}
	return profile
}
