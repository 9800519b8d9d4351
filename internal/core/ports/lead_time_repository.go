package ports

import (
	"context"

	"apparel/internal/core/domain/model/kernel"
	"apparel/internal/core/domain/model/leadtime"
)

// LeadTimeRepository stores the global lead-time defaults and the per-product overrides.
//
// The global row is read far more often than written. Writers perform a single upsert
// and readers always see the latest committed value.
type LeadTimeRepository interface {
	// GetGlobal returns the stored global profile.
	// Returns *errs.ObjectNotFoundError while nothing has been stored yet; callers fall
	// back to leadtime.DefaultProfile.
	GetGlobal(ctx context.Context) (leadtime.Profile, error)

	// SetGlobal creates or replaces the global profile, recording who changed it.
	SetGlobal(ctx context.Context, profile leadtime.Profile, actorID string) error

	// GetProductOverride returns the override of a product. A product without an
	// override yields an empty Override and no error.
	GetProductOverride(ctx context.Context, productID kernel.UUID) (leadtime.Override, error)

	// SetProductOverride creates or replaces the override of a product.
	SetProductOverride(ctx context.Context, productID kernel.UUID, override leadtime.Override, actorID string) error
}
