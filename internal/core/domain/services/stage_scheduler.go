package services

import (
	"errors"
	"fmt"
	"time"

	"apparel/internal/core/domain/model/leadtime"
)

// ErrMissingAnchor is returned when an order has no creation timestamp to project from.
// It means the stored order is corrupt and is never replaced by a default.
var ErrMissingAnchor = errors.New("order has no creation timestamp to anchor its schedule")

// Window is an inclusive pair of instants.
type Window struct {
	StartAt time.Time
	EndAt   time.Time
}

// Schedule is the projection of an order's stages.
//
// Stage windows use the maximum lead time of each stage, so they are worst-case targets.
// Delivery spans the sum of minimums to the sum of maximums.
type Schedule struct {
	Anchor       time.Time
	InProduction Window
	Shipping     Window
	Delivery     Window
}

// StageScheduler projects a Schedule from a lead-time profile and the order anchors.
//
// Example usage:
//
//	scheduler := services.NewStageScheduler()
//	schedule, err := scheduler.Schedule(profile, o.CreatedAt(), o.PaidAt())
//	if errors.Is(err, services.ErrMissingAnchor) {
//	    // corrupt order row
//	}
type StageScheduler struct{}

func NewStageScheduler() StageScheduler {
	return StageScheduler{}
}

// Schedule anchors at paidAt when present and at createdAt otherwise. Production runs
// from the anchor for production.maxDays business days and shipping starts the instant
// production ends.
func (s StageScheduler) Schedule(profile leadtime.Profile, createdAt time.Time, paidAt *time.Time) (Schedule, error) {
	if createdAt.IsZero() {
		return Schedule{}, ErrMissingAnchor
	}
	if err := profile.Validate(); err != nil {
		return Schedule{}, err
	}

	anchor := createdAt.UTC()
	if paidAt != nil && !paidAt.IsZero() {
		anchor = paidAt.UTC()
	}

	cal := profile.Calendar()
	production, shipping := profile.Production(), profile.Shipping()

	prodEnd, err := cal.AddBusinessDays(anchor, production.MaxDays())
	if err != nil {
		return Schedule{}, fmt.Errorf("project production end: %w", err)
	}
	shipEnd, err := cal.AddBusinessDays(prodEnd, shipping.MaxDays())
	if err != nil {
		return Schedule{}, fmt.Errorf("project shipping end: %w", err)
	}
	deliveryMin, err := cal.AddBusinessDays(anchor, production.MinDays()+shipping.MinDays())
	if err != nil {
		return Schedule{}, fmt.Errorf("project earliest delivery: %w", err)
	}
	deliveryMax, err := cal.AddBusinessDays(anchor, production.MaxDays()+shipping.MaxDays())
	if err != nil {
		return Schedule{}, fmt.Errorf("project latest delivery: %w", err)
	}

	return Schedule{
		Anchor:       anchor,
		InProduction: Window{StartAt: anchor, EndAt: prodEnd},
		Shipping:     Window{StartAt: prodEnd, EndAt: shipEnd},
		Delivery:     Window{StartAt: deliveryMin, EndAt: deliveryMax},
	}, nil
}
