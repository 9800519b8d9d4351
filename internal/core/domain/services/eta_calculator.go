package services

import (
	"time"

	"apparel/internal/core/domain/model/leadtime"
	"apparel/internal/core/domain/model/order"
)

// StageEta is the projected progress of one stage.
type StageEta struct {
	Status                order.StageStatus
	ExpectedStartAt       time.Time
	ExpectedEndAt         time.Time
	RemainingBusinessDays int
}

// Eta is the full projection of an order at a given instant.
type Eta struct {
	InProduction   StageEta
	Shipping       StageEta
	DeliveryWindow Window
	IsLate         bool
	DaysLate       int
	// LateStage is set only when IsLate is true.
	LateStage order.Stage
}

// Stage returns the projection of stage.
func (e Eta) Stage(stage order.Stage) StageEta {
	if stage == order.StageShipping {
		return e.Shipping
	}
	return e.InProduction
}

// EtaCalculator composes the scheduler with the order state machine.
type EtaCalculator struct {
	scheduler StageScheduler
}

func NewEtaCalculator() EtaCalculator {
	return EtaCalculator{scheduler: NewStageScheduler()}
}

// Compute projects o on profile as seen at now.
//
// Lateness is assessed on the current stage only: a paid order against the production
// end, a shipping order against the shipping end. Earlier drift is not carried over.
func (c EtaCalculator) Compute(o *order.Order, profile leadtime.Profile, now time.Time) (Eta, error) {
	if err := o.Validate(); err != nil {
		return Eta{}, err
	}

	schedule, err := c.scheduler.Schedule(profile, o.CreatedAt(), o.PaidAt())
	if err != nil {
		return Eta{}, err
	}

	cal := profile.Calendar()
	now = now.UTC()

	stage := func(s order.Stage, w Window) (StageEta, error) {
		eta := StageEta{
			Status:          o.Status().StageStatus(s),
			ExpectedStartAt: w.StartAt,
			ExpectedEndAt:   w.EndAt,
		}
		if eta.Status == order.StageDone {
			return eta, nil
		}
		remaining, err := cal.CountWorkingDays(now, w.EndAt)
		if err != nil {
			return StageEta{}, err
		}
		eta.RemainingBusinessDays = remaining
		return eta, nil
	}

	production, err := stage(order.StageInProduction, schedule.InProduction)
	if err != nil {
		return Eta{}, err
	}
	shipping, err := stage(order.StageShipping, schedule.Shipping)
	if err != nil {
		return Eta{}, err
	}

	eta := Eta{
		InProduction:   production,
		Shipping:       shipping,
		DeliveryWindow: schedule.Delivery,
	}

	current, ok := o.Status().CurrentStage()
	if !ok {
		return eta, nil
	}
	end := eta.Stage(current).ExpectedEndAt
	if !now.After(end) {
		return eta, nil
	}

	daysLate, err := cal.CountWorkingDays(end, now)
	if err != nil {
		return Eta{}, err
	}
	eta.IsLate = true
	eta.DaysLate = daysLate
	eta.LateStage = current
	return eta, nil
}
