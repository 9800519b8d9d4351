package order

// Stage is one of the two scheduled phases of the pipeline.
type Stage string

const (
	StageInProduction Stage = "in_production"
	StageShipping     Stage = "shipping"
)

// Stages lists the scheduled stages in pipeline order.
func Stages() []Stage {
	return []Stage{StageInProduction, StageShipping}
}

// StageStatus is the derived progress of a Stage.
type StageStatus string

const (
	StagePending    StageStatus = "pending"
	StageInProgress StageStatus = "in_progress"
	StageDone       StageStatus = "done"
)

// StageStatus derives the progress of stage from the order status.
//
// The production stage counts as in progress while the order is paid and done from
// in_production on, so the paid status is the production wait. The shipping stage is in
// progress only while shipping and done once delivered.
func (s Status) StageStatus(stage Stage) StageStatus {
	switch stage {
	case StageInProduction:
		switch {
		case s >= InProduction && s <= Delivered:
			return StageDone
		case s == Paid:
			return StageInProgress
		}
	case StageShipping:
		switch s {
		case Delivered:
			return StageDone
		case Shipping:
			return StageInProgress
		}
	}
	return StagePending
}

// CurrentStage returns the stage whose projected end is checked for lateness.
// Only paid (against production) and shipping (against shipping) have one; submitted,
// in_production and delivered orders are never assessed.
func (s Status) CurrentStage() (Stage, bool) {
	switch s {
	case Paid:
		return StageInProduction, true
	case Shipping:
		return StageShipping, true
	}
	return "", false
}
