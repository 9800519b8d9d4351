package leadtime

import (
	"errors"
	"fmt"

	"apparel/internal/pkg/errs"
	"apparel/internal/pkg/guard"
)

// MaxDays bounds every lead-time value. It keeps day-by-day projections short.
const MaxDays = 365

var ErrRangeIsNotConstructed = errors.New("Range must be created via NewRange constructor")

// Range is a min/max business-day budget for a stage.
type Range struct { //nolint:recvcheck //using for validation
	minDays int
	maxDays int
	guard   guard.ConstructorGuard
}

// NewRange validates bounds and ordering. field prefixes the reported parameter names,
// so NewRange("production", 10, 5) fails on "production.minDays".
func NewRange(field string, minDays, maxDays int) (Range, error) {
	if err := errors.Join(
		validateDays(field+".minDays", minDays),
		validateDays(field+".maxDays", maxDays),
	); err != nil {
		return Range{}, err
	}
	if minDays > maxDays {
		return Range{}, errs.NewValueIsInvalidErrorWithCause(
			field+".minDays",
			fmt.Errorf("%d is greater than maxDays %d", minDays, maxDays),
		)
	}
	return Range{minDays: minDays, maxDays: maxDays, guard: guard.NewConstructorGuard()}, nil
}

func mustRange(minDays, maxDays int) Range {
	r, err := NewRange("range", minDays, maxDays)
	if err != nil {
		panic(err)
	}
	return r
}

func (r Range) Validate() error {
	return r.guard.Validate(ErrRangeIsNotConstructed)
}

func (r Range) MinDays() int {
	return r.minDays
}

func (r Range) MaxDays() int {
	return r.maxDays
}

func (r Range) IsEqual(other Range) bool {
	return r.minDays == other.minDays && r.maxDays == other.maxDays
}

func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.minDays, r.maxDays)
}

func validateDays(paramName string, days int) error {
	if days < 0 || days > MaxDays {
		return errs.NewValueIsOutOfRangeError(paramName, days, 0, MaxDays)
	}
	return nil
}
