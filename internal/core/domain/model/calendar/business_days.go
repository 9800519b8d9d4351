package calendar

import (
	"errors"
	"math"
	"time"
)

// ErrNoWorkingDays is returned when business-day arithmetic is asked to run on an empty set.
var ErrNoWorkingDays = errors.New("working day set is empty")

// AddBusinessDays steps forward from start one calendar day at a time and returns the
// instant reached on the days-th step that lands on a working weekday. The time of day
// of start is preserved. days <= 0 returns start unchanged.
func AddBusinessDays(start time.Time, days int, working Weekdays) (time.Time, error) {
	if working.IsEmpty() {
		return time.Time{}, ErrNoWorkingDays
	}

	cursor := start.UTC()
	for counted := 0; counted < days; {
		cursor = cursor.AddDate(0, 0, 1)
		if working.Contains(cursor.Weekday()) {
			counted++
		}
	}
	return cursor, nil
}

// CountWorkingDays counts the working weekdays reached by whole calendar-day steps from
// start that do not pass end. It is the inverse of AddBusinessDays: for any d >= 0,
// CountWorkingDays(start, AddBusinessDays(start, d)) == d. It returns 0 when end <= start.
func CountWorkingDays(start, end time.Time, working Weekdays) (int, error) {
	if working.IsEmpty() {
		return 0, ErrNoWorkingDays
	}
	if !end.After(start) {
		return 0, nil
	}

	end = end.UTC()
	count := 0
	for cursor := start.UTC().AddDate(0, 0, 1); !cursor.After(end); cursor = cursor.AddDate(0, 0, 1) {
		if working.Contains(cursor.Weekday()) {
			count++
		}
	}
	return count, nil
}

// TruncateDays converts a fractional day count to whole days, truncating toward zero
// and clamping negatives to zero.
func TruncateDays(days float64) int {
	if math.IsNaN(days) || days <= 0 {
		return 0
	}
	if days > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(math.Trunc(days))
}
