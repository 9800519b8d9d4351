package calendar

import (
	"fmt"
	"strings"
	"time"

	"apparel/internal/pkg/errs"
)

// Weekdays is a set of working weekdays stored as a bitmask indexed by time.Weekday.
type Weekdays uint8

const allWeekdays Weekdays = 1<<7 - 1

// MondayToFriday is the default working week.
var MondayToFriday = NewWeekdays(time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday)

var weekdayLabels = map[time.Weekday]string{
	time.Sunday:    "sun",
	time.Monday:    "mon",
	time.Tuesday:   "tue",
	time.Wednesday: "wed",
	time.Thursday:  "thu",
	time.Friday:    "fri",
	time.Saturday:  "sat",
}

// NewWeekdays builds a set from the given weekdays. Out of range values are ignored.
func NewWeekdays(days ...time.Weekday) Weekdays {
	var set Weekdays
	for _, d := range days {
		if d < time.Sunday || d > time.Saturday {
			continue
		}
		set |= 1 << uint(d)
	}
	return set
}

// ParseWeekdays builds a set from labels such as "mon" or "Friday".
// Duplicates collapse; unknown labels fail with a ValueIsInvalidError for paramName.
func ParseWeekdays(paramName string, labels []string) (Weekdays, error) {
	var set Weekdays
	for _, label := range labels {
		d, err := ParseWeekday(label)
		if err != nil {
			return 0, errs.NewValueIsInvalidErrorWithCause(paramName, err)
		}
		set |= 1 << uint(d)
	}
	return set, nil
}

// ParseWeekday accepts a three letter label or the full English weekday name, in any case.
func ParseWeekday(label string) (time.Weekday, error) {
	normalized := strings.ToLower(strings.TrimSpace(label))
	for d, l := range weekdayLabels {
		if l == normalized || strings.ToLower(d.String()) == normalized {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%q is not a weekday", label)
}

// Label returns the three letter lowercase label of d.
func Label(d time.Weekday) string {
	return weekdayLabels[d]
}

// Contains reports whether d is a working day.
func (w Weekdays) Contains(d time.Weekday) bool {
	if d < time.Sunday || d > time.Saturday {
		return false
	}
	return w&(1<<uint(d)) != 0
}

// IsEmpty reports whether the set has no working day.
func (w Weekdays) IsEmpty() bool {
	return w&allWeekdays == 0
}

// Len returns the number of working days in the set.
func (w Weekdays) Len() int {
	n := 0
	for d := time.Sunday; d <= time.Saturday; d++ {
		if w.Contains(d) {
			n++
		}
	}
	return n
}

// Days lists the working days starting from Monday.
func (w Weekdays) Days() []time.Weekday {
	days := make([]time.Weekday, 0, w.Len())
	for i := 1; i <= 7; i++ {
		d := time.Weekday(i % 7)
		if w.Contains(d) {
			days = append(days, d)
		}
	}
	return days
}

// Labels lists the working day labels starting from Monday.
func (w Weekdays) Labels() []string {
	days := w.Days()
	labels := make([]string, len(days))
	for i, d := range days {
		labels[i] = Label(d)
	}
	return labels
}

func (w Weekdays) String() string {
	return strings.Join(w.Labels(), ",")
}
