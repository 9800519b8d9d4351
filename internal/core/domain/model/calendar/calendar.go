package calendar

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"apparel/internal/pkg/errs"
	"apparel/internal/pkg/guard"

	_ "time/tzdata" // embedded zoneinfo for LoadLocation
)

// DefaultTimezone is used when a calendar is created without a timezone.
const DefaultTimezone = "UTC"

var ErrCalendarIsNotConstructed = errors.New("Calendar must be created via NewCalendar constructor")

// Calendar is an immutable business calendar: a non-empty working-day set and an advisory
// IANA timezone. Because the set is never empty, the stepping algorithms always terminate.
type Calendar struct { //nolint:recvcheck //using for validation
	timezone    string
	workingDays Weekdays
	guard       guard.ConstructorGuard
}

// NewCalendar validates the timezone (empty means DefaultTimezone) and requires at least one working day.
func NewCalendar(timezone string, workingDays Weekdays) (Calendar, error) {
	c := Calendar{guard: guard.NewConstructorGuard()}
	if err := errors.Join(
		c.setTimezone(timezone),
		c.setWorkingDays(workingDays),
	); err != nil {
		return Calendar{}, err
	}
	return c, nil
}

// DefaultCalendar returns the Monday to Friday calendar in UTC.
func DefaultCalendar() Calendar {
	return Calendar{
		timezone:    DefaultTimezone,
		workingDays: MondayToFriday,
		guard:       guard.NewConstructorGuard(),
	}
}

func (c Calendar) Validate() error {
	return c.guard.Validate(ErrCalendarIsNotConstructed)
}

func (c Calendar) Timezone() string {
	return c.timezone
}

func (c Calendar) WorkingDays() Weekdays {
	return c.workingDays
}

// IsWorkingDay reports whether the UTC calendar day of t is a working day.
func (c Calendar) IsWorkingDay(t time.Time) bool {
	return c.workingDays.Contains(t.UTC().Weekday())
}

// AddBusinessDays adds days business days to start on this calendar.
func (c Calendar) AddBusinessDays(start time.Time, days int) (time.Time, error) {
	if err := c.Validate(); err != nil {
		return time.Time{}, err
	}
	return AddBusinessDays(start, days, c.workingDays)
}

// CountWorkingDays counts business days between start and end on this calendar.
func (c Calendar) CountWorkingDays(start, end time.Time) (int, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}
	return CountWorkingDays(start, end, c.workingDays)
}

// IsEqual compares timezone and working days.
func (c Calendar) IsEqual(other Calendar) bool {
	return c.timezone == other.timezone && c.workingDays == other.workingDays
}

func (c Calendar) String() string {
	return fmt.Sprintf("Calendar(%s, %s)", c.timezone, c.workingDays)
}

func (c *Calendar) setTimezone(timezone string) error {
	timezone = strings.TrimSpace(timezone)
	if timezone == "" {
		timezone = DefaultTimezone
	}
	if _, err := time.LoadLocation(timezone); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("businessCalendar.timezone", err)
	}
	c.timezone = timezone
	return nil
}

func (c *Calendar) setWorkingDays(workingDays Weekdays) error {
	if workingDays.IsEmpty() {
		return errs.NewValueIsRequiredErrorWithCause("businessCalendar.workingDays", ErrNoWorkingDays)
	}
	c.workingDays = workingDays & allWeekdays
	return nil
}
