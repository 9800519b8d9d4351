package leadtime

import (
	"errors"

	"apparel/internal/core/domain/model/calendar"
	"apparel/internal/pkg/guard"
)

var ErrProfileIsNotConstructed = errors.New("Profile must be created via NewProfile constructor")

// Profile holds the production and shipping lead times and the calendar they are counted on.
//
// Example:
//
//	production, _ := leadtime.NewRange("production", 7, 10)
//	shipping, _ := leadtime.NewRange("shipping", 2, 4)
//	profile, err := leadtime.NewProfile(production, shipping, calendar.DefaultCalendar())
type Profile struct { //nolint:recvcheck //using for validation
	production Range
	shipping   Range
	calendar   calendar.Calendar
	guard      guard.ConstructorGuard
}

// NewProfile requires all three parts to be constructed values.
func NewProfile(production, shipping Range, cal calendar.Calendar) (Profile, error) {
	if err := errors.Join(
		production.Validate(),
		shipping.Validate(),
		cal.Validate(),
	); err != nil {
		return Profile{}, err
	}
	return Profile{
		production: production,
		shipping:   shipping,
		calendar:   cal,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// DefaultProfile is the hardcoded fallback used when no global settings have been stored:
// production 7-10 business days, shipping 2-4, Monday to Friday in UTC.
func DefaultProfile() Profile {
	return Profile{
		production: mustRange(7, 10),
		shipping:   mustRange(2, 4),
		calendar:   calendar.DefaultCalendar(),
		guard:      guard.NewConstructorGuard(),
	}
}

func (p Profile) Validate() error {
	return p.guard.Validate(ErrProfileIsNotConstructed)
}

func (p Profile) Production() Range {
	return p.production
}

func (p Profile) Shipping() Range {
	return p.shipping
}

func (p Profile) Calendar() calendar.Calendar {
	return p.calendar
}

func (p Profile) IsEqual(other Profile) bool {
	return p.production.IsEqual(other.production) &&
		p.shipping.IsEqual(other.shipping) &&
		p.calendar.IsEqual(other.calendar)
}

// Apply returns p with the fields present in o replaced. The merged ranges and calendar
// are validated as a whole; p itself is never modified.
func (p Profile) Apply(o Override) (Profile, error) {
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}

	production, prodErr := o.Production.applyTo("production", p.production)
	shipping, shipErr := o.Shipping.applyTo("shipping", p.shipping)
	cal, calErr := o.BusinessCalendar.applyTo(p.calendar)
	if err := errors.Join(prodErr, shipErr, calErr); err != nil {
		return Profile{}, err
	}

	return NewProfile(production, shipping, cal)
}

// ApplyEach resolves every part of o on its own: production, shipping and the calendar.
// A part that does not fit p keeps p's value and is reported in the returned error, while
// the other parts still apply. The returned profile is always valid when p is.
func (p Profile) ApplyEach(o Override) (Profile, error) {
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}

	production, prodErr := o.Production.applyTo("production", p.production)
	if prodErr != nil {
		production = p.production
	}
	shipping, shipErr := o.Shipping.applyTo("shipping", p.shipping)
	if shipErr != nil {
		shipping = p.shipping
	}
	cal, calErr := o.BusinessCalendar.applyTo(p.calendar)
	if calErr != nil {
		cal = p.calendar
	}

	resolved, err := NewProfile(production, shipping, cal)
	if err != nil {
		return p, err
	}
	return resolved, errors.Join(prodErr, shipErr, calErr)
}
