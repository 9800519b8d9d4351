package leadtime

import (
	"apparel/internal/core/domain/model/calendar"
)

// RangePatch carries the optional bounds of a Range. Nil fields are absent.
type RangePatch struct {
	MinDays *int
	MaxDays *int
}

// CalendarPatch carries the optional parts of a business calendar. Nil fields are absent.
type CalendarPatch struct {
	Timezone    *string
	WorkingDays *calendar.Weekdays
}

// Override is a partial Profile. It is both the body of an administrative update of the
// global defaults and the stored per-product override.
type Override struct {
	Production       RangePatch
	Shipping         RangePatch
	BusinessCalendar CalendarPatch
}

// OverrideFromProfile returns an override that carries every field of p.
func OverrideFromProfile(p Profile) Override {
	prodMin, prodMax := p.production.minDays, p.production.maxDays
	shipMin, shipMax := p.shipping.minDays, p.shipping.maxDays
	tz := p.calendar.Timezone()
	days := p.calendar.WorkingDays()
	return Override{
		Production:       RangePatch{MinDays: &prodMin, MaxDays: &prodMax},
		Shipping:         RangePatch{MinDays: &shipMin, MaxDays: &shipMax},
		BusinessCalendar: CalendarPatch{Timezone: &tz, WorkingDays: &days},
	}
}

// IsEmpty reports whether the override carries no field at all.
func (o Override) IsEmpty() bool {
	return o.Production.isEmpty() && o.Shipping.isEmpty() &&
		o.BusinessCalendar.Timezone == nil && o.BusinessCalendar.WorkingDays == nil
}

// Merge layers next over o: fields present in next win, the rest are kept from o.
func (o Override) Merge(next Override) Override {
	merged := o
	merged.Production = o.Production.merge(next.Production)
	merged.Shipping = o.Shipping.merge(next.Shipping)
	if next.BusinessCalendar.Timezone != nil {
		merged.BusinessCalendar.Timezone = next.BusinessCalendar.Timezone
	}
	if next.BusinessCalendar.WorkingDays != nil {
		merged.BusinessCalendar.WorkingDays = next.BusinessCalendar.WorkingDays
	}
	return merged
}

func (r RangePatch) isEmpty() bool {
	return r.MinDays == nil && r.MaxDays == nil
}

func (r RangePatch) merge(next RangePatch) RangePatch {
	if next.MinDays != nil {
		r.MinDays = next.MinDays
	}
	if next.MaxDays != nil {
		r.MaxDays = next.MaxDays
	}
	return r
}

func (r RangePatch) applyTo(field string, base Range) (Range, error) {
	if r.isEmpty() {
		return base, nil
	}
	minDays, maxDays := base.minDays, base.maxDays
	if r.MinDays != nil {
		minDays = *r.MinDays
	}
	if r.MaxDays != nil {
		maxDays = *r.MaxDays
	}
	return NewRange(field, minDays, maxDays)
}

func (c CalendarPatch) applyTo(base calendar.Calendar) (calendar.Calendar, error) {
	if c.Timezone == nil && c.WorkingDays == nil {
		return base, nil
	}
	timezone, workingDays := base.Timezone(), base.WorkingDays()
	if c.Timezone != nil {
		timezone = *c.Timezone
	}
	if c.WorkingDays != nil {
		workingDays = *c.WorkingDays
	}
	return calendar.NewCalendar(timezone, workingDays)
}
