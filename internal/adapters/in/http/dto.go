package http

import (
	"errors"
	"math"
	"time"

	"apparel/internal/core/application/usecases/queries"
	"apparel/internal/core/domain/model/calendar"
	"apparel/internal/core/domain/model/leadtime"
	"apparel/internal/core/domain/model/order"
	"apparel/internal/core/domain/model/timeline"
	"apparel/internal/core/domain/services"
	"apparel/internal/pkg/errs"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

type Health struct {
	Status string `json:"status"`
}

// Range is a lead-time range as sent and returned over the wire. Request bodies may
// carry fractional days; they are truncated toward zero.
type Range struct {
	MinDays int `json:"minDays"`
	MaxDays int `json:"maxDays"`
}

type BusinessCalendar struct {
	Timezone    string   `json:"timezone"`
	WorkingDays []string `json:"workingDays"`
}

type Profile struct {
	Production       Range            `json:"production"`
	Shipping         Range            `json:"shipping"`
	BusinessCalendar BusinessCalendar `json:"businessCalendar"`
}

type RangePatch struct {
	MinDays *float64 `json:"minDays,omitempty"`
	MaxDays *float64 `json:"maxDays,omitempty"`
}

type BusinessCalendarPatch struct {
	Timezone    *string   `json:"timezone,omitempty"`
	WorkingDays *[]string `json:"workingDays,omitempty"`
}

// ProfilePatch is the body of PUT /lead-times/defaults and PUT /products/:id/lead-times,
// and the response of the latter.
type ProfilePatch struct {
	Production       *RangePatch            `json:"production,omitempty"`
	Shipping         *RangePatch            `json:"shipping,omitempty"`
	BusinessCalendar *BusinessCalendarPatch `json:"businessCalendar,omitempty"`
}

type NewOrder struct {
	ID        *string    `json:"id,omitempty"`
	ProductID *string    `json:"productId,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

type Order struct {
	ID        string     `json:"id"`
	ProductID *string    `json:"productId,omitempty"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	PaidAt    *time.Time `json:"paidAt,omitempty"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

type Payment struct {
	PaidAt *time.Time `json:"paidAt,omitempty"`
}

type StatusChange struct {
	Status string     `json:"status"`
	PaidAt *time.Time `json:"paidAt,omitempty"`
}

type NewTimelineEntry struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type TimelineEntry struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"orderId"`
	Kind      string    `json:"kind"`
	Message   string    `json:"message"`
	ActorID   string    `json:"actorId"`
	CreatedAt time.Time `json:"createdAt"`
}

type NewProductionUpdate struct {
	Message string `json:"message"`
}

type ProductionUpdate struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"orderId"`
	Message   string    `json:"message"`
	ActorID   string    `json:"actorId"`
	CreatedAt time.Time `json:"createdAt"`
}

// TimelineItem is one element of the merged order history. Kind is empty for
// production updates.
type TimelineItem struct {
	ID        string    `json:"id"`
	Source    string    `json:"source"`
	Kind      string    `json:"kind,omitempty"`
	Message   string    `json:"message"`
	ActorID   string    `json:"actorId"`
	CreatedAt time.Time `json:"createdAt"`
}

type StageEta struct {
	Status                string    `json:"status"`
	ExpectedStartAt       time.Time `json:"expectedStartAt"`
	ExpectedEndAt         time.Time `json:"expectedEndAt"`
	RemainingBusinessDays int       `json:"remainingBusinessDays"`
}

type Stages struct {
	InProduction StageEta `json:"in_production"`
	Shipping     StageEta `json:"shipping"`
}

type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type Overall struct {
	DeliveryWindow Window `json:"deliveryWindow"`
	IsLate         bool   `json:"isLate"`
	DaysLate       int    `json:"daysLate"`
}

type OrderEta struct {
	OrderID string  `json:"orderId"`
	Status  string  `json:"status"`
	Stages  Stages  `json:"stages"`
	Overall Overall `json:"overall"`
}

func profileFromDomain(p leadtime.Profile) Profile {
	return Profile{
		Production: Range{MinDays: p.Production().MinDays(), MaxDays: p.Production().MaxDays()},
		Shipping:   Range{MinDays: p.Shipping().MinDays(), MaxDays: p.Shipping().MaxDays()},
		BusinessCalendar: BusinessCalendar{
			Timezone:    p.Calendar().Timezone(),
			WorkingDays: p.Calendar().WorkingDays().Labels(),
		},
	}
}

// toDomain validates the patch at the write boundary: negative days are rejected and
// fractional days truncated. Every offending field is reported.
func (p ProfilePatch) toDomain() (leadtime.Override, error) {
	var o leadtime.Override

	var prodErr, shipErr, calErr error
	if p.Production != nil {
		o.Production, prodErr = p.Production.toDomain("production")
	}
	if p.Shipping != nil {
		o.Shipping, shipErr = p.Shipping.toDomain("shipping")
	}
	if p.BusinessCalendar != nil {
		o.BusinessCalendar, calErr = p.BusinessCalendar.toDomain()
	}
	if err := errors.Join(prodErr, shipErr, calErr); err != nil {
		return leadtime.Override{}, err
	}
	return o, nil
}

func (r RangePatch) toDomain(field string) (leadtime.RangePatch, error) {
	minDays, minErr := wholeDays(field+".minDays", r.MinDays)
	maxDays, maxErr := wholeDays(field+".maxDays", r.MaxDays)
	if err := errors.Join(minErr, maxErr); err != nil {
		return leadtime.RangePatch{}, err
	}
	return leadtime.RangePatch{MinDays: minDays, MaxDays: maxDays}, nil
}

func wholeDays(field string, days *float64) (*int, error) {
	if days == nil {
		return nil, nil
	}
	if math.IsNaN(*days) || *days < 0 || *days > leadtime.MaxDays {
		return nil, errs.NewValueIsOutOfRangeError(field, *days, 0, leadtime.MaxDays)
	}
	whole := calendar.TruncateDays(*days)
	return &whole, nil
}

func (c BusinessCalendarPatch) toDomain() (leadtime.CalendarPatch, error) {
	patch := leadtime.CalendarPatch{Timezone: c.Timezone}
	if c.WorkingDays != nil {
		days, err := calendar.ParseWeekdays("businessCalendar.workingDays", *c.WorkingDays)
		if err != nil {
			return leadtime.CalendarPatch{}, err
		}
		patch.WorkingDays = &days
	}
	return patch, nil
}

func overrideFromDomain(o leadtime.Override) ProfilePatch {
	var p ProfilePatch
	if o.Production.MinDays != nil || o.Production.MaxDays != nil {
		p.Production = rangePatchFromDomain(o.Production)
	}
	if o.Shipping.MinDays != nil || o.Shipping.MaxDays != nil {
		p.Shipping = rangePatchFromDomain(o.Shipping)
	}
	if o.BusinessCalendar.Timezone != nil || o.BusinessCalendar.WorkingDays != nil {
		p.BusinessCalendar = &BusinessCalendarPatch{Timezone: o.BusinessCalendar.Timezone}
		if o.BusinessCalendar.WorkingDays != nil {
			labels := o.BusinessCalendar.WorkingDays.Labels()
			p.BusinessCalendar.WorkingDays = &labels
		}
	}
	return p
}

func rangePatchFromDomain(r leadtime.RangePatch) *RangePatch {
	patch := &RangePatch{}
	if r.MinDays != nil {
		v := float64(*r.MinDays)
		patch.MinDays = &v
	}
	if r.MaxDays != nil {
		v := float64(*r.MaxDays)
		patch.MaxDays = &v
	}
	return patch
}

func orderFromDomain(o *order.Order) Order {
	resp := Order{
		ID:        o.ID().String(),
		Status:    o.Status().String(),
		CreatedAt: o.CreatedAt().UTC(),
		UpdatedAt: o.UpdatedAt().UTC(),
	}
	if id := o.ProductID(); id != nil {
		s := id.String()
		resp.ProductID = &s
	}
	if at := o.PaidAt(); at != nil {
		utc := at.UTC()
		resp.PaidAt = &utc
	}
	return resp
}

func timelineEntryFromDomain(e *timeline.Entry) TimelineEntry {
	return TimelineEntry{
		ID:        e.ID().String(),
		OrderID:   e.OrderID().String(),
		Kind:      string(e.Kind()),
		Message:   e.Message(),
		ActorID:   e.ActorID(),
		CreatedAt: e.CreatedAt().UTC(),
	}
}

func productionUpdateFromDomain(u *timeline.ProductionUpdate) ProductionUpdate {
	return ProductionUpdate{
		ID:        u.ID().String(),
		OrderID:   u.OrderID().String(),
		Message:   u.Message(),
		ActorID:   u.ActorID(),
		CreatedAt: u.CreatedAt().UTC(),
	}
}

func timelineFromQuery(items []queries.GetOrderTimelineQueryResponse) []TimelineItem {
	resp := make([]TimelineItem, len(items))
	for i, item := range items {
		resp[i] = TimelineItem{
			ID:        item.ID.String(),
			Source:    string(item.Source),
			Kind:      item.Kind,
			Message:   item.Message,
			ActorID:   item.ActorID,
			CreatedAt: item.CreatedAt.UTC(),
		}
	}
	return resp
}

func stageEtaFromDomain(s services.StageEta) StageEta {
	return StageEta{
		Status:                string(s.Status),
		ExpectedStartAt:       s.ExpectedStartAt.UTC(),
		ExpectedEndAt:         s.ExpectedEndAt.UTC(),
		RemainingBusinessDays: s.RemainingBusinessDays,
	}
}

func orderEtaFromQuery(r queries.GetOrderEtaQueryResponse) OrderEta {
	return OrderEta{
		OrderID: r.OrderID.String(),
		Status:  r.Status.String(),
		Stages: Stages{
			InProduction: stageEtaFromDomain(r.Eta.InProduction),
			Shipping:     stageEtaFromDomain(r.Eta.Shipping),
		},
		Overall: Overall{
			DeliveryWindow: Window{
				Start: r.Eta.DeliveryWindow.StartAt.UTC(),
				End:   r.Eta.DeliveryWindow.EndAt.UTC(),
			},
			IsLate:   r.Eta.IsLate,
			DaysLate: r.Eta.DaysLate,
		},
	}
}
