// Package leadtimerepo persists the global lead-time defaults and per-product overrides.
package leadtimerepo

import (
	"time"

	"apparel/internal/core/domain/model/calendar"
	"apparel/internal/core/domain/model/kernel"
	"apparel/internal/core/domain/model/leadtime"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// GlobalScope is the key of the single row holding the deployment-wide defaults.
const GlobalScope = "global"

// SettingsDTO is a row of lead_time_settings. Only the global scope is written today.
type SettingsDTO struct {
	Scope             string         `gorm:"type:varchar(32);primaryKey"`
	ProductionMinDays int            `gorm:"not null"`
	ProductionMaxDays int            `gorm:"not null"`
	ShippingMinDays   int            `gorm:"not null"`
	ShippingMaxDays   int            `gorm:"not null"`
	Timezone          string         `gorm:"type:varchar(64);not null"`
	WorkingDays       pq.StringArray `gorm:"type:text[];not null"`
	UpdatedBy         string         `gorm:"type:varchar(255)"`
	UpdatedAt         time.Time      `gorm:"not null"`
}

func (SettingsDTO) TableName() string {
	return "lead_time_settings"
}

// ProductLeadTimeDTO is a row of product_lead_times. Every lead-time column is nullable;
// NULL means the product inherits the global value.
type ProductLeadTimeDTO struct {
	ProductID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductionMinDays *int
	ProductionMaxDays *int
	ShippingMinDays   *int
	ShippingMaxDays   *int
	Timezone          *string        `gorm:"type:varchar(64)"`
	WorkingDays       pq.StringArray `gorm:"type:text[]"`
	UpdatedBy         string         `gorm:"type:varchar(255)"`
	UpdatedAt         time.Time      `gorm:"not null"`
}

func (ProductLeadTimeDTO) TableName() string {
	return "product_lead_times"
}

func settingsFromDomain(p leadtime.Profile, actorID string, at time.Time) SettingsDTO {
	return SettingsDTO{
		Scope:             GlobalScope,
		ProductionMinDays: p.Production().MinDays(),
		ProductionMaxDays: p.Production().MaxDays(),
		ShippingMinDays:   p.Shipping().MinDays(),
		ShippingMaxDays:   p.Shipping().MaxDays(),
		Timezone:          p.Calendar().Timezone(),
		WorkingDays:       pq.StringArray(p.Calendar().WorkingDays().Labels()),
		UpdatedBy:         actorID,
		UpdatedAt:         at.UTC(),
	}
}

func settingsToDomain(dto SettingsDTO) (leadtime.Profile, error) {
	production, err := leadtime.NewRange("production", dto.ProductionMinDays, dto.ProductionMaxDays)
	if err != nil {
		return leadtime.Profile{}, err
	}
	shipping, err := leadtime.NewRange("shipping", dto.ShippingMinDays, dto.ShippingMaxDays)
	if err != nil {
		return leadtime.Profile{}, err
	}
	days, err := calendar.ParseWeekdays("businessCalendar.workingDays", dto.WorkingDays)
	if err != nil {
		return leadtime.Profile{}, err
	}
	cal, err := calendar.NewCalendar(dto.Timezone, days)
	if err != nil {
		return leadtime.Profile{}, err
	}
	return leadtime.NewProfile(production, shipping, cal)
}

func overrideFromDomain(productID kernel.UUID, o leadtime.Override, actorID string, at time.Time) ProductLeadTimeDTO {
	dto := ProductLeadTimeDTO{
		ProductID:         productID.Bytes(),
		ProductionMinDays: o.Production.MinDays,
		ProductionMaxDays: o.Production.MaxDays,
		ShippingMinDays:   o.Shipping.MinDays,
		ShippingMaxDays:   o.Shipping.MaxDays,
		Timezone:          o.BusinessCalendar.Timezone,
		UpdatedBy:         actorID,
		UpdatedAt:         at.UTC(),
	}
	if o.BusinessCalendar.WorkingDays != nil {
		dto.WorkingDays = pq.StringArray(o.BusinessCalendar.WorkingDays.Labels())
	}
	return dto
}

func overrideToDomain(dto ProductLeadTimeDTO) (leadtime.Override, error) {
	o := leadtime.Override{
		Production: leadtime.RangePatch{MinDays: dto.ProductionMinDays, MaxDays: dto.ProductionMaxDays},
		Shipping:   leadtime.RangePatch{MinDays: dto.ShippingMinDays, MaxDays: dto.ShippingMaxDays},
		BusinessCalendar: leadtime.CalendarPatch{
			Timezone: dto.Timezone,
		},
	}
	if dto.WorkingDays != nil {
		days, err := calendar.ParseWeekdays("businessCalendar.workingDays", dto.WorkingDays)
		if err != nil {
			return leadtime.Override{}, err
		}
		o.BusinessCalendar.WorkingDays = &days
	}
	return o, nil
}
