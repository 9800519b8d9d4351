// Package timelinerepo stores the append-only history of orders.
package timelinerepo

import (
	"time"

	"apparel/internal/core/domain/model/kernel"
	"apparel/internal/core/domain/model/timeline"

	"github.com/google/uuid"
)

// EntryDTO is a row of timeline_entries.
type EntryDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index:idx_timeline_entries_order_created,priority:1"`
	Kind      string    `gorm:"type:varchar(32);not null"`
	Message   string    `gorm:"type:text;not null"`
	ActorID   string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime:false;index:idx_timeline_entries_order_created,priority:2"`
}

func (EntryDTO) TableName() string {
	return "timeline_entries"
}

// ProductionUpdateDTO is a row of production_updates.
type ProductionUpdateDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index:idx_production_updates_order_created,priority:1"`
	Message   string    `gorm:"type:text;not null"`
	ActorID   string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime:false;index:idx_production_updates_order_created,priority:2"`
}

func (ProductionUpdateDTO) TableName() string {
	return "production_updates"
}

func entryFromDomain(e *timeline.Entry) EntryDTO {
	return EntryDTO{
		ID:        e.ID().Bytes(),
		OrderID:   e.OrderID().Bytes(),
		Kind:      string(e.Kind()),
		Message:   e.Message(),
		ActorID:   e.ActorID(),
		CreatedAt: e.CreatedAt().UTC(),
	}
}

func entryToDomain(dto EntryDTO) (*timeline.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	return timeline.RestoreEntry(id, orderID, timeline.Kind(dto.Kind), dto.Message, dto.ActorID, dto.CreatedAt)
}

func productionUpdateFromDomain(u *timeline.ProductionUpdate) ProductionUpdateDTO {
	return ProductionUpdateDTO{
		ID:        u.ID().Bytes(),
		OrderID:   u.OrderID().Bytes(),
		Message:   u.Message(),
		ActorID:   u.ActorID(),
		CreatedAt: u.CreatedAt().UTC(),
	}
}
