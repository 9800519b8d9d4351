// Package orderrepo maps order aggregates to the orders table.
package orderrepo

import (
	"time"

	"apparel/internal/core/domain/model/kernel"
	"apparel/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the row of the orders table. Status is stored by label so the table stays
// readable from SQL and survives reordering of the Go enum.
type OrderDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ProductID *uuid.UUID `gorm:"type:uuid;index"`
	Status    string     `gorm:"type:varchar(32);not null;index"`
	CreatedAt time.Time  `gorm:"not null;autoCreateTime:false"`
	PaidAt    *time.Time
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime:false"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	var productID *uuid.UUID
	if id := o.ProductID(); id != nil {
		raw := id.Bytes()
		productID = &raw
	}

	var paidAt *time.Time
	if at := o.PaidAt(); at != nil {
		utc := at.UTC()
		paidAt = &utc
	}

	return OrderDTO{
		ID:        o.ID().Bytes(),
		ProductID: productID,
		Status:    o.Status().String(),
		CreatedAt: o.CreatedAt().UTC(),
		PaidAt:    paidAt,
		UpdatedAt: o.UpdatedAt().UTC(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var productID *kernel.UUID
	if dto.ProductID != nil {
		pid, productErr := kernel.UUIDFromBytes((*dto.ProductID)[:])
		if productErr != nil {
			return nil, productErr
		}
		productID = &pid
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var paidAt *time.Time
	if dto.PaidAt != nil {
		utc := dto.PaidAt.UTC()
		paidAt = &utc
	}

	return order.RestoreOrder(id, productID, status, dto.CreatedAt.UTC(), paidAt, dto.UpdatedAt.UTC())
}
