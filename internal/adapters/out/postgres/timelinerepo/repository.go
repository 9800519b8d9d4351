package timelinerepo

import (
	"context"

	"apparel/internal/core/domain/model/kernel"
	"apparel/internal/core/domain/model/timeline"

	"gorm.io/gorm"
)

// GormTimelineRepository implements ports.TimelineRepository using GORM.
// Rows are only ever inserted.
type GormTimelineRepository struct {
	db *gorm.DB
}

func NewGormTimelineRepository(db *gorm.DB) *GormTimelineRepository {
	return &GormTimelineRepository{db: db}
}

func (r *GormTimelineRepository) AddEntry(ctx context.Context, entry *timeline.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := entryFromDomain(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormTimelineRepository) AddProductionUpdate(ctx context.Context, update *timeline.ProductionUpdate) error {
	if err := update.Validate(); err != nil {
		return err
	}

	dto := productionUpdateFromDomain(update)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// ListEntries returns the entries of an order, oldest first.
func (r *GormTimelineRepository) ListEntries(ctx context.Context, orderID kernel.UUID) ([]*timeline.Entry, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []EntryDTO
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("created_at, id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	entries := make([]*timeline.Entry, 0, len(dtos))
	for _, dto := range dtos {
		e, err := entryToDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}
