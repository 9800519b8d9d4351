package leadtimerepo

import (
	"context"
	"errors"
	"time"

	"apparel/internal/core/domain/model/kernel"
	"apparel/internal/core/domain/model/leadtime"
	"apparel/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormLeadTimeRepository implements ports.LeadTimeRepository using GORM.
type GormLeadTimeRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewGormLeadTimeRepository(db *gorm.DB) *GormLeadTimeRepository {
	return &GormLeadTimeRepository{db: db, now: time.Now}
}

// GetGlobal reads the global row. Returns *errs.ObjectNotFoundError before the first write.
func (r *GormLeadTimeRepository) GetGlobal(ctx context.Context) (leadtime.Profile, error) {
	var dto SettingsDTO
	if err := r.db.WithContext(ctx).First(&dto, "scope = ?", GlobalScope).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return leadtime.Profile{}, errs.NewObjectNotFoundError("leadTimeSettings", GlobalScope)
		}
		return leadtime.Profile{}, err
	}
	return settingsToDomain(dto)
}

// SetGlobal upserts the global row in a single statement.
func (r *GormLeadTimeRepository) SetGlobal(ctx context.Context, profile leadtime.Profile, actorID string) error {
	if err := profile.Validate(); err != nil {
		return err
	}

	dto := settingsFromDomain(profile, actorID, r.now())
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "scope"}},
			UpdateAll: true,
		}).
		Create(&dto).Error
}

// GetProductOverride returns an empty override when the product has no row.
func (r *GormLeadTimeRepository) GetProductOverride(
	ctx context.Context,
	productID kernel.UUID,
) (leadtime.Override, error) {
	if err := productID.Validate(); err != nil {
		return leadtime.Override{}, err
	}

	var dto ProductLeadTimeDTO
	if err := r.db.WithContext(ctx).First(&dto, "product_id = ?", productID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return leadtime.Override{}, nil
		}
		return leadtime.Override{}, err
	}
	return overrideToDomain(dto)
}

// SetProductOverride replaces the product's row, NULLs included.
func (r *GormLeadTimeRepository) SetProductOverride(
	ctx context.Context,
	productID kernel.UUID,
	override leadtime.Override,
	actorID string,
) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	dto := overrideFromDomain(productID, override, actorID, r.now())
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "product_id"}},
			UpdateAll: true,
		}).
		Create(&dto).Error
}
