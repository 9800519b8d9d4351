package postgres

import (
	"fmt"

	"apparel/internal/adapters/out/postgres/leadtimerepo"
	"apparel/internal/adapters/out/postgres/orderrepo"
	"apparel/internal/adapters/out/postgres/timelinerepo"

	"gorm.io/gorm"
)

// Models lists every table owned by the service, in creation order.
func Models() []any {
	return []any{
		&orderrepo.OrderDTO{},
		&leadtimerepo.SettingsDTO{},
		&leadtimerepo.ProductLeadTimeDTO{},
		&timelinerepo.EntryDTO{},
		&timelinerepo.ProductionUpdateDTO{},
	}
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
