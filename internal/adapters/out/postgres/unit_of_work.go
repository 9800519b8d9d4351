// Package postgres provides the GORM-based Unit of Work shared by the command handlers.
//
// Every command handler creates a fresh unit of work, begins it, performs its repository
// calls and commits. Repositories obtained from a unit of work run inside its transaction
// once Begin has been called and against the plain connection otherwise.
//
// Basic Transaction Management:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.OrderRepository().Update(ctx, o); err != nil {
//	    return err
//	}
//	if err := uow.TimelineRepository().AddEntry(ctx, entry); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Concurrency Considerations:
//   - Each UnitOfWork instance provides isolated transactions
//   - Multiple goroutines should use separate UnitOfWork instances
//   - Orders read inside a transaction are locked FOR UPDATE, so a second writer waits
//     and then sees the committed row
package postgres

import (
	"context"

	"apparel/internal/adapters/out/postgres/leadtimerepo"
	"apparel/internal/adapters/out/postgres/orderrepo"
	"apparel/internal/adapters/out/postgres/timelinerepo"
	"apparel/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db)
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork with no transaction started.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates one database transaction across the order, lead-time and
// timeline repositories.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin initiates a new database transaction for the unit of work.
// Multiple calls to Begin on the same instance are safe and will not create nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction if no transaction is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction if no transaction is active, which makes a deferred
// Rollback after a successful Commit harmless.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// OrderRepository provides access to order persistence within the unit of work. Once a
// transaction has begun, orders read through it stay locked until Commit or Rollback.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	repo := orderrepo.NewGormOrderRepository(uow.conn())
	if uow.tx != nil {
		return repo.ForUpdate()
	}
	return repo
}

// LeadTimeRepository provides access to lead-time settings within the unit of work.
func (uow *GormUnitOfWork) LeadTimeRepository() ports.LeadTimeRepository {
	return leadtimerepo.NewGormLeadTimeRepository(uow.conn())
}

// TimelineRepository provides access to the order history within the unit of work.
func (uow *GormUnitOfWork) TimelineRepository() ports.TimelineRepository {
	return timelinerepo.NewGormTimelineRepository(uow.conn())
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
