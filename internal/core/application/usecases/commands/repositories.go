// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// persistence, and realtime notification once the transaction has committed.
package commands

import (
	"context"

	"apparel/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// TimelineRepoFactory provides access to timeline repository within a transaction.
	TimelineRepoFactory interface {
		TimelineRepository() ports.TimelineRepository
	}

	// LeadTimeRepoFactory provides access to lead-time repository within a transaction.
	LeadTimeRepoFactory interface {
		LeadTimeRepository() ports.LeadTimeRepository
	}

	// OrderUoW manages transactions for order writes and the timeline entries they produce.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, err := uow.OrderRepository().Get(ctx, id)
	//   // ... mutate, then append to uow.TimelineRepository()
	//
	//   err = uow.Commit(ctx)
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		TimelineRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// LeadTimeUoW manages transactions for lead-time settings.
	LeadTimeUoW interface {
		TxManager
		LeadTimeRepoFactory
	}

	// LeadTimeUoWFactory creates new lead-time unit of work instances.
	LeadTimeUoWFactory interface {
		Create() LeadTimeUoW
	}
)
