package commands_test

import (
	"context"
	"log/slog"

	"apparel/internal/core/application/usecases/commands"
	"apparel/internal/core/domain/model/kernel"
	"apparel/internal/core/domain/model/leadtime"
	"apparel/internal/core/domain/model/order"
	"apparel/internal/core/domain/model/timeline"
	"apparel/internal/core/domain/services"
	"apparel/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllInProgress(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockTimelineRepository struct{ mock.Mock }

func (m *MockTimelineRepository) AddEntry(ctx context.Context, e *timeline.Entry) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockTimelineRepository) AddProductionUpdate(ctx context.Context, u *timeline.ProductionUpdate) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockTimelineRepository) ListEntries(ctx context.Context, orderID kernel.UUID) ([]*timeline.Entry, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*timeline.Entry), args.Error(1)
}

type MockLeadTimeRepository struct{ mock.Mock }

func (m *MockLeadTimeRepository) GetGlobal(ctx context.Context) (leadtime.Profile, error) {
	args := m.Called(ctx)
	return args.Get(0).(leadtime.Profile), args.Error(1)
}

func (m *MockLeadTimeRepository) SetGlobal(ctx context.Context, p leadtime.Profile, actorID string) error {
	args := m.Called(ctx, p, actorID)
	return args.Error(0)
}

func (m *MockLeadTimeRepository) GetProductOverride(ctx context.Context, productID kernel.UUID) (leadtime.Override, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(leadtime.Override), args.Error(1)
}

func (m *MockLeadTimeRepository) SetProductOverride(
	ctx context.Context, productID kernel.UUID, o leadtime.Override, actorID string,
) error {
	args := m.Called(ctx, productID, o, actorID)
	return args.Error(0)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockOrderUoW) TimelineRepository() ports.TimelineRepository {
	args := m.Called()
	return args.Get(0).(ports.TimelineRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockLeadTimeUoW struct{ mock.Mock }

func (m *MockLeadTimeUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLeadTimeUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLeadTimeUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLeadTimeUoW) LeadTimeRepository() ports.LeadTimeRepository {
	args := m.Called()
	return args.Get(0).(ports.LeadTimeRepository)
}

type MockLeadTimeUoWFactory struct{ mock.Mock }

func (m *MockLeadTimeUoWFactory) Create() commands.LeadTimeUoW {
	args := m.Called()
	return args.Get(0).(commands.LeadTimeUoW)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) OrderUpdated(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockNotifier) TimelineEntryCreated(ctx context.Context, e *timeline.Entry) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockNotifier) ProductionUpdateCreated(ctx context.Context, u *timeline.ProductionUpdate) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockNotifier) OrderLate(ctx context.Context, o *order.Order, eta services.Eta) error {
	args := m.Called(ctx, o, eta)
	return args.Error(0)
}
