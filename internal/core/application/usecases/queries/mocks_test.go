package queries_test

import (
	"context"
	"log/slog"

	"apparel/internal/core/domain/model/kernel"
	"apparel/internal/core/domain/model/leadtime"
	"apparel/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

type MockLeadTimeReader struct{ mock.Mock }

func (m *MockLeadTimeReader) GetGlobal(ctx context.Context) (leadtime.Profile, error) {
	args := m.Called(ctx)
	return args.Get(0).(leadtime.Profile), args.Error(1)
}

func (m *MockLeadTimeReader) GetProductOverride(ctx context.Context, productID kernel.UUID) (leadtime.Override, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(leadtime.Override), args.Error(1)
}

type MockOrderReader struct{ mock.Mock }

func (m *MockOrderReader) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderReader) GetAllInProgress(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}
