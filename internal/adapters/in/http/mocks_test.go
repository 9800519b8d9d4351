package http_test

import (
	"context"
	"log/slog"

	"apparel/internal/core/application/usecases/commands"
	"apparel/internal/core/application/usecases/queries"
	"apparel/internal/core/domain/model/leadtime"
	"apparel/internal/core/domain/model/order"
	"apparel/internal/core/domain/model/timeline"

	"github.com/stretchr/testify/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

type MockCreateOrderHandler struct{ mock.Mock }

func (m *MockCreateOrderHandler) Handle(ctx context.Context, cmd commands.CreateOrderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockConfirmPaymentHandler struct{ mock.Mock }

func (m *MockConfirmPaymentHandler) Handle(ctx context.Context, cmd commands.ConfirmPaymentCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockChangeOrderStatusHandler struct{ mock.Mock }

func (m *MockChangeOrderStatusHandler) Handle(
	ctx context.Context,
	cmd commands.ChangeOrderStatusCommand,
) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockAddTimelineEntryHandler struct{ mock.Mock }

func (m *MockAddTimelineEntryHandler) Handle(
	ctx context.Context,
	cmd commands.AddTimelineEntryCommand,
) (*timeline.Entry, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*timeline.Entry), args.Error(1)
}

type MockAddProductionUpdateHandler struct{ mock.Mock }

func (m *MockAddProductionUpdateHandler) Handle(
	ctx context.Context,
	cmd commands.AddProductionUpdateCommand,
) (*timeline.ProductionUpdate, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*timeline.ProductionUpdate), args.Error(1)
}

type MockUpdateLeadTimeDefaultsHandler struct{ mock.Mock }

func (m *MockUpdateLeadTimeDefaultsHandler) Handle(
	ctx context.Context,
	cmd commands.UpdateLeadTimeDefaultsCommand,
) (leadtime.Profile, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(leadtime.Profile), args.Error(1)
}

type MockSetProductLeadTimesHandler struct{ mock.Mock }

func (m *MockSetProductLeadTimesHandler) Handle(
	ctx context.Context,
	cmd commands.SetProductLeadTimesCommand,
) (leadtime.Override, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(leadtime.Override), args.Error(1)
}

type MockGetLeadTimeDefaultsHandler struct{ mock.Mock }

func (m *MockGetLeadTimeDefaultsHandler) Handle(
	ctx context.Context,
	query queries.GetLeadTimeDefaultsQuery,
) (leadtime.Profile, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(leadtime.Profile), args.Error(1)
}

type MockGetEffectiveLeadTimesHandler struct{ mock.Mock }

func (m *MockGetEffectiveLeadTimesHandler) Handle(
	ctx context.Context,
	query queries.GetEffectiveLeadTimesQuery,
) (leadtime.Profile, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(leadtime.Profile), args.Error(1)
}

type MockGetOrderEtaHandler struct{ mock.Mock }

func (m *MockGetOrderEtaHandler) Handle(
	ctx context.Context,
	query queries.GetOrderEtaQuery,
) (queries.GetOrderEtaQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetOrderEtaQueryResponse), args.Error(1)
}

type MockGetOrderTimelineHandler struct{ mock.Mock }

func (m *MockGetOrderTimelineHandler) Handle(
	ctx context.Context,
	query queries.GetOrderTimelineQuery,
) ([]queries.GetOrderTimelineQueryResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.GetOrderTimelineQueryResponse), args.Error(1)
}
