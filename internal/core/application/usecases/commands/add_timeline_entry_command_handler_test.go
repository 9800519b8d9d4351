package commands_test

import (
	"testing"
	"time"

	"apparel/internal/core/application/usecases/commands"
	"apparel/internal/core/domain/model/kernel"
	"apparel/internal/core/domain/model/order"
	"apparel/internal/core/domain/model/timeline"
	"apparel/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewAddTimelineEntryCommand(t *testing.T) {
	_, err := commands.NewAddTimelineEntryCommand(kernel.NewUUID(), timeline.Kind("refund"), "x", "admin", time.Now())
	require.Error(t, err)
	assert.Equal(t, "kind", errs.Field(err))

	cmd, err := commands.NewAddTimelineEntryCommand(kernel.NewUUID(), timeline.KindNote, "Proof sent", "admin", time.Now())
	require.NoError(t, err)
	assert.Equal(t, "Proof sent", cmd.Message())
}

func TestAddTimelineEntryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	o := storedOrder(t, order.Paid, nil)
	at := orderCreatedAt.Add(time.Hour)
	cmd, _ := commands.NewAddTimelineEntryCommand(o.ID(), timeline.KindNote, "Proof sent", "admin", at)

	orderRepo := new(MockOrderRepository)
	timelineRepo := new(MockTimelineRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		uow.On("TimelineRepository").Return(timelineRepo).Once(),
		timelineRepo.On("AddEntry", ctx, mock.AnythingOfType("*timeline.Entry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	notifier := new(MockNotifier)
	notifier.On("TimelineEntryCreated", ctx, mock.AnythingOfType("*timeline.Entry")).Return(nil).Once()

	h := commands.NewAddTimelineEntryCommandHandler(factory, notifier, discardLogger())
	entry, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "Proof sent", entry.Message())
	assert.Equal(t, at, entry.CreatedAt())
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestAddTimelineEntryCommandHandler_Handle_EmptyMessage(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAddTimelineEntryCommand(kernel.NewUUID(), timeline.KindNote, "  ", "admin", time.Now())
	factory := new(MockOrderUoWFactory)

	h := commands.NewAddTimelineEntryCommandHandler(factory, new(MockNotifier), discardLogger())
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	factory.AssertNotCalled(t, "Create")
}

func TestAddTimelineEntryCommandHandler_Handle_UnknownOrder(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewAddTimelineEntryCommand(id, timeline.KindNote, "Proof sent", "admin", time.Now())

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("orderId", id)).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddTimelineEntryCommandHandler(factory, new(MockNotifier), discardLogger())
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "TimelineRepository")
}
