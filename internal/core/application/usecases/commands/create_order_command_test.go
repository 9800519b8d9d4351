package commands_test

import (
	"testing"
	"time"

	"apparel/internal/core/application/usecases/commands"
	"apparel/internal/core/domain/model/kernel"
	"apparel/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	productID := kernel.NewUUID()
	createdAt := time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC)

	cmd, err := commands.NewCreateOrderCommand(id, &productID, createdAt)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, productID, *cmd.ProductID())
	assert.Equal(t, createdAt, cmd.CreatedAt())
}

func TestNewCreateOrderCommand_WithoutProduct(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), nil, time.Now())

	require.NoError(t, err)
	assert.Nil(t, cmd.ProductID())
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.UUID{}, nil, time.Now())

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_MissingCreatedAt(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), nil, time.Time{})

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Equal(t, "createdAt", errs.Field(err))
}

func TestCreateOrderCommand_ZeroValue(t *testing.T) {
	assert.ErrorIs(t, commands.CreateOrderCommand{}.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
