package commands

import (
	"errors"
	"time"

	"apparel/internal/core/domain/model/kernel"
	"apparel/internal/pkg/guard"
)

var ErrAddProductionUpdateCommandIsNotConstructed = errors.New(
	"AddProductionUpdateCommand must be created via NewAddProductionUpdateCommand constructor",
)

// AddProductionUpdateCommand posts a workshop note against an order.
type AddProductionUpdateCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	message string
	actorID string
	at      time.Time

	guard guard.ConstructorGuard
}

func NewAddProductionUpdateCommand(orderID kernel.UUID, message, actorID string, at time.Time) (AddProductionUpdateCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		requireTime("at", at),
	); err != nil {
		return AddProductionUpdateCommand{}, err
	}

	return AddProductionUpdateCommand{
		orderID: orderID,
		message: message,
		actorID: actorID,
		at:      at,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c AddProductionUpdateCommand) Validate() error {
	return c.guard.Validate(ErrAddProductionUpdateCommandIsNotConstructed)
}

func (c AddProductionUpdateCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AddProductionUpdateCommand) Message() string {
	return c.message
}

func (c AddProductionUpdateCommand) ActorID() string {
	return c.actorID
}

func (c AddProductionUpdateCommand) At() time.Time {
	return c.at
}
