package commands

import (
	"errors"
	"time"

	"apparel/internal/core/domain/model/kernel"
	"apparel/internal/core/domain/model/order"
	"apparel/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand is the administrative status write. It accepts any valid
// status, including moves backwards in the pipeline.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	status  order.Status
	paidAt  *time.Time
	actorID string
	at      time.Time

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand validates the target status. paidAt is optional and is
// recorded only when the order has none yet.
func NewChangeOrderStatusCommand(
	orderID kernel.UUID,
	status order.Status,
	paidAt *time.Time,
	actorID string,
	at time.Time,
) (ChangeOrderStatusCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		status.Validate(),
		requireTime("at", at),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return ChangeOrderStatusCommand{
		orderID: orderID,
		status:  status,
		paidAt:  paidAt,
		actorID: actorID,
		at:      at,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ChangeOrderStatusCommand) Status() order.Status {
	return c.status
}

func (c ChangeOrderStatusCommand) PaidAt() *time.Time {
	return c.paidAt
}

func (c ChangeOrderStatusCommand) ActorID() string {
	return c.actorID
}

func (c ChangeOrderStatusCommand) At() time.Time {
	return c.at
}
