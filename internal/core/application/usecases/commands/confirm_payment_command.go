package commands

import (
	"errors"
	"time"

	"apparel/internal/core/domain/model/kernel"
	"apparel/internal/pkg/errs"
	"apparel/internal/pkg/guard"
)

var ErrConfirmPaymentCommandIsNotConstructed = errors.New(
	"ConfirmPaymentCommand must be created via NewConfirmPaymentCommand constructor",
)

// ConfirmPaymentCommand records the payment of an order. It is issued by the checkout
// integration once the gateway reports success.
type ConfirmPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	paidAt  time.Time
	actorID string

	guard guard.ConstructorGuard
}

func NewConfirmPaymentCommand(orderID kernel.UUID, paidAt time.Time, actorID string) (ConfirmPaymentCommand, error) {
	cmd := ConfirmPaymentCommand{
		actorID: actorID,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		requireTime("paidAt", paidAt),
	); err != nil {
		return ConfirmPaymentCommand{}, err
	}

	cmd.orderID = orderID
	cmd.paidAt = paidAt
	return cmd, nil
}

func (c ConfirmPaymentCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPaymentCommandIsNotConstructed)
}

func (c ConfirmPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ConfirmPaymentCommand) PaidAt() time.Time {
	return c.paidAt
}

func (c ConfirmPaymentCommand) ActorID() string {
	return c.actorID
}

func requireTime(paramName string, t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsRequiredError(paramName)
	}
	return nil
}
