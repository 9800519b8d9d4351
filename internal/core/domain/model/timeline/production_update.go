package timeline

import (
	"errors"
	"strings"
	"time"

	"apparel/internal/core/domain/model/kernel"
)

var ErrProductionUpdateIsNotConstructed = errors.New("ProductionUpdate must be created via NewProductionUpdate constructor")

// ProductionUpdate is a workshop note about the production of an order.
type ProductionUpdate struct {
	id        kernel.UUID
	orderID   kernel.UUID
	message   string
	actorID   string
	createdAt time.Time

	isConstructed bool
}

func NewProductionUpdate(orderID kernel.UUID, message, actorID string, createdAt time.Time) (*ProductionUpdate, error) {
	return RestoreProductionUpdate(kernel.NewUUID(), orderID, message, actorID, createdAt)
}

// RestoreProductionUpdate rebuilds a production update read from storage.
func RestoreProductionUpdate(
	id, orderID kernel.UUID,
	message, actorID string,
	createdAt time.Time,
) (*ProductionUpdate, error) {
	msg, msgErr := validateMessage(message)
	if err := errors.Join(
		id.Validate(),
		validateOrderID(orderID),
		msgErr,
		validateCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return &ProductionUpdate{
		id:            id,
		orderID:       orderID,
		message:       msg,
		actorID:       strings.TrimSpace(actorID),
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}, nil
}

func (u *ProductionUpdate) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrProductionUpdateIsNotConstructed
	}
	return nil
}

func (u *ProductionUpdate) ID() kernel.UUID {
	return u.id
}

func (u *ProductionUpdate) OrderID() kernel.UUID {
	return u.orderID
}

func (u *ProductionUpdate) Message() string {
	return u.message
}

func (u *ProductionUpdate) ActorID() string {
	return u.actorID
}

func (u *ProductionUpdate) CreatedAt() time.Time {
	return u.createdAt
}
