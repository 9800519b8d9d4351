package commands

import (
	"errors"
	"time"

	"apparel/internal/core/domain/model/kernel"
	"apparel/internal/pkg/errs"
	"apparel/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand registers a checked-out order in submitted status.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, &productID, time.Now())
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, notifier, logger)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	productID *kernel.UUID
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the order identifier and creation instant.
// productID is optional.
func NewCreateOrderCommand(orderID kernel.UUID, productID *kernel.UUID, createdAt time.Time) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setProductID(productID),
		cmd.setCreatedAt(createdAt),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) ProductID() *kernel.UUID {
	return c.productID
}

func (c CreateOrderCommand) CreatedAt() time.Time {
	return c.createdAt
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setProductID(productID *kernel.UUID) error {
	if productID == nil {
		return nil
	}
	if err := productID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("productId", err)
	}

	p := *productID
	c.productID = &p
	return nil
}

func (c *CreateOrderCommand) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}

	c.createdAt = createdAt
	return nil
}
