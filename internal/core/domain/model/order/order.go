package order

import (
	"errors"
	"time"

	"apparel/internal/core/domain/model/kernel"
	"apparel/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrPaymentAlreadyConfirmed is the cause reported when paidAt would be set a second time.
	ErrPaymentAlreadyConfirmed = errors.New("payment already confirmed")
)

// Order is the aggregate root for the scheduling-relevant part of a customer order.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Status is always one of the five pipeline statuses
//   - paidAt, once set, never changes
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	id        kernel.UUID
	productID *kernel.UUID
	status    Status
	createdAt time.Time
	paidAt    *time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewOrder creates a submitted order. productID is optional and selects the product
// lead-time override used for its schedule.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), &productID, time.Now())
//	if err != nil {
//	    return err
//	}
func NewOrder(id kernel.UUID, productID *kernel.UUID, createdAt time.Time) (*Order, error) {
	o := &Order{
		status:        Submitted,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setProductID(productID),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	o.updatedAt = o.createdAt
	return o, nil
}

// RestoreOrder rebuilds an order read from storage. Unlike NewOrder it accepts any valid
// status and tolerates a zero createdAt, which is reported later by the scheduler instead
// of hiding a corrupt row.
func RestoreOrder(
	id kernel.UUID,
	productID *kernel.UUID,
	status Status,
	createdAt time.Time,
	paidAt *time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		createdAt:     createdAt.UTC(),
		updatedAt:     updatedAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setProductID(productID),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	if paidAt != nil && !paidAt.IsZero() {
		p := paidAt.UTC()
		o.paidAt = &p
	}
	return o, nil
}

// Validate ensures the Order was built by a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	if o == nil || other == nil {
		return false
	}
	return o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

// ProductID returns the product the order was placed for, or nil.
func (o *Order) ProductID() *kernel.UUID {
	return o.productID
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// PaidAt returns the payment confirmation instant, or nil while unpaid.
func (o *Order) PaidAt() *time.Time {
	return o.paidAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// ConfirmPayment records the payment instant and advances a submitted order to paid.
// Orders already further along keep their status. A second confirmation fails.
func (o *Order) ConfirmPayment(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("paidAt")
	}
	if o.paidAt != nil {
		return errs.NewValueIsInvalidErrorWithCause("paidAt", ErrPaymentAlreadyConfirmed)
	}

	paid := at.UTC()
	o.paidAt = &paid
	if o.status == Submitted {
		o.status = Paid
	}
	o.updatedAt = paid
	return nil
}

// ChangeStatus is the administrative status write. Any valid status is accepted,
// including moving backwards; the previous status is returned so callers can tell an
// override from normal progress. When paidAt is given and the order has none yet it is
// recorded; a different paidAt on an already paid order is rejected.
func (o *Order) ChangeStatus(status Status, paidAt *time.Time, at time.Time) (Status, error) {
	if err := status.Validate(); err != nil {
		return Unknown, err
	}

	if paidAt != nil && !paidAt.IsZero() {
		p := paidAt.UTC()
		switch {
		case o.paidAt == nil:
			o.paidAt = &p
		case !o.paidAt.Equal(p):
			return Unknown, errs.NewValueIsInvalidErrorWithCause("paidAt", ErrPaymentAlreadyConfirmed)
		}
	}

	previous := o.status
	o.status = status
	if !at.IsZero() {
		o.updatedAt = at.UTC()
	}
	return previous, nil
}

// IsRegression reports whether moving from one status to another goes backwards in the pipeline.
func IsRegression(from, to Status) bool {
	return to < from
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setProductID(productID *kernel.UUID) error {
	if productID == nil {
		return nil
	}
	if err := productID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("productId", err)
	}
	p := *productID
	o.productID = &p
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt.UTC()
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
