package order

import (
	"fmt"

	"apparel/internal/pkg/errs"
)

// Status is the position of an order in the production pipeline.
// Values are ordered: a greater value is further along the pipeline.
type Status int

const (
	// Unknown is the zero value and is never a valid status.
	Unknown Status = iota
	// Submitted orders have been checked out but not paid.
	Submitted
	// Paid orders are waiting for production to start.
	Paid
	// InProduction orders are being produced.
	InProduction
	// Shipping orders have left production and are with the carrier.
	Shipping
	// Delivered is terminal.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:      "unknown",
		Submitted:    "submitted",
		Paid:         "paid",
		InProduction: "in_production",
		Shipping:     "shipping",
		Delivered:    "delivered",
	}
}

// Statuses lists the valid statuses in pipeline order.
func Statuses() []Status {
	return []Status{Submitted, Paid, InProduction, Shipping, Delivered}
}

// ParseStatus converts a snake_case label into a Status.
func ParseStatus(label string) (Status, error) {
	for _, s := range Statuses() {
		if s.String() == label {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", label))
}

func (s Status) Validate() error {
	if s < Submitted || s > Delivered {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transition is expected.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// IsPaid reports whether the status implies a confirmed payment.
func (s Status) IsPaid() bool {
	return s >= Paid
}

// Next returns the following pipeline status. Delivered has no successor.
func (s Status) Next() (Status, bool) {
	if s < Submitted || s >= Delivered {
		return Unknown, false
	}
	return s + 1, true
}
