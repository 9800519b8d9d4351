package timeline

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"apparel/internal/core/domain/model/kernel"
	"apparel/internal/pkg/errs"
)

// MaxMessageLength bounds the message of entries and production updates, in runes.
const MaxMessageLength = 2000

var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry constructor")

// Kind classifies a timeline entry.
type Kind string

const (
	KindStatusChanged    Kind = "status_changed"
	KindPaymentConfirmed Kind = "payment_confirmed"
	KindNote             Kind = "note"
)

// ParseKind converts a label into a Kind.
func ParseKind(label string) (Kind, error) {
	switch k := Kind(label); k {
	case KindStatusChanged, KindPaymentConfirmed, KindNote:
		return k, nil
	}
	return "", errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%q is not a valid timeline kind", label))
}

// Entry is an immutable timeline record of an order.
type Entry struct {
	id        kernel.UUID
	orderID   kernel.UUID
	kind      Kind
	message   string
	actorID   string
	createdAt time.Time

	isConstructed bool
}

// NewEntry creates a timeline entry. actorID may be empty for system-generated entries.
func NewEntry(orderID kernel.UUID, kind Kind, message, actorID string, createdAt time.Time) (*Entry, error) {
	return RestoreEntry(kernel.NewUUID(), orderID, kind, message, actorID, createdAt)
}

// RestoreEntry rebuilds an entry read from storage.
func RestoreEntry(
	id, orderID kernel.UUID,
	kind Kind,
	message, actorID string,
	createdAt time.Time,
) (*Entry, error) {
	_, kindErr := ParseKind(string(kind))
	msg, msgErr := validateMessage(message)
	if err := errors.Join(
		id.Validate(),
		validateOrderID(orderID),
		kindErr,
		msgErr,
		validateCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return &Entry{
		id:            id,
		orderID:       orderID,
		kind:          kind,
		message:       msg,
		actorID:       strings.TrimSpace(actorID),
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}, nil
}

// StatusChangedMessage renders the message of an automatic status entry.
func StatusChangedMessage(from, to fmt.Stringer) string {
	return fmt.Sprintf("Status changed from %s to %s", from, to)
}

func (e *Entry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

func (e *Entry) ID() kernel.UUID {
	return e.id
}

func (e *Entry) OrderID() kernel.UUID {
	return e.orderID
}

func (e *Entry) Kind() Kind {
	return e.kind
}

func (e *Entry) Message() string {
	return e.message
}

func (e *Entry) ActorID() string {
	return e.actorID
}

func (e *Entry) CreatedAt() time.Time {
	return e.createdAt
}

func validateOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	return nil
}

func validateMessage(message string) (string, error) {
	msg := strings.TrimSpace(message)
	if msg == "" {
		return "", errs.NewValueIsRequiredError("message")
	}
	if n := len([]rune(msg)); n > MaxMessageLength {
		return "", errs.NewValueIsOutOfRangeError("message", n, 1, MaxMessageLength)
	}
	return msg, nil
}

func validateCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	return nil
}
