package commands

import (
	"errors"
	"time"

	"apparel/internal/core/domain/model/kernel"
	"apparel/internal/core/domain/model/timeline"
	"apparel/internal/pkg/guard"
)

var ErrAddTimelineEntryCommandIsNotConstructed = errors.New(
	"AddTimelineEntryCommand must be created via NewAddTimelineEntryCommand constructor",
)

// AddTimelineEntryCommand appends a manual entry to an order's timeline.
type AddTimelineEntryCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	kind    timeline.Kind
	message string
	actorID string
	at      time.Time

	guard guard.ConstructorGuard
}

func NewAddTimelineEntryCommand(
	orderID kernel.UUID,
	kind timeline.Kind,
	message, actorID string,
	at time.Time,
) (AddTimelineEntryCommand, error) {
	_, kindErr := timeline.ParseKind(string(kind))
	if err := errors.Join(
		orderID.Validate(),
		kindErr,
		requireTime("at", at),
	); err != nil {
		return AddTimelineEntryCommand{}, err
	}

	return AddTimelineEntryCommand{
		orderID: orderID,
		kind:    kind,
		message: message,
		actorID: actorID,
		at:      at,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c AddTimelineEntryCommand) Validate() error {
	return c.guard.Validate(ErrAddTimelineEntryCommandIsNotConstructed)
}

func (c AddTimelineEntryCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AddTimelineEntryCommand) Kind() timeline.Kind {
	return c.kind
}

func (c AddTimelineEntryCommand) Message() string {
	return c.message
}

func (c AddTimelineEntryCommand) ActorID() string {
	return c.actorID
}

func (c AddTimelineEntryCommand) At() time.Time {
	return c.at
}
