package eventhub

import (
	"fmt"
	"strings"
	"sync"

	"apparel/internal/core/domain/model/kernel"
	"apparel/internal/pkg/errs"
)

const orderRoomPrefix = "order:"

// OrderRoom returns the room key of an order, "order:<id>".
func OrderRoom(orderID kernel.UUID) string {
	return orderRoomPrefix + orderID.String()
}

// ParseOrderRoom validates a client supplied room key and returns the order it names.
func ParseOrderRoom(key string) (kernel.UUID, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError("room")
	}

	raw, ok := strings.CutPrefix(key, orderRoomPrefix)
	if !ok {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(
			"room",
			fmt.Errorf("%q does not start with %q", key, orderRoomPrefix),
		)
	}

	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("room", err)
	}
	return id, nil
}

type room struct {
	mu      sync.Mutex
	members map[*Subscriber]struct{}
}

func newRoom() *room {
	return &room{members: make(map[*Subscriber]struct{})}
}
