package eventhub

import (
	"encoding/json"
	"time"
)

// Event types published to order rooms.
const (
	EventOrderUpdated            = "order.updated"
	EventTimelineEntryCreated    = "order.timeline.created"
	EventProductionUpdateCreated = "order.production.created"
	EventOrderLate               = "order.late"
)

// Event is what subscribers receive. Payload is marshalled once per publish and shared
// by every recipient.
type Event struct {
	Type        string          `json:"type"`
	Room        string          `json:"room"`
	Payload     json.RawMessage `json:"payload"`
	PublishedAt time.Time       `json:"publishedAt"`
}
