package rabbitmq

import (
	"encoding/json"
	"time"
)

// Message is the body of a relayed event. Origin identifies the publishing instance so
// that it can ignore its own messages.
type Message struct {
	Origin    string          `json:"origin"`
	Room      string          `json:"room"`
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload"`
	RelayedAt time.Time       `json:"relayedAt"`
}
