package ws

import "encoding/json"

// Client frame types.
const (
	FrameSubscribe   = "subscribe"
	FrameUnsubscribe = "unsubscribe"
)

// Server acknowledgement frame types. Events use their own type, see eventhub.
const (
	FrameSubscribed   = "subscribed"
	FrameUnsubscribed = "unsubscribed"
	FrameError        = "error"
)

// ClientFrame is sent by a client, e.g. {"type":"subscribe","payload":{"room":"order:<id>"}}.
type ClientFrame struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// RoomPayload names the room of a subscribe or unsubscribe request and of its acknowledgement.
type RoomPayload struct {
	Room string `json:"room"`
}

// ErrorPayload explains why a client frame was rejected.
type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ServerFrame is an acknowledgement or error sent to a client.
type ServerFrame struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}
