// Package ws exposes the EventHub to browsers over websocket.
package ws

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"apparel/internal/eventhub"

	"golang.org/x/net/websocket"
)

const (
	maxFrameBytes          = 4 << 10
	maxDecodeErrorsPerConn = 5
)

// Handler upgrades requests to websocket connections. Each connection is one EventHub
// subscriber: client frames join and leave order rooms, hub events are written back.
type Handler struct {
	hub          *eventhub.Hub
	buffer       int
	writeTimeout time.Duration
	logger       *slog.Logger
	ws           websocket.Handler
}

func NewHandler(hub *eventhub.Hub, buffer int, writeTimeout time.Duration, logger *slog.Logger) *Handler {
	h := &Handler{
		hub:          hub,
		buffer:       buffer,
		writeTimeout: writeTimeout,
		logger:       logger.With("component", "ws_handler"),
	}
	h.ws = websocket.Handler(h.serve)
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.ws.ServeHTTP(w, r)
}

func (h *Handler) serve(conn *websocket.Conn) {
	ctx := conn.Request().Context()
	sub := h.hub.Subscribe(h.buffer)
	peer := &peer{conn: conn, writeTimeout: h.writeTimeout}
	log := h.logger.With("subscriber", sub.ID())
	log.DebugContext(ctx, "Websocket connected")

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		h.pump(peer, sub, log)
	}()

	h.read(peer, sub, log)

	h.hub.Disconnect(sub)
	wg.Wait()
	log.DebugContext(ctx, "Websocket disconnected", "dropped", sub.Dropped())
}

// pump writes hub events until the queue is closed. A failed write closes the connection,
// which ends the read loop and disconnects the subscriber. A queue closed by the hub, as on
// shutdown, closes the connection too.
func (h *Handler) pump(p *peer, sub *eventhub.Subscriber, log *slog.Logger) {
	defer func() { _ = p.conn.Close() }()

	for event := range sub.Events() {
		if err := p.write(event); err != nil {
			log.Warn("websocket write failed", "error", err, "room", event.Room, "type", event.Type)
			_ = p.conn.Close()
			for range sub.Events() {
			}
			return
		}
	}
}

func (h *Handler) read(p *peer, sub *eventhub.Subscriber, log *slog.Logger) {
	decodeErrors := 0
	for {
		var data []byte
		if err := websocket.Message.Receive(p.conn, &data); err != nil {
			if !errors.Is(err, io.EOF) {
				log.Debug("websocket read ended", "error", err)
			}
			return
		}

		if len(data) > maxFrameBytes {
			_ = p.writeError("INVALID_ARGUMENT", "frame too large")
			continue
		}

		var frame ClientFrame
		if err := json.Unmarshal(data, &frame); err != nil {
			decodeErrors++
			_ = p.writeError("INVALID_ARGUMENT", "invalid frame payload")
			if decodeErrors >= maxDecodeErrorsPerConn {
				return
			}
			continue
		}
		decodeErrors = 0

		switch frame.Type {
		case FrameSubscribe:
			h.subscribe(p, sub, frame)
		case FrameUnsubscribe:
			h.unsubscribe(p, sub, frame)
		default:
			_ = p.writeError("INVALID_ARGUMENT", "unsupported frame type")
		}
	}
}

func (h *Handler) subscribe(p *peer, sub *eventhub.Subscriber, frame ClientFrame) {
	room, ok := p.room(frame)
	if !ok {
		return
	}
	if err := h.hub.Join(sub, room); err != nil {
		_ = p.writeError("UNAVAILABLE", err.Error())
		return
	}
	_ = p.write(ServerFrame{Type: FrameSubscribed, Payload: RoomPayload{Room: room}})
}

func (h *Handler) unsubscribe(p *peer, sub *eventhub.Subscriber, frame ClientFrame) {
	room, ok := p.room(frame)
	if !ok {
		return
	}
	h.hub.Leave(sub, room)
	_ = p.write(ServerFrame{Type: FrameUnsubscribed, Payload: RoomPayload{Room: room}})
}

type peer struct {
	mu           sync.Mutex
	conn         *websocket.Conn
	writeTimeout time.Duration
}

func (p *peer) write(v any) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.writeTimeout > 0 {
		if err := p.conn.SetWriteDeadline(time.Now().Add(p.writeTimeout)); err != nil {
			return err
		}
	}
	return websocket.JSON.Send(p.conn, v)
}

func (p *peer) writeError(code, message string) error {
	return p.write(ServerFrame{Type: FrameError, Payload: ErrorPayload{Code: code, Message: message}})
}

// room extracts and validates the room of a subscribe or unsubscribe frame, answering
// with an error frame when it is unusable.
func (p *peer) room(frame ClientFrame) (string, bool) {
	var payload RoomPayload
	if err := json.Unmarshal(frame.Payload, &payload); err != nil {
		_ = p.writeError("INVALID_ARGUMENT", "invalid room payload")
		return "", false
	}
	id, err := eventhub.ParseOrderRoom(payload.Room)
	if err != nil {
		_ = p.writeError("INVALID_ARGUMENT", err.Error())
		return "", false
	}
	return eventhub.OrderRoom(id), true
}
