package rabbitmq_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"testing"
	"time"

	in "apparel/internal/adapters/in/rabbitmq"
	out "apparel/internal/adapters/out/rabbitmq"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const exchange = "apparel.events"

type published struct {
	room      string
	eventType string
	payload   string
}

type recordingHub struct {
	mu     sync.Mutex
	events []published
}

func (h *recordingHub) PublishRaw(room, eventType string, payload json.RawMessage) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, published{room: room, eventType: eventType, payload: string(payload)})
	return 1
}

func (h *recordingHub) snapshot() []published {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]published(nil), h.events...)
}

type MockConnection struct{ mock.Mock }

func (m *MockConnection) Channel() (out.Channel, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(out.Channel), args.Error(1)
}

func (m *MockConnection) Close() error   { return m.Called().Error(0) }
func (m *MockConnection) IsClosed() bool { return m.Called().Bool(0) }

type MockChannel struct{ mock.Mock }

func (m *MockChannel) ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error {
	return m.Called(name, kind, durable, autoDelete, internal, noWait, args).Error(0)
}

func (m *MockChannel) QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error) {
	ret := m.Called(name, durable, autoDelete, exclusive, noWait, args)
	return ret.Get(0).(amqp.Queue), ret.Error(1)
}

func (m *MockChannel) QueueBind(name, key, exchange string, noWait bool, args amqp.Table) error {
	return m.Called(name, key, exchange, noWait, args).Error(0)
}

func (m *MockChannel) PublishWithContext(
	ctx context.Context,
	exchange, key string,
	mandatory, immediate bool,
	msg amqp.Publishing,
) error {
	return m.Called(ctx, exchange, key, mandatory, immediate, msg).Error(0)
}

func (m *MockChannel) Consume(
	queue, consumer string,
	autoAck, exclusive, noLocal, noWait bool,
	args amqp.Table,
) (<-chan amqp.Delivery, error) {
	ret := m.Called(queue, consumer, autoAck, exclusive, noLocal, noWait, args)
	return ret.Get(0).(<-chan amqp.Delivery), ret.Error(1)
}

func (m *MockChannel) NotifyClose(receiver chan *amqp.Error) chan *amqp.Error {
	m.Called(receiver)
	return receiver
}

func (m *MockChannel) Close() error { return m.Called().Error(0) }

func consumingChannel(deliveries <-chan amqp.Delivery) *MockChannel {
	ch := &MockChannel{}
	ch.On("ExchangeDeclare", exchange, amqp.ExchangeFanout, true, false, false, false, amqp.Table(nil)).Return(nil)
	ch.On("QueueDeclare", "", false, true, true, false, amqp.Table(nil)).Return(amqp.Queue{Name: "amq.gen-1"}, nil)
	ch.On("QueueBind", "amq.gen-1", "", exchange, false, amqp.Table(nil)).Return(nil)
	ch.On("Consume", "amq.gen-1", "", true, true, false, false, amqp.Table(nil)).Return(deliveries, nil)
	ch.On("NotifyClose", mock.Anything).Return()
	ch.On("Close").Return(nil)
	return ch
}

func body(t *testing.T, msg out.Message) []byte {
	t.Helper()
	raw, err := json.Marshal(msg)
	require.NoError(t, err)
	return raw
}

func TestConsumer_Run_RepublishesForeignMessagesOnly(t *testing.T) {
	deliveries := make(chan amqp.Delivery, 4)
	deliveries <- amqp.Delivery{Body: body(t, out.Message{
		Origin: "instance-a", Room: "order:1", Type: "order.updated", Payload: json.RawMessage(`{"own":true}`),
	})}
	deliveries <- amqp.Delivery{Body: []byte("not json")}
	deliveries <- amqp.Delivery{Body: body(t, out.Message{Origin: "instance-b", Type: "order.updated"})}
	deliveries <- amqp.Delivery{Body: body(t, out.Message{
		Origin: "instance-b", Room: "order:2", Type: "order.late", Payload: json.RawMessage(`{"daysLate":3}`),
	})}

	ch := consumingChannel(deliveries)
	conn := &MockConnection{}
	conn.On("Channel").Return(ch, nil)

	hub := &recordingHub{}
	consumer := in.NewConsumer(conn, exchange, "instance-a", hub, slog.New(slog.DiscardHandler))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- consumer.Run(ctx) }()

	require.Eventually(t, func() bool { return len(hub.snapshot()) == 1 }, time.Second, 10*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("consumer did not stop after cancel")
	}

	events := hub.snapshot()
	require.Len(t, events, 1)
	assert.Equal(t, "order:2", events[0].room)
	assert.Equal(t, "order.late", events[0].eventType)
	assert.JSONEq(t, `{"daysLate":3}`, events[0].payload)
}

func TestConsumer_Run_ConnectionClosed_ReturnsError(t *testing.T) {
	conn := &MockConnection{}
	conn.On("Channel").Return(nil, out.ErrConnectionClosed).Once()

	consumer := in.NewConsumer(conn, exchange, "instance-a", &recordingHub{}, slog.New(slog.DiscardHandler))

	err := consumer.Run(context.Background())

	assert.ErrorIs(t, err, out.ErrConnectionClosed)
	conn.AssertExpectations(t)
}
