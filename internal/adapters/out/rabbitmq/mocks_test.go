package rabbitmq_test

import (
	"context"

	"apparel/internal/adapters/out/rabbitmq"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/mock"
)

type MockConnection struct{ mock.Mock }

func (m *MockConnection) Channel() (rabbitmq.Channel, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(rabbitmq.Channel), args.Error(1)
}

func (m *MockConnection) Close() error {
	return m.Called().Error(0)
}

func (m *MockConnection) IsClosed() bool {
	return m.Called().Bool(0)
}

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
	if ret.Get(0) == nil {
		return nil, ret.Error(1)
	}
	return ret.Get(0).(<-chan amqp.Delivery), ret.Error(1)
}

func (m *MockChannel) NotifyClose(receiver chan *amqp.Error) chan *amqp.Error {
	m.Called(receiver)
	return receiver
}

func (m *MockChannel) Close() error {
	return m.Called().Error(0)
}
