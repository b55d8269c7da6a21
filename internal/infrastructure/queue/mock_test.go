package queue

import (
	"context"

	amqp "github.com/rabbitmq/amqp091-go"
)

type mockConnection struct {
	channelFunc func() (amqpChannel, error)
	closed      bool
	closeErr    error
}

func (m *mockConnection) Channel() (amqpChannel, error) {
	if m.channelFunc != nil {
		return m.channelFunc()
	}
	return &mockChannel{}, nil
}

func (m *mockConnection) Close() error {
	m.closed = true
	return m.closeErr
}

type declaredQueue struct {
	name string
	args amqp.Table
}

type mockChannel struct {
	queueDeclareFunc func(name string, args amqp.Table) error
	publishFunc      func(key string, msg amqp.Publishing) error
	deliveries       <-chan amqp.Delivery
	consumeErr       error
	qosErr           error
	closeErr         error

	declared  []declaredQueue
	published []amqp.Publishing
	prefetch  int
	closed    bool
}

func (m *mockChannel) QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error) {
	m.declared = append(m.declared, declaredQueue{name: name, args: args})
	if m.queueDeclareFunc != nil {
		if err := m.queueDeclareFunc(name, args); err != nil {
			return amqp.Queue{}, err
		}
	}
	return amqp.Queue{Name: name}, nil
}

func (m *mockChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	m.published = append(m.published, msg)
	if m.publishFunc != nil {
		return m.publishFunc(key, msg)
	}
	return nil
}

func (m *mockChannel) Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error) {
	if m.consumeErr != nil {
		return nil, m.consumeErr
	}
	return m.deliveries, nil
}

func (m *mockChannel) Qos(prefetchCount, prefetchSize int, global bool) error {
	m.prefetch = prefetchCount
	return m.qosErr
}

func (m *mockChannel) Close() error {
	m.closed = true
	return m.closeErr
}

// ackRecorder implements amqp.Acknowledger.
type ackRecorder struct {
	acked    bool
	nacked   bool
	requeued bool
}

func (a *ackRecorder) Ack(tag uint64, multiple bool) error {
	a.acked = true
	return nil
}

func (a *ackRecorder) Nack(tag uint64, multiple bool, requeue bool) error {
	a.nacked = true
	a.requeued = requeue
	return nil
}

func (a *ackRecorder) Reject(tag uint64, requeue bool) error {
	return a.Nack(tag, false, requeue)
}
