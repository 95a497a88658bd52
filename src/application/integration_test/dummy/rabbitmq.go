package dummy

import (
	"fasta-fetcher-workers/src/application/publish"
	"fasta-fetcher-workers/src/application/worker"
	"sync"

	"github.com/streadway/amqp"
)

var _ publish.Publisher = &RabbitMQ{}
var _ worker.MessageChannel = &RabbitMQ{}
var _ amqp.Acknowledger = &RabbitMQ{}

type RabbitMQ struct {
	Unavailable    bool
	MessageChannel chan amqp.Delivery

	mu          sync.Mutex
	nextTag     uint64
	acked       []uint64
	nacked      []uint64
	closedCount int
}

func NewRabbitMQ() *RabbitMQ {
	return &RabbitMQ{
		Unavailable:    false,
		MessageChannel: make(chan amqp.Delivery, 100),
	}
}

func (r *RabbitMQ) Publish(msg amqp.Publishing) error {
	if r.Unavailable {
		return NetworkFailure
	}

	r.mu.Lock()
	r.nextTag++
	tag := r.nextTag
	r.mu.Unlock()

	r.MessageChannel <- amqp.Delivery{
		Acknowledger:    r,
		DeliveryTag:     tag,
		ContentType:     msg.ContentType,
		ContentEncoding: msg.ContentEncoding,
		DeliveryMode:    msg.DeliveryMode,
		Timestamp:       msg.Timestamp,
		Type:            msg.Type,
		Body:            msg.Body,
	}
	return nil
}

func (r *RabbitMQ) Consume(_ string, _ string, _ bool, _ bool, _ bool, _ bool, _ amqp.Table) (<-chan amqp.Delivery, error) {
	if r.Unavailable {
		return nil, NetworkFailure
	}

	return r.MessageChannel, nil
}

func (r *RabbitMQ) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.closedCount++
	return nil
}

func (r *RabbitMQ) Ack(tag uint64, _ bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.acked = append(r.acked, tag)
	return nil
}

func (r *RabbitMQ) Nack(tag uint64, _ bool, _ bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nacked = append(r.nacked, tag)
	return nil
}

func (r *RabbitMQ) Reject(tag uint64, requeue bool) error {
	return r.Nack(tag, false, requeue)
}

func (r *RabbitMQ) AckCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.acked)
}

func (r *RabbitMQ) NackCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.nacked)
}

func (r *RabbitMQ) Closed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.closedCount > 0
}
