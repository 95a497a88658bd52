package worker

import (
	"fasta-fetcher-workers/src/lib/cerr"

	"github.com/apex/log"

	"github.com/streadway/amqp"
)

type MessageChannel interface {
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
	Close() error
}

type QueueWorker struct {
	channel   MessageChannel
	router    MessageRouter
	queueName string
}

func NewQueueWorker(channel MessageChannel, queueName string, router MessageRouter) QueueWorker {
	return QueueWorker{
		channel:   channel,
		queueName: queueName,
		router:    router,
	}
}

func NewQueueWorkerFromConnection(conn *amqp.Connection, queueName string, router MessageRouter) (QueueWorker, error) {
	rabbitChannel, err := conn.Channel()
	if err != nil {
		return QueueWorker{}, cerr.Wrap(err).Error("Failed to get channel")
	}

	// one unacked message at a time, so batches run strictly one after another per worker
	if err := rabbitChannel.Qos(1, 0, false); err != nil {
		_ = rabbitChannel.Close()
		return QueueWorker{}, cerr.Wrap(err).Error("Failed to set channel prefetch")
	}

	queue, err := rabbitChannel.QueueDeclare(
		queueName,
		true,
		false,
		false,
		false,
		nil,
	)

	if err != nil {
		_ = rabbitChannel.Close()
		return QueueWorker{}, cerr.Field("queue_name", queueName).Wrap(err).Error("Failed to declare queue")
	}

	return NewQueueWorker(rabbitChannel, queue.Name, router), nil
}

// Start blocks until the delivery stream closes.
func (q *QueueWorker) Start() error {
	log.WithField("queue_name", q.queueName).Info("Starting worker")

	defer q.channel.Close()

	messageStream, err := q.channel.Consume(
		q.queueName,
		"",
		false,
		false,
		false,
		false,
		nil,
	)

	if err != nil {
		return cerr.Field("queue_name", q.queueName).
			Wrap(err).Error("Failed to start consuming from channel")
	}

	for message := range messageStream {
		q.handle(message)
	}

	log.WithField("queue_name", q.queueName).Info("Delivery stream closed, stopping worker")
	return nil
}

func (q *QueueWorker) handle(message amqp.Delivery) {
	logger := log.WithField("message_type", message.Type)
	logger.Info("Handling message")

	err := q.router.HandleMessage(message)
	if err != nil {
		err = cerr.Field("message_type", message.Type).
			Wrap(err).Error("Failed to process message")

		cerr.Log(err)

		if err = message.Nack(false, false); err != nil {
			logger.Error("Failed to nack message")
		}
		return
	}

	logger.Info("Successfully processed message")
	if err = message.Ack(false); err != nil {
		logger.Error("Failed to ack message")
	}
}
