package publish

import (
	"fasta-fetcher-workers/src/lib/werror"

	"github.com/streadway/amqp"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

var _ Publisher = RabbitMQPublisher{}

//counterfeiter:generate . Publisher
type Publisher interface {
	Publish(msg amqp.Publishing) error
}

func NewRabbitMQPublisher(conn *amqp.Connection, queueName string) (RabbitMQPublisher, error) {
	channel, err := conn.Channel()
	if err != nil {
		return RabbitMQPublisher{}, werror.WrapError("Failed to create rabbit channel", err)
	}

	// declared here too so a sender started before any worker doesn't publish into the void
	if _, err := channel.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		_ = channel.Close()
		return RabbitMQPublisher{}, werror.WrapError("Failed to declare queue", err)
	}

	return RabbitMQPublisher{
		channel:   channel,
		queueName: queueName,
	}, nil
}

type RabbitMQPublisher struct {
	channel   *amqp.Channel
	queueName string
}

func (r RabbitMQPublisher) Publish(msg amqp.Publishing) error {
	msg.ContentType = "application/json"
	msg.DeliveryMode = amqp.Persistent
	if err := r.channel.Publish("", r.queueName, true, false, msg); err != nil {
		return werror.WrapError("Failed to publish message", err)
	}

	return nil
}

func (r RabbitMQPublisher) Close() error {
	return r.channel.Close()
}
