package worker

import "github.com/streadway/amqp"

type MessageHandler interface {
	JobType() string
	HandleMessage(message []byte) error
}

type MessageRouter interface {
	HandleMessage(message amqp.Delivery) error
}
