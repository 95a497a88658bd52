package job_router

import (
	"fasta-fetcher-workers/src/application/worker"
	"fasta-fetcher-workers/src/lib/cerr"

	"github.com/streadway/amqp"
)

var _ worker.MessageRouter = JobRouter{}

func NewJobRouter(handlers ...worker.MessageHandler) (JobRouter, error) {
	byType := map[string]worker.MessageHandler{}

	for _, handler := range handlers {
		jobType := handler.JobType()
		if _, exists := byType[jobType]; exists {
			return JobRouter{}, cerr.Field("job_type", jobType).Error("Duplicate handler for job type")
		}

		byType[jobType] = handler
	}

	return JobRouter{
		handlers: byType,
	}, nil
}

type JobRouter struct {
	handlers map[string]worker.MessageHandler
}

func (j JobRouter) HandleMessage(message amqp.Delivery) error {
	handler, ok := j.handlers[message.Type]
	if !ok {
		return cerr.Field("job_type", message.Type).Error("Unrecognized amqp job type")
	}

	if err := handler.HandleMessage(message.Body); err != nil {
		return cerr.Field("job_type", message.Type).
			Field("message_body", string(message.Body)).
			Wrap(err).Error("Failed to handle job")
	}

	return nil
}
