package main

import (
	"fasta-fetcher-workers/src/application"
	"fasta-fetcher-workers/src/application/jobs/fetch"
	"fasta-fetcher-workers/src/application/publish"
	"fasta-fetcher-workers/src/lib/env"
	"fasta-fetcher-workers/src/lib/werror"
	"fmt"
	"os"
	"strconv"

	"github.com/apex/log"
	"github.com/streadway/amqp"
)

const defaultBatchSize = 50

// usage: sender <identifier> [identifier...]
func main() {
	application.ConfigureLogging(env.Development)

	identifiers := os.Args[1:]
	if len(identifiers) == 0 {
		fmt.Fprintln(os.Stderr, "usage: sender <identifier> [identifier...]")
		os.Exit(2)
	}

	if err := run(identifiers); err != nil {
		log.WithError(err).Error("Failed to enqueue identifiers")
		os.Exit(1)
	}
}

func run(identifiers []string) error {
	batchSize := defaultBatchSize
	if raw := os.Getenv("SENDER_BATCH_SIZE"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return werror.WrapErrorf(err, "Invalid SENDER_BATCH_SIZE %q", raw)
		}
		batchSize = parsed
	}

	conn, err := amqp.Dial(env.MustGet("RABBITMQ_URL"))
	if err != nil {
		return werror.WrapError("Failed to connect to RabbitMQ", err)
	}
	defer conn.Close()

	publisher, err := publish.NewRabbitMQPublisher(conn, application.QueueName())
	if err != nil {
		return werror.WrapError("Failed to create publisher", err)
	}
	defer publisher.Close()

	published, err := fetch.Enqueue(publisher, identifiers, batchSize)
	if err != nil {
		return werror.WrapError("Failed to enqueue fetch jobs", err)
	}

	log.WithField("identifiers", len(identifiers)).WithField("jobs", published).Info("Enqueued fetch jobs")
	return nil
}
