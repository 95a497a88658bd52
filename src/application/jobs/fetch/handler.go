package fetch

import (
	"bytes"
	"context"
	"encoding/json"
	"fasta-fetcher-workers/src/application/fasta/entity"
	"fasta-fetcher-workers/src/application/publish"
	"fasta-fetcher-workers/src/application/worker"
	"fasta-fetcher-workers/src/lib/cerr"

	"github.com/apex/log"
	"github.com/streadway/amqp"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

var _ worker.MessageHandler = JobHandler{}

const JobType string = "fetch_fastas"

type JobParams struct {
	Identifiers []string `json:"identifiers"`
}

//counterfeiter:generate . BatchFetcher
type BatchFetcher interface {
	FetchMany(ctx context.Context, identifiers []string) ([]entity.Result, error)
}

func CreateJobMessage(identifiers []string) (amqp.Publishing, error) {
	if err := entity.ValidateIdentifiers(identifiers); err != nil {
		return amqp.Publishing{}, cerr.Wrap(err).Error("Refusing to create a job with invalid identifiers")
	}

	jsonBytes, err := json.Marshal(JobParams{Identifiers: identifiers})
	if err != nil {
		return amqp.Publishing{}, cerr.Wrap(err).Error("Failed to marshal job params")
	}

	return amqp.Publishing{
		Type: JobType,
		Body: jsonBytes,
	}, nil
}

// Enqueue publishes the identifiers as jobs of at most batchSize identifiers
// each and returns how many jobs were published.
func Enqueue(publisher publish.Publisher, identifiers []string, batchSize int) (int, error) {
	if batchSize <= 0 {
		return 0, cerr.Field("batch_size", batchSize).Wrap(entity.ErrInvalidInput).Error("Batch size must be positive")
	}

	if err := entity.ValidateIdentifiers(identifiers); err != nil {
		return 0, cerr.Wrap(err).Error("Refusing to enqueue invalid identifiers")
	}

	published := 0
	for start := 0; start < len(identifiers); start += batchSize {
		end := start + batchSize
		if end > len(identifiers) {
			end = len(identifiers)
		}

		job, err := CreateJobMessage(identifiers[start:end])
		if err != nil {
			return published, cerr.Field("batch_start", start).Wrap(err).Error("Failed to create fetch job")
		}

		if err := publisher.Publish(job); err != nil {
			return published, cerr.Field("batch_start", start).Wrap(err).Error("Failed to publish fetch job")
		}
		published++
	}

	return published, nil
}

func NewJobHandler(fetcher BatchFetcher) JobHandler {
	return JobHandler{
		fetcher: fetcher,
	}
}

type JobHandler struct {
	fetcher BatchFetcher
}

func (JobHandler) JobType() string {
	return JobType
}

// HandleMessage fails only on a malformed message. Individual download
// failures are already logged by the fetcher and only show up in the summary.
func (j JobHandler) HandleMessage(message []byte) error {
	params, err := unmarshalMessage(message)
	if err != nil {
		return cerr.Wrap(err).Error("Failed to read fetch job message")
	}

	results, err := j.fetcher.FetchMany(context.Background(), params.Identifiers)
	if err != nil {
		return cerr.Field("identifiers", params.Identifiers).Wrap(err).Error("Failed to fetch FASTA batch")
	}

	summary := entity.Summarize(results)
	log.WithFields(log.Fields{
		"total":               summary.Total,
		"downloaded":          summary.Downloaded,
		"transport_failure":   summary.TransportFailure,
		"persistence_failure": summary.PersistenceFailure,
		"failed":              summary.Failed,
	}).Info("Finished fetching FASTA batch")

	return nil
}

func unmarshalMessage(message []byte) (JobParams, error) {
	raw := struct {
		Identifiers json.RawMessage `json:"identifiers"`
	}{}

	if err := json.Unmarshal(message, &raw); err != nil {
		return JobParams{}, cerr.Field("message_body", string(message)).
			Wrap(err).Error("Failed to unmarshal message JSON")
	}

	errctx := cerr.Field("message_body", string(message))

	if len(raw.Identifiers) == 0 || bytes.Equal(raw.Identifiers, []byte("null")) {
		return JobParams{}, errctx.Wrap(entity.ErrInvalidInput).Error("Missing identifiers")
	}

	params := JobParams{}
	if err := json.Unmarshal(raw.Identifiers, &params.Identifiers); err != nil {
		return JobParams{}, errctx.Field("cause", err.Error()).
			Wrap(entity.ErrInvalidInput).Error("Identifiers must be a list of strings")
	}

	if err := entity.ValidateIdentifiers(params.Identifiers); err != nil {
		return JobParams{}, errctx.Wrap(err).Error("Invalid identifiers")
	}

	return params, nil
}
