package store

import (
	"fasta-fetcher-workers/src/application/fasta/entity"
	"fasta-fetcher-workers/src/lib/cerr"
	"time"

	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
)

type dynamoDownloadRecord struct {
	Identifier string `dynamodbav:"identifier"`
	Status     string `dynamodbav:"status"`
	Path       string `dynamodbav:"path,omitempty"`
	SourceURL  string `dynamodbav:"source_url"`
	Bytes      int    `dynamodbav:"bytes"`
	Error      string `dynamodbav:"error,omitempty"`
	RecordedAt string `dynamodbav:"recorded_at"`
}

func recordToItem(record entity.DownloadRecord) (map[string]*dynamodb.AttributeValue, error) {
	if record.Identifier == "" {
		return nil, cerr.Error("Download record has no identifier")
	}

	item, err := dynamodbattribute.MarshalMap(dynamoDownloadRecord{
		Identifier: record.Identifier,
		Status:     string(record.Status),
		Path:       record.Path,
		SourceURL:  record.SourceURL,
		Bytes:      record.Bytes,
		Error:      record.Error,
		RecordedAt: record.RecordedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return nil, cerr.Wrap(err).Error("Failed to marshal download record")
	}

	return item, nil
}

func itemToRecord(item map[string]*dynamodb.AttributeValue) (entity.DownloadRecord, error) {
	dynamoRecord := dynamoDownloadRecord{}
	if err := dynamodbattribute.UnmarshalMap(item, &dynamoRecord); err != nil {
		return entity.DownloadRecord{}, cerr.Wrap(err).Error("Failed to unmarshal download record")
	}

	recordedAt, err := time.Parse(time.RFC3339Nano, dynamoRecord.RecordedAt)
	if err != nil {
		return entity.DownloadRecord{}, cerr.Field("recorded_at", dynamoRecord.RecordedAt).
			Wrap(err).Error("Failed to parse recorded_at")
	}

	return entity.DownloadRecord{
		Identifier: dynamoRecord.Identifier,
		Status:     entity.Status(dynamoRecord.Status),
		Path:       dynamoRecord.Path,
		SourceURL:  dynamoRecord.SourceURL,
		Bytes:      dynamoRecord.Bytes,
		Error:      dynamoRecord.Error,
		RecordedAt: recordedAt,
	}, nil
}
