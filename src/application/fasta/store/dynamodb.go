package store

import (
	"context"
	"fasta-fetcher-workers/src/application/fasta/entity"
	"fasta-fetcher-workers/src/lib/cerr"
	"fasta-fetcher-workers/src/lib/env"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
)

var (
	tableName = "FastaDownloads"
	idField   = "identifier"
)

var _ entity.MetadataRecorder = DynamoDBRecorder{}

func NewDynamoDBRecorder(environment env.Environment) DynamoDBRecorder {
	dbSession := session.Must(session.NewSession())

	config := aws.NewConfig().WithRegion("us-east-2").WithCredentials(credentials.NewEnvCredentials())

	if environment == env.Development {
		config = config.WithEndpoint("http://localhost:8000")
	}

	return NewDynamoDBRecorderWithClient(dynamodb.New(dbSession, config))
}

func NewDynamoDBRecorderWithClient(client dynamodbiface.DynamoDBAPI) DynamoDBRecorder {
	return DynamoDBRecorder{
		dynamoDBClient: client,
	}
}

// DynamoDBRecorder keeps one item per identifier holding its latest attempt.
type DynamoDBRecorder struct {
	dynamoDBClient dynamodbiface.DynamoDBAPI
}

func (d DynamoDBRecorder) RecordDownload(ctx context.Context, record entity.DownloadRecord) error {
	errctx := cerr.Field("identifier", record.Identifier)

	item, err := recordToItem(record)
	if err != nil {
		return errctx.Wrap(err).Error("Failed to convert download record to DynamoDB item")
	}

	_, err = d.dynamoDBClient.PutItemWithContext(ctx, &dynamodb.PutItemInput{
		Item:      item,
		TableName: &tableName,
	})
	if err != nil {
		return errctx.Wrap(err).Error("Failed to put download record into DynamoDB")
	}

	return nil
}

func (d DynamoDBRecorder) GetRecord(ctx context.Context, identifier string) (entity.DownloadRecord, error) {
	consistentRead := true

	output, err := d.dynamoDBClient.GetItemWithContext(ctx, &dynamodb.GetItemInput{
		ConsistentRead: &consistentRead,
		Key:            makeKey(identifier),
		TableName:      &tableName,
	})
	if err != nil {
		return entity.DownloadRecord{}, cerr.Field("identifier", identifier).
			Wrap(err).Error("Failed to get download record from DynamoDB")
	}

	if output.Item == nil {
		return entity.DownloadRecord{}, cerr.Field("identifier", identifier).Error("No download record found")
	}

	record, err := itemToRecord(output.Item)
	if err != nil {
		return entity.DownloadRecord{}, cerr.Field("identifier", identifier).
			Wrap(err).Error("Failed to read download record item")
	}

	return record, nil
}

func makeKey(key string) map[string]*dynamodb.AttributeValue {
	attributeValue := dynamodb.AttributeValue{}
	attributeValue.SetS(key)
	return map[string]*dynamodb.AttributeValue{
		idField: &attributeValue,
	}
}
