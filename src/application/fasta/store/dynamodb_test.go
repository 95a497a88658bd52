package store_test

import (
	"context"
	"errors"
	"fasta-fetcher-workers/src/application/fasta/entity"
	"fasta-fetcher-workers/src/application/fasta/store"
	"fasta-fetcher-workers/src/application/integration_test/dummy"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"

	. "github.com/onsi/gomega"

	. "github.com/onsi/ginkgo"
)

// memoryDynamoDB implements only the calls the recorder makes.
type memoryDynamoDB struct {
	dynamodbiface.DynamoDBAPI

	Unavailable bool
	Tables      map[string]map[string]map[string]*dynamodb.AttributeValue
}

func newMemoryDynamoDB() *memoryDynamoDB {
	return &memoryDynamoDB{
		Tables: map[string]map[string]map[string]*dynamodb.AttributeValue{},
	}
}

func (m *memoryDynamoDB) PutItemWithContext(_ aws.Context, input *dynamodb.PutItemInput, _ ...request.Option) (*dynamodb.PutItemOutput, error) {
	if m.Unavailable {
		return nil, dummy.NetworkFailure
	}

	table, ok := m.Tables[*input.TableName]
	if !ok {
		table = map[string]map[string]*dynamodb.AttributeValue{}
		m.Tables[*input.TableName] = table
	}

	table[*input.Item["identifier"].S] = input.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (m *memoryDynamoDB) GetItemWithContext(_ aws.Context, input *dynamodb.GetItemInput, _ ...request.Option) (*dynamodb.GetItemOutput, error) {
	if m.Unavailable {
		return nil, dummy.NetworkFailure
	}

	item := m.Tables[*input.TableName][*input.Key["identifier"].S]
	return &dynamodb.GetItemOutput{Item: item}, nil
}

var _ = Describe("DynamoDBRecorder", func() {
	var (
		ctx      context.Context
		client   *memoryDynamoDB
		recorder store.DynamoDBRecorder
		record   entity.DownloadRecord
	)

	BeforeEach(func() {
		ctx = context.Background()
		client = newMemoryDynamoDB()
		recorder = store.NewDynamoDBRecorderWithClient(client)

		record = entity.DownloadRecord{
			Identifier: "1ABC",
			Status:     entity.Downloaded,
			Path:       "/data/fasta/1ABC.fasta",
			SourceURL:  "https://www.rcsb.org/fasta/entry/1ABC",
			Bytes:      6,
			RecordedAt: time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC),
		}
	})

	It("writes the record into the downloads table", func() {
		Expect(recorder.RecordDownload(ctx, record)).To(Succeed())

		item := client.Tables["FastaDownloads"]["1ABC"]
		Expect(item).NotTo(BeNil())
		Expect(*item["status"].S).To(Equal("downloaded"))
		Expect(*item["bytes"].N).To(Equal("6"))
		Expect(item).NotTo(HaveKey("error"))
	})

	It("reads back what it wrote", func() {
		Expect(recorder.RecordDownload(ctx, record)).To(Succeed())

		readBack, err := recorder.GetRecord(ctx, "1ABC")
		Expect(err).NotTo(HaveOccurred())
		Expect(readBack).To(Equal(record))
	})

	It("keeps only the latest attempt", func() {
		Expect(recorder.RecordDownload(ctx, record)).To(Succeed())

		record.Status = entity.TransportFailure
		record.Error = "timeout"
		record.Path = ""
		Expect(recorder.RecordDownload(ctx, record)).To(Succeed())

		readBack, err := recorder.GetRecord(ctx, "1ABC")
		Expect(err).NotTo(HaveOccurred())
		Expect(readBack.Status).To(Equal(entity.TransportFailure))
		Expect(readBack.Error).To(Equal("timeout"))
	})

	It("refuses a record without an identifier", func() {
		record.Identifier = ""
		Expect(recorder.RecordDownload(ctx, record)).NotTo(Succeed())
	})

	It("fails on a missing record", func() {
		_, err := recorder.GetRecord(ctx, "NOPE")
		Expect(err).To(HaveOccurred())
	})

	It("surfaces client errors", func() {
		client.Unavailable = true

		err := recorder.RecordDownload(ctx, record)
		Expect(errors.Is(err, dummy.NetworkFailure)).To(BeTrue())
	})
})
