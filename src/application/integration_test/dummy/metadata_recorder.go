package dummy

import (
	"context"
	"fasta-fetcher-workers/src/application/fasta/entity"
	"sync"
)

var _ entity.MetadataRecorder = &MetadataRecorder{}

func NewDummyMetadataRecorder() *MetadataRecorder {
	return &MetadataRecorder{
		Records: make(map[string]entity.DownloadRecord),
	}
}

// MetadataRecorder keeps the latest record per identifier, like the DynamoDB table.
type MetadataRecorder struct {
	Unavailable bool
	Records     map[string]entity.DownloadRecord

	mu sync.Mutex
}

func (m *MetadataRecorder) RecordDownload(_ context.Context, record entity.DownloadRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Unavailable {
		return NetworkFailure
	}

	m.Records[record.Identifier] = record
	return nil
}

func (m *MetadataRecorder) Get(identifier string) (entity.DownloadRecord, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	record, ok := m.Records[identifier]
	return record, ok
}
