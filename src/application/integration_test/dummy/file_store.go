package dummy

import (
	"context"
	"fasta-fetcher-workers/src/application/cloud_storage/entity"
	"sync"
)

var _ entity.FileStore = &FileStore{}

func NewDummyFileStore() *FileStore {
	return &FileStore{
		Unavailable: false,
		State:       make(map[string][]byte),
	}
}

type FileStore struct {
	Unavailable bool
	State       map[string][]byte

	mu sync.Mutex
}

func (f *FileStore) GetFile(_ context.Context, url string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.Unavailable {
		return nil, NetworkFailure
	}

	content, ok := f.State[url]
	if !ok {
		return nil, NotFound
	}

	return append([]byte{}, content...), nil
}

func (f *FileStore) WriteFile(_ context.Context, url string, fileContent []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.Unavailable {
		return NetworkFailure
	}

	f.State[url] = append([]byte{}, fileContent...)

	return nil
}
