package entity

import (
	"context"
	"net/http"
	"time"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . HTTPClient
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type DownloadRecord struct {
	Identifier string    `json:"identifier"`
	Status     Status    `json:"status"`
	Path       string    `json:"path"`
	SourceURL  string    `json:"source_url"`
	Bytes      int       `json:"bytes"`
	Error      string    `json:"error,omitempty"`
	RecordedAt time.Time `json:"recorded_at"`
}

//counterfeiter:generate . MetadataRecorder
type MetadataRecorder interface {
	RecordDownload(ctx context.Context, record DownloadRecord) error
}
