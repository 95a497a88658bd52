package downloader

import (
	"context"
	cloudstorage "fasta-fetcher-workers/src/application/cloud_storage/entity"
	"fasta-fetcher-workers/src/application/cloud_storage/store"
	"fasta-fetcher-workers/src/application/fasta/entity"
	"fasta-fetcher-workers/src/lib/cerr"
	"fasta-fetcher-workers/src/lib/working_dir"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/apex/log"
)

const (
	DefaultBaseURL = "https://www.rcsb.org/fasta/entry"
	DefaultTimeout = 30 * time.Second

	mirrorPrefix = "fasta"
)

type Option func(*FastaDownloader)

func WithBaseURL(baseURL string) Option {
	return func(f *FastaDownloader) {
		f.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

func WithMetadataRecorder(recorder entity.MetadataRecorder) Option {
	return func(f *FastaDownloader) {
		f.recorder = recorder
	}
}

// WithMirror copies every written file to the bucket under fasta/<id>.fasta.
func WithMirror(fileStore cloudstorage.FileStore, bucketName string) Option {
	return func(f *FastaDownloader) {
		f.mirror = fileStore
		f.bucketName = bucketName
	}
}

func NewFastaDownloader(httpClient entity.HTTPClient, directory string, opts ...Option) (FastaDownloader, error) {
	workingDir, err := working_dir.NewWorkingDir(directory)
	if err != nil {
		return FastaDownloader{}, cerr.Field("directory", directory).Wrap(err).Error("Failed to ensure destination directory")
	}

	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}

	downloader := FastaDownloader{
		httpClient: httpClient,
		workingDir: workingDir,
		baseURL:    DefaultBaseURL,
	}

	for _, opt := range opts {
		opt(&downloader)
	}

	return downloader, nil
}

type FastaDownloader struct {
	httpClient entity.HTTPClient
	workingDir working_dir.WorkingDir
	baseURL    string

	recorder   entity.MetadataRecorder
	mirror     cloudstorage.FileStore
	bucketName string
}

func (f FastaDownloader) Directory() string {
	return f.workingDir.Root()
}

// FetchOne only returns an error for an invalid identifier. Download and write
// failures are logged and reported through the result.
func (f FastaDownloader) FetchOne(ctx context.Context, identifier string) (entity.Result, error) {
	if err := entity.ValidateIdentifier(identifier); err != nil {
		return entity.Result{}, err
	}

	sourceURL := f.sourceURL(identifier)
	result := f.fetch(ctx, identifier, sourceURL)
	f.record(ctx, result, sourceURL)

	return result, nil
}

// FetchMany validates the whole batch before fetching anything, then fetches
// each identifier in order regardless of earlier failures.
func (f FastaDownloader) FetchMany(ctx context.Context, identifiers []string) ([]entity.Result, error) {
	if err := entity.ValidateIdentifiers(identifiers); err != nil {
		return nil, err
	}

	results := make([]entity.Result, 0, len(identifiers))
	for _, identifier := range identifiers {
		result, err := f.FetchOne(ctx, identifier)
		if err != nil {
			return results, cerr.Field("identifier", identifier).Wrap(err).Error("Unexpected invalid identifier")
		}

		results = append(results, result)
	}

	return results, nil
}

func (f FastaDownloader) fetch(ctx context.Context, identifier string, sourceURL string) entity.Result {
	logger := log.WithField("identifier", identifier)
	result := entity.Result{Identifier: identifier}

	logger.WithField("source_url", sourceURL).Info("Downloading FASTA")
	content, err := f.download(ctx, sourceURL)
	if err != nil {
		logger.WithField("source_url", sourceURL).
			Error(fmt.Sprintf("Error downloading FASTA for %s: %s", identifier, err.Error()))
		result.Status = entity.TransportFailure
		result.Err = err
		return result
	}

	path := f.workingDir.FilePath(entity.FileName(identifier))
	if err := os.WriteFile(path, content, 0644); err != nil {
		logger.WithField("path", path).
			Error(fmt.Sprintf("Error writing file for %s: %s", identifier, err.Error()))
		result.Status = entity.PersistenceFailure
		result.Err = err
		return result
	}

	logger.WithField("path", path).WithField("bytes", len(content)).Info("Wrote FASTA file")
	result.Status = entity.Downloaded
	result.Path = path
	result.Bytes = len(content)

	f.mirrorFile(ctx, identifier, content)

	return result
}

func (f FastaDownloader) download(ctx context.Context, sourceURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sourceURL, nil)
	if err != nil {
		return nil, cerr.Wrap(err).Error("Failed to create request")
	}
	req.Header.Set("Accept", "text/plain")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, cerr.Wrap(err).Error("Failed to fetch FASTA from remote")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, cerr.Field("status_code", resp.StatusCode).
			Error(fmt.Sprintf("Unexpected response status %d", resp.StatusCode))
	}

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, cerr.Wrap(err).Error("Failed to read response body")
	}

	return content, nil
}

func (f FastaDownloader) mirrorFile(ctx context.Context, identifier string, content []byte) {
	if f.mirror == nil {
		return
	}

	destinationURL := store.ObjectURL(f.bucketName, mirrorPrefix+"/"+entity.FileName(identifier))
	if err := f.mirror.WriteFile(ctx, destinationURL, content); err != nil {
		cerr.Log(cerr.Field("identifier", identifier).Field("destination_url", destinationURL).
			Wrap(err).Error("Failed to mirror FASTA file to cloud storage"))
	}
}

func (f FastaDownloader) record(ctx context.Context, result entity.Result, sourceURL string) {
	if f.recorder == nil {
		return
	}

	record := entity.DownloadRecord{
		Identifier: result.Identifier,
		Status:     result.Status,
		Path:       result.Path,
		SourceURL:  sourceURL,
		Bytes:      result.Bytes,
		RecordedAt: time.Now().UTC(),
	}
	if result.Err != nil {
		record.Error = result.Err.Error()
	}

	if err := f.recorder.RecordDownload(ctx, record); err != nil {
		cerr.Log(cerr.Field("identifier", result.Identifier).Wrap(err).Error("Failed to record download metadata"))
	}
}

func (f FastaDownloader) sourceURL(identifier string) string {
	return f.baseURL + "/" + url.PathEscape(identifier)
}
