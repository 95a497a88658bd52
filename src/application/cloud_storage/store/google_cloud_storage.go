package store

import (
	"context"
	"fasta-fetcher-workers/src/application/cloud_storage/entity"
	"fasta-fetcher-workers/src/lib/cerr"
	"fasta-fetcher-workers/src/lib/werror"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/apex/log"
	"google.golang.org/api/option"
)

var _ entity.FileStore = GoogleFileStore{}

const GOOGLE_STORAGE_HOST = "https://storage.googleapis.com"

const fastaContentType = "text/plain; charset=utf-8"

func ObjectURL(bucket string, objectPath string) string {
	return fmt.Sprintf("%s/%s/%s", GOOGLE_STORAGE_HOST, bucket, strings.TrimPrefix(objectPath, "/"))
}

// ParseObjectURL splits a URL built by ObjectURL back into bucket and object path.
func ParseObjectURL(fileURL string) (string, string, error) {
	if !strings.HasPrefix(fileURL, GOOGLE_STORAGE_HOST+"/") {
		return "", "", cerr.Field("file_url", fileURL).Error("File URL is not in the Google cloud storage format")
	}

	bucketAndPath := strings.TrimPrefix(fileURL, GOOGLE_STORAGE_HOST+"/")

	chunks := strings.SplitN(bucketAndPath, "/", 2)
	if len(chunks) != 2 || chunks[0] == "" || chunks[1] == "" {
		return "", "", cerr.Field("file_url", fileURL).Error("File URL is missing a bucket or object path")
	}

	return chunks[0], chunks[1], nil
}

type GoogleFileStore struct {
	storageClient *storage.Client
}

func NewGoogleFileStore(jsonKey string) (GoogleFileStore, error) {
	googleStorageClient, err := storage.NewClient(context.Background(), option.WithCredentialsJSON([]byte(jsonKey)))
	if err != nil {
		return GoogleFileStore{}, werror.WrapError("Failed to create Google Cloud Storage client", err)
	}

	return GoogleFileStore{
		storageClient: googleStorageClient,
	}, nil
}

func (g GoogleFileStore) GetFile(ctx context.Context, fileURL string) ([]byte, error) {
	bucket, objectPath, err := ParseObjectURL(fileURL)
	if err != nil {
		return nil, werror.WrapError("Couldn't extract object path from URL", err)
	}

	reader, err := g.objectHandle(bucket, objectPath).NewReader(ctx)
	if err != nil {
		return nil, werror.WrapError("Failed to open reader for stored FASTA", err)
	}
	defer reader.Close()

	contents, err := io.ReadAll(reader)
	if err != nil {
		return nil, werror.WrapError("Failed to read stored FASTA", err)
	}

	return contents, nil
}

func (g GoogleFileStore) WriteFile(ctx context.Context, fileURL string, fileContent []byte) (err error) {
	bucket, objectPath, err := ParseObjectURL(fileURL)
	if err != nil {
		return werror.WrapError("Couldn't extract object path from URL", err)
	}

	log.WithField("file_url", fileURL).Info("Uploading FASTA to cloud storage")

	writer := g.objectHandle(bucket, objectPath).NewWriter(ctx)
	writer.ContentType = fastaContentType
	defer func() {
		closeErr := writer.Close()
		if err == nil && closeErr != nil {
			err = werror.WrapError("Error occurred when closing the upload stream", closeErr)
		}
	}()

	if _, err = writer.Write(fileContent); err != nil {
		return werror.WrapError("Error occurred when uploading FASTA", err)
	}

	return nil
}

func (g GoogleFileStore) objectHandle(bucket string, objectPath string) *storage.ObjectHandle {
	return g.storageClient.Bucket(bucket).Object(objectPath)
}
