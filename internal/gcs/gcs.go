// Package gcs fetches statement files from Google Cloud Storage. Application
// Default Credentials are assumed (gcloud auth application-default login).
package gcs

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"cloud.google.com/go/storage"
)

// Fetch downloads the bytes behind a gs://bucket/path URI.
func Fetch(ctx context.Context, gcsURI string) ([]byte, error) {
	bucketName, objectPath, err := parseURI(gcsURI)
	if err != nil {
		return nil, err
	}

	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("Fetch: creating storage client: %w", err)
	}
	defer client.Close()

	return FetchWithClient(ctx, client, bucketName, objectPath)
}

// FetchWithClient downloads an object using the provided storage client.
func FetchWithClient(ctx context.Context, client *storage.Client, bucketName, objectPath string) ([]byte, error) {
	rc, err := client.Bucket(bucketName).Object(objectPath).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("FetchWithClient: reading object %s/%s: %w", bucketName, objectPath, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("FetchWithClient: reading bytes: %w", err)
	}
	return data, nil
}

// Upload copies a local file into a bucket and returns its gs:// URI.
func Upload(ctx context.Context, bucketName, objectPath, filePath string) (string, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return "", fmt.Errorf("Upload: creating storage client: %w", err)
	}
	defer client.Close()

	return UploadWithClient(ctx, client, bucketName, objectPath, filePath)
}

// UploadWithClient uploads a local file using the provided storage client.
func UploadWithClient(ctx context.Context, client *storage.Client, bucketName, objectPath, filePath string) (string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("UploadWithClient: opening %s: %w", filePath, err)
	}
	defer f.Close()

	w := client.Bucket(bucketName).Object(objectPath).NewWriter(ctx)
	if _, err := io.Copy(w, f); err != nil {
		w.Close()
		return "", fmt.Errorf("UploadWithClient: writing object %s/%s: %w", bucketName, objectPath, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("UploadWithClient: finalizing object %s/%s: %w", bucketName, objectPath, err)
	}
	return fmt.Sprintf("gs://%s/%s", bucketName, objectPath), nil
}

// Filename extracts the object's base filename from a GCS URI, e.g.
// "gs://bucket/folder/statement.pdf" yields "statement.pdf". Detection uses
// it as the filename signal.
func Filename(gcsURI string) string {
	trimmed := strings.TrimPrefix(gcsURI, "gs://")
	parts := strings.SplitN(trimmed, "/", 2)
	if len(parts) < 2 {
		return trimmed
	}
	return path.Base(parts[1])
}

func parseURI(gcsURI string) (bucket, object string, err error) {
	if !strings.HasPrefix(gcsURI, "gs://") {
		return "", "", fmt.Errorf("parseURI: invalid GCS URI: %s", gcsURI)
	}
	parts := strings.SplitN(strings.TrimPrefix(gcsURI, "gs://"), "/", 2)
	if len(parts) != 2 || parts[1] == "" {
		return "", "", fmt.Errorf("parseURI: GCS URI has no object path: %s", gcsURI)
	}
	return parts[0], parts[1], nil
}
