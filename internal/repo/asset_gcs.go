package repo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"cloud.google.com/go/storage"
)

const assetPrefix = "products"

// AssetStore uploads write-once binary assets and returns a durable public
// retrieval URL.
type AssetStore interface {
	Upload(ctx context.Context, asset Asset) (string, error)
}

// GCSAssetStore stores assets as objects in a Cloud Storage bucket under the
// "products/" prefix, namespaced by upload timestamp and original filename.
type GCSAssetStore struct {
	client *storage.Client
	bucket string
}

func NewGCSAssetStore(client *storage.Client, bucket string) *GCSAssetStore {
	return &GCSAssetStore{client: client, bucket: bucket}
}

func (s *GCSAssetStore) Upload(ctx context.Context, asset Asset) (string, error) {
	if s.client == nil {
		return "", errors.New("storage client is nil")
	}
	filename := strings.TrimSpace(asset.Filename)
	if filename == "" {
		return "", fmt.Errorf("asset upload: empty filename")
	}

	objectPath := fmt.Sprintf("%s/%d_%s", assetPrefix, time.Now().UTC().UnixNano(), filename)
	obj := s.client.Bucket(s.bucket).Object(objectPath)

	w := obj.NewWriter(ctx)
	if ct := strings.TrimSpace(asset.ContentType); ct != "" {
		w.ContentType = ct
	}
	_, err := io.Copy(w, asset.Body)
	if cerr := w.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		_ = obj.Delete(ctx) // best-effort cleanup
		return "", fmt.Errorf("asset upload %q: %w", objectPath, err)
	}

	return publicURL(s.bucket, objectPath), nil
}

func publicURL(bucket, objectPath string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucket, strings.TrimLeft(objectPath, "/"))
}
