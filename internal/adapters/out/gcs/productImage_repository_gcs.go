// internal/adapters/out/gcs/productImage_repository_gcs.go
package gcs

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cloud.google.com/go/storage"
)

// ProductImageRepositoryGCS resolves catalog image object paths against the
// product image bucket.
type ProductImageRepositoryGCS struct {
	Client *storage.Client
	Bucket string
}

func NewProductImageRepositoryGCS(client *storage.Client, bucket string) *ProductImageRepositoryGCS {
	return &ProductImageRepositoryGCS{Client: client, Bucket: strings.TrimSpace(bucket)}
}

// ResolveURL verifies the object exists and returns its public URL.
// Missing objects resolve to ("", nil) so callers can keep the raw path.
func (r *ProductImageRepositoryGCS) ResolveURL(ctx context.Context, objectPath string) (string, error) {
	if r == nil || r.Client == nil {
		return "", errors.New("productImage_repository_gcs: storage client is nil")
	}
	bucket := strings.TrimSpace(r.Bucket)
	if bucket == "" {
		return "", errors.New("productImage_repository_gcs: bucket is empty")
	}
	obj := strings.TrimLeft(strings.TrimSpace(objectPath), "/")
	if obj == "" {
		return "", errors.New("productImage_repository_gcs: object path is empty")
	}

	_, err := r.Client.Bucket(bucket).Object(obj).Attrs(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return "", nil
		}
		return "", err
	}

	return PublicURL(bucket, obj), nil
}

// PublicURL builds a public GCS URL.
func PublicURL(bucket, objectPath string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s",
		strings.TrimSpace(bucket), strings.TrimLeft(strings.TrimSpace(objectPath), "/"))
}
