/*
Package storage uploads and deletes avatar and attachment blobs in S3-compatible storage.
*/
package storage

import (
	"context"
	"io"
)

// ServiceConfig holds the configuration required to connect to the storage service.
type ServiceConfig struct {
	S3BucketName      string
	S3Endpoint        string
	S3AccessKeyID     string
	S3SecretAccessKey string

	// PublicBaseURL is prepended to object keys to form the URLs handed to clients.
	PublicBaseURL string
}

//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=../../mocks/mock_storage.go -package=mocks

// StorageService defines the public interface for the file storage service.
type StorageService interface {
	// Upload streams body to key and returns the public URL of the stored object.
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)

	// Delete removes the objects with the given keys. Missing objects are not an error.
	Delete(ctx context.Context, keys ...string) error

	// PublicURL returns the URL under which key is served.
	PublicURL(key string) string
}

// NewStorageService is the factory function for StorageService.
// It initializes and returns a concrete implementation based on the provided configuration.
func NewStorageService(ctx context.Context, cfg ServiceConfig) (StorageService, error) {
	// Currently, only S3 compatible implementations are supported.
	return newS3Client(ctx, cfg)
}
