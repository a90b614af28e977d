// File: /services/upload_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"sailshare-api/config"
)

// ErrStorageNotConfigured is returned when uploads are attempted without
// object storage credentials.
var ErrStorageNotConfigured = errors.New("object storage not configured")

// UploadResult is the structured outcome of a successful upload.
type UploadResult struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

// UploadService stores avatars, license documents and listing photos in an
// S3-compatible object store.
type UploadService struct {
	client *minio.Client
	bucket string
	base   string
}

func NewUploadService(cfg *config.Config) *UploadService {
	service := &UploadService{bucket: cfg.StorageBucket}

	if cfg.StorageAccessKey == "" || cfg.StorageSecretKey == "" {
		fmt.Println("Object storage not configured, uploads will be rejected")
		return service
	}

	client, err := minio.New(cfg.StorageEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.StorageAccessKey, cfg.StorageSecretKey, ""),
		Secure: cfg.StorageUseSSL,
	})
	if err != nil {
		fmt.Printf("Failed to initialize object storage client: %v\n", err)
		return service
	}

	scheme := "http"
	if cfg.StorageUseSSL {
		scheme = "https"
	}

	service.client = client
	service.base = fmt.Sprintf("%s://%s/%s", scheme, cfg.StorageEndpoint, cfg.StorageBucket)
	return service
}

// EnsureBucket creates the bucket if it does not exist yet.
func (us *UploadService) EnsureBucket(ctx context.Context) error {
	if us.client == nil {
		return ErrStorageNotConfigured
	}

	exists, err := us.client.BucketExists(ctx, us.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}
	if exists {
		return nil
	}

	if err := us.client.MakeBucket(ctx, us.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}
	return nil
}

// Upload stores a single object and returns its public URL and key.
func (us *UploadService) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (*UploadResult, error) {
	if us.client == nil {
		return nil, ErrStorageNotConfigured
	}

	_, err := us.client.PutObject(ctx, us.bucket, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload %s: %w", key, err)
	}

	return &UploadResult{
		URL: us.base + "/" + key,
		Key: key,
	}, nil
}

// Remove deletes an object; used when an avatar is replaced.
func (us *UploadService) Remove(ctx context.Context, key string) error {
	if us.client == nil {
		return ErrStorageNotConfigured
	}
	return us.client.RemoveObject(ctx, us.bucket, key, minio.RemoveObjectOptions{})
}

// ImportRemoteImage fetches an image from an external URL (an OAuth provider's
// profile photo) and stores a copy. Callers on best-effort paths are expected
// to swallow the error and fall back to the remote URL.
func (us *UploadService) ImportRemoteImage(ctx context.Context, remoteURL, key string) (*UploadResult, error) {
	if us.client == nil {
		return nil, ErrStorageNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, remoteURL, nil)
	if err != nil {
		return nil, err
	}

	httpClient := &http.Client{Timeout: 15 * time.Second}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch remote image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("remote image returned status %d", resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	return us.Upload(ctx, key, resp.Body, resp.ContentLength, contentType)
}
