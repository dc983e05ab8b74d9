package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/fitcore/users-service/internal/domain/ports"
	"github.com/fitcore/users-service/internal/infrastructure/config"
)

// MinioStorage implementa ports.ProfileStorage sobre um bucket MinIO/S3
type MinioStorage struct {
	client      *minio.Client
	bucket      string
	externalURL string
	logger      ports.Logger
}

// NewMinioStorage conecta ao MinIO e garante a existência do bucket
func NewMinioStorage(cfg *config.MinioConfig, logger ports.Logger) (*MinioStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", cfg.Bucket, err)
		}
		logger.Info("bucket created", "bucket", cfg.Bucket)
	}

	externalURL := cfg.ExternalURL
	if externalURL == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		externalURL = fmt.Sprintf("%s://%s", scheme, cfg.Endpoint)
	}

	return &MinioStorage{
		client:      client,
		bucket:      cfg.Bucket,
		externalURL: strings.TrimRight(externalURL, "/"),
		logger:      logger,
	}, nil
}

// UploadProfile envia a foto de perfil e retorna a chave do objeto
func (s *MinioStorage) UploadProfile(ctx context.Context, userID string, file io.Reader, size int64, contentType, filename string) (string, error) {
	objectKey := fmt.Sprintf("users/%s/%s-%s", userID, uuid.NewString(), filename)

	_, err := s.client.PutObject(ctx, s.bucket, objectKey, file, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload profile picture: %w", err)
	}

	s.logger.Info("profile picture uploaded", "bucket", s.bucket, "object", objectKey)
	return objectKey, nil
}

// ProfileURL monta a URL pública direta do objeto
func (s *MinioStorage) ProfileURL(objectKey string) string {
	return fmt.Sprintf("%s/%s/%s", s.externalURL, s.bucket, objectKey)
}

// ObjectKey extrai a chave do objeto a partir da URL pública.
// Retorna false quando a URL não aponta para o bucket deste storage.
func (s *MinioStorage) ObjectKey(profileURL string) (string, bool) {
	prefix := fmt.Sprintf("%s/%s/", s.externalURL, s.bucket)
	return strings.CutPrefix(profileURL, prefix)
}

// DeleteProfile remove o objeto do bucket
func (s *MinioStorage) DeleteProfile(ctx context.Context, objectKey string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, objectKey, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete profile picture: %w", err)
	}

	s.logger.Info("profile picture deleted", "bucket", s.bucket, "object", objectKey)
	return nil
}
