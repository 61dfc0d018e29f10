package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"bollybuzz-backend/internal/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

const presignExpiry = 15 * time.Minute

// PhotoStore keeps profile photos in a MinIO bucket. Clients upload
// directly through a presigned URL; the API only hands out URLs and
// removes replaced objects.
type PhotoStore struct {
	client    *minio.Client
	bucket    string
	publicURL string
	logger    *logrus.Logger
}

func NewPhotoStore(cfg *config.MinIOConfig, logger *logrus.Logger) (*PhotoStore, error) {
	endpoint := cfg.Endpoint
	endpoint = strings.TrimPrefix(endpoint, "https://")
	endpoint = strings.TrimPrefix(endpoint, "http://")

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"endpoint": endpoint,
		"bucket":   cfg.BucketName,
	}).Info("Photo store initialized")

	store := &PhotoStore{
		client:    client,
		bucket:    cfg.BucketName,
		publicURL: strings.TrimSuffix(cfg.PublicURL, "/"),
		logger:    logger,
	}

	if err := store.ensureBucket(context.Background()); err != nil {
		logger.WithError(err).Warn("Failed to configure photo bucket, continuing")
	}

	return store, nil
}

func (s *PhotoStore) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		s.logger.WithField("bucket", s.bucket).Info("Photo bucket created")
	}

	// Photos are public-read; uploads still require a presigned URL.
	policy := fmt.Sprintf(`{
		"Version": "2012-10-17",
		"Statement": [
			{
				"Effect": "Allow",
				"Principal": {"AWS": ["*"]},
				"Action": ["s3:GetObject"],
				"Resource": ["arn:aws:s3:::%s/*"]
			}
		]
	}`, s.bucket)

	if err := s.client.SetBucketPolicy(ctx, s.bucket, policy); err != nil {
		return fmt.Errorf("failed to set bucket policy: %w", err)
	}
	return nil
}

// PresignUpload returns a time-limited PUT URL for a new photo object
// and the public URL the profile should store once the upload completes.
func (s *PhotoStore) PresignUpload(ctx context.Context, filename string) (string, string, error) {
	ext := filepath.Ext(filename)
	objectPath := fmt.Sprintf("photos/%s%s", uuid.New().String(), ext)

	presigned, err := s.client.PresignedPutObject(ctx, s.bucket, objectPath, presignExpiry)
	if err != nil {
		s.logger.WithError(err).Error("Failed to generate presigned URL")
		return "", "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	publicURL := fmt.Sprintf("%s/%s", s.publicURL, objectPath)

	s.logger.WithFields(logrus.Fields{
		"object": objectPath,
		"expiry": presignExpiry,
	}).Info("Generated photo upload URL")

	return presigned.String(), publicURL, nil
}

// DeletePhoto removes the object behind a stored photo URL. URLs outside
// this bucket are left alone.
func (s *PhotoStore) DeletePhoto(photoURL string) error {
	prefix := s.publicURL + "/"
	if !strings.HasPrefix(photoURL, prefix) {
		return nil
	}
	objectPath := strings.TrimPrefix(photoURL, prefix)
	if idx := strings.Index(objectPath, "?"); idx != -1 {
		objectPath = objectPath[:idx]
	}

	err := s.client.RemoveObject(context.Background(), s.bucket, objectPath, minio.RemoveObjectOptions{})
	if err != nil {
		s.logger.WithError(err).WithField("object", objectPath).Error("Failed to delete photo")
		return fmt.Errorf("failed to delete photo: %w", err)
	}

	s.logger.WithField("object", objectPath).Info("Photo deleted")
	return nil
}
