package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"agencyops/internal/infrastructure/config"
	"agencyops/internal/infrastructure/database"
	"agencyops/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

var ErrBucketNotConfigured = errors.New("S3_BUCKET is required")

type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3FileStore keeps service request attachments in an S3 compatible bucket.
type S3FileStore struct {
	client s3API
	bucket string
	log    *zap.Logger
}

var _ interfaces.IFileStore = (*S3FileStore)(nil)

// NewS3FileStore connects to S3, or to a MinIO style endpoint with path style
// addressing when S3_ENDPOINT is set.
func NewS3FileStore(ctx context.Context, cfg config.StorageConfig, logger *zap.Logger) (*S3FileStore, error) {
	if cfg.Bucket == "" {
		return nil, ErrBucketNotConfigured
	}

	awsCfg, err := database.NewAWSConfig(ctx, cfg.Region, cfg.AccessKeyID, cfg.SecretAccessKey)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	if logger == nil {
		logger = zap.NewNop()
	}
	return &S3FileStore{client: client, bucket: cfg.Bucket, log: logger.Named("storage")}, nil
}

func (s *S3FileStore) Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	in := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	}
	if size > 0 {
		in.ContentLength = aws.Int64(size)
	}

	if _, err := s.client.PutObject(ctx, in); err != nil {
		s.log.Error("upload failed", zap.String("key", key), zap.Error(err))
		return "", fmt.Errorf("put object %s: %w", key, err)
	}
	s.log.Info("object stored", zap.String("bucket", s.bucket), zap.String("key", key), zap.Int64("size", size))
	return key, nil
}
