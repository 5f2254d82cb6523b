package s3

import (
	"context"
	"fmt"
	"io"
	"time"

	portsrepo "github.com/SscSPs/consultancy_admin/internal/core/ports/repositories"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// objectAPI is the subset of the S3 client used by the store.
type objectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// AttachmentStore keeps attachment bytes in a single S3 bucket.
type AttachmentStore struct {
	svc     objectAPI
	presign func(ctx context.Context, key string, expiry time.Duration) (string, error)
	bucket  string
}

var _ portsrepo.AttachmentStore = (*AttachmentStore)(nil)

// NewAttachmentStore loads the default AWS configuration and builds a store for bucket.
// A non-empty endpoint switches to path-style addressing, for S3-compatible services.
func NewAttachmentStore(ctx context.Context, bucket, region, endpoint string) (*AttachmentStore, error) {
	if bucket == "" {
		return nil, fmt.Errorf("s3 bucket cannot be empty")
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	svc := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})
	return newAttachmentStore(svc, s3.NewPresignClient(svc), bucket), nil
}

func newAttachmentStore(svc objectAPI, presignClient *s3.PresignClient, bucket string) *AttachmentStore {
	store := &AttachmentStore{svc: svc, bucket: bucket}
	store.presign = func(ctx context.Context, key string, expiry time.Duration) (string, error) {
		req, err := presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
			Bucket: aws.String(bucket),
			Key:    aws.String(key),
		}, s3.WithPresignExpires(expiry))
		if err != nil {
			return "", err
		}
		return req.URL, nil
	}
	return store
}

// PutObject uploads body under key.
func (s *AttachmentStore) PutObject(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	input := &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	if _, err := s.svc.PutObject(ctx, input); err != nil {
		return fmt.Errorf("failed to upload object %s: %w", key, err)
	}
	return nil
}

// DeleteObject removes key from the bucket. Deleting a missing key is not an error.
func (s *AttachmentStore) DeleteObject(ctx context.Context, key string) error {
	_, err := s.svc.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object %s: %w", key, err)
	}
	return nil
}

// GenerateDownloadURL creates a presigned GET URL for key.
func (s *AttachmentStore) GenerateDownloadURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	url, err := s.presign(ctx, key, expiry)
	if err != nil {
		return "", fmt.Errorf("failed to presign object %s: %w", key, err)
	}
	return url, nil
}
