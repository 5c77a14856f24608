package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/heizlog/heizlog/internal/config"
)

var (
	ErrUploadFailed     = errors.New("photo upload failed")
	ErrInvalidPhotoURL  = errors.New("invalid photo URL")
	ErrPhotoDeleteError = errors.New("photo delete failed")
)

// ObjectClient is the subset of the S3 API the photo store uses.
type ObjectClient interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// PhotoService stores maintenance photos in an S3-compatible bucket and hands
// out publicly resolvable URLs of the form <publicBaseURL>/<bucket>/<key>.
type PhotoService struct {
	client        ObjectClient
	bucket        string
	publicBaseURL string
}

func NewPhotoService(cfg *config.Config) (*PhotoService, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("failed to load S3 config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.S3Endpoint)
		o.UsePathStyle = true
	})

	return &PhotoService{
		client:        client,
		bucket:        cfg.S3Bucket,
		publicBaseURL: strings.TrimSuffix(cfg.S3PublicBaseURL, "/"),
	}, nil
}

// NewPhotoServiceWithClient wires an explicit client; used by tests.
func NewPhotoServiceWithClient(client ObjectClient, bucket, publicBaseURL string) *PhotoService {
	return &PhotoService{
		client:        client,
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
	}
}

// Upload stores the file under a key namespaced by the association id plus a
// uniqueness suffix, and returns the public URL.
func (s *PhotoService) Upload(ctx context.Context, associationID, filename, contentType string, data []byte) (string, error) {
	key := fmt.Sprintf("maintenances/%s-%d%s", associationID, time.Now().UnixNano(), filepath.Ext(filename))

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(s.bucket),
		Key:          aws.String(key),
		Body:         bytes.NewReader(data),
		ContentType:  aws.String(contentType),
		CacheControl: aws.String("max-age=3600"),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	return s.publicBaseURL + "/" + s.bucket + "/" + key, nil
}

// Delete derives the storage key by stripping the public prefix from the URL
// and removes the object. A URL outside this store's prefix is rejected.
func (s *PhotoService) Delete(ctx context.Context, url string) error {
	prefix := s.publicBaseURL + "/" + s.bucket + "/"
	if !strings.HasPrefix(url, prefix) {
		return ErrInvalidPhotoURL
	}
	key := strings.TrimPrefix(url, prefix)
	if key == "" {
		return ErrInvalidPhotoURL
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPhotoDeleteError, err)
	}
	return nil
}
