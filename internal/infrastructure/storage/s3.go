package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pluscontrol/plus-control-api/internal/config"
	domainRepo "github.com/pluscontrol/plus-control-api/internal/domain/repository"
)

// s3API is the subset of *s3.Client the storage needs.
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	s3.ListObjectsV2APIClient
}

type presignFunc func(ctx context.Context, bucket, key string, ttl time.Duration) (string, error)

// S3Storage keeps evidence in an S3 compatible bucket.
type S3Storage struct {
	client        s3API
	presign       presignFunc
	bucket        string
	publicBaseURL string
	presignTTL    time.Duration
}

var _ domainRepo.EvidenceStorage = (*S3Storage)(nil)

// NewS3Client builds an S3 client from configuration. Static credentials are
// used when both keys are set, otherwise the default AWS chain applies.
func NewS3Client(ctx context.Context, cfg *config.S3Config) (*s3.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	}), nil
}

// NewS3Storage wraps client. Without a public base URL, retrieval URLs are presigned.
func NewS3Storage(client *s3.Client, cfg *config.S3Config) *S3Storage {
	presigner := s3.NewPresignClient(client)
	presign := func(ctx context.Context, bucket, key string, ttl time.Duration) (string, error) {
		req, err := presigner.PresignGetObject(ctx, &s3.GetObjectInput{
			Bucket: aws.String(bucket),
			Key:    aws.String(key),
		}, s3.WithPresignExpires(ttl))
		if err != nil {
			return "", err
		}
		return req.URL, nil
	}
	return newS3Storage(client, presign, cfg)
}

func newS3Storage(client s3API, presign presignFunc, cfg *config.S3Config) *S3Storage {
	ttl := cfg.PresignTTL
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &S3Storage{
		client:        client,
		presign:       presign,
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		presignTTL:    ttl,
	}
}

func (s *S3Storage) Upload(ctx context.Context, path string, body io.Reader, size int64, contentType string) error {
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(path),
		Body:   body,
	}
	if size > 0 {
		input.ContentLength = aws.Int64(size)
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	if _, err := s.client.PutObject(ctx, input); err != nil {
		return fmt.Errorf("put object %s: %w", path, err)
	}
	return nil
}

func (s *S3Storage) URL(ctx context.Context, path string) (string, error) {
	if s.publicBaseURL != "" {
		return s.publicBaseURL + "/" + strings.TrimPrefix(path, "/"), nil
	}
	if s.presign == nil {
		return "", errors.New("s3 storage has neither a public base url nor a presigner")
	}
	url, err := s.presign(ctx, s.bucket, path, s.presignTTL)
	if err != nil {
		return "", fmt.Errorf("presign %s: %w", path, err)
	}
	return url, nil
}

func (s *S3Storage) Delete(ctx context.Context, path string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(path),
	})
	if err != nil {
		return fmt.Errorf("delete object %s: %w", path, err)
	}
	return nil
}

func (s *S3Storage) ListOlderThan(ctx context.Context, prefix string, cutoff time.Time) ([]domainRepo.StoredObject, error) {
	input := &s3.ListObjectsV2Input{Bucket: aws.String(s.bucket)}
	if prefix != "" {
		input.Prefix = aws.String(prefix)
	}

	var out []domainRepo.StoredObject
	pages := s3.NewListObjectsV2Paginator(s.client, input)
	for pages.HasMorePages() {
		page, err := pages.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("list objects: %w", err)
		}
		for _, obj := range page.Contents {
			if obj.LastModified == nil || !obj.LastModified.Before(cutoff) {
				continue
			}
			out = append(out, domainRepo.StoredObject{
				Path:       aws.ToString(obj.Key),
				Size:       aws.ToInt64(obj.Size),
				ModifiedAt: *obj.LastModified,
			})
		}
	}
	return out, nil
}
