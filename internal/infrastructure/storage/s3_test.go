package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/pluscontrol/plus-control-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	objects    map[string][]byte
	listed     []types.Object
	listPrefix string
	putErr     error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[aws.ToString(in.Key)] = data
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	delete(f.objects, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func (f *fakeS3) ListObjectsV2(_ context.Context, in *s3.ListObjectsV2Input, _ ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	f.listPrefix = aws.ToString(in.Prefix)
	var contents []types.Object
	for _, obj := range f.listed {
		if strings.HasPrefix(aws.ToString(obj.Key), f.listPrefix) {
			contents = append(contents, obj)
		}
	}
	return &s3.ListObjectsV2Output{Contents: contents, IsTruncated: aws.Bool(false)}, nil
}

func TestS3Storage_UploadAndDelete(t *testing.T) {
	ctx := context.Background()
	fake := &fakeS3{objects: map[string][]byte{}}
	s := newS3Storage(fake, nil, &config.S3Config{Bucket: "evidence", PublicBaseURL: "https://cdn.example.com/"})

	require.NoError(t, s.Upload(ctx, "deliveries/q1.jpg", strings.NewReader("img"), 3, "image/jpeg"))
	assert.Equal(t, []byte("img"), fake.objects["deliveries/q1.jpg"])

	url, err := s.URL(ctx, "deliveries/q1.jpg")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/deliveries/q1.jpg", url)

	require.NoError(t, s.Delete(ctx, "deliveries/q1.jpg"))
	assert.Empty(t, fake.objects)
}

func TestS3Storage_UploadError(t *testing.T) {
	fake := &fakeS3{objects: map[string][]byte{}, putErr: errors.New("boom")}
	s := newS3Storage(fake, nil, &config.S3Config{Bucket: "evidence"})

	err := s.Upload(context.Background(), "x.jpg", strings.NewReader("x"), 1, "")
	assert.ErrorContains(t, err, "boom")
}

func TestS3Storage_PresignedURL(t *testing.T) {
	var gotTTL time.Duration
	presign := func(_ context.Context, bucket, key string, ttl time.Duration) (string, error) {
		gotTTL = ttl
		return "https://signed/" + bucket + "/" + key, nil
	}
	s := newS3Storage(&fakeS3{}, presign, &config.S3Config{Bucket: "evidence", PresignTTL: time.Hour})

	url, err := s.URL(context.Background(), "a.jpg")
	require.NoError(t, err)
	assert.Equal(t, "https://signed/evidence/a.jpg", url)
	assert.Equal(t, time.Hour, gotTTL)
}

func TestS3Storage_ListOlderThan(t *testing.T) {
	now := time.Now()
	fake := &fakeS3{listed: []types.Object{
		{Key: aws.String("deliveries/old.jpg"), Size: aws.Int64(10), LastModified: aws.Time(now.Add(-48 * time.Hour))},
		{Key: aws.String("deliveries/new.jpg"), Size: aws.Int64(20), LastModified: aws.Time(now)},
		{Key: aws.String("reports/x.pdf"), Size: aws.Int64(30), LastModified: aws.Time(now.Add(-48 * time.Hour))},
	}}
	s := newS3Storage(fake, nil, &config.S3Config{Bucket: "evidence"})

	objs, err := s.ListOlderThan(context.Background(), "deliveries/", now.Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, "deliveries/", fake.listPrefix)
	require.Len(t, objs, 1)
	assert.Equal(t, "deliveries/old.jpg", objs[0].Path)
	assert.Equal(t, int64(10), objs[0].Size)
}
