package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"agencyops/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeS3 struct {
	in   *s3.PutObjectInput
	body string
	err  error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.in = in
	b, _ := io.ReadAll(in.Body)
	f.body = string(b)
	return &s3.PutObjectOutput{}, f.err
}

func TestS3FileStore_Upload(t *testing.T) {
	fake := &fakeS3{}
	store := &S3FileStore{client: fake, bucket: "attachments", log: zap.NewNop()}

	key, err := store.Upload(context.Background(), "service-requests/sr1/a-b.png", strings.NewReader("png"), 3, "image/png")
	require.NoError(t, err)

	assert.Equal(t, "service-requests/sr1/a-b.png", key)
	assert.Equal(t, "attachments", *fake.in.Bucket)
	assert.Equal(t, "image/png", *fake.in.ContentType)
	assert.Equal(t, int64(3), *fake.in.ContentLength)
	assert.Equal(t, "png", fake.body)
}

func TestS3FileStore_DefaultsContentType(t *testing.T) {
	fake := &fakeS3{}
	store := &S3FileStore{client: fake, bucket: "attachments", log: zap.NewNop()}

	_, err := store.Upload(context.Background(), "k", strings.NewReader(""), 0, "")
	require.NoError(t, err)
	assert.Equal(t, "application/octet-stream", *fake.in.ContentType)
	assert.Nil(t, fake.in.ContentLength)
}

func TestS3FileStore_UploadError(t *testing.T) {
	store := &S3FileStore{client: &fakeS3{err: errors.New("denied")}, bucket: "attachments", log: zap.NewNop()}

	_, err := store.Upload(context.Background(), "k", strings.NewReader("x"), 1, "text/plain")
	assert.ErrorContains(t, err, "denied")
}

func TestNewS3FileStore_RequiresBucket(t *testing.T) {
	_, err := NewS3FileStore(context.Background(), config.StorageConfig{}, nil)
	assert.True(t, errors.Is(err, ErrBucketNotConfigured))
}
