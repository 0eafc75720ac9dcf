package storage

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryanrauch/restaurant-ai-landing/internal/config"
)

type fakeS3 struct {
	mu      sync.Mutex
	objects map[string]string
	types   map[string]string
	putErr  error
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: map[string]string{}, types: map[string]string{}}
}

func (f *fakeS3) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[aws.ToString(in.Key)] = string(data)
	f.types[aws.ToString(in.Key)] = aws.ToString(in.ContentType)
	return &s3.PutObjectOutput{ETag: aws.String(`"abc123"`)}, nil
}

func (f *fakeS3) HeadObject(ctx context.Context, in *s3.HeadObjectInput, _ ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.objects[aws.ToString(in.Key)]; !ok {
		return nil, &types.NotFound{}
	}
	return &s3.HeadObjectOutput{}, nil
}

func (f *fakeS3) DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewService_Disabled(t *testing.T) {
	svc, err := NewService(&config.Config{}, discard())
	require.NoError(t, err)
	assert.False(t, svc.Enabled())

	ctx := context.Background()
	_, err = svc.Upload(ctx, "index.html", strings.NewReader("x"), 1, UploadOptions{})
	assert.ErrorIs(t, err, ErrDisabled)
	_, err = svc.Exists(ctx, "index.html")
	assert.ErrorIs(t, err, ErrDisabled)
	assert.ErrorIs(t, svc.Delete(ctx, "index.html"), ErrDisabled)
}

func TestNewService_Configured(t *testing.T) {
	svc, err := NewService(&config.Config{Storage: config.StorageConfig{
		Endpoint:        "http://localhost:9000",
		AccessKeyID:     "minio",
		SecretAccessKey: "minio123",
		Region:          "us-east-1",
		Bucket:          "site",
	}}, discard())
	require.NoError(t, err)
	assert.True(t, svc.Enabled())
	assert.Equal(t, "site", svc.Bucket())
}

func TestService_UploadExistsDelete(t *testing.T) {
	fake := newFakeS3()
	svc := newService(fake, "site", discard())
	ctx := context.Background()

	res, err := svc.Upload(ctx, "v1/index.html", strings.NewReader("<html>"), 6, UploadOptions{ContentType: "text/html"})
	require.NoError(t, err)
	assert.Equal(t, &UploadResult{Key: "v1/index.html", Bucket: "site", ETag: "abc123", Size: 6}, res)
	assert.Equal(t, "<html>", fake.objects["v1/index.html"])
	assert.Equal(t, "text/html", fake.types["v1/index.html"])

	ok, err := svc.Exists(ctx, "v1/index.html")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, svc.Delete(ctx, "v1/index.html"))

	ok, err = svc.Exists(ctx, "v1/index.html")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestService_UploadError(t *testing.T) {
	fake := newFakeS3()
	fake.putErr = errors.New("access denied")
	svc := newService(fake, "site", discard())

	_, err := svc.Upload(context.Background(), "index.html", strings.NewReader("x"), 1, UploadOptions{})
	assert.ErrorContains(t, err, "upload failed")
	assert.ErrorIs(t, err, fake.putErr)
}

func TestObjectKey(t *testing.T) {
	tests := []struct {
		name    string
		prefix  string
		file    string
		want    string
		wantErr bool
	}{
		{"no prefix", "", "index.html", "index.html", false},
		{"prefix", "v1", "index.html", "v1/index.html", false},
		{"slashes trimmed", "/v1/", "/static/styles.css", "v1/static/styles.css", false},
		{"duplicate slashes", "a//b", "static//images/favicon.svg", "a/b/static/images/favicon.svg", false},
		{"windows separators", "", `static\robots.txt`, "static/robots.txt", false},
		{"parent segment", "v1", "../secret", "", true},
		{"empty name", "v1", "", "", true},
		{"root only", "v1", "/", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ObjectKey(tt.prefix, tt.file)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
