package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePutter struct {
	input *s3.PutObjectInput
	body  string
	etag  *string
	err   error
}

func (f *fakePutter) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.input = params
	b, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	f.body = string(b)
	return &s3.PutObjectOutput{ETag: f.etag}, nil
}

func TestUpload(t *testing.T) {
	putter := &fakePutter{etag: aws.String(`"d41d8cd98f00b204e9800998ecf8427e"`)}
	uploader := NewUploaderWithClient(putter, "tournament", "https://cdn.example.com/archive")

	result, err := uploader.Upload(context.Background(), "snapshots/a.json", "application/json", strings.NewReader(`{"ok":true}`))
	require.NoError(t, err)

	assert.Equal(t, "tournament", aws.ToString(putter.input.Bucket))
	assert.Equal(t, "snapshots/a.json", aws.ToString(putter.input.Key))
	assert.Equal(t, "application/json", aws.ToString(putter.input.ContentType))
	assert.Equal(t, `{"ok":true}`, putter.body)

	assert.Equal(t, "snapshots/a.json", result.Key)
	assert.Equal(t, "https://cdn.example.com/archive/snapshots/a.json", result.Location)
	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", result.ETag)
}

func TestUploadFailure(t *testing.T) {
	putErr := errors.New("access denied")
	uploader := NewUploaderWithClient(&fakePutter{err: putErr}, "tournament", "https://cdn.example.com")

	_, err := uploader.Upload(context.Background(), "k.json", "application/json", strings.NewReader("{}"))
	assert.ErrorIs(t, err, putErr)
	assert.Contains(t, err.Error(), "k.json")
}

func TestGetPublicURL(t *testing.T) {
	tests := []struct {
		base, key, want string
	}{
		{"https://cdn.example.com", "a/b.json", "https://cdn.example.com/a/b.json"},
		{"https://cdn.example.com/", "/a/b.json", "https://cdn.example.com/a/b.json"},
		{"https://cdn.example.com/archive", "x.json", "https://cdn.example.com/archive/x.json"},
		{"", "x.json", ""},
		{"https://cdn.example.com", "", ""},
	}
	for _, tt := range tests {
		u := NewUploaderWithClient(&fakePutter{}, "b", tt.base)
		assert.Equal(t, tt.want, u.GetPublicURL(tt.key), "base %q key %q", tt.base, tt.key)
	}
}

func TestNewCloudflareR2UploaderRequiresConfig(t *testing.T) {
	_, err := NewCloudflareR2Uploader(context.Background(), CloudflareR2UploaderConfig{AccountID: "acc"})
	assert.Error(t, err)

	u, err := NewCloudflareR2Uploader(context.Background(), CloudflareR2UploaderConfig{
		AccountID:       "acc",
		AccessKeyID:     "key",
		SecretAccessKey: "secret",
		BucketName:      "bucket",
		PublicBaseURL:   "https://cdn.example.com",
		Endpoint:        "http://127.0.0.1:9000",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/s.json", u.GetPublicURL("s.json"))
}
