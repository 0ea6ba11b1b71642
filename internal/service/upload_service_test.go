package service

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeObjectStore captures the last Put and serves predictable URLs.
type fakeObjectStore struct {
	puts        int
	bucket      string
	key         string
	contentType string
	body        []byte
}

func (f *fakeObjectStore) Put(_ context.Context, bucket, key string, r io.Reader, _ int64, contentType string) error {
	f.puts++
	f.bucket = bucket
	f.key = key
	f.contentType = contentType
	body, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	f.body = body
	return nil
}

func (f *fakeObjectStore) PublicURL(bucket, key string) string {
	return "https://cdn.example.com/" + bucket + "/" + key
}

func multipartFile(t *testing.T, fieldName, fileName, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(fieldName, fileName)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	files := form.File[fieldName]
	require.Len(t, files, 1)
	return files[0]
}

func TestUploadHappyPath(t *testing.T) {
	store := &fakeObjectStore{}
	svc := NewUploadService(store)

	file := multipartFile(t, "file", "marble.jpg", "jpeg-bytes")
	url, err := svc.Upload(context.Background(), "user-1", "tiles", file)
	require.NoError(t, err)

	assert.Equal(t, 1, store.puts)
	assert.Equal(t, "tiles", store.bucket)
	assert.True(t, strings.HasPrefix(store.key, "user-1/"))
	assert.True(t, strings.HasSuffix(store.key, ".jpg"))
	assert.Equal(t, []byte("jpeg-bytes"), store.body)
	assert.Equal(t, "https://cdn.example.com/tiles/"+store.key, url)
}

func TestUploadInvalidBucket(t *testing.T) {
	store := &fakeObjectStore{}
	svc := NewUploadService(store)

	file := multipartFile(t, "file", "marble.jpg", "jpeg-bytes")
	_, err := svc.Upload(context.Background(), "user-1", "avatars", file)
	assert.ErrorIs(t, err, ErrInvalidBucket)
	assert.Zero(t, store.puts)
}

func TestUploadMissingFile(t *testing.T) {
	store := &fakeObjectStore{}
	svc := NewUploadService(store)

	_, err := svc.Upload(context.Background(), "user-1", "homes", nil)
	assert.ErrorIs(t, err, ErrFileRequired)
	assert.Zero(t, store.puts)
}

func TestUploadDefaultContentType(t *testing.T) {
	store := &fakeObjectStore{}
	svc := NewUploadService(store)

	file := multipartFile(t, "file", "plan", "raw")
	file.Header.Del("Content-Type")

	_, err := svc.Upload(context.Background(), "user-1", "homes", file)
	require.NoError(t, err)
	assert.Equal(t, "application/octet-stream", store.contentType)
	// No extension on the original name means none on the key either.
	assert.False(t, strings.Contains(store.key, "."))
}
