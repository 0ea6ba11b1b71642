package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"time"

	"tile-visualizer-be/pkg/storage"
)

// UploadBuckets is the category allow-list for the upload gateway.
var UploadBuckets = []string{"tiles", "homes"}

type IUploadService interface {
	Upload(ctx context.Context, userId, bucket string, file *multipart.FileHeader) (string, error)
}

type uploadService struct {
	store storage.ObjectStore
}

func NewUploadService(store storage.ObjectStore) IUploadService {
	return &uploadService{store: store}
}

func (s *uploadService) Upload(ctx context.Context, userId, bucket string, file *multipart.FileHeader) (string, error) {
	if !validBucket(bucket) {
		return "", ErrInvalidBucket
	}
	if file == nil || file.Size == 0 {
		return "", ErrFileRequired
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	// Caller-namespaced key; millis keep concurrent uploads from colliding.
	key := fmt.Sprintf("%s/%d%s", userId, time.Now().UnixMilli(), filepath.Ext(file.Filename))

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	// Single attempt, no compensation: if the caller's follow-up insert
	// fails the object stays behind.
	if err := s.store.Put(ctx, bucket, key, src, file.Size, contentType); err != nil {
		return "", err
	}

	return s.store.PublicURL(bucket, key), nil
}

func validBucket(bucket string) bool {
	for _, b := range UploadBuckets {
		if b == bucket {
			return true
		}
	}
	return false
}
