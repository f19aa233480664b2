package blob

import (
	"context"
	"fmt"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"

	"github.com/chrisnmorrison/lms-italian-studies-department/internal/config"
	"github.com/chrisnmorrison/lms-italian-studies-department/internal/firebase"
)

// Object key namespaces. Video lectures and course banner images live under
// separate prefixes in the same bucket.
const (
	KindVideos = "videos"
	KindImages = "images"
)

// Uploader stores a binary object under a generated key and returns a durable
// retrieval URL. Superseded objects are never overwritten or removed.
type Uploader interface {
	Upload(ctx context.Context, kind, filename string, data []byte) (string, error)
}

type firebaseUploader struct {
	bucket     *storage.BucketHandle
	bucketName string
}

// NewFirebaseUploader creates an Uploader backed by the app's default
// Firebase storage bucket.
func NewFirebaseUploader() (Uploader, error) {
	client, err := firebase.App.Storage(firebase.Context)
	if err != nil {
		return nil, fmt.Errorf("Storage client error: %v", err)
	}

	bucket, err := client.DefaultBucket()
	if err != nil {
		return nil, fmt.Errorf("Storage bucket error: %v", err)
	}

	return &firebaseUploader{bucket: bucket, bucketName: config.Config.StorageBucket}, nil
}

func (u *firebaseUploader) Upload(ctx context.Context, kind, filename string, data []byte) (string, error) {
	// Random suffix keeps repeated uploads of the same filename from colliding.
	key := fmt.Sprintf("%v/%v_%v", kind, uuid.New().String(), filename)

	w := u.bucket.Object(key).NewWriter(ctx)
	if _, err := w.Write(data); err != nil {
		return "", fmt.Errorf("error writing object %v: %v", key, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("error finalizing object %v: %v", key, err)
	}

	if err := u.bucket.Object(key).ACL().Set(ctx, storage.AllUsers, storage.RoleReader); err != nil {
		return "", fmt.Errorf("error publishing object %v: %v", key, err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%v/%v", u.bucketName, key), nil
}
