package supabase

import (
	"bytes"
	"context"
	"fmt"

	storage "github.com/supabase-community/storage-go"
	supa "github.com/supabase-community/supabase-go"
)

// PhotoStore wraps the Supabase storage bucket holding memory photos.
type PhotoStore struct {
	storage *storage.Client
	bucket  string
}

// NewPhotoStore creates a photo store over the given bucket.
func NewPhotoStore(client *supa.Client, bucket string) *PhotoStore {
	return &PhotoStore{
		storage: client.Storage,
		bucket:  bucket,
	}
}

// Upload stores a binary payload under the given object name.
func (s *PhotoStore) Upload(ctx context.Context, name string, data []byte, contentType string) error {
	_, err := s.storage.UploadFile(s.bucket, name, bytes.NewReader(data), storage.FileOptions{
		ContentType: &contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", name, err)
	}
	return nil
}

// Remove deletes a stored object. Callers treat failures as non-fatal;
// an undeleted object becomes an accepted orphan.
func (s *PhotoStore) Remove(ctx context.Context, name string) error {
	_, err := s.storage.RemoveFile(s.bucket, []string{name})
	if err != nil {
		return fmt.Errorf("failed to remove %s: %w", name, err)
	}
	return nil
}

// PublicURL returns the public retrieval URL for a stored object.
func (s *PhotoStore) PublicURL(name string) string {
	return s.storage.GetPublicUrl(s.bucket, name).SignedURL
}
