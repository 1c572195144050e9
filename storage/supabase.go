package storage

import (
	"context"
	"errors"
	"io"
	"strings"

	supabase "github.com/supabase-community/storage-go"
)

// Supabase uploads listing media to one public Supabase Storage bucket.
type Supabase struct {
	client *supabase.Client
	bucket string
}

// NewSupabase builds a client for projectURL (https://<ref>.supabase.co) with a service key.
func NewSupabase(projectURL, key, bucket string) (*Supabase, error) {
	if projectURL == "" || key == "" {
		return nil, errors.New("supabase url and key are required")
	}
	if bucket == "" {
		return nil, errors.New("supabase bucket is required")
	}
	endpoint := strings.TrimRight(projectURL, "/") + "/storage/v1"
	return &Supabase{
		client: supabase.NewClient(endpoint, key, nil),
		bucket: bucket,
	}, nil
}

// Upload writes r to objectPath (overwriting) and returns the public URL.
func (s *Supabase) Upload(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	upsert := true
	options := supabase.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	}
	if _, err := s.client.UploadFile(s.bucket, objectPath, r, options); err != nil {
		return "", err
	}

	return s.client.GetPublicUrl(s.bucket, objectPath).SignedURL, nil
}
