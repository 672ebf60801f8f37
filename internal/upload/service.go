// Package upload stores user files in Cloud Storage and returns their public URL.
package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

const DefaultMaxBytes = 25 << 20

var (
	ErrNoBucket = errors.New("file storage is not configured")
	ErrTooLarge = errors.New("file is too large")
)

var newGCSClientHook = func(ctx context.Context, credentialsFile string) (*storage.Client, error) {
	if credentialsFile != "" {
		return storage.NewClient(ctx, option.WithCredentialsFile(credentialsFile))
	}
	return storage.NewClient(ctx)
}

// Result is what the media list of a record stores for one file.
type Result struct {
	FileURL string `json:"file_url"`
	Type    string `json:"type"`
	Name    string `json:"name"`
}

type UploadService struct {
	Bucket          string
	CredentialsFile string
	MaxBytes        int64
}

// MediaType classifies a MIME type as image, audio, video or document.
func MediaType(contentType string) string {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	switch {
	case strings.HasPrefix(ct, "image/"):
		return "image"
	case strings.HasPrefix(ct, "audio/"):
		return "audio"
	case strings.HasPrefix(ct, "video/"):
		return "video"
	default:
		return "document"
	}
}

func (s *UploadService) Upload(ctx context.Context, filename, contentType string, size int64, r io.Reader) (*Result, error) {
	if s.Bucket == "" {
		return nil, ErrNoBucket
	}
	limit := s.MaxBytes
	if limit <= 0 {
		limit = DefaultMaxBytes
	}
	if size > limit {
		return nil, ErrTooLarge
	}

	client, err := newGCSClientHook(ctx, s.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("storage client: %w", err)
	}
	defer client.Close()

	// cancelling wctx before Close discards a partial object
	wctx, cancel := context.WithCancel(ctx)
	defer cancel()

	object := "uploads/" + uuid.NewString() + strings.ToLower(path.Ext(filename))
	w := client.Bucket(s.Bucket).Object(object).NewWriter(wctx)
	w.ContentType = contentType

	n, err := io.Copy(w, io.LimitReader(r, limit+1))
	if err != nil {
		cancel()
		_ = w.Close()
		return nil, fmt.Errorf("write object: %w", err)
	}
	if n > limit {
		cancel()
		_ = w.Close()
		return nil, ErrTooLarge
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("write object: %w", err)
	}

	return &Result{
		FileURL: fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.Bucket, object),
		Type:    MediaType(contentType),
		Name:    path.Base(filename),
	}, nil
}
