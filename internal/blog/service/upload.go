package service

import (
	"context"
	"io"
	"path"
	"strings"

	"github.com/aussiebroadwan/ngxblog/pkg/blobx"
	"github.com/aussiebroadwan/ngxblog/pkg/slogx"
	"github.com/google/uuid"
)

// MaxUploadBytes bounds a single uploaded file.
const MaxUploadBytes = 20 << 20

type UploadService struct {
	// Blobs is nil when no object storage is configured.
	Blobs blobx.Store
}

// Upload stores the file under "<uuid>_<name>" and returns its public URL.
func (s *UploadService) Upload(ctx context.Context, filename, contentType string, body io.Reader, size int64) (string, error) {
	if s.Blobs == nil {
		return "", ErrStorageDisabled
	}

	key := uuid.NewString() + "_" + SanitizeFilename(filename)
	url, err := s.Blobs.Put(ctx, key, contentType, body, size)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to store upload", "key", key, "error", err)
		return "", err
	}

	slogx.FromContext(ctx).Info("file uploaded", "key", key, "bytes", size)
	return url, nil
}

// SanitizeFilename keeps the base name and replaces anything outside
// [A-Za-z0-9._-] with an underscore.
func SanitizeFilename(name string) string {
	name = path.Base(strings.ReplaceAll(name, `\`, "/"))
	if name == "." || name == "/" {
		name = ""
	}

	clean := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			return r
		}
		return '_'
	}, name)

	clean = strings.TrimLeft(clean, ".")
	if clean == "" {
		return "upload"
	}
	return clean
}
