// Package storage keeps poster images in an S3-compatible bucket. Titles
// store either an external image URL or a key under PosterPrefix.
package storage

import (
	"context"
	"io"
	"mime"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PosterPrefix is the key prefix for stored poster images.
const PosterPrefix = "posters/"

const genericContentType = "application/octet-stream"

// PutObjectOptions describe an upload. Size is -1 when unknown.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo is what the store reports about a written object.
type ObjectInfo struct {
	Key         string
	Size        int64
	ETag        string
	ContentType string
}

// Storage is the poster bucket.
type Storage interface {
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	Delete(ctx context.Context, key string) error
	// PresignGet returns a URL that downloads key without credentials until
	// expiry passes.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// NewPosterKey returns a fresh key under PosterPrefix keeping the lower-cased
// extension of filename.
func NewPosterKey(filename string) string {
	return PosterPrefix + uuid.NewString() + strings.ToLower(path.Ext(filename))
}

// IsPosterKey reports whether a poster value is an object key rather than an
// external URL.
func IsPosterKey(poster string) bool {
	return strings.HasPrefix(poster, PosterPrefix)
}

// ContentType returns given unless it is empty or generic, in which case the
// type is guessed from the extension of key.
func ContentType(key, given string) string {
	if given != "" && given != genericContentType {
		return given
	}
	if ct := mime.TypeByExtension(path.Ext(key)); ct != "" {
		return ct
	}
	return genericContentType
}
