// Package media hosts uploaded video and image files in object storage.
package media

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/sohans1092004/Youtube-Backend-project/internal/domain/repository"
)

// Config holds configuration for the Uploader.
type Config struct {
	// KeyPrefix is prepended to every object key, e.g. "media".
	KeyPrefix string
}

const (
	videoFolder = "videos"
	imageFolder = "images"
)

// Uploader implements repository.MediaUploader on top of object storage.
// Video durations are read with the DurationReader; images have zero duration.
type Uploader struct {
	config  Config
	storage repository.ObjectStorage
	reader  DurationReader
}

var _ repository.MediaUploader = (*Uploader)(nil)

// NewUploader creates an Uploader. reader may be nil, in which case every
// upload reports a zero duration.
func NewUploader(cfg Config, storage repository.ObjectStorage, reader DurationReader) *Uploader {
	return &Uploader{
		config:  cfg,
		storage: storage,
		reader:  reader,
	}
}

// Upload stores the file at localPath and returns where it is served from.
// The local file is removed whether or not the upload succeeds.
func (u *Uploader) Upload(ctx context.Context, localPath string) (*repository.UploadedMedia, error) {
	defer u.removeLocal(localPath)

	if err := validateInput(localPath); err != nil {
		return nil, err
	}

	mtype, err := mimetype.DetectFile(localPath)
	if err != nil {
		return nil, fmt.Errorf("failed to detect content type: %w", err)
	}

	folder, ok := folderFor(mtype.String())
	if !ok {
		return nil, fmt.Errorf("%w: %s", repository.ErrUnsupportedMedia, mtype.String())
	}

	var duration float64
	if folder == videoFolder && u.reader != nil {
		duration, err = u.reader.Duration(ctx, localPath)
		if err != nil {
			slog.Warn("failed to read video duration",
				"path", localPath,
				"error", err,
			)
			duration = 0
		}
	}

	f, err := os.Open(localPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	key := u.buildKey(folder, mtype.Extension())
	if err := u.storage.Upload(ctx, key, f, info.Size(), mtype.String()); err != nil {
		return nil, fmt.Errorf("failed to upload media: %w", err)
	}

	return &repository.UploadedMedia{
		URL:      u.storage.URL(key),
		Key:      key,
		Duration: duration,
	}, nil
}

// Delete removes a previously uploaded object.
func (u *Uploader) Delete(ctx context.Context, key string) error {
	if err := u.storage.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete media %s: %w", key, err)
	}
	return nil
}

// buildKey returns {prefix}/{folder}/{uuid}{ext}.
func (u *Uploader) buildKey(folder, ext string) string {
	return path.Join(u.config.KeyPrefix, folder, uuid.NewString()+ext)
}

func (u *Uploader) removeLocal(localPath string) {
	if err := os.Remove(localPath); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to remove local upload", "path", localPath, "error", err)
	}
}

func folderFor(contentType string) (string, bool) {
	switch {
	case strings.HasPrefix(contentType, "video/"):
		return videoFolder, true
	case strings.HasPrefix(contentType, "image/"):
		return imageFolder, true
	default:
		return "", false
	}
}
