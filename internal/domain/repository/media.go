package repository

import "context"

// UploadedMedia describes a hosted media object.
type UploadedMedia struct {
	URL      string
	Key      string
	Duration float64 // seconds; zero for images
}

// MediaUploader hosts local files. Upload always removes the local file,
// whether or not the upload succeeded.
type MediaUploader interface {
	Upload(ctx context.Context, localPath string) (*UploadedMedia, error)
	Delete(ctx context.Context, key string) error
}
