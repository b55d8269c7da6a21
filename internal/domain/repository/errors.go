package repository

import "errors"

var (
	// ErrVideoNotFound is returned when a video cannot be found.
	ErrVideoNotFound = errors.New("video not found")

	// ErrDuplicateVideo is returned when attempting to create a video that already exists.
	ErrDuplicateVideo = errors.New("video already exists")

	ErrCommentNotFound  = errors.New("comment not found")
	ErrPlaylistNotFound = errors.New("playlist not found")
	ErrUserNotFound     = errors.New("user not found")

	// ErrObjectNotFound is returned when a stored media object does not exist.
	ErrObjectNotFound = errors.New("object not found")

	// ErrUnsupportedMedia is returned when an uploaded file is neither a video nor an image.
	ErrUnsupportedMedia = errors.New("unsupported media type")

	// ErrBucketNotFound is returned when the configured bucket does not exist.
	ErrBucketNotFound = errors.New("bucket not found")
)
