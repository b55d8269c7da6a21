package model

import (
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Video represents a published video document.
//
// Views and Likes are denormalized counters stored on the document itself.
// The channel statistics view sums them directly instead of joining likes.
type Video struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title        string        `bson:"title" json:"title"`
	Description  string        `bson:"description" json:"description"`
	VideoFile    string        `bson:"videoFile" json:"videoFile"`
	Thumbnail    string        `bson:"thumbnail" json:"thumbnail"`
	VideoFileKey string        `bson:"videoFileKey,omitempty" json:"-"`
	ThumbnailKey string        `bson:"thumbnailKey,omitempty" json:"-"`
	Duration     float64       `bson:"duration" json:"duration"`
	Views        int64         `bson:"views" json:"views"`
	Likes        int64         `bson:"likes" json:"likes"`
	IsPublished  bool          `bson:"isPublished" json:"isPublished"`
	Owner        bson.ObjectID `bson:"owner" json:"owner"`
	CreatedAt    time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// MediaAsset is a hosted media object referenced by a video.
type MediaAsset struct {
	URL string
	Key string
}

var (
	ErrEmptyTitle       = errors.New("title cannot be empty")
	ErrEmptyDescription = errors.New("description cannot be empty")
	ErrInvalidUserID    = errors.New("user ID cannot be empty")
	ErrTitleTooLong     = errors.New("title exceeds maximum length of 255 characters")
	ErrMissingMedia     = errors.New("video file and thumbnail are required")
)

const maxTitleLength = 255

// ValidateVideoDetails checks the user supplied title and description.
func ValidateVideoDetails(title, description string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	if strings.TrimSpace(description) == "" {
		return ErrEmptyDescription
	}
	if len(title) > maxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

// NewVideo creates a published Video owned by owner with zeroed counters.
func NewVideo(owner bson.ObjectID, title, description string, file, thumbnail MediaAsset, duration float64) (*Video, error) {
	if owner.IsZero() {
		return nil, ErrInvalidUserID
	}
	if err := ValidateVideoDetails(title, description); err != nil {
		return nil, err
	}
	if file.URL == "" || thumbnail.URL == "" {
		return nil, ErrMissingMedia
	}

	now := time.Now().UTC()
	return &Video{
		ID:           bson.NewObjectID(),
		Title:        title,
		Description:  description,
		VideoFile:    file.URL,
		VideoFileKey: file.Key,
		Thumbnail:    thumbnail.URL,
		ThumbnailKey: thumbnail.Key,
		Duration:     duration,
		IsPublished:  true,
		Owner:        owner,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// UpdateDetails replaces title and description after validation.
func (v *Video) UpdateDetails(title, description string) error {
	if err := ValidateVideoDetails(title, description); err != nil {
		return err
	}
	v.Title = title
	v.Description = description
	v.UpdatedAt = time.Now().UTC()
	return nil
}

// ReplaceThumbnail swaps the thumbnail and returns the storage key of the old one.
func (v *Video) ReplaceThumbnail(thumbnail MediaAsset) string {
	old := v.ThumbnailKey
	v.Thumbnail = thumbnail.URL
	v.ThumbnailKey = thumbnail.Key
	v.UpdatedAt = time.Now().UTC()
	return old
}

// TogglePublished flips the publish flag.
func (v *Video) TogglePublished() {
	v.IsPublished = !v.IsPublished
	v.UpdatedAt = time.Now().UTC()
}

// IsOwnedBy reports whether userID owns the video.
func (v *Video) IsOwnedBy(userID bson.ObjectID) bool {
	return v.Owner == userID
}

// MediaKeys returns the non-empty storage keys of the video's media objects.
func (v *Video) MediaKeys() []string {
	var keys []string
	for _, k := range []string{v.VideoFileKey, v.ThumbnailKey} {
		if k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

// VideoSummary is the short form of a video joined into other read models.
type VideoSummary struct {
	ID        bson.ObjectID `bson:"_id" json:"_id"`
	Title     string        `bson:"title" json:"title"`
	VideoFile string        `bson:"videoFile" json:"videoFile"`
	Thumbnail string        `bson:"thumbnail" json:"thumbnail"`
}
