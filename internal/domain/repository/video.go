package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/sohans1092004/Youtube-Backend-project/internal/domain/model"
)

// VideoRepository defines the interface for video persistence operations.
// Implementations should be provided by the infrastructure layer (e.g., MongoDB).
type VideoRepository interface {
	// Create persists a new video entity.
	// Returns ErrDuplicateVideo if a video with the same ID already exists.
	Create(ctx context.Context, video *model.Video) error

	// GetByID retrieves a video by its unique identifier.
	// Returns nil and ErrVideoNotFound if the video does not exist.
	GetByID(ctx context.Context, id bson.ObjectID) (*model.Video, error)

	// Update persists the mutable fields of a video: details, thumbnail and
	// publish flag. Returns ErrVideoNotFound if the video does not exist.
	Update(ctx context.Context, video *model.Video) error

	// Delete removes a video and returns the removed document.
	// Returns ErrVideoNotFound if the video does not exist.
	Delete(ctx context.Context, id bson.ObjectID) (*model.Video, error)

	// IncrementLikes adds delta to the denormalized like counter.
	IncrementLikes(ctx context.Context, id bson.ObjectID, delta int64) error

	// ListByOwner returns one page of a user's videos, optionally filtered by
	// a case-insensitive title match and sorted by the requested field.
	ListByOwner(ctx context.Context, q model.VideoQuery) (*model.VideoPage, error)
}
