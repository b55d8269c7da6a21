package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/sohans1092004/Youtube-Backend-project/internal/domain/model"
)

// LikeRepository defines persistence operations for likes.
type LikeRepository interface {
	// Toggle removes the like of like.Target by like.LikedBy if one exists,
	// and stores like otherwise. The check and the write are a single
	// conditional operation per step; a concurrent insert of the same pair
	// is reported as ToggleAdded.
	Toggle(ctx context.Context, like *model.Like) (model.ToggleOutcome, error)

	// ListLikedVideos returns the video likes of a user, newest first.
	ListLikedVideos(ctx context.Context, userID bson.ObjectID) ([]*model.LikedVideo, error)

	// DeleteByTarget removes every like referencing target.
	DeleteByTarget(ctx context.Context, target model.LikeTarget) (int64, error)

	// DeleteByComments removes every like referencing one of the comments.
	DeleteByComments(ctx context.Context, commentIDs []bson.ObjectID) (int64, error)
}
