package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/sohans1092004/Youtube-Backend-project/internal/domain/model"
)

// CommentRepository defines persistence and read-model operations for comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) error

	// GetByID returns ErrCommentNotFound if the comment does not exist.
	GetByID(ctx context.Context, id bson.ObjectID) (*model.Comment, error)

	// UpdateContent replaces the content and returns the updated comment.
	UpdateContent(ctx context.Context, id bson.ObjectID, content string) (*model.Comment, error)

	// Delete removes the comment. Returns ErrCommentNotFound if it does not exist.
	Delete(ctx context.Context, id bson.ObjectID) error

	// ListByVideo returns a newest-first page of a video's comments with the
	// author's public profile and the comment's like count.
	ListByVideo(ctx context.Context, videoID bson.ObjectID, page model.Page) ([]*model.CommentView, error)

	// IDsByVideo returns the IDs of every comment on a video.
	IDsByVideo(ctx context.Context, videoID bson.ObjectID) ([]bson.ObjectID, error)

	// DeleteByVideo removes every comment on a video and returns how many went.
	DeleteByVideo(ctx context.Context, videoID bson.ObjectID) (int64, error)
}
