package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/sohans1092004/Youtube-Backend-project/internal/domain/model"
	"github.com/sohans1092004/Youtube-Backend-project/internal/domain/repository"
)

// CommentService defines comment operations on videos.
type CommentService interface {
	// ListComments returns a newest-first page of a video's comments.
	// An empty page is not an error.
	ListComments(ctx context.Context, videoID bson.ObjectID, page model.Page) ([]*model.CommentView, error)
	AddComment(ctx context.Context, videoID, userID bson.ObjectID, content string) (*model.Comment, error)
	UpdateComment(ctx context.Context, commentID, userID bson.ObjectID, content string) (*model.Comment, error)
	// DeleteComment removes the comment and then the likes referencing it.
	DeleteComment(ctx context.Context, commentID, userID bson.ObjectID) error
}

type commentService struct {
	comments repository.CommentRepository
	videos   repository.VideoRepository
	likes    repository.LikeRepository
}

// NewCommentService creates a new CommentService instance.
func NewCommentService(
	comments repository.CommentRepository,
	videos repository.VideoRepository,
	likes repository.LikeRepository,
) CommentService {
	return &commentService{
		comments: comments,
		videos:   videos,
		likes:    likes,
	}
}

func (s *commentService) ListComments(ctx context.Context, videoID bson.ObjectID, page model.Page) ([]*model.CommentView, error) {
	views, err := s.comments.ListByVideo(ctx, videoID, page)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	if views == nil {
		views = []*model.CommentView{}
	}
	return views, nil
}

// AddComment returns ErrVideoNotFound when the video does not exist.
func (s *commentService) AddComment(ctx context.Context, videoID, userID bson.ObjectID, content string) (*model.Comment, error) {
	comment, err := model.NewComment(videoID, userID, content)
	if err != nil {
		return nil, err
	}

	if _, err := s.videos.GetByID(ctx, videoID); err != nil {
		return nil, err
	}

	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	return comment, nil
}

func (s *commentService) UpdateComment(ctx context.Context, commentID, userID bson.ObjectID, content string) (*model.Comment, error) {
	comment, err := s.ownedComment(ctx, commentID, userID)
	if err != nil {
		return nil, err
	}

	if err := comment.Edit(content); err != nil {
		return nil, err
	}

	return s.comments.UpdateContent(ctx, commentID, comment.Content)
}

// DeleteComment runs two separate deletes. A failure removing the likes is
// logged; the comment is already gone and the likes are unreachable.
func (s *commentService) DeleteComment(ctx context.Context, commentID, userID bson.ObjectID) error {
	if _, err := s.ownedComment(ctx, commentID, userID); err != nil {
		return err
	}

	if err := s.comments.Delete(ctx, commentID); err != nil {
		return err
	}

	if _, err := s.likes.DeleteByTarget(ctx, model.CommentTarget(commentID)); err != nil {
		slog.Warn("failed to delete likes of comment",
			"comment_id", commentID.Hex(),
			"error", err,
		)
	}

	return nil
}

func (s *commentService) ownedComment(ctx context.Context, commentID, userID bson.ObjectID) (*model.Comment, error) {
	comment, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment.Owner != userID {
		return nil, ErrForbidden
	}
	return comment, nil
}
