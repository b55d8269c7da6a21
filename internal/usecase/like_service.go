package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/sohans1092004/Youtube-Backend-project/internal/domain/model"
	"github.com/sohans1092004/Youtube-Backend-project/internal/domain/repository"
	"github.com/sohans1092004/Youtube-Backend-project/internal/infrastructure/cache"
	"github.com/sohans1092004/Youtube-Backend-project/internal/infrastructure/metrics"
)

// LikeService defines like toggling and listing.
type LikeService interface {
	// ToggleLike likes target for userID, or removes the like if present.
	// The returned like is nil when the outcome is ToggleRemoved.
	ToggleLike(ctx context.Context, target model.LikeTarget, userID bson.ObjectID) (*model.Like, model.ToggleOutcome, error)

	// LikedVideos lists the videos a user has liked. Empty is not an error.
	LikedVideos(ctx context.Context, userID bson.ObjectID) ([]*model.LikedVideo, error)
}

type likeService struct {
	likes  repository.LikeRepository
	videos repository.VideoRepository
	cache  cache.VideoCache
}

// NewLikeService creates a new LikeService instance. videoCache may be nil;
// when set, a video's cached document is dropped after its like counter moves.
func NewLikeService(
	likes repository.LikeRepository,
	videos repository.VideoRepository,
	videoCache cache.VideoCache,
) LikeService {
	return &likeService{
		likes:  likes,
		videos: videos,
		cache:  videoCache,
	}
}

// ToggleLike flips the (user, target) edge. For videos the denormalized like
// counter follows the outcome; a failed counter update is logged only. When a
// concurrent toggle inserted the like first, the counter is left to that call.
func (s *likeService) ToggleLike(ctx context.Context, target model.LikeTarget, userID bson.ObjectID) (*model.Like, model.ToggleOutcome, error) {
	like, err := model.NewLike(target, userID)
	if err != nil {
		return nil, 0, err
	}

	outcome, err := s.likes.Toggle(ctx, like)
	if err != nil {
		return nil, 0, fmt.Errorf("toggle like: %w", err)
	}

	metrics.ToggleOperationsTotal.WithLabelValues(target.Kind.String(), outcome.String()).Inc()

	if target.Kind == model.TargetVideo && outcome != model.ToggleExisting {
		s.adjustVideoLikes(ctx, target.ID, outcome)
	}

	if outcome == model.ToggleRemoved {
		return nil, outcome, nil
	}
	return like, outcome, nil
}

func (s *likeService) adjustVideoLikes(ctx context.Context, videoID bson.ObjectID, outcome model.ToggleOutcome) {
	delta := int64(1)
	if outcome == model.ToggleRemoved {
		delta = -1
	}

	if err := s.videos.IncrementLikes(ctx, videoID, delta); err != nil {
		slog.Warn("failed to update video like counter",
			"video_id", videoID.Hex(),
			"delta", delta,
			"error", err,
		)
		return
	}

	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, videoID); err != nil {
		slog.Warn("failed to invalidate cache on like toggle",
			"video_id", videoID.Hex(),
			"error", err,
		)
	}
}

func (s *likeService) LikedVideos(ctx context.Context, userID bson.ObjectID) ([]*model.LikedVideo, error) {
	liked, err := s.likes.ListLikedVideos(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list liked videos: %w", err)
	}
	if liked == nil {
		liked = []*model.LikedVideo{}
	}
	return liked, nil
}
