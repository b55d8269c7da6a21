package usecase

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/sync/singleflight"

	"github.com/sohans1092004/Youtube-Backend-project/internal/domain/model"
	"github.com/sohans1092004/Youtube-Backend-project/internal/infrastructure/cache"
	"github.com/sohans1092004/Youtube-Backend-project/internal/infrastructure/metrics"
)

// CachedVideoServiceConfig holds configuration for CachedVideoService.
type CachedVideoServiceConfig struct {
	// CacheTTL is the TTL for cached video documents.
	CacheTTL time.Duration
}

// DefaultCachedVideoServiceConfig returns the default configuration.
func DefaultCachedVideoServiceConfig() CachedVideoServiceConfig {
	return CachedVideoServiceConfig{
		CacheTTL: 5 * time.Minute,
	}
}

// cachedVideoService wraps VideoService with caching capabilities.
// It implements the decorator pattern to add caching without modifying the original service.
type cachedVideoService struct {
	delegate VideoService
	cache    cache.VideoCache
	sfGroup  singleflight.Group

	cacheTTL time.Duration
}

// NewCachedVideoService creates a new CachedVideoService wrapping the provided VideoService.
func NewCachedVideoService(
	delegate VideoService,
	videoCache cache.VideoCache,
	cfg CachedVideoServiceConfig,
) VideoService {
	return &cachedVideoService{
		delegate: delegate,
		cache:    videoCache,
		cacheTTL: cfg.CacheTTL,
	}
}

// PublishVideo delegates to the underlying service.
// New videos are cached on their first read.
func (s *cachedVideoService) PublishVideo(ctx context.Context, input PublishVideoInput) (*model.Video, error) {
	return s.delegate.PublishVideo(ctx, input)
}

// GetVideo retrieves a video with caching.
// Uses singleflight to prevent cache stampede on concurrent requests for the same video.
func (s *cachedVideoService) GetVideo(ctx context.Context, videoID bson.ObjectID) (*model.Video, error) {
	result, err, shared := s.sfGroup.Do(videoID.Hex(), func() (any, error) {
		return s.getVideoWithCache(ctx, videoID)
	})

	if shared {
		metrics.SingleflightRequestsTotal.WithLabelValues(metrics.SingleflightShared).Inc()
	} else {
		metrics.SingleflightRequestsTotal.WithLabelValues(metrics.SingleflightInitiated).Inc()
	}

	if err != nil {
		return nil, err
	}

	// Callers may mutate the result; hand out a copy of the shared value.
	video := *result.(*model.Video)
	return &video, nil
}

// getVideoWithCache implements the cache-aside pattern.
func (s *cachedVideoService) getVideoWithCache(ctx context.Context, videoID bson.ObjectID) (*model.Video, error) {
	video, err := s.cache.Get(ctx, videoID)
	if err != nil {
		// Log cache error but continue to database
		slog.Warn("cache get failed, falling back to database",
			"video_id", videoID.Hex(),
			"error", err,
		)
	}

	if video != nil {
		return video, nil // Cache hit
	}

	video, err = s.delegate.GetVideo(ctx, videoID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, video, s.cacheTTL); err != nil {
		slog.Warn("failed to cache video",
			"video_id", videoID.Hex(),
			"error", err,
		)
	}

	return video, nil
}

// UpdateVideo delegates and invalidates the cached document on success.
func (s *cachedVideoService) UpdateVideo(ctx context.Context, input UpdateVideoInput) (*model.Video, error) {
	video, err := s.delegate.UpdateVideo(ctx, input)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, input.VideoID, "update")
	return video, nil
}

// DeleteVideo delegates and invalidates the cached document on success.
func (s *cachedVideoService) DeleteVideo(ctx context.Context, videoID, userID bson.ObjectID) (*model.Video, error) {
	video, err := s.delegate.DeleteVideo(ctx, videoID, userID)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, videoID, "delete")
	return video, nil
}

// TogglePublish delegates and invalidates the cached document on success.
func (s *cachedVideoService) TogglePublish(ctx context.Context, videoID, userID bson.ObjectID) (*model.Video, error) {
	video, err := s.delegate.TogglePublish(ctx, videoID, userID)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, videoID, "toggle publish")
	return video, nil
}

// ListVideos is not cached; pages change with every upload.
func (s *cachedVideoService) ListVideos(ctx context.Context, q model.VideoQuery) (*model.VideoPage, error) {
	return s.delegate.ListVideos(ctx, q)
}

func (s *cachedVideoService) invalidate(ctx context.Context, videoID bson.ObjectID, op string) {
	// Log but don't fail - cache invalidation failure is non-critical
	if err := s.cache.Delete(ctx, videoID); err != nil {
		slog.Warn("failed to invalidate cache on "+op,
			"video_id", videoID.Hex(),
			"error", err,
		)
	}
}
