package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sohans1092004/Youtube-Backend-project/internal/domain/model"
	"github.com/sohans1092004/Youtube-Backend-project/internal/domain/repository"
	"github.com/sohans1092004/Youtube-Backend-project/internal/infrastructure/metrics"
)

const (
	// DefaultMaxRetries is the default maximum number of retry attempts before a task is dropped.
	DefaultMaxRetries = 3
)

// CleanupServiceConfig holds configuration for CleanupService.
type CleanupServiceConfig struct {
	// MaxRetries is the maximum number of retry attempts before a task is dropped.
	MaxRetries int
}

// DefaultCleanupServiceConfig returns the default configuration.
func DefaultCleanupServiceConfig() CleanupServiceConfig {
	return CleanupServiceConfig{
		MaxRetries: DefaultMaxRetries,
	}
}

// CleanupService removes everything that referenced a deleted video.
type CleanupService interface {
	// ProcessTask handles a cleanup task from the message queue.
	// Returns nil on success or permanent failure (max retries exceeded).
	// Returns error for transient failures that should trigger a retry.
	ProcessTask(ctx context.Context, task repository.CleanupTask) error
}

type cleanupService struct {
	comments  repository.CommentRepository
	likes     repository.LikeRepository
	playlists repository.PlaylistRepository
	uploader  repository.MediaUploader

	maxRetries int
}

// NewCleanupService creates a new CleanupService instance.
func NewCleanupService(
	comments repository.CommentRepository,
	likes repository.LikeRepository,
	playlists repository.PlaylistRepository,
	uploader repository.MediaUploader,
	cfg CleanupServiceConfig,
) CleanupService {
	return &cleanupService{
		comments:   comments,
		likes:      likes,
		playlists:  playlists,
		uploader:   uploader,
		maxRetries: cfg.MaxRetries,
	}
}

// ProcessTask cascades a video deletion. A retried task repeats every step;
// steps that already succeeded match nothing the second time.
//
// Order: likes on the video's comments, the comments, likes on the video,
// playlist entries, media objects.
func (s *cleanupService) ProcessTask(ctx context.Context, task repository.CleanupTask) error {
	logger := slog.With("video_id", task.VideoID.Hex(), "retry_count", task.RetryCount)

	// Max retries exceeded - drop the task and return nil (ack the message)
	if task.RetryCount >= s.maxRetries {
		metrics.CleanupTasksTotal.WithLabelValues(metrics.CleanupStatusFailed).Inc()
		logger.Error("giving up on video cleanup")
		return nil
	}

	if err := s.cascade(ctx, task); err != nil {
		metrics.CleanupTasksTotal.WithLabelValues(metrics.CleanupStatusRetry).Inc()
		logger.Warn("video cleanup failed", "error", err)
		return err
	}

	metrics.CleanupTasksTotal.WithLabelValues(metrics.CleanupStatusSuccess).Inc()
	logger.Info("video cleanup completed")
	return nil
}

func (s *cleanupService) cascade(ctx context.Context, task repository.CleanupTask) error {
	// Comment likes go before the comments so a retried task can still
	// find them through the comment IDs.
	commentIDs, err := s.comments.IDsByVideo(ctx, task.VideoID)
	if err != nil {
		return fmt.Errorf("find comments: %w", err)
	}
	if len(commentIDs) > 0 {
		if _, err := s.likes.DeleteByComments(ctx, commentIDs); err != nil {
			return fmt.Errorf("delete comment likes: %w", err)
		}
		if _, err := s.comments.DeleteByVideo(ctx, task.VideoID); err != nil {
			return fmt.Errorf("delete comments: %w", err)
		}
	}

	if _, err := s.likes.DeleteByTarget(ctx, model.VideoTarget(task.VideoID)); err != nil {
		return fmt.Errorf("delete video likes: %w", err)
	}

	if _, err := s.playlists.PullVideo(ctx, task.VideoID); err != nil {
		return fmt.Errorf("remove from playlists: %w", err)
	}

	for _, key := range task.MediaKeys {
		if err := s.uploader.Delete(ctx, key); err != nil && !errors.Is(err, repository.ErrObjectNotFound) {
			return fmt.Errorf("delete media: %w", err)
		}
	}

	return nil
}
