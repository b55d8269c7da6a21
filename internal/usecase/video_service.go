package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/sohans1092004/Youtube-Backend-project/internal/domain/model"
	"github.com/sohans1092004/Youtube-Backend-project/internal/domain/repository"
)

// PublishVideoInput contains the input parameters for publishing a video.
// VideoPath and ThumbnailPath are local temp files; they are consumed by the upload.
type PublishVideoInput struct {
	Owner         bson.ObjectID
	Title         string
	Description   string
	VideoPath     string
	ThumbnailPath string
}

// UpdateVideoInput contains the input parameters for updating a video.
// ThumbnailPath is optional; when set the thumbnail is replaced.
type UpdateVideoInput struct {
	VideoID       bson.ObjectID
	UserID        bson.ObjectID
	Title         string
	Description   string
	ThumbnailPath string
}

// VideoService defines the interface for video business logic operations.
type VideoService interface {
	// PublishVideo uploads the media files and stores a published video.
	PublishVideo(ctx context.Context, input PublishVideoInput) (*model.Video, error)

	// GetVideo retrieves video information by ID.
	GetVideo(ctx context.Context, videoID bson.ObjectID) (*model.Video, error)

	// UpdateVideo changes title, description and optionally the thumbnail.
	UpdateVideo(ctx context.Context, input UpdateVideoInput) (*model.Video, error)

	// DeleteVideo removes the video and schedules cleanup of everything
	// referencing it.
	DeleteVideo(ctx context.Context, videoID, userID bson.ObjectID) (*model.Video, error)

	// TogglePublish flips the publish flag of the video.
	TogglePublish(ctx context.Context, videoID, userID bson.ObjectID) (*model.Video, error)

	// ListVideos returns one page of a user's videos.
	ListVideos(ctx context.Context, q model.VideoQuery) (*model.VideoPage, error)
}

type videoService struct {
	repo     repository.VideoRepository
	users    repository.UserRepository
	uploader repository.MediaUploader
	queue    repository.MessageQueue
}

// NewVideoService creates a new VideoService instance.
func NewVideoService(
	repo repository.VideoRepository,
	users repository.UserRepository,
	uploader repository.MediaUploader,
	queue repository.MessageQueue,
) VideoService {
	return &videoService{
		repo:     repo,
		users:    users,
		uploader: uploader,
		queue:    queue,
	}
}

// PublishVideo uploads the video file, then the thumbnail, then stores the
// document. Objects already uploaded are removed when a later step fails.
func (s *videoService) PublishVideo(ctx context.Context, input PublishVideoInput) (*model.Video, error) {
	if err := model.ValidateVideoDetails(input.Title, input.Description); err != nil {
		return nil, err
	}
	if input.VideoPath == "" || input.ThumbnailPath == "" {
		return nil, model.ErrMissingMedia
	}

	file, err := s.uploader.Upload(ctx, input.VideoPath)
	if err != nil {
		return nil, fmt.Errorf("upload video file: %w", err)
	}

	thumbnail, err := s.uploader.Upload(ctx, input.ThumbnailPath)
	if err != nil {
		s.discard(ctx, file.Key)
		return nil, fmt.Errorf("upload thumbnail: %w", err)
	}

	video, err := model.NewVideo(
		input.Owner,
		input.Title,
		input.Description,
		model.MediaAsset{URL: file.URL, Key: file.Key},
		model.MediaAsset{URL: thumbnail.URL, Key: thumbnail.Key},
		file.Duration,
	)
	if err != nil {
		s.discard(ctx, file.Key, thumbnail.Key)
		return nil, err
	}

	if err := s.repo.Create(ctx, video); err != nil {
		s.discard(ctx, file.Key, thumbnail.Key)
		return nil, fmt.Errorf("create video: %w", err)
	}

	return video, nil
}

// GetVideo retrieves video information by ID.
func (s *videoService) GetVideo(ctx context.Context, videoID bson.ObjectID) (*model.Video, error) {
	return s.repo.GetByID(ctx, videoID)
}

// UpdateVideo validates the new details before uploading anything. The old
// thumbnail is removed only after the document points at the new one.
func (s *videoService) UpdateVideo(ctx context.Context, input UpdateVideoInput) (*model.Video, error) {
	video, err := s.ownedVideo(ctx, input.VideoID, input.UserID)
	if err != nil {
		return nil, err
	}

	if err := video.UpdateDetails(input.Title, input.Description); err != nil {
		return nil, err
	}

	var oldThumbnailKey, newThumbnailKey string
	if input.ThumbnailPath != "" {
		thumbnail, err := s.uploader.Upload(ctx, input.ThumbnailPath)
		if err != nil {
			return nil, fmt.Errorf("upload thumbnail: %w", err)
		}
		newThumbnailKey = thumbnail.Key
		oldThumbnailKey = video.ReplaceThumbnail(model.MediaAsset{URL: thumbnail.URL, Key: thumbnail.Key})
	}

	if err := s.repo.Update(ctx, video); err != nil {
		s.discard(ctx, newThumbnailKey)
		return nil, fmt.Errorf("update video: %w", err)
	}

	s.discard(ctx, oldThumbnailKey)
	return video, nil
}

// DeleteVideo removes the video document and publishes a cleanup task for
// its comments, likes, playlist entries and media objects. A failed publish
// is logged; the video itself is already gone.
func (s *videoService) DeleteVideo(ctx context.Context, videoID, userID bson.ObjectID) (*model.Video, error) {
	if _, err := s.ownedVideo(ctx, videoID, userID); err != nil {
		return nil, err
	}

	deleted, err := s.repo.Delete(ctx, videoID)
	if err != nil {
		return nil, err
	}

	task := repository.CleanupTask{
		VideoID:   deleted.ID,
		MediaKeys: deleted.MediaKeys(),
	}
	if err := s.queue.PublishCleanupTask(ctx, task); err != nil {
		slog.Warn("failed to publish cleanup task",
			"video_id", deleted.ID.Hex(),
			"error", err,
		)
	}

	return deleted, nil
}

// TogglePublish flips the publish flag of an owned video.
func (s *videoService) TogglePublish(ctx context.Context, videoID, userID bson.ObjectID) (*model.Video, error) {
	video, err := s.ownedVideo(ctx, videoID, userID)
	if err != nil {
		return nil, err
	}

	video.TogglePublished()
	if err := s.repo.Update(ctx, video); err != nil {
		return nil, fmt.Errorf("update video: %w", err)
	}

	return video, nil
}

// ListVideos returns ErrUserNotFound for an unknown user and
// ErrNoVideosFound when the requested page is empty.
func (s *videoService) ListVideos(ctx context.Context, q model.VideoQuery) (*model.VideoPage, error) {
	exists, err := s.users.Exists(ctx, q.UserID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}
	if !exists {
		return nil, repository.ErrUserNotFound
	}

	page, err := s.repo.ListByOwner(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list videos: %w", err)
	}
	if page == nil || len(page.Videos) == 0 {
		return nil, ErrNoVideosFound
	}

	return page, nil
}

func (s *videoService) ownedVideo(ctx context.Context, videoID, userID bson.ObjectID) (*model.Video, error) {
	video, err := s.repo.GetByID(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if !video.IsOwnedBy(userID) {
		return nil, ErrForbidden
	}
	return video, nil
}

// discard removes uploaded objects best effort.
func (s *videoService) discard(ctx context.Context, keys ...string) {
	for _, key := range keys {
		if key == "" {
			continue
		}
		if err := s.uploader.Delete(ctx, key); err != nil {
			slog.Warn("failed to remove uploaded media",
				"key", key,
				"error", err,
			)
		}
	}
}
