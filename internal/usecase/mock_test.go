package usecase

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/sohans1092004/Youtube-Backend-project/internal/domain/model"
	"github.com/sohans1092004/Youtube-Backend-project/internal/domain/repository"
)

// mockVideoRepository provides a configurable mock for VideoRepository.
type mockVideoRepository struct {
	createFn         func(ctx context.Context, video *model.Video) error
	getByIDFn        func(ctx context.Context, id bson.ObjectID) (*model.Video, error)
	updateFn         func(ctx context.Context, video *model.Video) error
	deleteFn         func(ctx context.Context, id bson.ObjectID) (*model.Video, error)
	incrementLikesFn func(ctx context.Context, id bson.ObjectID, delta int64) error
	listByOwnerFn    func(ctx context.Context, q model.VideoQuery) (*model.VideoPage, error)
}

func (m *mockVideoRepository) Create(ctx context.Context, video *model.Video) error {
	if m.createFn != nil {
		return m.createFn(ctx, video)
	}
	return nil
}

func (m *mockVideoRepository) GetByID(ctx context.Context, id bson.ObjectID) (*model.Video, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, repository.ErrVideoNotFound
}

func (m *mockVideoRepository) Update(ctx context.Context, video *model.Video) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, video)
	}
	return nil
}

func (m *mockVideoRepository) Delete(ctx context.Context, id bson.ObjectID) (*model.Video, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil, repository.ErrVideoNotFound
}

func (m *mockVideoRepository) IncrementLikes(ctx context.Context, id bson.ObjectID, delta int64) error {
	if m.incrementLikesFn != nil {
		return m.incrementLikesFn(ctx, id, delta)
	}
	return nil
}

func (m *mockVideoRepository) ListByOwner(ctx context.Context, q model.VideoQuery) (*model.VideoPage, error) {
	if m.listByOwnerFn != nil {
		return m.listByOwnerFn(ctx, q)
	}
	return &model.VideoPage{CurrentPage: q.Page.Number, Videos: []*model.Video{}}, nil
}

// mockUserRepository provides a configurable mock for UserRepository.
type mockUserRepository struct {
	existsFn func(ctx context.Context, id bson.ObjectID) (bool, error)
}

func (m *mockUserRepository) Exists(ctx context.Context, id bson.ObjectID) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, id)
	}
	return true, nil
}

// mockCommentRepository provides a configurable mock for CommentRepository.
type mockCommentRepository struct {
	createFn        func(ctx context.Context, comment *model.Comment) error
	getByIDFn       func(ctx context.Context, id bson.ObjectID) (*model.Comment, error)
	updateContentFn func(ctx context.Context, id bson.ObjectID, content string) (*model.Comment, error)
	deleteFn        func(ctx context.Context, id bson.ObjectID) error
	listByVideoFn   func(ctx context.Context, videoID bson.ObjectID, page model.Page) ([]*model.CommentView, error)
	idsByVideoFn    func(ctx context.Context, videoID bson.ObjectID) ([]bson.ObjectID, error)
	deleteByVideoFn func(ctx context.Context, videoID bson.ObjectID) (int64, error)
}

func (m *mockCommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	if m.createFn != nil {
		return m.createFn(ctx, comment)
	}
	return nil
}

func (m *mockCommentRepository) GetByID(ctx context.Context, id bson.ObjectID) (*model.Comment, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, repository.ErrCommentNotFound
}

func (m *mockCommentRepository) UpdateContent(ctx context.Context, id bson.ObjectID, content string) (*model.Comment, error) {
	if m.updateContentFn != nil {
		return m.updateContentFn(ctx, id, content)
	}
	return &model.Comment{ID: id, Content: content}, nil
}

func (m *mockCommentRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockCommentRepository) ListByVideo(ctx context.Context, videoID bson.ObjectID, page model.Page) ([]*model.CommentView, error) {
	if m.listByVideoFn != nil {
		return m.listByVideoFn(ctx, videoID, page)
	}
	return nil, nil
}

func (m *mockCommentRepository) IDsByVideo(ctx context.Context, videoID bson.ObjectID) ([]bson.ObjectID, error) {
	if m.idsByVideoFn != nil {
		return m.idsByVideoFn(ctx, videoID)
	}
	return nil, nil
}

func (m *mockCommentRepository) DeleteByVideo(ctx context.Context, videoID bson.ObjectID) (int64, error) {
	if m.deleteByVideoFn != nil {
		return m.deleteByVideoFn(ctx, videoID)
	}
	return 0, nil
}

// mockLikeRepository provides a configurable mock for LikeRepository.
type mockLikeRepository struct {
	toggleFn           func(ctx context.Context, like *model.Like) (model.ToggleOutcome, error)
	listLikedVideosFn  func(ctx context.Context, userID bson.ObjectID) ([]*model.LikedVideo, error)
	deleteByTargetFn   func(ctx context.Context, target model.LikeTarget) (int64, error)
	deleteByCommentsFn func(ctx context.Context, commentIDs []bson.ObjectID) (int64, error)
}

func (m *mockLikeRepository) Toggle(ctx context.Context, like *model.Like) (model.ToggleOutcome, error) {
	if m.toggleFn != nil {
		return m.toggleFn(ctx, like)
	}
	return model.ToggleAdded, nil
}

func (m *mockLikeRepository) ListLikedVideos(ctx context.Context, userID bson.ObjectID) ([]*model.LikedVideo, error) {
	if m.listLikedVideosFn != nil {
		return m.listLikedVideosFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockLikeRepository) DeleteByTarget(ctx context.Context, target model.LikeTarget) (int64, error) {
	if m.deleteByTargetFn != nil {
		return m.deleteByTargetFn(ctx, target)
	}
	return 0, nil
}

func (m *mockLikeRepository) DeleteByComments(ctx context.Context, commentIDs []bson.ObjectID) (int64, error) {
	if m.deleteByCommentsFn != nil {
		return m.deleteByCommentsFn(ctx, commentIDs)
	}
	return 0, nil
}

// mockPlaylistRepository provides a configurable mock for PlaylistRepository.
type mockPlaylistRepository struct {
	createFn        func(ctx context.Context, playlist *model.Playlist) error
	getByIDFn       func(ctx context.Context, id bson.ObjectID) (*model.Playlist, error)
	getDetailFn     func(ctx context.Context, id bson.ObjectID) (*model.PlaylistDetail, error)
	listByOwnerFn   func(ctx context.Context, owner bson.ObjectID) ([]*model.Playlist, error)
	addVideoFn      func(ctx context.Context, id, videoID bson.ObjectID) (*model.Playlist, error)
	removeVideoFn   func(ctx context.Context, id, videoID bson.ObjectID) (*model.Playlist, error)
	updateDetailsFn func(ctx context.Context, id bson.ObjectID, name, description string) (*model.Playlist, error)
	deleteFn        func(ctx context.Context, id bson.ObjectID) (*model.Playlist, error)
	pullVideoFn     func(ctx context.Context, videoID bson.ObjectID) (int64, error)
}

func (m *mockPlaylistRepository) Create(ctx context.Context, playlist *model.Playlist) error {
	if m.createFn != nil {
		return m.createFn(ctx, playlist)
	}
	return nil
}

func (m *mockPlaylistRepository) GetByID(ctx context.Context, id bson.ObjectID) (*model.Playlist, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, repository.ErrPlaylistNotFound
}

func (m *mockPlaylistRepository) GetDetail(ctx context.Context, id bson.ObjectID) (*model.PlaylistDetail, error) {
	if m.getDetailFn != nil {
		return m.getDetailFn(ctx, id)
	}
	return nil, repository.ErrPlaylistNotFound
}

func (m *mockPlaylistRepository) ListByOwner(ctx context.Context, owner bson.ObjectID) ([]*model.Playlist, error) {
	if m.listByOwnerFn != nil {
		return m.listByOwnerFn(ctx, owner)
	}
	return nil, nil
}

func (m *mockPlaylistRepository) AddVideo(ctx context.Context, id, videoID bson.ObjectID) (*model.Playlist, error) {
	if m.addVideoFn != nil {
		return m.addVideoFn(ctx, id, videoID)
	}
	return nil, nil
}

func (m *mockPlaylistRepository) RemoveVideo(ctx context.Context, id, videoID bson.ObjectID) (*model.Playlist, error) {
	if m.removeVideoFn != nil {
		return m.removeVideoFn(ctx, id, videoID)
	}
	return nil, nil
}

func (m *mockPlaylistRepository) UpdateDetails(ctx context.Context, id bson.ObjectID, name, description string) (*model.Playlist, error) {
	if m.updateDetailsFn != nil {
		return m.updateDetailsFn(ctx, id, name, description)
	}
	return nil, nil
}

func (m *mockPlaylistRepository) Delete(ctx context.Context, id bson.ObjectID) (*model.Playlist, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil, nil
}

func (m *mockPlaylistRepository) PullVideo(ctx context.Context, videoID bson.ObjectID) (int64, error) {
	if m.pullVideoFn != nil {
		return m.pullVideoFn(ctx, videoID)
	}
	return 0, nil
}

// mockSubscriptionRepository provides a configurable mock for SubscriptionRepository.
type mockSubscriptionRepository struct {
	toggleFn                 func(ctx context.Context, sub *model.Subscription) (model.ToggleOutcome, error)
	listSubscribersFn        func(ctx context.Context, channel bson.ObjectID) ([]*model.Subscriber, error)
	listSubscribedChannelsFn func(ctx context.Context, subscriber bson.ObjectID) ([]*model.SubscribedChannel, error)
}

func (m *mockSubscriptionRepository) Toggle(ctx context.Context, sub *model.Subscription) (model.ToggleOutcome, error) {
	if m.toggleFn != nil {
		return m.toggleFn(ctx, sub)
	}
	return model.ToggleAdded, nil
}

func (m *mockSubscriptionRepository) ListSubscribers(ctx context.Context, channel bson.ObjectID) ([]*model.Subscriber, error) {
	if m.listSubscribersFn != nil {
		return m.listSubscribersFn(ctx, channel)
	}
	return nil, nil
}

func (m *mockSubscriptionRepository) ListSubscribedChannels(ctx context.Context, subscriber bson.ObjectID) ([]*model.SubscribedChannel, error) {
	if m.listSubscribedChannelsFn != nil {
		return m.listSubscribedChannelsFn(ctx, subscriber)
	}
	return nil, nil
}

// mockDashboardRepository provides a configurable mock for DashboardRepository.
type mockDashboardRepository struct {
	channelStatsFn  func(ctx context.Context, owner bson.ObjectID) (*model.ChannelStats, error)
	channelVideosFn func(ctx context.Context, owner bson.ObjectID) (*model.ChannelVideos, error)
}

func (m *mockDashboardRepository) ChannelStats(ctx context.Context, owner bson.ObjectID) (*model.ChannelStats, error) {
	if m.channelStatsFn != nil {
		return m.channelStatsFn(ctx, owner)
	}
	return &model.ChannelStats{}, nil
}

func (m *mockDashboardRepository) ChannelVideos(ctx context.Context, owner bson.ObjectID) (*model.ChannelVideos, error) {
	if m.channelVideosFn != nil {
		return m.channelVideosFn(ctx, owner)
	}
	return nil, nil
}

// mockMediaUploader provides a configurable mock for MediaUploader.
type mockMediaUploader struct {
	uploadFn func(ctx context.Context, localPath string) (*repository.UploadedMedia, error)
	deleteFn func(ctx context.Context, key string) error

	mu      sync.Mutex
	deleted []string
}

func (m *mockMediaUploader) Upload(ctx context.Context, localPath string) (*repository.UploadedMedia, error) {
	if m.uploadFn != nil {
		return m.uploadFn(ctx, localPath)
	}
	return &repository.UploadedMedia{
		URL: "http://cdn.test/" + localPath,
		Key: localPath,
	}, nil
}

func (m *mockMediaUploader) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	m.deleted = append(m.deleted, key)
	m.mu.Unlock()
	if m.deleteFn != nil {
		return m.deleteFn(ctx, key)
	}
	return nil
}

// mockMessageQueue provides a configurable mock for MessageQueue.
type mockMessageQueue struct {
	publishCleanupTaskFn  func(ctx context.Context, task repository.CleanupTask) error
	consumeCleanupTasksFn func(ctx context.Context, handler repository.CleanupHandler) error
}

func (m *mockMessageQueue) PublishCleanupTask(ctx context.Context, task repository.CleanupTask) error {
	if m.publishCleanupTaskFn != nil {
		return m.publishCleanupTaskFn(ctx, task)
	}
	return nil
}

func (m *mockMessageQueue) ConsumeCleanupTasks(ctx context.Context, handler repository.CleanupHandler) error {
	if m.consumeCleanupTasksFn != nil {
		return m.consumeCleanupTasksFn(ctx, handler)
	}
	return nil
}

func (m *mockMessageQueue) Close() error {
	return nil
}

// mockVideoService is a mock implementation of VideoService for testing.
type mockVideoService struct {
	publishVideoFn  func(ctx context.Context, input PublishVideoInput) (*model.Video, error)
	getVideoFn      func(ctx context.Context, videoID bson.ObjectID) (*model.Video, error)
	updateVideoFn   func(ctx context.Context, input UpdateVideoInput) (*model.Video, error)
	deleteVideoFn   func(ctx context.Context, videoID, userID bson.ObjectID) (*model.Video, error)
	togglePublishFn func(ctx context.Context, videoID, userID bson.ObjectID) (*model.Video, error)
	listVideosFn    func(ctx context.Context, q model.VideoQuery) (*model.VideoPage, error)
	getVideoCount   atomic.Int32
}

func (m *mockVideoService) PublishVideo(ctx context.Context, input PublishVideoInput) (*model.Video, error) {
	if m.publishVideoFn != nil {
		return m.publishVideoFn(ctx, input)
	}
	return nil, nil
}

func (m *mockVideoService) GetVideo(ctx context.Context, videoID bson.ObjectID) (*model.Video, error) {
	m.getVideoCount.Add(1)
	if m.getVideoFn != nil {
		return m.getVideoFn(ctx, videoID)
	}
	return nil, nil
}

func (m *mockVideoService) UpdateVideo(ctx context.Context, input UpdateVideoInput) (*model.Video, error) {
	if m.updateVideoFn != nil {
		return m.updateVideoFn(ctx, input)
	}
	return &model.Video{ID: input.VideoID}, nil
}

func (m *mockVideoService) DeleteVideo(ctx context.Context, videoID, userID bson.ObjectID) (*model.Video, error) {
	if m.deleteVideoFn != nil {
		return m.deleteVideoFn(ctx, videoID, userID)
	}
	return &model.Video{ID: videoID}, nil
}

func (m *mockVideoService) TogglePublish(ctx context.Context, videoID, userID bson.ObjectID) (*model.Video, error) {
	if m.togglePublishFn != nil {
		return m.togglePublishFn(ctx, videoID, userID)
	}
	return &model.Video{ID: videoID}, nil
}

func (m *mockVideoService) ListVideos(ctx context.Context, q model.VideoQuery) (*model.VideoPage, error) {
	if m.listVideosFn != nil {
		return m.listVideosFn(ctx, q)
	}
	return nil, nil
}

// mockVideoCache is a mock implementation of VideoCache for testing.
type mockVideoCache struct {
	mu       sync.RWMutex
	data     map[bson.ObjectID]*model.Video
	getFn    func(ctx context.Context, videoID bson.ObjectID) (*model.Video, error)
	setFn    func(ctx context.Context, video *model.Video, ttl time.Duration) error
	deleteFn func(ctx context.Context, videoID bson.ObjectID) error
}

func newMockVideoCache() *mockVideoCache {
	return &mockVideoCache{
		data: make(map[bson.ObjectID]*model.Video),
	}
}

func (m *mockVideoCache) Get(ctx context.Context, videoID bson.ObjectID) (*model.Video, error) {
	if m.getFn != nil {
		return m.getFn(ctx, videoID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.data[videoID], nil
}

func (m *mockVideoCache) Set(ctx context.Context, video *model.Video, ttl time.Duration) error {
	if m.setFn != nil {
		return m.setFn(ctx, video, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[video.ID] = video
	return nil
}

func (m *mockVideoCache) Delete(ctx context.Context, videoID bson.ObjectID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, videoID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, videoID)
	return nil
}

func (m *mockVideoCache) has(videoID bson.ObjectID) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.data[videoID]
	return ok
}

func ownedVideo(owner bson.ObjectID) *model.Video {
	now := time.Now().UTC()
	return &model.Video{
		ID:           bson.NewObjectID(),
		Title:        "Test Video",
		Description:  "desc",
		VideoFile:    "http://cdn.test/videos/a.mp4",
		Thumbnail:    "http://cdn.test/images/a.png",
		VideoFileKey: "videos/a.mp4",
		ThumbnailKey: "images/a.png",
		IsPublished:  true,
		Owner:        owner,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
