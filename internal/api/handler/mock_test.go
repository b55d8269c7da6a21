package handler

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/sohans1092004/Youtube-Backend-project/internal/domain/model"
	"github.com/sohans1092004/Youtube-Backend-project/internal/usecase"
)

type mockVideoService struct {
	publishVideoFn  func(ctx context.Context, input usecase.PublishVideoInput) (*model.Video, error)
	getVideoFn      func(ctx context.Context, videoID bson.ObjectID) (*model.Video, error)
	updateVideoFn   func(ctx context.Context, input usecase.UpdateVideoInput) (*model.Video, error)
	deleteVideoFn   func(ctx context.Context, videoID, userID bson.ObjectID) (*model.Video, error)
	togglePublishFn func(ctx context.Context, videoID, userID bson.ObjectID) (*model.Video, error)
	listVideosFn    func(ctx context.Context, q model.VideoQuery) (*model.VideoPage, error)
}

func (m *mockVideoService) PublishVideo(ctx context.Context, input usecase.PublishVideoInput) (*model.Video, error) {
	if m.publishVideoFn != nil {
		return m.publishVideoFn(ctx, input)
	}
	return nil, nil
}

func (m *mockVideoService) GetVideo(ctx context.Context, videoID bson.ObjectID) (*model.Video, error) {
	if m.getVideoFn != nil {
		return m.getVideoFn(ctx, videoID)
	}
	return nil, nil
}

func (m *mockVideoService) UpdateVideo(ctx context.Context, input usecase.UpdateVideoInput) (*model.Video, error) {
	if m.updateVideoFn != nil {
		return m.updateVideoFn(ctx, input)
	}
	return nil, nil
}

func (m *mockVideoService) DeleteVideo(ctx context.Context, videoID, userID bson.ObjectID) (*model.Video, error) {
	if m.deleteVideoFn != nil {
		return m.deleteVideoFn(ctx, videoID, userID)
	}
	return nil, nil
}

func (m *mockVideoService) TogglePublish(ctx context.Context, videoID, userID bson.ObjectID) (*model.Video, error) {
	if m.togglePublishFn != nil {
		return m.togglePublishFn(ctx, videoID, userID)
	}
	return nil, nil
}

func (m *mockVideoService) ListVideos(ctx context.Context, q model.VideoQuery) (*model.VideoPage, error) {
	if m.listVideosFn != nil {
		return m.listVideosFn(ctx, q)
	}
	return nil, nil
}

type mockCommentService struct {
	listCommentsFn  func(ctx context.Context, videoID bson.ObjectID, page model.Page) ([]*model.CommentView, error)
	addCommentFn    func(ctx context.Context, videoID, userID bson.ObjectID, content string) (*model.Comment, error)
	updateCommentFn func(ctx context.Context, commentID, userID bson.ObjectID, content string) (*model.Comment, error)
	deleteCommentFn func(ctx context.Context, commentID, userID bson.ObjectID) error
}

func (m *mockCommentService) ListComments(ctx context.Context, videoID bson.ObjectID, page model.Page) ([]*model.CommentView, error) {
	if m.listCommentsFn != nil {
		return m.listCommentsFn(ctx, videoID, page)
	}
	return []*model.CommentView{}, nil
}

func (m *mockCommentService) AddComment(ctx context.Context, videoID, userID bson.ObjectID, content string) (*model.Comment, error) {
	if m.addCommentFn != nil {
		return m.addCommentFn(ctx, videoID, userID, content)
	}
	return nil, nil
}

func (m *mockCommentService) UpdateComment(ctx context.Context, commentID, userID bson.ObjectID, content string) (*model.Comment, error) {
	if m.updateCommentFn != nil {
		return m.updateCommentFn(ctx, commentID, userID, content)
	}
	return nil, nil
}

func (m *mockCommentService) DeleteComment(ctx context.Context, commentID, userID bson.ObjectID) error {
	if m.deleteCommentFn != nil {
		return m.deleteCommentFn(ctx, commentID, userID)
	}
	return nil
}

type mockLikeService struct {
	toggleLikeFn  func(ctx context.Context, target model.LikeTarget, userID bson.ObjectID) (*model.Like, model.ToggleOutcome, error)
	likedVideosFn func(ctx context.Context, userID bson.ObjectID) ([]*model.LikedVideo, error)
}

func (m *mockLikeService) ToggleLike(ctx context.Context, target model.LikeTarget, userID bson.ObjectID) (*model.Like, model.ToggleOutcome, error) {
	if m.toggleLikeFn != nil {
		return m.toggleLikeFn(ctx, target, userID)
	}
	return nil, model.ToggleRemoved, nil
}

func (m *mockLikeService) LikedVideos(ctx context.Context, userID bson.ObjectID) ([]*model.LikedVideo, error) {
	if m.likedVideosFn != nil {
		return m.likedVideosFn(ctx, userID)
	}
	return []*model.LikedVideo{}, nil
}

type mockPlaylistService struct {
	createPlaylistFn    func(ctx context.Context, owner bson.ObjectID, name, description string) (*model.Playlist, error)
	listUserPlaylistsFn func(ctx context.Context, owner bson.ObjectID) ([]*model.Playlist, error)
	getPlaylistFn       func(ctx context.Context, playlistID bson.ObjectID) (*model.PlaylistDetail, error)
	addVideoFn          func(ctx context.Context, playlistID, videoID, userID bson.ObjectID) (*model.Playlist, error)
	removeVideoFn       func(ctx context.Context, playlistID, videoID, userID bson.ObjectID) (*model.Playlist, error)
	updatePlaylistFn    func(ctx context.Context, playlistID, userID bson.ObjectID, name, description string) (*model.Playlist, error)
	deletePlaylistFn    func(ctx context.Context, playlistID, userID bson.ObjectID) (*model.Playlist, error)
}

func (m *mockPlaylistService) CreatePlaylist(ctx context.Context, owner bson.ObjectID, name, description string) (*model.Playlist, error) {
	if m.createPlaylistFn != nil {
		return m.createPlaylistFn(ctx, owner, name, description)
	}
	return nil, nil
}

func (m *mockPlaylistService) ListUserPlaylists(ctx context.Context, owner bson.ObjectID) ([]*model.Playlist, error) {
	if m.listUserPlaylistsFn != nil {
		return m.listUserPlaylistsFn(ctx, owner)
	}
	return nil, nil
}

func (m *mockPlaylistService) GetPlaylist(ctx context.Context, playlistID bson.ObjectID) (*model.PlaylistDetail, error) {
	if m.getPlaylistFn != nil {
		return m.getPlaylistFn(ctx, playlistID)
	}
	return nil, nil
}

func (m *mockPlaylistService) AddVideo(ctx context.Context, playlistID, videoID, userID bson.ObjectID) (*model.Playlist, error) {
	if m.addVideoFn != nil {
		return m.addVideoFn(ctx, playlistID, videoID, userID)
	}
	return nil, nil
}

func (m *mockPlaylistService) RemoveVideo(ctx context.Context, playlistID, videoID, userID bson.ObjectID) (*model.Playlist, error) {
	if m.removeVideoFn != nil {
		return m.removeVideoFn(ctx, playlistID, videoID, userID)
	}
	return nil, nil
}

func (m *mockPlaylistService) UpdatePlaylist(ctx context.Context, playlistID, userID bson.ObjectID, name, description string) (*model.Playlist, error) {
	if m.updatePlaylistFn != nil {
		return m.updatePlaylistFn(ctx, playlistID, userID, name, description)
	}
	return nil, nil
}

func (m *mockPlaylistService) DeletePlaylist(ctx context.Context, playlistID, userID bson.ObjectID) (*model.Playlist, error) {
	if m.deletePlaylistFn != nil {
		return m.deletePlaylistFn(ctx, playlistID, userID)
	}
	return nil, nil
}

type mockSubscriptionService struct {
	toggleSubscriptionFn     func(ctx context.Context, subscriber, channel bson.ObjectID) (model.ToggleOutcome, error)
	listSubscribersFn        func(ctx context.Context, channel bson.ObjectID) ([]*model.Subscriber, error)
	listSubscribedChannelsFn func(ctx context.Context, subscriber bson.ObjectID) ([]*model.SubscribedChannel, error)
}

func (m *mockSubscriptionService) ToggleSubscription(ctx context.Context, subscriber, channel bson.ObjectID) (model.ToggleOutcome, error) {
	if m.toggleSubscriptionFn != nil {
		return m.toggleSubscriptionFn(ctx, subscriber, channel)
	}
	return model.ToggleAdded, nil
}

func (m *mockSubscriptionService) ListSubscribers(ctx context.Context, channel bson.ObjectID) ([]*model.Subscriber, error) {
	if m.listSubscribersFn != nil {
		return m.listSubscribersFn(ctx, channel)
	}
	return []*model.Subscriber{}, nil
}

func (m *mockSubscriptionService) ListSubscribedChannels(ctx context.Context, subscriber bson.ObjectID) ([]*model.SubscribedChannel, error) {
	if m.listSubscribedChannelsFn != nil {
		return m.listSubscribedChannelsFn(ctx, subscriber)
	}
	return nil, nil
}

type mockDashboardService struct {
	channelStatsFn  func(ctx context.Context, channel bson.ObjectID) (*model.ChannelStats, error)
	channelVideosFn func(ctx context.Context, channel bson.ObjectID) (*model.ChannelVideos, error)
}

func (m *mockDashboardService) ChannelStats(ctx context.Context, channel bson.ObjectID) (*model.ChannelStats, error) {
	if m.channelStatsFn != nil {
		return m.channelStatsFn(ctx, channel)
	}
	return &model.ChannelStats{}, nil
}

func (m *mockDashboardService) ChannelVideos(ctx context.Context, channel bson.ObjectID) (*model.ChannelVideos, error) {
	if m.channelVideosFn != nil {
		return m.channelVideosFn(ctx, channel)
	}
	return nil, nil
}

type mockPinger struct {
	err error
}

func (m mockPinger) Ping(ctx context.Context) error {
	return m.err
}
