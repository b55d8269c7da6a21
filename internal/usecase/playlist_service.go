package usecase

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/sohans1092004/Youtube-Backend-project/internal/domain/model"
	"github.com/sohans1092004/Youtube-Backend-project/internal/domain/repository"
)

// PlaylistService defines playlist operations. Every mutation requires the
// caller to own the playlist.
type PlaylistService interface {
	CreatePlaylist(ctx context.Context, owner bson.ObjectID, name, description string) (*model.Playlist, error)
	// ListUserPlaylists returns ErrNoPlaylists when the user has none.
	ListUserPlaylists(ctx context.Context, owner bson.ObjectID) ([]*model.Playlist, error)
	GetPlaylist(ctx context.Context, playlistID bson.ObjectID) (*model.PlaylistDetail, error)
	// AddVideo is idempotent: adding a video already in the playlist succeeds unchanged.
	AddVideo(ctx context.Context, playlistID, videoID, userID bson.ObjectID) (*model.Playlist, error)
	// RemoveVideo succeeds unchanged when the video is not in the playlist.
	RemoveVideo(ctx context.Context, playlistID, videoID, userID bson.ObjectID) (*model.Playlist, error)
	UpdatePlaylist(ctx context.Context, playlistID, userID bson.ObjectID, name, description string) (*model.Playlist, error)
	DeletePlaylist(ctx context.Context, playlistID, userID bson.ObjectID) (*model.Playlist, error)
}

type playlistService struct {
	repo repository.PlaylistRepository
}

// NewPlaylistService creates a new PlaylistService instance.
func NewPlaylistService(repo repository.PlaylistRepository) PlaylistService {
	return &playlistService{repo: repo}
}

func (s *playlistService) CreatePlaylist(ctx context.Context, owner bson.ObjectID, name, description string) (*model.Playlist, error) {
	playlist, err := model.NewPlaylist(owner, name, description)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, playlist); err != nil {
		return nil, fmt.Errorf("create playlist: %w", err)
	}

	return playlist, nil
}

func (s *playlistService) ListUserPlaylists(ctx context.Context, owner bson.ObjectID) ([]*model.Playlist, error) {
	playlists, err := s.repo.ListByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("list playlists: %w", err)
	}
	if len(playlists) == 0 {
		return nil, ErrNoPlaylists
	}
	return playlists, nil
}

func (s *playlistService) GetPlaylist(ctx context.Context, playlistID bson.ObjectID) (*model.PlaylistDetail, error) {
	return s.repo.GetDetail(ctx, playlistID)
}

func (s *playlistService) AddVideo(ctx context.Context, playlistID, videoID, userID bson.ObjectID) (*model.Playlist, error) {
	if err := s.authorize(ctx, playlistID, userID); err != nil {
		return nil, err
	}
	return s.repo.AddVideo(ctx, playlistID, videoID)
}

func (s *playlistService) RemoveVideo(ctx context.Context, playlistID, videoID, userID bson.ObjectID) (*model.Playlist, error) {
	if err := s.authorize(ctx, playlistID, userID); err != nil {
		return nil, err
	}
	return s.repo.RemoveVideo(ctx, playlistID, videoID)
}

func (s *playlistService) UpdatePlaylist(ctx context.Context, playlistID, userID bson.ObjectID, name, description string) (*model.Playlist, error) {
	if err := model.ValidatePlaylistDetails(name, description); err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, playlistID, userID); err != nil {
		return nil, err
	}
	return s.repo.UpdateDetails(ctx, playlistID, name, description)
}

func (s *playlistService) DeletePlaylist(ctx context.Context, playlistID, userID bson.ObjectID) (*model.Playlist, error) {
	if err := s.authorize(ctx, playlistID, userID); err != nil {
		return nil, err
	}
	return s.repo.Delete(ctx, playlistID)
}

// authorize returns ErrPlaylistNotFound or ErrForbidden.
func (s *playlistService) authorize(ctx context.Context, playlistID, userID bson.ObjectID) error {
	playlist, err := s.repo.GetByID(ctx, playlistID)
	if err != nil {
		return err
	}
	if !playlist.IsOwnedBy(userID) {
		return ErrForbidden
	}
	return nil
}
