package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/sohans1092004/Youtube-Backend-project/internal/domain/model"
)

// PlaylistRepository defines persistence operations for playlists.
// Every method addressing a single playlist returns ErrPlaylistNotFound when
// it does not exist.
type PlaylistRepository interface {
	Create(ctx context.Context, playlist *model.Playlist) error
	GetByID(ctx context.Context, id bson.ObjectID) (*model.Playlist, error)

	// GetDetail returns the playlist with its videos expanded in playlist order.
	GetDetail(ctx context.Context, id bson.ObjectID) (*model.PlaylistDetail, error)

	ListByOwner(ctx context.Context, owner bson.ObjectID) ([]*model.Playlist, error)

	// AddVideo inserts videoID unless already present and returns the updated playlist.
	AddVideo(ctx context.Context, id, videoID bson.ObjectID) (*model.Playlist, error)

	// RemoveVideo removes videoID if present and returns the updated playlist.
	RemoveVideo(ctx context.Context, id, videoID bson.ObjectID) (*model.Playlist, error)

	UpdateDetails(ctx context.Context, id bson.ObjectID, name, description string) (*model.Playlist, error)
	Delete(ctx context.Context, id bson.ObjectID) (*model.Playlist, error)

	// PullVideo removes videoID from every playlist containing it.
	PullVideo(ctx context.Context, videoID bson.ObjectID) (int64, error)
}
