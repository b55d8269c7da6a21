package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/sohans1092004/Youtube-Backend-project/internal/domain/model"
	"github.com/sohans1092004/Youtube-Backend-project/internal/domain/repository"
	"github.com/sohans1092004/Youtube-Backend-project/internal/infrastructure/metrics"
)

// PlaylistRepository implements repository.PlaylistRepository using MongoDB.
type PlaylistRepository struct {
	playlists Collection
}

var _ repository.PlaylistRepository = (*PlaylistRepository)(nil)

func NewPlaylistRepository(playlists Collection) *PlaylistRepository {
	return &PlaylistRepository{playlists: playlists}
}

func (r *PlaylistRepository) Create(ctx context.Context, playlist *model.Playlist) error {
	metrics.RecordDBOperation(metrics.DBOpInsert, CollectionPlaylists)

	if _, err := r.playlists.InsertOne(ctx, playlist); err != nil {
		return fmt.Errorf("failed to create playlist: %w", err)
	}
	return nil
}

func (r *PlaylistRepository) GetByID(ctx context.Context, id bson.ObjectID) (*model.Playlist, error) {
	metrics.RecordDBOperation(metrics.DBOpFind, CollectionPlaylists)

	var playlist model.Playlist
	if err := r.playlists.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&playlist); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrPlaylistNotFound
		}
		return nil, fmt.Errorf("failed to get playlist by ID: %w", err)
	}
	return &playlist, nil
}

// GetDetail expands the playlist's videos and restores playlist order.
func (r *PlaylistRepository) GetDetail(ctx context.Context, id bson.ObjectID) (*model.PlaylistDetail, error) {
	metrics.RecordDBOperation(metrics.DBOpAggregate, CollectionPlaylists)

	cursor, err := r.playlists.Aggregate(ctx, playlistDetailPipeline(id))
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate playlist: %w", err)
	}

	var details []*model.PlaylistDetail
	if err := cursor.All(ctx, &details); err != nil {
		return nil, fmt.Errorf("failed to decode playlist: %w", err)
	}
	if len(details) == 0 {
		return nil, repository.ErrPlaylistNotFound
	}

	detail := details[0]
	detail.OrderVideos()
	return detail, nil
}

func (r *PlaylistRepository) ListByOwner(ctx context.Context, owner bson.ObjectID) ([]*model.Playlist, error) {
	metrics.RecordDBOperation(metrics.DBOpFind, CollectionPlaylists)

	cursor, err := r.playlists.Find(ctx,
		bson.D{{Key: "owner", Value: owner}},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to find playlists: %w", err)
	}

	playlists := []*model.Playlist{}
	if err := cursor.All(ctx, &playlists); err != nil {
		return nil, fmt.Errorf("failed to decode playlists: %w", err)
	}
	return playlists, nil
}

// AddVideo uses $addToSet so adding a present video leaves the playlist unchanged.
func (r *PlaylistRepository) AddVideo(ctx context.Context, id, videoID bson.ObjectID) (*model.Playlist, error) {
	return r.findAndUpdate(ctx, id, bson.D{
		{Key: "$addToSet", Value: bson.D{{Key: "videos", Value: videoID}}},
		{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: time.Now().UTC()}}},
	})
}

// RemoveVideo uses $pull; removing an absent video is not an error.
func (r *PlaylistRepository) RemoveVideo(ctx context.Context, id, videoID bson.ObjectID) (*model.Playlist, error) {
	return r.findAndUpdate(ctx, id, bson.D{
		{Key: "$pull", Value: bson.D{{Key: "videos", Value: videoID}}},
		{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: time.Now().UTC()}}},
	})
}

func (r *PlaylistRepository) UpdateDetails(ctx context.Context, id bson.ObjectID, name, description string) (*model.Playlist, error) {
	return r.findAndUpdate(ctx, id, bson.D{{Key: "$set", Value: bson.D{
		{Key: "name", Value: name},
		{Key: "description", Value: description},
		{Key: "updatedAt", Value: time.Now().UTC()},
	}}})
}

func (r *PlaylistRepository) Delete(ctx context.Context, id bson.ObjectID) (*model.Playlist, error) {
	metrics.RecordDBOperation(metrics.DBOpDelete, CollectionPlaylists)

	var playlist model.Playlist
	if err := r.playlists.FindOneAndDelete(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&playlist); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrPlaylistNotFound
		}
		return nil, fmt.Errorf("failed to delete playlist: %w", err)
	}
	return &playlist, nil
}

// PullVideo removes a deleted video from every playlist referencing it.
func (r *PlaylistRepository) PullVideo(ctx context.Context, videoID bson.ObjectID) (int64, error) {
	metrics.RecordDBOperation(metrics.DBOpUpdate, CollectionPlaylists)

	res, err := r.playlists.UpdateMany(ctx,
		bson.D{{Key: "videos", Value: videoID}},
		bson.D{{Key: "$pull", Value: bson.D{{Key: "videos", Value: videoID}}}},
	)
	if err != nil {
		return 0, fmt.Errorf("failed to pull video from playlists: %w", err)
	}
	return res.ModifiedCount, nil
}

func (r *PlaylistRepository) findAndUpdate(ctx context.Context, id bson.ObjectID, update bson.D) (*model.Playlist, error) {
	metrics.RecordDBOperation(metrics.DBOpUpdate, CollectionPlaylists)

	var playlist model.Playlist
	err := r.playlists.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: id}}, update, findOneAndUpdateAfter()).Decode(&playlist)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrPlaylistNotFound
		}
		return nil, fmt.Errorf("failed to update playlist: %w", err)
	}
	return &playlist, nil
}
