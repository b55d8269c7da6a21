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

// VideoRepository implements repository.VideoRepository using MongoDB.
type VideoRepository struct {
	videos Collection
	users  Collection
}

var _ repository.VideoRepository = (*VideoRepository)(nil)

// NewVideoRepository creates a new VideoRepository instance.
func NewVideoRepository(videos, users Collection) *VideoRepository {
	return &VideoRepository{videos: videos, users: users}
}

// Create persists a new video entity.
func (r *VideoRepository) Create(ctx context.Context, video *model.Video) error {
	metrics.RecordDBOperation(metrics.DBOpInsert, CollectionVideos)

	if _, err := r.videos.InsertOne(ctx, video); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicateVideo
		}
		return fmt.Errorf("failed to create video: %w", err)
	}
	return nil
}

// GetByID retrieves a video by its unique identifier.
func (r *VideoRepository) GetByID(ctx context.Context, id bson.ObjectID) (*model.Video, error) {
	metrics.RecordDBOperation(metrics.DBOpFind, CollectionVideos)

	var video model.Video
	if err := r.videos.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&video); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrVideoNotFound
		}
		return nil, fmt.Errorf("failed to get video by ID: %w", err)
	}
	return &video, nil
}

// Update persists the mutable fields of a video.
func (r *VideoRepository) Update(ctx context.Context, video *model.Video) error {
	metrics.RecordDBOperation(metrics.DBOpUpdate, CollectionVideos)

	video.UpdatedAt = time.Now().UTC()
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "title", Value: video.Title},
		{Key: "description", Value: video.Description},
		{Key: "thumbnail", Value: video.Thumbnail},
		{Key: "thumbnailKey", Value: video.ThumbnailKey},
		{Key: "isPublished", Value: video.IsPublished},
		{Key: "updatedAt", Value: video.UpdatedAt},
	}}}

	res, err := r.videos.UpdateOne(ctx, bson.D{{Key: "_id", Value: video.ID}}, update)
	if err != nil {
		return fmt.Errorf("failed to update video: %w", err)
	}
	if res.MatchedCount == 0 {
		return repository.ErrVideoNotFound
	}
	return nil
}

// Delete removes a video and returns the removed document.
func (r *VideoRepository) Delete(ctx context.Context, id bson.ObjectID) (*model.Video, error) {
	metrics.RecordDBOperation(metrics.DBOpDelete, CollectionVideos)

	var video model.Video
	if err := r.videos.FindOneAndDelete(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&video); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrVideoNotFound
		}
		return nil, fmt.Errorf("failed to delete video: %w", err)
	}
	return &video, nil
}

// IncrementLikes adds delta to the denormalized like counter.
func (r *VideoRepository) IncrementLikes(ctx context.Context, id bson.ObjectID, delta int64) error {
	metrics.RecordDBOperation(metrics.DBOpUpdate, CollectionVideos)

	res, err := r.videos.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$inc", Value: bson.D{{Key: "likes", Value: delta}}}},
	)
	if err != nil {
		return fmt.Errorf("failed to increment video likes: %w", err)
	}
	if res.MatchedCount == 0 {
		return repository.ErrVideoNotFound
	}
	return nil
}

// ListByOwner returns one page of a user's videos. TotalVideos is the page
// length and TotalCount the number of videos matching the query overall.
func (r *VideoRepository) ListByOwner(ctx context.Context, q model.VideoQuery) (*model.VideoPage, error) {
	metrics.RecordDBOperation(metrics.DBOpAggregate, CollectionUsers)

	cursor, err := r.users.Aggregate(ctx, videoListingPipeline(q))
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate videos: %w", err)
	}

	var groups []struct {
		Videos []*model.Video `bson:"videos"`
	}
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, fmt.Errorf("failed to decode videos: %w", err)
	}

	page := &model.VideoPage{CurrentPage: q.Page.Number, Videos: []*model.Video{}}
	if len(groups) > 0 && groups[0].Videos != nil {
		page.Videos = groups[0].Videos
	}
	page.TotalVideos = int64(len(page.Videos))
	if page.TotalVideos == 0 {
		return page, nil
	}

	metrics.RecordDBOperation(metrics.DBOpCount, CollectionVideos)
	total, err := r.videos.CountDocuments(ctx, videoSearchFilter(q))
	if err != nil {
		return nil, fmt.Errorf("failed to count videos: %w", err)
	}
	page.TotalCount = total

	return page, nil
}

// findOneAndUpdateAfter returns the document as it is after the update.
func findOneAndUpdateAfter() *options.FindOneAndUpdateOptionsBuilder {
	return options.FindOneAndUpdate().SetReturnDocument(options.After)
}
