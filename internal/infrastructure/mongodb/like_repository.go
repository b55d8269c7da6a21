package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/sohans1092004/Youtube-Backend-project/internal/domain/model"
	"github.com/sohans1092004/Youtube-Backend-project/internal/domain/repository"
	"github.com/sohans1092004/Youtube-Backend-project/internal/infrastructure/metrics"
)

// likeDocument is the stored form of a like: exactly one of Video, Comment
// or Tweet is set.
type likeDocument struct {
	ID        bson.ObjectID  `bson:"_id"`
	Video     *bson.ObjectID `bson:"video,omitempty"`
	Comment   *bson.ObjectID `bson:"comment,omitempty"`
	Tweet     *bson.ObjectID `bson:"tweet,omitempty"`
	LikedBy   bson.ObjectID  `bson:"likedBy"`
	CreatedAt time.Time      `bson:"createdAt"`
}

func toLikeDocument(like *model.Like) likeDocument {
	doc := likeDocument{ID: like.ID, LikedBy: like.LikedBy, CreatedAt: like.CreatedAt}
	id := like.Target.ID
	switch like.Target.Kind {
	case model.TargetVideo:
		doc.Video = &id
	case model.TargetComment:
		doc.Comment = &id
	case model.TargetTweet:
		doc.Tweet = &id
	}
	return doc
}

// targetFilter matches likes of target, optionally restricted to one user.
func targetFilter(target model.LikeTarget, likedBy *bson.ObjectID) bson.D {
	filter := bson.D{{Key: target.Kind.String(), Value: target.ID}}
	if likedBy != nil {
		filter = append(filter, bson.E{Key: "likedBy", Value: *likedBy})
	}
	return filter
}

// LikeRepository implements repository.LikeRepository using MongoDB.
type LikeRepository struct {
	likes Collection
}

var _ repository.LikeRepository = (*LikeRepository)(nil)

func NewLikeRepository(likes Collection) *LikeRepository {
	return &LikeRepository{likes: likes}
}

// Toggle deletes the (likedBy, target) like if present, inserting like
// otherwise. The unique partial indexes on likes guarantee at most one like
// per pair; a duplicate key on insert means a concurrent toggle already
// created it and is reported as ToggleExisting.
func (r *LikeRepository) Toggle(ctx context.Context, like *model.Like) (model.ToggleOutcome, error) {
	if !like.Target.Kind.IsValid() {
		return 0, model.ErrInvalidLikeTarget
	}

	metrics.RecordDBOperation(metrics.DBOpDelete, CollectionLikes)
	res, err := r.likes.DeleteOne(ctx, targetFilter(like.Target, &like.LikedBy))
	if err != nil {
		return 0, fmt.Errorf("failed to delete like: %w", err)
	}
	if res.DeletedCount > 0 {
		return model.ToggleRemoved, nil
	}

	metrics.RecordDBOperation(metrics.DBOpInsert, CollectionLikes)
	if _, err := r.likes.InsertOne(ctx, toLikeDocument(like)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return model.ToggleExisting, nil
		}
		return 0, fmt.Errorf("failed to create like: %w", err)
	}
	return model.ToggleAdded, nil
}

func (r *LikeRepository) ListLikedVideos(ctx context.Context, userID bson.ObjectID) ([]*model.LikedVideo, error) {
	metrics.RecordDBOperation(metrics.DBOpAggregate, CollectionLikes)

	cursor, err := r.likes.Aggregate(ctx, likedVideosPipeline(userID))
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate liked videos: %w", err)
	}

	videos := []*model.LikedVideo{}
	if err := cursor.All(ctx, &videos); err != nil {
		return nil, fmt.Errorf("failed to decode liked videos: %w", err)
	}
	return videos, nil
}

func (r *LikeRepository) DeleteByTarget(ctx context.Context, target model.LikeTarget) (int64, error) {
	if !target.Kind.IsValid() {
		return 0, model.ErrInvalidLikeTarget
	}

	metrics.RecordDBOperation(metrics.DBOpDelete, CollectionLikes)
	res, err := r.likes.DeleteMany(ctx, targetFilter(target, nil))
	if err != nil {
		return 0, fmt.Errorf("failed to delete likes of %s: %w", target.Kind, err)
	}
	return res.DeletedCount, nil
}

func (r *LikeRepository) DeleteByComments(ctx context.Context, commentIDs []bson.ObjectID) (int64, error) {
	if len(commentIDs) == 0 {
		return 0, nil
	}

	metrics.RecordDBOperation(metrics.DBOpDelete, CollectionLikes)
	res, err := r.likes.DeleteMany(ctx, bson.D{{Key: "comment", Value: bson.D{{Key: "$in", Value: commentIDs}}}})
	if err != nil {
		return 0, fmt.Errorf("failed to delete likes of comments: %w", err)
	}
	return res.DeletedCount, nil
}
