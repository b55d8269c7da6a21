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

// CommentRepository implements repository.CommentRepository using MongoDB.
type CommentRepository struct {
	comments Collection
}

var _ repository.CommentRepository = (*CommentRepository)(nil)

func NewCommentRepository(comments Collection) *CommentRepository {
	return &CommentRepository{comments: comments}
}

func (r *CommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	metrics.RecordDBOperation(metrics.DBOpInsert, CollectionComments)

	if _, err := r.comments.InsertOne(ctx, comment); err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

func (r *CommentRepository) GetByID(ctx context.Context, id bson.ObjectID) (*model.Comment, error) {
	metrics.RecordDBOperation(metrics.DBOpFind, CollectionComments)

	var comment model.Comment
	if err := r.comments.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&comment); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to get comment by ID: %w", err)
	}
	return &comment, nil
}

func (r *CommentRepository) UpdateContent(ctx context.Context, id bson.ObjectID, content string) (*model.Comment, error) {
	metrics.RecordDBOperation(metrics.DBOpUpdate, CollectionComments)

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "content", Value: content},
		{Key: "updatedAt", Value: time.Now().UTC()},
	}}}

	var comment model.Comment
	err := r.comments.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: id}}, update, findOneAndUpdateAfter()).Decode(&comment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}
	return &comment, nil
}

func (r *CommentRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	metrics.RecordDBOperation(metrics.DBOpDelete, CollectionComments)

	res, err := r.comments.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrCommentNotFound
	}
	return nil
}

// ListByVideo runs the comment feed aggregation for one page.
func (r *CommentRepository) ListByVideo(ctx context.Context, videoID bson.ObjectID, page model.Page) ([]*model.CommentView, error) {
	metrics.RecordDBOperation(metrics.DBOpAggregate, CollectionComments)

	cursor, err := r.comments.Aggregate(ctx, commentFeedPipeline(videoID, page))
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate comments: %w", err)
	}

	comments := []*model.CommentView{}
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, fmt.Errorf("failed to decode comments: %w", err)
	}
	return comments, nil
}

func (r *CommentRepository) IDsByVideo(ctx context.Context, videoID bson.ObjectID) ([]bson.ObjectID, error) {
	metrics.RecordDBOperation(metrics.DBOpFind, CollectionComments)
	cursor, err := r.comments.Find(ctx,
		bson.D{{Key: "video", Value: videoID}},
		options.Find().SetProjection(bson.D{{Key: "_id", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to find comments of video: %w", err)
	}

	var docs []struct {
		ID bson.ObjectID `bson:"_id"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode comment IDs: %w", err)
	}

	ids := make([]bson.ObjectID, len(docs))
	for i, d := range docs {
		ids[i] = d.ID
	}
	return ids, nil
}

func (r *CommentRepository) DeleteByVideo(ctx context.Context, videoID bson.ObjectID) (int64, error) {
	metrics.RecordDBOperation(metrics.DBOpDelete, CollectionComments)
	res, err := r.comments.DeleteMany(ctx, bson.D{{Key: "video", Value: videoID}})
	if err != nil {
		return 0, fmt.Errorf("failed to delete comments of video: %w", err)
	}
	return res.DeletedCount, nil
}
