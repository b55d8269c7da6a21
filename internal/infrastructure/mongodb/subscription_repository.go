package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/sohans1092004/Youtube-Backend-project/internal/domain/model"
	"github.com/sohans1092004/Youtube-Backend-project/internal/domain/repository"
	"github.com/sohans1092004/Youtube-Backend-project/internal/infrastructure/metrics"
)

// SubscriptionRepository implements repository.SubscriptionRepository using MongoDB.
type SubscriptionRepository struct {
	subscriptions Collection
}

var _ repository.SubscriptionRepository = (*SubscriptionRepository)(nil)

func NewSubscriptionRepository(subscriptions Collection) *SubscriptionRepository {
	return &SubscriptionRepository{subscriptions: subscriptions}
}

// Toggle follows the same delete-or-insert protocol as LikeRepository.Toggle,
// backed by the unique (subscriber, channel) index.
func (r *SubscriptionRepository) Toggle(ctx context.Context, sub *model.Subscription) (model.ToggleOutcome, error) {
	filter := bson.D{
		{Key: "subscriber", Value: sub.Subscriber},
		{Key: "channel", Value: sub.Channel},
	}

	metrics.RecordDBOperation(metrics.DBOpDelete, CollectionSubscriptions)
	res, err := r.subscriptions.DeleteOne(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to delete subscription: %w", err)
	}
	if res.DeletedCount > 0 {
		return model.ToggleRemoved, nil
	}

	metrics.RecordDBOperation(metrics.DBOpInsert, CollectionSubscriptions)
	if _, err := r.subscriptions.InsertOne(ctx, sub); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return model.ToggleExisting, nil
		}
		return 0, fmt.Errorf("failed to create subscription: %w", err)
	}
	return model.ToggleAdded, nil
}

func (r *SubscriptionRepository) ListSubscribers(ctx context.Context, channel bson.ObjectID) ([]*model.Subscriber, error) {
	metrics.RecordDBOperation(metrics.DBOpAggregate, CollectionSubscriptions)

	cursor, err := r.subscriptions.Aggregate(ctx, subscribersPipeline(channel))
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate subscribers: %w", err)
	}

	subscribers := []*model.Subscriber{}
	if err := cursor.All(ctx, &subscribers); err != nil {
		return nil, fmt.Errorf("failed to decode subscribers: %w", err)
	}
	return subscribers, nil
}

func (r *SubscriptionRepository) ListSubscribedChannels(ctx context.Context, subscriber bson.ObjectID) ([]*model.SubscribedChannel, error) {
	metrics.RecordDBOperation(metrics.DBOpAggregate, CollectionSubscriptions)

	cursor, err := r.subscriptions.Aggregate(ctx, subscribedChannelsPipeline(subscriber))
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate subscribed channels: %w", err)
	}

	channels := []*model.SubscribedChannel{}
	if err := cursor.All(ctx, &channels); err != nil {
		return nil, fmt.Errorf("failed to decode subscribed channels: %w", err)
	}
	return channels, nil
}
