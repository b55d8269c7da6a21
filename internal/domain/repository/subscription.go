package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/sohans1092004/Youtube-Backend-project/internal/domain/model"
)

// SubscriptionRepository defines persistence operations for subscription edges.
type SubscriptionRepository interface {
	// Toggle removes the (subscriber, channel) edge if present and stores sub otherwise.
	Toggle(ctx context.Context, sub *model.Subscription) (model.ToggleOutcome, error)

	ListSubscribers(ctx context.Context, channel bson.ObjectID) ([]*model.Subscriber, error)
	ListSubscribedChannels(ctx context.Context, subscriber bson.ObjectID) ([]*model.SubscribedChannel, error)
}
