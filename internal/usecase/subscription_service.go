package usecase

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/sohans1092004/Youtube-Backend-project/internal/domain/model"
	"github.com/sohans1092004/Youtube-Backend-project/internal/domain/repository"
	"github.com/sohans1092004/Youtube-Backend-project/internal/infrastructure/metrics"
)

const subscriptionToggleTarget = "subscription"

// SubscriptionService defines channel subscription operations.
type SubscriptionService interface {
	// ToggleSubscription subscribes subscriber to channel, or unsubscribes if
	// already subscribed. Subscribing to oneself is rejected before any write.
	ToggleSubscription(ctx context.Context, subscriber, channel bson.ObjectID) (model.ToggleOutcome, error)
	// ListSubscribers returns the subscribers of a channel. Empty is not an error.
	ListSubscribers(ctx context.Context, channel bson.ObjectID) ([]*model.Subscriber, error)
	// ListSubscribedChannels returns ErrNoSubscribedChannels when there are none.
	ListSubscribedChannels(ctx context.Context, subscriber bson.ObjectID) ([]*model.SubscribedChannel, error)
}

type subscriptionService struct {
	repo repository.SubscriptionRepository
}

// NewSubscriptionService creates a new SubscriptionService instance.
func NewSubscriptionService(repo repository.SubscriptionRepository) SubscriptionService {
	return &subscriptionService{repo: repo}
}

func (s *subscriptionService) ToggleSubscription(ctx context.Context, subscriber, channel bson.ObjectID) (model.ToggleOutcome, error) {
	sub, err := model.NewSubscription(subscriber, channel)
	if err != nil {
		return 0, err
	}

	outcome, err := s.repo.Toggle(ctx, sub)
	if err != nil {
		return 0, fmt.Errorf("toggle subscription: %w", err)
	}

	metrics.ToggleOperationsTotal.WithLabelValues(subscriptionToggleTarget, outcome.String()).Inc()
	return outcome, nil
}

func (s *subscriptionService) ListSubscribers(ctx context.Context, channel bson.ObjectID) ([]*model.Subscriber, error) {
	subs, err := s.repo.ListSubscribers(ctx, channel)
	if err != nil {
		return nil, fmt.Errorf("list subscribers: %w", err)
	}
	if subs == nil {
		subs = []*model.Subscriber{}
	}
	return subs, nil
}

func (s *subscriptionService) ListSubscribedChannels(ctx context.Context, subscriber bson.ObjectID) ([]*model.SubscribedChannel, error) {
	channels, err := s.repo.ListSubscribedChannels(ctx, subscriber)
	if err != nil {
		return nil, fmt.Errorf("list subscribed channels: %w", err)
	}
	if len(channels) == 0 {
		return nil, ErrNoSubscribedChannels
	}
	return channels, nil
}
