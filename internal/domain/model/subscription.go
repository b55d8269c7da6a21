package model

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

var ErrSelfSubscription = errors.New("cannot subscribe to your own channel")

// Subscription is a subscriber -> channel edge between two users.
type Subscription struct {
	ID         bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	Subscriber bson.ObjectID `bson:"subscriber" json:"subscriber"`
	Channel    bson.ObjectID `bson:"channel" json:"channel"`
	CreatedAt  time.Time     `bson:"createdAt" json:"createdAt"`
}

// NewSubscription creates an edge. A user cannot subscribe to themselves.
func NewSubscription(subscriber, channel bson.ObjectID) (*Subscription, error) {
	if subscriber.IsZero() {
		return nil, ErrInvalidUserID
	}
	if subscriber == channel {
		return nil, ErrSelfSubscription
	}
	return &Subscription{
		ID:         bson.NewObjectID(),
		Subscriber: subscriber,
		Channel:    channel,
		CreatedAt:  time.Now().UTC(),
	}, nil
}

// Subscriber is a subscription edge seen from the channel side.
type Subscriber struct {
	ID         bson.ObjectID `bson:"_id" json:"_id"`
	Subscriber *UserSummary  `bson:"subscriber,omitempty" json:"subscriber"`
	Channel    bson.ObjectID `bson:"channel" json:"channel"`
	CreatedAt  time.Time     `bson:"createdAt" json:"createdAt"`
}

// SubscribedChannel is a subscription edge seen from the subscriber side.
type SubscribedChannel struct {
	ID         bson.ObjectID `bson:"_id" json:"_id"`
	Channel    *UserSummary  `bson:"channel,omitempty" json:"channel"`
	Subscriber bson.ObjectID `bson:"subscriber" json:"subscriber"`
	CreatedAt  time.Time     `bson:"createdAt" json:"createdAt"`
}
