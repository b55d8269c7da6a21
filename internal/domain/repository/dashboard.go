package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/sohans1092004/Youtube-Backend-project/internal/domain/model"
)

// DashboardRepository computes the channel dashboard views.
type DashboardRepository interface {
	// ChannelStats sums the video counters of a channel and counts its
	// subscribers. A channel with no videos yields zero sums.
	ChannelStats(ctx context.Context, owner bson.ObjectID) (*model.ChannelStats, error)

	// ChannelVideos lists a channel's videos with live like counts.
	// Returns nil when the channel has no videos.
	ChannelVideos(ctx context.Context, owner bson.ObjectID) (*model.ChannelVideos, error)
}
