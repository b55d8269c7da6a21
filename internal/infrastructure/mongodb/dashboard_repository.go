package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/sohans1092004/Youtube-Backend-project/internal/domain/model"
	"github.com/sohans1092004/Youtube-Backend-project/internal/domain/repository"
	"github.com/sohans1092004/Youtube-Backend-project/internal/infrastructure/metrics"
)

// DashboardRepository implements repository.DashboardRepository using MongoDB.
type DashboardRepository struct {
	videos        Collection
	subscriptions Collection
}

var _ repository.DashboardRepository = (*DashboardRepository)(nil)

func NewDashboardRepository(videos, subscriptions Collection) *DashboardRepository {
	return &DashboardRepository{videos: videos, subscriptions: subscriptions}
}

// ChannelStats reads likes and views from the counters stored on each video
// rather than joining the likes collection.
func (r *DashboardRepository) ChannelStats(ctx context.Context, owner bson.ObjectID) (*model.ChannelStats, error) {
	metrics.RecordDBOperation(metrics.DBOpAggregate, CollectionVideos)

	cursor, err := r.videos.Aggregate(ctx, channelStatsPipeline(owner))
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate channel stats: %w", err)
	}

	var sums []struct {
		TotalVideos int64 `bson:"totalVideos"`
		TotalViews  int64 `bson:"totalViews"`
		TotalLikes  int64 `bson:"totalLikes"`
	}
	if err := cursor.All(ctx, &sums); err != nil {
		return nil, fmt.Errorf("failed to decode channel stats: %w", err)
	}

	stats := &model.ChannelStats{}
	if len(sums) > 0 {
		stats.TotalVideos = sums[0].TotalVideos
		stats.TotalViews = sums[0].TotalViews
		stats.TotalLikes = sums[0].TotalLikes
	}

	metrics.RecordDBOperation(metrics.DBOpCount, CollectionSubscriptions)
	subscribers, err := r.subscriptions.CountDocuments(ctx, bson.D{{Key: "channel", Value: owner}})
	if err != nil {
		return nil, fmt.Errorf("failed to count subscribers: %w", err)
	}
	stats.TotalSubscribers = subscribers

	return stats, nil
}

// ChannelVideos returns nil when the owner has no videos.
func (r *DashboardRepository) ChannelVideos(ctx context.Context, owner bson.ObjectID) (*model.ChannelVideos, error) {
	metrics.RecordDBOperation(metrics.DBOpAggregate, CollectionVideos)

	cursor, err := r.videos.Aggregate(ctx, channelVideosPipeline(owner))
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate channel videos: %w", err)
	}

	var groups []*model.ChannelVideos
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, fmt.Errorf("failed to decode channel videos: %w", err)
	}
	if len(groups) == 0 {
		return nil, nil
	}
	return groups[0], nil
}
