package usecase

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/sohans1092004/Youtube-Backend-project/internal/domain/model"
	"github.com/sohans1092004/Youtube-Backend-project/internal/domain/repository"
)

// DashboardService serves the channel owner's dashboard.
type DashboardService interface {
	// ChannelStats never fails for an empty channel; every total is zero.
	ChannelStats(ctx context.Context, channel bson.ObjectID) (*model.ChannelStats, error)
	// ChannelVideos returns ErrNoChannelVideos for an empty channel.
	ChannelVideos(ctx context.Context, channel bson.ObjectID) (*model.ChannelVideos, error)
}

type dashboardService struct {
	repo repository.DashboardRepository
}

// NewDashboardService creates a new DashboardService instance.
func NewDashboardService(repo repository.DashboardRepository) DashboardService {
	return &dashboardService{repo: repo}
}

func (s *dashboardService) ChannelStats(ctx context.Context, channel bson.ObjectID) (*model.ChannelStats, error) {
	stats, err := s.repo.ChannelStats(ctx, channel)
	if err != nil {
		return nil, fmt.Errorf("channel stats: %w", err)
	}
	return stats, nil
}

func (s *dashboardService) ChannelVideos(ctx context.Context, channel bson.ObjectID) (*model.ChannelVideos, error) {
	videos, err := s.repo.ChannelVideos(ctx, channel)
	if err != nil {
		return nil, fmt.Errorf("channel videos: %w", err)
	}
	if videos == nil || len(videos.Videos) == 0 {
		return nil, ErrNoChannelVideos
	}
	return videos, nil
}
