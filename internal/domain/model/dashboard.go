package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ChannelStats aggregates a channel's videos and subscribers.
// Likes and views come from the counters on each video document.
type ChannelStats struct {
	TotalVideos      int64 `json:"total_videos"`
	TotalLikes       int64 `json:"total_likes"`
	TotalViews       int64 `json:"total_views"`
	TotalSubscribers int64 `json:"total_subscribers"`
}

// ChannelVideo is one entry of the channel video listing with its live like count.
type ChannelVideo struct {
	ID          bson.ObjectID `bson:"_id" json:"_id"`
	VideoFile   string        `bson:"videoFile" json:"videoFile"`
	Thumbnail   string        `bson:"thumbnail" json:"thumbnail"`
	Title       string        `bson:"title" json:"title"`
	IsPublished bool          `bson:"isPublished" json:"isPublished"`
	CreatedAt   time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time     `bson:"updatedAt" json:"updatedAt"`
	Owner       bson.ObjectID `bson:"owner" json:"owner"`
	Description string        `bson:"description" json:"description"`
	Likes       int64         `bson:"likes" json:"likes"`
}

// ChannelVideos is every video of a channel collapsed into one group with
// the sum of their like counts.
type ChannelVideos struct {
	TotalLikes int64          `bson:"totalLikes" json:"totalLikes"`
	Videos     []ChannelVideo `bson:"videos" json:"videos"`
}
