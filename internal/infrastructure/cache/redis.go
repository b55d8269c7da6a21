package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/sohans1092004/Youtube-Backend-project/internal/domain/model"
	"github.com/sohans1092004/Youtube-Backend-project/internal/infrastructure/metrics"
)

const (
	// videoCacheKeyPrefix is the prefix for video cache keys in Redis.
	videoCacheKeyPrefix = "video:"
)

// videoJSON is the cached representation of a Video.
// The API shape of model.Video hides the storage keys, so the cache keeps its own.
type videoJSON struct {
	ID           string  `json:"id"`
	Owner        string  `json:"owner"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	VideoFile    string  `json:"video_file"`
	Thumbnail    string  `json:"thumbnail"`
	VideoFileKey string  `json:"video_file_key,omitempty"`
	ThumbnailKey string  `json:"thumbnail_key,omitempty"`
	Duration     float64 `json:"duration"`
	Views        int64   `json:"views"`
	Likes        int64   `json:"likes"`
	IsPublished  bool    `json:"is_published"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

// RedisVideoCache implements VideoCache using Redis as the backing store.
type RedisVideoCache struct {
	client *redis.Client
}

var _ VideoCache = (*RedisVideoCache)(nil)

// NewRedisVideoCache creates a new Redis-backed video cache.
func NewRedisVideoCache(client *redis.Client) *RedisVideoCache {
	return &RedisVideoCache{
		client: client,
	}
}

// Get retrieves a video from Redis cache.
// Returns nil, nil on cache miss.
func (c *RedisVideoCache) Get(ctx context.Context, videoID bson.ObjectID) (*model.Video, error) {
	key := c.buildKey(videoID)

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			record(metrics.CacheOpGet, metrics.CacheStatusMiss)
			return nil, nil // Cache miss
		}
		record(metrics.CacheOpGet, metrics.CacheStatusError)
		return nil, fmt.Errorf("redis get: %w", err)
	}

	video, err := c.deserialize(data)
	if err != nil {
		record(metrics.CacheOpGet, metrics.CacheStatusError)
		return nil, fmt.Errorf("deserialize video: %w", err)
	}

	record(metrics.CacheOpGet, metrics.CacheStatusHit)
	return video, nil
}

// Set stores a video in Redis cache with the specified TTL.
func (c *RedisVideoCache) Set(ctx context.Context, video *model.Video, ttl time.Duration) error {
	key := c.buildKey(video.ID)

	data, err := c.serialize(video)
	if err != nil {
		record(metrics.CacheOpSet, metrics.CacheStatusError)
		return fmt.Errorf("serialize video: %w", err)
	}

	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		record(metrics.CacheOpSet, metrics.CacheStatusError)
		return fmt.Errorf("redis set: %w", err)
	}

	record(metrics.CacheOpSet, metrics.CacheStatusSuccess)
	return nil
}

// Delete removes a video from Redis cache.
func (c *RedisVideoCache) Delete(ctx context.Context, videoID bson.ObjectID) error {
	key := c.buildKey(videoID)

	if err := c.client.Del(ctx, key).Err(); err != nil {
		record(metrics.CacheOpDelete, metrics.CacheStatusError)
		return fmt.Errorf("redis del: %w", err)
	}

	record(metrics.CacheOpDelete, metrics.CacheStatusSuccess)
	return nil
}

// Ping checks connectivity to Redis.
func (c *RedisVideoCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func record(operation, status string) {
	metrics.CacheOperationsTotal.WithLabelValues(operation, status, metrics.CacheTypeRedis).Inc()
}

// buildKey constructs the Redis key for a video.
func (c *RedisVideoCache) buildKey(videoID bson.ObjectID) string {
	return videoCacheKeyPrefix + videoID.Hex()
}

// serialize converts a Video to JSON bytes.
func (c *RedisVideoCache) serialize(video *model.Video) ([]byte, error) {
	v := videoJSON{
		ID:           video.ID.Hex(),
		Owner:        video.Owner.Hex(),
		Title:        video.Title,
		Description:  video.Description,
		VideoFile:    video.VideoFile,
		Thumbnail:    video.Thumbnail,
		VideoFileKey: video.VideoFileKey,
		ThumbnailKey: video.ThumbnailKey,
		Duration:     video.Duration,
		Views:        video.Views,
		Likes:        video.Likes,
		IsPublished:  video.IsPublished,
		CreatedAt:    video.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:    video.UpdatedAt.Format(time.RFC3339Nano),
	}
	return json.Marshal(v)
}

// deserialize converts JSON bytes to a Video.
func (c *RedisVideoCache) deserialize(data []byte) (*model.Video, error) {
	var v videoJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}

	id, err := bson.ObjectIDFromHex(v.ID)
	if err != nil {
		return nil, fmt.Errorf("parse video ID: %w", err)
	}

	owner, err := bson.ObjectIDFromHex(v.Owner)
	if err != nil {
		return nil, fmt.Errorf("parse owner ID: %w", err)
	}

	createdAt, err := time.Parse(time.RFC3339Nano, v.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}

	updatedAt, err := time.Parse(time.RFC3339Nano, v.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("parse updated_at: %w", err)
	}

	return &model.Video{
		ID:           id,
		Owner:        owner,
		Title:        v.Title,
		Description:  v.Description,
		VideoFile:    v.VideoFile,
		Thumbnail:    v.Thumbnail,
		VideoFileKey: v.VideoFileKey,
		ThumbnailKey: v.ThumbnailKey,
		Duration:     v.Duration,
		Views:        v.Views,
		Likes:        v.Likes,
		IsPublished:  v.IsPublished,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}, nil
}
