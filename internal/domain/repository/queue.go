package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// CleanupTask asks the worker to remove everything left behind by a deleted video.
type CleanupTask struct {
	VideoID    bson.ObjectID `json:"video_id"`
	MediaKeys  []string      `json:"media_keys"`
	RetryCount int           `json:"retry_count"`
}

// CleanupHandler processes one task. A non-nil error schedules a retry.
type CleanupHandler func(ctx context.Context, task CleanupTask) error

// MessageQueue carries cleanup tasks from the API server to the worker.
type MessageQueue interface {
	// PublishCleanupTask is called by the API server after a video is deleted.
	PublishCleanupTask(ctx context.Context, task CleanupTask) error

	// ConsumeCleanupTasks blocks until ctx is cancelled or the delivery
	// channel closes, calling handler for each task.
	ConsumeCleanupTasks(ctx context.Context, handler CleanupHandler) error

	Close() error
}
