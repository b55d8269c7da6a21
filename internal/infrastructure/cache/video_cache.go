package cache

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/sohans1092004/Youtube-Backend-project/internal/domain/model"
)

// VideoCache keeps single-video lookups out of MongoDB.
// A miss is (nil, nil); an error means the cache itself failed.
type VideoCache interface {
	Get(ctx context.Context, videoID bson.ObjectID) (*model.Video, error)
	Set(ctx context.Context, video *model.Video, ttl time.Duration) error
	// Delete is a no-op for IDs that are not cached.
	Delete(ctx context.Context, videoID bson.ObjectID) error
}
