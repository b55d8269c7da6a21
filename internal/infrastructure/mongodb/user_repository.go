package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/sohans1092004/Youtube-Backend-project/internal/domain/repository"
	"github.com/sohans1092004/Youtube-Backend-project/internal/infrastructure/metrics"
)

// UserRepository implements repository.UserRepository using MongoDB.
type UserRepository struct {
	users Collection
}

var _ repository.UserRepository = (*UserRepository)(nil)

func NewUserRepository(users Collection) *UserRepository {
	return &UserRepository{users: users}
}

func (r *UserRepository) Exists(ctx context.Context, id bson.ObjectID) (bool, error) {
	metrics.RecordDBOperation(metrics.DBOpCount, CollectionUsers)

	n, err := r.users.CountDocuments(ctx, bson.D{{Key: "_id", Value: id}}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to look up user: %w", err)
	}
	return n > 0, nil
}
