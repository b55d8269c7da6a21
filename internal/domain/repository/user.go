package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// UserRepository exposes the user lookups this service needs. Profiles are
// owned by the identity service; this service only reads them.
type UserRepository interface {
	Exists(ctx context.Context, id bson.ObjectID) (bool, error)
}
