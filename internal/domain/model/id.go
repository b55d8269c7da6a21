package model

import (
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
)

var (
	ErrMissingID = errors.New("id is required")
	ErrInvalidID = errors.New("id is not a valid object id")
)

// ParseID parses a hex encoded ObjectID taken from a request.
// Surrounding whitespace is ignored; an empty value yields ErrMissingID.
func ParseID(raw string) (bson.ObjectID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return bson.NilObjectID, ErrMissingID
	}
	id, err := bson.ObjectIDFromHex(raw)
	if err != nil {
		return bson.NilObjectID, ErrInvalidID
	}
	return id, nil
}
