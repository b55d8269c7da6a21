package model

import "go.mongodb.org/mongo-driver/v2/bson"

// UserSummary is the public slice of a user profile joined into read models.
type UserSummary struct {
	ID       bson.ObjectID `bson:"_id" json:"_id"`
	Username string        `bson:"username,omitempty" json:"username,omitempty"`
	Fullname string        `bson:"fullname,omitempty" json:"fullname,omitempty"`
	Avatar   string        `bson:"avatar,omitempty" json:"avatar,omitempty"`
	Email    string        `bson:"email,omitempty" json:"email,omitempty"`
}
