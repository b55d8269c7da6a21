package model

import (
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

var ErrEmptyContent = errors.New("comment content cannot be empty")

// Comment is a user's remark on a video.
type Comment struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	Content   string        `bson:"content" json:"content"`
	Video     bson.ObjectID `bson:"video" json:"video"`
	Owner     bson.ObjectID `bson:"owner" json:"owner"`
	CreatedAt time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// NewComment creates a comment by owner on video.
func NewComment(video, owner bson.ObjectID, content string) (*Comment, error) {
	if owner.IsZero() {
		return nil, ErrInvalidUserID
	}
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	now := time.Now().UTC()
	return &Comment{
		ID:        bson.NewObjectID(),
		Content:   content,
		Video:     video,
		Owner:     owner,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Edit replaces the comment content.
func (c *Comment) Edit(content string) error {
	if strings.TrimSpace(content) == "" {
		return ErrEmptyContent
	}
	c.Content = content
	c.UpdatedAt = time.Now().UTC()
	return nil
}

// CommentView is a comment as returned by the paginated feed: the author's
// public profile under Details (nil when the author no longer exists) and
// the number of likes referencing the comment.
type CommentView struct {
	Comment `bson:",inline"`
	Details *UserSummary `bson:"details,omitempty" json:"details"`
	Likes   int64        `bson:"likes" json:"likes"`
}
