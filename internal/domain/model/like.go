package model

import (
	"encoding/json"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// TargetKind names the kind of entity a like points at.
type TargetKind string

const (
	TargetVideo   TargetKind = "video"
	TargetComment TargetKind = "comment"
	TargetTweet   TargetKind = "tweet"
)

var ErrInvalidLikeTarget = errors.New("invalid like target")

func (k TargetKind) IsValid() bool {
	switch k {
	case TargetVideo, TargetComment, TargetTweet:
		return true
	default:
		return false
	}
}

func (k TargetKind) String() string {
	return string(k)
}

// LikeTarget is exactly one of a video, a comment or a tweet.
type LikeTarget struct {
	Kind TargetKind
	ID   bson.ObjectID
}

func VideoTarget(id bson.ObjectID) LikeTarget   { return LikeTarget{Kind: TargetVideo, ID: id} }
func CommentTarget(id bson.ObjectID) LikeTarget { return LikeTarget{Kind: TargetComment, ID: id} }
func TweetTarget(id bson.ObjectID) LikeTarget   { return LikeTarget{Kind: TargetTweet, ID: id} }

// Like is a (user, target) edge. At most one exists per pair.
type Like struct {
	ID        bson.ObjectID
	Target    LikeTarget
	LikedBy   bson.ObjectID
	CreatedAt time.Time
}

// NewLike creates a like of target by likedBy.
func NewLike(target LikeTarget, likedBy bson.ObjectID) (*Like, error) {
	if !target.Kind.IsValid() || target.ID.IsZero() {
		return nil, ErrInvalidLikeTarget
	}
	if likedBy.IsZero() {
		return nil, ErrInvalidUserID
	}
	return &Like{
		ID:        bson.NewObjectID(),
		Target:    target,
		LikedBy:   likedBy,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// MarshalJSON renders the like with its target under the kind's field name,
// e.g. {"_id": ..., "video": ..., "likedBy": ..., "createdAt": ...}.
func (l Like) MarshalJSON() ([]byte, error) {
	out := map[string]any{
		"_id":       l.ID,
		"likedBy":   l.LikedBy,
		"createdAt": l.CreatedAt,
	}
	if l.Target.Kind.IsValid() {
		out[l.Target.Kind.String()] = l.Target.ID
	}
	return json.Marshal(out)
}

// ToggleOutcome reports what a toggle operation did to an edge.
type ToggleOutcome int

const (
	ToggleAdded ToggleOutcome = iota + 1
	ToggleRemoved
	// ToggleExisting means a concurrent toggle created the edge first.
	// The edge is present but this call wrote nothing.
	ToggleExisting
)

// Present reports whether the edge exists after the toggle.
func (o ToggleOutcome) Present() bool {
	return o == ToggleAdded || o == ToggleExisting
}

func (o ToggleOutcome) String() string {
	switch o {
	case ToggleAdded:
		return "added"
	case ToggleRemoved:
		return "removed"
	case ToggleExisting:
		return "existing"
	default:
		return "unknown"
	}
}

// LikedVideo is a like on a video with the video's summary joined in.
// Video is nil when the video was deleted after being liked.
type LikedVideo struct {
	ID        bson.ObjectID `bson:"_id" json:"_id"`
	Video     *VideoSummary `bson:"video,omitempty" json:"video"`
	LikedBy   bson.ObjectID `bson:"likedBy" json:"likedBy"`
	CreatedAt time.Time     `bson:"createdAt" json:"createdAt"`
}
