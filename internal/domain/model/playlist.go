package model

import (
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

var ErrPlaylistDetailsRequired = errors.New("playlist name and description are required")

// Playlist is an owner's ordered set of videos. Videos never holds duplicates.
type Playlist struct {
	ID          bson.ObjectID   `bson:"_id,omitempty" json:"_id"`
	Name        string          `bson:"name" json:"name"`
	Description string          `bson:"description" json:"description"`
	Owner       bson.ObjectID   `bson:"owner" json:"owner"`
	Videos      []bson.ObjectID `bson:"videos" json:"videos"`
	CreatedAt   time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time       `bson:"updatedAt" json:"updatedAt"`
}

// ValidatePlaylistDetails requires both a name and a description.
func ValidatePlaylistDetails(name, description string) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(description) == "" {
		return ErrPlaylistDetailsRequired
	}
	return nil
}

// NewPlaylist creates an empty playlist.
func NewPlaylist(owner bson.ObjectID, name, description string) (*Playlist, error) {
	if owner.IsZero() {
		return nil, ErrInvalidUserID
	}
	if err := ValidatePlaylistDetails(name, description); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Playlist{
		ID:          bson.NewObjectID(),
		Name:        name,
		Description: description,
		Owner:       owner,
		Videos:      []bson.ObjectID{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

func (p *Playlist) IsOwnedBy(userID bson.ObjectID) bool {
	return p.Owner == userID
}

// PlaylistDetail is a playlist with its videos expanded.
type PlaylistDetail struct {
	ID          bson.ObjectID   `bson:"_id" json:"_id"`
	Name        string          `bson:"name" json:"name"`
	Description string          `bson:"description" json:"description"`
	Owner       bson.ObjectID   `bson:"owner" json:"owner"`
	VideoIDs    []bson.ObjectID `bson:"videoIds" json:"-"`
	Videos      []*Video        `bson:"videos" json:"videos"`
	CreatedAt   time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time       `bson:"updatedAt" json:"updatedAt"`
}

// OrderVideos sorts the expanded videos into playlist order. Joins do not
// preserve array order, so the stored ID order is re-applied; videos that no
// longer exist are simply absent.
func (d *PlaylistDetail) OrderVideos() {
	byID := make(map[bson.ObjectID]*Video, len(d.Videos))
	for _, v := range d.Videos {
		byID[v.ID] = v
	}
	ordered := make([]*Video, 0, len(d.Videos))
	for _, id := range d.VideoIDs {
		if v, ok := byID[id]; ok {
			ordered = append(ordered, v)
			delete(byID, id)
		}
	}
	d.Videos = ordered
}
