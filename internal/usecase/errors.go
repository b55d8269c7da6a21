package usecase

import "errors"

var (
	// ErrForbidden is returned when a user mutates a resource they do not own.
	ErrForbidden = errors.New("only the owner can modify this resource")

	ErrNoChannelVideos      = errors.New("no videos uploaded")
	ErrNoVideosFound        = errors.New("no videos found")
	ErrNoPlaylists          = errors.New("no playlists found")
	ErrNoSubscribedChannels = errors.New("no subscribed channels found")
)
