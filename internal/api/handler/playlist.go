package handler

import (
	"net/http"

	"github.com/sohans1092004/Youtube-Backend-project/internal/usecase"
)

type PlaylistRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// PlaylistHandler handles playlist-related HTTP requests.
type PlaylistHandler struct {
	svc usecase.PlaylistService
}

// NewPlaylistHandler creates a new PlaylistHandler.
func NewPlaylistHandler(svc usecase.PlaylistService) *PlaylistHandler {
	return &PlaylistHandler{svc: svc}
}

// Create handles POST /v1/playlists
func (h *PlaylistHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req PlaylistRequest
	if err := decodeJSON(r, &req); err != nil {
		Fail(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	playlist, err := h.svc.CreatePlaylist(r.Context(), userID, req.Name, req.Description)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	Success(w, http.StatusCreated, playlist, "Playlist created successfully")
}

// ListByUser handles GET /v1/playlists/user/{userId}
func (h *PlaylistHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := pathID(w, r, "userId", "Invalid user id")
	if !ok {
		return
	}

	playlists, err := h.svc.ListUserPlaylists(r.Context(), ownerID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	Success(w, http.StatusOK, playlists, "User playlists fetched successfully")
}

// Get handles GET /v1/playlists/{playlistId}
func (h *PlaylistHandler) Get(w http.ResponseWriter, r *http.Request) {
	playlistID, ok := pathID(w, r, "playlistId", "Invalid playlist id")
	if !ok {
		return
	}

	playlist, err := h.svc.GetPlaylist(r.Context(), playlistID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	Success(w, http.StatusOK, playlist, "Playlist fetched successfully")
}

// Update handles PATCH /v1/playlists/{playlistId}
func (h *PlaylistHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	playlistID, ok := pathID(w, r, "playlistId", "Invalid playlist id")
	if !ok {
		return
	}

	var req PlaylistRequest
	if err := decodeJSON(r, &req); err != nil {
		Fail(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	playlist, err := h.svc.UpdatePlaylist(r.Context(), playlistID, userID, req.Name, req.Description)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	Success(w, http.StatusOK, playlist, "Playlist updated successfully")
}

// Delete handles DELETE /v1/playlists/{playlistId}
func (h *PlaylistHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	playlistID, ok := pathID(w, r, "playlistId", "Invalid playlist id")
	if !ok {
		return
	}

	playlist, err := h.svc.DeletePlaylist(r.Context(), playlistID, userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	Success(w, http.StatusOK, playlist, "Playlist deleted successfully")
}

// AddVideo handles PATCH /v1/playlists/add/{videoId}/{playlistId}
func (h *PlaylistHandler) AddVideo(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	videoID, ok := pathID(w, r, "videoId", "Invalid playlist or video ID")
	if !ok {
		return
	}
	playlistID, ok := pathID(w, r, "playlistId", "Invalid playlist or video ID")
	if !ok {
		return
	}

	playlist, err := h.svc.AddVideo(r.Context(), playlistID, videoID, userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	Success(w, http.StatusOK, playlist, "Video added to playlist successfully")
}

// RemoveVideo handles PATCH /v1/playlists/remove/{videoId}/{playlistId}
func (h *PlaylistHandler) RemoveVideo(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	videoID, ok := pathID(w, r, "videoId", "Invalid playlist or video ID")
	if !ok {
		return
	}
	playlistID, ok := pathID(w, r, "playlistId", "Invalid playlist or video ID")
	if !ok {
		return
	}

	playlist, err := h.svc.RemoveVideo(r.Context(), playlistID, videoID, userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	Success(w, http.StatusOK, playlist, "Video removed from playlist successfully")
}
