package handler

import (
	"net/http"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/sohans1092004/Youtube-Backend-project/internal/domain/model"
	"github.com/sohans1092004/Youtube-Backend-project/internal/usecase"
)

// LikeHandler handles like toggles on videos, comments and tweets.
type LikeHandler struct {
	svc usecase.LikeService
}

// NewLikeHandler creates a new LikeHandler.
func NewLikeHandler(svc usecase.LikeService) *LikeHandler {
	return &LikeHandler{svc: svc}
}

// ToggleVideo handles POST /v1/likes/toggle/v/{videoId}
func (h *LikeHandler) ToggleVideo(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, "videoId", "Invalid video id", "Video", model.VideoTarget)
}

// ToggleComment handles POST /v1/likes/toggle/c/{commentId}
func (h *LikeHandler) ToggleComment(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, "commentId", "Invalid comment id", "Comment", model.CommentTarget)
}

// ToggleTweet handles POST /v1/likes/toggle/t/{tweetId}
func (h *LikeHandler) ToggleTweet(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, "tweetId", "Invalid tweet id", "Tweet", model.TweetTarget)
}

// toggle answers with the new like on "liked" and null data on "unliked".
func (h *LikeHandler) toggle(
	w http.ResponseWriter,
	r *http.Request,
	param, invalidMessage, noun string,
	target func(bson.ObjectID) model.LikeTarget,
) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, param, invalidMessage)
	if !ok {
		return
	}

	like, outcome, err := h.svc.ToggleLike(r.Context(), target(id), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if !outcome.Present() {
		Success(w, http.StatusOK, nil, noun+" unliked successfully")
		return
	}
	Success(w, http.StatusOK, like, noun+" liked successfully")
}

// LikedVideos handles GET /v1/likes/videos
func (h *LikeHandler) LikedVideos(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	videos, err := h.svc.LikedVideos(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	Success(w, http.StatusOK, videos, "Liked videos fetched successfully")
}
