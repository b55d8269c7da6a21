package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/sohans1092004/Youtube-Backend-project/internal/api/middleware"
	"github.com/sohans1092004/Youtube-Backend-project/internal/domain/model"
	"github.com/sohans1092004/Youtube-Backend-project/internal/domain/repository"
	"github.com/sohans1092004/Youtube-Backend-project/internal/usecase"
)

// Response is the envelope every endpoint answers with. Failures carry
// null data and success false.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Data       any    `json:"data"`
	Message    string `json:"message"`
	Success    bool   `json:"success"`
}

func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			slog.Error("failed to encode response", "error", err)
		}
	}
}

func Success(w http.ResponseWriter, status int, data any, message string) {
	JSON(w, status, Response{
		StatusCode: status,
		Data:       data,
		Message:    message,
		Success:    status < http.StatusBadRequest,
	})
}

func Fail(w http.ResponseWriter, status int, message string) {
	JSON(w, status, Response{
		StatusCode: status,
		Message:    message,
	})
}

// writeServiceError maps domain and usecase errors to a status and message.
// Anything unrecognised is logged and answered with a generic 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, usecase.ErrForbidden):
		Fail(w, http.StatusForbidden, "You are not allowed to modify this resource")

	case errors.Is(err, repository.ErrVideoNotFound):
		Fail(w, http.StatusNotFound, "Video not found")
	case errors.Is(err, repository.ErrCommentNotFound):
		Fail(w, http.StatusNotFound, "Comment not found")
	case errors.Is(err, repository.ErrPlaylistNotFound):
		Fail(w, http.StatusNotFound, "Playlist not found")
	case errors.Is(err, repository.ErrUserNotFound):
		Fail(w, http.StatusNotFound, "User not found")
	case errors.Is(err, usecase.ErrNoVideosFound):
		Fail(w, http.StatusNotFound, "No videos found")
	case errors.Is(err, usecase.ErrNoChannelVideos):
		Fail(w, http.StatusNotFound, "No videos uploaded")
	case errors.Is(err, usecase.ErrNoPlaylists):
		Fail(w, http.StatusNotFound, "No playlists found")
	case errors.Is(err, usecase.ErrNoSubscribedChannels):
		Fail(w, http.StatusNotFound, "No subscribed channels found")

	case errors.Is(err, model.ErrEmptyTitle), errors.Is(err, model.ErrEmptyDescription):
		Fail(w, http.StatusBadRequest, "Title and description are required")
	case errors.Is(err, model.ErrMissingMedia):
		Fail(w, http.StatusBadRequest, "Video file and thumbnail are required")
	case errors.Is(err, model.ErrPlaylistDetailsRequired):
		Fail(w, http.StatusBadRequest, "Name and description are required")
	case errors.Is(err, model.ErrSelfSubscription):
		Fail(w, http.StatusBadRequest, "You cannot subscribe to your own channel")
	case errors.Is(err, model.ErrEmptyContent):
		Fail(w, http.StatusBadRequest, "Comment content is required")
	case errors.Is(err, model.ErrMissingID), errors.Is(err, model.ErrInvalidID):
		Fail(w, http.StatusBadRequest, "Invalid id")
	case errors.Is(err, model.ErrTitleTooLong),
		errors.Is(err, model.ErrInvalidUserID),
		errors.Is(err, model.ErrInvalidLikeTarget),
		errors.Is(err, model.ErrInvalidPage),
		errors.Is(err, model.ErrInvalidLimit),
		errors.Is(err, model.ErrInvalidSortField),
		errors.Is(err, model.ErrInvalidSortType):
		Fail(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, repository.ErrUnsupportedMedia):
		Fail(w, http.StatusBadRequest, "Only video and image files are accepted")

	default:
		slog.Error("request failed",
			"request_id", middleware.GetRequestID(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		Fail(w, http.StatusInternalServerError, "Something went wrong")
	}
}

// pathID parses the named URL parameter as an ObjectID. On failure it
// answers 400 with invalidMessage and returns false.
func pathID(w http.ResponseWriter, r *http.Request, name, invalidMessage string) (bson.ObjectID, bool) {
	id, err := model.ParseID(chi.URLParam(r, name))
	if err != nil {
		Fail(w, http.StatusBadRequest, invalidMessage)
		return bson.NilObjectID, false
	}
	return id, true
}

// currentUser returns the authenticated caller or answers 401.
func currentUser(w http.ResponseWriter, r *http.Request) (bson.ObjectID, bool) {
	id, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		Fail(w, http.StatusUnauthorized, "Unauthorized request")
		return bson.NilObjectID, false
	}
	return id, true
}

func decodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
