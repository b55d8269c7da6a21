package handler

import (
	"net/http"

	"github.com/sohans1092004/Youtube-Backend-project/internal/domain/model"
	"github.com/sohans1092004/Youtube-Backend-project/internal/usecase"
)

type CommentRequest struct {
	Content string `json:"content"`
}

type CommentDeletedResponse struct {
	IsDeleted bool `json:"isDeleted"`
}

// CommentHandler handles comment-related HTTP requests.
type CommentHandler struct {
	svc usecase.CommentService
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(svc usecase.CommentService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

// List handles GET /v1/comments/{videoId}
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	videoID, ok := pathID(w, r, "videoId", "Invalid video id")
	if !ok {
		return
	}

	page, err := model.ParsePage(r.URL.Query().Get("page"), r.URL.Query().Get("limit"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	comments, err := h.svc.ListComments(r.Context(), videoID, page)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	message := "Comments fetched successfully!"
	if len(comments) == 0 {
		message = "No Comments Found"
	}
	Success(w, http.StatusOK, comments, message)
}

// Add handles POST /v1/comments/{videoId}
func (h *CommentHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	videoID, ok := pathID(w, r, "videoId", "Invalid video id")
	if !ok {
		return
	}

	var req CommentRequest
	if err := decodeJSON(r, &req); err != nil {
		Fail(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	comment, err := h.svc.AddComment(r.Context(), videoID, userID, req.Content)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	Success(w, http.StatusOK, comment, "Comment successfully added")
}

// Update handles PATCH /v1/comments/c/{commentId}
func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	commentID, ok := pathID(w, r, "commentId", "Invalid comment id")
	if !ok {
		return
	}

	var req CommentRequest
	if err := decodeJSON(r, &req); err != nil {
		Fail(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	comment, err := h.svc.UpdateComment(r.Context(), commentID, userID, req.Content)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	Success(w, http.StatusOK, comment, "Successfully updated comment")
}

// Delete handles DELETE /v1/comments/c/{commentId}
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	commentID, ok := pathID(w, r, "commentId", "Invalid comment id")
	if !ok {
		return
	}

	if err := h.svc.DeleteComment(r.Context(), commentID, userID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	Success(w, http.StatusOK, CommentDeletedResponse{IsDeleted: true}, "Comment deleted successfully")
}
