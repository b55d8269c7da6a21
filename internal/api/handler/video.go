package handler

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/sohans1092004/Youtube-Backend-project/internal/domain/model"
	"github.com/sohans1092004/Youtube-Backend-project/internal/usecase"
)

const multipartMemory = 32 << 20

// VideoHandlerConfig controls multipart intake.
type VideoHandlerConfig struct {
	// TempDir receives uploaded files until they are pushed to storage.
	TempDir string
	// MaxUploadBytes caps the whole request body.
	MaxUploadBytes int64
}

// VideoHandler handles video-related HTTP requests.
type VideoHandler struct {
	svc usecase.VideoService
	cfg VideoHandlerConfig
}

// NewVideoHandler creates a new VideoHandler.
func NewVideoHandler(svc usecase.VideoService, cfg VideoHandlerConfig) *VideoHandler {
	return &VideoHandler{svc: svc, cfg: cfg}
}

// List handles GET /v1/videos
func (h *VideoHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	rawUser := q.Get("userId")
	if rawUser == "" {
		Fail(w, http.StatusBadRequest, "userId is required")
		return
	}
	userID, err := model.ParseID(rawUser)
	if err != nil {
		Fail(w, http.StatusBadRequest, "Invalid userId")
		return
	}

	page, err := model.ParsePage(q.Get("page"), q.Get("limit"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	query, err := model.NewVideoQuery(userID, page, q.Get("query"), q.Get("sortBy"), q.Get("sortType"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	result, err := h.svc.ListVideos(r.Context(), query)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	Success(w, http.StatusOK, result, "Videos fetched successfully")
}

// Publish handles POST /v1/videos
func (h *VideoHandler) Publish(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	if !h.parseMultipart(w, r) {
		return
	}
	defer r.MultipartForm.RemoveAll()

	videoPath, err := h.saveUpload(r, "videoFile")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	defer removeTemp(videoPath)

	thumbnailPath, err := h.saveUpload(r, "thumbnail")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	defer removeTemp(thumbnailPath)

	video, err := h.svc.PublishVideo(r.Context(), usecase.PublishVideoInput{
		Owner:         userID,
		Title:         r.FormValue("title"),
		Description:   r.FormValue("description"),
		VideoPath:     videoPath,
		ThumbnailPath: thumbnailPath,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	Success(w, http.StatusOK, video, "Video published successfully")
}

// Get handles GET /v1/videos/{videoId}
func (h *VideoHandler) Get(w http.ResponseWriter, r *http.Request) {
	videoID, ok := pathID(w, r, "videoId", "Invalid video id")
	if !ok {
		return
	}

	video, err := h.svc.GetVideo(r.Context(), videoID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	Success(w, http.StatusOK, video, "Video fetched successfully")
}

// Update handles PATCH /v1/videos/{videoId}
func (h *VideoHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	videoID, ok := pathID(w, r, "videoId", "Invalid video id")
	if !ok {
		return
	}

	if !h.parseMultipart(w, r) {
		return
	}
	defer r.MultipartForm.RemoveAll()

	thumbnailPath, err := h.saveUpload(r, "thumbnail")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	defer removeTemp(thumbnailPath)

	video, err := h.svc.UpdateVideo(r.Context(), usecase.UpdateVideoInput{
		VideoID:       videoID,
		UserID:        userID,
		Title:         r.FormValue("title"),
		Description:   r.FormValue("description"),
		ThumbnailPath: thumbnailPath,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	Success(w, http.StatusOK, video, "Video updated successfully")
}

// Delete handles DELETE /v1/videos/{videoId}
func (h *VideoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	videoID, ok := pathID(w, r, "videoId", "Invalid video id")
	if !ok {
		return
	}

	video, err := h.svc.DeleteVideo(r.Context(), videoID, userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	Success(w, http.StatusOK, video, "Video deleted successfully")
}

// TogglePublish handles PATCH /v1/videos/toggle/publish/{videoId}
func (h *VideoHandler) TogglePublish(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	videoID, ok := pathID(w, r, "videoId", "Invalid video id")
	if !ok {
		return
	}

	video, err := h.svc.TogglePublish(r.Context(), videoID, userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	Success(w, http.StatusOK, video, "Video publish status updated successfully")
}

func (h *VideoHandler) parseMultipart(w http.ResponseWriter, r *http.Request) bool {
	if h.cfg.MaxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxUploadBytes)
	}

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			Fail(w, http.StatusRequestEntityTooLarge, "Upload exceeds the maximum allowed size")
			return false
		}
		Fail(w, http.StatusBadRequest, "Invalid multipart form")
		return false
	}
	return true
}

// saveUpload copies the multipart file field into the temp dir and returns
// the local path. An absent field yields an empty path.
func (h *VideoHandler) saveUpload(r *http.Request, field string) (string, error) {
	src, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read form file %s: %w", field, err)
	}
	defer src.Close()

	dst, err := os.CreateTemp(h.cfg.TempDir, "upload-*"+filepath.Ext(header.Filename))
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		removeTemp(dst.Name())
		return "", fmt.Errorf("write temp file: %w", err)
	}

	return dst.Name(), nil
}

// removeTemp deletes a temp upload. The media uploader usually got there first.
func removeTemp(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to remove temp upload", "path", path, "error", err)
	}
}
