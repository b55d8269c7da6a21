package handler

import (
	"net/http"

	"github.com/sohans1092004/Youtube-Backend-project/internal/usecase"
)

type SubscriptionStateResponse struct {
	Subscribed bool `json:"subscribed"`
}

// SubscriptionHandler handles channel subscription HTTP requests.
type SubscriptionHandler struct {
	svc usecase.SubscriptionService
}

// NewSubscriptionHandler creates a new SubscriptionHandler.
func NewSubscriptionHandler(svc usecase.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{svc: svc}
}

// Toggle handles POST /v1/subscriptions/c/{channelId}
func (h *SubscriptionHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	channelID, ok := pathID(w, r, "channelId", "Invalid channel Id")
	if !ok {
		return
	}

	outcome, err := h.svc.ToggleSubscription(r.Context(), userID, channelID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if outcome.Present() {
		Success(w, http.StatusCreated, SubscriptionStateResponse{Subscribed: true}, "Subscribed successfully")
		return
	}
	Success(w, http.StatusOK, SubscriptionStateResponse{Subscribed: false}, "Unsubscribed successfully")
}

// Subscribers handles GET /v1/subscriptions/c/{channelId}
func (h *SubscriptionHandler) Subscribers(w http.ResponseWriter, r *http.Request) {
	channelID, ok := pathID(w, r, "channelId", "Invalid channel Id")
	if !ok {
		return
	}

	subscribers, err := h.svc.ListSubscribers(r.Context(), channelID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	Success(w, http.StatusOK, subscribers, "Subscribers fetched successfully")
}

// SubscribedChannels handles GET /v1/subscriptions/u/{subscriberId}
func (h *SubscriptionHandler) SubscribedChannels(w http.ResponseWriter, r *http.Request) {
	subscriberID, ok := pathID(w, r, "subscriberId", "Invalid subscriber Id")
	if !ok {
		return
	}

	channels, err := h.svc.ListSubscribedChannels(r.Context(), subscriberID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	Success(w, http.StatusOK, channels, "Subscribed channels fetched successfully")
}
