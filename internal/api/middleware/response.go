package middleware

import (
	"encoding/json"
	"net/http"
)

// errorBody mirrors the API response envelope for failures raised before a
// handler runs.
type errorBody struct {
	StatusCode int    `json:"statusCode"`
	Data       any    `json:"data"`
	Message    string `json:"message"`
	Success    bool   `json:"success"`
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{
		StatusCode: status,
		Message:    message,
	})
}
