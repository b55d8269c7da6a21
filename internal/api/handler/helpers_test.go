package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/sohans1092004/Youtube-Backend-project/internal/api/middleware"
)

// envelope is Response with the payload left raw for per-test decoding.
type envelope struct {
	StatusCode int             `json:"statusCode"`
	Data       json.RawMessage `json:"data"`
	Message    string          `json:"message"`
	Success    bool            `json:"success"`
}

type testRequest struct {
	method      string
	pattern     string
	target      string
	body        io.Reader
	contentType string
	user        bson.ObjectID
}

// serve mounts h under the route pattern and runs the request through it.
// A non-zero user is placed in the context as the authenticated caller.
func (tr testRequest) serve(t *testing.T, h http.HandlerFunc) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	r := chi.NewRouter()
	r.Method(tr.method, tr.pattern, h)

	req := httptest.NewRequest(tr.method, tr.target, tr.body)
	if tr.contentType != "" {
		req.Header.Set("Content-Type", tr.contentType)
	}
	if !tr.user.IsZero() {
		req = req.WithContext(middleware.WithUserID(req.Context(), tr.user))
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("failed to unmarshal response %q: %v", rec.Body.String(), err)
		}
	}
	return rec, env
}

func assertEnvelope(t *testing.T, rec *httptest.ResponseRecorder, env envelope, wantStatus int, wantMessage string) {
	t.Helper()

	if rec.Code != wantStatus {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, wantStatus, rec.Body.String())
	}
	if env.StatusCode != wantStatus {
		t.Errorf("statusCode = %d, want %d", env.StatusCode, wantStatus)
	}
	if wantSuccess := wantStatus < http.StatusBadRequest; env.Success != wantSuccess {
		t.Errorf("success = %v, want %v", env.Success, wantSuccess)
	}
	if wantMessage != "" && env.Message != wantMessage {
		t.Errorf("message = %q, want %q", env.Message, wantMessage)
	}
	if wantStatus >= http.StatusBadRequest && string(env.Data) != "null" {
		t.Errorf("failure data = %s, want null", env.Data)
	}
}
