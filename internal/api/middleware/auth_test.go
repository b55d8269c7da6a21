package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/v2/bson"
)

var testSecret = []byte("test-secret")

func signToken(t *testing.T, claims AccessClaims, method jwt.SigningMethod, key any) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func validClaims(userID bson.ObjectID) AccessClaims {
	return AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.Hex(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func TestAuthenticate(t *testing.T) {
	userID := bson.NewObjectID()

	expired := validClaims(userID)
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	legacy := AccessClaims{
		UserID: userID.Hex(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	badSubject := validClaims(userID)
	badSubject.Subject = "not-an-object-id"

	tests := []struct {
		name       string
		setup      func(t *testing.T, r *http.Request)
		wantStatus int
		wantMsg    string
	}{
		{
			name: "bearer header",
			setup: func(t *testing.T, r *http.Request) {
				r.Header.Set("Authorization", "Bearer "+signToken(t, validClaims(userID), jwt.SigningMethodHS256, testSecret))
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "cookie",
			setup: func(t *testing.T, r *http.Request) {
				r.AddCookie(&http.Cookie{Name: "accessToken", Value: signToken(t, validClaims(userID), jwt.SigningMethodHS256, testSecret)})
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "_id claim",
			setup: func(t *testing.T, r *http.Request) {
				r.Header.Set("Authorization", "Bearer "+signToken(t, legacy, jwt.SigningMethodHS256, testSecret))
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "no token",
			setup:      func(t *testing.T, r *http.Request) {},
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "Unauthorized request",
		},
		{
			name: "wrong secret",
			setup: func(t *testing.T, r *http.Request) {
				r.Header.Set("Authorization", "Bearer "+signToken(t, validClaims(userID), jwt.SigningMethodHS256, []byte("other")))
			},
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "Invalid access token",
		},
		{
			name: "wrong algorithm",
			setup: func(t *testing.T, r *http.Request) {
				r.Header.Set("Authorization", "Bearer "+signToken(t, validClaims(userID), jwt.SigningMethodHS512, testSecret))
			},
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "Invalid access token",
		},
		{
			name: "expired",
			setup: func(t *testing.T, r *http.Request) {
				r.Header.Set("Authorization", "Bearer "+signToken(t, expired, jwt.SigningMethodHS256, testSecret))
			},
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "Invalid access token",
		},
		{
			name: "subject is not an object id",
			setup: func(t *testing.T, r *http.Request) {
				r.Header.Set("Authorization", "Bearer "+signToken(t, badSubject, jwt.SigningMethodHS256, testSecret))
			},
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "Invalid access token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUser bson.ObjectID
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				id, ok := UserIDFromContext(r.Context())
				if !ok {
					t.Error("expected user ID in context")
				}
				gotUser = id
			})

			req := httptest.NewRequest(http.MethodGet, "/v1/videos", nil)
			tt.setup(t, req)
			rec := httptest.NewRecorder()

			Authenticate(testSecret)(next).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusOK {
				if gotUser != userID {
					t.Errorf("user = %v, want %v", gotUser, userID)
				}
				return
			}

			var body errorBody
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("failed to unmarshal response: %v", err)
			}
			if body.Success || body.Data != nil || body.StatusCode != tt.wantStatus {
				t.Errorf("unexpected envelope: %+v", body)
			}
			if body.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", body.Message, tt.wantMsg)
			}
		})
	}
}

func TestUserIDFromContext_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, ok := UserIDFromContext(req.Context()); ok {
		t.Error("expected no user in a bare context")
	}
}
