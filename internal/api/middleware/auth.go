package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/v2/bson"
)

const accessTokenCookie = "accessToken"

var (
	errMissingToken = errors.New("missing access token")
	errInvalidToken = errors.New("invalid access token")
)

// AccessClaims are the claims carried by an access token. The user ID is
// read from the subject, falling back to the _id claim.
type AccessClaims struct {
	UserID string `json:"_id,omitempty"`
	jwt.RegisteredClaims
}

func (c AccessClaims) userHex() string {
	if c.Subject != "" {
		return c.Subject
	}
	return c.UserID
}

// Authenticate verifies an HS256 access token taken from the Authorization
// bearer header or the accessToken cookie and stores the caller's user ID in
// the request context. Requests without a valid token get 401.
func Authenticate(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, err := verify(r, secret)
			if err != nil {
				if errors.Is(err, errMissingToken) {
					writeError(w, http.StatusUnauthorized, "Unauthorized request")
					return
				}
				writeError(w, http.StatusUnauthorized, "Invalid access token")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext returns the authenticated caller set by Authenticate.
func UserIDFromContext(ctx context.Context) (bson.ObjectID, bool) {
	id, ok := ctx.Value(userIDKey).(bson.ObjectID)
	return id, ok && !id.IsZero()
}

// WithUserID returns a context carrying userID as the authenticated caller.
func WithUserID(ctx context.Context, userID bson.ObjectID) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func verify(r *http.Request, secret []byte) (bson.ObjectID, error) {
	raw := bearerToken(r)
	if raw == "" {
		return bson.NilObjectID, errMissingToken
	}

	var claims AccessClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return bson.NilObjectID, errInvalidToken
	}

	id, err := bson.ObjectIDFromHex(claims.userHex())
	if err != nil {
		return bson.NilObjectID, errInvalidToken
	}
	return id, nil
}

func bearerToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		token, ok := strings.CutPrefix(h, "Bearer ")
		if ok {
			return strings.TrimSpace(token)
		}
	}
	if c, err := r.Cookie(accessTokenCookie); err == nil {
		return c.Value
	}
	return ""
}
