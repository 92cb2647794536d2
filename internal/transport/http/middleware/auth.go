package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"diaryhub/internal/service"
)

type contextKey string

const UserIDKey contextKey = "user_id"

// TokenHeader is the request header carrying the bearer token.
const TokenHeader = "x-access-token"

// Auth resolves the caller's identity from the x-access-token header and puts
// the user id into the request context. The token is verified against both
// its signature/expiry and the revocation list.
func Auth(tokens *service.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := r.Header.Get(TokenHeader)
			if tokenStr == "" {
				writeWarning(w, http.StatusUnauthorized, "Token is missing")
				return
			}

			userID, err := tokens.Verify(r.Context(), tokenStr)
			if err != nil {
				if errors.Is(err, service.ErrTokenRevoked) {
					writeWarning(w, http.StatusUnauthorized, "Token has been revoked")
				} else {
					writeWarning(w, http.StatusUnauthorized, "Invalid or expired token")
				}
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserID extracts the authenticated user id from the request context.
func GetUserID(ctx context.Context) uuid.UUID {
	return ctx.Value(UserIDKey).(uuid.UUID)
}

func writeWarning(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(`{"warning":"` + message + `"}`))
}
