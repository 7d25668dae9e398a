package middlewares

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/minigame-scores/internal/logger"
)

// Tokener defines the minimal interface needed by the auth middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetUID(ctx context.Context, tokenString string) (int64, error)
}

// uidContextKey is an unexported type for the authenticated uid context key
type uidContextKey struct{}

var uidKey = uidContextKey{}

// AuthMiddleware returns a middleware that validates the session token
// and stores the authenticated player uid in the request context.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			uid, err := tokener.GetUID(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(SetUIDToContext(ctx, uid)))
		})
	}
}

// SetUIDToContext stores the authenticated player uid in the context.
func SetUIDToContext(ctx context.Context, uid int64) context.Context {
	return context.WithValue(ctx, uidKey, uid)
}

// GetUIDFromContext retrieves the authenticated player uid from the context.
// Returns 0 if not present.
func GetUIDFromContext(ctx context.Context) int64 {
	uid, _ := ctx.Value(uidKey).(int64)
	return uid
}
