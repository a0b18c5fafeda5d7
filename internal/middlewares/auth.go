package middlewares

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/dev-connect/internal/jwt"
	"github.com/sbilibin2017/dev-connect/internal/logger"
)

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// RevocationChecker reports tokens invalidated by logout.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// AuthMiddleware rejects requests without a valid, unrevoked session token
// and stores the authenticated user id in the request context.
func AuthMiddleware(tokener Tokener, revocations RevocationChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Infow("authorization failed", "err", err)
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Infow("authorization failed", "err", err)
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			if revocations != nil {
				revoked, err := revocations.IsRevoked(ctx, claims.TokenID())
				if err != nil {
					logger.Log.Errorw("failed to check token revocation", "err", err)
					writeError(w, http.StatusInternalServerError, "Internal server error")
					return
				}
				if revoked {
					logger.Log.Infow("authorization failed", "err", "token revoked", "user_id", claims.UserID)
					writeError(w, http.StatusUnauthorized, "Unauthorized")
					return
				}
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(ctx, claims.UserID)))
		})
	}
}

type userIDKey struct{}

// WithUserID stores the authenticated user id in ctx.
func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// GetUserIDFromContext returns the authenticated user id, if any.
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDKey{}).(uuid.UUID)
	return userID, ok
}
