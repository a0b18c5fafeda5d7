package handlers

//go:generate mockgen -source=logout.go -destination=logout_mock.go -package=handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/sbilibin2017/dev-connect/internal/jwt"
)

// Logouter defines the interface that the logout service must implement.
type Logouter interface {
	Logout(ctx context.Context, token string) error
}

// TokenExtractor reads the session token from a request.
type TokenExtractor interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// NewLogoutHandler returns an HTTP handler that clears the session cookie and
// revokes the presented token, if any.
// @Summary User logout
// @Description Clears the session cookie and revokes the current token
// @Tags auth
// @Produce json
// @Success 200 {object} models.MessageResponse "Logged out"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/logout [post]
func NewLogoutHandler(svc Logouter, tokens TokenExtractor, cookie CookieConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{
			Name:     jwt.CookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			Expires:  time.Unix(0, 0),
			HttpOnly: true,
			Secure:   cookie.Secure,
			SameSite: http.SameSiteStrictMode,
		})

		token, _ := tokens.GetTokenFromRequest(r.Context(), r)
		if err := svc.Logout(r.Context(), token); err != nil {
			writeError(w, r, err)
			return
		}

		writeMessage(w, http.StatusOK, "Logged out successfully")
	}
}
