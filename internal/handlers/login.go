package handlers

//go:generate mockgen -source=login.go -destination=login_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/sbilibin2017/dev-connect/internal/jwt"
	"github.com/sbilibin2017/dev-connect/internal/models"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (string, *models.UserDB, error)
}

// CookieConfig controls the session cookie.
type CookieConfig struct {
	Secure bool
	MaxAge time.Duration
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticates the user, sets the session cookie and returns the token
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body models.LoginRequest true "Login Request"
// @Success 200 {object} models.LoginResponse "Token issued"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Invalid email or password"
// @Failure 429 {object} models.ErrorResponse "Too many requests"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func NewLoginHandler(svc Loginer, cookie CookieConfig) http.HandlerFunc {
	if cookie.MaxAge <= 0 {
		cookie.MaxAge = jwt.DefaultExpiration
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			badRequest(w, "Invalid request body")
			return
		}

		token, user, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			writeError(w, r, err)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     jwt.CookieName,
			Value:    token,
			Path:     "/",
			MaxAge:   int(cookie.MaxAge.Seconds()),
			HttpOnly: true,
			Secure:   cookie.Secure,
			SameSite: http.SameSiteStrictMode,
		})

		writeJSON(w, http.StatusOK, models.LoginResponse{
			Message: "Login successful",
			Token:   token,
			User:    user.Profile(),
		})
	}
}
