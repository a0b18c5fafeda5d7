package handlers

//go:generate mockgen -source=signup.go -destination=signup_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/dev-connect/internal/models"
)

// Signuper defines the interface that the signup service must implement.
type Signuper interface {
	Signup(ctx context.Context, req models.SignupRequest) (*models.UserDB, error)
}

// NewSignupHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account. Email must be unique; the password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param signupRequest body models.SignupRequest true "User registration request"
// @Success 201 {object} models.ProfileResponse "User successfully registered"
// @Failure 400 {object} models.ErrorResponse "Invalid request or validation errors"
// @Failure 409 {object} models.ErrorResponse "Email already registered"
// @Failure 429 {object} models.ErrorResponse "Too many requests"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/signup [post]
func NewSignupHandler(svc Signuper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.SignupRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			badRequest(w, "Invalid request body")
			return
		}

		user, err := svc.Signup(r.Context(), req)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, models.ProfileResponse{
			Message: "User added successfully",
			User:    user.Profile(),
		})
	}
}
