package handlers

//go:generate mockgen -source=profile.go -destination=profile_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/dev-connect/internal/models"
)

// ProfileViewer returns the caller's profile.
type ProfileViewer interface {
	View(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// ProfileEditor applies a partial profile update.
type ProfileEditor interface {
	Edit(ctx context.Context, userID uuid.UUID, fields map[string]json.RawMessage) (*models.UserDB, error)
}

// PasswordChanger replaces the caller's password.
type PasswordChanger interface {
	ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error
}

// NewProfileViewHandler returns the authenticated user's profile.
// @Summary View profile
// @Tags profile
// @Produce json
// @Success 200 {object} models.ProfileResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /profile/view [get]
// @Security BearerAuth
func NewProfileViewHandler(svc ProfileViewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		user, err := svc.View(r.Context(), userID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, models.ProfileResponse{
			Message: "Profile retrieved successfully",
			User:    user.Profile(),
		})
	}
}

// NewProfileEditHandler updates the editable profile fields.
// @Summary Edit profile
// @Description Accepts any subset of firstName, lastName, age, gender, photoUrl
// @Tags profile
// @Accept json
// @Produce json
// @Param fields body object true "Fields to update"
// @Success 200 {object} models.ProfileResponse
// @Failure 400 {object} models.ErrorResponse "Invalid or disallowed fields"
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /profile/edit [patch]
// @Security BearerAuth
func NewProfileEditHandler(svc ProfileEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		var fields map[string]json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
			badRequest(w, "Invalid request body")
			return
		}

		user, err := svc.Edit(r.Context(), userID, fields)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, models.ProfileResponse{
			Message: "Profile updated successfully",
			User:    user.Profile(),
		})
	}
}

// NewPasswordChangeHandler changes the password after checking the current one.
// @Summary Change password
// @Tags profile
// @Accept json
// @Produce json
// @Param passwordChangeRequest body models.PasswordChangeRequest true "Current and new password"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse "Missing or weak password"
// @Failure 401 {object} models.ErrorResponse "Current password is incorrect"
// @Failure 500 {object} models.ErrorResponse
// @Router /profile/edit/password [patch]
// @Security BearerAuth
func NewPasswordChangeHandler(svc PasswordChanger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		var req models.PasswordChangeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			badRequest(w, "Invalid request body")
			return
		}

		if err := svc.ChangePassword(r.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
			writeError(w, r, err)
			return
		}

		writeMessage(w, http.StatusOK, "Password updated successfully")
	}
}
