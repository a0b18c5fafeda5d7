package services

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/sbilibin2017/dev-connect/internal/errs"
	"github.com/sbilibin2017/dev-connect/internal/logger"
	"github.com/sbilibin2017/dev-connect/internal/models"
	"github.com/sbilibin2017/dev-connect/internal/validation"
	"golang.org/x/crypto/bcrypt"
)

// ProfileService reads and edits the caller's own account.
type ProfileService struct {
	reader UserReader
	writer UserWriter
}

// NewProfileService creates a new ProfileService instance.
func NewProfileService(reader UserReader, writer UserWriter) *ProfileService {
	return &ProfileService{reader: reader, writer: writer}
}

// View returns the user's profile.
func (svc *ProfileService) View(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, errs.New(errs.KindNotFound, "User not found")
	}
	return user, nil
}

// Edit applies a partial profile update given as raw JSON fields.
func (svc *ProfileService) Edit(ctx context.Context, userID uuid.UUID, fields map[string]json.RawMessage) (*models.UserDB, error) {
	if len(fields) == 0 {
		return nil, errs.New(errs.KindInvalidInput, "No fields to update")
	}

	upd, fieldErrs := validation.ValidateProfileEdit(fields)
	if !fieldErrs.Empty() {
		return nil, errs.InvalidFields("Invalid edit request", fieldErrs)
	}
	if upd.IsEmpty() {
		return svc.View(ctx, userID)
	}

	user, err := svc.writer.UpdateProfile(ctx, userID, upd)
	if err != nil {
		logger.Log.Errorw("failed to update profile", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, errs.New(errs.KindNotFound, "User not found")
	}
	return user, nil
}

// ChangePassword replaces the password after verifying the current one.
func (svc *ProfileService) ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return errs.New(errs.KindInvalidInput, "Current and new password are required")
	}

	user, err := svc.View(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return errs.New(errs.KindUnauthenticated, "Current password is incorrect")
	}

	if msg := validation.ValidatePassword(newPassword); msg != "" {
		return errs.InvalidFields("Invalid new password", map[string]string{"newPassword": msg})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	if err := svc.writer.UpdatePassword(ctx, userID, string(hashedPassword)); err != nil {
		logger.Log.Errorw("failed to update password", "user_id", userID, "err", err)
		return err
	}
	return nil
}
