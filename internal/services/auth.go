package services

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/dev-connect/internal/errs"
	"github.com/sbilibin2017/dev-connect/internal/jwt"
	"github.com/sbilibin2017/dev-connect/internal/logger"
	"github.com/sbilibin2017/dev-connect/internal/models"
	"github.com/sbilibin2017/dev-connect/internal/validation"
	"golang.org/x/crypto/bcrypt"
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Create(ctx context.Context, user models.NewUser) (*models.UserDB, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, upd models.ProfileUpdate) (*models.UserDB, error)
	UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error
}

// TokenIssuer issues session tokens and parses them back into claims.
type TokenIssuer interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// TokenRevoker remembers logged-out tokens until they expire.
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
}

const msgInvalidCredentials = "Invalid email or password"

// AuthService handles signup, login and logout.
type AuthService struct {
	reader  UserReader
	writer  UserWriter
	tokens  TokenIssuer
	revoker TokenRevoker
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, tokens TokenIssuer, revoker TokenRevoker) *AuthService {
	return &AuthService{
		reader:  reader,
		writer:  writer,
		tokens:  tokens,
		revoker: revoker,
	}
}

// Signup validates and registers a new user.
func (svc *AuthService) Signup(ctx context.Context, req models.SignupRequest) (*models.UserDB, error) {
	newUser, fieldErrs := validation.ValidateSignup(req)
	if !fieldErrs.Empty() {
		return nil, errs.InvalidFields("Validation failed", fieldErrs)
	}

	existing, err := svc.reader.GetByEmail(ctx, newUser.Email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Infow("email already registered", "email", newUser.Email)
		return nil, errs.New(errs.KindConflict, "Email already registered")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}
	newUser.PasswordHash = string(hashedPassword)

	user, err := svc.writer.Create(ctx, newUser)
	if err != nil {
		if errors.Is(err, errs.ErrDuplicate) {
			return nil, errs.New(errs.KindConflict, "Email already registered")
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	return user, nil
}

// Login authenticates a user and returns a session token with the user.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, *models.UserDB, error) {
	email = validation.NormalizeEmail(email)
	if email == "" || password == "" {
		return "", nil, errs.New(errs.KindInvalidInput, "Email and password are required")
	}

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", nil, err
	}
	if user == nil {
		logger.Log.Infow("login for unknown email", "email", email)
		return "", nil, errs.New(errs.KindUnauthenticated, msgInvalidCredentials)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("invalid credentials", "user_id", user.UserID)
		return "", nil, errs.New(errs.KindUnauthenticated, msgInvalidCredentials)
	}

	token, err := svc.tokens.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", nil, err
	}

	return token, user, nil
}

// Logout revokes the given token for the rest of its lifetime. Missing or
// unparseable tokens have nothing to revoke.
func (svc *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	claims, err := svc.tokens.GetClaims(ctx, token)
	if err != nil {
		logger.Log.Infow("logout with unusable token", "err", err)
		return nil
	}

	if err := svc.revoker.Revoke(ctx, claims.TokenID(), claims.ExpiresIn(time.Now())); err != nil {
		logger.Log.Errorw("failed to revoke token", "user_id", claims.UserID, "err", err)
		return err
	}

	return nil
}
