package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/dev-connect/internal/errs"
	"github.com/sbilibin2017/dev-connect/internal/jwt"
	"github.com/sbilibin2017/dev-connect/internal/models"
	"github.com/sbilibin2017/dev-connect/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func strPtr(s string) *string { return &s }

func TestAuthService_Signup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockTokens := services.NewMockTokenIssuer(ctrl)
	mockRevoker := services.NewMockTokenRevoker(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockTokens, mockRevoker)

	valid := models.SignupRequest{
		FirstName: "Jane",
		LastName:  strPtr("Doe"),
		Email:     "  Jane@Example.com ",
		Password:  "Secret#123",
	}

	tests := []struct {
		name      string
		req       models.SignupRequest
		mockSetup func()
		wantKind  errs.Kind
		wantErr   bool
	}{
		{
			name: "successful signup",
			req:  valid,
			mockSetup: func() {
				mockReader.EXPECT().GetByEmail(gomock.Any(), "jane@example.com").Return(nil, nil)
				mockWriter.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, u models.NewUser) (*models.UserDB, error) {
						assert.Equal(t, "jane@example.com", u.Email)
						assert.Equal(t, models.DefaultPhotoURL, u.PhotoURL)
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("Secret#123")))
						return &models.UserDB{UserID: uuid.New(), Email: u.Email, FirstName: u.FirstName}, nil
					})
			},
		},
		{
			name:      "validation failure",
			req:       models.SignupRequest{FirstName: "J", Email: "nope", Password: "weak"},
			mockSetup: func() {},
			wantKind:  errs.KindInvalidInput,
			wantErr:   true,
		},
		{
			name:      "password longer than bcrypt accepts",
			req:       models.SignupRequest{FirstName: "Jane", Email: "jane@example.com", Password: "Secret#1" + strings.Repeat("a", 100)},
			mockSetup: func() {},
			wantKind:  errs.KindInvalidInput,
			wantErr:   true,
		},
		{
			name: "email already registered",
			req:  valid,
			mockSetup: func() {
				mockReader.EXPECT().GetByEmail(gomock.Any(), "jane@example.com").Return(&models.UserDB{UserID: uuid.New()}, nil)
			},
			wantKind: errs.KindConflict,
			wantErr:  true,
		},
		{
			name: "lost race on unique index",
			req:  valid,
			mockSetup: func() {
				mockReader.EXPECT().GetByEmail(gomock.Any(), "jane@example.com").Return(nil, nil)
				mockWriter.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errs.ErrDuplicate)
			},
			wantKind: errs.KindConflict,
			wantErr:  true,
		},
		{
			name: "reader error",
			req:  valid,
			mockSetup: func() {
				mockReader.EXPECT().GetByEmail(gomock.Any(), "jane@example.com").Return(nil, errors.New("db error"))
			},
			wantKind: errs.KindInternal,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			user, err := svc.Signup(context.Background(), tt.req)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, user)
				assert.Equal(t, tt.wantKind, errs.KindOf(err))
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, user)
		})
	}
}

func TestAuthService_Signup_ReportsFieldErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := services.NewAuthService(
		services.NewMockUserReader(ctrl),
		services.NewMockUserWriter(ctrl),
		services.NewMockTokenIssuer(ctrl),
		services.NewMockTokenRevoker(ctrl),
	)

	_, err := svc.Signup(context.Background(), models.SignupRequest{FirstName: "Jane", Email: "bad", Password: "Secret#123"})

	var appErr *errs.Error
	require.True(t, errors.As(err, &appErr))
	assert.Contains(t, appErr.Fields, "email")
	assert.NotContains(t, appErr.Fields, "firstName")

	_, err = svc.Signup(context.Background(), models.SignupRequest{FirstName: "Jane", Email: "jane@example.com", Password: "Secret#1" + strings.Repeat("a", 65)})
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, errs.KindInvalidInput, appErr.Kind)
	assert.Contains(t, appErr.Fields, "password")
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockTokens := services.NewMockTokenIssuer(ctrl)
	mockRevoker := services.NewMockTokenRevoker(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockTokens, mockRevoker)

	password := "Secret#123"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	userID := uuid.New()
	user := &models.UserDB{UserID: userID, Email: "jane@example.com", PasswordHash: string(hashed)}

	tests := []struct {
		name      string
		email     string
		password  string
		mockSetup func()
		wantToken string
		wantKind  errs.Kind
		wantErr   bool
	}{
		{
			name:     "successful login",
			email:    "Jane@Example.com",
			password: password,
			mockSetup: func() {
				mockReader.EXPECT().GetByEmail(gomock.Any(), "jane@example.com").Return(user, nil)
				mockTokens.EXPECT().Generate(gomock.Any(), userID).Return("token123", nil)
			},
			wantToken: "token123",
		},
		{
			name:      "missing password",
			email:     "jane@example.com",
			mockSetup: func() {},
			wantKind:  errs.KindInvalidInput,
			wantErr:   true,
		},
		{
			name:     "unknown email",
			email:    "bob@example.com",
			password: password,
			mockSetup: func() {
				mockReader.EXPECT().GetByEmail(gomock.Any(), "bob@example.com").Return(nil, nil)
			},
			wantKind: errs.KindUnauthenticated,
			wantErr:  true,
		},
		{
			name:     "wrong password",
			email:    "jane@example.com",
			password: "Wrong#123",
			mockSetup: func() {
				mockReader.EXPECT().GetByEmail(gomock.Any(), "jane@example.com").Return(user, nil)
			},
			wantKind: errs.KindUnauthenticated,
			wantErr:  true,
		},
		{
			name:     "token error",
			email:    "jane@example.com",
			password: password,
			mockSetup: func() {
				mockReader.EXPECT().GetByEmail(gomock.Any(), "jane@example.com").Return(user, nil)
				mockTokens.EXPECT().Generate(gomock.Any(), userID).Return("", errors.New("sign error"))
			},
			wantKind: errs.KindInternal,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			token, got, err := svc.Login(context.Background(), tt.email, tt.password)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantKind, errs.KindOf(err))
				assert.Empty(t, token)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
			assert.Equal(t, userID, got.UserID)
		})
	}
}

func TestAuthService_Login_SameMessageForUnknownAndWrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	svc := services.NewAuthService(mockReader, services.NewMockUserWriter(ctrl), services.NewMockTokenIssuer(ctrl), services.NewMockTokenRevoker(ctrl))

	hashed, _ := bcrypt.GenerateFromPassword([]byte("Secret#123"), bcrypt.MinCost)
	mockReader.EXPECT().GetByEmail(gomock.Any(), "a@example.com").Return(nil, nil)
	mockReader.EXPECT().GetByEmail(gomock.Any(), "b@example.com").Return(&models.UserDB{PasswordHash: string(hashed)}, nil)

	_, _, errUnknown := svc.Login(context.Background(), "a@example.com", "Secret#123")
	_, _, errWrong := svc.Login(context.Background(), "b@example.com", "Other#123")

	assert.Equal(t, errUnknown.Error(), errWrong.Error())
}

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTokens := services.NewMockTokenIssuer(ctrl)
	mockRevoker := services.NewMockTokenRevoker(ctrl)
	svc := services.NewAuthService(services.NewMockUserReader(ctrl), services.NewMockUserWriter(ctrl), mockTokens, mockRevoker)

	claims := &jwt.Claims{
		UserID: uuid.New(),
		RegisteredClaims: jwtlib.RegisteredClaims{
			ID:        "jti-1",
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	t.Run("no token", func(t *testing.T) {
		assert.NoError(t, svc.Logout(context.Background(), ""))
	})

	t.Run("unparseable token", func(t *testing.T) {
		mockTokens.EXPECT().GetClaims(gomock.Any(), "garbage").Return(nil, jwt.ErrInvalidToken)
		assert.NoError(t, svc.Logout(context.Background(), "garbage"))
	})

	t.Run("revokes token id for remaining lifetime", func(t *testing.T) {
		mockTokens.EXPECT().GetClaims(gomock.Any(), "good").Return(claims, nil)
		mockRevoker.EXPECT().
			Revoke(gomock.Any(), "jti-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, ttl time.Duration) error {
				assert.Greater(t, ttl, 59*time.Minute)
				assert.LessOrEqual(t, ttl, time.Hour)
				return nil
			})
		assert.NoError(t, svc.Logout(context.Background(), "good"))
	})

	t.Run("revocation store error", func(t *testing.T) {
		mockTokens.EXPECT().GetClaims(gomock.Any(), "good").Return(claims, nil)
		mockRevoker.EXPECT().Revoke(gomock.Any(), "jti-1", gomock.Any()).Return(errors.New("redis down"))
		assert.Error(t, svc.Logout(context.Background(), "good"))
	})
}
