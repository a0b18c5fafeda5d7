package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/dev-connect/internal/errs"
	"github.com/sbilibin2017/dev-connect/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestSignupHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockSignuper(ctrl)

	valid := models.SignupRequest{FirstName: "Jane", Email: "jane@example.com", Password: "Secret#123"}
	created := &models.UserDB{UserID: uuid.New(), FirstName: "Jane", Email: "jane@example.com", PhotoURL: models.DefaultPhotoURL}

	tests := []struct {
		name         string
		body         string
		mockSetup    func()
		expectedCode int
		expectedErr  string
		expectFields bool
	}{
		{
			name: "created",
			body: mustJSON(valid),
			mockSetup: func() {
				mockSvc.EXPECT().Signup(gomock.Any(), valid).Return(created, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "invalid JSON",
			body:         "{",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "Invalid request body",
		},
		{
			name: "validation errors",
			body: mustJSON(models.SignupRequest{FirstName: "J"}),
			mockSetup: func() {
				mockSvc.EXPECT().Signup(gomock.Any(), gomock.Any()).
					Return(nil, errs.InvalidFields("Validation failed", map[string]string{"firstName": "too short"}))
			},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "Validation failed",
			expectFields: true,
		},
		{
			name: "duplicate email",
			body: mustJSON(valid),
			mockSetup: func() {
				mockSvc.EXPECT().Signup(gomock.Any(), valid).
					Return(nil, errs.New(errs.KindConflict, "Email already registered"))
			},
			expectedCode: http.StatusConflict,
			expectedErr:  "Email already registered",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			NewSignupHandler(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedErr == "" {
				var resp models.ProfileResponse
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, created.UserID, resp.User.UserID)
				assert.NotContains(t, w.Body.String(), "password")
				return
			}
			var resp models.ErrorResponse
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedErr, resp.Error)
			assert.Equal(t, tt.expectFields, len(resp.Fields) > 0)
		})
	}
}

func mustJSON(v any) string {
	var buf bytes.Buffer
	_ = json.NewEncoder(&buf).Encode(v)
	return buf.String()
}
