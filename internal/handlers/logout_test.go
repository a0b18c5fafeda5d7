package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/dev-connect/internal/jwt"
	"github.com/stretchr/testify/assert"
)

func TestLogoutHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockLogouter(ctrl)
	mockTokens := NewMockTokenExtractor(ctrl)

	tests := []struct {
		name         string
		mockSetup    func()
		expectedCode int
	}{
		{
			name: "with token",
			mockSetup: func() {
				mockTokens.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("tok", nil)
				mockSvc.EXPECT().Logout(gomock.Any(), "tok").Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "without token",
			mockSetup: func() {
				mockTokens.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", jwt.ErrTokenMissing)
				mockSvc.EXPECT().Logout(gomock.Any(), "").Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "revocation failure",
			mockSetup: func() {
				mockTokens.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("tok", nil)
				mockSvc.EXPECT().Logout(gomock.Any(), "tok").Return(errors.New("redis down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			w := httptest.NewRecorder()
			NewLogoutHandler(mockSvc, mockTokens, CookieConfig{}).
				ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/auth/logout", nil))

			assert.Equal(t, tt.expectedCode, w.Code)

			cookies := w.Result().Cookies()
			if assert.Len(t, cookies, 1) {
				assert.Equal(t, jwt.CookieName, cookies[0].Name)
				assert.Empty(t, cookies[0].Value)
				assert.Less(t, cookies[0].MaxAge, 0)
			}
		})
	}
}
