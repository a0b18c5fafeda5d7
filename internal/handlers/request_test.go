package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/dev-connect/internal/errs"
	"github.com/sbilibin2017/dev-connect/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withURLParams(req *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestSendRequestHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockRequestSender(ctrl)
	from, to := uuid.New(), uuid.New()

	tests := []struct {
		name         string
		status       string
		mockSetup    func()
		expectedCode int
	}{
		{
			name:   "sent",
			status: "interested",
			mockSetup: func() {
				mockSvc.EXPECT().Send(gomock.Any(), from, to.String(), "interested").
					Return(&models.ConnectionRequestDB{RequestID: uuid.New(), FromUserID: from, ToUserID: to, Status: models.StatusInterested}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:   "invalid status",
			status: "accepted",
			mockSetup: func() {
				mockSvc.EXPECT().Send(gomock.Any(), from, to.String(), "accepted").
					Return(nil, errs.New(errs.KindInvalidInput, "Invalid status type: accepted"))
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "duplicate pair",
			status: "ignored",
			mockSetup: func() {
				mockSvc.EXPECT().Send(gomock.Any(), from, to.String(), "ignored").
					Return(nil, errs.New(errs.KindConflict, "Connection request already exists"))
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:   "target missing",
			status: "interested",
			mockSetup: func() {
				mockSvc.EXPECT().Send(gomock.Any(), from, to.String(), "interested").
					Return(nil, errs.New(errs.KindNotFound, "User not found"))
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := authedRequest(http.MethodPost, "/request/send/"+tt.status+"/"+to.String(), "", from)
			req = withURLParams(req, map[string]string{"status": tt.status, "toUserId": to.String()})
			w := httptest.NewRecorder()

			NewSendRequestHandler(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestReviewRequestHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockRequestReviewer(ctrl)
	me, reqID := uuid.New(), uuid.New()

	t.Run("accepted", func(t *testing.T) {
		mockSvc.EXPECT().Review(gomock.Any(), me, reqID.String(), "accepted").
			Return(&models.ConnectionRequestDB{RequestID: reqID, ToUserID: me, Status: models.StatusAccepted}, nil)

		req := withURLParams(authedRequest(http.MethodPost, "/", "", me), map[string]string{"status": "accepted", "requestId": reqID.String()})
		w := httptest.NewRecorder()
		NewReviewRequestHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp models.ConnectionRequestResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Connection request accepted successfully", resp.Message)
		assert.Equal(t, models.StatusAccepted, resp.Request.Status)
	})

	t.Run("not the recipient", func(t *testing.T) {
		mockSvc.EXPECT().Review(gomock.Any(), me, reqID.String(), "rejected").
			Return(nil, errs.New(errs.KindForbidden, "Not authorized to review this request"))

		req := withURLParams(authedRequest(http.MethodPost, "/", "", me), map[string]string{"status": "rejected", "requestId": reqID.String()})
		w := httptest.NewRecorder()
		NewReviewRequestHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("already reviewed reports current status", func(t *testing.T) {
		mockSvc.EXPECT().Review(gomock.Any(), me, reqID.String(), "rejected").
			Return(nil, errs.New(errs.KindInvalidState, "Connection request cannot be reviewed").
				WithDetail("currentStatus", models.StatusAccepted))

		req := withURLParams(authedRequest(http.MethodPost, "/", "", me), map[string]string{"status": "rejected", "requestId": reqID.String()})
		w := httptest.NewRecorder()
		NewReviewRequestHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var resp models.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "accepted", resp.Details["currentStatus"])
	})

	t.Run("unauthenticated", func(t *testing.T) {
		w := httptest.NewRecorder()
		NewReviewRequestHandler(mockSvc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

