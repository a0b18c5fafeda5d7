package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/sbilibin2017/dev-connect/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observeLogs(t *testing.T) *observer.ObservedLogs {
	original := logger.Log
	t.Cleanup(func() { logger.Log = original })

	core, logs := observer.New(zapcore.DebugLevel)
	logger.Set(zap.New(core))
	return logs
}

func TestLoggingMiddleware(t *testing.T) {
	tests := []struct {
		name        string
		incomingID  string
		handler     http.HandlerFunc
		wantStatus  int
		wantSize    int64
		wantFixedID bool
	}{
		{
			name: "implicit 200",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("hello"))
			},
			wantStatus: http.StatusOK,
			wantSize:   5,
		},
		{
			name: "explicit status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusConflict)
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(`{"error":"x"}`))
			},
			wantStatus: http.StatusConflict,
			wantSize:   13,
		},
		{
			name:       "incoming id reused",
			incomingID: "abc-123",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			},
			wantStatus:  http.StatusNoContent,
			wantFixedID: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := observeLogs(t)

			var ctxReqID string
			handler := LoggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				ctxReqID = GetRequestIDFromContext(r.Context())
				tt.handler(w, r)
			}))

			req := httptest.NewRequest(http.MethodPost, "/request/send/interested/1", nil)
			if tt.incomingID != "" {
				req.Header.Set(RequestIDHeader, tt.incomingID)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)

			reqID := rr.Header().Get(RequestIDHeader)
			assert.Equal(t, reqID, ctxReqID)
			if tt.wantFixedID {
				assert.Equal(t, tt.incomingID, reqID)
			} else {
				_, err := uuid.Parse(reqID)
				assert.NoError(t, err)
			}

			entries := logs.FilterMessage("request").All()
			require.Len(t, entries, 1)
			fields := entries[0].ContextMap()
			assert.Equal(t, reqID, fields["request_id"])
			assert.Equal(t, http.MethodPost, fields["method"])
			assert.EqualValues(t, tt.wantStatus, fields["status"])
			assert.EqualValues(t, tt.wantSize, fields["response_size"])
		})
	}
}

func TestGetRequestIDFromContext_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, GetRequestIDFromContext(req.Context()))
}
