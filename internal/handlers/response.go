package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/dev-connect/internal/errs"
	"github.com/sbilibin2017/dev-connect/internal/logger"
	"github.com/sbilibin2017/dev-connect/internal/middlewares"
	"github.com/sbilibin2017/dev-connect/internal/models"
)

const msgInternalError = "Internal server error"

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "err", err)
	}
}

// writeError maps err onto a status and JSON body. Unclassified errors are
// logged and answered without detail.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	kind := errs.KindOf(err)
	if kind == errs.KindInternal {
		logger.Log.Errorw("internal server error",
			"request_id", middlewares.GetRequestIDFromContext(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"err", err,
		)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: msgInternalError})
		return
	}

	logger.Log.Infow("request failed",
		"request_id", middlewares.GetRequestIDFromContext(r.Context()),
		"kind", kind.String(),
		"err", err,
	)

	resp := models.ErrorResponse{Error: err.Error()}
	var appErr *errs.Error
	if errors.As(err, &appErr) {
		resp.Error = appErr.Message
		resp.Fields = appErr.Fields
		resp.Details = appErr.Details
	}
	writeJSON(w, kind.HTTPStatus(), resp)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, models.MessageResponse{Message: msg})
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: msg})
}

// currentUserID returns the id stored by the auth middleware, answering 401
// when it is missing.
func currentUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := middlewares.GetUserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Unauthorized"})
	}
	return userID, ok
}
