package handlers

//go:generate mockgen -source=request.go -destination=request_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/dev-connect/internal/models"
)

// RequestSender creates connection requests.
type RequestSender interface {
	Send(ctx context.Context, fromUserID uuid.UUID, toUserID, status string) (*models.ConnectionRequestDB, error)
}

// RequestReviewer accepts or rejects received connection requests.
type RequestReviewer interface {
	Review(ctx context.Context, currentUserID uuid.UUID, requestID, status string) (*models.ConnectionRequestDB, error)
}

// NewSendRequestHandler sends a connection request to another user.
// @Summary Send connection request
// @Tags requests
// @Produce json
// @Param status path string true "ignored or interested"
// @Param toUserId path string true "Target user id"
// @Success 201 {object} models.ConnectionRequestResponse
// @Failure 400 {object} models.ErrorResponse "Invalid status, id or self request"
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Failure 409 {object} models.ErrorResponse "Request already exists between the users"
// @Failure 500 {object} models.ErrorResponse
// @Router /request/send/{status}/{toUserId} [post]
// @Security BearerAuth
func NewSendRequestHandler(svc RequestSender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		req, err := svc.Send(r.Context(), userID, chi.URLParam(r, "toUserId"), chi.URLParam(r, "status"))
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, models.ConnectionRequestResponse{
			Message: "Connection request sent successfully",
			Request: *req,
		})
	}
}

// NewReviewRequestHandler reviews a connection request sent to the caller.
// @Summary Review connection request
// @Tags requests
// @Produce json
// @Param status path string true "accepted or rejected"
// @Param requestId path string true "Connection request id"
// @Success 200 {object} models.ConnectionRequestResponse
// @Failure 400 {object} models.ErrorResponse "Invalid status or id, or request not reviewable"
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse "Caller is not the recipient"
// @Failure 404 {object} models.ErrorResponse "Request not found"
// @Failure 500 {object} models.ErrorResponse
// @Router /request/review/{status}/{requestId} [post]
// @Security BearerAuth
func NewReviewRequestHandler(svc RequestReviewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		req, err := svc.Review(r.Context(), userID, chi.URLParam(r, "requestId"), chi.URLParam(r, "status"))
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, models.ConnectionRequestResponse{
			Message: "Connection request " + string(req.Status) + " successfully",
			Request: *req,
		})
	}
}
