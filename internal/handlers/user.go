package handlers

//go:generate mockgen -source=user.go -destination=user_mock.go -package=handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/sbilibin2017/dev-connect/internal/models"
)

// ReceivedRequestsLister lists pending requests sent to a user.
type ReceivedRequestsLister interface {
	ReceivedRequests(ctx context.Context, userID uuid.UUID) ([]models.ReceivedRequestView, error)
}

// ConnectionsLister lists a user's accepted connections.
type ConnectionsLister interface {
	Connections(ctx context.Context, userID uuid.UUID) ([]models.ConnectionView, error)
}

// FeedGetter returns a page of the user's feed.
type FeedGetter interface {
	Feed(ctx context.Context, userID uuid.UUID, page int) (*models.FeedPage, error)
}

// NewReceivedRequestsHandler lists interested requests received by the caller.
// @Summary Received requests
// @Tags user
// @Produce json
// @Success 200 {object} models.ReceivedRequestsResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /user/request/received [get]
// @Security BearerAuth
func NewReceivedRequestsHandler(svc ReceivedRequestsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		views, err := svc.ReceivedRequests(r.Context(), userID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, models.ReceivedRequestsResponse{Success: true, Data: views})
	}
}

// NewConnectionsHandler lists the caller's accepted connections.
// @Summary Connections
// @Tags user
// @Produce json
// @Success 200 {object} models.ConnectionsResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /user/connections [get]
// @Security BearerAuth
func NewConnectionsHandler(svc ConnectionsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		views, err := svc.Connections(r.Context(), userID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, models.ConnectionsResponse{Success: true, Data: views})
	}
}

// NewFeedHandler returns users the caller has no relation with, one page at a time.
// @Summary Feed
// @Tags user
// @Produce json
// @Param page query int false "Page number, starting at 1"
// @Success 200 {object} models.FeedResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /user/feed [get]
// @Security BearerAuth
func NewFeedHandler(svc FeedGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		page, err := strconv.Atoi(r.URL.Query().Get("page"))
		if err != nil {
			page = 1
		}

		feed, err := svc.Feed(r.Context(), userID, page)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, models.FeedResponse{
			Success:    true,
			Data:       feed.Users,
			Pagination: feed.Pagination,
		})
	}
}
