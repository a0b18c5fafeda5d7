package services

//go:generate mockgen -source=feed.go -destination=feed_mock.go -package=services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/dev-connect/internal/logger"
	"github.com/sbilibin2017/dev-connect/internal/models"
	"golang.org/x/sync/errgroup"
)

// UserLister defines the user queries behind the feed and listings.
type UserLister interface {
	GetByIDs(ctx context.Context, userIDs []uuid.UUID) ([]models.UserDB, error)
	CountExcluding(ctx context.Context, excluded []uuid.UUID) (int, error)
	ListExcluding(ctx context.Context, excluded []uuid.UUID, offset, limit int) ([]models.UserDB, error)
}

// FeedService answers the feed, connections and received-requests queries.
type FeedService struct {
	users    UserLister
	requests ConnectionRequestReader
	pageSize int
}

// NewFeedService creates a new FeedService. Non-positive page sizes fall back
// to models.DefaultFeedPageSize.
func NewFeedService(users UserLister, requests ConnectionRequestReader, pageSize int) *FeedService {
	if pageSize <= 0 {
		pageSize = models.DefaultFeedPageSize
	}
	return &FeedService{users: users, requests: requests, pageSize: pageSize}
}

// Feed returns one page of users the caller has no relation with.
func (s *FeedService) Feed(ctx context.Context, userID uuid.UUID, page int) (*models.FeedPage, error) {
	if page < 1 {
		page = 1
	}

	related, err := s.requests.ListByUser(ctx, userID, nil)
	if err != nil {
		logger.Log.Errorw("failed to list requests", "user_id", userID, "error", err)
		return nil, err
	}

	seen := map[uuid.UUID]struct{}{userID: {}}
	excluded := []uuid.UUID{userID}
	for i := range related {
		id := related[i].Counterpart(userID)
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		excluded = append(excluded, id)
	}

	var (
		total int
		users []models.UserDB
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if total, err = s.users.CountExcluding(gctx, excluded); err != nil {
			logger.Log.Errorw("failed to count feed users", "user_id", userID, "error", err)
		}
		return err
	})
	g.Go(func() error {
		var err error
		if users, err = s.users.ListExcluding(gctx, excluded, (page-1)*s.pageSize, s.pageSize); err != nil {
			logger.Log.Errorw("failed to list feed users", "user_id", userID, "page", page, "error", err)
		}
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summaries := make([]models.UserSummary, 0, len(users))
	for i := range users {
		summaries = append(summaries, users[i].Summary())
	}

	return &models.FeedPage{
		Users:      summaries,
		Pagination: models.NewPagination(page, s.pageSize, total),
	}, nil
}

// Connections returns the other party of every accepted request involving userID.
func (s *FeedService) Connections(ctx context.Context, userID uuid.UUID) ([]models.ConnectionView, error) {
	accepted := models.StatusAccepted
	reqs, err := s.requests.ListByUser(ctx, userID, &accepted)
	if err != nil {
		logger.Log.Errorw("failed to list connections", "user_id", userID, "error", err)
		return nil, err
	}

	counterparts := make([]uuid.UUID, 0, len(reqs))
	for i := range reqs {
		counterparts = append(counterparts, reqs[i].Counterpart(userID))
	}
	users, err := s.usersByID(ctx, counterparts)
	if err != nil {
		return nil, err
	}

	views := make([]models.ConnectionView, 0, len(reqs))
	for i := range reqs {
		other, ok := users[reqs[i].Counterpart(userID)]
		if !ok {
			continue
		}
		views = append(views, models.ConnectionView{
			ConnectionID: reqs[i].RequestID,
			Status:       reqs[i].Status,
			CreatedAt:    reqs[i].CreatedAt,
			User:         other.Summary(),
		})
	}
	return views, nil
}

// ReceivedRequests returns the interested requests sent to userID with their senders.
func (s *FeedService) ReceivedRequests(ctx context.Context, userID uuid.UUID) ([]models.ReceivedRequestView, error) {
	reqs, err := s.requests.ListReceived(ctx, userID, models.StatusInterested)
	if err != nil {
		logger.Log.Errorw("failed to list received requests", "user_id", userID, "error", err)
		return nil, err
	}

	senders := make([]uuid.UUID, 0, len(reqs))
	for i := range reqs {
		senders = append(senders, reqs[i].FromUserID)
	}
	users, err := s.usersByID(ctx, senders)
	if err != nil {
		return nil, err
	}

	views := make([]models.ReceivedRequestView, 0, len(reqs))
	for i := range reqs {
		sender, ok := users[reqs[i].FromUserID]
		if !ok {
			continue
		}
		views = append(views, models.ReceivedRequestView{
			RequestID: reqs[i].RequestID,
			Status:    reqs[i].Status,
			CreatedAt: reqs[i].CreatedAt,
			User:      sender.Summary(),
		})
	}
	return views, nil
}

func (s *FeedService) usersByID(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*models.UserDB, error) {
	byID := make(map[uuid.UUID]*models.UserDB, len(ids))
	if len(ids) == 0 {
		return byID, nil
	}

	users, err := s.users.GetByIDs(ctx, ids)
	if err != nil {
		logger.Log.Errorw("failed to get users", "count", len(ids), "error", err)
		return nil, err
	}
	for i := range users {
		byID[users[i].UserID] = &users[i]
	}
	return byID, nil
}
