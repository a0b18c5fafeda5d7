package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/dev-connect/internal/logger"
	"github.com/sbilibin2017/dev-connect/internal/models"
)

const requestColumns = `request_id, from_user_id, to_user_id, status, created_at, updated_at`

// ConnectionRequestReadRepository handles connection request read operations
type ConnectionRequestReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewConnectionRequestReadRepository(db *sqlx.DB, txGetter TxGetter) *ConnectionRequestReadRepository {
	return &ConnectionRequestReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns the request or nil when it does not exist.
func (r *ConnectionRequestReadRepository) GetByID(ctx context.Context, requestID uuid.UUID) (*models.ConnectionRequestDB, error) {
	query := `SELECT ` + requestColumns + ` FROM connection_requests WHERE request_id = $1`
	return r.getOne(ctx, query, requestID)
}

// GetBetween returns the request linking the two users in either direction, or nil.
func (r *ConnectionRequestReadRepository) GetBetween(ctx context.Context, userA, userB uuid.UUID) (*models.ConnectionRequestDB, error) {
	query := `
		SELECT ` + requestColumns + `
		FROM connection_requests
		WHERE (from_user_id = $1 AND to_user_id = $2)
		   OR (from_user_id = $2 AND to_user_id = $1)
		LIMIT 1
	`
	return r.getOne(ctx, query, userA, userB)
}

func (r *ConnectionRequestReadRepository) getOne(ctx context.Context, query string, args ...any) (*models.ConnectionRequestDB, error) {
	var req models.ConnectionRequestDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &req, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", req.RequestID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// ListByUser returns every request where userID is sender or recipient,
// optionally restricted to one status.
func (r *ConnectionRequestReadRepository) ListByUser(ctx context.Context, userID uuid.UUID, status *models.RequestStatus) ([]models.ConnectionRequestDB, error) {
	const query = `
		SELECT request_id, from_user_id, to_user_id, status, created_at, updated_at
		FROM connection_requests
		WHERE (from_user_id = $1 OR to_user_id = $1)
		  AND ($2::VARCHAR IS NULL OR status = $2)
		ORDER BY created_at
	`
	var statusArg *string
	if status != nil {
		s := string(*status)
		statusArg = &s
	}

	var reqs []models.ConnectionRequestDB
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &reqs, query, userID, statusArg)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, statusArg},
		"result", len(reqs),
		"error", err,
	)

	return reqs, err
}

// ListReceived returns requests addressed to userID with the given status,
// newest first.
func (r *ConnectionRequestReadRepository) ListReceived(ctx context.Context, userID uuid.UUID, status models.RequestStatus) ([]models.ConnectionRequestDB, error) {
	const query = `
		SELECT request_id, from_user_id, to_user_id, status, created_at, updated_at
		FROM connection_requests
		WHERE to_user_id = $1 AND status = $2
		ORDER BY created_at DESC
	`

	var reqs []models.ConnectionRequestDB
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &reqs, query, userID, string(status))

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, status},
		"result", len(reqs),
		"error", err,
	)

	return reqs, err
}

// ConnectionRequestWriteRepository handles connection request write operations
type ConnectionRequestWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewConnectionRequestWriteRepository(db *sqlx.DB, txGetter TxGetter) *ConnectionRequestWriteRepository {
	return &ConnectionRequestWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts a new request. A second request for the same unordered pair
// is rejected by the pair index and yields errs.ErrDuplicate.
func (r *ConnectionRequestWriteRepository) Create(ctx context.Context, fromUserID, toUserID uuid.UUID, status models.RequestStatus) (*models.ConnectionRequestDB, error) {
	query := `
		INSERT INTO connection_requests (request_id, from_user_id, to_user_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING ` + requestColumns
	args := []any{uuid.New(), fromUserID, toUserID, string(status)}

	var req models.ConnectionRequestDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &req, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", req.RequestID,
		"error", err,
	)

	if err != nil {
		return nil, mapPgError(err)
	}
	return &req, nil
}

// UpdateStatus moves a request from one status to another. It returns nil
// when the request does not exist or is no longer in the expected status.
func (r *ConnectionRequestWriteRepository) UpdateStatus(ctx context.Context, requestID uuid.UUID, from, to models.RequestStatus) (*models.ConnectionRequestDB, error) {
	query := `
		UPDATE connection_requests
		SET status = $3, updated_at = NOW()
		WHERE request_id = $1 AND status = $2
		RETURNING ` + requestColumns
	args := []any{requestID, string(from), string(to)}

	var req models.ConnectionRequestDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &req, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", req.Status,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}
