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

const userColumns = `user_id, first_name, last_name, email, password_hash, age, gender, photo_url, created_at, updated_at`

// UserReadRepository handles user read operations. Reads join the request
// transaction when one is bound to the context.
type UserReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserReadRepository(db *sqlx.DB, txGetter TxGetter) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns the user or nil when it does not exist.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`
	return r.getOne(ctx, query, userID)
}

// GetByEmail returns the user with the given email (case-insensitive) or nil.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER($1)`
	return r.getOne(ctx, query, email)
}

func (r *UserReadRepository) getOne(ctx context.Context, query string, args ...any) (*models.UserDB, error) {
	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, args...)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", user.UserID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByIDs returns the users with the given ids in no particular order.
func (r *UserReadRepository) GetByIDs(ctx context.Context, userIDs []uuid.UUID) ([]models.UserDB, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`SELECT `+userColumns+` FROM users WHERE user_id IN (?)`, userIDs)
	if err != nil {
		return nil, err
	}
	query = r.db.Rebind(query)

	var users []models.UserDB
	err = sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &users, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", len(users),
		"error", err,
	)

	return users, err
}

// CountExcluding counts users whose id is not in excluded.
func (r *UserReadRepository) CountExcluding(ctx context.Context, excluded []uuid.UUID) (int, error) {
	query, args, err := excludingQuery(`SELECT COUNT(*) FROM users`, excluded, "")
	if err != nil {
		return 0, err
	}
	query = r.db.Rebind(query)

	var total int
	err = sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &total, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", total,
		"error", err,
	)

	return total, err
}

// ListExcluding returns a page of users whose id is not in excluded, ordered
// by creation time.
func (r *UserReadRepository) ListExcluding(ctx context.Context, excluded []uuid.UUID, offset, limit int) ([]models.UserDB, error) {
	query, args, err := excludingQuery(
		`SELECT `+userColumns+` FROM users`,
		excluded,
		` ORDER BY created_at, user_id LIMIT ? OFFSET ?`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	query = r.db.Rebind(query)

	var users []models.UserDB
	err = sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &users, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", len(users),
		"error", err,
	)

	return users, err
}

func excludingQuery(base string, excluded []uuid.UUID, tail string, tailArgs ...any) (string, []any, error) {
	if len(excluded) == 0 {
		return base + tail, tailArgs, nil
	}
	query, args, err := sqlx.In(base+` WHERE user_id NOT IN (?)`+tail, append([]any{excluded}, tailArgs...)...)
	if err != nil {
		return "", nil, err
	}
	return query, args, nil
}

// UserWriteRepository handles user write operations
type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Create inserts a new user. A taken email yields errs.ErrDuplicate.
func (r *UserWriteRepository) Create(ctx context.Context, user models.NewUser) (*models.UserDB, error) {
	query := `
		INSERT INTO users (user_id, first_name, last_name, email, password_hash, age, gender, photo_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING ` + userColumns
	args := []any{uuid.New(), user.FirstName, user.LastName, user.Email, user.PasswordHash, user.Age, user.Gender, user.PhotoURL}

	var created models.UserDB
	err := r.db.GetContext(ctx, &created, query, args...)

	// Password hash is left out of the log
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{args[0], user.FirstName, user.Email},
		"result", created.UserID,
		"error", err,
	)

	if err != nil {
		return nil, mapPgError(err)
	}
	return &created, nil
}

// UpdateProfile applies the non-nil fields of upd and returns the updated
// user, or nil when the user does not exist.
func (r *UserWriteRepository) UpdateProfile(ctx context.Context, userID uuid.UUID, upd models.ProfileUpdate) (*models.UserDB, error) {
	query := `
		UPDATE users SET
			first_name = COALESCE($2, first_name),
			last_name = COALESCE($3, last_name),
			age = COALESCE($4, age),
			gender = COALESCE($5, gender),
			photo_url = COALESCE($6, photo_url),
			updated_at = NOW()
		WHERE user_id = $1
		RETURNING ` + userColumns
	args := []any{userID, upd.FirstName, upd.LastName, upd.Age, upd.Gender, upd.PhotoURL}

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", user.UserID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdatePassword replaces the password hash of a user.
func (r *UserWriteRepository) UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	query := `UPDATE users SET password_hash = $2, updated_at = NOW() WHERE user_id = $1`

	res, err := r.db.ExecContext(ctx, query, userID, passwordHash)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", query,
		"args", []any{userID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
