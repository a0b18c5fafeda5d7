package repositories

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/dev-connect/internal/errs"
	"github.com/stretchr/testify/assert"
)

func TestMapPgError(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505", Message: "duplicate key value"}
	fk := &pgconn.PgError{Code: "23503", Message: "foreign key violation"}
	other := errors.New("boom")

	assert.ErrorIs(t, mapPgError(unique), errs.ErrDuplicate)
	assert.ErrorIs(t, mapPgError(fmt.Errorf("insert: %w", unique)), errs.ErrDuplicate)
	assert.Equal(t, fk, mapPgError(fk))
	assert.Equal(t, other, mapPgError(other))
}

func TestExecutor_PrefersContextTx(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer sqlDB.Close()
	db := sqlx.NewDb(sqlDB, "sqlmock")

	mock.ExpectBegin()
	tx, err := db.Beginx()
	assert.NoError(t, err)

	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, tx)
	getter := func(ctx context.Context) *sqlx.Tx {
		tx, _ := ctx.Value(key{}).(*sqlx.Tx)
		return tx
	}

	assert.Same(t, tx, executor(ctx, db, getter))
	assert.Same(t, db, executor(context.Background(), db, getter))
	assert.Same(t, db, executor(ctx, db, nil))
}
