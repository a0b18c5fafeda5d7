package main

import (
	"context"
	"fmt"
	"net/http"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sbilibin2017/dev-connect/internal/logger"
	"github.com/sbilibin2017/dev-connect/internal/middlewares"
	"github.com/sbilibin2017/dev-connect/internal/repositories"
	"github.com/sbilibin2017/dev-connect/internal/services"
)

// storage bundles the repositories of one backend.
type storage struct {
	userReader    services.UserReader
	userWriter    services.UserWriter
	userLister    services.UserLister
	requestReader services.ConnectionRequestReader
	requestWriter services.ConnectionRequestWriter

	// txMiddleware wraps the request mutation routes.
	txMiddleware func(http.Handler) http.Handler
	close        func()
}

func passthrough(next http.Handler) http.Handler { return next }

// openPostgres connects to PostgreSQL and applies the schema.
func openPostgres(ctx context.Context, cfg config) (*storage, error) {
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	logger.Log.Infow("connecting to PostgreSQL", "host", cfg.PGHost, "port", cfg.PGPort, "db", cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	if err := repositories.Migrate(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("postgres migration failed: %w", err)
	}

	return postgresStorage(db), nil
}

// postgresStorage builds the sqlx repositories. Request routes only touch the
// tx-aware repositories, so a request under TxMiddleware holds at
// most one pooled connection.
func postgresStorage(db *sqlx.DB) *storage {
	userRead := repositories.NewUserReadRepository(db, middlewares.GetTxFromContext)
	return &storage{
		userReader:    userRead,
		userWriter:    repositories.NewUserWriteRepository(db),
		userLister:    userRead,
		requestReader: repositories.NewConnectionRequestReadRepository(db, middlewares.GetTxFromContext),
		requestWriter: repositories.NewConnectionRequestWriteRepository(db, middlewares.GetTxFromContext),
		txMiddleware:  middlewares.TxMiddleware(db),
		close: func() {
			if err := db.Close(); err != nil {
				logger.Log.Errorw("postgres close failed", "error", err)
			}
		},
	}
}

// openMongo connects to MongoDB and ensures the indexes the repositories rely on.
func openMongo(ctx context.Context, cfg config) (*storage, error) {
	logger.Log.Infow("connecting to MongoDB", "db", cfg.MongoDB)

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("mongo connection error: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping failed: %w", err)
	}

	db := client.Database(cfg.MongoDB)
	if err := repositories.EnsureMongoIndexes(ctx, db); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo index setup failed: %w", err)
	}

	users := repositories.NewUserMongoRepository(db)
	requests := repositories.NewConnectionRequestMongoRepository(db)
	return &storage{
		userReader:    users,
		userWriter:    users,
		userLister:    users,
		requestReader: requests,
		requestWriter: requests,
		txMiddleware:  passthrough,
		close: func() {
			if err := client.Disconnect(context.Background()); err != nil {
				logger.Log.Errorw("mongo disconnect failed", "error", err)
			}
		},
	}, nil
}
