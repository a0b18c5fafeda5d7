package middlewares

import (
	"bytes"
	"context"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/dev-connect/internal/logger"
)

// TxMiddleware runs the handler inside a database transaction. The response
// is held back until the transaction ends: 4xx/5xx responses roll back, all
// others commit, and a failed commit turns the response into a 500.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tx, err := db.BeginTxx(r.Context(), nil)
			if err != nil {
				logger.Log.Errorw("failed to begin transaction", "error", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			defer func() {
				if rec := recover(); rec != nil {
					tx.Rollback()
					panic(rec)
				}
			}()

			buf := &bufferedWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(buf, r.WithContext(setTxToContext(r.Context(), tx)))

			if buf.status >= http.StatusBadRequest {
				if err := tx.Rollback(); err != nil {
					logger.Log.Errorw("failed to rollback transaction", "error", err)
				}
				buf.flush()
				return
			}

			if err := tx.Commit(); err != nil {
				logger.Log.Errorw("failed to commit transaction", "error", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
				return
			}
			buf.flush()
		})
	}
}

// bufferedWriter holds the status and body until flush. Headers go straight
// to the underlying writer.
type bufferedWriter struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (b *bufferedWriter) WriteHeader(code int) {
	b.status = code
}

func (b *bufferedWriter) Write(p []byte) (int, error) {
	return b.body.Write(p)
}

func (b *bufferedWriter) flush() {
	b.ResponseWriter.WriteHeader(b.status)
	b.ResponseWriter.Write(b.body.Bytes())
}

type txKey struct{}

// setTxToContext stores a transaction in the context
func setTxToContext(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey{}).(*sqlx.Tx)
	return tx
}
