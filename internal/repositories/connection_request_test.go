package repositories

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/sbilibin2017/dev-connect/internal/errs"
	"github.com/sbilibin2017/dev-connect/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectionRequestRepositories(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	ctx := context.Background()
	users := NewUserWriteRepository(db)
	readRepo := NewConnectionRequestReadRepository(db, nil)
	writeRepo := NewConnectionRequestWriteRepository(db, nil)

	a, err := users.Create(ctx, newTestUser("Alice", "alice@example.com"))
	require.NoError(t, err)
	b, err := users.Create(ctx, newTestUser("Bob", "bob@example.com"))
	require.NoError(t, err)
	c, err := users.Create(ctx, newTestUser("Carol", "carol@example.com"))
	require.NoError(t, err)

	ab, err := writeRepo.Create(ctx, a.UserID, b.UserID, models.StatusInterested)
	require.NoError(t, err)
	assert.Equal(t, a.UserID, ab.FromUserID)
	assert.Equal(t, b.UserID, ab.ToUserID)
	assert.Equal(t, models.StatusInterested, ab.Status)

	t.Run("pair index rejects reverse direction", func(t *testing.T) {
		_, err := writeRepo.Create(ctx, b.UserID, a.UserID, models.StatusIgnored)
		assert.ErrorIs(t, err, errs.ErrDuplicate)
	})

	t.Run("pair index rejects same direction", func(t *testing.T) {
		_, err := writeRepo.Create(ctx, a.UserID, b.UserID, models.StatusIgnored)
		assert.ErrorIs(t, err, errs.ErrDuplicate)
	})

	t.Run("self request rejected by check constraint", func(t *testing.T) {
		_, err := writeRepo.Create(ctx, c.UserID, c.UserID, models.StatusInterested)
		assert.Error(t, err)
	})

	t.Run("GetBetween both orderings", func(t *testing.T) {
		got, err := readRepo.GetBetween(ctx, b.UserID, a.UserID)
		assert.NoError(t, err)
		assert.Equal(t, ab.RequestID, got.RequestID)

		none, err := readRepo.GetBetween(ctx, a.UserID, c.UserID)
		assert.NoError(t, err)
		assert.Nil(t, none)
	})

	ca, err := writeRepo.Create(ctx, c.UserID, a.UserID, models.StatusIgnored)
	require.NoError(t, err)

	t.Run("ListByUser any status", func(t *testing.T) {
		reqs, err := readRepo.ListByUser(ctx, a.UserID, nil)
		assert.NoError(t, err)
		assert.Len(t, reqs, 2)
	})

	t.Run("ListReceived", func(t *testing.T) {
		reqs, err := readRepo.ListReceived(ctx, b.UserID, models.StatusInterested)
		assert.NoError(t, err)
		require.Len(t, reqs, 1)
		assert.Equal(t, ab.RequestID, reqs[0].RequestID)

		reqs, err = readRepo.ListReceived(ctx, a.UserID, models.StatusInterested)
		assert.NoError(t, err)
		assert.Empty(t, reqs)
	})

	t.Run("UpdateStatus compare and set", func(t *testing.T) {
		updated, err := writeRepo.UpdateStatus(ctx, ab.RequestID, models.StatusInterested, models.StatusAccepted)
		assert.NoError(t, err)
		assert.Equal(t, models.StatusAccepted, updated.Status)

		again, err := writeRepo.UpdateStatus(ctx, ab.RequestID, models.StatusInterested, models.StatusRejected)
		assert.NoError(t, err)
		assert.Nil(t, again)

		ignored, err := writeRepo.UpdateStatus(ctx, ca.RequestID, models.StatusInterested, models.StatusAccepted)
		assert.NoError(t, err)
		assert.Nil(t, ignored)
	})

	t.Run("ListByUser accepted only", func(t *testing.T) {
		accepted := models.StatusAccepted
		reqs, err := readRepo.ListByUser(ctx, b.UserID, &accepted)
		assert.NoError(t, err)
		require.Len(t, reqs, 1)
		assert.Equal(t, a.UserID, reqs[0].Counterpart(b.UserID))
	})

	t.Run("GetByID", func(t *testing.T) {
		got, err := readRepo.GetByID(ctx, ca.RequestID)
		assert.NoError(t, err)
		assert.Equal(t, models.StatusIgnored, got.Status)

		missing, err := readRepo.GetByID(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Nil(t, missing)
	})
}

func TestConnectionRequestWriteRepository_ConcurrentSend(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	ctx := context.Background()
	users := NewUserWriteRepository(db)
	writeRepo := NewConnectionRequestWriteRepository(db, nil)

	a, err := users.Create(ctx, newTestUser("Alice", "alice@example.com"))
	require.NoError(t, err)
	b, err := users.Create(ctx, newTestUser("Bob", "bob@example.com"))
	require.NoError(t, err)

	const workers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		created   int
		conflicts int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			from, to := a.UserID, b.UserID
			if i%2 == 1 {
				from, to = to, from
			}
			_, err := writeRepo.Create(ctx, from, to, models.StatusInterested)
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				created++
			} else if assert.ErrorIs(t, err, errs.ErrDuplicate) {
				conflicts++
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, created)
	assert.Equal(t, workers-1, conflicts)
}
