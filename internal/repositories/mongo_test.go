package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/dev-connect/internal/errs"
	"github.com/sbilibin2017/dev-connect/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPairKey_IsSymmetric(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	assert.Equal(t, pairKey(a, b), pairKey(b, a))
	assert.NotEqual(t, pairKey(a, b), pairKey(a, uuid.New()))
}

func TestUserMongoRepository(t *testing.T) {
	db, teardown := setupMongo(t)
	defer teardown()

	repo := NewUserMongoRepository(db)
	ctx := context.Background()

	alice, err := repo.Create(ctx, newTestUser("Alice", "alice@example.com"))
	require.NoError(t, err)

	_, err = repo.Create(ctx, newTestUser("Again", "alice@example.com"))
	assert.ErrorIs(t, err, errs.ErrDuplicate)

	got, err := repo.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, alice.UserID, got.UserID)

	missing, err := repo.GetByID(ctx, uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, missing)

	last := "Smith"
	updated, err := repo.UpdateProfile(ctx, alice.UserID, models.ProfileUpdate{LastName: &last})
	require.NoError(t, err)
	assert.Equal(t, "Alice", updated.FirstName)
	assert.Equal(t, "Smith", *updated.LastName)

	assert.NoError(t, repo.UpdatePassword(ctx, alice.UserID, "newhash"))
	assert.Error(t, repo.UpdatePassword(ctx, uuid.New(), "x"))

	ids := []uuid.UUID{alice.UserID}
	for _, name := range []string{"Bella", "Clara", "Diana"} {
		time.Sleep(5 * time.Millisecond)
		u, err := repo.Create(ctx, newTestUser(name, name+"@example.com"))
		require.NoError(t, err)
		ids = append(ids, u.UserID)
	}

	total, err := repo.CountExcluding(ctx, []uuid.UUID{ids[0]})
	assert.NoError(t, err)
	assert.Equal(t, 3, total)

	page, err := repo.ListExcluding(ctx, []uuid.UUID{ids[0]}, 1, 2)
	assert.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, ids[2], page[0].UserID)
	assert.Equal(t, ids[3], page[1].UserID)

	byIDs, err := repo.GetByIDs(ctx, []uuid.UUID{ids[1], ids[3]})
	assert.NoError(t, err)
	assert.Len(t, byIDs, 2)
}

func TestConnectionRequestMongoRepository(t *testing.T) {
	db, teardown := setupMongo(t)
	defer teardown()

	repo := NewConnectionRequestMongoRepository(db)
	ctx := context.Background()
	a, b, c := uuid.New(), uuid.New(), uuid.New()

	ab, err := repo.Create(ctx, a, b, models.StatusInterested)
	require.NoError(t, err)

	_, err = repo.Create(ctx, b, a, models.StatusIgnored)
	assert.ErrorIs(t, err, errs.ErrDuplicate)

	between, err := repo.GetBetween(ctx, b, a)
	require.NoError(t, err)
	assert.Equal(t, ab.RequestID, between.RequestID)

	_, err = repo.Create(ctx, c, a, models.StatusIgnored)
	require.NoError(t, err)

	all, err := repo.ListByUser(ctx, a, nil)
	assert.NoError(t, err)
	assert.Len(t, all, 2)

	received, err := repo.ListReceived(ctx, b, models.StatusInterested)
	assert.NoError(t, err)
	assert.Len(t, received, 1)

	updated, err := repo.UpdateStatus(ctx, ab.RequestID, models.StatusInterested, models.StatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, updated.Status)

	again, err := repo.UpdateStatus(ctx, ab.RequestID, models.StatusInterested, models.StatusRejected)
	assert.NoError(t, err)
	assert.Nil(t, again)

	accepted := models.StatusAccepted
	conns, err := repo.ListByUser(ctx, a, &accepted)
	assert.NoError(t, err)
	require.Len(t, conns, 1)
	assert.Equal(t, b, conns[0].Counterpart(a))

	missing, err := repo.GetByID(ctx, uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, missing)
}
