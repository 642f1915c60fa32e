package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dropcircle/internal/domain/circle"
	"dropcircle/internal/shared/errors"
)

func createTestCircle(t *testing.T, sid, owner string) *circle.Circle {
	t.Helper()
	c, err := circle.NewCircle(sid, "Night Sessions", owner)
	require.NoError(t, err)
	return c
}

func TestCircleRepository_SaveAndFind(t *testing.T) {
	database := setupTestDB(t)
	repo := NewCircleRepository(database)
	ctx := context.Background()

	c := createTestCircle(t, "cir_save1", "acct_1")
	require.NoError(t, repo.Save(ctx, c))
	assert.NotZero(t, c.ID())

	found, err := repo.FindBySID(ctx, "cir_save1")
	require.NoError(t, err)
	assert.Equal(t, "Night Sessions", found.Title())
	assert.False(t, found.IsLive())
	assert.Equal(t, "acct_1", found.OwnerAccountID())

	_, err = repo.FindBySID(ctx, "cir_missing")
	assert.True(t, errors.IsNotFoundError(err))
}

func TestCircleRepository_Update(t *testing.T) {
	database := setupTestDB(t)
	repo := NewCircleRepository(database)
	ctx := context.Background()

	c := createTestCircle(t, "cir_upd1", "acct_1")
	require.NoError(t, repo.Save(ctx, c))

	require.NoError(t, c.Rename("Renamed"))
	c.SetLive(true)
	require.NoError(t, repo.Update(ctx, c))

	found, err := repo.FindBySID(ctx, "cir_upd1")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", found.Title())
	assert.True(t, found.IsLive())
}

func TestCircleRepository_SetLiveIsImmediatelyVisible(t *testing.T) {
	database := setupTestDB(t)
	repo := NewCircleRepository(database)
	ctx := context.Background()

	c := createTestCircle(t, "cir_vis1", "acct_1")
	require.NoError(t, repo.Save(ctx, c))

	// Every flip must be observed by the very next read.
	for _, live := range []bool{true, false, true} {
		c.SetLive(live)
		require.NoError(t, repo.Update(ctx, c))

		found, err := repo.FindBySID(ctx, "cir_vis1")
		require.NoError(t, err)
		assert.Equal(t, live, found.IsLive())
	}
}

func TestCircleRepository_ListAndCountByOwner(t *testing.T) {
	database := setupTestDB(t)
	repo := NewCircleRepository(database)
	ctx := context.Background()

	older := createTestCircle(t, "cir_own1", "acct_1")
	require.NoError(t, repo.Save(ctx, older))

	time.Sleep(5 * time.Millisecond)

	newer := createTestCircle(t, "cir_own2", "acct_1")
	require.NoError(t, repo.Save(ctx, newer))

	other := createTestCircle(t, "cir_other", "acct_2")
	require.NoError(t, repo.Save(ctx, other))

	circles, err := repo.ListByOwner(ctx, "acct_1")
	require.NoError(t, err)
	require.Len(t, circles, 2)
	assert.Equal(t, "cir_own2", circles[0].SID())
	assert.Equal(t, "cir_own1", circles[1].SID())

	count, err := repo.CountByOwner(ctx, "acct_1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = repo.CountByOwner(ctx, "acct_ghost")
	require.NoError(t, err)
	assert.Zero(t, count)
}
