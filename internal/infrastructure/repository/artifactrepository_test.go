package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dropcircle/internal/domain/artifact"
	vo "dropcircle/internal/domain/artifact/valueobjects"
)

func createTestArtifact(t *testing.T, sid string, circleID uint, title string) *artifact.Artifact {
	t.Helper()
	a, err := artifact.NewArtifact(sid, circleID, title, "vault/"+sid+".wav", vo.MediaKindAudio)
	require.NoError(t, err)
	return a
}

func TestArtifactRepository_Save(t *testing.T) {
	database := setupTestDB(t)
	repo := NewArtifactRepository(database)
	ctx := context.Background()

	a := createTestArtifact(t, "art_save1", 1, "First Take")
	require.NoError(t, repo.Save(ctx, a))
	assert.NotZero(t, a.ID())
}

func TestArtifactRepository_ListByCircleID(t *testing.T) {
	database := setupTestDB(t)
	repo := NewArtifactRepository(database)
	ctx := context.Background()

	// Insertion order is the display order, regardless of title.
	titles := []string{"Zulu", "Alpha", "Mike"}
	for i, title := range titles {
		a := createTestArtifact(t, "art_ord"+string(rune('a'+i)), 7, title)
		require.NoError(t, repo.Save(ctx, a))
	}

	other := createTestArtifact(t, "art_other", 8, "Elsewhere")
	require.NoError(t, repo.Save(ctx, other))

	artifacts, err := repo.ListByCircleID(ctx, 7)
	require.NoError(t, err)
	require.Len(t, artifacts, 3)
	for i, title := range titles {
		assert.Equal(t, title, artifacts[i].Title())
	}

	empty, err := repo.ListByCircleID(ctx, 99)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestArtifactRepository_CountByCircleIDs(t *testing.T) {
	database := setupTestDB(t)
	repo := NewArtifactRepository(database)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		a := createTestArtifact(t, "art_cnta"+string(rune('0'+i)), 1, "Track")
		require.NoError(t, repo.Save(ctx, a))
	}
	b := createTestArtifact(t, "art_cntb", 2, "Track")
	require.NoError(t, repo.Save(ctx, b))

	counts, err := repo.CountByCircleIDs(ctx, []uint{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, int64(3), counts[1])
	assert.Equal(t, int64(1), counts[2])

	// Circles without artifacts simply have no entry.
	_, ok := counts[3]
	assert.False(t, ok)

	counts, err = repo.CountByCircleIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, counts)
}
