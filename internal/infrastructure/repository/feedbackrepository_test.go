package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dropcircle/internal/domain/feedback"
)

func createTestFeedback(t *testing.T, repo *FeedbackRepository, targetID, comment string) *feedback.Feedback {
	t.Helper()
	thumbs := feedback.ThumbsUp
	fb, err := feedback.NewFeedback(targetID, "Track One", &thumbs, nil, comment, "Ana", "ana@example.com")
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), fb))
	return fb
}

func TestFeedbackRepository_Save(t *testing.T) {
	database := setupTestDB(t)
	repo := NewFeedbackRepository(database)

	rating := 4
	fb, err := feedback.NewFeedback("art_1", "Track One", nil, &rating, "solid mix", "", "")
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), fb))
	assert.NotZero(t, fb.ID())

	rows, err := repo.ListByTarget(context.Background(), "art_1", 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Nil(t, rows[0].Thumbs())
	require.NotNil(t, rows[0].Rating())
	assert.Equal(t, 4, *rows[0].Rating())
	assert.Equal(t, "solid mix", rows[0].Comment())
}

func TestFeedbackRepository_ListByTarget(t *testing.T) {
	database := setupTestDB(t)
	repo := NewFeedbackRepository(database)
	ctx := context.Background()

	createTestFeedback(t, repo, "art_1", "first")
	time.Sleep(5 * time.Millisecond)
	createTestFeedback(t, repo, "art_1", "second")
	time.Sleep(5 * time.Millisecond)
	createTestFeedback(t, repo, "art_2", "other target")

	rows, err := repo.ListByTarget(ctx, "art_1", 10)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "second", rows[0].Comment())
	assert.Equal(t, "first", rows[1].Comment())

	limited, err := repo.ListByTarget(ctx, "art_1", 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "second", limited[0].Comment())

	empty, err := repo.ListByTarget(ctx, "art_none", 10)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestFeedbackRepository_ListRecent(t *testing.T) {
	database := setupTestDB(t)
	repo := NewFeedbackRepository(database)
	ctx := context.Background()

	createTestFeedback(t, repo, "art_1", "oldest")
	time.Sleep(5 * time.Millisecond)
	createTestFeedback(t, repo, "art_2", "middle")
	time.Sleep(5 * time.Millisecond)
	createTestFeedback(t, repo, "art_3", "newest")

	rows, err := repo.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "newest", rows[0].Comment())
	assert.Equal(t, "middle", rows[1].Comment())
}
