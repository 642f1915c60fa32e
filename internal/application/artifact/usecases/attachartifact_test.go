package usecases

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dropcircle/internal/domain/artifact"
	"dropcircle/internal/domain/circle"
	"dropcircle/internal/shared/errors"
	"dropcircle/internal/shared/logger"
)

func TestAttachArtifactUseCase_Execute(t *testing.T) {
	log := logger.NewLogger()

	circleRepo := func(owner string) *mockCircleRepository {
		return &mockCircleRepository{
			FindBySIDFunc: func(ctx context.Context, sid string) (*circle.Circle, error) {
				return storedCircle(sid, owner), nil
			},
		}
	}

	t.Run("stores blob then registers metadata", func(t *testing.T) {
		var saved *artifact.Artifact
		artifactRepo := &mockArtifactRepository{
			SaveFunc: func(ctx context.Context, a *artifact.Artifact) error {
				saved = a
				return a.SetID(1)
			},
		}
		blobs := newMockBlobStore()

		uc := NewAttachArtifactUseCase(artifactRepo, circleRepo("acct_1"), blobs, log)
		result, err := uc.Execute(context.Background(), AttachArtifactCommand{
			CircleID:    "cir_abc",
			AccountID:   "acct_1",
			Title:       "Track One",
			ContentType: "audio/wav",
			Content:     strings.NewReader("wav-bytes"),
		})

		require.NoError(t, err)
		assert.Equal(t, "audio", result.MediaKind)
		assert.NotEmpty(t, result.StoragePath)

		require.NotNil(t, saved)
		assert.Equal(t, result.StoragePath, saved.StoragePath())
		assert.Equal(t, []byte("wav-bytes"), blobs.stored[result.StoragePath])
	})

	t.Run("registration failure after blob write is a partial upload", func(t *testing.T) {
		artifactRepo := &mockArtifactRepository{
			SaveFunc: func(ctx context.Context, a *artifact.Artifact) error {
				return errors.NewTransientError("database unavailable")
			},
		}
		blobs := newMockBlobStore()

		uc := NewAttachArtifactUseCase(artifactRepo, circleRepo("acct_1"), blobs, log)
		_, err := uc.Execute(context.Background(), AttachArtifactCommand{
			CircleID:    "cir_abc",
			AccountID:   "acct_1",
			Title:       "Track One",
			ContentType: "video/mp4",
			Content:     strings.NewReader("mp4-bytes"),
		})

		require.True(t, errors.IsAppError(err))
		appErr := errors.GetAppError(err)
		assert.Equal(t, errors.ErrorTypePartialUpload, appErr.Type)
		// The orphaned blob's path rides along for manual cleanup or retry.
		assert.NotEmpty(t, appErr.Details)
		assert.Len(t, blobs.stored, 1)
	})

	t.Run("blob write failure is transient and registers nothing", func(t *testing.T) {
		saveCalled := false
		artifactRepo := &mockArtifactRepository{
			SaveFunc: func(ctx context.Context, a *artifact.Artifact) error {
				saveCalled = true
				return nil
			},
		}
		blobs := newMockBlobStore()
		blobs.PutFunc = func(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
			return "", fmt.Errorf("disk full")
		}

		uc := NewAttachArtifactUseCase(artifactRepo, circleRepo("acct_1"), blobs, log)
		_, err := uc.Execute(context.Background(), AttachArtifactCommand{
			CircleID:    "cir_abc",
			AccountID:   "acct_1",
			Title:       "Track One",
			ContentType: "audio/mpeg",
			Content:     strings.NewReader("bytes"),
		})

		assert.True(t, errors.IsTransientError(err))
		assert.False(t, saveCalled)
	})

	t.Run("non-owner is forbidden before any write", func(t *testing.T) {
		blobs := newMockBlobStore()

		uc := NewAttachArtifactUseCase(&mockArtifactRepository{}, circleRepo("acct_1"), blobs, log)
		_, err := uc.Execute(context.Background(), AttachArtifactCommand{
			CircleID:    "cir_abc",
			AccountID:   "acct_intruder",
			Title:       "Track One",
			ContentType: "audio/wav",
			Content:     strings.NewReader("bytes"),
		})

		assert.True(t, errors.IsForbiddenError(err))
		assert.Empty(t, blobs.stored)
	})

	t.Run("offline circles accept attachments", func(t *testing.T) {
		// storedCircle is offline; live only gates fan reachability.
		uc := NewAttachArtifactUseCase(&mockArtifactRepository{}, circleRepo("acct_1"), newMockBlobStore(), log)
		_, err := uc.Execute(context.Background(), AttachArtifactCommand{
			CircleID:    "cir_abc",
			AccountID:   "acct_1",
			Title:       "Track One",
			ContentType: "audio/wav",
			Content:     strings.NewReader("bytes"),
		})
		assert.NoError(t, err)
	})

	t.Run("rejects non-media content types", func(t *testing.T) {
		uc := NewAttachArtifactUseCase(&mockArtifactRepository{}, circleRepo("acct_1"), newMockBlobStore(), log)
		_, err := uc.Execute(context.Background(), AttachArtifactCommand{
			CircleID:    "cir_abc",
			AccountID:   "acct_1",
			Title:       "Notes",
			ContentType: "application/pdf",
			Content:     strings.NewReader("bytes"),
		})
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestListArtifactsUseCase_Execute(t *testing.T) {
	log := logger.NewLogger()

	t.Run("owner view includes storage paths in creation order", func(t *testing.T) {
		first, err := artifact.ReconstructArtifact(1, "art_1", 1, "One", "cir_abc/art_1", "audio", storedCircle("cir_abc", "acct_1").CreatedAt())
		require.NoError(t, err)
		second, err := artifact.ReconstructArtifact(2, "art_2", 1, "Two", "cir_abc/art_2", "video", storedCircle("cir_abc", "acct_1").CreatedAt())
		require.NoError(t, err)

		circleRepo := &mockCircleRepository{
			FindBySIDFunc: func(ctx context.Context, sid string) (*circle.Circle, error) {
				return storedCircle(sid, "acct_1"), nil
			},
		}
		artifactRepo := &mockArtifactRepository{
			ListByCircleIDFunc: func(ctx context.Context, circleID uint) ([]*artifact.Artifact, error) {
				return []*artifact.Artifact{first, second}, nil
			},
		}

		uc := NewListArtifactsUseCase(artifactRepo, circleRepo, log)
		artifacts, err := uc.Execute(context.Background(), ListArtifactsQuery{
			CircleID:  "cir_abc",
			AccountID: "acct_1",
		})

		require.NoError(t, err)
		require.Len(t, artifacts, 2)
		assert.Equal(t, "art_1", artifacts[0].ID)
		assert.Equal(t, "art_2", artifacts[1].ID)
		assert.NotEmpty(t, artifacts[0].StoragePath)
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		circleRepo := &mockCircleRepository{
			FindBySIDFunc: func(ctx context.Context, sid string) (*circle.Circle, error) {
				return storedCircle(sid, "acct_1"), nil
			},
		}

		uc := NewListArtifactsUseCase(&mockArtifactRepository{}, circleRepo, log)
		_, err := uc.Execute(context.Background(), ListArtifactsQuery{
			CircleID:  "cir_abc",
			AccountID: "acct_intruder",
		})

		assert.True(t, errors.IsForbiddenError(err))
	})
}
