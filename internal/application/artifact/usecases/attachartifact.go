package usecases

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"dropcircle/internal/domain/artifact"
	vo "dropcircle/internal/domain/artifact/valueobjects"
	"dropcircle/internal/domain/circle"
	"dropcircle/internal/infrastructure/storage"
	"dropcircle/internal/shared/errors"
	"dropcircle/internal/shared/id"
	"dropcircle/internal/shared/logger"
)

type AttachArtifactCommand struct {
	CircleID    string
	AccountID   string
	Title       string
	ContentType string
	Content     io.Reader
}

type AttachArtifactResult struct {
	ArtifactID  string
	Title       string
	MediaKind   string
	StoragePath string
	CreatedAt   time.Time
}

// AttachArtifactUseCase stores the media bytes and registers the metadata.
// The two steps are not atomic: when registration fails after a successful
// blob write, the caller gets a partial-upload error, the blob stays
// orphaned at its path, and a retry writes a fresh object. Offline circles
// accept attachments; live only gates fan reachability.
type AttachArtifactUseCase struct {
	artifactRepo artifact.Repository
	circleRepo   circle.Repository
	blobStore    storage.BlobStore
	logger       logger.Interface
}

func NewAttachArtifactUseCase(
	artifactRepo artifact.Repository,
	circleRepo circle.Repository,
	blobStore storage.BlobStore,
	logger logger.Interface,
) *AttachArtifactUseCase {
	return &AttachArtifactUseCase{
		artifactRepo: artifactRepo,
		circleRepo:   circleRepo,
		blobStore:    blobStore,
		logger:       logger,
	}
}

func (uc *AttachArtifactUseCase) Execute(ctx context.Context, cmd AttachArtifactCommand) (*AttachArtifactResult, error) {
	uc.logger.Infow("executing attach artifact use case", "circle_id", cmd.CircleID)

	if strings.TrimSpace(cmd.Title) == "" {
		return nil, errors.NewValidationError("title is required")
	}

	mediaKind, ok := vo.MediaKindFromContentType(cmd.ContentType)
	if !ok {
		return nil, errors.NewValidationError("content type must be audio/* or video/*")
	}
	if cmd.Content == nil {
		return nil, errors.NewValidationError("content is required")
	}

	c, err := uc.circleRepo.FindBySID(ctx, cmd.CircleID)
	if err != nil {
		return nil, err
	}
	if !c.IsOwnedBy(cmd.AccountID) {
		uc.logger.Warnw("attach by non-owner", "circle_id", cmd.CircleID, "account_id", cmd.AccountID)
		return nil, errors.NewForbiddenError("circle is owned by another account")
	}

	artifactSID, err := id.NewArtifactID()
	if err != nil {
		uc.logger.Errorw("failed to generate artifact ID", "error", err)
		return nil, errors.NewInternalError("failed to generate artifact ID")
	}

	key := fmt.Sprintf("%s/%s", c.SID(), artifactSID)
	storagePath, err := uc.blobStore.Put(ctx, key, cmd.ContentType, cmd.Content)
	if err != nil {
		uc.logger.Errorw("failed to store artifact media", "error", err)
		return nil, errors.NewTransientError("failed to store artifact media", err.Error())
	}

	newArtifact, err := artifact.NewArtifact(artifactSID, c.ID(), cmd.Title, storagePath, mediaKind)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.artifactRepo.Save(ctx, newArtifact); err != nil {
		uc.logger.Errorw("artifact registration failed after blob write",
			"circle_id", cmd.CircleID,
			"storage_path", storagePath,
			"error", err)
		return nil, errors.NewPartialUploadError("artifact was stored but not registered", storagePath)
	}

	uc.logger.Infow("artifact attached",
		"artifact_id", newArtifact.SID(),
		"circle_id", c.SID(),
		"media_kind", mediaKind.String())

	return &AttachArtifactResult{
		ArtifactID:  newArtifact.SID(),
		Title:       newArtifact.Title(),
		MediaKind:   newArtifact.MediaKind().String(),
		StoragePath: newArtifact.StoragePath(),
		CreatedAt:   newArtifact.CreatedAt(),
	}, nil
}
