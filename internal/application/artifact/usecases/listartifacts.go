package usecases

import (
	"context"

	"dropcircle/internal/application/artifact/dto"
	"dropcircle/internal/domain/artifact"
	"dropcircle/internal/domain/circle"
	"dropcircle/internal/shared/errors"
	"dropcircle/internal/shared/logger"
)

type ListArtifactsQuery struct {
	CircleID  string
	AccountID string
}

// ListArtifactsUseCase returns the owner's view of a circle's artifacts in
// creation order, storage paths included. Fans never reach this; their read
// path is the invite resolver.
type ListArtifactsUseCase struct {
	artifactRepo artifact.Repository
	circleRepo   circle.Repository
	logger       logger.Interface
}

func NewListArtifactsUseCase(
	artifactRepo artifact.Repository,
	circleRepo circle.Repository,
	logger logger.Interface,
) *ListArtifactsUseCase {
	return &ListArtifactsUseCase{
		artifactRepo: artifactRepo,
		circleRepo:   circleRepo,
		logger:       logger,
	}
}

func (uc *ListArtifactsUseCase) Execute(ctx context.Context, query ListArtifactsQuery) ([]*dto.ArtifactDTO, error) {
	c, err := uc.circleRepo.FindBySID(ctx, query.CircleID)
	if err != nil {
		return nil, err
	}
	if !c.IsOwnedBy(query.AccountID) {
		return nil, errors.NewForbiddenError("circle is owned by another account")
	}

	artifacts, err := uc.artifactRepo.ListByCircleID(ctx, c.ID())
	if err != nil {
		uc.logger.Errorw("failed to list artifacts", "error", err)
		return nil, err
	}

	return dto.ToArtifactDTOs(artifacts), nil
}
