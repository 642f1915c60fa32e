package usecases

import (
	"context"

	"dropcircle/internal/application/artifact/dto"
)

type AttachArtifactExecutor interface {
	Execute(ctx context.Context, cmd AttachArtifactCommand) (*AttachArtifactResult, error)
}

type ListArtifactsExecutor interface {
	Execute(ctx context.Context, query ListArtifactsQuery) ([]*dto.ArtifactDTO, error)
}
