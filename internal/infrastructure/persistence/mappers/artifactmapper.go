package mappers

import (
	"dropcircle/internal/domain/artifact"
	vo "dropcircle/internal/domain/artifact/valueobjects"
	"dropcircle/internal/infrastructure/persistence/models"
)

type ArtifactMapper interface {
	ToModel(a *artifact.Artifact) *models.ArtifactModel
	ToDomain(model *models.ArtifactModel) (*artifact.Artifact, error)
}

type artifactMapperImpl struct{}

func NewArtifactMapper() ArtifactMapper {
	return &artifactMapperImpl{}
}

func (m *artifactMapperImpl) ToModel(a *artifact.Artifact) *models.ArtifactModel {
	return &models.ArtifactModel{
		ID:          a.ID(),
		SID:         a.SID(),
		CircleID:    a.CircleID(),
		Title:       a.Title(),
		StoragePath: a.StoragePath(),
		MediaKind:   a.MediaKind().String(),
		CreatedAt:   a.CreatedAt().UnixMilli(),
	}
}

func (m *artifactMapperImpl) ToDomain(model *models.ArtifactModel) (*artifact.Artifact, error) {
	kind, ok := vo.NewMediaKind(model.MediaKind)
	if !ok {
		return nil, invalidFieldError("artifact", model.ID, "media kind", model.MediaKind)
	}

	return artifact.ReconstructArtifact(
		model.ID,
		model.SID,
		model.CircleID,
		model.Title,
		model.StoragePath,
		kind,
		millisToTime(model.CreatedAt),
	)
}
