package dto

import (
	"time"

	"dropcircle/internal/domain/artifact"
)

type ArtifactDTO struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	MediaKind   string    `json:"media_kind"`
	StoragePath string    `json:"storage_path,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func ToArtifactDTO(a *artifact.Artifact) *ArtifactDTO {
	if a == nil {
		return nil
	}

	return &ArtifactDTO{
		ID:          a.SID(),
		Title:       a.Title(),
		MediaKind:   a.MediaKind().String(),
		StoragePath: a.StoragePath(),
		CreatedAt:   a.CreatedAt(),
	}
}

func ToArtifactDTOs(artifacts []*artifact.Artifact) []*ArtifactDTO {
	dtos := make([]*ArtifactDTO, 0, len(artifacts))
	for _, a := range artifacts {
		dtos = append(dtos, ToArtifactDTO(a))
	}
	return dtos
}
