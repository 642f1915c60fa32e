package mappers

import (
	"dropcircle/internal/domain/circle"
	"dropcircle/internal/infrastructure/persistence/models"
)

// CircleMapper handles the conversion between Circle domain entities and
// persistence models.
type CircleMapper interface {
	ToModel(c *circle.Circle) *models.CircleModel
	ToDomain(model *models.CircleModel) (*circle.Circle, error)
}

type circleMapperImpl struct{}

func NewCircleMapper() CircleMapper {
	return &circleMapperImpl{}
}

func (m *circleMapperImpl) ToModel(c *circle.Circle) *models.CircleModel {
	return &models.CircleModel{
		ID:             c.ID(),
		SID:            c.SID(),
		Title:          c.Title(),
		OwnerAccountID: c.OwnerAccountID(),
		Live:           c.IsLive(),
		CreatedAt:      c.CreatedAt().UnixMilli(),
		UpdatedAt:      c.UpdatedAt().UnixMilli(),
	}
}

func (m *circleMapperImpl) ToDomain(model *models.CircleModel) (*circle.Circle, error) {
	return circle.ReconstructCircle(
		model.ID,
		model.SID,
		model.Title,
		model.OwnerAccountID,
		model.Live,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
