package dto

import (
	"time"

	"dropcircle/internal/domain/circle"
)

type CircleDTO struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Live      bool      `json:"live"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToCircleDTO(c *circle.Circle) *CircleDTO {
	if c == nil {
		return nil
	}

	return &CircleDTO{
		ID:        c.SID(),
		Title:     c.Title(),
		Live:      c.IsLive(),
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
}

func ToCircleDTOs(circles []*circle.Circle) []*CircleDTO {
	dtos := make([]*CircleDTO, 0, len(circles))
	for _, c := range circles {
		dtos = append(dtos, ToCircleDTO(c))
	}
	return dtos
}
