package dto

import (
	"time"

	"dropcircle/internal/domain/betarequest"
)

type BetaRequestDTO struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Note       string     `json:"note,omitempty"`
	Status     string     `json:"status"`
	AccountID  string     `json:"account_id,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	ReviewedAt *time.Time `json:"reviewed_at,omitempty"`
}

func ToBetaRequestDTO(r *betarequest.BetaRequest) *BetaRequestDTO {
	if r == nil {
		return nil
	}

	return &BetaRequestDTO{
		ID:         r.SID(),
		Name:       r.Name(),
		Email:      r.Email(),
		Note:       r.Note(),
		Status:     r.Status().String(),
		AccountID:  r.AccountID(),
		CreatedAt:  r.CreatedAt(),
		ReviewedAt: r.ReviewedAt(),
	}
}

func ToBetaRequestDTOs(requests []*betarequest.BetaRequest) []*BetaRequestDTO {
	dtos := make([]*BetaRequestDTO, 0, len(requests))
	for _, r := range requests {
		dtos = append(dtos, ToBetaRequestDTO(r))
	}
	return dtos
}
