package dto

import (
	"time"

	"dropcircle/internal/domain/feedback"
)

type FeedbackDTO struct {
	ID          uint      `json:"id"`
	TargetID    string    `json:"target_id,omitempty"`
	TargetTitle string    `json:"target_title"`
	Thumbs      *string   `json:"thumbs,omitempty"`
	Rating      *int      `json:"rating,omitempty"`
	Comment     string    `json:"comment,omitempty"`
	FanName     string    `json:"fan_name,omitempty"`
	FanEmail    string    `json:"fan_email,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func ToFeedbackDTO(f *feedback.Feedback) *FeedbackDTO {
	if f == nil {
		return nil
	}

	var thumbs *string
	if f.Thumbs() != nil {
		t := string(*f.Thumbs())
		thumbs = &t
	}

	return &FeedbackDTO{
		ID:          f.ID(),
		TargetID:    f.TargetID(),
		TargetTitle: f.TargetTitle(),
		Thumbs:      thumbs,
		Rating:      f.Rating(),
		Comment:     f.Comment(),
		FanName:     f.FanName(),
		FanEmail:    f.FanEmail(),
		CreatedAt:   f.CreatedAt(),
	}
}

func ToFeedbackDTOs(items []*feedback.Feedback) []*FeedbackDTO {
	dtos := make([]*FeedbackDTO, 0, len(items))
	for _, f := range items {
		dtos = append(dtos, ToFeedbackDTO(f))
	}
	return dtos
}
