package drop

import "dropcircle/internal/application/feedback/usecases"

type SubmitFeedbackRequest struct {
	TargetID    string  `json:"target_id,omitempty" binding:"max=200"`
	TargetTitle string  `json:"target_title" binding:"required,max=200"`
	Thumbs      *string `json:"thumbs,omitempty" binding:"omitempty,oneof=up down"`
	Rating      *int    `json:"rating,omitempty" binding:"omitempty,min=1,max=5"`
	Comment     string  `json:"comment,omitempty" binding:"max=500"`
	FanName     string  `json:"fan_name,omitempty" binding:"max=80"`
	FanEmail    string  `json:"fan_email,omitempty" binding:"omitempty,email,max=120"`
}

func (r *SubmitFeedbackRequest) ToCommand() usecases.SubmitFeedbackCommand {
	return usecases.SubmitFeedbackCommand{
		TargetID:    r.TargetID,
		TargetTitle: r.TargetTitle,
		Thumbs:      r.Thumbs,
		Rating:      r.Rating,
		Comment:     r.Comment,
		FanName:     r.FanName,
		FanEmail:    r.FanEmail,
	}
}
