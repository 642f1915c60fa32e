package mappers

import (
	"dropcircle/internal/domain/feedback"
	"dropcircle/internal/infrastructure/persistence/models"
)

type FeedbackMapper interface {
	ToModel(f *feedback.Feedback) *models.FeedbackModel
	ToDomain(model *models.FeedbackModel) (*feedback.Feedback, error)
}

type feedbackMapperImpl struct{}

func NewFeedbackMapper() FeedbackMapper {
	return &feedbackMapperImpl{}
}

func (m *feedbackMapperImpl) ToModel(f *feedback.Feedback) *models.FeedbackModel {
	model := &models.FeedbackModel{
		ID:          f.ID(),
		TargetID:    f.TargetID(),
		TargetTitle: f.TargetTitle(),
		Rating:      f.Rating(),
		Comment:     f.Comment(),
		FanName:     f.FanName(),
		FanEmail:    f.FanEmail(),
		CreatedAt:   f.CreatedAt().UnixMilli(),
	}

	if f.Thumbs() != nil {
		thumbs := string(*f.Thumbs())
		model.Thumbs = &thumbs
	}

	return model
}

func (m *feedbackMapperImpl) ToDomain(model *models.FeedbackModel) (*feedback.Feedback, error) {
	var thumbs *feedback.Thumbs
	if model.Thumbs != nil {
		t := feedback.Thumbs(*model.Thumbs)
		if !t.IsValid() {
			return nil, invalidFieldError("feedback", model.ID, "thumbs", *model.Thumbs)
		}
		thumbs = &t
	}

	return feedback.ReconstructFeedback(
		model.ID,
		model.TargetID,
		model.TargetTitle,
		thumbs,
		model.Rating,
		model.Comment,
		model.FanName,
		model.FanEmail,
		millisToTime(model.CreatedAt),
	)
}
