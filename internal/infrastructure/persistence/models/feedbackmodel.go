package models

// FeedbackModel persists fan reactions. TargetID/TargetTitle are
// denormalized on purpose; there is no foreign key into artifacts.
type FeedbackModel struct {
	ID          uint    `gorm:"primaryKey"`
	TargetID    string  `gorm:"size:200;index"`
	TargetTitle string  `gorm:"size:200;not null"`
	Thumbs      *string `gorm:"size:8"`
	Rating      *int
	Comment     string `gorm:"size:500"`
	FanName     string `gorm:"size:80"`
	FanEmail    string `gorm:"size:120"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (FeedbackModel) TableName() string {
	return "fan_feedback"
}
