package models

// BetaRequestModel persists beta requests. The unique index on Email is the
// enforcement point for the one-request-per-address invariant: concurrent
// submits race on the index, not on an application-level read.
type BetaRequestModel struct {
	ID         uint   `gorm:"primaryKey"`
	SID        string `gorm:"column:sid;uniqueIndex;size:20;not null"`
	Name       string `gorm:"size:120;not null"`
	Email      string `gorm:"uniqueIndex;size:254;not null"`
	Note       string `gorm:"type:text"`
	Status     string `gorm:"size:20;not null;index"`
	AccountID  string `gorm:"size:64;index;default:''"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt  int64  `gorm:"autoUpdateTime:milli;not null"`
	ReviewedAt *int64

	// No foreign key constraints or associations. Relationships are managed
	// by application business logic.
}

func (BetaRequestModel) TableName() string {
	return "beta_requests"
}
