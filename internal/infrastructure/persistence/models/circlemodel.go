package models

// CircleModel persists circles. SID doubles as the fan invite capability;
// the OwnerAccountID index is what CountByOwnerForUpdate locks when the
// quota check and insert run in one transaction.
type CircleModel struct {
	ID             uint   `gorm:"primaryKey"`
	SID            string `gorm:"column:sid;uniqueIndex;size:30;not null"`
	Title          string `gorm:"size:120;not null"`
	OwnerAccountID string `gorm:"size:64;not null;index"`
	Live           bool   `gorm:"not null;default:false"`
	CreatedAt      int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt      int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (CircleModel) TableName() string {
	return "circles"
}
