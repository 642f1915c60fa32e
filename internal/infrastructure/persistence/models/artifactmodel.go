package models

type ArtifactModel struct {
	ID          uint   `gorm:"primaryKey"`
	SID         string `gorm:"column:sid;uniqueIndex;size:20;not null"`
	CircleID    uint   `gorm:"not null;index"`
	Title       string `gorm:"size:200;not null"`
	StoragePath string `gorm:"size:500;not null"`
	MediaKind   string `gorm:"size:10;not null"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (ArtifactModel) TableName() string {
	return "artifacts"
}
