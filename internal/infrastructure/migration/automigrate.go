package migration

import (
	"dropcircle/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.BetaRequestModel{},
		&models.CircleModel{},
		&models.ArtifactModel{},
		&models.FeedbackModel{},
	}
}
