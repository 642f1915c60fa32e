package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"dropcircle/internal/infrastructure/persistence/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = database.AutoMigrate(
		&models.BetaRequestModel{},
		&models.CircleModel{},
		&models.ArtifactModel{},
		&models.FeedbackModel{},
	)
	require.NoError(t, err)

	return database
}

// The repositories query the short-id column by its raw name, and the SQL
// migration scripts create it as "sid". The model mapping has to agree with
// both or every lookup dies against the real schema.
func TestMigratedModels_SIDColumnName(t *testing.T) {
	database := setupTestDB(t)

	for _, model := range []interface{}{
		&models.BetaRequestModel{},
		&models.CircleModel{},
		&models.ArtifactModel{},
	} {
		require.True(t, database.Migrator().HasColumn(model, "sid"),
			"%T must map SID to column sid", model)
		require.False(t, database.Migrator().HasColumn(model, "s_id"),
			"%T must not fall back to the default naming", model)
	}
}
