package migration

import (
	"fmt"

	"gorm.io/gorm"

	"orgjet/internal/infrastructure/persistence/models"
	"orgjet/internal/shared/logger"
)

// Models returns every persistence model in migration order. Join and child
// tables come after the tables they reference; there are no database-level
// foreign keys, so the order only matters for readability.
func Models() []interface{} {
	return []interface{}{
		&models.TeamModel{},
		&models.UserModel{},
		&models.RequestTypeModel{},
		&models.RequestModel{},
		&models.RequestAssigneeModel{},
		&models.RequestEventModel{},
		&models.AttachmentModel{},
		&models.SubscriptionModel{},
	}
}

// AutoMigrate brings the schema up to date for all registered models.
func AutoMigrate(db *gorm.DB, log logger.Interface) error {
	models := Models()
	log.Infow("running schema migration", "models_count", len(models))

	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}

	log.Infow("schema migration completed")
	return nil
}
