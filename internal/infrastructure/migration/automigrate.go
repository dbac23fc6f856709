package migration

import (
	"jannivaran/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists every persistence model for gorm auto-migration.
// Only used in development; production schemas come from the SQL scripts.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.ComplaintModel{},
		&models.EscalationModel{},
		&models.AuditLogModel{},
	}
}
