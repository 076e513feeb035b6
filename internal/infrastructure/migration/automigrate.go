package migration

import (
	"helpdesk/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists every model the schema is derived from.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.SessionModel{},
		&models.TicketModel{},
		&models.ArticleModel{},
	}
}
