package migration

import (
	"devicedesk/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.TenantModel{},
		&models.StaffMemberModel{},
		&models.CustomerModel{},
		&models.TicketModel{},
		&models.StatusEventModel{},
		&models.MessageModel{},
		&models.MediaModel{},
	}
}
