package migrations

import (
	"fieldserve/internal/infrastructure/persistence/models"

	"gorm.io/gorm"
)

func MigrateComplaintTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.ComplaintModel{},
		&models.AssignmentModel{},
		&models.HistoryModel{},
		&models.NoteModel{},
	)
}

func MigrateJobCardTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.JobCardModel{},
	)
}

func MigrateDirectoryTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.TechnicianModel{},
		&models.CustomerModel{},
	)
}

// MigrateAll runs every table migration in dependency-free order.
func MigrateAll(db *gorm.DB) error {
	if err := MigrateComplaintTables(db); err != nil {
		return err
	}
	if err := MigrateJobCardTables(db); err != nil {
		return err
	}
	return MigrateDirectoryTables(db)
}
