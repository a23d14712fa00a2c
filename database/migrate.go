package database

import (
	"school-inventory/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Permission{},
		&models.UserSession{},
		&models.LoginLog{},
		&models.Branch{},
		&models.Zone{},
		&models.Room{},
		&models.Shelf{},
		&models.Category{},
		&models.Asset{},
		&models.InventoryAlert{},
		&models.IssueRequest{},
		&models.Transformation{},
		&models.BulkIssuance{},
	)
}
