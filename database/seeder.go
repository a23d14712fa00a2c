package database

import (
	"log"

	"school-inventory/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func RunSeeders(db *gorm.DB) {
	SeedPermissions(db)
	SeedUsers(db)
	SeedCategories(db)
}

func SeedPermissions(db *gorm.DB) {
	permissions := []models.Permission{
		{Name: "manage_permissions", Description: "Edit the permission matrix"},
		{Name: "manage_assets", Description: "Create and edit assets"},
		{Name: "manage_locations", Description: "Create and delete storage locations"},
		{Name: "manage_users", Description: "Create and edit users"},
	}

	for _, p := range permissions {
		var existing models.Permission
		if err := db.Where("name = ?", p.Name).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				db.Create(&p)
			}
		}
	}
}

func SeedUsers(db *gorm.DB) {
	users := []models.User{
		{Username: "principal", Name: "Principal", Email: "principal@school.local", Role: models.RolePrincipal},
		{Username: "storekeeper", Name: "Storekeeper", Email: "storekeeper@school.local", Role: models.RoleStorekeeper},
	}

	for _, u := range users {
		var existing models.User
		if err := db.Where("username = ?", u.Username).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				hashed, err := bcrypt.GenerateFromPassword([]byte("changeme"), bcrypt.DefaultCost)
				if err != nil {
					log.Fatalf("Failed to hash seed password: %v", err)
				}
				u.Password = string(hashed)
				db.Create(&u)

				if u.Role == models.RolePrincipal {
					var perms []models.Permission
					db.Find(&perms)
					db.Model(&u).Association("Permissions").Replace(perms)
				}
			}
		}
	}
}

func SeedCategories(db *gorm.DB) {
	categories := []models.Category{
		{Name: "Books"},
		{Name: "Instruments"},
		{Name: "Craft Supplies", IsRawMaterial: true},
	}

	for _, c := range categories {
		var existing models.Category
		if err := db.Where("name = ?", c.Name).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				db.Create(&c)
			}
		}
	}
}
