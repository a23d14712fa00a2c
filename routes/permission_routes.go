package routes

import (
	"school-inventory/controllers"
	"school-inventory/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupPermissionRoutes(app *fiber.App, db *gorm.DB, auth *middleware.AuthMiddleware) {
	permissionController := controllers.NewPermissionController(db)

	api := app.Group("/permissions", auth.RequireAuth, auth.CheckPermission("manage_permissions"))
	api.Get("/", permissionController.GetMatrix)
	api.Post("/", permissionController.ReplacePermissions)
}
