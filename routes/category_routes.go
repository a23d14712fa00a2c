package routes

import (
	"school-inventory/controllers"
	"school-inventory/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupCategoryRoutes(app *fiber.App, db *gorm.DB, auth *middleware.AuthMiddleware) {
	categoryController := controllers.NewCategoryController(db)

	api := app.Group("/categories", auth.RequireAuth)
	api.Get("/", categoryController.GetAllCategories)
	api.Post("/", auth.CheckPermission("manage_assets"), categoryController.CreateCategory)
	api.Delete("/:id", auth.CheckPermission("manage_assets"), categoryController.DeleteCategory)
}
