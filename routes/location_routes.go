package routes

import (
	"school-inventory/controllers"
	"school-inventory/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupLocationRoutes(app *fiber.App, db *gorm.DB, auth *middleware.AuthMiddleware) {
	locationController := controllers.NewLocationController(db)

	api := app.Group("/locations", auth.RequireAuth)
	api.Get("/", locationController.GetHierarchy)

	manage := api.Group("", auth.CheckPermission("manage_locations"))
	manage.Post("/branches", locationController.CreateBranch)
	manage.Delete("/branches/:id", locationController.DeleteBranch)
	manage.Post("/zones", locationController.CreateZone)
	manage.Delete("/zones/:id", locationController.DeleteZone)
	manage.Post("/rooms", locationController.CreateRoom)
	manage.Delete("/rooms/:id", locationController.DeleteRoom)
	manage.Post("/shelves", locationController.CreateShelf)
	manage.Delete("/shelves/:id", locationController.DeleteShelf)
}
