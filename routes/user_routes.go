package routes

import (
	"school-inventory/controllers"
	"school-inventory/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupUserRoutes(app *fiber.App, db *gorm.DB, auth *middleware.AuthMiddleware) {
	userController := controllers.NewUserController(db)

	api := app.Group("/users", auth.RequireAuth)
	api.Get("/", userController.GetAllUsers)
	api.Get("/:id", userController.GetUserByID)
	api.Post("/", auth.CheckPermission("manage_users"), userController.CreateUser)
	api.Put("/:id", auth.CheckPermission("manage_users"), userController.UpdateUser)
	api.Delete("/:id", auth.CheckPermission("manage_users"), userController.DeleteUser)
}
