package routes

import (
	"school-inventory/controllers"
	"school-inventory/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB, auth *middleware.AuthMiddleware) {
	authController := controllers.NewAuthController(db)

	app.Get("/", authController.LoginStatus)
	app.Post("/", authController.Login)
	app.Post("/logout/", auth.RequireAuth, authController.Logout)
}
