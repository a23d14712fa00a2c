package routes

import (
	"school-inventory/controllers"
	"school-inventory/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupTransformationRoutes(app *fiber.App, db *gorm.DB, auth *middleware.AuthMiddleware) {
	transformationController := controllers.NewTransformationController(db)

	api := app.Group("/transformations", auth.RequireAuth)
	api.Get("/", transformationController.GetAllTransformations)
	api.Post("/", transformationController.CreateTransformation)
}
