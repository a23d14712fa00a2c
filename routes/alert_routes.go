package routes

import (
	"school-inventory/controllers"
	"school-inventory/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAlertRoutes(app *fiber.App, db *gorm.DB, auth *middleware.AuthMiddleware) {
	alertController := controllers.NewAlertController(db)

	api := app.Group("/alerts", auth.RequireAuth)
	api.Get("/", alertController.GetUnresolvedAlerts)
	api.Post("/resolve/:id", alertController.ResolveAlert)
}
