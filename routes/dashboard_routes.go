package routes

import (
	"school-inventory/controllers"
	"school-inventory/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupDashboardRoutes(app *fiber.App, db *gorm.DB, auth *middleware.AuthMiddleware) {
	dashboardController := controllers.NewDashboardController(db)

	app.Get("/dashboard/", auth.RequireAuth, dashboardController.GetDashboard)
}
