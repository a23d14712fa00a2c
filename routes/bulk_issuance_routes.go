package routes

import (
	"school-inventory/controllers"
	"school-inventory/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupBulkIssuanceRoutes(app *fiber.App, db *gorm.DB, auth *middleware.AuthMiddleware) {
	bulkIssuanceController := controllers.NewBulkIssuanceController(db)

	api := app.Group("/bulk-issuance", auth.RequireAuth)
	api.Get("/", bulkIssuanceController.GetAllBulkIssuances)
	api.Post("/", bulkIssuanceController.CreateBulkIssuance)
}
