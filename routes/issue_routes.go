package routes

import (
	"school-inventory/controllers"
	"school-inventory/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupIssueRoutes(app *fiber.App, db *gorm.DB, auth *middleware.AuthMiddleware) {
	issueController := controllers.NewIssueController(db)

	api := app.Group("/issues", auth.RequireAuth)
	api.Get("/", issueController.GetQueue)
	api.Post("/", issueController.CreateIssue)
	api.Post("/accept/:id", issueController.AcceptIssue)
	api.Post("/reject/:id", issueController.RejectIssue)
}
