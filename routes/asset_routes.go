package routes

import (
	"school-inventory/controllers"
	"school-inventory/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAssetRoutes(app *fiber.App, db *gorm.DB, auth *middleware.AuthMiddleware) {
	assetController := controllers.NewAssetController(db)

	api := app.Group("/assets", auth.RequireAuth)
	api.Get("/", assetController.GetAllAssets)
	api.Get("/excel", assetController.ExportExcel)
	api.Get("/:id", assetController.GetAssetByID)
	api.Post("/", auth.CheckPermission("manage_assets"), assetController.CreateAsset)
	api.Put("/:id", auth.CheckPermission("manage_assets"), assetController.UpdateAsset)
	api.Delete("/:id", auth.CheckPermission("manage_assets"), assetController.DeleteAsset)
}
