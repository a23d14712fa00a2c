package routes

import (
	"school-inventory/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes wires every route group onto the app.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	auth := middleware.NewAuthMiddleware(db)

	SetupAuthRoutes(app, db, auth)
	SetupDashboardRoutes(app, db, auth)
	SetupPermissionRoutes(app, db, auth)
	SetupIssueRoutes(app, db, auth)
	SetupTransformationRoutes(app, db, auth)
	SetupBulkIssuanceRoutes(app, db, auth)
	SetupAssetRoutes(app, db, auth)
	SetupLocationRoutes(app, db, auth)
	SetupCategoryRoutes(app, db, auth)
	SetupAlertRoutes(app, db, auth)
	SetupUserRoutes(app, db, auth)
}
