package controllers

import (
	"school-inventory/config"
	"school-inventory/models"
	"school-inventory/repositories"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// dashboardPreviewLimit caps the alert and low-stock previews on the
// dashboard.
const dashboardPreviewLimit = 5

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// GetDashboard composes the role-scoped summary: the modules the acting
// user's role can open, unresolved alerts and a low-stock preview. Read-only.
func (c *DashboardController) GetDashboard(ctx *fiber.Ctx) error {
	userID := uint(ctx.Locals("userID").(float64))

	var user models.User
	if err := c.DB.First(&user, userID).Error; err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not found"})
	}

	role := user.Role
	if !models.ValidRole(role) {
		role = models.RoleTeacher
	}
	modules := config.ModulesForRole(role)

	dashboardRepo := repositories.NewDashboardRepository(c.DB)

	alerts, err := dashboardRepo.UnresolvedAlerts(dashboardPreviewLimit)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	lowStock, err := dashboardRepo.LowStockAssets(dashboardPreviewLimit)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"role":             role,
			"modules":          modules,
			"alerts":           alerts,
			"low_stock_assets": lowStock,
		},
	})
}
