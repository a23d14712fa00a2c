package controllers

import (
	"time"

	"school-inventory/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AlertController struct {
	DB *gorm.DB
}

func NewAlertController(DB *gorm.DB) *AlertController {
	return &AlertController{DB: DB}
}

func (c *AlertController) GetUnresolvedAlerts(ctx *fiber.Ctx) error {
	var alerts []models.InventoryAlert
	err := c.DB.Preload("Asset").
		Where("resolved_at IS NULL").
		Order("created_at desc").
		Find(&alerts).Error
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"data":    alerts,
	})
}

// ResolveAlert stamps the resolution time. Resolving an already-resolved
// alert is reported back without another mutation.
func (c *AlertController) ResolveAlert(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var alert models.InventoryAlert
	if err := c.DB.First(&alert, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Alert not found"})
	}

	if alert.ResolvedAt != nil {
		return ctx.JSON(fiber.Map{
			"success": true,
			"message": "Alert already resolved",
			"data":    alert,
		})
	}

	now := time.Now()
	alert.ResolvedAt = &now
	if err := c.DB.Save(&alert).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Alert resolved",
		"data":    alert,
	})
}
