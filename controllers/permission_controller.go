package controllers

import (
	"strconv"

	"school-inventory/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type PermissionController struct {
	DB *gorm.DB
}

func NewPermissionController(DB *gorm.DB) *PermissionController {
	return &PermissionController{DB: DB}
}

// GetMatrix lists all users and permissions. With ?user=<id> it also
// returns the target user's current grants, to preload the form.
func (c *PermissionController) GetMatrix(ctx *fiber.Ctx) error {
	var users []models.User
	if err := c.DB.Find(&users).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var permissions []models.Permission
	if err := c.DB.Find(&permissions).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	data := fiber.Map{
		"users":       users,
		"permissions": permissions,
	}

	if userParam := ctx.Query("user"); userParam != "" {
		targetID, err := strconv.Atoi(userParam)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user ID"})
		}

		var target models.User
		if err := c.DB.Preload("Permissions").First(&target, targetID).Error; err != nil {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		data["target"] = target
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

type permissionMatrixInput struct {
	UserID        uint   `json:"user_id" validate:"required"`
	PermissionIDs []uint `json:"permission_ids"`
}

// ReplacePermissions replaces the target user's entire grant set with the
// submitted one. Full replace, not merge; an empty set revokes everything.
func (c *PermissionController) ReplacePermissions(ctx *fiber.Ctx) error {
	var input permissionMatrixInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var target models.User
	if err := c.DB.First(&target, input.UserID).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	var perms []models.Permission
	if len(input.PermissionIDs) > 0 {
		if err := c.DB.Where("id IN ?", input.PermissionIDs).Find(&perms).Error; err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		if len(perms) != len(input.PermissionIDs) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown permission in set"})
		}
	}

	if err := c.DB.Model(&target).Association("Permissions").Replace(perms); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Permissions updated",
	})
}
