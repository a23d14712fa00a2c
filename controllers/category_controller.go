package controllers

import (
	"school-inventory/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CategoryController struct {
	DB *gorm.DB
}

func NewCategoryController(DB *gorm.DB) *CategoryController {
	return &CategoryController{DB: DB}
}

func (c *CategoryController) GetAllCategories(ctx *fiber.Ctx) error {
	var categories []models.Category
	if err := c.DB.Find(&categories).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"data":    categories,
	})
}

func (c *CategoryController) CreateCategory(ctx *fiber.Ctx) error {
	userID := int(ctx.Locals("userID").(float64))

	var input struct {
		Name          string `json:"name" validate:"required,min=2"`
		IsRawMaterial bool   `json:"is_raw_material"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	category := models.Category{
		Name:          input.Name,
		IsRawMaterial: input.IsRawMaterial,
		CreatedBy:     userID,
		UpdatedBy:     userID,
	}
	if err := c.DB.Create(&category).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Category created successfully",
		"data":    category,
	})
}

// DeleteCategory is refused while an asset still references the category.
func (c *CategoryController) DeleteCategory(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var category models.Category
	if err := c.DB.First(&category, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Category not found"})
	}

	var assetCount int64
	if err := c.DB.Model(&models.Asset{}).Where("category_id = ?", category.ID).Count(&assetCount).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if assetCount > 0 {
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Category is still referenced by assets and cannot be deleted",
		})
	}

	if err := c.DB.Delete(&category).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Category deleted successfully",
	})
}
