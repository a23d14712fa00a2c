package controllers

import (
	"errors"
	"fmt"

	"school-inventory/models"
	"school-inventory/repositories"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type AssetController struct {
	DB *gorm.DB
}

func NewAssetController(DB *gorm.DB) *AssetController {
	return &AssetController{DB: DB}
}

type assetInput struct {
	Name             string `json:"name" validate:"required,min=2"`
	SKU              string `json:"sku" validate:"required,min=2"`
	CategoryID       uint   `json:"category_id" validate:"required"`
	Description      string `json:"description"`
	UnitPrice        string `json:"unit_price" validate:"required"`
	QuantityOnHand   int    `json:"quantity_on_hand" validate:"min=0"`
	ReorderThreshold int    `json:"reorder_threshold" validate:"min=0"`
	ShelfID          uint   `json:"shelf_id" validate:"required"`
}

func (c *AssetController) CreateAsset(ctx *fiber.Ctx) error {
	userID := int(ctx.Locals("userID").(float64))

	var input assetInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	unitPrice, err := decimal.NewFromString(input.UnitPrice)
	if err != nil || unitPrice.IsNegative() {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid unit price"})
	}

	var category models.Category
	if err := c.DB.First(&category, input.CategoryID).Error; err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Category not found"})
	}

	var shelf models.Shelf
	if err := c.DB.First(&shelf, input.ShelfID).Error; err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Shelf not found"})
	}

	// Duplicate SKU is a rejected input, not a server error. The existing
	// asset stays untouched.
	var existing models.Asset
	if err := c.DB.Where("sku = ?", input.SKU).First(&existing).Error; err == nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("SKU already exists: %s", input.SKU),
		})
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	asset := models.Asset{
		Name:             input.Name,
		SKU:              input.SKU,
		CategoryID:       category.ID,
		Description:      input.Description,
		UnitPrice:        unitPrice,
		QuantityOnHand:   input.QuantityOnHand,
		ReorderThreshold: input.ReorderThreshold,
		ShelfID:          shelf.ID,
		CreatedBy:        userID,
		UpdatedBy:        userID,
	}

	if err := c.DB.Create(&asset).Error; err != nil {
		// The pre-check can lose a race; the unique index is the backstop.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("SKU already exists: %s", input.SKU),
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	asset.LowStock = asset.IsLowStock()
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Asset created successfully",
		"data":    asset,
	})
}

func (c *AssetController) GetAllAssets(ctx *fiber.Ctx) error {
	var assets []models.Asset
	if err := c.DB.Preload("Category").Preload("Shelf").Find(&assets).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"data":    assets,
	})
}

func (c *AssetController) GetAssetByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var asset models.Asset
	if err := c.DB.Preload("Category").Preload("Shelf").First(&asset, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Asset not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"data":    asset,
	})
}

func (c *AssetController) UpdateAsset(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}
	userID := int(ctx.Locals("userID").(float64))

	var asset models.Asset
	if err := c.DB.First(&asset, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Asset not found"})
	}

	var input struct {
		Name             string `json:"name"`
		Description      string `json:"description"`
		UnitPrice        string `json:"unit_price"`
		QuantityOnHand   *int   `json:"quantity_on_hand"`
		ReorderThreshold *int   `json:"reorder_threshold"`
		ShelfID          uint   `json:"shelf_id"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	if input.Name != "" {
		asset.Name = input.Name
	}
	if input.Description != "" {
		asset.Description = input.Description
	}
	if input.UnitPrice != "" {
		unitPrice, err := decimal.NewFromString(input.UnitPrice)
		if err != nil || unitPrice.IsNegative() {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid unit price"})
		}
		asset.UnitPrice = unitPrice
	}
	if input.QuantityOnHand != nil {
		if *input.QuantityOnHand < 0 {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Quantity on hand must not be negative"})
		}
		asset.QuantityOnHand = *input.QuantityOnHand
	}
	if input.ReorderThreshold != nil {
		if *input.ReorderThreshold < 0 {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Reorder threshold must not be negative"})
		}
		asset.ReorderThreshold = *input.ReorderThreshold
	}
	if input.ShelfID != 0 {
		var shelf models.Shelf
		if err := c.DB.First(&shelf, input.ShelfID).Error; err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Shelf not found"})
		}
		asset.ShelfID = shelf.ID
	}
	asset.UpdatedBy = userID

	if err := c.DB.Save(&asset).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	asset.LowStock = asset.IsLowStock()
	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Asset updated successfully",
		"data":    asset,
	})
}

func (c *AssetController) DeleteAsset(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}
	userID := int(ctx.Locals("userID").(float64))

	var asset models.Asset
	if err := c.DB.First(&asset, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Asset not found"})
	}

	assetRepo := repositories.NewAssetRepository(c.DB)
	refs, err := assetRepo.CountReferences(asset.ID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if refs > 0 {
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Asset is still referenced by workflow records and cannot be deleted",
		})
	}

	asset.DeletedBy = userID
	if err := c.DB.Save(&asset).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if err := c.DB.Delete(&asset).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Asset deleted successfully",
	})
}
