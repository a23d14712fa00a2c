package controllers

import (
	"fmt"
	"time"

	"school-inventory/controllers/idgen"
	"school-inventory/models"
	"school-inventory/repositories"
	"school-inventory/utils"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type BulkIssuanceController struct {
	DB *gorm.DB
}

func NewBulkIssuanceController(DB *gorm.DB) *BulkIssuanceController {
	return &BulkIssuanceController{DB: DB}
}

func (c *BulkIssuanceController) GetAllBulkIssuances(ctx *fiber.Ctx) error {
	var issuances []models.BulkIssuance
	err := c.DB.Preload("Asset").Preload("Teacher").
		Order("issued_at desc").
		Find(&issuances).Error
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"data":    issuances,
	})
}

type bulkIssuanceInput struct {
	AssetID         uint   `json:"asset_id" validate:"required"`
	ClassName       string `json:"class_name" validate:"required,min=1"`
	IssuedQuantity  int    `json:"issued_quantity" validate:"required,min=1"`
	DamagedQuantity int    `json:"damaged_quantity" validate:"min=0"`
	WastageNotes    string `json:"wastage_notes"`
}

// CreateBulkIssuance records an issuance to a class and deducts the issued
// quantity, clamped at zero. DamagedQuantity is recorded but never affects
// stock.
func (c *BulkIssuanceController) CreateBulkIssuance(ctx *fiber.Ctx) error {
	userID := uint(ctx.Locals("userID").(float64))

	var input bulkIssuanceInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var asset models.Asset
	if err := c.DB.First(&asset, input.AssetID).Error; err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Asset not found"})
	}

	issuance := models.BulkIssuance{
		RefNo:           fmt.Sprintf("BI-%d", idgen.GenerateID()),
		AssetID:         asset.ID,
		TeacherID:       userID,
		ClassName:       input.ClassName,
		IssuedQuantity:  input.IssuedQuantity,
		DamagedQuantity: input.DamagedQuantity,
		WastageNotes:    input.WastageNotes,
		IssuedAt:        time.Now(),
	}

	var deducted repositories.DeductResult
	stockRepo := repositories.NewStockRepository(c.DB)

	err := c.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&issuance).Error; err != nil {
			return err
		}
		var err error
		deducted, err = stockRepo.Deduct(tx, asset.ID, input.IssuedQuantity)
		return err
	})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if deducted.AlertRaised {
		utils.SendLowStockMail(deducted.Asset)
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Bulk issuance logged",
		"data": fiber.Map{
			"issuance": issuance,
			"asset":    deducted.Asset,
		},
	})
}
