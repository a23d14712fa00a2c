package controllers

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"school-inventory/config"
	"school-inventory/controllers/idgen"
	"school-inventory/models"
	"school-inventory/repositories"
	"school-inventory/utils"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type TransformationController struct {
	DB *gorm.DB
}

func NewTransformationController(DB *gorm.DB) *TransformationController {
	return &TransformationController{DB: DB}
}

func (c *TransformationController) GetAllTransformations(ctx *fiber.Ctx) error {
	var transformations []models.Transformation
	err := c.DB.Preload("RawMaterial").
		Order("created_at desc").
		Find(&transformations).Error
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"data":    transformations,
	})
}

type transformationInput struct {
	RawMaterialID        uint   `json:"raw_material_id" form:"raw_material_id" validate:"required"`
	FinishedGoodName     string `json:"finished_good_name" form:"finished_good_name" validate:"required,min=2"`
	FinishedGoodQuantity int    `json:"finished_good_quantity" form:"finished_good_quantity" validate:"required,min=1"`
	ConsumedQuantity     int    `json:"consumed_quantity" form:"consumed_quantity" validate:"required,min=1"`
	Notes                string `json:"notes" form:"notes"`
}

// CreateTransformation records a raw-material conversion and deducts the
// consumed quantity, clamped at zero. The record and the stock change
// persist together or not at all. The finished good is record-only, never
// inventoried.
func (c *TransformationController) CreateTransformation(ctx *fiber.Ctx) error {
	userID := uint(ctx.Locals("userID").(float64))

	var input transformationInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var rawMaterial models.Asset
	if err := c.DB.First(&rawMaterial, input.RawMaterialID).Error; err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Raw material asset not found"})
	}

	refNo := fmt.Sprintf("TF-%d", idgen.GenerateID())

	// Optional photo upload (multipart).
	photoPath := ""
	if file, err := ctx.FormFile("photo"); err == nil && file != nil {
		photoPath = filepath.Join(config.UploadDir, "transformations",
			refNo+"_"+strconv.FormatInt(file.Size, 10)+filepath.Ext(file.Filename))
		if err := ctx.SaveFile(file, photoPath); err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to store photo"})
		}
	}

	transformation := models.Transformation{
		RefNo:                refNo,
		RawMaterialID:        rawMaterial.ID,
		FinishedGoodName:     input.FinishedGoodName,
		FinishedGoodQuantity: input.FinishedGoodQuantity,
		ConsumedQuantity:     input.ConsumedQuantity,
		CreatedByID:          &userID,
		Photo:                photoPath,
		Notes:                input.Notes,
	}

	var deducted repositories.DeductResult
	stockRepo := repositories.NewStockRepository(c.DB)

	err := c.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&transformation).Error; err != nil {
			return err
		}
		var err error
		deducted, err = stockRepo.Deduct(tx, rawMaterial.ID, input.ConsumedQuantity)
		return err
	})
	if err != nil {
		// The photo was stored before the transaction; do not orphan it.
		if photoPath != "" {
			os.Remove(photoPath)
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if deducted.AlertRaised {
		utils.SendLowStockMail(deducted.Asset)
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Transformation recorded",
		"data": fiber.Map{
			"transformation": transformation,
			"asset":          deducted.Asset,
		},
	})
}
