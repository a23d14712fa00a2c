package controllers

import (
	"errors"
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

type IssueController struct {
	DB *gorm.DB
}

func NewIssueController(DB *gorm.DB) *IssueController {
	return &IssueController{DB: DB}
}

// GetQueue lists the acting user's outgoing requests and incoming pending
// requests.
func (c *IssueController) GetQueue(ctx *fiber.Ctx) error {
	userID := uint(ctx.Locals("userID").(float64))

	var outgoing []models.IssueRequest
	err := c.DB.Preload("Asset").Preload("Receiver").
		Where("sender_id = ?", userID).
		Order("requested_at desc").
		Find(&outgoing).Error
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var incoming []models.IssueRequest
	err = c.DB.Preload("Asset").Preload("Sender").
		Where("receiver_id = ? AND status = ?", userID, models.IssueStatusPending).
		Order("requested_at desc").
		Find(&incoming).Error
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"outgoing": outgoing,
			"incoming": incoming,
		},
	})
}

type issueInput struct {
	AssetID    uint `json:"asset_id" validate:"required"`
	Quantity   int  `json:"quantity" validate:"required,min=1"`
	ReceiverID uint `json:"receiver_id" validate:"required"`
}

// CreateIssue opens a PENDING request. Stock does not move until the
// receiver accepts.
func (c *IssueController) CreateIssue(ctx *fiber.Ctx) error {
	userID := uint(ctx.Locals("userID").(float64))

	var input issueInput
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

	var receiver models.User
	if err := c.DB.First(&receiver, input.ReceiverID).Error; err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Receiver not found"})
	}

	issue := models.IssueRequest{
		RefNo:       fmt.Sprintf("IR-%d", idgen.GenerateID()),
		AssetID:     asset.ID,
		Quantity:    input.Quantity,
		SenderID:    userID,
		ReceiverID:  receiver.ID,
		Status:      models.IssueStatusPending,
		RequestedAt: time.Now(),
	}

	if err := c.DB.Create(&issue).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Issue request created",
		"data":    issue,
	})
}

// AcceptIssue moves a pending request to ACCEPTED and deducts the asset's
// stock, clamped at zero. Only the designated receiver may accept; a request
// that is already processed is reported back without any mutation.
func (c *IssueController) AcceptIssue(ctx *fiber.Ctx) error {
	userID := uint(ctx.Locals("userID").(float64))

	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var issue models.IssueRequest
	if err := c.DB.Where("id = ? AND receiver_id = ?", id, userID).First(&issue).Error; err != nil {
		// Requests addressed to someone else look like they do not exist.
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Issue request not found"})
	}

	if issue.Status != models.IssueStatusPending {
		return ctx.JSON(fiber.Map{
			"success": true,
			"message": "Issue already processed",
			"data":    issue,
		})
	}

	var deducted repositories.DeductResult
	stockRepo := repositories.NewStockRepository(c.DB)

	err = c.DB.Transaction(func(tx *gorm.DB) error {
		now := time.Now()

		// Status guard: only one accept can flip PENDING to ACCEPTED, so a
		// concurrent second accept becomes a no-op.
		res := tx.Model(&models.IssueRequest{}).
			Where("id = ? AND status = ?", issue.ID, models.IssueStatusPending).
			Updates(map[string]interface{}{
				"status":      models.IssueStatusAccepted,
				"accepted_at": &now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return models.ErrAlreadyProcessed
		}

		deducted, err = stockRepo.Deduct(tx, issue.AssetID, issue.Quantity)
		return err
	})
	if err != nil {
		if errors.Is(err, models.ErrAlreadyProcessed) {
			return ctx.JSON(fiber.Map{
				"success": true,
				"message": "Issue already processed",
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if deducted.AlertRaised {
		utils.SendLowStockMail(deducted.Asset)
	}

	if err := c.DB.First(&issue, issue.ID).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Issue accepted and inventory updated",
		"data": fiber.Map{
			"issue": issue,
			"asset": deducted.Asset,
		},
	})
}

// RejectIssue moves a pending request to REJECTED. Stock never moves on
// rejection.
func (c *IssueController) RejectIssue(ctx *fiber.Ctx) error {
	userID := uint(ctx.Locals("userID").(float64))

	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var issue models.IssueRequest
	if err := c.DB.Where("id = ? AND receiver_id = ?", id, userID).First(&issue).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Issue request not found"})
	}

	if issue.Status != models.IssueStatusPending {
		return ctx.JSON(fiber.Map{
			"success": true,
			"message": "Issue already processed",
			"data":    issue,
		})
	}

	res := c.DB.Model(&models.IssueRequest{}).
		Where("id = ? AND status = ?", issue.ID, models.IssueStatusPending).
		Update("status", models.IssueStatusRejected)
	if res.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": res.Error.Error()})
	}
	if res.RowsAffected == 0 {
		return ctx.JSON(fiber.Map{
			"success": true,
			"message": "Issue already processed",
		})
	}

	if err := c.DB.First(&issue, issue.ID).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Issue rejected",
		"data":    issue,
	})
}
