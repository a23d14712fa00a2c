package controllers

import (
	"errors"

	"school-inventory/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type LocationController struct {
	DB *gorm.DB
}

func NewLocationController(DB *gorm.DB) *LocationController {
	return &LocationController{DB: DB}
}

// GetHierarchy returns the full branch -> zone -> room -> shelf tree.
func (lc *LocationController) GetHierarchy(ctx *fiber.Ctx) error {
	var branches []models.Branch
	err := lc.DB.Preload("Zones.Rooms.Shelves").Find(&branches).Error
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"data":    branches,
	})
}

type branchInput struct {
	Name string `json:"name" validate:"required,min=2"`
}

func (lc *LocationController) CreateBranch(ctx *fiber.Ctx) error {
	userID := int(ctx.Locals("userID").(float64))

	var input branchInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	branch := models.Branch{Name: input.Name, CreatedBy: userID, UpdatedBy: userID}
	if err := lc.DB.Create(&branch).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Branch created successfully",
		"data":    branch,
	})
}

// DeleteBranch removes a branch and cascades to every zone, room and shelf
// below it. Refused while any asset sits on a shelf in the subtree.
func (lc *LocationController) DeleteBranch(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var branch models.Branch
	if err := lc.DB.First(&branch, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Branch not found"})
	}

	err = lc.DB.Transaction(func(tx *gorm.DB) error {
		zoneSub := tx.Model(&models.Zone{}).Select("zones.id").Where("zones.branch_id = ?", branch.ID)
		roomSub := tx.Model(&models.Room{}).Select("rooms.id").Where("rooms.zone_id IN (?)", zoneSub)
		shelfSub := tx.Model(&models.Shelf{}).Select("shelves.id").Where("shelves.room_id IN (?)", roomSub)

		var assetCount int64
		if err := tx.Model(&models.Asset{}).Where("shelf_id IN (?)", shelfSub).Count(&assetCount).Error; err != nil {
			return err
		}
		if assetCount > 0 {
			return models.ErrStillReferenced
		}

		if err := tx.Where("room_id IN (?)", roomSub).Delete(&models.Shelf{}).Error; err != nil {
			return err
		}
		if err := tx.Where("zone_id IN (?)", zoneSub).Delete(&models.Room{}).Error; err != nil {
			return err
		}
		if err := tx.Where("branch_id = ?", branch.ID).Delete(&models.Zone{}).Error; err != nil {
			return err
		}
		return tx.Delete(&branch).Error
	})
	if err != nil {
		if errors.Is(err, models.ErrStillReferenced) {
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Branch still holds shelves with assets and cannot be deleted",
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Branch deleted successfully",
	})
}

type zoneInput struct {
	BranchID uint   `json:"branch_id" validate:"required"`
	Name     string `json:"name" validate:"required,min=2"`
}

func (lc *LocationController) CreateZone(ctx *fiber.Ctx) error {
	userID := int(ctx.Locals("userID").(float64))

	var input zoneInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var branch models.Branch
	if err := lc.DB.First(&branch, input.BranchID).Error; err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Branch not found"})
	}

	zone := models.Zone{BranchID: branch.ID, Name: input.Name, CreatedBy: userID, UpdatedBy: userID}
	if err := lc.DB.Create(&zone).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Zone created successfully",
		"data":    zone,
	})
}

func (lc *LocationController) DeleteZone(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var zone models.Zone
	if err := lc.DB.First(&zone, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Zone not found"})
	}

	err = lc.DB.Transaction(func(tx *gorm.DB) error {
		roomSub := tx.Model(&models.Room{}).Select("rooms.id").Where("rooms.zone_id = ?", zone.ID)
		shelfSub := tx.Model(&models.Shelf{}).Select("shelves.id").Where("shelves.room_id IN (?)", roomSub)

		var assetCount int64
		if err := tx.Model(&models.Asset{}).Where("shelf_id IN (?)", shelfSub).Count(&assetCount).Error; err != nil {
			return err
		}
		if assetCount > 0 {
			return models.ErrStillReferenced
		}

		if err := tx.Where("room_id IN (?)", roomSub).Delete(&models.Shelf{}).Error; err != nil {
			return err
		}
		if err := tx.Where("zone_id = ?", zone.ID).Delete(&models.Room{}).Error; err != nil {
			return err
		}
		return tx.Delete(&zone).Error
	})
	if err != nil {
		if errors.Is(err, models.ErrStillReferenced) {
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Zone still holds shelves with assets and cannot be deleted",
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Zone deleted successfully",
	})
}

type roomInput struct {
	ZoneID uint   `json:"zone_id" validate:"required"`
	Name   string `json:"name" validate:"required,min=2"`
}

func (lc *LocationController) CreateRoom(ctx *fiber.Ctx) error {
	userID := int(ctx.Locals("userID").(float64))

	var input roomInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var zone models.Zone
	if err := lc.DB.First(&zone, input.ZoneID).Error; err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Zone not found"})
	}

	room := models.Room{ZoneID: zone.ID, Name: input.Name, CreatedBy: userID, UpdatedBy: userID}
	if err := lc.DB.Create(&room).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Room created successfully",
		"data":    room,
	})
}

func (lc *LocationController) DeleteRoom(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var room models.Room
	if err := lc.DB.First(&room, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Room not found"})
	}

	err = lc.DB.Transaction(func(tx *gorm.DB) error {
		shelfSub := tx.Model(&models.Shelf{}).Select("shelves.id").Where("shelves.room_id = ?", room.ID)

		var assetCount int64
		if err := tx.Model(&models.Asset{}).Where("shelf_id IN (?)", shelfSub).Count(&assetCount).Error; err != nil {
			return err
		}
		if assetCount > 0 {
			return models.ErrStillReferenced
		}

		if err := tx.Where("room_id = ?", room.ID).Delete(&models.Shelf{}).Error; err != nil {
			return err
		}
		return tx.Delete(&room).Error
	})
	if err != nil {
		if errors.Is(err, models.ErrStillReferenced) {
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Room still holds shelves with assets and cannot be deleted",
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Room deleted successfully",
	})
}

type shelfInput struct {
	RoomID uint   `json:"room_id" validate:"required"`
	Code   string `json:"code" validate:"required,min=1"`
}

func (lc *LocationController) CreateShelf(ctx *fiber.Ctx) error {
	userID := int(ctx.Locals("userID").(float64))

	var input shelfInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var room models.Room
	if err := lc.DB.First(&room, input.RoomID).Error; err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Room not found"})
	}

	shelf := models.Shelf{RoomID: room.ID, Code: input.Code, CreatedBy: userID, UpdatedBy: userID}
	if err := lc.DB.Create(&shelf).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Shelf created successfully",
		"data":    shelf,
	})
}

// DeleteShelf is refused while an asset still points at the shelf.
func (lc *LocationController) DeleteShelf(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var shelf models.Shelf
	if err := lc.DB.First(&shelf, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Shelf not found"})
	}

	var assetCount int64
	if err := lc.DB.Model(&models.Asset{}).Where("shelf_id = ?", shelf.ID).Count(&assetCount).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if assetCount > 0 {
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Shelf still holds assets and cannot be deleted",
		})
	}

	if err := lc.DB.Delete(&shelf).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Shelf deleted successfully",
	})
}
