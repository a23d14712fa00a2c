package controllers

import (
	"fmt"

	"school-inventory/repositories"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

// ExportExcel streams the asset register as an Excel workbook.
func (c *AssetController) ExportExcel(ctx *fiber.Ctx) error {
	assetRepo := repositories.NewAssetRepository(c.DB)
	rows, err := assetRepo.GetRegister()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	f := excelize.NewFile()
	sheet := "Sheet1"

	f.SetCellValue(sheet, "A1", "SKU")
	f.SetCellValue(sheet, "B1", "Name")
	f.SetCellValue(sheet, "C1", "Category")
	f.SetCellValue(sheet, "D1", "Unit Price")
	f.SetCellValue(sheet, "E1", "Qty On Hand")
	f.SetCellValue(sheet, "F1", "Reorder Threshold")
	f.SetCellValue(sheet, "G1", "Branch")
	f.SetCellValue(sheet, "H1", "Zone")
	f.SetCellValue(sheet, "I1", "Room")
	f.SetCellValue(sheet, "J1", "Shelf")

	for i, row := range rows {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", i+2), row.SKU)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", i+2), row.Name)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", i+2), row.CategoryName)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", i+2), row.UnitPrice)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", i+2), row.QuantityOnHand)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", i+2), row.ReorderThreshold)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", i+2), row.BranchName)
		f.SetCellValue(sheet, fmt.Sprintf("H%d", i+2), row.ZoneName)
		f.SetCellValue(sheet, fmt.Sprintf("I%d", i+2), row.RoomName)
		f.SetCellValue(sheet, fmt.Sprintf("J%d", i+2), row.ShelfCode)
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", `attachment; filename="asset_register.xlsx"`)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Send(buf.Bytes())
}
