package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"school-inventory/database"
	"school-inventory/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestApp builds a fiber app whose requests run as the given user,
// bypassing the JWT middleware.
func newTestApp(userID uint) *fiber.App {
	app := fiber.New()
	app.Use(func(ctx *fiber.Ctx) error {
		ctx.Locals("userID", float64(userID))
		return ctx.Next()
	})
	return app
}

func seedUser(t *testing.T, db *gorm.DB, username, role string) models.User {
	t.Helper()
	user := models.User{
		Username: username,
		Password: "x",
		Name:     username,
		Email:    username + "@school.test",
		Role:     role,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedShelf(t *testing.T, db *gorm.DB) models.Shelf {
	t.Helper()
	branch := models.Branch{Name: "Main Campus"}
	require.NoError(t, db.Create(&branch).Error)
	zone := models.Zone{BranchID: branch.ID, Name: "North Wing"}
	require.NoError(t, db.Create(&zone).Error)
	room := models.Room{ZoneID: zone.ID, Name: "Store Room"}
	require.NoError(t, db.Create(&room).Error)
	shelf := models.Shelf{RoomID: room.ID, Code: "A1"}
	require.NoError(t, db.Create(&shelf).Error)
	return shelf
}

func seedAsset(t *testing.T, db *gorm.DB, sku string, qty, threshold int) models.Asset {
	t.Helper()
	category := models.Category{Name: "Category " + sku}
	require.NoError(t, db.Create(&category).Error)
	shelf := seedShelf(t, db)
	asset := models.Asset{
		Name:             "Asset " + sku,
		SKU:              sku,
		CategoryID:       category.ID,
		UnitPrice:        decimal.NewFromInt(10),
		QuantityOnHand:   qty,
		ReorderThreshold: threshold,
		ShelfID:          shelf.ID,
	}
	require.NoError(t, db.Create(&asset).Error)
	return asset
}

func doJSON(t *testing.T, app *fiber.App, method, path string, payload interface{}) (int, map[string]interface{}) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed map[string]interface{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &parsed), "body: %s", raw)
	}
	return resp.StatusCode, parsed
}

func reloadAsset(t *testing.T, db *gorm.DB, id uint) models.Asset {
	t.Helper()
	var asset models.Asset
	require.NoError(t, db.First(&asset, id).Error)
	return asset
}

func newIssueTestEnv(t *testing.T) (*gorm.DB, models.User, models.User, models.Asset) {
	t.Helper()
	db := database.NewTestDB(t)
	sender := seedUser(t, db, "storekeeper1", models.RoleStorekeeper)
	receiver := seedUser(t, db, "teacher1", models.RoleTeacher)
	asset := seedAsset(t, db, fmt.Sprintf("BOOK-%d", receiver.ID), 10, 5)
	return db, sender, receiver, asset
}
