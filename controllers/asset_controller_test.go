package controllers

import (
	"fmt"
	"testing"

	"school-inventory/database"
	"school-inventory/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAsset(t *testing.T) {
	db := database.NewTestDB(t)
	user := seedUser(t, db, "storekeeper1", models.RoleStorekeeper)

	category := models.Category{Name: "Books"}
	require.NoError(t, db.Create(&category).Error)
	shelf := seedShelf(t, db)

	app := newTestApp(user.ID)
	controller := NewAssetController(db)
	app.Post("/assets/", controller.CreateAsset)

	status, body := doJSON(t, app, "POST", "/assets/", map[string]interface{}{
		"name":              "Maths Textbook",
		"sku":               "BOOK-1",
		"category_id":       category.ID,
		"unit_price":        "12.50",
		"quantity_on_hand":  10,
		"reorder_threshold": 5,
		"shelf_id":          shelf.ID,
	})
	require.Equal(t, 201, status)
	assert.Equal(t, true, body["success"])

	data := body["data"].(map[string]interface{})
	assert.Equal(t, "BOOK-1", data["sku"])
	assert.Equal(t, false, data["is_low_stock"])

	var asset models.Asset
	require.NoError(t, db.First(&asset, "sku = ?", "BOOK-1").Error)
	assert.Equal(t, "12.5", asset.UnitPrice.String())
}

func TestCreateAssetDuplicateSKU(t *testing.T) {
	db := database.NewTestDB(t)
	user := seedUser(t, db, "storekeeper1", models.RoleStorekeeper)
	existing := seedAsset(t, db, "BOOK-1", 10, 5)

	app := newTestApp(user.ID)
	controller := NewAssetController(db)
	app.Post("/assets/", controller.CreateAsset)

	status, body := doJSON(t, app, "POST", "/assets/", map[string]interface{}{
		"name":        "Another Textbook",
		"sku":         "BOOK-1",
		"category_id": existing.CategoryID,
		"unit_price":  "3.00",
		"shelf_id":    existing.ShelfID,
	})
	assert.Equal(t, 400, status)
	assert.Equal(t, "SKU already exists: BOOK-1", body["error"])

	// The existing asset is untouched and still the only one.
	var count int64
	require.NoError(t, db.Model(&models.Asset{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	reloaded := reloadAsset(t, db, existing.ID)
	assert.Equal(t, existing.Name, reloaded.Name)
	assert.Equal(t, 10, reloaded.QuantityOnHand)
}

func TestCreateAssetDuplicateSKUPastPreCheck(t *testing.T) {
	db := database.NewTestDB(t)
	user := seedUser(t, db, "storekeeper1", models.RoleStorekeeper)
	existing := seedAsset(t, db, "BOOK-1", 10, 5)

	// A soft-deleted asset is invisible to the pre-check but still holds the
	// SKU in the unique index, like a create racing past the pre-check.
	require.NoError(t, db.Delete(&existing).Error)

	app := newTestApp(user.ID)
	controller := NewAssetController(db)
	app.Post("/assets/", controller.CreateAsset)

	status, body := doJSON(t, app, "POST", "/assets/", map[string]interface{}{
		"name":        "Another Textbook",
		"sku":         "BOOK-1",
		"category_id": existing.CategoryID,
		"unit_price":  "3.00",
		"shelf_id":    existing.ShelfID,
	})
	assert.Equal(t, 400, status)
	assert.Equal(t, "SKU already exists: BOOK-1", body["error"])
}

func TestCreateAssetRejectsBadPrice(t *testing.T) {
	db := database.NewTestDB(t)
	user := seedUser(t, db, "storekeeper1", models.RoleStorekeeper)

	category := models.Category{Name: "Books"}
	require.NoError(t, db.Create(&category).Error)
	shelf := seedShelf(t, db)

	app := newTestApp(user.ID)
	controller := NewAssetController(db)
	app.Post("/assets/", controller.CreateAsset)

	for _, price := range []string{"abc", "-4.00"} {
		status, body := doJSON(t, app, "POST", "/assets/", map[string]interface{}{
			"name":        "Maths Textbook",
			"sku":         "BOOK-" + price,
			"category_id": category.ID,
			"unit_price":  price,
			"shelf_id":    shelf.ID,
		})
		assert.Equal(t, 400, status)
		assert.Equal(t, "Invalid unit price", body["error"])
	}
}

func TestUpdateAssetPartial(t *testing.T) {
	db := database.NewTestDB(t)
	user := seedUser(t, db, "storekeeper1", models.RoleStorekeeper)
	asset := seedAsset(t, db, "BOOK-1", 10, 5)

	app := newTestApp(user.ID)
	controller := NewAssetController(db)
	app.Put("/assets/:id", controller.UpdateAsset)

	status, _ := doJSON(t, app, "PUT", fmt.Sprintf("/assets/%d", asset.ID), map[string]interface{}{
		"quantity_on_hand": 2,
	})
	require.Equal(t, 200, status)

	reloaded := reloadAsset(t, db, asset.ID)
	assert.Equal(t, 2, reloaded.QuantityOnHand)
	assert.True(t, reloaded.LowStock)
	// Untouched fields keep their values.
	assert.Equal(t, asset.Name, reloaded.Name)
	assert.Equal(t, 5, reloaded.ReorderThreshold)
}

func TestUpdateAssetRejectsNegativeQuantity(t *testing.T) {
	db := database.NewTestDB(t)
	user := seedUser(t, db, "storekeeper1", models.RoleStorekeeper)
	asset := seedAsset(t, db, "BOOK-1", 10, 5)

	app := newTestApp(user.ID)
	controller := NewAssetController(db)
	app.Put("/assets/:id", controller.UpdateAsset)

	status, _ := doJSON(t, app, "PUT", fmt.Sprintf("/assets/%d", asset.ID), map[string]interface{}{
		"quantity_on_hand": -3,
	})
	assert.Equal(t, 400, status)
	assert.Equal(t, 10, reloadAsset(t, db, asset.ID).QuantityOnHand)
}

func TestDeleteAssetRefusedWhileReferenced(t *testing.T) {
	db := database.NewTestDB(t)
	user := seedUser(t, db, "storekeeper1", models.RoleStorekeeper)
	teacher := seedUser(t, db, "teacher1", models.RoleTeacher)
	asset := seedAsset(t, db, "BOOK-1", 10, 5)

	issue := models.IssueRequest{
		RefNo: "IR-1", AssetID: asset.ID, Quantity: 1,
		SenderID: user.ID, ReceiverID: teacher.ID,
		Status: models.IssueStatusPending,
	}
	require.NoError(t, db.Create(&issue).Error)

	app := newTestApp(user.ID)
	controller := NewAssetController(db)
	app.Delete("/assets/:id", controller.DeleteAsset)

	status, _ := doJSON(t, app, "DELETE", fmt.Sprintf("/assets/%d", asset.ID), nil)
	assert.Equal(t, 409, status)

	var count int64
	require.NoError(t, db.Model(&models.Asset{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestDeleteAssetWithoutReferences(t *testing.T) {
	db := database.NewTestDB(t)
	user := seedUser(t, db, "storekeeper1", models.RoleStorekeeper)
	asset := seedAsset(t, db, "BOOK-1", 10, 5)

	app := newTestApp(user.ID)
	controller := NewAssetController(db)
	app.Delete("/assets/:id", controller.DeleteAsset)

	status, _ := doJSON(t, app, "DELETE", fmt.Sprintf("/assets/%d", asset.ID), nil)
	require.Equal(t, 200, status)

	var count int64
	require.NoError(t, db.Model(&models.Asset{}).Count(&count).Error)
	assert.Zero(t, count)
}
