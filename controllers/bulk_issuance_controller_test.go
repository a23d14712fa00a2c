package controllers

import (
	"testing"

	"school-inventory/database"
	"school-inventory/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBulkIssuanceDeductsIssuedQuantityOnly(t *testing.T) {
	db := database.NewTestDB(t)
	teacher := seedUser(t, db, "teacher1", models.RoleTeacher)
	asset := seedAsset(t, db, "PAINT-1", 30, 5)

	app := newTestApp(teacher.ID)
	controller := NewBulkIssuanceController(db)
	app.Post("/bulk-issuance/", controller.CreateBulkIssuance)

	status, body := doJSON(t, app, "POST", "/bulk-issuance/", map[string]interface{}{
		"asset_id":         asset.ID,
		"class_name":       "Grade 5B",
		"issued_quantity":  12,
		"damaged_quantity": 2,
		"wastage_notes":    "two tubes dried out",
	})
	require.Equal(t, 201, status)
	assert.Equal(t, true, body["success"])

	var issuance models.BulkIssuance
	require.NoError(t, db.First(&issuance, "asset_id = ?", asset.ID).Error)
	assert.Equal(t, "Grade 5B", issuance.ClassName)
	assert.Equal(t, 2, issuance.DamagedQuantity)
	assert.Equal(t, teacher.ID, issuance.TeacherID)
	assert.Contains(t, issuance.RefNo, "BI-")

	// Damaged quantity is informational, only the issued quantity moves stock.
	assert.Equal(t, 18, reloadAsset(t, db, asset.ID).QuantityOnHand)
}

func TestCreateBulkIssuanceClampsAtZero(t *testing.T) {
	db := database.NewTestDB(t)
	teacher := seedUser(t, db, "teacher1", models.RoleTeacher)
	asset := seedAsset(t, db, "PAINT-2", 3, 5)

	app := newTestApp(teacher.ID)
	controller := NewBulkIssuanceController(db)
	app.Post("/bulk-issuance/", controller.CreateBulkIssuance)

	status, _ := doJSON(t, app, "POST", "/bulk-issuance/", map[string]interface{}{
		"asset_id":        asset.ID,
		"class_name":      "Grade 5B",
		"issued_quantity": 10,
	})
	require.Equal(t, 201, status)
	assert.Equal(t, 0, reloadAsset(t, db, asset.ID).QuantityOnHand)
}

func TestCreateBulkIssuanceUnknownAsset(t *testing.T) {
	db := database.NewTestDB(t)
	teacher := seedUser(t, db, "teacher1", models.RoleTeacher)

	app := newTestApp(teacher.ID)
	controller := NewBulkIssuanceController(db)
	app.Post("/bulk-issuance/", controller.CreateBulkIssuance)

	status, body := doJSON(t, app, "POST", "/bulk-issuance/", map[string]interface{}{
		"asset_id":        777,
		"class_name":      "Grade 5B",
		"issued_quantity": 1,
	})
	assert.Equal(t, 400, status)
	assert.Equal(t, "Asset not found", body["error"])
}
