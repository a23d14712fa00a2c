package controllers

import (
	"fmt"
	"testing"

	"school-inventory/database"
	"school-inventory/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardModulesPerRole(t *testing.T) {
	db := database.NewTestDB(t)

	cases := []struct {
		role    string
		modules []interface{}
	}{
		{models.RolePrincipal, []interface{}{"analytics", "approvals", "alerts"}},
		{models.RoleCoordinator, []interface{}{"requests", "approvals", "stock"}},
		{models.RoleStorekeeper, []interface{}{"stock", "issue", "transformation"}},
		{models.RoleTeacher, []interface{}{"issue", "bulk", "accept"}},
	}

	controller := NewDashboardController(db)
	for i, tc := range cases {
		user := seedUser(t, db, fmt.Sprintf("user%d", i), tc.role)

		app := newTestApp(user.ID)
		app.Get("/dashboard/", controller.GetDashboard)

		status, body := doJSON(t, app, "GET", "/dashboard/", nil)
		require.Equal(t, 200, status)

		data := body["data"].(map[string]interface{})
		assert.Equal(t, tc.role, data["role"])
		assert.Equal(t, tc.modules, data["modules"])
	}
}

func TestDashboardUnknownRoleFallsBackToTeacher(t *testing.T) {
	db := database.NewTestDB(t)
	user := seedUser(t, db, "odd", "Janitor")

	app := newTestApp(user.ID)
	controller := NewDashboardController(db)
	app.Get("/dashboard/", controller.GetDashboard)

	status, body := doJSON(t, app, "GET", "/dashboard/", nil)
	require.Equal(t, 200, status)

	data := body["data"].(map[string]interface{})
	assert.Equal(t, models.RoleTeacher, data["role"])
	assert.Equal(t, []interface{}{"issue", "bulk", "accept"}, data["modules"])
}

func TestDashboardPreviewsAreCapped(t *testing.T) {
	db := database.NewTestDB(t)
	user := seedUser(t, db, "principal1", models.RolePrincipal)

	category := models.Category{Name: "Books"}
	require.NoError(t, db.Create(&category).Error)
	shelf := seedShelf(t, db)

	for i := 0; i < 8; i++ {
		asset := models.Asset{
			Name:             fmt.Sprintf("Asset %d", i),
			SKU:              fmt.Sprintf("SKU-%d", i),
			CategoryID:       category.ID,
			ShelfID:          shelf.ID,
			QuantityOnHand:   1,
			ReorderThreshold: 10,
		}
		require.NoError(t, db.Create(&asset).Error)
		alert := models.InventoryAlert{
			AssetID:   &asset.ID,
			AlertType: models.AlertLowStock,
			Message:   "low",
		}
		require.NoError(t, db.Create(&alert).Error)
	}

	app := newTestApp(user.ID)
	controller := NewDashboardController(db)
	app.Get("/dashboard/", controller.GetDashboard)

	status, body := doJSON(t, app, "GET", "/dashboard/", nil)
	require.Equal(t, 200, status)

	data := body["data"].(map[string]interface{})
	assert.Len(t, data["alerts"], 5)
	assert.Len(t, data["low_stock_assets"], 5)

	lowStock := data["low_stock_assets"].([]interface{})
	assert.Equal(t, true, lowStock[0].(map[string]interface{})["is_low_stock"])
}
