package controllers

import (
	"fmt"
	"testing"

	"school-inventory/database"
	"school-inventory/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCategory(t *testing.T) {
	db := database.NewTestDB(t)
	user := seedUser(t, db, "coordinator1", models.RoleCoordinator)

	app := newTestApp(user.ID)
	controller := NewCategoryController(db)
	app.Post("/categories/", controller.CreateCategory)

	status, body := doJSON(t, app, "POST", "/categories/", map[string]interface{}{
		"name":            "Craft Supplies",
		"is_raw_material": true,
	})
	require.Equal(t, 201, status)

	data := body["data"].(map[string]interface{})
	assert.Equal(t, "Craft Supplies", data["name"])
	assert.Equal(t, true, data["is_raw_material"])
}

func TestDeleteCategoryRefusedWhileReferenced(t *testing.T) {
	db := database.NewTestDB(t)
	user := seedUser(t, db, "coordinator1", models.RoleCoordinator)
	asset := seedAsset(t, db, "BOOK-1", 10, 5)

	app := newTestApp(user.ID)
	controller := NewCategoryController(db)
	app.Delete("/categories/:id", controller.DeleteCategory)

	status, _ := doJSON(t, app, "DELETE", fmt.Sprintf("/categories/%d", asset.CategoryID), nil)
	assert.Equal(t, 409, status)

	var count int64
	require.NoError(t, db.Model(&models.Category{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestDeleteUnreferencedCategory(t *testing.T) {
	db := database.NewTestDB(t)
	user := seedUser(t, db, "coordinator1", models.RoleCoordinator)

	category := models.Category{Name: "Books"}
	require.NoError(t, db.Create(&category).Error)

	app := newTestApp(user.ID)
	controller := NewCategoryController(db)
	app.Delete("/categories/:id", controller.DeleteCategory)

	status, _ := doJSON(t, app, "DELETE", fmt.Sprintf("/categories/%d", category.ID), nil)
	require.Equal(t, 200, status)

	var count int64
	require.NoError(t, db.Model(&models.Category{}).Count(&count).Error)
	assert.Zero(t, count)
}
