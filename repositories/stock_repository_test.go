package repositories

import (
	"testing"

	"school-inventory/database"
	"school-inventory/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedStockAsset(t *testing.T, db *gorm.DB, qty, threshold int) models.Asset {
	t.Helper()

	category := models.Category{Name: "Books"}
	require.NoError(t, db.Create(&category).Error)
	branch := models.Branch{Name: "Main"}
	require.NoError(t, db.Create(&branch).Error)
	zone := models.Zone{BranchID: branch.ID, Name: "North"}
	require.NoError(t, db.Create(&zone).Error)
	room := models.Room{ZoneID: zone.ID, Name: "Store"}
	require.NoError(t, db.Create(&room).Error)
	shelf := models.Shelf{RoomID: room.ID, Code: "A1"}
	require.NoError(t, db.Create(&shelf).Error)

	asset := models.Asset{
		Name:             "Notebook",
		SKU:              "NB-1",
		CategoryID:       category.ID,
		UnitPrice:        decimal.NewFromInt(5),
		QuantityOnHand:   qty,
		ReorderThreshold: threshold,
		ShelfID:          shelf.ID,
	}
	require.NoError(t, db.Create(&asset).Error)
	return asset
}

func TestDeductSubtractsQuantity(t *testing.T) {
	db := database.NewTestDB(t)
	asset := seedStockAsset(t, db, 10, 5)
	repo := NewStockRepository(db)

	result, err := repo.Deduct(db, asset.ID, 3)
	require.NoError(t, err)

	assert.Equal(t, 7, result.Asset.QuantityOnHand)
	assert.False(t, result.AlertRaised)
}

func TestDeductClampsAtZero(t *testing.T) {
	db := database.NewTestDB(t)
	asset := seedStockAsset(t, db, 4, 2)
	repo := NewStockRepository(db)

	result, err := repo.Deduct(db, asset.ID, 9)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Asset.QuantityOnHand)
	assert.True(t, result.AlertRaised)
}

func TestDeductBelowThresholdRaisesSingleAlert(t *testing.T) {
	db := database.NewTestDB(t)
	asset := seedStockAsset(t, db, 10, 8)
	repo := NewStockRepository(db)

	result, err := repo.Deduct(db, asset.ID, 3)
	require.NoError(t, err)
	assert.True(t, result.AlertRaised)

	// A second deduction keeps the existing unresolved alert.
	result, err = repo.Deduct(db, asset.ID, 1)
	require.NoError(t, err)
	assert.False(t, result.AlertRaised)

	var count int64
	require.NoError(t, db.Model(&models.InventoryAlert{}).
		Where("asset_id = ? AND alert_type = ?", asset.ID, models.AlertLowStock).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestDeductRaisesNewAlertAfterResolution(t *testing.T) {
	db := database.NewTestDB(t)
	asset := seedStockAsset(t, db, 10, 8)
	repo := NewStockRepository(db)

	_, err := repo.Deduct(db, asset.ID, 3)
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.InventoryAlert{}).
		Where("asset_id = ?", asset.ID).
		Update("resolved_at", gorm.Expr("CURRENT_TIMESTAMP")).Error)

	result, err := repo.Deduct(db, asset.ID, 1)
	require.NoError(t, err)
	assert.True(t, result.AlertRaised)
}

func TestDeductFromEmptyStockSucceeds(t *testing.T) {
	db := database.NewTestDB(t)
	asset := seedStockAsset(t, db, 0, 5)
	repo := NewStockRepository(db)

	// An unchanged 0 -> 0 write is still a successful clamped deduction,
	// never a missing-asset error.
	result, err := repo.Deduct(db, asset.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Asset.QuantityOnHand)
}

func TestDeductUnknownAsset(t *testing.T) {
	db := database.NewTestDB(t)
	repo := NewStockRepository(db)

	_, err := repo.Deduct(db, 9999, 1)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestDeductNegativeQuantity(t *testing.T) {
	db := database.NewTestDB(t)
	asset := seedStockAsset(t, db, 10, 5)
	repo := NewStockRepository(db)

	_, err := repo.Deduct(db, asset.ID, -1)
	assert.Error(t, err)

	var reloaded models.Asset
	require.NoError(t, db.First(&reloaded, asset.ID).Error)
	assert.Equal(t, 10, reloaded.QuantityOnHand)
}
