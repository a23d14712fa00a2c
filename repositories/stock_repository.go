package repositories

import (
	"errors"
	"fmt"

	"school-inventory/models"

	"gorm.io/gorm"
)

type StockRepository struct {
	db *gorm.DB
}

func NewStockRepository(db *gorm.DB) *StockRepository {
	return &StockRepository{db}
}

// DeductResult reports the outcome of a clamped stock decrement.
type DeductResult struct {
	Asset       models.Asset
	AlertRaised bool
}

// Deduct subtracts qty from the asset's quantity on hand, clamping at zero.
// The decrement is a single compare-and-set statement, so concurrent
// decrements never produce a negative quantity or a lost update. Call it
// inside the workflow's transaction so the stock change commits or rolls
// back together with the workflow record.
//
// When the result leaves the asset below its reorder threshold and no
// unresolved low-stock alert exists for it, one is raised.
func (r *StockRepository) Deduct(tx *gorm.DB, assetID uint, qty int) (DeductResult, error) {
	var result DeductResult

	if qty < 0 {
		return result, errors.New("deduct quantity must not be negative")
	}

	res := tx.Model(&models.Asset{}).Where("id = ?", assetID).
		Update("quantity_on_hand",
			gorm.Expr("CASE WHEN quantity_on_hand >= ? THEN quantity_on_hand - ? ELSE 0 END", qty, qty))
	if res.Error != nil {
		return result, res.Error
	}

	// Existence comes from the re-read, not RowsAffected: MySQL reports 0
	// affected rows for a 0 -> 0 write unless clientFoundRows is set.
	var asset models.Asset
	if err := tx.First(&asset, assetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return result, models.ErrNotFound
		}
		return result, err
	}

	if asset.IsLowStock() {
		raised, err := r.raiseLowStockAlert(tx, asset)
		if err != nil {
			return result, err
		}
		result.AlertRaised = raised
	}

	result.Asset = asset
	return result, nil
}

// raiseLowStockAlert creates a LOW_STOCK alert unless an unresolved one
// already exists for the asset.
func (r *StockRepository) raiseLowStockAlert(tx *gorm.DB, asset models.Asset) (bool, error) {
	var count int64
	err := tx.Model(&models.InventoryAlert{}).
		Where("asset_id = ? AND alert_type = ? AND resolved_at IS NULL", asset.ID, models.AlertLowStock).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	alert := models.InventoryAlert{
		AssetID:   &asset.ID,
		AlertType: models.AlertLowStock,
		Message: fmt.Sprintf("%s (%s) is low on stock: %d on hand, reorder threshold %d",
			asset.Name, asset.SKU, asset.QuantityOnHand, asset.ReorderThreshold),
	}
	if err := tx.Create(&alert).Error; err != nil {
		return false, err
	}
	return true, nil
}
