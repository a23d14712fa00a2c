package repositories

import (
	"school-inventory/models"

	"gorm.io/gorm"
)

type DashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) *DashboardRepository {
	return &DashboardRepository{db}
}

// UnresolvedAlerts returns the newest unresolved alerts, capped at limit.
func (r *DashboardRepository) UnresolvedAlerts(limit int) ([]models.InventoryAlert, error) {
	var alerts []models.InventoryAlert
	err := r.db.Preload("Asset").
		Where("resolved_at IS NULL").
		Order("created_at desc").
		Limit(limit).
		Find(&alerts).Error
	if err != nil {
		return nil, err
	}
	return alerts, nil
}

// LowStockAssets returns assets currently below their reorder threshold,
// lowest stock first, capped at limit.
func (r *DashboardRepository) LowStockAssets(limit int) ([]models.Asset, error) {
	var assets []models.Asset
	err := r.db.Where("quantity_on_hand < reorder_threshold").
		Order("quantity_on_hand asc").
		Limit(limit).
		Find(&assets).Error
	if err != nil {
		return nil, err
	}
	return assets, nil
}
