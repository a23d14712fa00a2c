package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	AlertLowStock  = "LOW_STOCK"
	AlertShrinkage = "SHRINKAGE"
)

// InventoryAlert is a notification, optionally tied to an asset. An alert
// with a NULL resolved_at is unresolved.
type InventoryAlert struct {
	gorm.Model
	AssetID    *uint      `json:"asset_id"`
	Asset      *Asset     `json:"asset,omitempty"`
	AlertType  string     `json:"alert_type"`
	Message    string     `json:"message"`
	ResolvedAt *time.Time `json:"resolved_at"`
}
