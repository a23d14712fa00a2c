package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Asset struct {
	gorm.Model
	Name             string          `json:"name"`
	SKU              string          `json:"sku" gorm:"column:sku;unique"`
	CategoryID       uint            `json:"category_id"`
	Category         Category        `json:"category,omitempty" gorm:"constraint:OnDelete:RESTRICT;"`
	Description      string          `json:"description"`
	UnitPrice        decimal.Decimal `json:"unit_price" gorm:"type:decimal(10,2)"`
	QuantityOnHand   int             `json:"quantity_on_hand" gorm:"default:0"`
	ReorderThreshold int             `json:"reorder_threshold" gorm:"default:10"`
	ShelfID          uint            `json:"shelf_id"`
	Shelf            Shelf           `json:"shelf,omitempty" gorm:"constraint:OnDelete:RESTRICT;"`
	LowStock         bool            `json:"is_low_stock" gorm:"-"`
	CreatedBy        int             `json:"-"`
	UpdatedBy        int             `json:"-"`
	DeletedBy        int             `json:"-"`
}

// IsLowStock reports whether the on-hand quantity has fallen strictly below
// the reorder threshold.
func (a *Asset) IsLowStock() bool {
	return a.QuantityOnHand < a.ReorderThreshold
}

// AfterFind fills the derived low-stock flag so reads always carry it.
func (a *Asset) AfterFind(tx *gorm.DB) error {
	a.LowStock = a.IsLowStock()
	return nil
}
