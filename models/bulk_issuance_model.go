package models

import (
	"time"

	"gorm.io/gorm"
)

// BulkIssuance is the distribution of one asset to an entire class.
// DamagedQuantity is informational only and never affects stock.
type BulkIssuance struct {
	gorm.Model
	RefNo           string    `json:"ref_no" gorm:"unique"`
	AssetID         uint      `json:"asset_id"`
	Asset           Asset     `json:"asset,omitempty" gorm:"constraint:OnDelete:RESTRICT;"`
	TeacherID       uint      `json:"teacher_id"`
	Teacher         User      `json:"teacher,omitempty" gorm:"foreignKey:TeacherID"`
	ClassName       string    `json:"class_name"`
	IssuedQuantity  int       `json:"issued_quantity"`
	DamagedQuantity int       `json:"damaged_quantity" gorm:"default:0"`
	WastageNotes    string    `json:"wastage_notes"`
	IssuedAt        time.Time `json:"issued_at"`
}
