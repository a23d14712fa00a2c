package models

import "gorm.io/gorm"

// Transformation records the consumption of a raw-material asset to produce
// a finished good. The finished good itself is not inventoried.
type Transformation struct {
	gorm.Model
	RefNo                string `json:"ref_no" gorm:"unique"`
	RawMaterialID        uint   `json:"raw_material_id"`
	RawMaterial          Asset  `json:"raw_material,omitempty" gorm:"foreignKey:RawMaterialID;constraint:OnDelete:RESTRICT;"`
	FinishedGoodName     string `json:"finished_good_name"`
	FinishedGoodQuantity int    `json:"finished_good_quantity"`
	ConsumedQuantity     int    `json:"consumed_quantity"`
	CreatedByID          *uint  `json:"created_by_id"`
	Photo                string `json:"photo"`
	Notes                string `json:"notes"`
}
