package models

import "gorm.io/gorm"

type Category struct {
	gorm.Model
	Name          string `json:"name"`
	IsRawMaterial bool   `json:"is_raw_material" gorm:"default:false"`
	CreatedBy     int    `json:"-"`
	UpdatedBy     int    `json:"-"`
}
