package models

import "gorm.io/gorm"

// Storage locations form a strict 4-level hierarchy:
// Branch -> Zone -> Room -> Shelf. The parent reference is assigned at
// creation and immutable, so no cycle is possible.

type Branch struct {
	gorm.Model
	Name      string `json:"name"`
	Zones     []Zone `json:"zones,omitempty" gorm:"constraint:OnDelete:CASCADE;"`
	CreatedBy int    `json:"-"`
	UpdatedBy int    `json:"-"`
}

type Zone struct {
	gorm.Model
	BranchID  uint   `json:"branch_id"`
	Name      string `json:"name"`
	Rooms     []Room `json:"rooms,omitempty" gorm:"constraint:OnDelete:CASCADE;"`
	CreatedBy int    `json:"-"`
	UpdatedBy int    `json:"-"`
}

type Room struct {
	gorm.Model
	ZoneID    uint    `json:"zone_id"`
	Name      string  `json:"name"`
	Shelves   []Shelf `json:"shelves,omitempty" gorm:"constraint:OnDelete:CASCADE;"`
	CreatedBy int     `json:"-"`
	UpdatedBy int     `json:"-"`
}

type Shelf struct {
	gorm.Model
	RoomID    uint   `json:"room_id"`
	Code      string `json:"code"`
	CreatedBy int    `json:"-"`
	UpdatedBy int    `json:"-"`
}
