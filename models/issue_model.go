package models

import (
	"time"

	"gorm.io/gorm"
)

// Issue request states. PENDING moves to exactly one of the terminal states
// ACCEPTED or REJECTED; stock only moves on acceptance.
const (
	IssueStatusPending  = "PENDING"
	IssueStatusAccepted = "ACCEPTED"
	IssueStatusRejected = "REJECTED"
)

type IssueRequest struct {
	gorm.Model
	RefNo       string     `json:"ref_no" gorm:"unique"`
	AssetID     uint       `json:"asset_id"`
	Asset       Asset      `json:"asset,omitempty" gorm:"constraint:OnDelete:RESTRICT;"`
	Quantity    int        `json:"quantity"`
	SenderID    uint       `json:"sender_id"`
	Sender      User       `json:"sender,omitempty" gorm:"foreignKey:SenderID"`
	ReceiverID  uint       `json:"receiver_id"`
	Receiver    User       `json:"receiver,omitempty" gorm:"foreignKey:ReceiverID"`
	Status      string     `json:"status" gorm:"default:'PENDING'"`
	RequestedAt time.Time  `json:"requested_at"`
	AcceptedAt  *time.Time `json:"accepted_at"`
}
