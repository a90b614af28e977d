// File: /models/message.go
package models

import (
	"time"
)

// Message delivery statuses
const (
	MessageStatusSent      = "sent"
	MessageStatusDelivered = "delivered"
	MessageStatusFailed    = "failed"
)

// Message is an owner-contact inquiry about a listing. Immutable once created.
type Message struct {
	ID       string  `json:"id" gorm:"primaryKey;size:191"`
	BoatID   string  `json:"boat_id" gorm:"not null;index;size:191"`
	OwnerID  string  `json:"owner_id" gorm:"not null;index;size:191"`
	SenderID *string `json:"sender_id" gorm:"size:191"` // set when the sender was authenticated

	Name  string `json:"name" gorm:"not null;size:255"`
	Email string `json:"email" gorm:"not null;size:255"`
	Body  string `json:"body" gorm:"not null;type:text"`

	Status string `json:"status" gorm:"default:'sent';size:20"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
