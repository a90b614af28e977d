// File: /models/review.go
package models

import (
	"time"
)

type Review struct {
	ID      string `json:"id" gorm:"primaryKey;size:191"`
	BoatID  string `json:"boat_id" gorm:"not null;index:idx_reviews_boat_created;size:191"`
	UserID  string `json:"user_id" gorm:"not null;index;size:191"`
	Rating  int    `json:"rating" gorm:"not null"`
	Comment string `json:"comment" gorm:"size:2000"`

	CreatedAt time.Time `json:"created_at" gorm:"index:idx_reviews_boat_created"`
	UpdatedAt time.Time `json:"updated_at"`
}
