package models

import "time"

// Base contains common columns for all tables. Deletes are hard deletes;
// removed rows are gone for good.
type Base struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
