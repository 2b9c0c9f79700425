package models

import "time"

type Item struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	Available   *bool     `gorm:"not null" json:"available"`
	OwnerID     uint      `gorm:"not null;index" json:"owner_id"`
	RequestID   *uint     `json:"request_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// IsAvailable treats an unset flag as unavailable.
func (i *Item) IsAvailable() bool {
	return i.Available != nil && *i.Available
}
