package models

import "time"

// ItemRequest is a wish for an item that is not in the catalog yet.
// Items created in response carry the request id.
type ItemRequest struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Description string    `gorm:"not null" json:"description"`
	RequesterID uint      `gorm:"not null;index" json:"requester_id"`
	Created     time.Time `gorm:"not null" json:"created"`
}
