package models

import "time"

type Comment struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	ItemID   uint      `gorm:"not null;index" json:"item_id"`
	AuthorID uint      `gorm:"not null" json:"author_id"`
	Text     string    `gorm:"not null" json:"text"`
	Created  time.Time `gorm:"not null" json:"created"`
}
