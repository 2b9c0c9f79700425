package database

import (
	"fmt"

	"gearshare/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Item{},
		&models.ItemRequest{},
		&models.Booking{},
		&models.Comment{},
	); err != nil {
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	// Covers the availability annotator and comment-eligibility lookups.
	db.Exec(`CREATE INDEX IF NOT EXISTS idx_bookings_item_status ON bookings (item_id, status)`)
	// Covers booker-scoped listings in their sort order.
	db.Exec(`CREATE INDEX IF NOT EXISTS idx_bookings_booker_start ON bookings (booker_id, start_date DESC)`)

	return db, nil
}
