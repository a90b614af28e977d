// File: /database/database.go
package database

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"sailshare-api/models"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Warn),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Boat{},
		&models.BoatAuditEntry{},
		&models.Booking{},
		&models.Review{},
		&models.Message{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := addCustomIndexes(db); err != nil {
		return fmt.Errorf("failed to add custom indexes: %w", err)
	}

	return nil
}

func addCustomIndexes(db *gorm.DB) error {
	// Overlap detection scans bookings per boat ordered by range
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_bookings_boat_status ON bookings(boat_id, status)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for bookings status: %v\n", err)
	}

	// Public search filters on review status + active flag
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_boats_status_active ON boats(status, is_active)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for boats visibility: %v\n", err)
	}

	// Admin license queue
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_users_license_status ON users(license_status)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for users license status: %v\n", err)
	}

	return nil
}
