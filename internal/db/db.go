package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/bridal-rental/internal/config"
	"github.com/BruksfildServices01/bridal-rental/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Dress{},
		&models.Booking{},
		&models.SystemLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	db.Exec(`
        UPDATE bookings
        SET status = 'active'
        WHERE status IS NULL OR status = ''
    `)

	// Conflict checks only ever read active bookings of one dress.
	db.Exec(`
        CREATE INDEX IF NOT EXISTS idx_bookings_dress_active
        ON bookings (dress_id, booking_date)
        WHERE status = 'active'
    `)

	return db
}
