package db

import (
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/courtdesk/court-scheduler/internal/config"
	"github.com/courtdesk/court-scheduler/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to get sql.DB")
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate")
	}

	return db
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Tenant{},
		&models.User{},
		&models.Court{},
		&models.Coach{},
		&models.Settings{},
		&models.TimeSlot{},
		&models.Reservation{},
		&models.Clinic{},
		&models.AuditLog{},
	); err != nil {
		return err
	}

	// Tenants migrated from before timezone support default to Eastern.
	return db.Exec(`
        UPDATE tenants
        SET timezone = 'America/New_York'
        WHERE timezone IS NULL OR timezone = ''
    `).Error
}
