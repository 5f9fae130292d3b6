package database

import (
	"fmt"
	"log"
	"time"

	"booth-rally-backend/internal/config"
	"booth-rally-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(cfg *config.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	log.Println("database connected")
	return db
}

func AutoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.Participant{},
		&models.BoothScore{},
		&models.RewardClaim{},
		&models.PendingAllocation{},
		&models.BoothToken{},
		&models.GameState{},
		&models.ResetMarker{},
		&models.LuckyDraw{},
		&models.LuckyWinner{},
	)
	if err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}

	if err := SeedSingletons(db); err != nil {
		log.Fatalf("failed to seed singletons: %v", err)
	}
	log.Println("database migrated")
}

// SeedSingletons creates the game-state and reset-marker rows if absent.
// Existing rows are left untouched so a restart does not end the game or
// invalidate sessions.
func SeedSingletons(db *gorm.DB) error {
	state := models.GameState{ID: models.GameStateID, Status: models.GameStatusActive}
	if err := db.Where("id = ?", models.GameStateID).FirstOrCreate(&state).Error; err != nil {
		return fmt.Errorf("seeding game state: %w", err)
	}

	marker := models.ResetMarker{ID: models.ResetMarkerID, ResetAt: time.Now()}
	if err := db.Where("id = ?", models.ResetMarkerID).FirstOrCreate(&marker).Error; err != nil {
		return fmt.Errorf("seeding reset marker: %w", err)
	}
	return nil
}
