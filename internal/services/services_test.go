package services

import (
	"testing"

	"booth-rally-backend/internal/database"
	"booth-rally-backend/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}

	err = db.AutoMigrate(
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
		t.Fatalf("migrating test db: %v", err)
	}
	if err := database.SeedSingletons(db); err != nil {
		t.Fatalf("seeding singletons: %v", err)
	}
	return db
}

// createParticipant inserts a participant directly, bypassing login.
func createParticipant(t *testing.T, db *gorm.DB, handle string, totalScore int) *models.Participant {
	t.Helper()
	p := models.Participant{Handle: handle, AccountID: "12345678", TotalScore: totalScore}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("creating participant %s: %v", handle, err)
	}
	return &p
}

// awardScore inserts one booth-score row and bumps the stored total, keeping
// the invariant intact for test fixtures.
func awardScore(t *testing.T, db *gorm.DB, p *models.Participant, boothID, minigameID string, points int) {
	t.Helper()
	score := models.BoothScore{
		ParticipantID: p.ID,
		BoothID:       boothID,
		MinigameID:    minigameID,
		Points:        points,
	}
	if err := db.Create(&score).Error; err != nil {
		t.Fatalf("creating booth score: %v", err)
	}
	p.TotalScore += points
	if err := db.Model(&models.Participant{}).Where("id = ?", p.ID).
		Update("total_score", p.TotalScore).Error; err != nil {
		t.Fatalf("updating total: %v", err)
	}
}

func endGame(t *testing.T, db *gorm.DB) {
	t.Helper()
	if err := db.Model(&models.GameState{}).Where("id = ?", models.GameStateID).
		Update("status", models.GameStatusEnded).Error; err != nil {
		t.Fatalf("ending game: %v", err)
	}
}

// checkTotalInvariant asserts total_score == sum(points) for a participant.
func checkTotalInvariant(t *testing.T, db *gorm.DB, participantID uint) {
	t.Helper()
	var p models.Participant
	if err := db.First(&p, participantID).Error; err != nil {
		t.Fatalf("loading participant: %v", err)
	}
	var sum int64
	if err := db.Model(&models.BoothScore{}).
		Where("participant_id = ?", participantID).
		Select("COALESCE(SUM(points), 0)").
		Scan(&sum).Error; err != nil {
		t.Fatalf("summing scores: %v", err)
	}
	if int64(p.TotalScore) != sum {
		t.Errorf("total invariant broken: total_score=%d sum=%d", p.TotalScore, sum)
	}
}
