package services

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"booth-rally-backend/internal/catalog"
	"booth-rally-backend/internal/models"

	"gorm.io/gorm"
)

// topScoreExcluded participants already take the podium prizes and sit out
// the draw.
const topScoreExcluded = 5

type LuckyDrawService struct {
	db           *gorm.DB
	blacklist    map[string]bool
	defaultCount int
}

func NewLuckyDrawService(db *gorm.DB, blacklist []string, defaultCount int) *LuckyDrawService {
	bl := make(map[string]bool, len(blacklist))
	for _, h := range blacklist {
		bl[h] = true
	}
	if defaultCount <= 0 {
		defaultCount = 7
	}
	return &LuckyDrawService{db: db, blacklist: bl, defaultCount: defaultCount}
}

// Draw shuffles the eligible pool and persists the selection. Eligible means:
// completed the full minigame set, not in the top-N by score, not
// blacklisted. The shuffle is deliberately unseeded; the stored record is
// the audit trail.
func (s *LuckyDrawService) Draw(count int, staff string) (*models.LuckyDraw, error) {
	if count <= 0 {
		count = s.defaultCount
	}

	var participants []models.Participant
	if err := s.db.Order("total_score DESC, created_at ASC").Find(&participants).Error; err != nil {
		return nil, fmt.Errorf("loading participants: %w", err)
	}

	topHandles := make(map[string]bool, topScoreExcluded)
	for i := 0; i < len(participants) && i < topScoreExcluded; i++ {
		topHandles[participants[i].Handle] = true
	}

	fullSet := catalog.TotalMinigames()
	var pool []string
	for _, p := range participants {
		if topHandles[p.Handle] || s.blacklist[p.Handle] {
			continue
		}
		var completed int64
		err := s.db.Model(&models.BoothScore{}).
			Where("participant_id = ? AND points > 0", p.ID).
			Count(&completed).Error
		if err != nil {
			return nil, fmt.Errorf("counting completed minigames: %w", err)
		}
		if int(completed) == fullSet {
			pool = append(pool, p.Handle)
		}
	}

	rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if len(pool) > count {
		pool = pool[:count]
	}

	draw := models.LuckyDraw{
		RequestedCount: count,
		TopExcluded:    topScoreExcluded,
		DrawnBy:        staff,
		DrawnAt:        time.Now(),
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&draw).Error; err != nil {
			return fmt.Errorf("creating draw: %w", err)
		}
		for i, handle := range pool {
			winner := models.LuckyWinner{
				DrawID:   draw.ID,
				Handle:   handle,
				Position: i + 1,
			}
			if err := tx.Create(&winner).Error; err != nil {
				return fmt.Errorf("creating winner: %w", err)
			}
			draw.Winners = append(draw.Winners, winner)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &draw, nil
}

// Latest returns the most recent draw with its winners.
func (s *LuckyDrawService) Latest() (*models.LuckyDraw, error) {
	var draw models.LuckyDraw
	err := s.db.Preload("Winners", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	}).Order("drawn_at DESC").First(&draw).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErr("no lucky draw has been run")
		}
		return nil, fmt.Errorf("loading draw: %w", err)
	}
	return &draw, nil
}
