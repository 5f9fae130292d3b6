package services

import (
	"errors"
	"fmt"
	"time"

	"booth-rally-backend/internal/catalog"
	"booth-rally-backend/internal/models"

	"gorm.io/gorm"
)

type AllocationService struct {
	db   *gorm.DB
	game *GameService
}

func NewAllocationService(db *gorm.DB, game *GameService) *AllocationService {
	return &AllocationService{db: db, game: game}
}

func (s *AllocationService) ListWaiting(boothID string) ([]models.PendingAllocation, error) {
	if _, ok := catalog.BoothByID(boothID); !ok {
		return nil, notFoundErr("unknown booth")
	}
	var allocs []models.PendingAllocation
	if err := s.db.Where("booth_id = ? AND status = ?", boothID, models.AllocationStatusWaiting).
		Order("created_at ASC").
		Find(&allocs).Error; err != nil {
		return nil, fmt.Errorf("listing allocations: %w", err)
	}
	return allocs, nil
}

// Complete awards points for a waiting allocation. The score lands on the
// booth's first unscored minigame; the booth-score upsert, the total
// recompute and the status flip happen in one transaction, and the flip
// requires the row to still be waiting so concurrent staff cannot both
// complete it.
func (s *AllocationService) Complete(allocationID uint, points int, staff string) (*models.PendingAllocation, *models.Participant, error) {
	if err := s.game.requireActive(); err != nil {
		return nil, nil, err
	}

	var alloc models.PendingAllocation
	if err := s.db.First(&alloc, allocationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, notFoundErr("allocation not found")
		}
		return nil, nil, fmt.Errorf("loading allocation: %w", err)
	}
	if alloc.Status != models.AllocationStatusWaiting {
		return nil, nil, conflictErr("allocation is no longer waiting")
	}

	booth, ok := catalog.BoothByID(alloc.BoothID)
	if !ok {
		return nil, nil, notFoundErr("unknown booth")
	}

	var participant models.Participant
	if err := s.db.Where("handle = ?", alloc.Handle).First(&participant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, notFoundErr("participant not found")
		}
		return nil, nil, fmt.Errorf("loading participant: %w", err)
	}

	minigame, err := s.nextUnscored(participant.ID, booth)
	if err != nil {
		return nil, nil, err
	}
	if points < 1 || points > minigame.MaxScore {
		return nil, nil, validationErr(fmt.Sprintf("points must be between 1 and %d", minigame.MaxScore))
	}

	now := time.Now()
	err = s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.PendingAllocation{}).
			Where("id = ? AND status = ?", alloc.ID, models.AllocationStatusWaiting).
			Updates(map[string]interface{}{
				"status":       models.AllocationStatusCompleted,
				"points":       points,
				"completed_by": staff,
				"completed_at": now,
			})
		if res.Error != nil {
			return fmt.Errorf("completing allocation: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return conflictErr("allocation is no longer waiting")
		}

		if err := applyScore(tx, &participant, booth.ID, minigame.ID, points, staff, now); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	alloc.Status = models.AllocationStatusCompleted
	alloc.Points = &points
	alloc.CompletedBy = staff
	alloc.CompletedAt = &now
	return &alloc, &participant, nil
}

// Cancel drops a waiting allocation without awarding anything.
func (s *AllocationService) Cancel(allocationID uint, staff string) (*models.PendingAllocation, error) {
	var alloc models.PendingAllocation
	if err := s.db.First(&alloc, allocationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErr("allocation not found")
		}
		return nil, fmt.Errorf("loading allocation: %w", err)
	}

	now := time.Now()
	res := s.db.Model(&models.PendingAllocation{}).
		Where("id = ? AND status = ?", alloc.ID, models.AllocationStatusWaiting).
		Updates(map[string]interface{}{
			"status":       models.AllocationStatusCancelled,
			"completed_by": staff,
			"completed_at": now,
		})
	if res.Error != nil {
		return nil, fmt.Errorf("cancelling allocation: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, conflictErr("allocation is no longer waiting")
	}

	alloc.Status = models.AllocationStatusCancelled
	alloc.CompletedBy = staff
	alloc.CompletedAt = &now
	return &alloc, nil
}

// SetScore is the admin direct edit: it writes a specific minigame score with
// the same bounds and total-recompute rules, no allocation involved.
func (s *AllocationService) SetScore(handle, boothID, minigameID string, points int, staff string) (*models.Participant, error) {
	minigame, ok := catalog.MinigameByID(boothID, minigameID)
	if !ok {
		return nil, notFoundErr("unknown booth or minigame")
	}
	if points < 1 || points > minigame.MaxScore {
		return nil, validationErr(fmt.Sprintf("points must be between 1 and %d", minigame.MaxScore))
	}

	var participant models.Participant
	if err := s.db.Where("handle = ?", handle).First(&participant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErr("participant not found")
		}
		return nil, fmt.Errorf("loading participant: %w", err)
	}

	now := time.Now()
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return applyScore(tx, &participant, boothID, minigameID, points, staff, now)
	})
	if err != nil {
		return nil, err
	}
	return &participant, nil
}

// nextUnscored returns the booth's first minigame without a positive score.
func (s *AllocationService) nextUnscored(participantID uint, booth catalog.Booth) (catalog.Minigame, error) {
	for _, m := range booth.Minigames {
		var count int64
		err := s.db.Model(&models.BoothScore{}).
			Where("participant_id = ? AND minigame_id = ? AND points > 0", participantID, m.ID).
			Count(&count).Error
		if err != nil {
			return catalog.Minigame{}, fmt.Errorf("checking minigame score: %w", err)
		}
		if count == 0 {
			return m, nil
		}
	}
	return catalog.Minigame{}, preconditionErr("booth already completed")
}

// applyScore upserts one booth-score row and recomputes the participant's
// total as the sum across all rows. Runs inside the caller's transaction;
// on success the in-memory participant carries the new total.
func applyScore(tx *gorm.DB, participant *models.Participant, boothID, minigameID string, points int, staff string, now time.Time) error {
	var score models.BoothScore
	err := tx.Where("participant_id = ? AND minigame_id = ?", participant.ID, minigameID).
		First(&score).Error
	switch {
	case err == nil:
		score.Points = points
		score.AwardedBy = staff
		score.AwardedAt = now
		if err := tx.Save(&score).Error; err != nil {
			return fmt.Errorf("updating booth score: %w", err)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		score = models.BoothScore{
			ParticipantID: participant.ID,
			BoothID:       boothID,
			MinigameID:    minigameID,
			Points:        points,
			AwardedBy:     staff,
			AwardedAt:     now,
		}
		if err := tx.Create(&score).Error; err != nil {
			return fmt.Errorf("creating booth score: %w", err)
		}
	default:
		return fmt.Errorf("loading booth score: %w", err)
	}

	var total int64
	err = tx.Model(&models.BoothScore{}).
		Where("participant_id = ?", participant.ID).
		Select("COALESCE(SUM(points), 0)").
		Scan(&total).Error
	if err != nil {
		return fmt.Errorf("summing scores: %w", err)
	}

	if err := tx.Model(&models.Participant{}).
		Where("id = ?", participant.ID).
		Update("total_score", total).Error; err != nil {
		return fmt.Errorf("updating total score: %w", err)
	}
	participant.TotalScore = int(total)
	return nil
}
