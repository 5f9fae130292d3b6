package services

import (
	"errors"
	"fmt"
	"time"

	"booth-rally-backend/internal/catalog"
	"booth-rally-backend/internal/models"

	"gorm.io/gorm"
)

type RewardService struct {
	db *gorm.DB
}

func NewRewardService(db *gorm.DB) *RewardService {
	return &RewardService{db: db}
}

type TierStatus struct {
	TierID       int    `json:"tier_id"`
	Name         string `json:"name"`
	MinCompleted int    `json:"min_completed"`
	MaxCompleted int    `json:"max_completed"`
	Eligible     bool   `json:"eligible"`
	Claimed      bool   `json:"claimed"`
}

type RewardStatus struct {
	Handle             string       `json:"handle"`
	CompletedMinigames int          `json:"completed_minigames"`
	ClaimedTier        int          `json:"claimed_tier,omitempty"`
	Tiers              []TierStatus `json:"tiers"`
}

// Status derives per-tier eligibility: the completed-minigame count must fall
// in the tier's range and no tier may already be claimed.
func (s *RewardService) Status(handle string) (*RewardStatus, error) {
	participant, err := s.findParticipant(handle)
	if err != nil {
		return nil, err
	}

	completed, err := s.completedCount(participant.ID)
	if err != nil {
		return nil, err
	}

	claimedTier := 0
	var claim models.RewardClaim
	err = s.db.Where("participant_id = ?", participant.ID).First(&claim).Error
	switch {
	case err == nil:
		claimedTier = claim.TierID
	case errors.Is(err, gorm.ErrRecordNotFound):
	default:
		return nil, fmt.Errorf("loading reward claim: %w", err)
	}

	status := &RewardStatus{
		Handle:             participant.Handle,
		CompletedMinigames: completed,
		ClaimedTier:        claimedTier,
	}
	for _, t := range catalog.Tiers() {
		inRange := completed >= t.MinCompleted && completed <= t.MaxCompleted
		status.Tiers = append(status.Tiers, TierStatus{
			TierID:       t.ID,
			Name:         t.Name,
			MinCompleted: t.MinCompleted,
			MaxCompleted: t.MaxCompleted,
			Eligible:     inRange && claimedTier == 0,
			Claimed:      claimedTier == t.ID,
		})
	}
	return status, nil
}

// Claim marks a tier as handed out. Claiming atomically replaces any
// previously claimed tier, so at most one claim row ever exists per
// participant.
func (s *RewardService) Claim(handle string, tierID int, staff string) (*RewardStatus, error) {
	participant, err := s.findParticipant(handle)
	if err != nil {
		return nil, err
	}

	tier, ok := catalog.TierByID(tierID)
	if !ok {
		return nil, notFoundErr("unknown reward tier")
	}

	completed, err := s.completedCount(participant.ID)
	if err != nil {
		return nil, err
	}
	if completed < tier.MinCompleted || completed > tier.MaxCompleted {
		return nil, preconditionErr(fmt.Sprintf(
			"participant has %d completed minigames, tier requires %d-%d",
			completed, tier.MinCompleted, tier.MaxCompleted,
		))
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("participant_id = ?", participant.ID).
			Delete(&models.RewardClaim{}).Error; err != nil {
			return fmt.Errorf("clearing previous claim: %w", err)
		}
		claim := models.RewardClaim{
			ParticipantID: participant.ID,
			TierID:        tierID,
			ClaimedBy:     staff,
			ClaimedAt:     time.Now(),
		}
		if err := tx.Create(&claim).Error; err != nil {
			return fmt.Errorf("creating claim: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Status(handle)
}

// Unclaim reverts a claimed tier with no other side effects.
func (s *RewardService) Unclaim(handle string, tierID int) (*RewardStatus, error) {
	participant, err := s.findParticipant(handle)
	if err != nil {
		return nil, err
	}
	if _, ok := catalog.TierByID(tierID); !ok {
		return nil, notFoundErr("unknown reward tier")
	}

	res := s.db.Where("participant_id = ? AND tier_id = ?", participant.ID, tierID).
		Delete(&models.RewardClaim{})
	if res.Error != nil {
		return nil, fmt.Errorf("deleting claim: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, notFoundErr("no claimed reward for this tier")
	}
	return s.Status(handle)
}

func (s *RewardService) findParticipant(handle string) (*models.Participant, error) {
	var participant models.Participant
	if err := s.db.Where("handle = ?", handle).First(&participant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErr("participant not found")
		}
		return nil, fmt.Errorf("loading participant: %w", err)
	}
	return &participant, nil
}

func (s *RewardService) completedCount(participantID uint) (int, error) {
	var count int64
	err := s.db.Model(&models.BoothScore{}).
		Where("participant_id = ? AND points > 0", participantID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("counting completed minigames: %w", err)
	}
	return int(count), nil
}
