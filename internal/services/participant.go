package services

import (
	"errors"
	"fmt"

	"booth-rally-backend/internal/catalog"
	"booth-rally-backend/internal/models"

	"gorm.io/gorm"
)

type ParticipantService struct {
	db *gorm.DB
}

func NewParticipantService(db *gorm.DB) *ParticipantService {
	return &ParticipantService{db: db}
}

type BoothProgress struct {
	BoothID   string `json:"booth_id"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
	Points    int    `json:"points"`
}

type Profile struct {
	Handle       string              `json:"handle"`
	TotalScore   int                 `json:"total_score"`
	Scores       []models.BoothScore `json:"scores"`
	Booths       []BoothProgress     `json:"booths"`
	ClaimedTier  int                 `json:"claimed_tier,omitempty"`
	CompletedSet bool                `json:"completed_set"`
}

type LeaderboardEntry struct {
	Position   int    `json:"position"`
	Handle     string `json:"handle"`
	TotalScore int    `json:"total_score"`
}

func (s *ParticipantService) Profile(handle string) (*Profile, error) {
	var participant models.Participant
	err := s.db.Where("handle = ?", handle).
		Preload("Scores").
		Preload("Claims").
		First(&participant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErr("participant not found")
		}
		return nil, fmt.Errorf("loading participant: %w", err)
	}

	scored := make(map[string]int, len(participant.Scores))
	completed := 0
	for _, sc := range participant.Scores {
		scored[sc.MinigameID] = sc.Points
		if sc.Points > 0 {
			completed++
		}
	}

	profile := &Profile{
		Handle:       participant.Handle,
		TotalScore:   participant.TotalScore,
		Scores:       participant.Scores,
		CompletedSet: completed == catalog.TotalMinigames(),
	}
	if len(participant.Claims) > 0 {
		profile.ClaimedTier = participant.Claims[0].TierID
	}

	for _, b := range catalog.Booths() {
		progress := BoothProgress{BoothID: b.ID, Name: b.Name, Completed: true}
		for _, m := range b.Minigames {
			points, ok := scored[m.ID]
			progress.Points += points
			if !ok || points <= 0 {
				progress.Completed = false
			}
		}
		profile.Booths = append(profile.Booths, progress)
	}
	return profile, nil
}

// Leaderboard ranks by total score, earlier sign-up breaking ties.
func (s *ParticipantService) Leaderboard() ([]LeaderboardEntry, error) {
	var participants []models.Participant
	if err := s.db.Order("total_score DESC, created_at ASC").Find(&participants).Error; err != nil {
		return nil, fmt.Errorf("loading leaderboard: %w", err)
	}

	entries := make([]LeaderboardEntry, len(participants))
	for i, p := range participants {
		entries[i] = LeaderboardEntry{
			Position:   i + 1,
			Handle:     p.Handle,
			TotalScore: p.TotalScore,
		}
	}
	return entries, nil
}

// Roster lists every participant for the admin dashboard.
func (s *ParticipantService) Roster() ([]models.Participant, error) {
	var participants []models.Participant
	err := s.db.Preload("Scores").
		Preload("Claims").
		Order("total_score DESC, created_at ASC").
		Find(&participants).Error
	if err != nil {
		return nil, fmt.Errorf("loading participants: %w", err)
	}
	return participants, nil
}
