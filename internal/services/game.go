package services

import (
	"errors"
	"fmt"
	"time"

	"booth-rally-backend/internal/models"

	"gorm.io/gorm"
)

// resetBatchSize bounds each delete statement during a full wipe; the wipe
// loops until the table is empty.
const resetBatchSize = 200

type GameService struct {
	db *gorm.DB
}

func NewGameService(db *gorm.DB) *GameService {
	return &GameService{db: db}
}

// GameStateView is the pollable snapshot of the global switches: clients that
// miss the websocket push compare ResetAt against their cached login time.
type GameStateView struct {
	Status    string    `json:"status"`
	UpdatedBy string    `json:"updated_by,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
	ResetAt   time.Time `json:"reset_at"`
}

func (s *GameService) Status() (*models.GameState, error) {
	var state models.GameState
	if err := s.db.First(&state, models.GameStateID).Error; err != nil {
		return nil, fmt.Errorf("loading game state: %w", err)
	}
	return &state, nil
}

func (s *GameService) IsEnded() (bool, error) {
	state, err := s.Status()
	if err != nil {
		return false, err
	}
	return state.Status == models.GameStatusEnded, nil
}

func (s *GameService) SetStatus(status, staff string) (*models.GameState, error) {
	if status != models.GameStatusActive && status != models.GameStatusEnded {
		return nil, validationErr("status must be active or ended")
	}

	state, err := s.Status()
	if err != nil {
		return nil, err
	}
	state.Status = status
	state.UpdatedBy = staff
	if err := s.db.Save(state).Error; err != nil {
		return nil, fmt.Errorf("saving game state: %w", err)
	}
	return state, nil
}

func (s *GameService) Marker() (time.Time, error) {
	var marker models.ResetMarker
	if err := s.db.First(&marker, models.ResetMarkerID).Error; err != nil {
		return time.Time{}, fmt.Errorf("loading reset marker: %w", err)
	}
	return marker.ResetAt, nil
}

func (s *GameService) State() (*GameStateView, error) {
	state, err := s.Status()
	if err != nil {
		return nil, err
	}
	resetAt, err := s.Marker()
	if err != nil {
		return nil, err
	}
	return &GameStateView{
		Status:    state.Status,
		UpdatedBy: state.UpdatedBy,
		UpdatedAt: state.UpdatedAt,
		ResetAt:   resetAt,
	}, nil
}

// ResetAll wipes all event data. The marker is stamped first so the
// invalidation signal is durable even if a later step fails; a crash
// mid-wipe leaves a partially reset store that the next reset finishes.
func (s *GameService) ResetAll(staff string) (*GameStateView, error) {
	marker := models.ResetMarker{ID: models.ResetMarkerID, ResetAt: time.Now()}
	if err := s.db.Save(&marker).Error; err != nil {
		return nil, fmt.Errorf("stamping reset marker: %w", err)
	}

	// Children before parents.
	tables := []string{
		"booth_scores",
		"reward_claims",
		"lucky_winners",
		"lucky_draws",
		"pending_allocations",
		"booth_tokens",
		"participants",
	}
	for _, table := range tables {
		if err := s.wipeTable(table); err != nil {
			return nil, err
		}
	}

	if _, err := s.SetStatus(models.GameStatusActive, staff); err != nil {
		return nil, err
	}
	return s.State()
}

// wipeTable deletes in bounded batches, retrying until the table is empty.
func (s *GameService) wipeTable(table string) error {
	for {
		res := s.db.Exec(fmt.Sprintf(
			"DELETE FROM %s WHERE id IN (SELECT id FROM %s LIMIT %d)",
			table, table, resetBatchSize,
		))
		if res.Error != nil {
			return fmt.Errorf("wiping %s: %w", table, res.Error)
		}
		if res.RowsAffected == 0 {
			return nil
		}
	}
}

// requireActive is the shared guard for scan and allocation paths.
func (s *GameService) requireActive() error {
	ended, err := s.IsEnded()
	if err != nil {
		return err
	}
	if ended {
		return preconditionErr("the game has ended")
	}
	return nil
}

// IsRuleError reports whether err is one of the user-facing rule kinds, as
// opposed to a store failure.
func IsRuleError(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrPrecondition) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrConflict)
}
