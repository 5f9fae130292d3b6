package models

import "time"

// GameState is a singleton row (GameStateID) gating scan and allocation
// operations.
type GameState struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Status    string    `gorm:"size:20;not null;default:'active'" json:"status"`
	UpdatedBy string    `gorm:"size:100" json:"updated_by,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ResetMarker is a singleton row (ResetMarkerID) stamped at the start of every
// full data wipe. Participant sessions issued before it are invalid.
type ResetMarker struct {
	ID      uint      `gorm:"primaryKey" json:"id"`
	ResetAt time.Time `json:"reset_at"`
}

const (
	GameStateID   uint = 1
	ResetMarkerID uint = 1

	GameStatusActive = "active"
	GameStatusEnded  = "ended"
)
