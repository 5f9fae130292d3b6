package models

import "time"

// RewardClaim marks a claimed reward tier. The unique index on ParticipantID
// enforces at most one claimed tier per participant.
type RewardClaim struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ParticipantID uint      `gorm:"not null;uniqueIndex" json:"participant_id"`
	TierID        int       `gorm:"not null" json:"tier_id"`
	ClaimedBy     string    `gorm:"size:100" json:"claimed_by"`
	ClaimedAt     time.Time `json:"claimed_at"`
}
