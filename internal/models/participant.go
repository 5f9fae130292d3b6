package models

import "time"

type Participant struct {
	ID         uint          `gorm:"primaryKey" json:"id"`
	Handle     string        `gorm:"size:100;uniqueIndex;not null" json:"handle"`
	AccountID  string        `gorm:"size:8;not null" json:"account_id"`
	TotalScore int           `gorm:"not null;default:0" json:"total_score"`
	Scores     []BoothScore  `gorm:"foreignKey:ParticipantID" json:"scores,omitempty"`
	Claims     []RewardClaim `gorm:"foreignKey:ParticipantID" json:"claims,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
}

// BoothScore is one awarded minigame score. TotalScore on the participant is
// kept equal to the sum of these rows on every scoring write.
type BoothScore struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ParticipantID uint      `gorm:"not null;uniqueIndex:idx_participant_minigame" json:"participant_id"`
	BoothID       string    `gorm:"size:40;not null;index" json:"booth_id"`
	MinigameID    string    `gorm:"size:40;not null;uniqueIndex:idx_participant_minigame" json:"minigame_id"`
	Points        int       `gorm:"not null" json:"points"`
	AwardedBy     string    `gorm:"size:100" json:"awarded_by"`
	AwardedAt     time.Time `json:"awarded_at"`
}
