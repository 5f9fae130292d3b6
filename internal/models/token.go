package models

import "time"

// BoothToken is a single-use dynamic QR token for a booth. SimpleCode is the
// 6-digit fallback for attendees who cannot scan.
type BoothToken struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	BoothID    string    `gorm:"size:40;not null;index" json:"booth_id"`
	SimpleCode string    `gorm:"size:6;index" json:"simple_code"`
	Redeemed   bool      `gorm:"not null;default:false" json:"redeemed"`
	RedeemedBy string    `gorm:"size:100" json:"redeemed_by,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	ExpiresAt  time.Time `gorm:"index" json:"expires_at"`
}
