package models

import "time"

// LuckyDraw records one end-of-event winner selection together with the
// parameters it ran with. The shuffle is not reproducible; the stored winners
// are the only record.
type LuckyDraw struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	RequestedCount int           `gorm:"not null" json:"requested_count"`
	TopExcluded    int           `gorm:"not null" json:"top_excluded"`
	DrawnBy        string        `gorm:"size:100" json:"drawn_by"`
	DrawnAt        time.Time     `json:"drawn_at"`
	Winners        []LuckyWinner `gorm:"foreignKey:DrawID" json:"winners,omitempty"`
}

type LuckyWinner struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	DrawID   uint   `gorm:"not null;index" json:"draw_id"`
	Handle   string `gorm:"size:100;not null" json:"handle"`
	Position int    `gorm:"not null" json:"position"`
}
