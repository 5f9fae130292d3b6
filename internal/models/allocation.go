package models

import "time"

// PendingAllocation records "participant scanned a booth, awaiting a
// staff-assigned score".
type PendingAllocation struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	BoothID     string     `gorm:"size:40;not null;index" json:"booth_id"`
	Handle      string     `gorm:"size:100;not null;index" json:"handle"`
	Status      string     `gorm:"size:20;not null;default:'waiting'" json:"status"`
	Points      *int       `json:"points,omitempty"`
	CompletedBy string     `gorm:"size:100" json:"completed_by,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

const (
	AllocationStatusWaiting   = "waiting"
	AllocationStatusCompleted = "completed"
	AllocationStatusCancelled = "cancelled"
)
