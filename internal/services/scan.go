package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"booth-rally-backend/internal/catalog"
	"booth-rally-backend/internal/models"

	"gorm.io/gorm"
)

// ScanPayload is the JSON embedded in a static booth QR code.
type ScanPayload struct {
	Type    string `json:"type"`
	BoothID string `json:"boothId"`
	Version int    `json:"version"`
}

const (
	scanPayloadType    = "booth"
	scanPayloadVersion = 1
)

type ScanService struct {
	db   *gorm.DB
	game *GameService
}

func NewScanService(db *gorm.DB, game *GameService) *ScanService {
	return &ScanService{db: db, game: game}
}

// Scan decodes a static booth QR payload and queues a pending allocation.
func (s *ScanService) Scan(handle, rawPayload string) (*models.PendingAllocation, bool, error) {
	var payload ScanPayload
	if err := json.Unmarshal([]byte(rawPayload), &payload); err != nil {
		return nil, false, validationErr("unrecognized qr payload")
	}
	if payload.Type != scanPayloadType || payload.Version != scanPayloadVersion {
		return nil, false, validationErr("unrecognized qr payload")
	}
	return s.ScanBooth(handle, payload.BoothID)
}

// ScanBooth applies the scan rules for a booth id that has already been
// decoded (static payload, dynamic token or simple code all end up here).
// The bool reports whether a new allocation was created: a re-scan while a
// waiting allocation exists returns that allocation instead of a duplicate.
func (s *ScanService) ScanBooth(handle, boothID string) (*models.PendingAllocation, bool, error) {
	return s.scanBooth(s.db, handle, boothID)
}

// scanBooth runs against the given db so token redemption can include the
// allocation create in its own transaction.
func (s *ScanService) scanBooth(db *gorm.DB, handle, boothID string) (*models.PendingAllocation, bool, error) {
	if err := s.game.requireActive(); err != nil {
		return nil, false, err
	}

	booth, ok := catalog.BoothByID(boothID)
	if !ok {
		return nil, false, notFoundErr("unknown booth")
	}

	var participant models.Participant
	if err := db.Where("handle = ?", handle).First(&participant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, notFoundErr("participant not found")
		}
		return nil, false, fmt.Errorf("looking up participant: %w", err)
	}

	done, err := boothCompleted(db, participant.ID, booth)
	if err != nil {
		return nil, false, err
	}
	if done {
		return nil, false, preconditionErr("booth already completed")
	}

	var existing models.PendingAllocation
	err = db.Where("handle = ? AND booth_id = ? AND status = ?",
		handle, boothID, models.AllocationStatusWaiting).
		First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("looking up pending allocation: %w", err)
	}

	alloc := models.PendingAllocation{
		BoothID: boothID,
		Handle:  handle,
		Status:  models.AllocationStatusWaiting,
	}
	if err := db.Create(&alloc).Error; err != nil {
		return nil, false, fmt.Errorf("creating pending allocation: %w", err)
	}
	return &alloc, true, nil
}

// boothCompleted reports whether every minigame of the booth already has a
// positive score for the participant.
func boothCompleted(db *gorm.DB, participantID uint, booth catalog.Booth) (bool, error) {
	for _, m := range booth.Minigames {
		var count int64
		err := db.Model(&models.BoothScore{}).
			Where("participant_id = ? AND minigame_id = ? AND points > 0", participantID, m.ID).
			Count(&count).Error
		if err != nil {
			return false, fmt.Errorf("checking booth completion: %w", err)
		}
		if count == 0 {
			return false, nil
		}
	}
	return true, nil
}
