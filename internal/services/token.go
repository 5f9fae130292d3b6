package services

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"booth-rally-backend/internal/catalog"
	"booth-rally-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const tokenTTL = 24 * time.Hour

type TokenService struct {
	db   *gorm.DB
	scan *ScanService

	// BaseURL is embedded in generated QR links as <base>/score/<token id>.
	baseURL string

	sweepInterval time.Duration

	mu     sync.Mutex
	stopCh chan struct{}
}

func NewTokenService(db *gorm.DB, scan *ScanService, baseURL string, sweepInterval time.Duration) *TokenService {
	return &TokenService{
		db:            db,
		scan:          scan,
		baseURL:       baseURL,
		sweepInterval: sweepInterval,
	}
}

// Mint creates a single-use dynamic token for a booth, valid 24 hours, with
// a 6-digit fallback code attendees can type by hand.
func (s *TokenService) Mint(boothID string) (*models.BoothToken, error) {
	if _, ok := catalog.BoothByID(boothID); !ok {
		return nil, notFoundErr("unknown booth")
	}

	code, err := s.generateUniqueCode()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	token := models.BoothToken{
		ID:         uuid.NewString(),
		BoothID:    boothID,
		SimpleCode: code,
		ExpiresAt:  now.Add(tokenTTL),
	}
	if err := s.db.Create(&token).Error; err != nil {
		return nil, fmt.Errorf("creating token: %w", err)
	}
	return &token, nil
}

// Link is the URL embedded in the token's QR image.
func (s *TokenService) Link(token *models.BoothToken) string {
	return s.LinkForID(token.ID)
}

func (s *TokenService) LinkForID(tokenID string) string {
	return s.baseURL + "/score/" + tokenID
}

// Redeem consumes a dynamic token and runs the scan rules for its booth.
// The consume carries a not-yet-redeemed precondition so a token is spent at
// most once even under concurrent redemption.
func (s *TokenService) Redeem(tokenID, handle string) (*models.PendingAllocation, bool, error) {
	var token models.BoothToken
	if err := s.db.First(&token, "id = ?", tokenID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, notFoundErr("invalid or expired token")
		}
		return nil, false, fmt.Errorf("loading token: %w", err)
	}
	return s.redeem(&token, handle)
}

// RedeemCode resolves a 6-digit simple code to its token and redeems it.
func (s *TokenService) RedeemCode(code, handle string) (*models.PendingAllocation, bool, error) {
	var token models.BoothToken
	err := s.db.Where("simple_code = ? AND redeemed = ?", code, false).
		Order("created_at DESC").
		First(&token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, notFoundErr("invalid or expired code")
		}
		return nil, false, fmt.Errorf("loading token: %w", err)
	}
	return s.redeem(&token, handle)
}

// redeem runs the scan rules and the token consume in one transaction, so a
// failed consume never leaves an allocation queued on an unspent token.
func (s *TokenService) redeem(token *models.BoothToken, handle string) (*models.PendingAllocation, bool, error) {
	if token.Redeemed {
		return nil, false, preconditionErr("token already redeemed")
	}
	if time.Now().After(token.ExpiresAt) {
		return nil, false, notFoundErr("invalid or expired token")
	}

	var (
		alloc   *models.PendingAllocation
		created bool
	)
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		alloc, created, err = s.scan.scanBooth(tx, handle, token.BoothID)
		if err != nil {
			return err
		}

		res := tx.Model(&models.BoothToken{}).
			Where("id = ? AND redeemed = ?", token.ID, false).
			Updates(map[string]interface{}{"redeemed": true, "redeemed_by": handle})
		if res.Error != nil {
			return fmt.Errorf("consuming token: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return conflictErr("token already redeemed")
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return alloc, created, nil
}

// CleanupExpired deletes tokens past their expiry.
func (s *TokenService) CleanupExpired() (int64, error) {
	res := s.db.Where("expires_at < ?", time.Now()).Delete(&models.BoothToken{})
	if res.Error != nil {
		return 0, fmt.Errorf("deleting expired tokens: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// StartSweeper runs the periodic expired-token cleanup until StopSweeper.
// Failures are logged and the next tick retries; the sweep is best effort.
func (s *TokenService) StartSweeper() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopCh != nil {
		return
	}
	s.stopCh = make(chan struct{})
	go s.sweepLoop(s.stopCh)
}

func (s *TokenService) StopSweeper() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopCh != nil {
		close(s.stopCh)
		s.stopCh = nil
	}
}

func (s *TokenService) sweepLoop(stopCh chan struct{}) {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			deleted, err := s.CleanupExpired()
			if err != nil {
				log.Printf("token sweep failed: %v", err)
				continue
			}
			if deleted > 0 {
				log.Printf("token sweep removed %d expired tokens", deleted)
			}
		case <-stopCh:
			return
		}
	}
}

// generateUniqueCode mirrors the session-code generator pattern: retry random
// 6-digit codes until one is free among unredeemed tokens.
func (s *TokenService) generateUniqueCode() (string, error) {
	for {
		code := fmt.Sprintf("%06d", rand.Intn(1000000))
		var count int64
		err := s.db.Model(&models.BoothToken{}).
			Where("simple_code = ? AND redeemed = ?", code, false).
			Count(&count).Error
		if err != nil {
			return "", fmt.Errorf("checking code: %w", err)
		}
		if count == 0 {
			return code, nil
		}
	}
}
