package services

import (
	"errors"
	"testing"
	"time"

	"booth-rally-backend/internal/models"
)

func newTokenFixture(t *testing.T) (*TokenService, *ScanService) {
	t.Helper()
	db := newTestDB(t)
	game := NewGameService(db)
	scan := NewScanService(db, game)
	return NewTokenService(db, scan, "https://rally.example.com", time.Minute), scan
}

func TestMint(t *testing.T) {
	tokens, _ := newTokenFixture(t)

	token, err := tokens.Mint("booth1")
	if err != nil {
		t.Fatalf("mint: %v", err)
	}
	if token.ID == "" || len(token.SimpleCode) != 6 {
		t.Errorf("token = %+v", token)
	}
	if token.Redeemed {
		t.Error("fresh token must not be redeemed")
	}
	if !token.ExpiresAt.After(time.Now().Add(23 * time.Hour)) {
		t.Errorf("expiry too soon: %v", token.ExpiresAt)
	}
	if got := tokens.Link(token); got != "https://rally.example.com/score/"+token.ID {
		t.Errorf("link = %q", got)
	}

	if _, err := tokens.Mint("booth99"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected not-found for unknown booth, got %v", err)
	}
}

func TestRedeemSingleUse(t *testing.T) {
	tokens, scan := newTokenFixture(t)
	createParticipant(t, scan.db, "@alice", 0)
	createParticipant(t, scan.db, "@bob", 0)

	token, err := tokens.Mint("booth1")
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	alloc, created, err := tokens.Redeem(token.ID, "@alice")
	if err != nil {
		t.Fatalf("redeem: %v", err)
	}
	if !created || alloc.BoothID != "booth1" {
		t.Errorf("allocation = %+v created=%v", alloc, created)
	}

	// second redemption fails, by anyone
	if _, _, err := tokens.Redeem(token.ID, "@bob"); !errors.Is(err, ErrPrecondition) {
		t.Errorf("expected precondition error, got %v", err)
	}
}

// A redemption that loses the consume (another request spent the token after
// it was loaded) must roll the allocation back with it.
func TestRedeemLosingConsumeLeavesNoAllocation(t *testing.T) {
	tokens, scan := newTokenFixture(t)
	createParticipant(t, scan.db, "@alice", 0)

	token, err := tokens.Mint("booth1")
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	// spend the token behind the back of the stale in-memory copy
	scan.db.Model(&models.BoothToken{}).Where("id = ?", token.ID).
		Updates(map[string]interface{}{"redeemed": true, "redeemed_by": "@bob"})

	if _, _, err := tokens.redeem(token, "@alice"); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}

	var count int64
	scan.db.Model(&models.PendingAllocation{}).
		Where("handle = ? AND status = ?", "@alice", models.AllocationStatusWaiting).
		Count(&count)
	if count != 0 {
		t.Errorf("waiting allocations = %d, want 0", count)
	}
}

func TestRedeemUnknownToken(t *testing.T) {
	tokens, scan := newTokenFixture(t)
	createParticipant(t, scan.db, "@alice", 0)

	if _, _, err := tokens.Redeem("no-such-token", "@alice"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected not-found, got %v", err)
	}
}

func TestRedeemExpiredToken(t *testing.T) {
	tokens, scan := newTokenFixture(t)
	createParticipant(t, scan.db, "@alice", 0)

	token, err := tokens.Mint("booth1")
	if err != nil {
		t.Fatalf("mint: %v", err)
	}
	scan.db.Model(&models.BoothToken{}).Where("id = ?", token.ID).
		Update("expires_at", time.Now().Add(-time.Hour))

	if _, _, err := tokens.Redeem(token.ID, "@alice"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected not-found for expired token, got %v", err)
	}
}

func TestRedeemSimpleCode(t *testing.T) {
	tokens, scan := newTokenFixture(t)
	createParticipant(t, scan.db, "@alice", 0)

	token, err := tokens.Mint("booth2")
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	alloc, created, err := tokens.RedeemCode(token.SimpleCode, "@alice")
	if err != nil {
		t.Fatalf("redeem code: %v", err)
	}
	if !created || alloc.BoothID != "booth2" {
		t.Errorf("allocation = %+v created=%v", alloc, created)
	}

	if _, _, err := tokens.RedeemCode(token.SimpleCode, "@alice"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected not-found for spent code, got %v", err)
	}
}

func TestCleanupExpired(t *testing.T) {
	tokens, scan := newTokenFixture(t)

	fresh, err := tokens.Mint("booth1")
	if err != nil {
		t.Fatalf("mint: %v", err)
	}
	stale, err := tokens.Mint("booth2")
	if err != nil {
		t.Fatalf("mint: %v", err)
	}
	scan.db.Model(&models.BoothToken{}).Where("id = ?", stale.ID).
		Update("expires_at", time.Now().Add(-time.Hour))

	deleted, err := tokens.CleanupExpired()
	if err != nil {
		t.Fatalf("cleanup: %v", err)
	}
	if deleted != 1 {
		t.Errorf("deleted = %d, want 1", deleted)
	}

	var count int64
	scan.db.Model(&models.BoothToken{}).Where("id = ?", fresh.ID).Count(&count)
	if count != 1 {
		t.Error("fresh token was swept")
	}
}

func TestSweeperStartStop(t *testing.T) {
	tokens, _ := newTokenFixture(t)

	tokens.StartSweeper()
	tokens.StartSweeper() // second start is a no-op
	tokens.StopSweeper()
	tokens.StopSweeper() // second stop is a no-op
}
