package services

import (
	"errors"
	"testing"

	"booth-rally-backend/internal/catalog"
	"booth-rally-backend/internal/models"
)

func newScanService(t *testing.T) (*ScanService, *GameService) {
	t.Helper()
	db := newTestDB(t)
	game := NewGameService(db)
	return NewScanService(db, game), game
}

func TestScanRejectsBadPayloads(t *testing.T) {
	scan, _ := newScanService(t)
	createParticipant(t, scan.db, "@alice", 0)

	tests := []struct {
		name    string
		payload string
	}{
		{"not json", "hello"},
		{"wrong type", `{"type":"ticket","boothId":"booth1","version":1}`},
		{"wrong version", `{"type":"booth","boothId":"booth1","version":2}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := scan.Scan("@alice", tt.payload)
			if !errors.Is(err, ErrValidation) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

func TestScanUnknownBooth(t *testing.T) {
	scan, _ := newScanService(t)
	createParticipant(t, scan.db, "@alice", 0)

	_, _, err := scan.Scan("@alice", `{"type":"booth","boothId":"booth99","version":1}`)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestScanCreatesWaitingAllocation(t *testing.T) {
	scan, _ := newScanService(t)
	createParticipant(t, scan.db, "@alice", 0)

	alloc, created, err := scan.Scan("@alice", `{"type":"booth","boothId":"booth1","version":1}`)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if !created {
		t.Error("expected a new allocation")
	}
	if alloc.Status != models.AllocationStatusWaiting {
		t.Errorf("status = %q, want waiting", alloc.Status)
	}
	if alloc.BoothID != "booth1" || alloc.Handle != "@alice" {
		t.Errorf("allocation fields = %q/%q", alloc.BoothID, alloc.Handle)
	}
}

func TestScanDedupesWaitingAllocation(t *testing.T) {
	scan, _ := newScanService(t)
	createParticipant(t, scan.db, "@alice", 0)

	first, _, err := scan.ScanBooth("@alice", "booth1")
	if err != nil {
		t.Fatalf("first scan: %v", err)
	}

	second, created, err := scan.ScanBooth("@alice", "booth1")
	if err != nil {
		t.Fatalf("second scan: %v", err)
	}
	if created {
		t.Error("re-scan must not create a duplicate")
	}
	if second.ID != first.ID {
		t.Errorf("re-scan returned allocation %d, want %d", second.ID, first.ID)
	}

	var count int64
	scan.db.Model(&models.PendingAllocation{}).Count(&count)
	if count != 1 {
		t.Errorf("allocation count = %d, want 1", count)
	}
}

func TestScanRejectsWhenGameEnded(t *testing.T) {
	scan, _ := newScanService(t)
	createParticipant(t, scan.db, "@alice", 0)
	endGame(t, scan.db)

	_, _, err := scan.ScanBooth("@alice", "booth1")
	if !errors.Is(err, ErrPrecondition) {
		t.Errorf("expected precondition error, got %v", err)
	}
}

func TestScanRejectsCompletedBooth(t *testing.T) {
	scan, _ := newScanService(t)
	p := createParticipant(t, scan.db, "@alice", 0)

	booth, _ := catalog.BoothByID("booth1")
	for _, m := range booth.Minigames {
		awardScore(t, scan.db, p, booth.ID, m.ID, 10)
	}

	_, _, err := scan.ScanBooth("@alice", "booth1")
	if !errors.Is(err, ErrPrecondition) {
		t.Fatalf("expected precondition error, got %v", err)
	}

	// no allocation was queued
	var count int64
	scan.db.Model(&models.PendingAllocation{}).Count(&count)
	if count != 0 {
		t.Errorf("allocation count = %d, want 0", count)
	}
}

func TestScanUnknownParticipant(t *testing.T) {
	scan, _ := newScanService(t)

	_, _, err := scan.ScanBooth("@ghost", "booth1")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected not-found error, got %v", err)
	}
}
