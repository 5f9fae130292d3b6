package services

import (
	"errors"
	"testing"

	"booth-rally-backend/internal/models"

	"gorm.io/gorm"
)

func newAllocationFixture(t *testing.T) (*gorm.DB, *ScanService, *AllocationService) {
	t.Helper()
	db := newTestDB(t)
	game := NewGameService(db)
	return db, NewScanService(db, game), NewAllocationService(db, game)
}

// The walkthrough from the product brief: @alice logs in, scans booth1, staff
// allocate 30 of booth1's max 50.
func TestAllocationScenario(t *testing.T) {
	db, scan, allocs := newAllocationFixture(t)
	p := createParticipant(t, db, "@alice", 0)

	pending, created, err := scan.ScanBooth("@alice", "booth1")
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if !created || pending.Status != models.AllocationStatusWaiting {
		t.Fatalf("expected new waiting allocation, got created=%v status=%q", created, pending.Status)
	}

	done, participant, err := allocs.Complete(pending.ID, 30, "booth1-staff")
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if done.Status != models.AllocationStatusCompleted {
		t.Errorf("status = %q, want completed", done.Status)
	}
	if done.CompletedBy != "booth1-staff" || done.CompletedAt == nil {
		t.Errorf("completer metadata missing: %+v", done)
	}
	if participant.TotalScore != 30 {
		t.Errorf("total score = %d, want 30", participant.TotalScore)
	}

	var score models.BoothScore
	if err := db.Where("participant_id = ? AND booth_id = ?", p.ID, "booth1").First(&score).Error; err != nil {
		t.Fatalf("loading booth score: %v", err)
	}
	if score.Points != 30 {
		t.Errorf("booth1 score = %d, want 30", score.Points)
	}
	checkTotalInvariant(t, db, p.ID)
}

func TestCompleteRejectsOutOfBoundsPoints(t *testing.T) {
	db, scan, allocs := newAllocationFixture(t)
	p := createParticipant(t, db, "@alice", 0)

	pending, _, err := scan.ScanBooth("@alice", "booth1")
	if err != nil {
		t.Fatalf("scan: %v", err)
	}

	for _, points := range []int{0, -5, 51, 1000} {
		_, _, err := allocs.Complete(pending.ID, points, "staff")
		if !errors.Is(err, ErrValidation) {
			t.Errorf("points=%d: expected validation error, got %v", points, err)
		}
	}

	// neither the participant nor the allocation was touched
	var fresh models.Participant
	db.First(&fresh, p.ID)
	if fresh.TotalScore != 0 {
		t.Errorf("total score mutated to %d", fresh.TotalScore)
	}
	var reloaded models.PendingAllocation
	db.First(&reloaded, pending.ID)
	if reloaded.Status != models.AllocationStatusWaiting {
		t.Errorf("allocation status mutated to %q", reloaded.Status)
	}
}

func TestCompleteRejectsWhenGameEnded(t *testing.T) {
	db, scan, allocs := newAllocationFixture(t)
	createParticipant(t, db, "@alice", 0)

	pending, _, err := scan.ScanBooth("@alice", "booth1")
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	endGame(t, db)

	_, _, err = allocs.Complete(pending.ID, 30, "staff")
	if !errors.Is(err, ErrPrecondition) {
		t.Errorf("expected precondition error, got %v", err)
	}
}

func TestCompleteConflictsOnSecondComplete(t *testing.T) {
	db, scan, allocs := newAllocationFixture(t)
	p := createParticipant(t, db, "@alice", 0)

	pending, _, err := scan.ScanBooth("@alice", "booth1")
	if err != nil {
		t.Fatalf("scan: %v", err)
	}

	if _, _, err := allocs.Complete(pending.ID, 30, "staff-a"); err != nil {
		t.Fatalf("first complete: %v", err)
	}
	_, _, err = allocs.Complete(pending.ID, 40, "staff-b")
	if !errors.Is(err, ErrConflict) {
		t.Errorf("expected conflict error, got %v", err)
	}

	// the first staff member's award stands
	var score models.BoothScore
	db.Where("participant_id = ?", p.ID).First(&score)
	if score.Points != 30 || score.AwardedBy != "staff-a" {
		t.Errorf("score = %d by %q, want 30 by staff-a", score.Points, score.AwardedBy)
	}
	checkTotalInvariant(t, db, p.ID)
}

func TestCompleteUnknownAllocation(t *testing.T) {
	_, _, allocs := newAllocationFixture(t)

	_, _, err := allocs.Complete(9999, 10, "staff")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestCancel(t *testing.T) {
	db, scan, allocs := newAllocationFixture(t)
	p := createParticipant(t, db, "@alice", 0)

	pending, _, err := scan.ScanBooth("@alice", "booth1")
	if err != nil {
		t.Fatalf("scan: %v", err)
	}

	cancelled, err := allocs.Cancel(pending.ID, "staff")
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if cancelled.Status != models.AllocationStatusCancelled {
		t.Errorf("status = %q, want cancelled", cancelled.Status)
	}

	// cancelling again conflicts
	if _, err := allocs.Cancel(pending.ID, "staff"); !errors.Is(err, ErrConflict) {
		t.Errorf("expected conflict error, got %v", err)
	}

	// nothing was awarded
	var fresh models.Participant
	db.First(&fresh, p.ID)
	if fresh.TotalScore != 0 {
		t.Errorf("total score = %d, want 0", fresh.TotalScore)
	}
}

func TestListWaiting(t *testing.T) {
	db, scan, allocs := newAllocationFixture(t)
	createParticipant(t, db, "@alice", 0)
	createParticipant(t, db, "@bob", 0)

	if _, _, err := scan.ScanBooth("@alice", "booth1"); err != nil {
		t.Fatalf("scan alice: %v", err)
	}
	if _, _, err := scan.ScanBooth("@bob", "booth1"); err != nil {
		t.Fatalf("scan bob: %v", err)
	}
	if _, _, err := scan.ScanBooth("@bob", "booth2"); err != nil {
		t.Fatalf("scan bob booth2: %v", err)
	}

	waiting, err := allocs.ListWaiting("booth1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(waiting) != 2 {
		t.Errorf("booth1 waiting = %d, want 2", len(waiting))
	}

	if _, err := allocs.ListWaiting("booth99"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected not-found for unknown booth, got %v", err)
	}
}

func TestSetScoreDirectEdit(t *testing.T) {
	db, _, allocs := newAllocationFixture(t)
	p := createParticipant(t, db, "@alice", 0)

	participant, err := allocs.SetScore("@alice", "booth1", "ring-toss", 25, "admin")
	if err != nil {
		t.Fatalf("set score: %v", err)
	}
	if participant.TotalScore != 25 {
		t.Errorf("total = %d, want 25", participant.TotalScore)
	}

	// overwrite keeps the invariant, not double-counts
	participant, err = allocs.SetScore("@alice", "booth1", "ring-toss", 40, "admin")
	if err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if participant.TotalScore != 40 {
		t.Errorf("total after overwrite = %d, want 40", participant.TotalScore)
	}
	checkTotalInvariant(t, db, p.ID)

	if _, err := allocs.SetScore("@alice", "booth1", "nope", 10, "admin"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected not-found for unknown minigame, got %v", err)
	}
	if _, err := allocs.SetScore("@alice", "booth1", "ring-toss", 0, "admin"); !errors.Is(err, ErrValidation) {
		t.Errorf("expected validation for zero points, got %v", err)
	}
}

func TestTotalsAccumulateAcrossBooths(t *testing.T) {
	db, scan, allocs := newAllocationFixture(t)
	p := createParticipant(t, db, "@alice", 0)

	a1, _, _ := scan.ScanBooth("@alice", "booth1")
	if _, _, err := allocs.Complete(a1.ID, 30, "staff"); err != nil {
		t.Fatalf("complete booth1: %v", err)
	}
	a2, _, _ := scan.ScanBooth("@alice", "booth2")
	if _, _, err := allocs.Complete(a2.ID, 15, "staff"); err != nil {
		t.Fatalf("complete booth2: %v", err)
	}

	var fresh models.Participant
	db.First(&fresh, p.ID)
	if fresh.TotalScore != 45 {
		t.Errorf("total = %d, want 45", fresh.TotalScore)
	}
	checkTotalInvariant(t, db, p.ID)
}
