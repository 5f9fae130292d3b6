package services

import (
	"errors"
	"testing"

	"booth-rally-backend/internal/models"

	"gorm.io/gorm"
)

// completeMinigames awards positive scores for the first n minigames across
// the catalog in booth order.
func completeMinigames(t *testing.T, db *gorm.DB, p *models.Participant, n int) {
	t.Helper()
	boothMinigames := []struct{ booth, minigame string }{
		{"booth1", "ring-toss"},
		{"booth2", "trivia"},
		{"booth3", "chart-sprint"},
		{"booth4", "claw"},
		{"booth5", "wheel"},
		{"booth6", "photo-hunt"},
	}
	if n > len(boothMinigames) {
		t.Fatalf("cannot complete %d minigames, catalog has %d", n, len(boothMinigames))
	}
	for i := 0; i < n; i++ {
		awardScore(t, db, p, boothMinigames[i].booth, boothMinigames[i].minigame, 10)
	}
}

func TestRewardEligibilityRanges(t *testing.T) {
	tests := []struct {
		completed    int
		eligibleTier int // 0 = none
	}{
		{0, 0},
		{1, 1},
		{2, 1},
		{3, 2},
		{4, 2},
		{5, 3},
		{6, 3},
	}
	for _, tt := range tests {
		db := newTestDB(t)
		rewards := NewRewardService(db)
		p := createParticipant(t, db, "@alice", 0)
		completeMinigames(t, db, p, tt.completed)

		status, err := rewards.Status("@alice")
		if err != nil {
			t.Fatalf("completed=%d: status: %v", tt.completed, err)
		}
		if status.CompletedMinigames != tt.completed {
			t.Errorf("completed = %d, want %d", status.CompletedMinigames, tt.completed)
		}
		for _, tier := range status.Tiers {
			want := tier.TierID == tt.eligibleTier
			if tier.Eligible != want {
				t.Errorf("completed=%d tier=%d eligible=%v, want %v",
					tt.completed, tier.TierID, tier.Eligible, want)
			}
		}
	}
}

func TestClaimReplacesPriorClaim(t *testing.T) {
	db := newTestDB(t)
	rewards := NewRewardService(db)
	p := createParticipant(t, db, "@alice", 0)
	completeMinigames(t, db, p, 2)

	if _, err := rewards.Claim("@alice", 1, "staff"); err != nil {
		t.Fatalf("claim tier 1: %v", err)
	}

	// two more completions move @alice into tier 2's range
	completeMinigames2 := []struct{ booth, minigame string }{
		{"booth3", "chart-sprint"},
		{"booth4", "claw"},
	}
	for _, bm := range completeMinigames2 {
		awardScore(t, db, p, bm.booth, bm.minigame, 10)
	}

	status, err := rewards.Claim("@alice", 2, "staff")
	if err != nil {
		t.Fatalf("claim tier 2: %v", err)
	}
	if status.ClaimedTier != 2 {
		t.Errorf("claimed tier = %d, want 2", status.ClaimedTier)
	}

	// the invariant: at most one claim row
	var count int64
	db.Model(&models.RewardClaim{}).Where("participant_id = ?", p.ID).Count(&count)
	if count != 1 {
		t.Errorf("claim rows = %d, want 1", count)
	}
}

func TestClaimRequiresRange(t *testing.T) {
	db := newTestDB(t)
	rewards := NewRewardService(db)
	p := createParticipant(t, db, "@alice", 0)
	completeMinigames(t, db, p, 1)

	if _, err := rewards.Claim("@alice", 3, "staff"); !errors.Is(err, ErrPrecondition) {
		t.Errorf("expected precondition error for out-of-range tier, got %v", err)
	}
	if _, err := rewards.Claim("@alice", 99, "staff"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected not-found for unknown tier, got %v", err)
	}
}

func TestClaimEligibilityClearedAfterClaim(t *testing.T) {
	db := newTestDB(t)
	rewards := NewRewardService(db)
	p := createParticipant(t, db, "@alice", 0)
	completeMinigames(t, db, p, 2)

	if _, err := rewards.Claim("@alice", 1, "staff"); err != nil {
		t.Fatalf("claim: %v", err)
	}

	status, err := rewards.Status("@alice")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	for _, tier := range status.Tiers {
		if tier.Eligible {
			t.Errorf("tier %d still eligible after a claim", tier.TierID)
		}
	}
}

func TestUnclaim(t *testing.T) {
	db := newTestDB(t)
	rewards := NewRewardService(db)
	p := createParticipant(t, db, "@alice", 0)
	completeMinigames(t, db, p, 2)

	if _, err := rewards.Claim("@alice", 1, "staff"); err != nil {
		t.Fatalf("claim: %v", err)
	}

	status, err := rewards.Unclaim("@alice", 1)
	if err != nil {
		t.Fatalf("unclaim: %v", err)
	}
	if status.ClaimedTier != 0 {
		t.Errorf("claimed tier = %d, want 0", status.ClaimedTier)
	}

	// unclaiming a tier that is not claimed
	if _, err := rewards.Unclaim("@alice", 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected not-found, got %v", err)
	}
}

func TestRewardUnknownParticipant(t *testing.T) {
	db := newTestDB(t)
	rewards := NewRewardService(db)

	if _, err := rewards.Status("@ghost"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected not-found, got %v", err)
	}
}
