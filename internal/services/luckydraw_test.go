package services

import (
	"errors"
	"fmt"
	"testing"

	"booth-rally-backend/internal/catalog"
	"booth-rally-backend/internal/models"

	"gorm.io/gorm"
)

// seedFullSet creates a participant who completed every minigame, with the
// given total score spread over the catalog.
func seedFullSet(t *testing.T, db *gorm.DB, handle string, perGame int) *models.Participant {
	t.Helper()
	p := createParticipant(t, db, handle, 0)
	for _, b := range catalog.Booths() {
		for _, m := range b.Minigames {
			awardScore(t, db, p, b.ID, m.ID, perGame)
		}
	}
	return p
}

func TestDrawSelectionCriteria(t *testing.T) {
	db := newTestDB(t)

	// five high scorers take the podium and sit out the draw
	topHandles := make(map[string]bool)
	for i := 0; i < 5; i++ {
		handle := fmt.Sprintf("@top%d", i)
		seedFullSet(t, db, handle, 50-i)
		topHandles[handle] = true
	}
	// ten regular full-set finishers, one of them blacklisted
	eligible := make(map[string]bool)
	for i := 0; i < 10; i++ {
		handle := fmt.Sprintf("@player%d", i)
		seedFullSet(t, db, handle, 5)
		eligible[handle] = true
	}
	delete(eligible, "@player3")
	// one participant who did not finish the set
	p := createParticipant(t, db, "@partial", 0)
	awardScore(t, db, p, "booth1", "ring-toss", 10)

	draws := NewLuckyDrawService(db, []string{"@player3"}, 7)
	draw, err := draws.Draw(0, "admin")
	if err != nil {
		t.Fatalf("draw: %v", err)
	}

	if draw.RequestedCount != 7 {
		t.Errorf("requested count = %d, want default 7", draw.RequestedCount)
	}
	if len(draw.Winners) > 7 {
		t.Errorf("winners = %d, want <= 7", len(draw.Winners))
	}
	seen := make(map[string]bool)
	for _, w := range draw.Winners {
		if topHandles[w.Handle] {
			t.Errorf("top scorer %s must not win the draw", w.Handle)
		}
		if w.Handle == "@player3" {
			t.Error("blacklisted handle won the draw")
		}
		if w.Handle == "@partial" {
			t.Error("participant without the full set won the draw")
		}
		if !eligible[w.Handle] {
			t.Errorf("winner %s is outside the eligible pool", w.Handle)
		}
		if seen[w.Handle] {
			t.Errorf("winner %s selected twice", w.Handle)
		}
		seen[w.Handle] = true
	}
}

func TestDrawSmallPool(t *testing.T) {
	db := newTestDB(t)

	// seven full-set finishers: five excluded as top scorers, two drawable
	for i := 0; i < 7; i++ {
		seedFullSet(t, db, fmt.Sprintf("@p%d", i), 50-i)
	}

	draws := NewLuckyDrawService(db, nil, 7)
	draw, err := draws.Draw(7, "admin")
	if err != nil {
		t.Fatalf("draw: %v", err)
	}
	if len(draw.Winners) != 2 {
		t.Errorf("winners = %d, want 2", len(draw.Winners))
	}
}

func TestDrawEmptyPool(t *testing.T) {
	db := newTestDB(t)
	draws := NewLuckyDrawService(db, nil, 7)

	draw, err := draws.Draw(7, "admin")
	if err != nil {
		t.Fatalf("draw with no participants: %v", err)
	}
	if len(draw.Winners) != 0 {
		t.Errorf("winners = %d, want 0", len(draw.Winners))
	}
}

func TestDrawLatest(t *testing.T) {
	db := newTestDB(t)
	draws := NewLuckyDrawService(db, nil, 7)

	if _, err := draws.Latest(); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected not-found before any draw, got %v", err)
	}

	for i := 0; i < 8; i++ {
		seedFullSet(t, db, fmt.Sprintf("@p%d", i), 10)
	}
	if _, err := draws.Draw(3, "admin"); err != nil {
		t.Fatalf("draw: %v", err)
	}

	latest, err := draws.Latest()
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if latest.RequestedCount != 3 {
		t.Errorf("latest requested count = %d, want 3", latest.RequestedCount)
	}
	if len(latest.Winners) > 3 {
		t.Errorf("latest winners = %d, want <= 3", len(latest.Winners))
	}
	for i, w := range latest.Winners {
		if w.Position != i+1 {
			t.Errorf("winner %d has position %d", i, w.Position)
		}
	}
}
