// Package catalog holds the static booth, minigame and reward tier reference
// data for the event. It is compiled in, not persisted: a reset never touches
// it and every node serves the same catalog.
package catalog

type Minigame struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	MaxScore int    `json:"max_score"`
}

type Booth struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Minigames   []Minigame `json:"minigames"`
}

// RewardTier is a milestone band over completed-minigame counts, inclusive on
// both ends.
type RewardTier struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	MinCompleted int    `json:"min_completed"`
	MaxCompleted int    `json:"max_completed"`
}

var booths = []Booth{
	{
		ID:          "booth1",
		Name:        "Ring Toss",
		Description: "Land three rings to max out the score",
		Minigames:   []Minigame{{ID: "ring-toss", Name: "Ring Toss", MaxScore: 50}},
	},
	{
		ID:          "booth2",
		Name:        "Trivia Corner",
		Description: "Five rapid-fire questions about the exchange",
		Minigames:   []Minigame{{ID: "trivia", Name: "Trivia", MaxScore: 40}},
	},
	{
		ID:          "booth3",
		Name:        "Chart Sprint",
		Description: "Guess the next candle before the timer runs out",
		Minigames:   []Minigame{{ID: "chart-sprint", Name: "Chart Sprint", MaxScore: 50}},
	},
	{
		ID:          "booth4",
		Name:        "Claw Machine",
		Description: "One grab per visit",
		Minigames:   []Minigame{{ID: "claw", Name: "Claw Machine", MaxScore: 30}},
	},
	{
		ID:          "booth5",
		Name:        "Lucky Wheel",
		Description: "Spin once, score what it lands on",
		Minigames:   []Minigame{{ID: "wheel", Name: "Lucky Wheel", MaxScore: 40}},
	},
	{
		ID:          "booth6",
		Name:        "Photo Hunt",
		Description: "Find all five hidden logos on the venue map",
		Minigames:   []Minigame{{ID: "photo-hunt", Name: "Photo Hunt", MaxScore: 50}},
	},
}

var tiers = []RewardTier{
	{ID: 1, Name: "Bronze", MinCompleted: 1, MaxCompleted: 2},
	{ID: 2, Name: "Silver", MinCompleted: 3, MaxCompleted: 4},
	{ID: 3, Name: "Gold", MinCompleted: 5, MaxCompleted: 6},
}

func Booths() []Booth {
	return booths
}

func BoothByID(id string) (Booth, bool) {
	for _, b := range booths {
		if b.ID == id {
			return b, true
		}
	}
	return Booth{}, false
}

// MinigameByID resolves a minigame within one booth.
func MinigameByID(boothID, minigameID string) (Minigame, bool) {
	b, ok := BoothByID(boothID)
	if !ok {
		return Minigame{}, false
	}
	for _, m := range b.Minigames {
		if m.ID == minigameID {
			return m, true
		}
	}
	return Minigame{}, false
}

// TotalMinigames is the size of the full minigame set across all booths.
func TotalMinigames() int {
	n := 0
	for _, b := range booths {
		n += len(b.Minigames)
	}
	return n
}

func Tiers() []RewardTier {
	return tiers
}

func TierByID(id int) (RewardTier, bool) {
	for _, t := range tiers {
		if t.ID == id {
			return t, true
		}
	}
	return RewardTier{}, false
}

// TierForCount returns the tier whose range contains the given
// completed-minigame count.
func TierForCount(completed int) (RewardTier, bool) {
	for _, t := range tiers {
		if completed >= t.MinCompleted && completed <= t.MaxCompleted {
			return t, true
		}
	}
	return RewardTier{}, false
}
