// Package ranking classifies final scores and keeps the persisted leaderboard.
package ranking

// Rank is the label a final score earns.
type Rank string

const (
	Novice  Rank = "Novice"
	Veteran Rank = "Veteran"
	Legend  Rank = "Legend"
)

// DefaultThreshold is the score a player must exceed to be a Veteran.
const DefaultThreshold = 400

// LegendThreshold is the score a player must exceed to be a Legend when the
// three-tier table is enabled.
const LegendThreshold = 700

// Classify returns Veteran when score exceeds threshold, Novice otherwise.
func Classify(score, threshold int) Rank {
	if score > threshold {
		return Veteran
	}
	return Novice
}

// Tiers selects the optional historical Legend tier on top of Classify.
type Tiers struct {
	Threshold int
	Legend    bool
}

// Classify applies the tier table. With Legend off it matches Classify.
func (t Tiers) Classify(score int) Rank {
	if t.Legend && score > LegendThreshold {
		return Legend
	}
	return Classify(score, t.Threshold)
}
