package catalog

import "CozyFishing/internal/model"

// MilestoneTable lists ascending catch thresholds for one rarity and the value
// bonus granted once each is reached.
type MilestoneTable struct {
	Thresholds []int
	Bonuses    []float64
}

// Milestones: rarer fish need fewer catches and pay larger bonuses.
var Milestones = map[model.Rarity]MilestoneTable{
	model.Common:    {Thresholds: []int{10, 25, 50}, Bonuses: []float64{0.10, 0.25, 0.50}},
	model.Uncommon:  {Thresholds: []int{8, 20, 40}, Bonuses: []float64{0.15, 0.30, 0.60}},
	model.Rare:      {Thresholds: []int{5, 12, 25}, Bonuses: []float64{0.20, 0.40, 0.75}},
	model.Epic:      {Thresholds: []int{3, 8, 15}, Bonuses: []float64{0.25, 0.50, 1.00}},
	model.Legendary: {Thresholds: []int{2, 5, 10}, Bonuses: []float64{0.50, 1.00, 1.50}},
}

// MasteryThresholds are lifetime catches in a zone needed for levels 1..3.
var MasteryThresholds = []int{25, 50, 100}

// MasteryBonusPerLevel widens the bite window per mastery level.
const MasteryBonusPerLevel = 0.10

// MilestoneFor returns the table for a fish's rarity.
func MilestoneFor(f *model.FishDefinition) MilestoneTable {
	return Milestones[f.Rarity]
}

// Bonus returns the value bonus for a milestone tier (0 for none).
func (t MilestoneTable) Bonus(tier int) float64 {
	if tier <= 0 || len(t.Bonuses) == 0 {
		return 0
	}
	if tier > len(t.Bonuses) {
		tier = len(t.Bonuses)
	}
	return t.Bonuses[tier-1]
}

// Next returns the next threshold above tier, or 0 when the table is complete.
func (t MilestoneTable) Next(tier int) int {
	if tier < 0 {
		tier = 0
	}
	if tier >= len(t.Thresholds) {
		return 0
	}
	return t.Thresholds[tier]
}
