// Package catalog holds the read-only game data: fish, baits, upgrades, depth
// zones and the milestone and mastery tables.
package catalog

import "CozyFishing/internal/model"

// Fish is every species in journal order.
var Fish = []model.FishDefinition{
	{ID: "minnow", Name: "Minnow", Rarity: model.Common, BaseValue: 5, Zones: []model.ZoneID{model.ZoneShallow}},
	{ID: "carp", Name: "Carp", Rarity: model.Common, BaseValue: 8, Zones: []model.ZoneID{model.ZoneShallow, model.ZoneMedium}},
	{ID: "bluegill", Name: "Bluegill", Rarity: model.Common, BaseValue: 6, Zones: []model.ZoneID{model.ZoneShallow}},
	{ID: "bass", Name: "Bass", Rarity: model.Uncommon, BaseValue: 15, Zones: []model.ZoneID{model.ZoneMedium}},
	{ID: "trout", Name: "Trout", Rarity: model.Uncommon, BaseValue: 20, Zones: []model.ZoneID{model.ZoneMedium, model.ZoneDeep}},
	{ID: "perch", Name: "Perch", Rarity: model.Uncommon, BaseValue: 18, Zones: []model.ZoneID{model.ZoneMedium}},
	{ID: "salmon", Name: "Salmon", Rarity: model.Rare, BaseValue: 35, Zones: []model.ZoneID{model.ZoneDeep}},
	{ID: "catfish", Name: "Catfish", Rarity: model.Rare, BaseValue: 40, Zones: []model.ZoneID{model.ZoneDeep, model.ZoneAbyss}},
	{ID: "pike", Name: "Pike", Rarity: model.Rare, BaseValue: 45, Zones: []model.ZoneID{model.ZoneDeep}},
	{ID: "sturgeon", Name: "Sturgeon", Rarity: model.Epic, BaseValue: 70, Zones: []model.ZoneID{model.ZoneAbyss}},
	{ID: "koi", Name: "Koi", Rarity: model.Epic, BaseValue: 75, Zones: []model.ZoneID{model.ZoneDeep, model.ZoneAbyss}},
	{ID: "anglerfish", Name: "Anglerfish", Rarity: model.Epic, BaseValue: 80, Zones: []model.ZoneID{model.ZoneAbyss}},
	{ID: "leviathan", Name: "Leviathan", Rarity: model.Legendary, BaseValue: 120, Zones: []model.ZoneID{model.ZoneAbyss}},
	{ID: "golden", Name: "Golden Fish", Rarity: model.Legendary, BaseValue: 150, Zones: model.ZoneIDs},
}

// Baits is every bait type; basic first.
var Baits = []model.BaitDefinition{
	{ID: model.BaitBasic, Name: "Basic Bait", Description: "Standard bait", Effect: model.EffectNone, DropChance: 1},
	{ID: model.BaitLucky, Name: "Lucky Bait", Description: "+15% rare chance", Effect: model.EffectLuck, DropChance: 0.15},
	{ID: model.BaitQuick, Name: "Quick Bait", Description: "+30% catch window", Effect: model.EffectSpeed, DropChance: 0.12},
	{ID: model.BaitGolden, Name: "Golden Bait", Description: "+50% coin value", Effect: model.EffectValueBonus, DropChance: 0.08},
	{ID: model.BaitDeep, Name: "Deep Bait", Description: "Can fish any zone without unlock", Effect: model.EffectZoneBypass, DropChance: 0.05},
}

// Upgrades is the permanent shop in display order.
var Upgrades = []model.UpgradeDefinition{
	{ID: model.UpgradeStartBait, Name: "Extra Bait", Description: "Start with +5 bait", Price: 50, MaxLevel: 3, Effect: model.UpgradeEffectBait},
	{ID: model.UpgradeStartLuck, Name: "Lucky Start", Description: "+5% base luck", Price: 80, MaxLevel: 2, Effect: model.UpgradeEffectLuck},
	{ID: model.UpgradeZoneMedium, Name: "Medium Access", Description: "Unlock medium zone", Price: 100, MaxLevel: 1, Effect: model.UpgradeEffectUnlock, Unlocks: model.ZoneMedium},
	{ID: model.UpgradeZoneDeep, Name: "Deep Access", Description: "Unlock deep zone", Price: 200, MaxLevel: 1, Effect: model.UpgradeEffectUnlock, Unlocks: model.ZoneDeep},
	{ID: model.UpgradeZoneAbyss, Name: "Abyss Access", Description: "Unlock abyss zone", Price: 400, MaxLevel: 1, Effect: model.UpgradeEffectUnlock, Unlocks: model.ZoneAbyss},
	{ID: model.UpgradeRunSpeed, Name: "Quick Hands", Description: "Bite windows close 15% faster per level", Price: 150, MaxLevel: 2, Effect: model.UpgradeEffectSpeed},
}

// Per-level upgrade effects and run defaults.
const (
	BaseStartingBait = 10
	BaitPerLevel     = 5
	LuckPerLevel     = 0.05
	SpeedPerLevel    = 0.15
	LuckBaitBonus    = 0.15
)

// BaseZone is always fishable.
const BaseZone = model.ZoneShallow

// FishByID looks up a species.
func FishByID(id model.FishID) (*model.FishDefinition, bool) {
	for i := range Fish {
		if Fish[i].ID == id {
			return &Fish[i], true
		}
	}
	return nil, false
}

// BaitByID looks up a bait type.
func BaitByID(id model.BaitID) (*model.BaitDefinition, bool) {
	for i := range Baits {
		if Baits[i].ID == id {
			return &Baits[i], true
		}
	}
	return nil, false
}

// UpgradeByID looks up an upgrade.
func UpgradeByID(id model.UpgradeID) (*model.UpgradeDefinition, bool) {
	for i := range Upgrades {
		if Upgrades[i].ID == id {
			return &Upgrades[i], true
		}
	}
	return nil, false
}

// BaitEffect returns the effect of a bait, EffectNone for unknown ids.
func BaitEffect(id model.BaitID) model.BaitEffect {
	if b, ok := BaitByID(id); ok {
		return b.Effect
	}
	return model.EffectNone
}

// FishInZone returns the zone's pool in catalog order.
func FishInZone(z model.ZoneID) []*model.FishDefinition {
	var pool []*model.FishDefinition
	for i := range Fish {
		if Fish[i].InZone(z) {
			pool = append(pool, &Fish[i])
		}
	}
	return pool
}

// DropTable returns the non-basic baits and their drop weights, in catalog order.
func DropTable() ([]model.BaitID, []float64) {
	ids := make([]model.BaitID, 0, len(Baits)-1)
	weights := make([]float64, 0, len(Baits)-1)
	for _, b := range Baits {
		if b.ID == model.BaitBasic {
			continue
		}
		ids = append(ids, b.ID)
		weights = append(weights, b.DropChance)
	}
	return ids, weights
}
