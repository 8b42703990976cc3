package catalog

import "CozyFishing/internal/model"

// Zones partition the water column from the surface down.
var Zones = []model.ZoneDefinition{
	{ID: model.ZoneShallow, Name: "Shallow", Threshold: 0.2, Difficulty: 1, LuckMod: 0},
	{ID: model.ZoneMedium, Name: "Medium", Threshold: 0.4, Difficulty: 1.3, LuckMod: 0.05},
	{ID: model.ZoneDeep, Name: "Deep", Threshold: 0.6, Difficulty: 1.6, LuckMod: 0.1},
	{ID: model.ZoneAbyss, Name: "Abyss", Threshold: 1, Difficulty: 2, LuckMod: 0.15},
}

// Base pull strength of a tension contest per zone.
var tensionBase = map[model.ZoneID]float64{
	model.ZoneDeep:  0.5,
	model.ZoneAbyss: 0.8,
}

// ZoneByID looks up a zone definition.
func ZoneByID(id model.ZoneID) (*model.ZoneDefinition, bool) {
	for i := range Zones {
		if Zones[i].ID == id {
			return &Zones[i], true
		}
	}
	return nil, false
}

// ZoneForDepth classifies a normalized depth ratio (0 at the surface, 1 at the
// bottom) by cumulative threshold. The last zone absorbs anything beyond.
func ZoneForDepth(ratio float64) model.ZoneID {
	for _, z := range Zones {
		if ratio <= z.Threshold {
			return z.ID
		}
	}
	return Zones[len(Zones)-1].ID
}

// TensionBase returns the base pull strength for a zone; ok is false for zones
// without a tension contest.
func TensionBase(z model.ZoneID) (float64, bool) {
	v, ok := tensionBase[z]
	return v, ok
}
