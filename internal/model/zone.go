package model

// ZoneID names a depth band of the water.
type ZoneID string

const (
	ZoneShallow ZoneID = "shallow"
	ZoneMedium  ZoneID = "medium"
	ZoneDeep    ZoneID = "deep"
	ZoneAbyss   ZoneID = "abyss"
)

// ZoneIDs lists the zones from the surface down.
var ZoneIDs = []ZoneID{ZoneShallow, ZoneMedium, ZoneDeep, ZoneAbyss}

func (z ZoneID) Valid() bool {
	for _, v := range ZoneIDs {
		if v == z {
			return true
		}
	}
	return false
}

// HasTension reports whether bites in this zone start the tension contest.
func (z ZoneID) HasTension() bool { return z == ZoneDeep || z == ZoneAbyss }

// ZoneDefinition describes one depth band.
type ZoneDefinition struct {
	ID         ZoneID
	Name       string
	Threshold  float64 // cumulative depth-ratio upper bound
	Difficulty float64
	LuckMod    float64
}
