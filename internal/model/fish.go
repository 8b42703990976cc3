package model

// FishID identifies a fish species.
type FishID string

// FishDefinition is an immutable catalog entry.
type FishDefinition struct {
	ID        FishID   `json:"id"`
	Name      string   `json:"name"`
	Rarity    Rarity   `json:"rarity"`
	BaseValue int      `json:"value"`
	Zones     []ZoneID `json:"zones"`
}

// InZone reports whether the fish can appear in zone z.
func (f *FishDefinition) InZone(z ZoneID) bool {
	for _, v := range f.Zones {
		if v == z {
			return true
		}
	}
	return false
}
