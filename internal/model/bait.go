package model

// BaitID identifies a bait type.
type BaitID string

const (
	BaitBasic  BaitID = "basic"
	BaitLucky  BaitID = "lucky"
	BaitQuick  BaitID = "quick"
	BaitGolden BaitID = "golden"
	BaitDeep   BaitID = "deep"
)

// BaitIDs lists every bait in catalog order.
var BaitIDs = []BaitID{BaitBasic, BaitLucky, BaitQuick, BaitGolden, BaitDeep}

func (b BaitID) Valid() bool {
	for _, v := range BaitIDs {
		if v == b {
			return true
		}
	}
	return false
}

// BaitEffect is the modifier a bait applies to the cast it is committed to.
type BaitEffect string

const (
	EffectNone       BaitEffect = "none"
	EffectLuck       BaitEffect = "luck"
	EffectSpeed      BaitEffect = "speed"
	EffectValueBonus BaitEffect = "value_bonus"
	EffectZoneBypass BaitEffect = "zone_bypass"
)

// BaitDefinition describes a bait type. DropChance is only used for post-catch drops.
type BaitDefinition struct {
	ID          BaitID
	Name        string
	Description string
	Effect      BaitEffect
	DropChance  float64
}
