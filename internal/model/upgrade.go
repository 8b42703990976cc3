package model

// UpgradeID identifies a permanent upgrade.
type UpgradeID string

const (
	UpgradeStartBait  UpgradeID = "start_bait"
	UpgradeStartLuck  UpgradeID = "start_luck"
	UpgradeZoneMedium UpgradeID = "zone_medium"
	UpgradeZoneDeep   UpgradeID = "zone_deep"
	UpgradeZoneAbyss  UpgradeID = "zone_abyss"
	UpgradeRunSpeed   UpgradeID = "run_speed"
)

// UpgradeIDs lists every upgrade in shop order.
var UpgradeIDs = []UpgradeID{
	UpgradeStartBait, UpgradeStartLuck,
	UpgradeZoneMedium, UpgradeZoneDeep, UpgradeZoneAbyss,
	UpgradeRunSpeed,
}

func (u UpgradeID) Valid() bool {
	for _, v := range UpgradeIDs {
		if v == u {
			return true
		}
	}
	return false
}

// UpgradeEffect is what owning levels of an upgrade changes.
type UpgradeEffect string

const (
	UpgradeEffectBait   UpgradeEffect = "bait"
	UpgradeEffectLuck   UpgradeEffect = "luck"
	UpgradeEffectSpeed  UpgradeEffect = "speed"
	UpgradeEffectUnlock UpgradeEffect = "unlock"
)

// UpgradeDefinition describes a permanent upgrade sold in the shop.
type UpgradeDefinition struct {
	ID          UpgradeID
	Name        string
	Description string
	Price       int
	MaxLevel    int
	Effect      UpgradeEffect
	Unlocks     ZoneID // set when Effect is UpgradeEffectUnlock
}
