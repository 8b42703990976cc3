package model

import "time"

// SnapshotVersion is written into every exported snapshot.
const SnapshotVersion = 1

// Snapshot is the serializable form of the persistent player state.
// Keys match the browser-era save blob so old saves load unchanged.
type Snapshot struct {
	Version     int               `json:"version"`
	Coins       int               `json:"coins"`
	Collection  map[FishID]int    `json:"collection"`
	Milestones  map[FishID]int    `json:"milestones"`
	Upgrades    map[UpgradeID]int `json:"permanentUpgrades"`
	ZoneMastery map[ZoneID]int    `json:"zoneMastery"`
	UpdatedAt   time.Time         `json:"updatedAt,omitempty"`
}

// NewSnapshot returns an empty snapshot with allocated maps.
func NewSnapshot() Snapshot {
	return Snapshot{
		Version:     SnapshotVersion,
		Collection:  map[FishID]int{},
		Milestones:  map[FishID]int{},
		Upgrades:    map[UpgradeID]int{},
		ZoneMastery: map[ZoneID]int{},
	}
}
