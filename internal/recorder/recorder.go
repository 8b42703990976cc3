package recorder

import "CozyFishing/internal/model"

// CatchRecord holds one resolved catch.
type CatchRecord struct {
	RunID  string
	FishID model.FishID
	Rarity model.Rarity
	Zone   model.ZoneID
	Bait   model.BaitID
	Value  int
}

// PurchaseRecord holds one successful shop purchase.
type PurchaseRecord struct {
	Upgrade    model.UpgradeID
	Level      int
	Price      int
	CoinsAfter int
}

// MilestoneRecord holds a collection milestone or zone mastery step.
type MilestoneRecord struct {
	RunID string
	Kind  string // "COLLECTION" or "MASTERY"
	Key   string // fish id or zone id
	Tier  int
}

// Recorder persists historical data for analysis.
type Recorder interface {
	RecordRun(sum *model.RunSummary) error
	RecordCatch(rec *CatchRecord) error
	RecordPurchase(rec *PurchaseRecord) error
	RecordMilestone(rec *MilestoneRecord) error
	Close() error
}
