package model

// RunStats accumulates over one run.
type RunStats struct {
	FishCaught  int
	CoinsEarned int
	BestFish    *FishDefinition // highest base value caught this run
}

// RunSummary is produced when a run ends.
type RunSummary struct {
	RunID       string         `json:"runId"`
	FishCaught  int            `json:"fishCaught"`
	CoinsEarned int            `json:"coinsEarned"`
	BestFish    FishID         `json:"bestFish,omitempty"`
	BaitLeft    int            `json:"baitLeft"`
	Inventory   map[BaitID]int `json:"inventory,omitempty"`
}
