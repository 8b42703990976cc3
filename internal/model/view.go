package model

// JournalEntry is one fish row of the collection journal.
type JournalEntry struct {
	Fish          FishID   `json:"fish"`
	Name          string   `json:"name"`
	Rarity        Rarity   `json:"rarity"`
	BaseValue     int      `json:"value"`
	Count         int      `json:"count"`
	Tier          int      `json:"tier"`
	Bonus         float64  `json:"bonus"`
	NextThreshold int      `json:"next,omitempty"` // 0 once every milestone is reached
	Zones         []ZoneID `json:"zones,omitempty"` // hidden until first caught
}

// ShopEntry is one upgrade row of the shop.
type ShopEntry struct {
	Upgrade     UpgradeID `json:"upgrade"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Level       int       `json:"level"`
	MaxLevel    int       `json:"maxLevel"`
	Price       int       `json:"price"`
	Maxed       bool      `json:"maxed"`
	Affordable  bool      `json:"affordable"`
}
