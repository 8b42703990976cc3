package game

import (
	"CozyFishing/internal/catalog"
	"CozyFishing/internal/model"
)

// Journal lists every fish in catalog order. Zones stay hidden until the
// fish has been caught at least once.
func (c *Controller) Journal() []model.JournalEntry {
	out := make([]model.JournalEntry, 0, len(catalog.Fish))
	for i := range catalog.Fish {
		f := &catalog.Fish[i]
		tier := c.store.MilestoneTier(f.ID)
		e := model.JournalEntry{
			Fish:          f.ID,
			Name:          f.Name,
			Rarity:        f.Rarity,
			BaseValue:     f.BaseValue,
			Count:         c.store.CatchCount(f.ID),
			Tier:          tier,
			Bonus:         c.store.CollectionBonus(f),
			NextThreshold: catalog.MilestoneFor(f).Next(tier),
		}
		if e.Count > 0 {
			e.Zones = append([]model.ZoneID(nil), f.Zones...)
		}
		out = append(out, e)
	}
	return out
}

// Shop lists every upgrade with the player's level and what they can afford.
func (c *Controller) Shop() []model.ShopEntry {
	coins := c.store.Coins()
	out := make([]model.ShopEntry, 0, len(catalog.Upgrades))
	for _, u := range catalog.Upgrades {
		level := c.store.UpgradeLevel(u.ID)
		maxed := level >= u.MaxLevel
		out = append(out, model.ShopEntry{
			Upgrade:     u.ID,
			Name:        u.Name,
			Description: u.Description,
			Level:       level,
			MaxLevel:    u.MaxLevel,
			Price:       u.Price,
			Maxed:       maxed,
			Affordable:  !maxed && coins >= u.Price,
		})
	}
	return out
}
