// Package session tracks the ephemeral state of a single run: bait supply,
// special bait inventory, the selected bait and run statistics.
package session

import (
	"github.com/google/uuid"

	"CozyFishing/internal/catalog"
	"CozyFishing/internal/model"
)

// Run is created at run start and discarded once its summary is taken.
type Run struct {
	ID        string
	BasicBait int
	Inventory map[model.BaitID]int
	Selected  model.BaitID
	Stats     model.RunStats
}

// BaitOption is one selectable entry of the bait picker.
type BaitOption struct {
	Bait  model.BaitID `json:"bait"`
	Name  string       `json:"name"`
	Count int          `json:"count"`
}

// New starts a run with the given basic bait allowance.
func New(startingBait int) *Run {
	if startingBait < 0 {
		startingBait = 0
	}
	return &Run{
		ID:        uuid.NewString(),
		BasicBait: startingBait,
		Inventory: map[model.BaitID]int{},
		Selected:  model.BaitBasic,
	}
}

// Count returns how many of a bait remain.
func (r *Run) Count(id model.BaitID) int {
	if id == model.BaitBasic {
		return r.BasicBait
	}
	return r.Inventory[id]
}

// Select changes the bait used by the next cast. Only basic or a special bait
// with stock can be selected.
func (r *Run) Select(id model.BaitID) bool {
	if !id.Valid() {
		return false
	}
	if id != model.BaitBasic && r.Inventory[id] <= 0 {
		return false
	}
	r.Selected = id
	return true
}

// SelectedHas reports whether the selected bait is a special bait in stock.
func (r *Run) SelectedHas(effect model.BaitEffect) bool {
	return r.Selected != model.BaitBasic &&
		r.Inventory[r.Selected] > 0 &&
		catalog.BaitEffect(r.Selected) == effect
}

// CanCast reports whether any bait is available for the next cast.
func (r *Run) CanCast() bool {
	return r.BasicBait > 0 || (r.Selected != model.BaitBasic && r.Inventory[r.Selected] > 0)
}

// Consume takes one unit for a cast, preferring the selected special bait over
// basic bait. When the special runs out the selection falls back to basic.
func (r *Run) Consume() (model.BaitID, bool) {
	if r.Selected != model.BaitBasic && r.Inventory[r.Selected] > 0 {
		committed := r.Selected
		r.Inventory[committed]--
		if r.Inventory[committed] == 0 {
			r.Selected = model.BaitBasic
		}
		return committed, true
	}
	if r.BasicBait <= 0 {
		return "", false
	}
	r.BasicBait--
	r.Selected = model.BaitBasic
	return model.BaitBasic, true
}

// AddBait credits one dropped special bait.
func (r *Run) AddBait(id model.BaitID) {
	if id == model.BaitBasic {
		r.BasicBait++
		return
	}
	r.Inventory[id]++
}

// Exhausted reports that no bait of any kind remains.
func (r *Run) Exhausted() bool {
	if r.BasicBait > 0 {
		return false
	}
	for _, n := range r.Inventory {
		if n > 0 {
			return false
		}
	}
	return true
}

// RecordCatch updates run statistics.
func (r *Run) RecordCatch(f *model.FishDefinition, value int) {
	r.Stats.FishCaught++
	r.Stats.CoinsEarned += value
	if r.Stats.BestFish == nil || f.BaseValue > r.Stats.BestFish.BaseValue {
		r.Stats.BestFish = f
	}
}

// Options lists basic bait and every special bait in stock, in catalog order.
func (r *Run) Options() []BaitOption {
	opts := make([]BaitOption, 0, len(catalog.Baits))
	for _, b := range catalog.Baits {
		n := r.Count(b.ID)
		if b.ID != model.BaitBasic && n <= 0 {
			continue
		}
		opts = append(opts, BaitOption{Bait: b.ID, Name: b.Name, Count: n})
	}
	return opts
}

// Summary reports the run's totals.
func (r *Run) Summary() model.RunSummary {
	sum := model.RunSummary{
		RunID:       r.ID,
		FishCaught:  r.Stats.FishCaught,
		CoinsEarned: r.Stats.CoinsEarned,
		BaitLeft:    r.BasicBait,
	}
	if r.Stats.BestFish != nil {
		sum.BestFish = r.Stats.BestFish.ID
	}
	for id, n := range r.Inventory {
		if n > 0 {
			if sum.Inventory == nil {
				sum.Inventory = map[model.BaitID]int{}
			}
			sum.Inventory[id] = n
		}
	}
	return sum
}
