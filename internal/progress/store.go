package progress

import (
	"errors"
	"log"
	"sort"
	"sync"

	"CozyFishing/internal/calculator"
	"CozyFishing/internal/catalog"
	"CozyFishing/internal/model"
)

// Store holds the persistent player state and derives the modifiers the
// fishing engine consumes. Derived values are recomputed on every read.
type Store struct {
	mu       sync.Mutex
	saveMu   sync.Mutex // serializes writers of filePath
	state    model.Snapshot
	filePath string
	dirty    bool
}

// CatchProgress reports thresholds newly crossed by a recorded catch.
type CatchProgress struct {
	Count         int // lifetime count including this catch
	MilestoneTier int // new tier, 0 when none was crossed
	MasteryLevel  int // new level, 0 when none was crossed
}

// NewStore loads state from filePath. Errors are logged, not returned. A save
// with some mistyped fields keeps the rest; an unreadable save starts fresh.
// Either way the original file is moved aside before anything overwrites it.
func NewStore(filePath string) *Store {
	s := &Store{filePath: filePath}
	snap, err := LoadFile(filePath)
	var fe *FieldError
	switch {
	case err == nil:
		s.Import(snap)
		s.dirty = false
	case errors.As(err, &fe):
		log.Printf("[WARN] load save %s: %v, keeping the other fields", filePath, err)
		s.quarantine()
		s.Import(snap)
		s.dirty = true
	default:
		log.Printf("[WARN] load save %s: %v, starting fresh", filePath, err)
		s.quarantine()
		s.Import(model.NewSnapshot())
		s.dirty = false
	}
	return s
}

func (s *Store) quarantine() {
	p, err := Quarantine(s.filePath)
	if err != nil {
		log.Printf("[ERROR] %v", err)
		return
	}
	log.Printf("[WARN] original save kept at %s", p)
}

// NewMemoryStore returns a store that never touches disk.
func NewMemoryStore() *Store {
	return &Store{state: model.NewSnapshot()}
}

// Export returns a deep copy of the persistent state.
func (s *Store) Export() model.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copySnapshot(s.state)
}

// Import replaces the state with a sanitized copy of snap. Unknown ids are
// dropped, negative values clamp to zero and levels clamp to their maximum.
func (s *Store) Import(snap model.Snapshot) {
	clean := model.NewSnapshot()
	if snap.Coins > 0 {
		clean.Coins = snap.Coins
	}
	for id, n := range snap.Collection {
		if _, ok := catalog.FishByID(id); ok && n > 0 {
			clean.Collection[id] = n
		}
	}
	for id, tier := range snap.Milestones {
		f, ok := catalog.FishByID(id)
		if !ok || tier <= 0 {
			continue
		}
		if limit := len(catalog.MilestoneFor(f).Thresholds); tier > limit {
			tier = limit
		}
		clean.Milestones[id] = tier
	}
	// Saves written before milestones existed carry counts without tiers.
	for id, n := range clean.Collection {
		f, _ := catalog.FishByID(id)
		if t := calculator.StepLevel(catalog.MilestoneFor(f).Thresholds, n); t > clean.Milestones[id] {
			clean.Milestones[id] = t
		}
	}
	for id, lvl := range snap.Upgrades {
		u, ok := catalog.UpgradeByID(id)
		if !ok || lvl <= 0 {
			continue
		}
		if lvl > u.MaxLevel {
			lvl = u.MaxLevel
		}
		clean.Upgrades[id] = lvl
	}
	for id, n := range snap.ZoneMastery {
		if id.Valid() && n > 0 {
			clean.ZoneMastery[id] = n
		}
	}

	s.mu.Lock()
	s.state = clean
	s.dirty = true
	s.mu.Unlock()
}

// Coins returns the currency balance.
func (s *Store) Coins() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Coins
}

// UpgradeLevel returns the owned level of an upgrade.
func (s *Store) UpgradeLevel(id model.UpgradeID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Upgrades[id]
}

// EffectiveLuck is the base luck from upgrades.
func (s *Store) EffectiveLuck() float64 {
	return float64(s.UpgradeLevel(model.UpgradeStartLuck)) * catalog.LuckPerLevel
}

// EffectiveSpeed multiplies the base bite window.
func (s *Store) EffectiveSpeed() float64 {
	return 1 + float64(s.UpgradeLevel(model.UpgradeRunSpeed))*catalog.SpeedPerLevel
}

// StartingBaitCount is the basic bait a new run starts with.
func (s *Store) StartingBaitCount() int {
	return catalog.BaseStartingBait + s.UpgradeLevel(model.UpgradeStartBait)*catalog.BaitPerLevel
}

// UnlockedZones returns the fishable zones in depth order. The base zone is
// always present.
func (s *Store) UnlockedZones() []model.ZoneID {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.ZoneID{catalog.BaseZone}
	for _, u := range catalog.Upgrades {
		if u.Effect == model.UpgradeEffectUnlock && s.state.Upgrades[u.ID] > 0 && u.Unlocks != catalog.BaseZone {
			out = append(out, u.Unlocks)
		}
	}
	sort.Slice(out, func(i, j int) bool { return zoneOrder(out[i]) < zoneOrder(out[j]) })
	return out
}

// IsUnlocked reports whether z is fishable without a bypass bait.
func (s *Store) IsUnlocked(z model.ZoneID) bool {
	for _, u := range s.UnlockedZones() {
		if u == z {
			return true
		}
	}
	return false
}

// MasteryCount returns lifetime catches in a zone.
func (s *Store) MasteryCount(z model.ZoneID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.ZoneMastery[z]
}

// MasteryLevel is a pure step function of the zone's mastery counter.
func (s *Store) MasteryLevel(z model.ZoneID) int {
	return calculator.StepLevel(catalog.MasteryThresholds, s.MasteryCount(z))
}

// MasteryBonus widens the bite window in a zone.
func (s *Store) MasteryBonus(z model.ZoneID) float64 {
	return float64(s.MasteryLevel(z)) * catalog.MasteryBonusPerLevel
}

// CatchCount returns the lifetime catches of a fish.
func (s *Store) CatchCount(id model.FishID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Collection[id]
}

// MilestoneTier returns the highest milestone tier reached for a fish.
func (s *Store) MilestoneTier(id model.FishID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Milestones[id]
}

// CollectionBonus is the value bonus of the highest milestone unlocked by the
// fish's current lifetime count.
func (s *Store) CollectionBonus(f *model.FishDefinition) float64 {
	tbl := catalog.MilestoneFor(f)
	return tbl.Bonus(calculator.StepLevel(tbl.Thresholds, s.CatchCount(f.ID)))
}

// Purchase buys one level of an upgrade. It is rejected without any change
// when the player cannot afford it or it is already maxed.
func (s *Store) Purchase(id model.UpgradeID) (level int, ok bool) {
	u, found := catalog.UpgradeByID(id)
	if !found {
		return 0, false
	}

	s.mu.Lock()
	cur := s.state.Upgrades[id]
	if s.state.Coins < u.Price || cur >= u.MaxLevel {
		s.mu.Unlock()
		return cur, false
	}
	s.state.Coins -= u.Price
	s.state.Upgrades[id] = cur + 1
	s.dirty = true
	s.mu.Unlock()

	if err := s.Flush(); err != nil {
		log.Printf("[ERROR] failed to save after purchase: %v", err)
	}
	return cur + 1, true
}

// RecordCatch credits value coins and advances the fish's collection count and
// the zone's mastery counter, reporting any threshold crossed for the first time.
func (s *Store) RecordCatch(f *model.FishDefinition, zone model.ZoneID, value int) CatchProgress {
	tbl := catalog.MilestoneFor(f)

	s.mu.Lock()
	defer s.mu.Unlock()

	if value > 0 {
		s.state.Coins += value
	}
	s.state.Collection[f.ID]++
	count := s.state.Collection[f.ID]
	res := CatchProgress{Count: count}

	if tier := calculator.StepLevel(tbl.Thresholds, count); tier > s.state.Milestones[f.ID] {
		s.state.Milestones[f.ID] = tier
		res.MilestoneTier = tier
	}

	before := calculator.StepLevel(catalog.MasteryThresholds, s.state.ZoneMastery[zone])
	s.state.ZoneMastery[zone]++
	if after := calculator.StepLevel(catalog.MasteryThresholds, s.state.ZoneMastery[zone]); after > before {
		res.MasteryLevel = after
	}

	s.dirty = true
	return res
}

// Flush writes the state to disk when it changed since the last write.
func (s *Store) Flush() error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.mu.Lock()
	if s.filePath == "" || !s.dirty {
		s.mu.Unlock()
		return nil
	}
	snap := copySnapshot(s.state)
	s.dirty = false
	s.mu.Unlock()

	if err := SaveFile(s.filePath, snap); err != nil {
		s.mu.Lock()
		s.dirty = true
		s.mu.Unlock()
		return err
	}
	return nil
}

// FilePath is where Flush writes.
func (s *Store) FilePath() string { return s.filePath }

func zoneOrder(z model.ZoneID) int {
	for i, id := range model.ZoneIDs {
		if id == z {
			return i
		}
	}
	return len(model.ZoneIDs)
}

func copySnapshot(in model.Snapshot) model.Snapshot {
	out := model.NewSnapshot()
	out.Version = in.Version
	out.Coins = in.Coins
	for k, v := range in.Collection {
		out.Collection[k] = v
	}
	for k, v := range in.Milestones {
		out.Milestones[k] = v
	}
	for k, v := range in.Upgrades {
		out.Upgrades[k] = v
	}
	for k, v := range in.ZoneMastery {
		out.ZoneMastery[k] = v
	}
	return out
}
