package progress

import (
	"math"
	"reflect"
	"testing"

	"CozyFishing/internal/catalog"
	"CozyFishing/internal/model"
)

func mustFish(t *testing.T, id model.FishID) *model.FishDefinition {
	t.Helper()
	f, ok := catalog.FishByID(id)
	if !ok {
		t.Fatalf("fish %s not in catalog", id)
	}
	return f
}

func TestPurchase_MaxedUpgradeRejected(t *testing.T) {
	s := NewMemoryStore()
	s.Import(model.Snapshot{Coins: 1000, Upgrades: map[model.UpgradeID]int{model.UpgradeZoneMedium: 1}})

	lvl, ok := s.Purchase(model.UpgradeZoneMedium)
	if ok {
		t.Fatal("expected purchase of maxed upgrade to be rejected")
	}
	if lvl != 1 {
		t.Errorf("expected level to stay 1, got %d", lvl)
	}
	if s.Coins() != 1000 {
		t.Errorf("expected coins unchanged at 1000, got %d", s.Coins())
	}
}

func TestPurchase_InsufficientCoins(t *testing.T) {
	s := NewMemoryStore()
	s.Import(model.Snapshot{Coins: 49})
	if _, ok := s.Purchase(model.UpgradeStartBait); ok {
		t.Fatal("expected rejection with 49 coins")
	}
	if s.Coins() != 49 || s.UpgradeLevel(model.UpgradeStartBait) != 0 {
		t.Errorf("state changed on rejected purchase: coins=%d level=%d", s.Coins(), s.UpgradeLevel(model.UpgradeStartBait))
	}
	if _, ok := s.Purchase("no_such_upgrade"); ok {
		t.Error("expected unknown upgrade to be rejected")
	}
}

func TestPurchase_AppliesDerivedModifiers(t *testing.T) {
	s := NewMemoryStore()
	s.Import(model.Snapshot{Coins: 2000})

	if got := s.StartingBaitCount(); got != 10 {
		t.Errorf("fresh starting bait: expected 10, got %d", got)
	}
	for i := 0; i < 3; i++ {
		if _, ok := s.Purchase(model.UpgradeStartBait); !ok {
			t.Fatalf("start_bait purchase %d rejected", i+1)
		}
	}
	if got := s.StartingBaitCount(); got != 25 {
		t.Errorf("starting bait after 3 levels: expected 25, got %d", got)
	}
	s.Purchase(model.UpgradeStartLuck)
	if got := s.EffectiveLuck(); got != 0.05 {
		t.Errorf("luck: expected 0.05, got %.3f", got)
	}
	s.Purchase(model.UpgradeRunSpeed)
	if got := s.EffectiveSpeed(); math.Abs(got-1.15) > 1e-9 {
		t.Errorf("speed: expected 1.15, got %.3f", got)
	}
	if s.IsUnlocked(model.ZoneDeep) {
		t.Error("deep should start locked")
	}
	s.Purchase(model.UpgradeZoneDeep)
	want := []model.ZoneID{model.ZoneShallow, model.ZoneDeep}
	if got := s.UnlockedZones(); !reflect.DeepEqual(got, want) {
		t.Errorf("unlocked zones: expected %v, got %v", want, got)
	}
	spent := 3*50 + 80 + 150 + 200
	if s.Coins() != 2000-spent {
		t.Errorf("coins: expected %d, got %d", 2000-spent, s.Coins())
	}
}

func TestRecordCatch_MilestonesMonotonic(t *testing.T) {
	s := NewMemoryStore()
	minnow := mustFish(t, "minnow")

	var crossed []int
	prev := 0
	for i := 1; i <= 60; i++ {
		res := s.RecordCatch(minnow, model.ZoneShallow, minnow.BaseValue)
		if res.Count != i {
			t.Fatalf("catch %d: count reported %d", i, res.Count)
		}
		if res.MilestoneTier != 0 {
			crossed = append(crossed, i)
		}
		tier := s.MilestoneTier(minnow.ID)
		if tier < prev {
			t.Fatalf("catch %d: tier decreased %d -> %d", i, prev, tier)
		}
		if tier > len(catalog.Milestones[model.Common].Thresholds) {
			t.Fatalf("catch %d: tier %d exceeds table", i, tier)
		}
		prev = tier
	}
	if want := []int{10, 25, 50}; !reflect.DeepEqual(crossed, want) {
		t.Errorf("milestones crossed at %v, expected %v", crossed, want)
	}
	if s.Coins() != 60*5 {
		t.Errorf("coins: expected %d, got %d", 60*5, s.Coins())
	}
}

func TestMasteryLevels(t *testing.T) {
	tests := []struct {
		counter int
		want    int
	}{
		{0, 0}, {24, 0}, {25, 1}, {49, 1}, {50, 2}, {100, 3}, {250, 3},
	}
	for _, tt := range tests {
		s := NewMemoryStore()
		s.Import(model.Snapshot{ZoneMastery: map[model.ZoneID]int{model.ZoneDeep: tt.counter}})
		if got := s.MasteryLevel(model.ZoneDeep); got != tt.want {
			t.Errorf("counter %d: expected level %d, got %d", tt.counter, tt.want, got)
		}
	}
}

func TestRecordCatch_ReportsMasteryOnce(t *testing.T) {
	s := NewMemoryStore()
	s.Import(model.Snapshot{ZoneMastery: map[model.ZoneID]int{model.ZoneMedium: 23}})
	carp := mustFish(t, "carp")

	if res := s.RecordCatch(carp, model.ZoneMedium, 8); res.MasteryLevel != 0 {
		t.Fatalf("24th catch should not level mastery, got %d", res.MasteryLevel)
	}
	if res := s.RecordCatch(carp, model.ZoneMedium, 8); res.MasteryLevel != 1 {
		t.Fatalf("25th catch should reach mastery 1, got %d", res.MasteryLevel)
	}
	if res := s.RecordCatch(carp, model.ZoneMedium, 8); res.MasteryLevel != 0 {
		t.Fatalf("26th catch should not report again, got %d", res.MasteryLevel)
	}
	if got := s.MasteryBonus(model.ZoneMedium); got != 0.10 {
		t.Errorf("mastery bonus: expected 0.10, got %.2f", got)
	}
}

func TestCollectionBonus(t *testing.T) {
	s := NewMemoryStore()
	koi := mustFish(t, "koi")
	s.Import(model.Snapshot{Collection: map[model.FishID]int{koi.ID: 2}})
	if got := s.CollectionBonus(koi); got != 0 {
		t.Errorf("below first epic threshold: expected 0, got %.2f", got)
	}
	s.RecordCatch(koi, model.ZoneAbyss, 75)
	if got := s.CollectionBonus(koi); got != 0.25 {
		t.Errorf("at 3 catches: expected 0.25, got %.2f", got)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	s.Import(model.Snapshot{Coins: 5000})
	s.Purchase(model.UpgradeZoneMedium)
	s.Purchase(model.UpgradeZoneDeep)
	s.Purchase(model.UpgradeStartLuck)
	for i := 0; i < 30; i++ {
		s.RecordCatch(mustFish(t, "trout"), model.ZoneDeep, 20)
		s.RecordCatch(mustFish(t, "golden"), model.ZoneShallow, 150)
	}

	exported := s.Export()
	other := NewMemoryStore()
	other.Import(exported)
	if got := other.Export(); !reflect.DeepEqual(got, exported) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, exported)
	}
}

func TestImport_SanitizesFields(t *testing.T) {
	s := NewMemoryStore()
	s.Import(model.Snapshot{
		Coins:       -40,
		Collection:  map[model.FishID]int{"minnow": 12, "megalodon": 3, "carp": -2},
		Milestones:  map[model.FishID]int{"pike": 9},
		Upgrades:    map[model.UpgradeID]int{model.UpgradeStartBait: 7, "laser_rod": 1},
		ZoneMastery: map[model.ZoneID]int{"moon": 5, model.ZoneShallow: 3},
	})
	got := s.Export()
	if got.Coins != 0 {
		t.Errorf("coins: expected 0, got %d", got.Coins)
	}
	if _, ok := got.Collection["megalodon"]; ok {
		t.Error("unknown fish kept")
	}
	if _, ok := got.Collection["carp"]; ok {
		t.Error("negative count kept")
	}
	if got.Milestones["minnow"] != 1 {
		t.Errorf("milestone derived from count: expected 1, got %d", got.Milestones["minnow"])
	}
	if got.Milestones["pike"] != 3 {
		t.Errorf("milestone clamp: expected 3, got %d", got.Milestones["pike"])
	}
	if got.Upgrades[model.UpgradeStartBait] != 3 {
		t.Errorf("level clamp: expected 3, got %d", got.Upgrades[model.UpgradeStartBait])
	}
	if len(got.Upgrades) != 1 || len(got.ZoneMastery) != 1 {
		t.Errorf("unknown ids kept: upgrades=%v mastery=%v", got.Upgrades, got.ZoneMastery)
	}
}
