package notifier

import (
	"strings"
	"testing"

	"CozyFishing/internal/engine"
	"CozyFishing/internal/model"
	"CozyFishing/internal/session"
)

func TestFormatEvent_AllTypes(t *testing.T) {
	fish := &model.FishDefinition{ID: "koi", Name: "Koi", Rarity: model.Epic, BaseValue: 75}
	tests := []struct {
		ev   model.Event
		want string
	}{
		{model.Event{Type: model.EventRunStarted}, "New run"},
		{model.Event{Type: model.EventCastStarted, Zone: model.ZoneDeep, Bait: model.BaitLucky}, "Lucky Bait"},
		{model.Event{Type: model.EventBiteOpened, Window: 800}, "800ms"},
		{model.Event{Type: model.EventTensionStarted, Direction: model.Left}, "left"},
		{model.Event{Type: model.EventFishEscaped, Reason: model.EscapeTension}, "snapped"},
		{model.Event{Type: model.EventFishEscaped, Reason: model.EscapeTimeout}, "Too slow"},
		{model.Event{Type: model.EventFishCaught, Fish: fish, Value: 12000}, "12,000"},
		{model.Event{Type: model.EventBaitDropped, Bait: model.BaitDeep}, "Deep Bait"},
		{model.Event{Type: model.EventMilestoneReached, Fish: fish, Tier: 2}, "milestone 2"},
		{model.Event{Type: model.EventMasteryReached, Zone: model.ZoneAbyss, Level: 3}, "mastery level 3"},
		{model.Event{Type: model.EventUpgradePurchased, Upgrade: model.UpgradeRunSpeed, Level: 1, Price: 150}, "Quick Hands"},
		{model.Event{Type: model.EventRunEnded, Summary: &model.RunSummary{FishCaught: 3, CoinsEarned: 40, BestFish: "koi"}}, "Best fish: Koi"},
	}
	for _, tt := range tests {
		t.Run(string(tt.ev.Type), func(t *testing.T) {
			if got := FormatEvent(tt.ev); !strings.Contains(got, tt.want) {
				t.Errorf("FormatEvent(%s) = %q, want substring %q", tt.ev.Type, got, tt.want)
			}
		})
	}
}

func TestFormatJournal_HidesUncaught(t *testing.T) {
	entries := []model.JournalEntry{
		{Fish: "minnow", Name: "Minnow", Rarity: model.Common, Count: 12, Tier: 1, Bonus: 0.10, NextThreshold: 25, Zones: []model.ZoneID{model.ZoneShallow}},
		{Fish: "leviathan", Name: "Leviathan", Rarity: model.Legendary},
	}
	got := FormatJournal(entries)
	if strings.Contains(got, "Leviathan") {
		t.Errorf("uncaught fish revealed: %q", got)
	}
	for _, want := range []string{"1/2", "Minnow", "x12", "+10% value", "next at 25"} {
		if !strings.Contains(got, want) {
			t.Errorf("journal missing %q in %q", want, got)
		}
	}
}

func TestFormatShop(t *testing.T) {
	got := FormatShop([]model.ShopEntry{
		{Upgrade: model.UpgradeZoneMedium, Name: "Medium Access", Level: 1, MaxLevel: 1, Price: 100, Maxed: true},
		{Upgrade: model.UpgradeZoneAbyss, Name: "Abyss Access", MaxLevel: 1, Price: 400},
	}, 1234)
	for _, want := range []string{"1,234 coins", "MAX", "need more"} {
		if !strings.Contains(got, want) {
			t.Errorf("shop missing %q in %q", want, got)
		}
	}
}

func TestFormatStatus(t *testing.T) {
	if got := FormatStatus(engine.Status{}, 0); !strings.Contains(got, "No run active") {
		t.Errorf("unexpected idle status %q", got)
	}
	st := engine.Status{
		RunActive: true,
		State:     model.StateIdle,
		Selected:  model.BaitBasic,
		Baits:     []session.BaitOption{{Bait: model.BaitBasic, Name: "Basic Bait", Count: 4}},
	}
	if got := FormatStatus(st, 10); !strings.Contains(got, "*Basic Bait x4") {
		t.Errorf("selected bait not marked: %q", got)
	}
}
