package session

import (
	"testing"

	"CozyFishing/internal/catalog"
	"CozyFishing/internal/model"
)

func TestConsume_PrefersSpecialThenFallsBack(t *testing.T) {
	r := New(2)
	r.AddBait(model.BaitLucky)
	if !r.Select(model.BaitLucky) {
		t.Fatal("expected lucky bait to be selectable")
	}

	got, ok := r.Consume()
	if !ok || got != model.BaitLucky {
		t.Fatalf("first cast: expected lucky, got %q ok=%v", got, ok)
	}
	if r.Selected != model.BaitBasic {
		t.Errorf("expected selection to fall back to basic, got %s", r.Selected)
	}
	if r.BasicBait != 2 {
		t.Errorf("basic bait should be untouched, got %d", r.BasicBait)
	}

	got, ok = r.Consume()
	if !ok || got != model.BaitBasic {
		t.Fatalf("second cast: expected basic, got %q ok=%v", got, ok)
	}
	if r.BasicBait != 1 {
		t.Errorf("expected 1 basic bait left, got %d", r.BasicBait)
	}
}

func TestConsume_SpecialOnlyRun(t *testing.T) {
	r := New(0)
	if r.CanCast() {
		t.Fatal("no bait selected with stock, cast should be impossible")
	}
	r.AddBait(model.BaitQuick)
	r.Select(model.BaitQuick)
	if !r.CanCast() {
		t.Fatal("expected cast possible with quick bait selected")
	}
	if got, ok := r.Consume(); !ok || got != model.BaitQuick {
		t.Fatalf("expected quick, got %q ok=%v", got, ok)
	}
	if _, ok := r.Consume(); ok {
		t.Fatal("expected no bait left")
	}
	if !r.Exhausted() {
		t.Error("expected run to be exhausted")
	}
}

func TestSelect_RejectsEmptyAndUnknown(t *testing.T) {
	r := New(5)
	if r.Select(model.BaitGolden) {
		t.Error("selected a bait with no stock")
	}
	if r.Select("worm") {
		t.Error("selected an unknown bait")
	}
	if r.Selected != model.BaitBasic {
		t.Errorf("selection changed to %s", r.Selected)
	}
}

func TestSelectedHas(t *testing.T) {
	r := New(1)
	r.AddBait(model.BaitDeep)
	if r.SelectedHas(model.EffectZoneBypass) {
		t.Error("basic selected, bypass must not apply")
	}
	r.Select(model.BaitDeep)
	if !r.SelectedHas(model.EffectZoneBypass) {
		t.Error("deep bait selected, bypass should apply")
	}
	if r.SelectedHas(model.EffectLuck) {
		t.Error("deep bait is not a luck bait")
	}
}

func TestRecordCatchAndSummary(t *testing.T) {
	r := New(3)
	carp, _ := catalog.FishByID("carp")
	minnow, _ := catalog.FishByID("minnow")
	r.RecordCatch(minnow, 5)
	r.RecordCatch(carp, 12)
	r.RecordCatch(minnow, 5)
	r.AddBait(model.BaitGolden)

	sum := r.Summary()
	if sum.FishCaught != 3 || sum.CoinsEarned != 22 {
		t.Errorf("unexpected totals %+v", sum)
	}
	if sum.BestFish != "carp" {
		t.Errorf("best fish: expected carp, got %s", sum.BestFish)
	}
	if sum.Inventory[model.BaitGolden] != 1 || sum.BaitLeft != 3 {
		t.Errorf("unexpected leftovers %+v", sum)
	}
	if sum.RunID == "" || sum.RunID != r.ID {
		t.Errorf("summary run id %q does not match %q", sum.RunID, r.ID)
	}
}

func TestOptions(t *testing.T) {
	r := New(4)
	r.AddBait(model.BaitGolden)
	r.AddBait(model.BaitLucky)
	r.AddBait(model.BaitLucky)
	opts := r.Options()
	if len(opts) != 3 {
		t.Fatalf("expected 3 options, got %d", len(opts))
	}
	if opts[0].Bait != model.BaitBasic || opts[0].Count != 4 {
		t.Errorf("first option: %+v", opts[0])
	}
	if opts[1].Bait != model.BaitLucky || opts[1].Count != 2 {
		t.Errorf("second option: %+v", opts[1])
	}
}
