package progress

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"CozyFishing/internal/catalog"
	"CozyFishing/internal/model"
)

func sampleSnapshot() model.Snapshot {
	snap := model.NewSnapshot()
	snap.Coins = 321
	snap.Collection["minnow"] = 11
	snap.Milestones["minnow"] = 1
	snap.Upgrades[model.UpgradeZoneMedium] = 1
	snap.ZoneMastery[model.ZoneShallow] = 11
	return snap
}

func TestSaveLoadFile(t *testing.T) {
	for _, name := range []string{"save.json", "save.json.zst"} {
		p := filepath.Join(t.TempDir(), "nested", name)
		want := sampleSnapshot()
		if err := SaveFile(p, want); err != nil {
			t.Fatalf("%s: save: %v", name, err)
		}
		got, err := LoadFile(p)
		if err != nil {
			t.Fatalf("%s: load: %v", name, err)
		}
		got.UpdatedAt = want.UpdatedAt
		if !reflect.DeepEqual(got, want) {
			t.Errorf("%s: expected %+v, got %+v", name, want, got)
		}
	}
}

func TestLoadFile_MissingIsEmpty(t *testing.T) {
	snap, err := LoadFile(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Coins != 0 || len(snap.Collection) != 0 {
		t.Errorf("expected empty snapshot, got %+v", snap)
	}
}

func corruptCopies(t *testing.T, savePath string) []string {
	t.Helper()
	matches, err := filepath.Glob(savePath + ".corrupt-*")
	if err != nil {
		t.Fatal(err)
	}
	return matches
}

func TestNewStore_CorruptSaveFallsBack(t *testing.T) {
	p := filepath.Join(t.TempDir(), "save.json")
	if err := os.WriteFile(p, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	s := NewStore(p)
	if s.Coins() != 0 || s.StartingBaitCount() != 10 {
		t.Errorf("expected defaults, got coins=%d bait=%d", s.Coins(), s.StartingBaitCount())
	}

	kept := corruptCopies(t, p)
	if len(kept) != 1 {
		t.Fatalf("expected the unreadable save moved aside, found %v", kept)
	}
	data, err := os.ReadFile(kept[0])
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "{not json" {
		t.Errorf("moved save lost its bytes: %q", data)
	}
}

func TestNewStore_MistypedFieldKeepsTheRest(t *testing.T) {
	p := filepath.Join(t.TempDir(), "save.json")
	raw := `{"coins":"140","collection":{"minnow":30,"pike":6},"permanentUpgrades":{"zone_medium":1,"zone_deep":1}}`
	if err := os.WriteFile(p, []byte(raw), 0644); err != nil {
		t.Fatal(err)
	}

	s := NewStore(p)
	if s.Coins() != 0 {
		t.Errorf("mistyped coins should default to 0, got %d", s.Coins())
	}
	if s.CatchCount("minnow") != 30 || s.CatchCount("pike") != 6 {
		t.Errorf("collection lost: minnow=%d pike=%d", s.CatchCount("minnow"), s.CatchCount("pike"))
	}
	if !s.IsUnlocked(model.ZoneMedium) || !s.IsUnlocked(model.ZoneDeep) {
		t.Error("unlocks lost")
	}
	if kept := corruptCopies(t, p); len(kept) != 1 {
		t.Errorf("expected the original save moved aside, found %v", kept)
	}

	carp, _ := catalog.FishByID("carp")
	s.RecordCatch(carp, model.ZoneShallow, 8)
	if err := s.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	snap, err := LoadFile(p)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if snap.Collection["minnow"] != 30 || snap.Collection["pike"] != 6 || snap.Collection["carp"] != 1 {
		t.Errorf("rewritten save dropped catches: %v", snap.Collection)
	}
	if snap.Upgrades[model.UpgradeZoneDeep] != 1 || snap.Coins != 8 {
		t.Errorf("rewritten save wrong: coins=%d upgrades=%v", snap.Coins, snap.Upgrades)
	}
}

func TestNewStore_SalvagedSaveIsRewritten(t *testing.T) {
	p := filepath.Join(t.TempDir(), "save.json")
	if err := os.WriteFile(p, []byte(`{"coins":55,"zoneMastery":"lots"}`), 0644); err != nil {
		t.Fatal(err)
	}
	s := NewStore(p)
	if err := s.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	snap, err := LoadFile(p)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if snap.Coins != 55 {
		t.Errorf("salvaged coins not written back, got %d", snap.Coins)
	}
}

func TestDecode_FieldByField(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		coins   int
		minnow  int
		badKeys []string
	}{
		{"clean", `{"coins":5,"collection":{"minnow":2}}`, 5, 2, nil},
		{"mistyped coins", `{"coins":"5","collection":{"minnow":2}}`, 0, 2, []string{"coins"}},
		{"mistyped map", `{"coins":5,"collection":[1,2]}`, 5, 0, []string{"collection"}},
		{"null map", `{"coins":5,"collection":null}`, 5, 0, nil},
		{"bad timestamp", `{"coins":5,"updatedAt":"yesterday"}`, 5, 0, []string{"updatedAt"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap, err := Decode([]byte(tt.raw))
			var fe *FieldError
			if len(tt.badKeys) == 0 {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
			} else if !errors.As(err, &fe) || !reflect.DeepEqual(fe.Fields, tt.badKeys) {
				t.Fatalf("expected field error for %v, got %v", tt.badKeys, err)
			}
			if snap.Coins != tt.coins || snap.Collection["minnow"] != tt.minnow {
				t.Errorf("coins=%d minnow=%d, want %d %d", snap.Coins, snap.Collection["minnow"], tt.coins, tt.minnow)
			}
			if snap.Collection == nil || snap.ZoneMastery == nil {
				t.Error("maps must stay allocated")
			}
		})
	}
}

func TestDecode_LegacyBrowserSave(t *testing.T) {
	legacy := []byte(`{"coins":140,"collection":{"minnow":3,"carp":1},"unlockedZones":["shallow","medium"],"permanentUpgrades":{"zone_medium":1}}`)
	snap, err := Decode(legacy)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	s := NewMemoryStore()
	s.Import(snap)
	if s.Coins() != 140 || s.CatchCount("minnow") != 3 {
		t.Errorf("legacy fields not applied: coins=%d minnow=%d", s.Coins(), s.CatchCount("minnow"))
	}
	if !s.IsUnlocked(model.ZoneMedium) {
		t.Error("expected medium unlocked from legacy upgrades")
	}
	if s.MasteryCount(model.ZoneShallow) != 0 {
		t.Error("expected absent zone mastery to default to zero")
	}
}

func TestFlush_WritesOnlyWhenDirty(t *testing.T) {
	p := filepath.Join(t.TempDir(), "save.json")
	s := NewStore(p)
	if err := s.Flush(); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(p); !os.IsNotExist(err) {
		t.Fatalf("clean store should not write, stat err=%v", err)
	}
	s.Import(sampleSnapshot())
	if err := s.Flush(); err != nil {
		t.Fatal(err)
	}
	reloaded := NewStore(p)
	if !reflect.DeepEqual(reloaded.Export(), s.Export()) {
		t.Errorf("reloaded state differs")
	}
}

func TestBackup_PrunesOldest(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"save-20000101-000000.000.json.zst", "save-20000102-000000.000.json.zst", "save-20000103-000000.000.json.zst"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	p, err := Backup(dir, sampleSnapshot(), 2)
	if err != nil {
		t.Fatalf("backup: %v", err)
	}
	matches, _ := filepath.Glob(filepath.Join(dir, "save-*.json.zst"))
	if len(matches) != 2 {
		t.Fatalf("expected 2 backups after prune, got %d: %v", len(matches), matches)
	}
	got, err := LoadFile(p)
	if err != nil {
		t.Fatalf("load backup: %v", err)
	}
	if got.Coins != 321 {
		t.Errorf("backup coins: expected 321, got %d", got.Coins)
	}
}

func TestEncode_MatchesSchema(t *testing.T) {
	schema, err := jsonschema.Compile(filepath.Join("..", "..", "schemas", "save.schema.json"))
	if err != nil {
		t.Fatalf("compile schema: %v", err)
	}

	s := NewMemoryStore()
	s.Import(sampleSnapshot())
	data, err := Encode(s.Export())
	if err != nil {
		t.Fatal(err)
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatal(err)
	}
	if err := schema.Validate(doc); err != nil {
		t.Errorf("encoded save does not match schema: %v", err)
	}

	empty, _ := Encode(model.NewSnapshot())
	_ = json.Unmarshal(empty, &doc)
	if err := schema.Validate(doc); err != nil {
		t.Errorf("empty save does not match schema: %v", err)
	}
}
