package progress

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/klauspost/compress/zstd"

	"CozyFishing/internal/model"
)

const compressedExt = ".zst"

// LoadFile reads a snapshot from a JSON file, zstd-compressed when the name
// ends in .zst. A missing file yields an empty snapshot and no error.
func LoadFile(filePath string) (model.Snapshot, error) {
	if filePath == "" {
		return model.NewSnapshot(), nil
	}
	f, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return model.NewSnapshot(), nil
		}
		return model.Snapshot{}, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(filePath, compressedExt) {
		dec, err := zstd.NewReader(f)
		if err != nil {
			return model.Snapshot{}, fmt.Errorf("open zstd: %w", err)
		}
		defer dec.Close()
		r = dec
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("read save: %w", err)
	}
	return Decode(data)
}

// FieldError reports save fields that could not be decoded. The snapshot
// returned alongside it still holds every field that did decode.
type FieldError struct {
	Fields []string
	Err    error // first decode failure
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("save fields %s: %v", strings.Join(e.Fields, ", "), e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// Decode parses a snapshot one top-level field at a time, so a mistyped
// field only loses itself. Absent fields stay at their zero value. A
// *FieldError is returned with the salvaged snapshot when some fields failed.
func Decode(data []byte) (model.Snapshot, error) {
	snap := model.NewSnapshot()
	if len(bytes.TrimSpace(data)) == 0 {
		return snap, nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return model.NewSnapshot(), fmt.Errorf("parse save: %w", err)
	}

	var fe FieldError
	field := func(key string, dst any) {
		raw, ok := fields[key]
		if !ok {
			return
		}
		// Maps keep the entries that decoded before a mistyped one.
		if err := json.Unmarshal(raw, dst); err != nil {
			fe.Fields = append(fe.Fields, key)
			if fe.Err == nil {
				fe.Err = err
			}
		}
	}
	field("version", &snap.Version)
	field("coins", &snap.Coins)
	field("collection", &snap.Collection)
	field("milestones", &snap.Milestones)
	field("permanentUpgrades", &snap.Upgrades)
	field("zoneMastery", &snap.ZoneMastery)
	field("updatedAt", &snap.UpdatedAt)

	// A JSON null clears a map; put the empty maps back.
	if snap.Collection == nil {
		snap.Collection = map[model.FishID]int{}
	}
	if snap.Milestones == nil {
		snap.Milestones = map[model.FishID]int{}
	}
	if snap.Upgrades == nil {
		snap.Upgrades = map[model.UpgradeID]int{}
	}
	if snap.ZoneMastery == nil {
		snap.ZoneMastery = map[model.ZoneID]int{}
	}

	if len(fe.Fields) > 0 {
		return snap, &fe
	}
	return snap, nil
}

// Quarantine renames an unusable save aside so a later write cannot
// overwrite it. It returns the new path.
func Quarantine(filePath string) (string, error) {
	dst := fmt.Sprintf("%s.corrupt-%s", filePath, time.Now().UTC().Format("20060102-150405.000"))
	if err := os.Rename(filePath, dst); err != nil {
		return "", fmt.Errorf("quarantine save: %w", err)
	}
	return dst, nil
}

// Encode renders a snapshot as indented JSON.
func Encode(snap model.Snapshot) ([]byte, error) {
	snap.UpdatedAt = time.Now().UTC()
	return json.MarshalIndent(snap, "", "  ")
}

// SaveFile writes the snapshot through a temp file and rename so a crash never
// leaves a truncated save behind.
func SaveFile(filePath string, snap model.Snapshot) error {
	data, err := Encode(snap)
	if err != nil {
		return fmt.Errorf("encode save: %w", err)
	}
	if strings.HasSuffix(filePath, compressedExt) {
		if data, err = compress(data); err != nil {
			return err
		}
	}
	if dir := filepath.Dir(filePath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create save dir: %w", err)
		}
	}
	tmp := filePath + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write save: %w", err)
	}
	if err := os.Rename(tmp, filePath); err != nil {
		return fmt.Errorf("replace save: %w", err)
	}
	return nil
}

// Backup writes a timestamped compressed copy of snap into dir and prunes all
// but the newest keep backups. It returns the written path.
func Backup(dir string, snap model.Snapshot, keep int) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create backup dir: %w", err)
	}
	name := fmt.Sprintf("save-%s.json%s", time.Now().UTC().Format("20060102-150405.000"), compressedExt)
	p := filepath.Join(dir, name)
	if err := SaveFile(p, snap); err != nil {
		return "", err
	}
	if keep > 0 {
		if err := prune(dir, keep); err != nil {
			return p, err
		}
	}
	return p, nil
}

func prune(dir string, keep int) error {
	matches, err := filepath.Glob(filepath.Join(dir, "save-*.json"+compressedExt))
	if err != nil {
		return err
	}
	if len(matches) <= keep {
		return nil
	}
	// Names embed a sortable timestamp.
	sort.Strings(matches)
	for _, old := range matches[:len(matches)-keep] {
		if err := os.Remove(old); err != nil {
			return fmt.Errorf("prune backup: %w", err)
		}
	}
	return nil
}

func compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	enc, err := zstd.NewWriter(&buf, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("open zstd: %w", err)
	}
	if _, err := enc.Write(data); err != nil {
		enc.Close()
		return nil, fmt.Errorf("compress save: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("compress save: %w", err)
	}
	return buf.Bytes(), nil
}
