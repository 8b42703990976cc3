package engine

import "CozyFishing/internal/resolver"

// Tuning holds the engine's timing constants. Durations are milliseconds of
// simulated time.
type Tuning struct {
	TickMillis    float64   // fixed simulation step
	ReelDelay     float64   // catch display time before returning to idle
	ShuffleChance float64   // per-tick chance the tension direction flips on its own
	CutPoints     []float64 // rarity roll cut points
}

// DefaultTuning matches the original game's feel.
func DefaultTuning() Tuning {
	return Tuning{
		TickMillis:    16,
		ReelDelay:     1500,
		ShuffleChance: 0.02,
		CutPoints:     resolver.DefaultCutPoints,
	}
}

// WithDefaults fills each unset field from DefaultTuning.
func (t Tuning) WithDefaults() Tuning {
	d := DefaultTuning()
	if t.TickMillis <= 0 {
		t.TickMillis = d.TickMillis
	}
	if t.ReelDelay <= 0 {
		t.ReelDelay = d.ReelDelay
	}
	if t.ShuffleChance < 0 {
		t.ShuffleChance = 0
	}
	if len(t.CutPoints) == 0 {
		t.CutPoints = d.CutPoints
	}
	return t
}
