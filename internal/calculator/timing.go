package calculator

import "math"

// Base timings in milliseconds.
const (
	WaitBaseMin     = 1500.0
	WaitBaseSpread  = 3000.0
	CatchWindowBase = 800.0
	SpeedBaitFactor = 1.3
	MinPullStrength = 0.2
	PullPerMastery  = 0.15
)

// WaitDuration scales a randomized base wait down as zone difficulty rises.
func WaitDuration(base, difficulty float64) float64 {
	return base / (1 + difficulty*0.2)
}

// CatchDuration is the bite window length for a cast.
func CatchDuration(speed, masteryBonus, difficulty float64, speedBait bool) float64 {
	if speed <= 0 {
		speed = 1
	}
	d := (CatchWindowBase / speed) * (1 + masteryBonus)
	if speedBait {
		d *= SpeedBaitFactor
	}
	if difficulty > 0 {
		d /= difficulty
	}
	return d
}

// PullStrength is the per-tick line health decay of a tension contest.
func PullStrength(base float64, masteryLevel int) float64 {
	return math.Max(MinPullStrength, base-float64(masteryLevel)*PullPerMastery)
}
