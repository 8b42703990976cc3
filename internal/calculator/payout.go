package calculator

import "math"

// ValueBaitMultiplier applies on top of the collection bonus.
const ValueBaitMultiplier = 1.5

// floorEps absorbs binary float error such as 20*1.15 == 22.999999999999996.
const floorEps = 1e-9

// Payout computes the coin value of a catch. Flooring happens after each
// multiplication, never before.
func Payout(baseValue int, collectionBonus float64, valueBait bool) int {
	if baseValue <= 0 {
		return 0
	}
	if collectionBonus < 0 {
		collectionBonus = 0
	}
	v := floor(float64(baseValue) * (1 + collectionBonus))
	if valueBait {
		v = floor(float64(v) * ValueBaitMultiplier)
	}
	return v
}

func floor(x float64) int {
	return int(math.Floor(x + floorEps))
}
