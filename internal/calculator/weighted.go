package calculator

// PickCumulative walks weights in order, accumulating a running total, and
// returns the index of the first entry whose total exceeds roll. Weights need
// not sum to 1; a roll at or past the total returns -1 (nothing picked).
func PickCumulative(weights []float64, roll float64) int {
	total := 0.0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		total += w
		if roll < total {
			return i
		}
	}
	return -1
}

// BandIndex maps v onto the bands delimited by ascending cut points and
// returns how many cuts v lies strictly above. A value equal to a cut stays in
// the lower band; anything above the last cut returns len(cuts).
func BandIndex(cuts []float64, v float64) int {
	n := 0
	for _, c := range cuts {
		if v > c {
			n++
			continue
		}
		break
	}
	return n
}

// StepLevel returns how many ascending thresholds count has reached.
func StepLevel(thresholds []int, count int) int {
	level := 0
	for _, t := range thresholds {
		if count < t {
			break
		}
		level++
	}
	return level
}
