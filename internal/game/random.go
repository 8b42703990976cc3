package game

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
	"time"
)

// seededRNG returns a deterministic PCG source. A zero seed draws one from the clock.
func seededRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(seedWord(seed, "cast"), seedWord(seed, "catch")))
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}
