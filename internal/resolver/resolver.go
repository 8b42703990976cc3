// Package resolver decides what bites: the rarity roll, the fish picked from
// the zone's pool, its coin value and the post-catch bait drop.
package resolver

import (
	"CozyFishing/internal/calculator"
	"CozyFishing/internal/catalog"
	"CozyFishing/internal/model"
)

// DefaultCutPoints split a luck-adjusted roll into the five rarity tiers.
// Luck has no cap: a high enough roll always lands in the rarest tier.
var DefaultCutPoints = []float64{0.35, 0.65, 0.85, 0.95}

// RNG is the randomness the resolver draws from. *rand.Rand satisfies it.
type RNG interface {
	Float64() float64
	IntN(n int) int
}

// Modifiers are the progression-derived inputs of a catch.
type Modifiers interface {
	EffectiveLuck() float64
	CollectionBonus(f *model.FishDefinition) float64
}

// Catch is the outcome of one resolution.
type Catch struct {
	Fish   *model.FishDefinition
	Tier   model.Rarity // rolled tier; Fish.Rarity differs when the pool fell back
	Roll   float64
	Luck   float64
	Bonus  float64
	Value  int
	Golden bool
}

// Resolver turns a zone, bait and player modifiers into a catch.
type Resolver struct {
	cuts []float64
	rng  RNG
}

// New returns a Resolver; nil or empty cuts use DefaultCutPoints.
func New(rng RNG, cuts []float64) *Resolver {
	if len(cuts) == 0 {
		cuts = DefaultCutPoints
	}
	return &Resolver{cuts: append([]float64(nil), cuts...), rng: rng}
}

// MapRarity maps a roll onto a tier.
func MapRarity(cuts []float64, roll float64) model.Rarity {
	i := calculator.BandIndex(cuts, roll)
	if i >= len(model.Rarities) {
		i = len(model.Rarities) - 1
	}
	return model.Rarities[i]
}

// Luck sums upgrade luck, the zone's modifier and the luck bait bonus.
func Luck(mods Modifiers, zone model.ZoneID, bait model.BaitID) float64 {
	luck := mods.EffectiveLuck()
	if z, ok := catalog.ZoneByID(zone); ok {
		luck += z.LuckMod
	}
	if catalog.BaitEffect(bait) == model.EffectLuck {
		luck += catalog.LuckBaitBonus
	}
	return luck
}

// Resolve picks a fish for the zone. ok is false only for a zone without fish.
func (r *Resolver) Resolve(zone model.ZoneID, bait model.BaitID, mods Modifiers) (Catch, bool) {
	zonePool := catalog.FishInZone(zone)
	if len(zonePool) == 0 {
		return Catch{}, false
	}

	luck := Luck(mods, zone, bait)
	roll := r.rng.Float64() + luck
	tier := MapRarity(r.cuts, roll)

	pool := make([]*model.FishDefinition, 0, len(zonePool))
	for _, f := range zonePool {
		if f.Rarity == tier {
			pool = append(pool, f)
		}
	}
	if len(pool) == 0 {
		pool = zonePool
	}
	fish := pool[r.rng.IntN(len(pool))]

	bonus := mods.CollectionBonus(fish)
	golden := catalog.BaitEffect(bait) == model.EffectValueBonus
	return Catch{
		Fish:   fish,
		Tier:   tier,
		Roll:   roll,
		Luck:   luck,
		Bonus:  bonus,
		Value:  calculator.Payout(fish.BaseValue, bonus, golden),
		Golden: golden,
	}, true
}

// RollDrop makes the single post-catch bait drop roll. At most one bait drops.
func (r *Resolver) RollDrop() (model.BaitID, bool) {
	ids, weights := catalog.DropTable()
	i := calculator.PickCumulative(weights, r.rng.Float64())
	if i < 0 {
		return "", false
	}
	return ids[i], true
}
