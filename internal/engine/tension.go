package engine

import (
	"CozyFishing/internal/calculator"
	"CozyFishing/internal/catalog"
	"CozyFishing/internal/model"
)

// Tension contest constants.
const (
	MaxLineHealth   = 100.0
	MatchRecovery   = 15.0
	MismatchPenalty = 25.0
)

// Tension is the directional reaction contest gating deep and abyss catches.
type Tension struct {
	Active   bool            `json:"active"`
	Required model.Direction `json:"required,omitempty"`
	Pull     float64         `json:"pull,omitempty"`
	Health   float64         `json:"health,omitempty"`
}

type tensionOutcome int

const (
	tensionContinue tensionOutcome = iota
	tensionWon
	tensionLost
)

func (e *Engine) startTension(zone model.ZoneID) bool {
	base, ok := catalog.TensionBase(zone)
	if !ok {
		return false
	}
	e.tension = Tension{
		Active:   true,
		Required: e.randomDirection(),
		Pull:     calculator.PullStrength(base, e.prog.MasteryLevel(zone)),
		Health:   MaxLineHealth,
	}
	return true
}

// decayTension runs once per tick while the contest is active.
func (e *Engine) decayTension() tensionOutcome {
	t := &e.tension
	t.Health -= t.Pull
	if t.Health <= 0 {
		t.Health = 0
		return tensionLost
	}
	if e.tuning.ShuffleChance > 0 && e.rng.Float64() < e.tuning.ShuffleChance {
		t.Required = e.randomDirection()
	}
	return tensionContinue
}

// pullLine applies one directional input.
func (e *Engine) pullLine(dir model.Direction) tensionOutcome {
	t := &e.tension
	if dir == t.Required {
		t.Health += MatchRecovery
		if t.Health >= MaxLineHealth {
			t.Health = MaxLineHealth
			return tensionWon
		}
	} else {
		t.Health -= MismatchPenalty
		if t.Health <= 0 {
			t.Health = 0
			return tensionLost
		}
	}
	t.Required = e.randomDirection()
	return tensionContinue
}

func (e *Engine) randomDirection() model.Direction {
	if e.rng.IntN(2) == 0 {
		return model.Left
	}
	return model.Right
}
