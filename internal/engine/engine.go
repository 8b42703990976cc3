// Package engine runs the cast-to-catch cycle: casting, the bite window, the
// tension contest, catch resolution and run completion. It is driven by a
// single owner that feeds inputs and advances simulated time; it is not safe
// for concurrent use.
package engine

import (
	"CozyFishing/internal/calculator"
	"CozyFishing/internal/catalog"
	"CozyFishing/internal/model"
	"CozyFishing/internal/progress"
	"CozyFishing/internal/resolver"
	"CozyFishing/internal/session"
)

// Progression is the persistent player state the engine reads and updates.
type Progression interface {
	resolver.Modifiers
	EffectiveSpeed() float64
	StartingBaitCount() int
	IsUnlocked(z model.ZoneID) bool
	MasteryLevel(z model.ZoneID) int
	MasteryBonus(z model.ZoneID) float64
	RecordCatch(f *model.FishDefinition, zone model.ZoneID, value int) progress.CatchProgress
}

// CastContext lives for one cycle, from cast to resolution.
type CastContext struct {
	Zone          model.ZoneID `json:"zone"`
	Bait          model.BaitID `json:"bait"`
	WaitDuration  float64      `json:"waitMs"`
	CatchDuration float64      `json:"catchMs"`
}

// Status is a read-only view for UI collaborators.
type Status struct {
	RunActive bool                 `json:"runActive"`
	RunID     string               `json:"runId,omitempty"`
	State     model.FishingState   `json:"state"`
	CanCatch  bool                 `json:"canCatch"`
	Cast      *CastContext         `json:"cast,omitempty"`
	Tension   Tension              `json:"tension"`
	BasicBait int                  `json:"basicBait"`
	Selected  model.BaitID         `json:"selected,omitempty"`
	Baits     []session.BaitOption `json:"baits,omitempty"`
	Caught    int                  `json:"caught"`
	Earned    int                  `json:"earned"`
	Now       float64              `json:"now"`
}

// Engine is the fishing state machine.
type Engine struct {
	tuning   Tuning
	rng      resolver.RNG
	resolver *resolver.Resolver
	prog     Progression
	sink     model.Sink

	run      *session.Run
	state    model.FishingState
	canCatch bool
	cast     *CastContext
	tension  Tension

	now     float64 // simulated milliseconds
	pending float64 // time not yet consumed by a whole tick
	epoch   uint64
	timers  timerQueue
}

// New builds an idle engine with no active run.
func New(tuning Tuning, rng resolver.RNG, prog Progression, sink model.Sink) *Engine {
	tuning = tuning.WithDefaults()
	if sink == nil {
		sink = model.SinkFunc(func(model.Event) {})
	}
	return &Engine{
		tuning:   tuning,
		rng:      rng,
		resolver: resolver.New(rng, tuning.CutPoints),
		prog:     prog,
		sink:     sink,
		state:    model.StateIdle,
	}
}

// StartRun begins a run with the player's starting bait. No-op while a run is active.
func (e *Engine) StartRun() bool {
	if e.run != nil {
		return false
	}
	e.run = session.New(e.prog.StartingBaitCount())
	e.reset()
	e.emit(model.Event{Type: model.EventRunStarted})
	return true
}

// EndRun stops the active run, discarding any cycle in progress.
func (e *Engine) EndRun() (model.RunSummary, bool) {
	if e.run == nil {
		return model.RunSummary{}, false
	}
	sum := e.run.Summary()
	e.emit(model.Event{Type: model.EventRunEnded, Summary: &sum})
	e.run = nil
	e.reset()
	e.timers.clear()
	return sum, true
}

// SelectBait changes the bait for the next cast. Only allowed while idle.
func (e *Engine) SelectBait(id model.BaitID) bool {
	if e.run == nil || e.state != model.StateIdle {
		return false
	}
	return e.run.Select(id)
}

// AttemptCast casts into zone. Missing bait or a locked zone is a silent no-op.
func (e *Engine) AttemptCast(zone model.ZoneID) bool {
	if e.run == nil || e.state != model.StateIdle {
		return false
	}
	z, ok := catalog.ZoneByID(zone)
	if !ok {
		return false
	}
	if !e.prog.IsUnlocked(zone) && !e.run.SelectedHas(model.EffectZoneBypass) {
		return false
	}
	if !e.run.CanCast() {
		return false
	}
	bait, ok := e.run.Consume()
	if !ok {
		return false
	}

	base := calculator.WaitBaseMin + e.rng.Float64()*calculator.WaitBaseSpread
	window := calculator.CatchDuration(
		e.prog.EffectiveSpeed(),
		e.prog.MasteryBonus(zone),
		z.Difficulty,
		catalog.BaitEffect(bait) == model.EffectSpeed,
	)
	e.cast = &CastContext{
		Zone:          zone,
		Bait:          bait,
		WaitDuration:  calculator.WaitDuration(base, z.Difficulty),
		CatchDuration: window,
	}
	e.transition(model.StateWaiting)
	e.emit(model.Event{Type: model.EventCastStarted, Zone: zone, Bait: bait})
	e.after(e.cast.WaitDuration, e.openBite)
	return true
}

// CastAtDepth classifies a normalized depth and casts there.
func (e *Engine) CastAtDepth(ratio float64) bool {
	return e.AttemptCast(catalog.ZoneForDepth(ratio))
}

// PlayerAction is the generic click: hook, too-early reset or dismiss.
func (e *Engine) PlayerAction() {
	if e.run == nil {
		return
	}
	switch e.state {
	case model.StateWaiting:
		if !e.canCatch {
			e.transition(model.StateIdle)
			e.endIfExhausted()
			return
		}
		if e.tension.Active {
			return
		}
		e.resolveCatch()
	case model.StateReeling:
		e.transition(model.StateIdle)
	}
}

// TensionInput feeds one direction into an active tension contest.
func (e *Engine) TensionInput(dir model.Direction) {
	if e.run == nil || e.state != model.StateWaiting || !e.canCatch || !e.tension.Active || !dir.Valid() {
		return
	}
	switch e.pullLine(dir) {
	case tensionWon:
		e.tension.Active = false
		e.emit(model.Event{Type: model.EventTensionWon, Zone: e.cast.Zone})
		e.resolveCatch()
	case tensionLost:
		e.escape(model.EscapeTension)
	}
}

// Advance moves simulated time forward in whole ticks. Timers and tension
// decay of every tick run before the caller applies its next input.
func (e *Engine) Advance(ms float64) {
	if ms <= 0 {
		return
	}
	e.pending += ms
	for e.pending >= e.tuning.TickMillis {
		e.pending -= e.tuning.TickMillis
		e.step()
	}
}

func (e *Engine) step() {
	e.now += e.tuning.TickMillis
	for {
		t, ok := e.timers.popDue(e.now)
		if !ok {
			break
		}
		if t.epoch != e.epoch {
			continue
		}
		t.fn()
	}
	if e.tension.Active && e.state == model.StateWaiting {
		if e.decayTension() == tensionLost {
			e.escape(model.EscapeTension)
		}
	}
}

func (e *Engine) openBite() {
	if e.state != model.StateWaiting || e.cast == nil {
		return
	}
	e.canCatch = true
	e.emit(model.Event{Type: model.EventBiteOpened, Zone: e.cast.Zone, Window: e.cast.CatchDuration})
	e.after(e.cast.CatchDuration, func() { e.escape(model.EscapeTimeout) })
	if e.cast.Zone.HasTension() && e.startTension(e.cast.Zone) {
		e.emit(model.Event{Type: model.EventTensionStarted, Zone: e.cast.Zone, Direction: e.tension.Required})
	}
}

func (e *Engine) escape(reason model.EscapeReason) {
	if e.state != model.StateWaiting {
		return
	}
	zone := e.cast.Zone
	e.transition(model.StateIdle)
	e.emit(model.Event{Type: model.EventFishEscaped, Zone: zone, Reason: reason})
	e.endIfExhausted()
}

func (e *Engine) resolveCatch() {
	cast := e.cast
	e.transition(model.StateReeling)

	c, ok := e.resolver.Resolve(cast.Zone, cast.Bait, e.prog)
	if !ok {
		e.transition(model.StateIdle)
		return
	}
	prog := e.prog.RecordCatch(c.Fish, cast.Zone, c.Value)
	e.run.RecordCatch(c.Fish, c.Value)

	e.emit(model.Event{Type: model.EventFishCaught, Zone: cast.Zone, Bait: cast.Bait, Fish: c.Fish, Value: c.Value})
	if prog.MilestoneTier > 0 {
		e.emit(model.Event{Type: model.EventMilestoneReached, Fish: c.Fish, Tier: prog.MilestoneTier})
	}
	if prog.MasteryLevel > 0 {
		e.emit(model.Event{Type: model.EventMasteryReached, Zone: cast.Zone, Level: prog.MasteryLevel})
	}
	if bait, dropped := e.resolver.RollDrop(); dropped {
		e.run.AddBait(bait)
		e.emit(model.Event{Type: model.EventBaitDropped, Bait: bait})
	}

	if e.run.Exhausted() {
		e.EndRun()
		return
	}
	e.after(e.tuning.ReelDelay, func() { e.transition(model.StateIdle) })
}

func (e *Engine) endIfExhausted() {
	if e.run != nil && e.state == model.StateIdle && e.run.Exhausted() {
		e.EndRun()
	}
}

// transition enters a state and starts a new epoch, invalidating every
// timer scheduled before it.
func (e *Engine) transition(s model.FishingState) {
	e.state = s
	e.epoch++
	e.canCatch = false
	e.tension = Tension{}
	if s == model.StateIdle {
		e.cast = nil
	}
}

func (e *Engine) reset() {
	e.transition(model.StateIdle)
}

func (e *Engine) after(delay float64, fn func()) {
	e.timers.schedule(e.now+delay, e.epoch, fn)
}

func (e *Engine) emit(ev model.Event) {
	if e.run != nil && ev.RunID == "" {
		ev.RunID = e.run.ID
	}
	e.sink.Publish(ev)
}

// State returns the current cycle state.
func (e *Engine) State() model.FishingState { return e.state }

// CanCatch reports whether the bite window is open.
func (e *Engine) CanCatch() bool { return e.canCatch }

// RunActive reports whether a run is in progress.
func (e *Engine) RunActive() bool { return e.run != nil }

// Run exposes the active run session, nil between runs.
func (e *Engine) Run() *session.Run { return e.run }

// Tension returns the contest state.
func (e *Engine) Tension() Tension { return e.tension }

// Now returns simulated milliseconds since the engine was created.
func (e *Engine) Now() float64 { return e.now }

// Status snapshots the engine for display.
func (e *Engine) Status() Status {
	st := Status{
		State:    e.state,
		CanCatch: e.canCatch,
		Tension:  e.tension,
		Now:      e.now,
	}
	if e.cast != nil {
		c := *e.cast
		st.Cast = &c
	}
	if e.run != nil {
		st.RunActive = true
		st.RunID = e.run.ID
		st.BasicBait = e.run.BasicBait
		st.Selected = e.run.Selected
		st.Baits = e.run.Options()
		st.Caught = e.run.Stats.FishCaught
		st.Earned = e.run.Stats.CoinsEarned
	}
	return st
}
