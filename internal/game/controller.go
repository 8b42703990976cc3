// Package game owns the fishing engine and serializes every input, timer
// tick and query through a single loop goroutine.
package game

import (
	"context"
	"log"
	"time"

	"CozyFishing/internal/catalog"
	"CozyFishing/internal/engine"
	"CozyFishing/internal/model"
	"CozyFishing/internal/progress"
	"CozyFishing/internal/recorder"
	"CozyFishing/internal/resolver"
)

// Options configures a Controller. Zero values fall back to defaults.
type Options struct {
	Tuning   engine.Tuning
	Seed     int64        // ignored when RNG is set
	RNG      resolver.RNG // overrides the seeded PCG source
	Recorder recorder.Recorder
	Sinks    []model.Sink
	Now      func() time.Time
}

// View is the state pushed to UI clients.
type View struct {
	Status   engine.Status  `json:"status"`
	Coins    int            `json:"coins"`
	Unlocked []model.ZoneID `json:"unlocked"`
}

// Controller drives one player's game.
type Controller struct {
	store *progress.Store
	eng   *engine.Engine
	rec   recorder.Recorder
	sinks []model.Sink

	reqs    chan func()
	stopped chan struct{}
	now     func() time.Time
	last    time.Time
	tick    time.Duration
}

// New builds a controller around store. Call Run to start the loop.
func New(store *progress.Store, opts Options) *Controller {
	tuning := opts.Tuning.WithDefaults()
	rng := opts.RNG
	if rng == nil {
		rng = seededRNG(opts.Seed)
	}
	rec := opts.Recorder
	if rec == nil {
		rec = recorder.NewNoopRecorder()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	c := &Controller{
		store:   store,
		rec:     rec,
		sinks:   opts.Sinks,
		reqs:    make(chan func()),
		stopped: make(chan struct{}),
		now:     now,
		tick:    time.Duration(tuning.TickMillis * float64(time.Millisecond)),
	}
	c.eng = engine.New(tuning, rng, store, model.SinkFunc(c.publish))
	c.last = now()
	return c
}

// Run processes requests and advances the clock until ctx is cancelled.
// An active run is ended and progress flushed on the way out.
func (c *Controller) Run(ctx context.Context) {
	defer close(c.stopped)
	ticker := time.NewTicker(c.tick)
	defer ticker.Stop()

	log.Println("[INFO] game loop started")
	for {
		select {
		case <-ctx.Done():
			c.sync()
			if sum, ok := c.eng.EndRun(); ok {
				log.Printf("[INFO] run %s ended by shutdown", sum.RunID)
			}
			if err := c.store.Flush(); err != nil {
				log.Printf("[ERROR] save on shutdown: %v", err)
			}
			log.Println("[INFO] game loop stopped")
			return
		case <-ticker.C:
			c.sync()
		case fn := <-c.reqs:
			c.sync()
			fn()
		}
	}
}

// Do runs fn on the loop goroutine after the clock has caught up with now.
// It reports false when the loop has stopped.
func (c *Controller) Do(fn func()) bool {
	done := make(chan struct{})
	select {
	case c.reqs <- func() { defer close(done); fn() }:
	case <-c.stopped:
		return false
	}
	<-done
	return true
}

func (c *Controller) sync() {
	t := c.now()
	elapsed := t.Sub(c.last)
	c.last = t
	if elapsed > 0 {
		c.eng.Advance(float64(elapsed) / float64(time.Millisecond))
	}
}

// StartRun begins a run unless one is active.
func (c *Controller) StartRun() (ok bool) {
	c.Do(func() { ok = c.eng.StartRun() })
	return ok
}

// EndRun ends the active run and returns its summary.
func (c *Controller) EndRun() (sum model.RunSummary, ok bool) {
	c.Do(func() { sum, ok = c.eng.EndRun() })
	return sum, ok
}

// Cast casts into a zone.
func (c *Controller) Cast(zone model.ZoneID) (ok bool) {
	c.Do(func() { ok = c.eng.AttemptCast(zone) })
	return ok
}

// CastAtDepth casts at a normalized depth in [0, 1].
func (c *Controller) CastAtDepth(ratio float64) (ok bool) {
	c.Do(func() { ok = c.eng.CastAtDepth(ratio) })
	return ok
}

// Action is the generic hook / dismiss input.
func (c *Controller) Action() {
	c.Do(c.eng.PlayerAction)
}

// Pull feeds a tension direction.
func (c *Controller) Pull(dir model.Direction) {
	c.Do(func() { c.eng.TensionInput(dir) })
}

// SelectBait picks the bait for the next cast.
func (c *Controller) SelectBait(id model.BaitID) (ok bool) {
	c.Do(func() { ok = c.eng.SelectBait(id) })
	return ok
}

// Buy purchases one level of an upgrade.
func (c *Controller) Buy(id model.UpgradeID) (level int, ok bool) {
	c.Do(func() {
		level, ok = c.store.Purchase(id)
		if !ok {
			return
		}
		u, _ := catalog.UpgradeByID(id)
		ev := model.Event{Type: model.EventUpgradePurchased, Upgrade: id, Level: level, Price: u.Price}
		if r := c.eng.Run(); r != nil {
			ev.RunID = r.ID
		}
		c.publish(ev)
	})
	return level, ok
}

// Status snapshots the engine.
func (c *Controller) Status() (st engine.Status) {
	c.Do(func() { st = c.eng.Status() })
	return st
}

// State implements notifier.Dispatcher.
func (c *Controller) State() any {
	var v View
	c.Do(func() {
		v = View{Status: c.eng.Status(), Coins: c.store.Coins(), Unlocked: c.store.UnlockedZones()}
	})
	return v
}

// Coins returns the persistent balance.
func (c *Controller) Coins() int { return c.store.Coins() }

func (c *Controller) publish(ev model.Event) {
	switch ev.Type {
	case model.EventRunStarted:
		log.Printf("[INFO] run %s started", ev.RunID)
	case model.EventFishCaught:
		log.Printf("[INFO] run %s caught %s in %s for %d", ev.RunID, ev.Fish.ID, ev.Zone, ev.Value)
		c.record("catch", c.rec.RecordCatch(&recorder.CatchRecord{
			RunID: ev.RunID, FishID: ev.Fish.ID, Rarity: ev.Fish.Rarity,
			Zone: ev.Zone, Bait: ev.Bait, Value: ev.Value,
		}))
	case model.EventMilestoneReached:
		log.Printf("[INFO] milestone %d for %s", ev.Tier, ev.Fish.ID)
		c.record("milestone", c.rec.RecordMilestone(&recorder.MilestoneRecord{
			RunID: ev.RunID, Kind: "COLLECTION", Key: string(ev.Fish.ID), Tier: ev.Tier,
		}))
	case model.EventMasteryReached:
		log.Printf("[INFO] %s mastery level %d", ev.Zone, ev.Level)
		c.record("mastery", c.rec.RecordMilestone(&recorder.MilestoneRecord{
			RunID: ev.RunID, Kind: "MASTERY", Key: string(ev.Zone), Tier: ev.Level,
		}))
	case model.EventUpgradePurchased:
		log.Printf("[INFO] bought %s level %d", ev.Upgrade, ev.Level)
		c.record("purchase", c.rec.RecordPurchase(&recorder.PurchaseRecord{
			Upgrade: ev.Upgrade, Level: ev.Level, Price: ev.Price, CoinsAfter: c.store.Coins(),
		}))
	case model.EventRunEnded:
		if ev.Summary != nil {
			log.Printf("[INFO] run %s ended: %d fish, %d coins", ev.RunID, ev.Summary.FishCaught, ev.Summary.CoinsEarned)
			c.record("run", c.rec.RecordRun(ev.Summary))
		}
		if err := c.store.Flush(); err != nil {
			log.Printf("[ERROR] save after run: %v", err)
		}
	}
	for _, s := range c.sinks {
		s.Publish(ev)
	}
}

func (c *Controller) record(what string, err error) {
	if err != nil {
		log.Printf("[ERROR] record %s: %v", what, err)
	}
}
