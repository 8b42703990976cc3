package model

// EventType tags an engine output event.
type EventType string

const (
	EventRunStarted       EventType = "run-started"
	EventCastStarted      EventType = "cast-started"
	EventBiteOpened       EventType = "bite-opened"
	EventTensionStarted   EventType = "tension-started"
	EventTensionWon       EventType = "tension-won"
	EventFishEscaped      EventType = "fish-escaped"
	EventFishCaught       EventType = "fish-caught"
	EventBaitDropped      EventType = "bait-dropped"
	EventMilestoneReached EventType = "milestone-reached"
	EventMasteryReached   EventType = "mastery-reached"
	EventUpgradePurchased EventType = "upgrade-purchased"
	EventRunEnded         EventType = "run-ended"
)

// EscapeReason says why a hooked fish got away.
type EscapeReason string

const (
	EscapeTimeout EscapeReason = "timeout"
	EscapeTension EscapeReason = "tension"
)

// Event is emitted by the engine for UI and history collaborators.
// Only the fields relevant to Type are set.
type Event struct {
	Type      EventType       `json:"type"`
	RunID     string          `json:"runId,omitempty"`
	Zone      ZoneID          `json:"zone,omitempty"`
	Bait      BaitID          `json:"bait,omitempty"`
	Fish      *FishDefinition `json:"fish,omitempty"`
	Value     int             `json:"value,omitempty"`
	Tier      int             `json:"tier,omitempty"`
	Level     int             `json:"level,omitempty"`
	Upgrade   UpgradeID       `json:"upgrade,omitempty"`
	Price     int             `json:"price,omitempty"`
	Window    float64         `json:"windowMs,omitempty"`
	Direction Direction       `json:"direction,omitempty"`
	Reason    EscapeReason    `json:"reason,omitempty"`
	Summary   *RunSummary     `json:"summary,omitempty"`
}

// Sink receives engine events in emission order.
type Sink interface {
	Publish(Event)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Event)

func (f SinkFunc) Publish(e Event) { f(e) }
