package model

// FishingState is the engine's cycle state.
type FishingState string

const (
	StateIdle    FishingState = "idle"
	StateWaiting FishingState = "waiting"
	StateReeling FishingState = "reeling"
)

// Direction is a tension contest input or requirement.
type Direction string

const (
	Left  Direction = "left"
	Right Direction = "right"
)

func (d Direction) Valid() bool { return d == Left || d == Right }
