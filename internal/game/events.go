package game

import "github.com/vovakirdan/banana/internal/core"

// Event is something notable that happened during a tick.
// The platform layer logs them; the simulation never depends on them.
type Event interface {
	gameEvent()
}

// ScrollBlockedEvent is emitted when a move ran into a background bound.
type ScrollBlockedEvent struct {
	Command core.Command
	Offset  int
}

func (ScrollBlockedEvent) gameEvent() {}

// JumpStartedEvent is emitted when the character leaves the ground.
type JumpStartedEvent struct {
	X int
}

func (JumpStartedEvent) gameEvent() {}

// JumpApexEvent is emitted when the jump turns from rising to falling.
type JumpApexEvent struct {
	Y int
}

func (JumpApexEvent) gameEvent() {}

// LandedEvent is emitted when the character returns to the ground.
type LandedEvent struct {
	X int
}

func (LandedEvent) gameEvent() {}

// PowerUpCollectedEvent is emitted the first time a power-up is hit.
type PowerUpCollectedEvent struct {
	Name   string
	Points int
	Score  int // Score after the award
}

func (PowerUpCollectedEvent) gameEvent() {}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State  core.GameState
	Events []Event
}
