// Package game implements the Banana platformer simulation: a character that
// walks across a scrolling background, jumps, and collects power-ups.
//
// The package holds no rendering code. Renderers read a Snapshot between
// ticks and look sprites up by image key.
package game

import (
	"fmt"

	"github.com/vovakirdan/banana/internal/config"
	"github.com/vovakirdan/banana/internal/core"
)

// BackgroundImageKey is the sprite key of the scrolling backdrop.
const BackgroundImageKey = "background"

// Game is the per-tick orchestrator. It is not safe for concurrent use; the
// platform drives it from a single loop.
type Game struct {
	cfg        config.WorldConfig
	character  *Character
	background *Background
	powerUps   []*PowerUp
	collides   func(hitBox, target core.Rect) bool
	tick       uint64
	paused     bool
}

// New validates cfg and creates a game in its initial state.
func New(cfg config.WorldConfig) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &Game{cfg: cfg}
	if err := g.Reset(); err != nil {
		return nil, err
	}
	return g, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "banana"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Banana Platforma"
}

// Config returns the world configuration the game was built with.
func (g *Game) Config() config.WorldConfig {
	return g.cfg
}

// Reset puts the world back in its initial state.
func (g *Game) Reset() error {
	character, err := NewCharacter(g.cfg.Character, g.cfg.Physics)
	if err != nil {
		return fmt.Errorf("game: create character: %w", err)
	}
	powerUps, err := NewPowerUpRow(g.cfg.PowerUps)
	if err != nil {
		return fmt.Errorf("game: create power-ups: %w", err)
	}

	g.character = character
	g.background = NewBackground(g.cfg.Background.MinOffset, g.cfg.Background.MaxOffset)
	g.powerUps = powerUps
	g.tick = 0
	g.paused = false

	switch g.cfg.Collision.Mode {
	case config.CollisionIntersect:
		g.collides = core.Rect.Intersects
	default:
		g.collides = core.Rect.Overlaps
	}
	return nil
}

// Step handles pause toggling and, when running, advances one tick.
func (g *Game) Step(in core.InputFrame) StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return StepResult{State: g.State()}
	}
	events := g.Tick(in.Command())
	return StepResult{State: g.State(), Events: events}
}

// Tick applies one command, advances the jump once, and resolves collisions.
func (g *Game) Tick(cmd core.Command) []Event {
	g.tick++
	var events []Event

	switch cmd {
	case core.CommandMoveLeft:
		events = g.move(cmd, DirectionLeft, -g.cfg.Physics.MoveStep, events)
	case core.CommandMoveRight:
		events = g.move(cmd, DirectionRight, g.cfg.Physics.MoveStep, events)
	case core.CommandJump:
		if !g.character.Jumping() {
			g.character.StartJump()
			events = append(events, JumpStartedEvent{X: g.character.X()})
		}
	case core.CommandNone:
	default:
		panic(fmt.Sprintf("game: unknown command %d", cmd))
	}

	before := g.character.State()
	y := g.character.Advance()
	switch after := g.character.State(); {
	case before == JumpingUp && after == JumpingDown:
		events = append(events, JumpApexEvent{Y: y})
	case before == JumpingDown && after == OnGround:
		events = append(events, LandedEvent{X: g.character.X()})
	}

	return g.collide(events)
}

// move turns and animates the character, scrolls the background, and only
// advances the position estimate when the scroll was accepted.
func (g *Game) move(cmd core.Command, dir Direction, amount int, events []Event) []Event {
	g.character.Turn(dir)
	g.character.AdvanceAnimation()
	if g.background.Move(amount) {
		g.character.UpdatePositionEstimate(amount)
		return events
	}
	return append(events, ScrollBlockedEvent{Command: cmd, Offset: g.background.Offset()})
}

// collide awards every power-up the character touches. Collected power-ups
// still collide but never award twice.
func (g *Game) collide(events []Event) []Event {
	hitBox := g.character.HitBox()
	for _, p := range g.powerUps {
		if !g.collides(hitBox, p.Rect()) {
			continue
		}
		if !p.IsHit() {
			g.character.ReceivePowerUp(p)
			events = append(events, PowerUpCollectedEvent{
				Name:   p.Name(),
				Points: p.Points(),
				Score:  g.character.Points(),
			})
		}
		p.MarkHit()
	}
	return events
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.character.Points(),
		Paused: g.paused,
	}
}

// ImageKeys lists every image key a snapshot of this game can contain.
func (g *Game) ImageKeys() []string {
	keys := []string{BackgroundImageKey, PowerUpImageKey, PowerUpHitImageKey}
	for _, d := range []Direction{DirectionLeft, DirectionRight} {
		for f := 1; f <= g.cfg.Character.AnimationFrames; f++ {
			keys = append(keys, fmt.Sprintf("%s-%d", d, f))
		}
	}
	return keys
}

// Character returns the player character.
func (g *Game) Character() *Character {
	return g.character
}

// Background returns the scrolling background.
func (g *Game) Background() *Background {
	return g.background
}

// PowerUps returns the power-ups in creation order.
func (g *Game) PowerUps() []*PowerUp {
	return g.powerUps
}
