package game

import (
	"fmt"

	"github.com/vovakirdan/banana/internal/config"
	"github.com/vovakirdan/banana/internal/core"
)

// Direction is the way the character faces.
type Direction int

const (
	DirectionLeft Direction = iota
	DirectionRight
)

// String returns the name used in image keys.
func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection converts "left" or "right" to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "left":
		return DirectionLeft, nil
	case "right":
		return DirectionRight, nil
	default:
		return DirectionLeft, fmt.Errorf("game: unknown direction %q", s)
	}
}

// JumpState is the vertical state machine of the character.
type JumpState int

const (
	OnGround JumpState = iota
	JumpingUp
	JumpingDown
)

// String returns a human-readable name for the state.
func (s JumpState) String() string {
	switch s {
	case OnGround:
		return "on_ground"
	case JumpingUp:
		return "jumping_up"
	case JumpingDown:
		return "jumping_down"
	default:
		return "unknown"
	}
}

// Character is the player-controlled banana.
//
// Vertical motion is driven by Advance, which must be called exactly once per
// tick. Y is a pure read.
type Character struct {
	direction Direction
	frame     int // 1-based animation frame
	frames    int
	state     JumpState
	jumping   bool // Jump input active
	x         int  // Horizontal position estimate in world units
	y         int
	points    int

	width, height int
	groundLevel   int
	maxJumpHeight int
	jumpSpeed     int
}

// NewCharacter creates a grounded character facing the configured direction.
func NewCharacter(ch config.CharacterConfig, ph config.PhysicsConfig) (*Character, error) {
	dir, err := ParseDirection(ch.Facing)
	if err != nil {
		return nil, err
	}
	return &Character{
		direction:     dir,
		frame:         1,
		frames:        ch.AnimationFrames,
		state:         OnGround,
		x:             ch.StartX,
		y:             ph.GroundLevel,
		width:         ch.Width,
		height:        ch.Height,
		groundLevel:   ph.GroundLevel,
		maxJumpHeight: ph.MaxJumpHeight,
		jumpSpeed:     ph.JumpSpeed,
	}, nil
}

// Turn sets the facing direction.
func (c *Character) Turn(d Direction) {
	c.direction = d
}

// Direction returns the facing direction.
func (c *Character) Direction() Direction {
	return c.direction
}

// AdvanceAnimation moves to the next walking frame, wrapping to 1.
func (c *Character) AdvanceAnimation() {
	if c.frame < c.frames {
		c.frame++
	} else {
		c.frame = 1
	}
}

// Frame returns the current animation frame.
func (c *Character) Frame() int {
	return c.frame
}

// UpdatePositionEstimate shifts the horizontal estimate.
// Only called when the background actually scrolled.
func (c *Character) UpdatePositionEstimate(amount int) {
	c.x += amount
}

// X returns the horizontal position estimate.
func (c *Character) X() int {
	return c.x
}

// StartJump begins a jump from the ground. While airborne with the jump input
// still active it does nothing. If the input was released mid-air it is
// raised again so the arc carries on from where it was.
func (c *Character) StartJump() {
	switch c.state {
	case OnGround:
		c.jumping = true
		c.state = JumpingUp
	case JumpingUp, JumpingDown:
		c.jumping = true
	default:
		panic(fmt.Sprintf("game: invalid jump state %d", c.state))
	}
}

// StopJumpInput clears the jump input without changing the jump state.
func (c *Character) StopJumpInput() {
	c.jumping = false
}

// Jumping reports whether the jump input is active.
func (c *Character) Jumping() bool {
	return c.jumping
}

// State returns the current jump state.
func (c *Character) State() JumpState {
	return c.state
}

// Advance runs one vertical simulation step and returns the new Y.
func (c *Character) Advance() int {
	if !c.jumping {
		c.y = c.groundLevel
		return c.y
	}

	switch c.state {
	case JumpingUp:
		if c.y < c.maxJumpHeight {
			c.state = JumpingDown
		}
	case JumpingDown:
		if c.y > c.groundLevel {
			c.state = OnGround
			c.jumping = false
		}
	case OnGround:
	default:
		panic(fmt.Sprintf("game: invalid jump state %d", c.state))
	}

	c.y += c.velocity()
	return c.y
}

// velocity is the vertical speed for the current state; negative is up.
func (c *Character) velocity() int {
	switch c.state {
	case JumpingUp:
		return -c.jumpSpeed
	case JumpingDown:
		return c.jumpSpeed
	case OnGround:
		return 0
	default:
		panic(fmt.Sprintf("game: invalid jump state %d", c.state))
	}
}

// Y returns the vertical position without advancing the simulation.
func (c *Character) Y() int {
	return c.y
}

// HitBox returns the collision rectangle anchored at the current position.
func (c *Character) HitBox() core.Rect {
	return core.RectFromSize(c.x, c.y, c.width, c.height)
}

// CollidesWith tests the hit box against rect using the containment rule.
func (c *Character) CollidesWith(rect core.Rect) bool {
	return c.HitBox().Overlaps(rect)
}

// ReceivePowerUp adds the power-up's value to the score.
func (c *Character) ReceivePowerUp(p *PowerUp) {
	c.points += p.Points()
}

// Points returns the collected score.
func (c *Character) Points() int {
	return c.points
}

// ImageKey returns the sprite key, e.g. "left-1".
func (c *Character) ImageKey() string {
	return fmt.Sprintf("%s-%d", c.direction, c.frame)
}
