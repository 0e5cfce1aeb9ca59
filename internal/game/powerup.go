package game

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/banana/internal/config"
	"github.com/vovakirdan/banana/internal/core"
)

// Image keys for power-ups.
const (
	PowerUpImageKey    = "power-up"
	PowerUpHitImageKey = "power-up-hit"
)

// Defaults used when no option overrides them.
const (
	DefaultPowerUpPoints = 20
	DefaultPowerUpLift   = 20
)

// ErrInvalidPowerUp is returned for malformed power-up definitions.
var ErrInvalidPowerUp = errors.New("invalid power-up")

// PowerUp is a static collectible. Once hit it stays hit.
type PowerUp struct {
	rect   core.Rect
	name   string
	points int
	lift   int
	hit    bool
}

// PowerUpOption customizes a power-up at construction.
type PowerUpOption func(*PowerUp)

// WithPoints sets the value awarded on first hit.
func WithPoints(points int) PowerUpOption {
	return func(p *PowerUp) {
		p.points = points
	}
}

// WithHitLift sets how far the hit box moves up on first hit.
func WithHitLift(lift int) PowerUpOption {
	return func(p *PowerUp) {
		p.lift = lift
	}
}

// NewPowerUp creates a power-up, rejecting empty names and degenerate boxes.
func NewPowerUp(name string, rect core.Rect, opts ...PowerUpOption) (*PowerUp, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: missing name", ErrInvalidPowerUp)
	}
	if !rect.Valid() {
		return nil, fmt.Errorf("%w: %q has degenerate box %+v", ErrInvalidPowerUp, name, rect)
	}

	p := &PowerUp{
		rect:   rect,
		name:   name,
		points: DefaultPowerUpPoints,
		lift:   DefaultPowerUpLift,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.points < 0 {
		return nil, fmt.Errorf("%w: %q has negative points %d", ErrInvalidPowerUp, name, p.points)
	}
	return p, nil
}

// NewPowerUpRow builds the evenly spaced row described by cfg.
// Names are "<prefix> <index>", starting at 0.
func NewPowerUpRow(cfg config.PowerUpsConfig) ([]*PowerUp, error) {
	row := make([]*PowerUp, 0, cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		x := cfg.StartX + i*cfg.Spacing
		p, err := NewPowerUp(
			fmt.Sprintf("%s %d", cfg.NamePrefix, i),
			core.NewRect(x, cfg.Y, x+cfg.Width, cfg.Y+cfg.Height),
			WithPoints(cfg.Points),
			WithHitLift(cfg.HitLift),
		)
		if err != nil {
			return nil, err
		}
		row = append(row, p)
	}
	return row, nil
}

// MarkHit flags the power-up as collected. The first call lifts the hit box;
// later calls change nothing.
func (p *PowerUp) MarkHit() {
	if !p.hit {
		p.rect.Y1 -= p.lift
	}
	p.hit = true
}

// IsHit reports whether the power-up has been collected.
func (p *PowerUp) IsHit() bool {
	return p.hit
}

// Rect returns the current hit box.
func (p *PowerUp) Rect() core.Rect {
	return p.rect
}

// Name returns the label.
func (p *PowerUp) Name() string {
	return p.name
}

// Points returns the value awarded on collection.
func (p *PowerUp) Points() int {
	return p.points
}

// ImageKey returns the sprite key for the current hit state.
func (p *PowerUp) ImageKey() string {
	if p.hit {
		return PowerUpHitImageKey
	}
	return PowerUpImageKey
}
