// Package eventlog writes gameplay events to a structured logger.
package eventlog

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/banana/internal/game"
)

// Events writes one line per event. Pickups log at info, everything else at
// debug. A nil logger is a no-op.
func Events(logger *log.Logger, tick uint64, events []game.Event) {
	if logger == nil {
		return
	}
	for _, e := range events {
		switch e := e.(type) {
		case game.ScrollBlockedEvent:
			logger.Debug("scroll blocked", "tick", tick, "command", e.Command, "offset", e.Offset)
		case game.JumpStartedEvent:
			logger.Debug("jump started", "tick", tick, "x", e.X)
		case game.JumpApexEvent:
			logger.Debug("jump apex", "tick", tick, "y", e.Y)
		case game.LandedEvent:
			logger.Debug("landed", "tick", tick, "x", e.X)
		case game.PowerUpCollectedEvent:
			logger.Info("power-up collected", "tick", tick, "name", e.Name, "points", e.Points, "score", e.Score)
		default:
			logger.Warn("unknown event", "tick", tick, "event", e)
		}
	}
}
