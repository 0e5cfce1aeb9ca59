package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid world config")

// Load loads the world configuration.
// Search order: customPath -> $XDG_CONFIG_HOME/banana/config.yaml ->
// ~/.banana/config.yaml -> ./configs/banana.yaml -> embedded default.
// Files are layered over the built-in defaults, so a file only needs the keys it changes.
// The result is validated before it is returned.
func Load(customPath string) (WorldConfig, error) {
	cfg, err := load(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func load(customPath string) (WorldConfig, error) {
	cfg := DefaultWorldConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directories, then the local configs directory.
	// Unreadable or malformed files are skipped.
	candidates := append(userConfigPaths("config.yaml"), filepath.Join("configs", "banana.yaml"))
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := DefaultWorldConfig()
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return candidate, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultWorldYAML, &cfg); err != nil {
		return DefaultWorldConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPaths returns the per-user locations of filename, XDG first.
func userConfigPaths(filename string) []string {
	paths := []string{filepath.Join(xdg.ConfigHome, "banana", filename)}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".banana", filename))
	}
	return paths
}

// Validate checks the invariants the simulation relies on.
func (c WorldConfig) Validate() error {
	p := c.Physics
	switch {
	case p.JumpSpeed <= 0:
		return fmt.Errorf("%w: physics.jump_speed must be positive, got %d", ErrInvalidConfig, p.JumpSpeed)
	case p.MoveStep <= 0:
		return fmt.Errorf("%w: physics.move_step must be positive, got %d", ErrInvalidConfig, p.MoveStep)
	case p.MaxJumpHeight >= p.GroundLevel:
		return fmt.Errorf("%w: physics.max_jump_height (%d) must be above ground_level (%d)",
			ErrInvalidConfig, p.MaxJumpHeight, p.GroundLevel)
	}

	ch := c.Character
	switch {
	case ch.Width <= 0 || ch.Height <= 0:
		return fmt.Errorf("%w: character size must be positive, got %dx%d", ErrInvalidConfig, ch.Width, ch.Height)
	case ch.AnimationFrames < 1:
		return fmt.Errorf("%w: character.animation_frames must be at least 1", ErrInvalidConfig)
	case ch.Facing != "left" && ch.Facing != "right":
		return fmt.Errorf("%w: character.facing must be left or right, got %q", ErrInvalidConfig, ch.Facing)
	}

	if c.Background.MinOffset > c.Background.MaxOffset {
		return fmt.Errorf("%w: background.min_offset (%d) exceeds max_offset (%d)",
			ErrInvalidConfig, c.Background.MinOffset, c.Background.MaxOffset)
	}

	pu := c.PowerUps
	switch {
	case pu.Count < 0:
		return fmt.Errorf("%w: power_ups.count must not be negative", ErrInvalidConfig)
	case pu.Width <= 0 || pu.Height <= 0:
		return fmt.Errorf("%w: power-up size must be positive, got %dx%d", ErrInvalidConfig, pu.Width, pu.Height)
	case pu.Points < 0:
		return fmt.Errorf("%w: power_ups.points must not be negative", ErrInvalidConfig)
	}

	if _, err := ParseCollisionMode(string(c.Collision.Mode)); err != nil {
		return err
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size must be positive", ErrInvalidConfig)
	}
	return nil
}

// ParseCollisionMode converts a mode name to a CollisionMode.
func ParseCollisionMode(name string) (CollisionMode, error) {
	switch CollisionMode(name) {
	case CollisionContainment, CollisionIntersect:
		return CollisionMode(name), nil
	default:
		return "", fmt.Errorf("%w: unknown collision mode %q", ErrInvalidConfig, name)
	}
}

// ApplyCollisionMode overrides the collision mode when name is not empty.
func ApplyCollisionMode(cfg *WorldConfig, name string) error {
	if name == "" {
		return nil
	}
	mode, err := ParseCollisionMode(name)
	if err != nil {
		return err
	}
	cfg.Collision.Mode = mode
	return nil
}

// Marshal renders the configuration as YAML.
func Marshal(cfg WorldConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}
