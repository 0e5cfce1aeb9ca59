// Package config provides YAML-based world configuration loading and
// validation for the platformer.
package config

// WorldConfig contains every tunable constant of the world. The renderer and
// the simulation both read from the same value so they agree on geometry.
type WorldConfig struct {
	Window     WindowConfig     `yaml:"window"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Character  CharacterConfig  `yaml:"character"`
	Background BackgroundConfig `yaml:"background"`
	PowerUps   PowerUpsConfig   `yaml:"power_ups"`
	Collision  CollisionConfig  `yaml:"collision"`
	Layers     LayersConfig     `yaml:"layers"`
}

// WindowConfig is the logical viewport in world units.
type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PhysicsConfig defines movement and jump parameters.
type PhysicsConfig struct {
	GroundLevel   int `yaml:"ground_level"`    // Resting Y of the character
	MaxJumpHeight int `yaml:"max_jump_height"` // Y above which the jump turns down
	JumpSpeed     int `yaml:"jump_speed"`      // Vertical units per tick
	MoveStep      int `yaml:"move_step"`       // Horizontal units per move command
}

// CharacterConfig defines the character's geometry and animation.
type CharacterConfig struct {
	StartX          int    `yaml:"start_x"`          // Initial horizontal estimate
	ScreenX         int    `yaml:"screen_x"`         // Fixed draw column in world units
	Width           int    `yaml:"width"`            // Hit box width
	Height          int    `yaml:"height"`           // Hit box height
	AnimationFrames int    `yaml:"animation_frames"` // Frames cycled while walking
	Facing          string `yaml:"facing"`           // "left" or "right"
}

// BackgroundConfig defines the scroll bounds. Scrolling right makes the
// offset more negative.
type BackgroundConfig struct {
	MinOffset int `yaml:"min_offset"`
	MaxOffset int `yaml:"max_offset"`
}

// PowerUpsConfig defines the fixed row of collectibles.
type PowerUpsConfig struct {
	Count      int    `yaml:"count"`
	StartX     int    `yaml:"start_x"`
	Spacing    int    `yaml:"spacing"`
	Y          int    `yaml:"y"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	HitLift    int    `yaml:"hit_lift"` // Upward shift of the hit box when collected
	Points     int    `yaml:"points"`
	NamePrefix string `yaml:"name_prefix"`
}

// CollisionMode selects the rectangle test used between the character and
// power-ups.
type CollisionMode string

const (
	// CollisionContainment requires the narrower box to sit strictly inside
	// the wider one.
	CollisionContainment CollisionMode = "containment"
	// CollisionIntersect is the standard AABB intersection test.
	CollisionIntersect CollisionMode = "intersect"
)

// CollisionConfig selects collision behavior.
type CollisionConfig struct {
	Mode CollisionMode `yaml:"mode"`
}

// LayersConfig holds draw depths; higher layers are drawn on top.
type LayersConfig struct {
	Background int `yaml:"background"`
	Character  int `yaml:"character"`
	PowerUp    int `yaml:"power_up"`
	Score      int `yaml:"score"`
}
