package config

import (
	_ "embed"
)

//go:embed defaults/banana.yaml
var defaultWorldYAML []byte

// DefaultWorldConfig returns the built-in world configuration.
func DefaultWorldConfig() WorldConfig {
	return WorldConfig{
		Window: WindowConfig{
			Width:  800,
			Height: 600,
		},
		Physics: PhysicsConfig{
			GroundLevel:   400,
			MaxJumpHeight: 300,
			JumpSpeed:     5,
			MoveStep:      15,
		},
		Character: CharacterConfig{
			StartX:          400,
			ScreenX:         400,
			Width:           100,
			Height:          163,
			AnimationFrames: 3,
			Facing:          "left",
		},
		Background: BackgroundConfig{
			MinOffset: -1000,
			MaxOffset: 0,
		},
		PowerUps: PowerUpsConfig{
			Count:      5,
			StartX:     500,
			Spacing:    200,
			Y:          350,
			Width:      20,
			Height:     30,
			HitLift:    20,
			Points:     20,
			NamePrefix: "Coin",
		},
		Collision: CollisionConfig{
			Mode: CollisionContainment,
		},
		Layers: LayersConfig{
			Background: 1,
			Character:  10,
			PowerUp:    10,
			Score:      20,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultWorldYAML
}
