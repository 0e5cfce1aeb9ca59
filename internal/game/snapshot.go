package game

import "sort"

// Sprite is one drawable: an image key placed at a screen position on a layer.
type Sprite struct {
	Key   string `yaml:"key"`
	X     int    `yaml:"x"`
	Y     int    `yaml:"y"`
	Layer int    `yaml:"layer"`
}

// CharacterSnapshot is the character's render and debug state.
type CharacterSnapshot struct {
	Sprite    `yaml:",inline"`
	WorldX    int    `yaml:"world_x"`
	Direction string `yaml:"direction"`
	Frame     int    `yaml:"frame"`
	JumpState string `yaml:"jump_state"`
	Jumping   bool   `yaml:"jumping"`
}

// PowerUpSnapshot is one power-up's render state.
type PowerUpSnapshot struct {
	Sprite `yaml:",inline"`
	Name   string `yaml:"name"`
	WorldX int    `yaml:"world_x"`
	Hit    bool   `yaml:"hit"`
	Points int    `yaml:"points"`
}

// Snapshot captures everything a renderer needs for one frame. It holds no
// references into the live simulation, so it can be handed to another goroutine.
type Snapshot struct {
	Tick       uint64            `yaml:"tick"`
	Score      int               `yaml:"score"`
	ScoreLayer int               `yaml:"score_layer"`
	Paused     bool              `yaml:"paused"`
	Background Sprite            `yaml:"background"`
	Character  CharacterSnapshot `yaml:"character"`
	PowerUps   []PowerUpSnapshot `yaml:"power_ups"`
}

// Snapshot returns the current frame state.
func (g *Game) Snapshot() Snapshot {
	c := g.character
	offset := g.background.Offset()

	powerUps := make([]PowerUpSnapshot, 0, len(g.powerUps))
	for _, p := range g.powerUps {
		r := p.Rect()
		powerUps = append(powerUps, PowerUpSnapshot{
			Sprite: Sprite{
				Key:   p.ImageKey(),
				X:     offset + r.X1,
				Y:     r.Y1,
				Layer: g.cfg.Layers.PowerUp,
			},
			Name:   p.Name(),
			WorldX: r.X1,
			Hit:    p.IsHit(),
			Points: p.Points(),
		})
	}

	return Snapshot{
		Tick:       g.tick,
		Score:      c.Points(),
		ScoreLayer: g.cfg.Layers.Score,
		Paused:     g.paused,
		Background: Sprite{
			Key:   BackgroundImageKey,
			X:     offset,
			Y:     0,
			Layer: g.cfg.Layers.Background,
		},
		Character: CharacterSnapshot{
			Sprite: Sprite{
				Key:   c.ImageKey(),
				X:     g.cfg.Character.ScreenX,
				Y:     c.Y(),
				Layer: g.cfg.Layers.Character,
			},
			WorldX:    c.X(),
			Direction: c.Direction().String(),
			Frame:     c.Frame(),
			JumpState: c.State().String(),
			Jumping:   c.Jumping(),
		},
		PowerUps: powerUps,
	}
}

// Sprites returns every drawable ordered by layer. Sprites on the same layer
// keep draw order: background, character, then power-ups.
func (s Snapshot) Sprites() []Sprite {
	sprites := make([]Sprite, 0, len(s.PowerUps)+2)
	sprites = append(sprites, s.Background, s.Character.Sprite)
	for _, p := range s.PowerUps {
		sprites = append(sprites, p.Sprite)
	}
	sort.SliceStable(sprites, func(i, j int) bool {
		return sprites[i].Layer < sprites[j].Layer
	})
	return sprites
}
