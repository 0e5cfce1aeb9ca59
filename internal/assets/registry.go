// Package assets holds the sprite registry owned by the rendering layer.
// Sprites are looked up by the image keys the simulation exposes, so the
// simulation never touches drawing resources.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"sort"

	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/banana/internal/core"
)

//go:embed sprites/sprites.yaml
var spriteFS embed.FS

// ErrMissingSprite is returned when a required image key has no sprite.
var ErrMissingSprite = errors.New("missing sprite")

// Sprite is an ASCII image. Spaces are transparent.
type Sprite struct {
	Rows  []string
	Color core.Color
	Tile  bool // Repeat horizontally across the screen
}

// Width returns the display width of the widest row.
func (s Sprite) Width() int {
	w := 0
	for _, row := range s.Rows {
		w = core.Max(w, runewidth.StringWidth(row))
	}
	return w
}

// Height returns the number of rows.
func (s Sprite) Height() int {
	return len(s.Rows)
}

// Registry maps image keys to sprites.
type Registry struct {
	sprites map[string]Sprite
}

type spriteFile struct {
	Sprites map[string]struct {
		Color string   `yaml:"color"`
		Tile  bool     `yaml:"tile"`
		Rows  []string `yaml:"rows"`
	} `yaml:"sprites"`
}

// Load parses the embedded sprite sheet.
func Load() (*Registry, error) {
	data, err := spriteFS.ReadFile("sprites/sprites.yaml")
	if err != nil {
		return nil, fmt.Errorf("assets: read embedded sprites: %w", err)
	}
	return Parse(data)
}

// Parse builds a registry from a YAML sprite sheet.
func Parse(data []byte) (*Registry, error) {
	var file spriteFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("assets: parse sprites: %w", err)
	}

	r := &Registry{sprites: make(map[string]Sprite, len(file.Sprites))}
	for key, def := range file.Sprites {
		if len(def.Rows) == 0 {
			return nil, fmt.Errorf("assets: sprite %q has no rows", key)
		}
		color, err := core.ParseColor(def.Color)
		if err != nil {
			return nil, fmt.Errorf("assets: sprite %q: %w", key, err)
		}
		r.sprites[key] = Sprite{Rows: def.Rows, Color: color, Tile: def.Tile}
	}
	return r, nil
}

// Get returns the sprite for key.
func (r *Registry) Get(key string) (Sprite, bool) {
	s, ok := r.sprites[key]
	return s, ok
}

// Keys returns all registered keys, sorted.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.sprites))
	for k := range r.sprites {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Require checks that every key has a sprite, so a missing image fails at
// startup instead of mid-game.
func (r *Registry) Require(keys ...string) error {
	var missing []error
	for _, k := range keys {
		if _, ok := r.sprites[k]; !ok {
			missing = append(missing, fmt.Errorf("%w: %q", ErrMissingSprite, k))
		}
	}
	return errors.Join(missing...)
}
