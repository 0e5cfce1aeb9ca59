// Package render draws game snapshots into a core.Screen using the sprite
// registry. It knows nothing about terminals; the TUI layer styles the result.
package render

import (
	"fmt"
	"sort"

	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/banana/internal/assets"
	"github.com/vovakirdan/banana/internal/config"
	"github.com/vovakirdan/banana/internal/core"
	"github.com/vovakirdan/banana/internal/game"
)

// Visual characters for rendering
const (
	GroundChar  = '═'
	MissingChar = '?'
)

// Projector maps world units onto screen cells.
type Projector struct {
	worldW, worldH int
	cols, rows     int
}

// NewProjector scales a worldW x worldH viewport onto cols x rows cells.
func NewProjector(worldW, worldH, cols, rows int) Projector {
	return Projector{worldW: worldW, worldH: worldH, cols: cols, rows: rows}
}

// X converts a world x coordinate to a column.
func (p Projector) X(wx int) int {
	return floorDiv(wx*p.cols, p.worldW)
}

// Y converts a world y coordinate to a row.
func (p Projector) Y(wy int) int {
	return floorDiv(wy*p.rows, p.worldH)
}

// floorDiv divides rounding toward negative infinity, so scrolled-off
// positions keep moving smoothly past column 0.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Renderer draws snapshots. It owns the sprite registry.
type Renderer struct {
	assets *assets.Registry
	world  config.WorldConfig
}

// New creates a renderer for the given world geometry.
func New(reg *assets.Registry, world config.WorldConfig) *Renderer {
	return &Renderer{assets: reg, world: world}
}

type drawable struct {
	layer int
	draw  func()
}

// Draw renders snap into dst. The screen is cleared first.
func (r *Renderer) Draw(dst *core.Screen, snap game.Snapshot) {
	dst.Clear()
	proj := NewProjector(r.world.Window.Width, r.world.Window.Height, dst.Width(), dst.Height())

	items := []drawable{
		{snap.Background.Layer, func() { r.drawBackground(dst, proj, snap.Background) }},
		{snap.Character.Layer, func() { r.drawCharacter(dst, proj, snap.Character) }},
	}
	for _, p := range snap.PowerUps {
		items = append(items, drawable{p.Layer, func() {
			r.drawSprite(dst, p.Key, proj.X(p.X), proj.Y(p.Y))
		}})
	}
	items = append(items, drawable{snap.ScoreLayer, func() {
		dst.DrawTextColored(1, 0, fmt.Sprintf(" Score: %d ", snap.Score), core.ColorWhite)
	}})

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].layer < items[j].layer
	})
	for _, it := range items {
		it.draw()
	}

	if snap.Paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawBackground tiles the backdrop at the scroll offset and draws the ground
// line where the character's feet rest.
func (r *Renderer) drawBackground(dst *core.Screen, proj Projector, bg game.Sprite) {
	groundRow := proj.Y(r.world.Physics.GroundLevel + r.world.Character.Height)
	dst.DrawHLine(0, groundRow, dst.Width(), GroundChar, core.ColorGreen)

	sprite, ok := r.assets.Get(bg.Key)
	if !ok {
		return
	}
	x, y := proj.X(bg.X), proj.Y(bg.Y)
	if !sprite.Tile || sprite.Width() == 0 {
		dst.DrawSprite(x, y, sprite.Rows, sprite.Color)
		return
	}
	w := sprite.Width()
	start := x - (floorDiv(x, w)+1)*w
	for tx := start; tx < dst.Width(); tx += w {
		dst.DrawSprite(tx, y, sprite.Rows, sprite.Color)
	}
}

// drawCharacter anchors the sprite's bottom row on the hit box's bottom edge
// so the feet meet the ground line.
func (r *Renderer) drawCharacter(dst *core.Screen, proj Projector, c game.CharacterSnapshot) {
	sprite, ok := r.assets.Get(c.Key)
	height := 1
	if ok {
		height = sprite.Height()
	}
	bottom := proj.Y(c.Y+r.world.Character.Height) - 1
	r.drawSprite(dst, c.Key, proj.X(c.X), bottom-height+1)
}

func (r *Renderer) drawSprite(dst *core.Screen, key string, x, y int) {
	sprite, ok := r.assets.Get(key)
	if !ok {
		dst.SetCell(x, y, MissingChar, core.ColorRed)
		return
	}
	dst.DrawSprite(x, y, sprite.Rows, sprite.Color)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	titleW, subtitleW := runewidth.StringWidth(title), runewidth.StringWidth(subtitle)
	boxW := core.Max(titleW, subtitleW) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.RectFromSize(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawText(boxX+(boxW-titleW)/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-subtitleW)/2, boxY+3, subtitle)
}
