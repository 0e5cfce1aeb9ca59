package render

import (
	"strings"
	"testing"

	"github.com/vovakirdan/banana/internal/assets"
	"github.com/vovakirdan/banana/internal/config"
	"github.com/vovakirdan/banana/internal/core"
	"github.com/vovakirdan/banana/internal/game"
)

func newTestRenderer(t *testing.T) (*Renderer, *game.Game) {
	t.Helper()
	reg, err := assets.Load()
	if err != nil {
		t.Fatalf("assets.Load() failed: %v", err)
	}
	cfg := config.DefaultWorldConfig()
	g, err := game.New(cfg)
	if err != nil {
		t.Fatalf("game.New() failed: %v", err)
	}
	return New(reg, cfg), g
}

func TestProjector(t *testing.T) {
	p := NewProjector(800, 600, 80, 24)

	tests := []struct {
		name     string
		got      int
		expected int
	}{
		{"origin x", p.X(0), 0},
		{"character column", p.X(400), 40},
		{"negative x floors", p.X(-15), -2},
		{"ground row", p.Y(563), 22},
		{"coin row", p.Y(350), 14},
	}
	for _, tc := range tests {
		if tc.got != tc.expected {
			t.Errorf("%s = %d, expected %d", tc.name, tc.got, tc.expected)
		}
	}
}

func TestDrawInitialFrame(t *testing.T) {
	r, g := newTestRenderer(t)
	screen := core.NewScreen(80, 24)
	r.Draw(screen, g.Snapshot())

	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("score missing from row 0: %q", screen.Row(0))
	}
	if screen.Get(0, 22) != GroundChar || screen.Get(79, 22) != GroundChar {
		t.Errorf("ground line missing on row 22: %q", screen.Row(22))
	}

	// Coin 0 at world x 500 lands on column 50.
	if screen.Get(50, 14) != '(' || screen.Get(51, 14) != '@' {
		t.Errorf("coin missing on row 14: %q", screen.Row(14))
	}
	if cell := screen.GetCell(51, 14); cell.Color != core.ColorYellow {
		t.Errorf("coin color = %v, expected yellow", cell.Color)
	}

	// The banana's feet sit on the row above the ground line.
	if !strings.Contains(screen.Row(21), "/ \\") {
		t.Errorf("character legs missing on row 21: %q", screen.Row(21))
	}
	if screen.Get(42, 17) != '_' {
		t.Errorf("character head missing at (42, 17): %q", screen.Row(17))
	}
}

func TestDrawScrollsPowerUps(t *testing.T) {
	r, g := newTestRenderer(t)
	for i := 0; i < 10; i++ {
		g.Tick(core.CommandMoveRight)
	}

	screen := core.NewScreen(80, 24)
	r.Draw(screen, g.Snapshot())

	// Offset -150 moves coin 0 to world 350, column 35.
	if screen.Get(35, 14) != '(' {
		t.Errorf("scrolled coin missing: %q", screen.Row(14))
	}
	if screen.Get(50, 14) == '(' {
		t.Error("coin should no longer be drawn at its unscrolled column")
	}
}

func TestDrawPausedOverlay(t *testing.T) {
	r, g := newTestRenderer(t)
	g.Step(core.FrameOf(core.ActionPause))

	screen := core.NewScreen(80, 24)
	r.Draw(screen, g.Snapshot())

	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("paused overlay missing")
	}
}

func TestDrawMissingSprite(t *testing.T) {
	reg, err := assets.Parse([]byte("sprites:\n  background:\n    rows: [\" \"]\n"))
	if err != nil {
		t.Fatal(err)
	}
	cfg := config.DefaultWorldConfig()
	g, err := game.New(cfg)
	if err != nil {
		t.Fatal(err)
	}

	screen := core.NewScreen(80, 24)
	New(reg, cfg).Draw(screen, g.Snapshot())

	if screen.Get(50, 14) != MissingChar {
		t.Errorf("missing sprite placeholder not drawn: %q", screen.Row(14))
	}
}

func TestFloorDiv(t *testing.T) {
	tests := []struct{ a, b, expected int }{
		{7, 2, 3},
		{-7, 2, -4},
		{-8, 2, -4},
		{0, 5, 0},
	}
	for _, tc := range tests {
		if got := floorDiv(tc.a, tc.b); got != tc.expected {
			t.Errorf("floorDiv(%d, %d) = %d, expected %d", tc.a, tc.b, got, tc.expected)
		}
	}
}
