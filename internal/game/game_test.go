package game

import (
	"errors"
	"reflect"
	"testing"

	"github.com/vovakirdan/banana/internal/config"
	"github.com/vovakirdan/banana/internal/core"
)

func newTestGame(t *testing.T, mutate ...func(*config.WorldConfig)) *Game {
	t.Helper()
	cfg := config.DefaultWorldConfig()
	for _, m := range mutate {
		m(&cfg)
	}
	g, err := New(cfg)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return g
}

// runTicks applies cmd n times and returns all events.
func runTicks(g *Game, cmd core.Command, n int) []Event {
	var events []Event
	for i := 0; i < n; i++ {
		events = append(events, g.Tick(cmd)...)
	}
	return events
}

func countEvents[T Event](events []Event) int {
	n := 0
	for _, e := range events {
		if _, ok := e.(T); ok {
			n++
		}
	}
	return n
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultWorldConfig()
	cfg.Physics.MoveStep = 0

	if _, err := New(cfg); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("New() error = %v, expected ErrInvalidConfig", err)
	}
}

func TestMoveRightScrollsAndAnimates(t *testing.T) {
	g := newTestGame(t)
	events := g.Tick(core.CommandMoveRight)

	if len(events) != 0 {
		t.Errorf("unexpected events: %#v", events)
	}
	if g.Background().Offset() != -15 {
		t.Errorf("offset = %d, expected -15", g.Background().Offset())
	}
	c := g.Character()
	if c.X() != 415 || c.Direction() != DirectionRight || c.Frame() != 2 {
		t.Errorf("character x=%d dir=%v frame=%d, expected 415 right 2", c.X(), c.Direction(), c.Frame())
	}
	if c.ImageKey() != "right-2" {
		t.Errorf("ImageKey() = %q", c.ImageKey())
	}
}

func TestMoveLeftAtStartIsBlocked(t *testing.T) {
	g := newTestGame(t)
	events := g.Tick(core.CommandMoveLeft)

	if countEvents[ScrollBlockedEvent](events) != 1 {
		t.Errorf("expected one ScrollBlockedEvent, got %#v", events)
	}
	c := g.Character()
	if g.Background().Offset() != 0 || c.X() != 400 {
		t.Errorf("blocked move changed position: offset=%d x=%d", g.Background().Offset(), c.X())
	}
	// Turning and animation still happen.
	if c.Direction() != DirectionLeft || c.Frame() != 2 {
		t.Errorf("dir=%v frame=%d, expected left 2", c.Direction(), c.Frame())
	}
}

func TestMoveRightToFarBound(t *testing.T) {
	g := newTestGame(t)

	if events := runTicks(g, core.CommandMoveRight, 66); countEvents[ScrollBlockedEvent](events) != 0 {
		t.Fatalf("first 66 moves should be accepted")
	}
	if g.Background().Offset() != -990 || g.Character().X() != 1390 {
		t.Fatalf("offset=%d x=%d, expected -990 1390", g.Background().Offset(), g.Character().X())
	}

	// The 67th move is clamped: the background settles on the bound but the
	// estimate does not advance.
	events := g.Tick(core.CommandMoveRight)
	if countEvents[ScrollBlockedEvent](events) != 1 {
		t.Errorf("expected ScrollBlockedEvent, got %#v", events)
	}
	if g.Background().Offset() != -1000 || g.Character().X() != 1390 {
		t.Errorf("offset=%d x=%d, expected -1000 1390", g.Background().Offset(), g.Character().X())
	}
}

func TestJumpCommandRunsFullArc(t *testing.T) {
	g := newTestGame(t)

	events := g.Tick(core.CommandJump)
	if countEvents[JumpStartedEvent](events) != 1 {
		t.Fatalf("expected JumpStartedEvent, got %#v", events)
	}
	if g.Character().Y() != 395 {
		t.Errorf("jump tick should advance once, y=%d", g.Character().Y())
	}

	// Holding jump mid-air must not restart the arc.
	events = append(events, runTicks(g, core.CommandJump, 5)...)
	if countEvents[JumpStartedEvent](events) != 1 {
		t.Errorf("jump restarted while airborne")
	}

	events = append(events, runTicks(g, core.CommandNone, 60)...)
	if countEvents[JumpApexEvent](events) != 1 || countEvents[LandedEvent](events) != 1 {
		t.Errorf("expected one apex and one landing, got %#v", events)
	}
	if g.Character().State() != OnGround || g.Character().Y() != 400 {
		t.Errorf("after the arc: state=%v y=%d", g.Character().State(), g.Character().Y())
	}
}

func TestCollectPowerUpOnce(t *testing.T) {
	g := newTestGame(t)

	// Four steps right put coin 0 (x 500..520) inside the hit box (x 460..560).
	runTicks(g, core.CommandMoveRight, 4)
	events := g.Tick(core.CommandJump)
	events = append(events, runTicks(g, core.CommandNone, 60)...)

	if got := countEvents[PowerUpCollectedEvent](events); got != 1 {
		t.Fatalf("collected %d times, expected once", got)
	}
	if g.State().Score != 20 {
		t.Errorf("score = %d, expected 20", g.State().Score)
	}

	coins := g.PowerUps()
	if !coins[0].IsHit() {
		t.Error("coin 0 should be hit")
	}
	if coins[0].Rect().Y1 != 330 {
		t.Errorf("coin 0 y1 = %d, expected 330", coins[0].Rect().Y1)
	}
	for _, p := range coins[1:] {
		if p.IsHit() {
			t.Errorf("%s should not be hit", p.Name())
		}
	}

	// A second jump over the same coin awards nothing.
	g.Tick(core.CommandJump)
	runTicks(g, core.CommandNone, 60)
	if g.State().Score != 20 {
		t.Errorf("score after second jump = %d, expected 20", g.State().Score)
	}
}

func TestOverlappingFreshPowerUpAwardsOnce(t *testing.T) {
	g := newTestGame(t)
	p, err := NewPowerUp("Gem", core.NewRect(450, 450, 470, 480))
	if err != nil {
		t.Fatal(err)
	}
	g.powerUps = []*PowerUp{p}

	first := g.Tick(core.CommandNone)
	second := g.Tick(core.CommandNone)

	if countEvents[PowerUpCollectedEvent](first) != 1 {
		t.Errorf("first tick should collect, got %#v", first)
	}
	if countEvents[PowerUpCollectedEvent](second) != 0 {
		t.Errorf("second tick should not collect, got %#v", second)
	}
	if g.State().Score != 20 {
		t.Errorf("score = %d, expected 20", g.State().Score)
	}
	if p.Rect().Y1 != 430 {
		t.Errorf("y1 = %d, expected a single 20 unit lift", p.Rect().Y1)
	}
}

func TestCollisionModes(t *testing.T) {
	// One step right puts coin 0 across the right edge of the hit box. Only
	// the intersection test counts that as a hit.
	tests := []struct {
		mode  config.CollisionMode
		score int
	}{
		{config.CollisionContainment, 0},
		{config.CollisionIntersect, 20},
	}

	for _, tc := range tests {
		t.Run(string(tc.mode), func(t *testing.T) {
			g := newTestGame(t, func(c *config.WorldConfig) { c.Collision.Mode = tc.mode })
			g.Tick(core.CommandMoveRight)
			g.Tick(core.CommandJump)
			runTicks(g, core.CommandNone, 60)

			if g.State().Score != tc.score {
				t.Errorf("score = %d, expected %d", g.State().Score, tc.score)
			}
		})
	}
}

func TestStepPause(t *testing.T) {
	g := newTestGame(t)

	res := g.Step(core.FrameOf(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("pause action should pause")
	}

	g.Step(core.FrameOf(core.ActionRight))
	if g.Background().Offset() != 0 || g.Snapshot().Tick != 0 {
		t.Error("paused game should not advance")
	}

	res = g.Step(core.FrameOf(core.ActionPause, core.ActionRight))
	if res.State.Paused {
		t.Error("second pause action should resume")
	}
	if g.Background().Offset() != -15 {
		t.Errorf("resume tick should apply input, offset=%d", g.Background().Offset())
	}
}

func TestReset(t *testing.T) {
	g := newTestGame(t)
	runTicks(g, core.CommandMoveRight, 4)
	g.Tick(core.CommandJump)
	runTicks(g, core.CommandNone, 20)

	if err := g.Reset(); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}

	fresh := newTestGame(t)
	if !reflect.DeepEqual(g.Snapshot(), fresh.Snapshot()) {
		t.Errorf("Reset should restore the initial snapshot")
	}
}

func TestGameDeterminism(t *testing.T) {
	script := []core.Command{}
	for i := 0; i < 200; i++ {
		switch {
		case i%40 == 0:
			script = append(script, core.CommandJump)
		case i%7 < 4:
			script = append(script, core.CommandMoveRight)
		case i%11 == 0:
			script = append(script, core.CommandMoveLeft)
		default:
			script = append(script, core.CommandNone)
		}
	}

	g1 := newTestGame(t)
	g2 := newTestGame(t)
	for _, cmd := range script {
		g1.Tick(cmd)
		g2.Tick(cmd)
	}

	if !reflect.DeepEqual(g1.Snapshot(), g2.Snapshot()) {
		t.Errorf("Determinism failed:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestSnapshot(t *testing.T) {
	g := newTestGame(t)
	runTicks(g, core.CommandMoveRight, 2)
	snap := g.Snapshot()

	if snap.Tick != 2 {
		t.Errorf("Tick = %d, expected 2", snap.Tick)
	}
	if snap.Character.Key != "right-3" || snap.Character.X != 400 || snap.Character.Y != 400 {
		t.Errorf("character sprite = %+v", snap.Character.Sprite)
	}
	if snap.Character.WorldX != 430 || snap.Character.JumpState != "on_ground" {
		t.Errorf("character = %+v", snap.Character)
	}
	if snap.Background.X != -30 || snap.Background.Key != BackgroundImageKey {
		t.Errorf("background = %+v", snap.Background)
	}
	if len(snap.PowerUps) != 5 {
		t.Fatalf("power-ups = %d, expected 5", len(snap.PowerUps))
	}
	// Power-ups are drawn relative to the scroll offset.
	if p := snap.PowerUps[1]; p.X != 670 || p.WorldX != 700 || p.Key != PowerUpImageKey {
		t.Errorf("power-up 1 = %+v", p)
	}
}

func TestSnapshotSpritesOrderedByLayer(t *testing.T) {
	g := newTestGame(t)
	sprites := g.Snapshot().Sprites()

	if len(sprites) != 7 {
		t.Fatalf("sprites = %d, expected 7", len(sprites))
	}
	if sprites[0].Key != BackgroundImageKey {
		t.Errorf("background should be drawn first, got %q", sprites[0].Key)
	}
	if sprites[1].Key != "left-1" {
		t.Errorf("character should precede power-ups on the same layer, got %q", sprites[1].Key)
	}
	for i := 1; i < len(sprites); i++ {
		if sprites[i].Layer < sprites[i-1].Layer {
			t.Errorf("sprites out of layer order at %d", i)
		}
	}
}

func TestImageKeys(t *testing.T) {
	g := newTestGame(t)
	keys := g.ImageKeys()

	want := map[string]bool{
		"background": true, "power-up": true, "power-up-hit": true,
		"left-1": true, "left-2": true, "left-3": true,
		"right-1": true, "right-2": true, "right-3": true,
	}
	if len(keys) != len(want) {
		t.Fatalf("ImageKeys() = %v", keys)
	}
	for _, k := range keys {
		if !want[k] {
			t.Errorf("unexpected key %q", k)
		}
	}
}
