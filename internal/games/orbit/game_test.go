package orbit

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-orbit/internal/config"
	"github.com/vovakirdan/tui-orbit/internal/core"
	"github.com/vovakirdan/tui-orbit/internal/games/orbit/polar"
	"github.com/vovakirdan/tui-orbit/internal/registry"
)

const frameTime = time.Second / 60

var testRuntime = core.RuntimeConfig{
	ScreenW:  80,
	ScreenH:  24,
	TickRate: 60,
}

// newTestGame isolates the game from any config in the user's home or cwd.
func newTestGame(t *testing.T, ctor func() *Game) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	SetConfigPath("")
	SetDifficultyPreset("")

	g := ctor()
	g.Reset(testRuntime)
	return g
}

func jumpFrame() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionJump)
	return in
}

func TestModesRegistered(t *testing.T) {
	tests := []struct {
		id    string
		title string
	}{
		{"orbit", "Orbit"},
		{"orbit_pulse", "Orbit: Pulse"},
		{"orbit_rewind", "Orbit: Rewind"},
	}

	for _, tc := range tests {
		g, err := registry.Create(tc.id)
		if err != nil {
			t.Fatalf("Create(%q) error = %v", tc.id, err)
		}
		if g.ID() != tc.id || g.Title() != tc.title {
			t.Errorf("Create(%q) = %q/%q, expected %q/%q", tc.id, g.ID(), g.Title(), tc.id, tc.title)
		}
	}
}

func TestModeForGame(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	for _, id := range []string{IDClassic, IDPulse, IDRewind} {
		mode, ok := ModeForGame(id)
		if !ok {
			t.Fatalf("ModeForGame(%q) not found", id)
		}
		if _, _, err := LoadSettings("", mode, ""); err != nil {
			t.Errorf("LoadSettings for %q: %v", id, err)
		}
	}
	if _, ok := ModeForGame("snake"); ok {
		t.Error("unknown IDs should not map to a mode")
	}
}

func TestGameReset(t *testing.T) {
	g := newTestGame(t, New)

	state := g.State()
	if state.Score != 0 || state.GameOver || state.Paused {
		t.Errorf("fresh game state = %+v", state)
	}
	f := g.Frame()
	if f.Radius != 100 || f.Angle != 0 || f.Zoom != 1 {
		t.Errorf("fresh frame radius=%v angle=%v zoom=%v", f.Radius, f.Angle, f.Zoom)
	}
	if len(f.Curve) != 2000 {
		t.Errorf("curve has %d points, expected 2000", len(f.Curve))
	}
}

func TestGameFallsIntoSpiral(t *testing.T) {
	g := newTestGame(t, New)

	hit := false
	for i := 0; i < 600 && !g.State().GameOver; i++ {
		result := g.Step(core.NewInputFrame(), frameTime)
		hit = hit || result.Hit
	}

	if !g.State().GameOver {
		t.Fatal("a bird that never jumps should hit the spiral within 10 seconds")
	}
	if !hit {
		t.Error("the game-ending step should report Hit")
	}
	if polar.CollisionColor(g.Frame().Collided) != core.ColorRed {
		t.Error("the final frame should show the bird in the collision color")
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() polar.Frame {
		g := newTestGame(t, New)
		for i := 0; i < 300; i++ {
			in := core.NewInputFrame()
			if i%20 == 0 {
				in.Set(core.ActionJump)
			}
			g.Step(in, frameTime)
		}
		return g.Frame()
	}

	a, b := run(), run()
	if a.Radius != b.Radius || a.Angle != b.Angle || a.Zoom != b.Zoom || a.Score != b.Score {
		t.Errorf("Determinism failed: %+v vs %+v", a, b)
	}
}

func TestGameJumpOncePerFrame(t *testing.T) {
	g := newTestGame(t, New)

	in := core.NewInputFrame()
	in.Set(core.ActionJump)
	in.Set(core.ActionJump)
	g.Step(in, 0)

	if got := g.Frame().Velocity; got != 50 {
		t.Errorf("Velocity after one frame with repeated jumps = %v, expected 50", got)
	}
}

func TestGameZeroStep(t *testing.T) {
	g := newTestGame(t, New)
	g.Step(jumpFrame(), frameTime)
	before := g.Frame()

	g.Step(core.NewInputFrame(), 0)
	after := g.Frame()

	if after.Radius != before.Radius || after.Angle != before.Angle || after.Zoom != before.Zoom {
		t.Errorf("dt=0 changed the state: %+v -> %+v", before, after)
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(t, New)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause, frameTime)
	if !g.State().Paused {
		t.Fatal("ActionPause should pause the game")
	}

	before := g.Frame()
	for i := 0; i < 30; i++ {
		g.Step(jumpFrame(), frameTime)
	}
	if g.Frame().Radius != before.Radius || g.Frame().Velocity != before.Velocity {
		t.Error("a paused game should not advance")
	}

	g.Step(pause, frameTime)
	if g.State().Paused {
		t.Error("a second ActionPause should resume")
	}
}

func TestGameRestart(t *testing.T) {
	g := newTestGame(t, New)
	for i := 0; i < 600 && !g.State().GameOver; i++ {
		g.Step(core.NewInputFrame(), frameTime)
	}
	if !g.State().GameOver {
		t.Fatal("expected game over")
	}

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart, frameTime)

	if g.State().GameOver || g.Frame().Radius != 100 {
		t.Errorf("restart should start a fresh run, state=%+v radius=%v", g.State(), g.Frame().Radius)
	}
}

func TestRewindCostsLives(t *testing.T) {
	g := newTestGame(t, NewRewind)

	if g.Frame().Lives != 3 {
		t.Fatalf("rewind should start with 3 lives, got %d", g.Frame().Lives)
	}

	sawReset := false
	deaths := 0
	for i := 0; i < 60*60 && !g.State().GameOver; i++ {
		res := g.Step(core.NewInputFrame(), frameTime)
		f := g.Frame()
		if f.Deaths > deaths && !res.State.GameOver {
			sawReset = true
			if !res.Hit || f.Radius != 100 {
				t.Errorf("a lost life should report Hit and reset the bird, hit=%v radius=%v", res.Hit, f.Radius)
			}
		}
		deaths = f.Deaths
	}

	if !sawReset {
		t.Error("expected at least one collision that did not end the run")
	}
	if !g.State().GameOver {
		t.Fatal("losing every life should end the run")
	}
	if f := g.Frame(); f.Deaths != 3 || f.Lives != 0 {
		t.Errorf("Deaths=%d Lives=%d, expected 3 and 0", f.Deaths, f.Lives)
	}
}

func TestPulseModeCountsCycles(t *testing.T) {
	g := newTestGame(t, NewPulse)

	// Jump often enough to stay clear of the inner arm for a few seconds.
	for i := 0; i < 60*8 && !g.State().GameOver; i++ {
		in := core.NewInputFrame()
		if i%40 == 0 {
			in.Set(core.ActionJump)
		}
		g.Step(in, frameTime)
	}

	if !g.settings.Pulse {
		t.Fatal("pulse mode should enable the pulse setting")
	}
	f := g.Frame()
	if f.Angle >= 3.2 && f.Cycles == 0 {
		t.Errorf("angle %v crossed a half turn but Cycles is 0", f.Angle)
	}
	if !strings.Contains(g.hudText(), "Cycles:") {
		t.Error("pulse HUD should show the cycle counter")
	}
}

func TestDifficultyPresetLives(t *testing.T) {
	g := newTestGame(t, NewRewind)
	SetDifficultyPreset("easy")
	t.Cleanup(func() { SetDifficultyPreset("") })
	g.Reset(testRuntime)

	if g.Frame().Lives != 5 {
		t.Errorf("easy rewind should have 5 lives, got %d", g.Frame().Lives)
	}

	SetDifficultyPreset("bogus")
	if difficultyPreset != "" {
		t.Errorf("unknown preset should clear the setting, got %q", difficultyPreset)
	}
}

func TestPresetSameForGameAndLoadSettings(t *testing.T) {
	for _, name := range []string{"", "easy", "normal", "hard", "fixed"} {
		t.Run("preset="+name, func(t *testing.T) {
			g := newTestGame(t, New)
			SetDifficultyPreset(name)
			t.Cleanup(func() { SetDifficultyPreset("") })
			g.Reset(testRuntime)

			preset, err := config.ParsePreset(name)
			if err != nil {
				t.Fatal(err)
			}
			_, cfg, err := LoadSettings("", config.ModeClassic, preset)
			if err != nil {
				t.Fatal(err)
			}
			dm := config.NewDifficultyManager(cfg.Difficulty)

			if g.difficulty.IsEnabled() != dm.IsEnabled() {
				t.Errorf("IsEnabled: game %v, LoadSettings %v", g.difficulty.IsEnabled(), dm.IsEnabled())
			}
			for _, score := range []int{0, 10, 60} {
				if got, want := g.difficulty.Pace(score, 0), dm.Pace(score, 0); got != want {
					t.Errorf("Pace(%d): game %v, LoadSettings %v", score, got, want)
				}
			}
		})
	}
}

func TestNoPresetUsesConfigAsWritten(t *testing.T) {
	g := newTestGame(t, New)
	if got := g.Pace(); got != 1 {
		t.Errorf("without a preset the pace should start at the config's level 0, got %v", got)
	}

	path := filepath.Join(t.TempDir(), "calm.yaml")
	if err := os.WriteFile(path, []byte("difficulty:\n  enabled: false\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	preset, _ := config.ParsePreset("")
	_, cfg, err := LoadSettings(path, config.ModeClassic, preset)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Difficulty.Enabled {
		t.Error("an empty preset must not override difficulty.enabled")
	}
}

func TestLoadSettingsRejectsMalformedConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	content := "bird:\n  lift: -1\nrules:\n  collision_policy: pixels\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	_, _, err := LoadSettings(path, config.ModeClassic, "")
	if !errors.Is(err, polar.ErrInvalidSettings) {
		t.Fatalf("LoadSettings() error = %v, expected ErrInvalidSettings", err)
	}
	for _, field := range []string{"lift", "collision_policy"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error should mention %s: %v", field, err)
		}
	}

	if _, _, err := LoadSettings("", "warp", ""); err == nil {
		t.Error("LoadSettings() with an unknown mode should fail")
	}
}

func TestResetFallsBackOnBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("zoom:\n  floor: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	g := newTestGame(t, New)
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })
	g.Reset(testRuntime)

	if g.settings.ZoomFloor != 0.1 {
		t.Errorf("invalid config should fall back to defaults, zoom floor = %v", g.settings.ZoomFloor)
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, New)
	screen := core.NewScreen(testRuntime.ScreenW, testRuntime.ScreenH)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD row = %q", screen.Row(0))
	}

	// The bird starts at (100, 0): right of center on the middle row.
	v := newViewport(screen.Width(), screen.Height())
	bx, by := v.cell(polar.Point{X: 100})
	if cell := screen.GetCell(bx, by); cell.Rune != BirdChar || cell.Color != core.ColorWhite {
		t.Errorf("bird cell at (%d, %d) = %+v", bx, by, cell)
	}
	if !strings.ContainsRune(screen.String(), CurveChar) {
		t.Error("spiral was not drawn")
	}
	cx, cy := v.cell(polar.Point{})
	if screen.Get(cx, cy) != CenterChar {
		t.Error("center marker missing")
	}
}

func TestRenderGameOverAndTooSmall(t *testing.T) {
	g := newTestGame(t, New)
	for i := 0; i < 600 && !g.State().GameOver; i++ {
		g.Step(core.NewInputFrame(), frameTime)
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over box missing")
	}

	small := core.NewScreen(10, 5)
	g.Render(small)
	if !strings.Contains(small.String(), "too") {
		t.Errorf("small screen should show a size warning, got %q", small.String())
	}
}

func TestViewportAspect(t *testing.T) {
	v := newViewport(80, 25)

	x0, y0 := v.project(polar.Point{})
	x1, _ := v.project(polar.Point{X: ViewRadius})
	_, y2 := v.project(polar.Point{Y: ViewRadius})

	dx := x1 - x0
	dy := y0 - y2
	if dx <= 0 || dy <= 0 {
		t.Fatalf("projection flipped axes: dx=%v dy=%v", dx, dy)
	}
	if math.Abs(dx-2*dy) > 1e-9 {
		t.Errorf("x extent %v should be twice the y extent %v", dx, dy)
	}
	if x1 > 79 || y2 < 1-1e-9 {
		t.Errorf("ViewRadius should fit on screen, got x=%v y=%v", x1, y2)
	}
}
