package match3

import (
	"testing"

	"github.com/vovakirdan/gemfall/internal/core"
	"github.com/vovakirdan/gemfall/internal/games/match3/engine"
	"github.com/vovakirdan/gemfall/internal/registry"
)

func testConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = 42
	return cfg
}

func newTestGame(mode engine.Mode) *Game {
	g := New(mode)
	g.Reset(testConfig())
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestAllModesRegistered(t *testing.T) {
	for _, id := range []string{"gems", "gems_blitz", "gems_twist", "gems_rush", "gems_surge"} {
		if !registry.Exists(id) {
			t.Errorf("game %q not registered", id)
		}
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q): %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("created game ID = %q, want %q", g.ID(), id)
		}
	}
}

func TestResetIsDeterministic(t *testing.T) {
	a := newTestGame(engine.ModeClassic)
	b := newTestGame(engine.ModeClassic)
	if a.Session().Snapshot() != b.Session().Snapshot() {
		t.Error("same seed must produce identical sessions")
	}
}

func TestCursorMovement(t *testing.T) {
	g := newTestGame(engine.ModeClassic)
	startX, startY := g.Session().Cursor()

	g.Step(frame(core.ActionRight))
	if x, _ := g.Session().Cursor(); x != startX+1 {
		t.Errorf("cursor x = %d after right, want %d", x, startX+1)
	}
	g.Step(frame(core.ActionDown))
	if _, y := g.Session().Cursor(); y != startY+1 {
		t.Errorf("cursor y = %d after down, want %d", y, startY+1)
	}

	// The cursor clamps at the board edge.
	for i := 0; i < engine.BoardWidth+2; i++ {
		g.Step(frame(core.ActionLeft))
	}
	if x, _ := g.Session().Cursor(); x != 0 {
		t.Errorf("cursor x = %d after walking off the left edge, want 0", x)
	}
}

func TestPauseBlocksInput(t *testing.T) {
	g := newTestGame(engine.ModeClassic)
	g.Step(frame(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("pause action did not pause")
	}

	x, y := g.Session().Cursor()
	g.Step(frame(core.ActionRight))
	if nx, ny := g.Session().Cursor(); nx != x || ny != y {
		t.Error("cursor moved while paused")
	}

	g.Step(frame(core.ActionPause))
	if g.State().Paused {
		t.Error("second pause action did not resume")
	}
}

func TestSelectAndSwapStartsResolve(t *testing.T) {
	g := newTestGame(engine.ModeClassic)
	s := g.Session()

	// Rebuild a controlled corner: gem 7 pair at (0,0)-(1,0) and a third
	// gem 7 at (2,1); swapping (2,0) and (2,1) completes the run.
	s.SetGem(0, 0, 7)
	s.SetGem(1, 0, 7)
	s.SetGem(2, 0, 1)
	s.SetGem(2, 1, 7)
	s.SetGem(3, 0, 2)
	s.SetGem(0, 1, 3)
	s.SetGem(1, 1, 4)
	s.SetGem(3, 1, 5)

	s.SetCursor(2, 0)
	g.Step(frame(core.ActionSelect))
	if !g.selected {
		t.Fatal("first select did not mark the cell")
	}
	g.Step(frame(core.ActionDown))
	g.Step(frame(core.ActionSelect))

	if g.phase != phaseResolving {
		t.Fatal("valid swap did not start the resolve cycle")
	}
	if g.selected {
		t.Error("selection must clear after a swap attempt")
	}

	// Drive ticks until the cascade settles.
	for i := 0; i < 60*20 && g.phase != phaseIdle; i++ {
		g.Step(frame())
	}
	if g.phase != phaseIdle {
		t.Fatal("resolve cycle never settled")
	}
	if s.Score() == 0 {
		t.Error("completed match earned no score")
	}
}

func TestSelectSameCellDeselects(t *testing.T) {
	g := newTestGame(engine.ModeClassic)
	g.Step(frame(core.ActionSelect))
	if !g.selected {
		t.Fatal("select did not mark the cell")
	}
	g.Step(frame(core.ActionSelect))
	if g.selected {
		t.Error("selecting the marked cell again must deselect")
	}
}

func TestTimeLimitEndsGame(t *testing.T) {
	SetTimeLimit(0.02)
	g := newTestGame(engine.ModeBlitz)

	for i := 0; i < 10 && !g.State().GameOver; i++ {
		g.Step(frame())
	}
	if !g.State().GameOver {
		t.Error("expired timer did not end the game")
	}
}

func TestMoveLimitOverride(t *testing.T) {
	SetMoveLimit(5)
	g := newTestGame(engine.ModeClassic)
	if g.Session().MovesLeft() != 5 {
		t.Errorf("moves left = %d, want configured 5", g.Session().MovesLeft())
	}

	// The override is one-shot; the next reset reverts to the mode default.
	g.Reset(testConfig())
	if g.Session().MovesLeft() != engine.UnlimitedMoves {
		t.Errorf("moves left = %d after second reset, want unlimited", g.Session().MovesLeft())
	}
}

func TestHintHighlight(t *testing.T) {
	g := newTestGame(engine.ModeClassic)
	g.Step(frame(core.ActionHint))
	if !g.hintActive {
		t.Skip("fresh board has no valid move for this seed")
	}
	if !g.Session().IsValidSwap(g.hintCells[0].X, g.hintCells[0].Y, g.hintCells[1].X, g.hintCells[1].Y) {
		t.Error("hint does not name a valid swap")
	}
}

func TestTooSmallScreenPauses(t *testing.T) {
	g := New(engine.ModeClassic)
	cfg := testConfig()
	cfg.ScreenW = 10
	cfg.ScreenH = 5
	g.Reset(cfg)

	if !g.State().Paused {
		t.Error("tiny screen must report paused")
	}
	dst := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.Render(dst) // must not panic on a tiny buffer
}

func TestRenderDrawsBoardAndHUD(t *testing.T) {
	g := newTestGame(engine.ModeGemSurge)
	dst := core.NewScreen(80, 30)
	g.Render(dst)

	out := dst.String()
	if len(out) == 0 {
		t.Fatal("render produced nothing")
	}
	found := false
	for _, r := range out {
		if r == '●' {
			found = true
			break
		}
	}
	if !found {
		t.Error("render drew no gems")
	}
}

func TestTwistRotationFlow(t *testing.T) {
	g := newTestGame(engine.ModeTwist)
	s := g.Session()

	// Controlled corner: rotating at (0,0) pulls the gem 7 at (0,1) up to
	// (0,0) and the one at (1,1) into (0,1), completing a vertical run with
	// the 7 already at (0,2).
	s.SetGem(0, 0, 1)
	s.SetGem(1, 0, 2)
	s.SetGem(2, 0, 3)
	s.SetGem(0, 1, 7)
	s.SetGem(1, 1, 7)
	s.SetGem(2, 1, 4)
	s.SetGem(0, 2, 7)
	s.SetGem(1, 2, 5)
	s.SetGem(2, 2, 6)
	s.SetGem(0, 3, 2)

	s.SetCursor(0, 0)
	g.Step(frame(core.ActionSelect))
	if g.phase != phaseResolving {
		t.Fatal("valid rotation did not start the resolve cycle")
	}
}
