package match3

import (
	"math/rand"

	"github.com/vovakirdan/gemfall/internal/core"
	"github.com/vovakirdan/gemfall/internal/games/match3/engine"
	"github.com/vovakirdan/gemfall/internal/registry"
)

// resolvePhase tracks where the adapter is in the per-move cycle.
type resolvePhase int

const (
	phaseIdle resolvePhase = iota
	phaseResolving
)

const (
	// Default delay between cascade passes, so chains play out as visible
	// beats instead of collapsing in one frame.
	defaultCascadeBeatMs = 160
	// Default hint highlight duration.
	defaultHintSeconds = 3.0
)

// Game adapts the match-3 engine to the platform game interface. It owns the
// cursor, selection, and pacing; all board rules live in the engine session.
type Game struct {
	mode    engine.Mode
	session *engine.Session
	rng     *rand.Rand
	tick    uint64

	screenW  int
	screenH  int
	tickRate int

	gameOver bool
	paused   bool
	tooSmall bool
	maxChain int

	// Swap selection (all modes except Twist).
	selected   bool
	selX, selY int

	// Hint highlight.
	hintActive bool
	hintCells  [2]engine.Cell
	hintTicks  int

	// Cascade pacing, derived from the tick rate and UI tuning.
	phase        resolvePhase
	resolveDelay int
	resolveBeat  int
	hintDuration int
	showChain    bool
	firstPass    bool
}

// Package-level variables for config overrides, applied on the next Reset.
var (
	configuredMoveLimit = engine.UnlimitedMoves
	configuredTimeLimit = engine.UnlimitedTime

	configuredHintSeconds = defaultHintSeconds
	configuredBeatMs      = defaultCascadeBeatMs
	configuredShowChain   = true
)

// SetMoveLimit overrides the move budget for the next game. Pass
// engine.UnlimitedMoves to clear the override.
func SetMoveLimit(moves int) {
	configuredMoveLimit = moves
}

// SetTimeLimit overrides the time budget in seconds for the next game. Pass
// engine.UnlimitedTime to clear the override.
func SetTimeLimit(seconds float64) {
	configuredTimeLimit = seconds
}

// SetUITuning sets presentation pacing: hint highlight duration in seconds,
// delay between cascade passes in milliseconds, and whether the chain
// counter is drawn. Applied on the next Reset, for all future games.
func SetUITuning(hintSeconds float64, cascadeBeatMs int, showChain bool) {
	if hintSeconds > 0 {
		configuredHintSeconds = hintSeconds
	}
	if cascadeBeatMs > 0 {
		configuredBeatMs = cascadeBeatMs
	}
	configuredShowChain = showChain
}

// New creates a game in the given mode.
func New(mode engine.Mode) *Game {
	return &Game{mode: mode}
}

func init() {
	register := func(id string, mode engine.Mode) {
		registry.Register(id, func() registry.Game {
			return New(mode)
		})
	}
	register("gems", engine.ModeClassic)
	register("gems_blitz", engine.ModeBlitz)
	register("gems_twist", engine.ModeTwist)
	register("gems_rush", engine.ModeCascadeRush)
	register("gems_surge", engine.ModeGemSurge)
}

// ID returns the game identifier.
func (g *Game) ID() string {
	switch g.mode {
	case engine.ModeBlitz:
		return "gems_blitz"
	case engine.ModeTwist:
		return "gems_twist"
	case engine.ModeCascadeRush:
		return "gems_rush"
	case engine.ModeGemSurge:
		return "gems_surge"
	default:
		return "gems"
	}
}

// Title returns the display name.
func (g *Game) Title() string {
	switch g.mode {
	case engine.ModeBlitz:
		return "Gemfall Blitz"
	case engine.ModeTwist:
		return "Gemfall Twist"
	case engine.ModeCascadeRush:
		return "Gemfall Cascade Rush"
	case engine.ModeGemSurge:
		return "Gemfall Gem Surge"
	default:
		return "Gemfall"
	}
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}

	g.gameOver = false
	g.paused = false
	g.maxChain = 0
	g.selected = false
	g.hintActive = false
	g.phase = phaseIdle
	g.resolveDelay = 0

	g.resolveBeat = configuredBeatMs * g.tickRate / 1000
	if g.resolveBeat < 1 {
		g.resolveBeat = 1
	}
	g.hintDuration = int(configuredHintSeconds * float64(g.tickRate))
	g.showChain = configuredShowChain

	g.session = engine.NewSession(g.rng)
	g.session.InitGameMode(g.mode)
	if configuredMoveLimit != engine.UnlimitedMoves || configuredTimeLimit != engine.UnlimitedTime {
		g.session.InitGameWithMode(configuredMoveLimit, configuredTimeLimit)
		configuredMoveLimit = engine.UnlimitedMoves
		configuredTimeLimit = engine.UnlimitedTime
	}
	g.session.SetCursor(engine.BoardWidth/2, engine.BoardHeight/2)

	g.checkScreenSize()
}

// Session exposes the underlying engine session, mainly for tests.
func (g *Game) Session() *engine.Session {
	return g.session
}

// checkScreenSize checks if the screen is large enough for the board and HUD.
func (g *Game) checkScreenSize() {
	minW := boardPixelW + 8
	minH := boardPixelH + hudHeight + 4
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.gameOver {
		return core.StepResult{State: g.State()}
	}

	g.updateClocks()
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if g.hintActive {
		g.hintTicks--
		if g.hintTicks <= 0 {
			g.hintActive = false
		}
	}

	switch g.phase {
	case phaseIdle:
		g.handleInput(in)
	case phaseResolving:
		g.stepResolve()
	}

	return core.StepResult{State: g.State()}
}

// updateClocks feeds real time into the session's mode timers.
func (g *Game) updateClocks() {
	dt := 1.0 / float64(g.tickRate)
	if !g.session.UpdateTimers(dt) {
		g.gameOver = true
		g.session.SetPhase(engine.PhaseGameOver)
	}
}

// handleInput processes one tick of player input while the board is idle.
func (g *Game) handleInput(in core.InputFrame) {
	cx, cy := g.session.Cursor()
	switch {
	case in.Has(core.ActionUp):
		g.session.SetCursor(cx, cy-1)
	case in.Has(core.ActionDown):
		g.session.SetCursor(cx, cy+1)
	case in.Has(core.ActionLeft):
		g.session.SetCursor(cx-1, cy)
	case in.Has(core.ActionRight):
		g.session.SetCursor(cx+1, cy)
	}

	if in.Has(core.ActionHint) {
		g.showHint()
	}
	if in.Has(core.ActionShuffle) {
		g.session.ShuffleBoard()
		g.selected = false
		return
	}
	if in.Has(core.ActionSelect) {
		if g.mode == engine.ModeTwist {
			g.tryRotate()
		} else {
			g.trySelect()
		}
	}
}

// trySelect implements the two-tap swap flow: first tap selects, second tap
// on an adjacent cell attempts the swap, anywhere else moves the selection.
func (g *Game) trySelect() {
	cx, cy := g.session.Cursor()
	if !g.selected {
		g.selected = true
		g.selX, g.selY = cx, cy
		return
	}
	if cx == g.selX && cy == g.selY {
		g.selected = false
		return
	}
	if !engine.IsAdjacent(g.selX, g.selY, cx, cy) {
		g.selX, g.selY = cx, cy
		return
	}

	if g.session.TrySwap(g.selX, g.selY, cx, cy) {
		g.afterMove(g.selX, g.selY, cx, cy)
	}
	g.selected = false
}

// tryRotate attempts a Twist rotation with the cursor as the block's
// top-left corner, clamped to the board.
func (g *Game) tryRotate() {
	cx, cy := g.session.Cursor()
	if cx > engine.BoardWidth-2 {
		cx = engine.BoardWidth - 2
	}
	if cy > engine.BoardHeight-2 {
		cy = engine.BoardHeight - 2
	}
	if g.session.TryRotate(cx, cy) {
		g.afterMove(cx, cy, cx+1, cy+1)
	}
}

// afterMove applies mode hooks for a successful move touching the given
// cells, then starts the paced resolve cycle.
func (g *Game) afterMove(x1, y1, x2, y2 int) {
	g.hintActive = false

	switch g.mode {
	case engine.ModeCascadeRush:
		if g.session.InRushZone(x1, y1) || g.session.InRushZone(x2, y2) {
			g.session.CaptureRushZone()
		}
	case engine.ModeGemSurge:
		for i, line := range g.session.SurgeLines() {
			if !line.Active {
				continue
			}
			if onSurgeLine(line, x1, y1) || onSurgeLine(line, x2, y2) {
				g.session.TriggerSurgeLine(i)
			}
		}
	}

	g.phase = phaseResolving
	g.firstPass = true
	g.resolveDelay = g.resolveBeat
	g.session.SetPhase(engine.PhaseChecking)
}

// onSurgeLine reports whether (x, y) lies on the given line.
func onSurgeLine(line engine.SurgeLine, x, y int) bool {
	if line.Horizontal {
		return y == line.Index
	}
	return x == line.Index
}

// stepResolve runs one cascade pass per delay window until the board is
// stable, then checks for exhaustion.
func (g *Game) stepResolve() {
	g.resolveDelay--
	if g.resolveDelay > 0 {
		return
	}

	if !g.firstPass {
		g.session.AdvanceCascade()
	}
	_, changed := g.session.ResolveStep()
	g.firstPass = false
	if depth := g.session.CascadeDepth(); depth > g.maxChain {
		g.maxChain = depth
	}

	// An armed lightning marker fires between passes; its holes and any
	// chained effects are picked up by the next pass.
	if g.session.Lightning().Active {
		g.session.LightningStrike()
		changed = true
	}

	if changed {
		g.resolveDelay = g.resolveBeat
		return
	}

	g.session.ClearAnimations()
	g.phase = phaseIdle
	g.session.SetPhase(engine.PhaseIdle)
	g.checkExhausted()
}

// checkExhausted ends or reshuffles a board with no remaining moves. Timed
// modes reshuffle for free; Classic and Twist end the game.
func (g *Game) checkExhausted() {
	if g.session.MovesLeft() == 0 {
		g.gameOver = true
		g.session.SetPhase(engine.PhaseGameOver)
		return
	}

	stuck := false
	if g.mode == engine.ModeTwist {
		stuck = g.session.CheckTwistGameOver()
	} else {
		stuck = g.session.CheckGameOver()
	}
	if !stuck {
		return
	}

	switch g.mode {
	case engine.ModeClassic, engine.ModeTwist:
		g.gameOver = true
		g.session.SetPhase(engine.PhaseGameOver)
	default:
		g.session.ShuffleBoard()
	}
}

// showHint looks up the first available move and highlights it.
func (g *Game) showHint() {
	if g.mode == engine.ModeTwist {
		x, y, ok := g.session.GetTwistHint()
		if !ok {
			return
		}
		g.hintCells = [2]engine.Cell{{X: x, Y: y}, {X: x + 1, Y: y + 1}}
		g.hintActive = true
		g.hintTicks = g.hintDuration
		return
	}

	x1, y1, x2, y2, ok := g.session.GetHint()
	if !ok {
		return
	}
	g.hintCells = [2]engine.Cell{{X: x1, Y: y1}, {X: x2, Y: y2}}
	g.hintActive = true
	g.hintTicks = g.hintDuration
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := 0
	if g.session != nil {
		score = g.session.Score()
	}
	return core.GameState{
		Score:    score,
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall,
	}
}

// RunStats reports run details for score storage: level reached, deepest
// cascade of the run, and seconds played.
func (g *Game) RunStats() (level, maxChain, durationSecs int) {
	if g.session == nil {
		return 1, 0, 0
	}
	return g.session.Level(), g.maxChain, int(g.tick / uint64(g.tickRate))
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	if g.mode == engine.ModeTwist {
		return "Arrows/WASD: Move | Space: Rotate | H: Hint | X: Shuffle | P: Pause | Q: Quit"
	}
	return "Arrows/WASD: Move | Space: Select/Swap | H: Hint | X: Shuffle | P: Pause | Q: Quit"
}
