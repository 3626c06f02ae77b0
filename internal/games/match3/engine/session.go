package engine

import "math/rand"

// Mode selects the game economy layered on top of the shared board.
type Mode int

const (
	ModeClassic Mode = iota
	ModeBlitz
	ModeTwist
	ModeCascadeRush
	ModeGemSurge
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeClassic:
		return "classic"
	case ModeBlitz:
		return "blitz"
	case ModeTwist:
		return "twist"
	case ModeCascadeRush:
		return "cascade_rush"
	case ModeGemSurge:
		return "gem_surge"
	default:
		return "unknown"
	}
}

// Phase is an advisory state label. Hosts set it to gate animation playback;
// the engine never enforces transitions between phases.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSwapping
	PhaseChecking
	PhaseRemoving
	PhaseFalling
	PhaseFilling
	PhaseGameOver
	PhasePaused
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSwapping:
		return "swapping"
	case PhaseChecking:
		return "checking"
	case PhaseRemoving:
		return "removing"
	case PhaseFalling:
		return "falling"
	case PhaseFilling:
		return "filling"
	case PhaseGameOver:
		return "game_over"
	case PhasePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// Unlimited is the sentinel for move and time budgets without a cap.
const (
	UnlimitedMoves = -1
	UnlimitedTime  = -1.0
)

// Default mode budgets and tuning. Hosts may override budgets through
// InitGameWithMode.
const (
	BlitzTimeLimit   = 60.0
	RushTimeLimit    = 30.0
	SurgeTimeLimit   = 45.0
	RushZoneInterval = 8.0
	RushZoneSize     = 3
	SurgeLineLife    = 8.0
	SurgeLineSpawn   = 5.0
	SurgeBaseTarget  = 1000

	// Level progression: reaching level n+1 takes n*LevelScoreStep more
	// score than level n did, capped at MaxLevel.
	LevelScoreStep = 1000
	MaxLevel       = 99
)

// Session is the single authoritative state of one game. All algorithms
// mutate it in place; hypothetical-move probing works on value copies of the
// gem grid. One session per active game, accessed from one goroutine.
type Session struct {
	rng *rand.Rand

	gems     gemGrid
	specials [BoardHeight][BoardWidth]SpecialType
	anims    [BoardHeight][BoardWidth]GemAnimation

	mode  Mode
	phase Phase

	score         int
	level         int
	movesLeft     int
	timeLeft      float64
	cascadeDepth  int
	cascadeScore  int
	gemsDestroyed int
	totalMatches  int

	cursorX, cursorY int

	matches      []MatchInfo
	matchedCells int
	lightning    Lightning

	pending         []PendingSpecial // capacity PendingSpecialCap
	droppedSpecials int

	effects        [EffectQueueCap]QueuedEffect
	effectHead     int
	effectCount    int
	droppedEffects int

	// Cascade Rush
	zoneActive     bool
	zoneX, zoneY   int
	zoneTimer      float64
	zoneSpawnTimer float64
	zoneCaptures   int

	// Gem Surge
	wave          int
	waveTarget    int
	waveScore     int
	featuredGem   GemType
	surgeLines    [SurgeLineCap]SurgeLine
	lineSpawnTime float64
}

// NewSession creates a Classic session over the given random source.
// The source drives gem generation, shuffling, and zone/line placement;
// a fixed seed makes a whole run reproducible.
func NewSession(rng *rand.Rand) *Session {
	s := &Session{rng: rng}
	s.InitGame()
	return s
}

// InitGame resets the session to Classic mode with unlimited moves and time.
func (s *Session) InitGame() {
	s.reset(ModeClassic, UnlimitedMoves, UnlimitedTime)
}

// InitGameMode resets the session for the given mode with that mode's
// default budgets and runs its post-init.
func (s *Session) InitGameMode(mode Mode) {
	switch mode {
	case ModeBlitz:
		s.reset(mode, UnlimitedMoves, BlitzTimeLimit)
	case ModeCascadeRush:
		s.reset(mode, UnlimitedMoves, RushTimeLimit)
	case ModeGemSurge:
		s.reset(mode, UnlimitedMoves, SurgeTimeLimit)
	default:
		s.reset(mode, UnlimitedMoves, UnlimitedTime)
	}
}

// InitGameWithMode resets the session keeping the current mode but with
// explicit move/time budgets (UnlimitedMoves / UnlimitedTime for none).
func (s *Session) InitGameWithMode(moves int, timeLimit float64) {
	s.reset(s.mode, moves, timeLimit)
}

// reset wipes the whole session, preserving only mode and budget inputs,
// then rebuilds the board and runs mode post-init.
func (s *Session) reset(mode Mode, moves int, timeLimit float64) {
	rng := s.rng
	*s = Session{rng: rng}

	s.mode = mode
	s.movesLeft = moves
	s.timeLeft = timeLimit
	s.level = 1
	s.phase = PhaseIdle
	s.pending = make([]PendingSpecial, 0, PendingSpecialCap)

	s.initBoard()

	switch mode {
	case ModeCascadeRush:
		s.zoneSpawnTimer = RushZoneInterval
	case ModeGemSurge:
		s.wave = 1
		s.waveTarget = SurgeBaseTarget
		s.featuredGem = s.randomGem()
		s.lineSpawnTime = SurgeLineSpawn
	}
}

// Mode returns the active game mode.
func (s *Session) Mode() Mode { return s.mode }

// Phase returns the advisory phase label.
func (s *Session) Phase() Phase { return s.phase }

// SetPhase sets the advisory phase label. Any transition is accepted.
func (s *Session) SetPhase(p Phase) { s.phase = p }

// Score returns the total score.
func (s *Session) Score() int { return s.score }

// Level returns the current level, derived from score, in [1, MaxLevel].
func (s *Session) Level() int { return s.level }

// MovesLeft returns remaining moves, or UnlimitedMoves.
func (s *Session) MovesLeft() int { return s.movesLeft }

// TimeLeft returns remaining seconds, or UnlimitedTime.
func (s *Session) TimeLeft() float64 { return s.timeLeft }

// CascadeDepth returns the current chain depth: 0 for the player's own move,
// incremented for every follow-up chain step.
func (s *Session) CascadeDepth() int { return s.cascadeDepth }

// CascadeScore returns the score accumulated since the last player move.
func (s *Session) CascadeScore() int { return s.cascadeScore }

// AdvanceCascade deepens the chain by one step. Hosts pacing the resolve
// cycle across ticks call it before each pass after the first.
func (s *Session) AdvanceCascade() { s.cascadeDepth++ }

// GemsDestroyed returns the count of gems destroyed over the session.
func (s *Session) GemsDestroyed() int { return s.gemsDestroyed }

// TotalMatches returns the count of matches resolved over the session.
func (s *Session) TotalMatches() int { return s.totalMatches }

// Cursor returns the selection cursor position.
func (s *Session) Cursor() (x, y int) { return s.cursorX, s.cursorY }

// SetCursor moves the selection cursor, clamped to the board.
func (s *Session) SetCursor(x, y int) {
	s.cursorX = clampInt(x, 0, BoardWidth-1)
	s.cursorY = clampInt(y, 0, BoardHeight-1)
}

// DroppedSpecials returns how many pending specials were discarded because
// the pending list was full.
func (s *Session) DroppedSpecials() int { return s.droppedSpecials }

// DroppedEffects returns how many queued effects were discarded because the
// effect queue was full.
func (s *Session) DroppedEffects() int { return s.droppedEffects }

// ConsumeTime decrements the remaining time by dt seconds (no-op when the
// session has no time budget) and returns whether time remains.
func (s *Session) ConsumeTime(dt float64) bool {
	if s.timeLeft < 0 {
		return true
	}
	s.timeLeft -= dt
	if s.timeLeft < 0 {
		s.timeLeft = 0
	}
	return s.timeLeft > 0
}

// AddTime credits bonus seconds to a timed session.
func (s *Session) AddTime(bonus float64) {
	if s.timeLeft < 0 {
		return
	}
	s.timeLeft += bonus
}

// consumeMove decrements the move budget after a successful player move.
func (s *Session) consumeMove() {
	if s.movesLeft > 0 {
		s.movesLeft--
	}
}

// updateLevel recomputes the level from the score. Reaching level n+1 costs
// n*LevelScoreStep more than level n did (an arithmetic series), capped at
// MaxLevel.
func (s *Session) updateLevel() {
	for s.level < MaxLevel && s.score >= levelThreshold(s.level+1) {
		s.level++
	}
}

// levelThreshold is the cumulative score needed to reach the given level.
func levelThreshold(level int) int {
	n := level - 1
	return LevelScoreStep * n * (n + 1) / 2
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
