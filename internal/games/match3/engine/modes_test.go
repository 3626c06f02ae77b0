package engine

import (
	"math"
	"testing"
)

func TestModeBudgets(t *testing.T) {
	tests := []struct {
		mode  Mode
		moves int
		time  float64
	}{
		{ModeClassic, UnlimitedMoves, UnlimitedTime},
		{ModeBlitz, UnlimitedMoves, BlitzTimeLimit},
		{ModeTwist, UnlimitedMoves, UnlimitedTime},
		{ModeCascadeRush, UnlimitedMoves, RushTimeLimit},
		{ModeGemSurge, UnlimitedMoves, SurgeTimeLimit},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			s := newTestSession(1)
			s.InitGameMode(tt.mode)
			if s.Mode() != tt.mode {
				t.Errorf("mode = %v, want %v", s.Mode(), tt.mode)
			}
			if s.MovesLeft() != tt.moves {
				t.Errorf("moves = %d, want %d", s.MovesLeft(), tt.moves)
			}
			if s.TimeLeft() != tt.time {
				t.Errorf("time = %v, want %v", s.TimeLeft(), tt.time)
			}
		})
	}
}

func TestInitGameWithModeKeepsMode(t *testing.T) {
	s := newTestSession(1)
	s.InitGameMode(ModeBlitz)
	s.InitGameWithMode(20, 90)
	if s.Mode() != ModeBlitz {
		t.Errorf("mode = %v, want blitz preserved", s.Mode())
	}
	if s.MovesLeft() != 20 || s.TimeLeft() != 90 {
		t.Errorf("budgets = %d moves, %v s; want 20, 90", s.MovesLeft(), s.TimeLeft())
	}
}

func TestConsumeTime(t *testing.T) {
	s := newTestSession(1)
	s.InitGameMode(ModeBlitz)
	if !s.ConsumeTime(30) {
		t.Error("half the budget spent; time should remain")
	}
	if s.ConsumeTime(31) {
		t.Error("budget exhausted; want false")
	}
	if s.TimeLeft() != 0 {
		t.Errorf("time clamps at 0, got %v", s.TimeLeft())
	}

	// Untimed sessions never run out.
	s.InitGameMode(ModeClassic)
	if !s.ConsumeTime(1e9) {
		t.Error("untimed session reported time out")
	}
	if s.TimeLeft() != UnlimitedTime {
		t.Errorf("untimed session time = %v, want sentinel", s.TimeLeft())
	}
}

func TestZoneDuration(t *testing.T) {
	if d := zoneDuration(1); d != 10.0 {
		t.Errorf("level 1 duration = %v, want 10", d)
	}
	if d := zoneDuration(2); math.Abs(d-9.0) > 1e-9 {
		t.Errorf("level 2 duration = %v, want 9", d)
	}
	if d := zoneDuration(50); d != 3.0 {
		t.Errorf("deep level duration = %v, want floor 3", d)
	}
}

func TestRushZoneSpawnAndExpiry(t *testing.T) {
	s := newTestSession(2)
	s.InitGameMode(ModeCascadeRush)

	if _, _, ok := s.RushZone(); ok {
		t.Fatal("zone active at start")
	}
	s.UpdateTimers(RushZoneInterval)
	x, y, ok := s.RushZone()
	if !ok {
		t.Fatal("zone did not spawn after the interval")
	}
	if x < 0 || x+RushZoneSize > BoardWidth || y < 0 || y+RushZoneSize > BoardHeight {
		t.Errorf("zone at (%d,%d) is not fully on the board", x, y)
	}
	if !s.InRushZone(x, y) || !s.InRushZone(x+2, y+2) {
		t.Error("InRushZone misses the zone's own cells")
	}
	if s.InRushZone(x-1, y) && x > 0 {
		t.Error("InRushZone includes a cell left of the zone")
	}

	// At level 1 the zone lives 10 seconds.
	s.UpdateTimers(10.5)
	if _, _, ok := s.RushZone(); ok {
		t.Error("zone did not expire")
	}
	if s.ZoneCaptures() != 0 {
		t.Error("expired zone counted as captured")
	}
}

func TestCaptureRushZone(t *testing.T) {
	s := newTestSession(2)
	s.InitGameMode(ModeCascadeRush)
	if s.CaptureRushZone() {
		t.Fatal("capture with no active zone must fail")
	}

	s.UpdateTimers(RushZoneInterval)
	if !s.CaptureRushZone() {
		t.Fatal("capture with an active zone must succeed")
	}
	if s.ZoneCaptures() != 1 {
		t.Errorf("captures = %d, want 1", s.ZoneCaptures())
	}
	if _, _, ok := s.RushZone(); ok {
		t.Error("captured zone still active")
	}
}

func TestSurgeLineSpawnAndExpiry(t *testing.T) {
	s := newTestSession(3)
	s.InitGameMode(ModeGemSurge)

	s.UpdateTimers(SurgeLineSpawn)
	active := 0
	for _, l := range s.SurgeLines() {
		if l.Active {
			active++
			if l.Index < 0 || (l.Horizontal && l.Index >= BoardHeight) ||
				(!l.Horizontal && l.Index >= BoardWidth) {
				t.Errorf("line index %d out of range", l.Index)
			}
		}
	}
	if active != 1 {
		t.Fatalf("active lines = %d, want 1", active)
	}

	s.UpdateTimers(SurgeLineLife + 0.5)
	for _, l := range s.SurgeLines() {
		if l.Active && l.TimeLeft > SurgeLineLife {
			t.Error("expired line still active with stale timer")
		}
	}
}

func TestTriggerSurgeLine(t *testing.T) {
	s := newTestSession(3)
	s.InitGameMode(ModeGemSurge)
	setBoard(s, quietBoard())
	s.surgeLines[0] = SurgeLine{Active: true, Horizontal: true, Index: 2, TimeLeft: 5}

	if !s.TriggerSurgeLine(0) {
		t.Fatal("trigger of an active line must succeed")
	}
	for x := 0; x < BoardWidth; x++ {
		if s.GemAt(x, 2) != GemEmpty {
			t.Errorf("cell (%d,2) survived the line", x)
		}
	}
	// 150 + 25 * 8 = 350, booked to both score and wave score.
	if s.Score() != 350 {
		t.Errorf("score = %d, want 350", s.Score())
	}
	if s.WaveScore() != 350 {
		t.Errorf("wave score = %d, want 350", s.WaveScore())
	}
	if s.surgeLines[0].Active {
		t.Error("triggered line still active")
	}
	if s.TriggerSurgeLine(0) {
		t.Error("second trigger of an empty slot must fail")
	}
}

func TestWaveAdvance(t *testing.T) {
	s := newTestSession(3)
	s.InitGameMode(ModeGemSurge)
	if s.Wave() != 1 || s.WaveTarget() != SurgeBaseTarget {
		t.Fatalf("start wave = %d target %d, want 1, %d", s.Wave(), s.WaveTarget(), SurgeBaseTarget)
	}
	if g := s.FeaturedGem(); g < 1 || g > GemTypeCount {
		t.Fatalf("featured gem = %d, want 1..%d", g, GemTypeCount)
	}

	timeBefore := s.TimeLeft()
	s.waveScore = SurgeBaseTarget + 100
	s.checkWaveAdvance()

	if s.Wave() != 2 {
		t.Errorf("wave = %d, want 2", s.Wave())
	}
	if s.WaveScore() != 100 {
		t.Errorf("wave score = %d, want carry-over 100", s.WaveScore())
	}
	if want := SurgeBaseTarget * 7 / 4; s.WaveTarget() != want {
		t.Errorf("target = %d, want %d (1.75x growth)", s.WaveTarget(), want)
	}
	// Wave 2 bonus: max(5, 15 - 2*(2-2)) = 15.
	if got := s.TimeLeft() - timeBefore; got != 15 {
		t.Errorf("time bonus = %v, want 15", got)
	}
}

func TestWaveTimeBonusFloor(t *testing.T) {
	s := newTestSession(3)
	s.InitGameMode(ModeGemSurge)
	s.wave = 10
	s.waveTarget = 100
	s.waveScore = 100

	timeBefore := s.TimeLeft()
	s.checkWaveAdvance()
	// 15 - 2*(11-2) = -3, floored to 5.
	if got := s.TimeLeft() - timeBefore; got != 5 {
		t.Errorf("time bonus = %v, want floor 5", got)
	}
}

func TestLevelProgression(t *testing.T) {
	s := newTestSession(1)
	if s.Level() != 1 {
		t.Fatalf("start level = %d, want 1", s.Level())
	}

	s.score = LevelScoreStep
	s.updateLevel()
	if s.Level() != 2 {
		t.Errorf("level = %d at %d points, want 2", s.Level(), LevelScoreStep)
	}

	// Level 3 needs step*(1+2) = 3000 total.
	s.score = 3*LevelScoreStep - 1
	s.updateLevel()
	if s.Level() != 2 {
		t.Errorf("level = %d just under the next threshold, want 2", s.Level())
	}
	s.score = 3 * LevelScoreStep
	s.updateLevel()
	if s.Level() != 3 {
		t.Errorf("level = %d, want 3", s.Level())
	}

	s.score = 1 << 40
	s.updateLevel()
	if s.Level() != MaxLevel {
		t.Errorf("level = %d with huge score, want cap %d", s.Level(), MaxLevel)
	}
}

func TestResolveAllCascades(t *testing.T) {
	s := newTestSession(11)
	b := quietBoard()
	b[7][2], b[7][3], b[7][4] = 7, 7, 7
	setBoard(s, b)

	earned := s.ResolveAll()
	if earned < 50 {
		t.Errorf("earned = %d, want at least the base match score", earned)
	}
	if s.Score() != earned {
		t.Errorf("score = %d, want %d", s.Score(), earned)
	}
	matches, _ := s.ScanMatches()
	if len(matches) != 0 {
		t.Error("board not stable after ResolveAll")
	}
	for y := 0; y < BoardHeight; y++ {
		for x := 0; x < BoardWidth; x++ {
			if s.GemAt(x, y) == GemEmpty {
				t.Fatalf("cell (%d,%d) empty after ResolveAll", x, y)
			}
		}
	}
}
