package engine

import "testing"

func TestFlameEffectDestroysThreeByThree(t *testing.T) {
	s := newTestSession(1)
	setBoard(s, quietBoard())
	s.enqueueEffect(QueuedEffect{X: 4, Y: 4, Kind: SpecialFlame})

	s.ProcessQueuedEffects()
	for y := 3; y <= 5; y++ {
		for x := 3; x <= 5; x++ {
			if s.GemAt(x, y) != GemEmpty {
				t.Errorf("cell (%d,%d) survived the flame", x, y)
			}
		}
	}
	if s.GemAt(2, 4) == GemEmpty || s.GemAt(6, 4) == GemEmpty {
		t.Error("flame destroyed cells outside its 3x3 area")
	}
	// 9 gems * 50 * depth 1 * 3/2 = 675.
	if s.Score() != 675 {
		t.Errorf("score = %d, want 675", s.Score())
	}
}

func TestFlameEffectClippedAtEdge(t *testing.T) {
	s := newTestSession(1)
	setBoard(s, quietBoard())
	s.enqueueEffect(QueuedEffect{X: 0, Y: 0, Kind: SpecialFlame})

	s.ProcessQueuedEffects()
	// Only the 2x2 corner is in bounds: 4 gems * 50 * 1 * 3/2 = 300.
	if s.Score() != 300 {
		t.Errorf("score = %d, want 300", s.Score())
	}
}

func TestStarEffectDestroysRowAndColumn(t *testing.T) {
	s := newTestSession(1)
	setBoard(s, quietBoard())
	s.enqueueEffect(QueuedEffect{X: 2, Y: 5, Kind: SpecialStar})

	s.ProcessQueuedEffects()
	destroyed := 0
	for y := 0; y < BoardHeight; y++ {
		for x := 0; x < BoardWidth; x++ {
			if s.GemAt(x, y) == GemEmpty {
				destroyed++
			}
		}
	}
	// Full row plus full column, shared cell once: 8 + 8 - 1 = 15.
	if destroyed != 15 {
		t.Errorf("destroyed = %d, want 15", destroyed)
	}
	// 15 * 50 * 1 * 7/4 = 1312.
	if s.Score() != 1312 {
		t.Errorf("score = %d, want 1312", s.Score())
	}
}

func TestHypercubeEffectDestroysTargetColor(t *testing.T) {
	s := newTestSession(1)
	setBoard(s, quietBoard())
	want := 0
	for y := 0; y < BoardHeight; y++ {
		for x := 0; x < BoardWidth; x++ {
			if s.GemAt(x, y) == 3 {
				want++
			}
		}
	}
	s.enqueueEffect(QueuedEffect{X: 0, Y: 1, Kind: SpecialHypercube, TargetGem: 3})

	s.ProcessQueuedEffects()
	for y := 0; y < BoardHeight; y++ {
		for x := 0; x < BoardWidth; x++ {
			if s.GemAt(x, y) == 3 {
				t.Fatalf("gem 3 at (%d,%d) survived the hypercube", x, y)
			}
		}
	}
	if s.GemsDestroyed() != want {
		t.Errorf("destroyed = %d, want %d", s.GemsDestroyed(), want)
	}
}

func TestSupernovaEffectCountsEachCellOnce(t *testing.T) {
	s := newTestSession(1)
	setBoard(s, quietBoard())
	s.enqueueEffect(QueuedEffect{X: 4, Y: 4, Kind: SpecialSupernova})

	s.ProcessQueuedEffects()
	// Three full rows (24) plus three full columns minus the overlap
	// (3*8 - 9 = 15): 39 cells.
	if s.GemsDestroyed() != 39 {
		t.Errorf("destroyed = %d, want 39", s.GemsDestroyed())
	}
	// 39 * 50 * 1 * 2 = 3900.
	if s.Score() != 3900 {
		t.Errorf("score = %d, want 3900", s.Score())
	}
}

func TestEffectChainReaction(t *testing.T) {
	s := newTestSession(1)
	setBoard(s, quietBoard())
	// A flame inside the first flame's blast radius chains.
	s.SetSpecial(5, 4, SpecialFlame)
	s.enqueueEffect(QueuedEffect{X: 4, Y: 4, Kind: SpecialFlame})

	more := s.ProcessQueuedEffects()
	if !more {
		t.Fatal("destroying a special cell must queue a follow-up effect")
	}
	if s.CascadeDepth() != 1 {
		t.Errorf("cascade depth = %d, want 1 after first drain", s.CascadeDepth())
	}

	for s.ProcessQueuedEffects() {
	}
	if s.CascadeDepth() != 2 {
		t.Errorf("cascade depth = %d, want 2 after chain", s.CascadeDepth())
	}
	// The chained flame clears its own 3x3 around (5,4).
	if s.GemAt(6, 3) != GemEmpty || s.GemAt(6, 5) != GemEmpty {
		t.Error("chained flame did not fire")
	}
}

func TestTriggerCellDoesNotChainItself(t *testing.T) {
	s := newTestSession(1)
	setBoard(s, quietBoard())
	s.SetSpecial(4, 4, SpecialFlame)
	s.enqueueEffect(QueuedEffect{X: 4, Y: 4, Kind: SpecialFlame})

	s.ProcessQueuedEffects()
	if s.QueuedEffectCount() != 0 {
		t.Error("the trigger cell must not re-queue its own special")
	}
}

func TestEffectQueueCapDropsOverflow(t *testing.T) {
	s := newTestSession(1)
	for i := 0; i < EffectQueueCap+5; i++ {
		s.enqueueEffect(QueuedEffect{X: i % BoardWidth, Kind: SpecialFlame})
	}
	if s.QueuedEffectCount() != EffectQueueCap {
		t.Errorf("queue length = %d, want cap %d", s.QueuedEffectCount(), EffectQueueCap)
	}
	if s.DroppedEffects() != 5 {
		t.Errorf("dropped = %d, want 5", s.DroppedEffects())
	}
}

func TestDoubleHypercubeBoardClear(t *testing.T) {
	s := newTestSession(1)
	setBoard(s, quietBoard())
	s.SetSpecial(3, 3, SpecialHypercube)
	s.SetSpecial(4, 3, SpecialHypercube)

	if !s.TrySwap(3, 3, 4, 3) {
		t.Fatal("double-hypercube swap must always be valid")
	}
	for y := 0; y < BoardHeight; y++ {
		for x := 0; x < BoardWidth; x++ {
			if s.GemAt(x, y) != GemEmpty {
				t.Fatalf("cell (%d,%d) survived the board clear", x, y)
			}
		}
	}
	// 64 * 50 * max(1, 0) * 3 = 9600.
	if s.Score() != 9600 {
		t.Errorf("score = %d, want 9600", s.Score())
	}
	if s.GemsDestroyed() != 64 {
		t.Errorf("destroyed = %d, want 64", s.GemsDestroyed())
	}
}

func TestTriggerSpecialAt(t *testing.T) {
	s := newTestSession(1)
	setBoard(s, quietBoard())
	s.SetSpecial(2, 2, SpecialStar)

	if !s.TriggerSpecialAt(2, 2) {
		t.Fatal("trigger on a special cell must succeed")
	}
	if s.GemAt(2, 2) != GemEmpty {
		t.Error("triggered cell must clear")
	}
	if s.QueuedEffectCount() != 1 {
		t.Errorf("queued effects = %d, want 1", s.QueuedEffectCount())
	}
	if s.TriggerSpecialAt(5, 5) {
		t.Error("trigger on a plain cell must fail")
	}
}
