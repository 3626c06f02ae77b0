package engine

// QueuedEffect is a FIFO entry created when a cell carrying a special type
// is destroyed as a side effect of another action. Entries drain one per
// ProcessQueuedEffects call; each drain deepens the cascade.
type QueuedEffect struct {
	X, Y      int
	Kind      SpecialType
	TargetGem GemType
}

// enqueueEffect appends to the fixed-capacity effect queue, dropping on
// overflow.
func (s *Session) enqueueEffect(e QueuedEffect) {
	if s.effectCount >= EffectQueueCap {
		s.droppedEffects++
		return
	}
	tail := (s.effectHead + s.effectCount) % EffectQueueCap
	s.effects[tail] = e
	s.effectCount++
}

// QueuedEffectCount returns how many effects are waiting to run.
func (s *Session) QueuedEffectCount() int {
	return s.effectCount
}

// ProcessQueuedEffects pops one queued effect, increments the cascade depth,
// executes it, and reports whether more entries remain. Hosts must call it
// until it returns false before rescanning for ordinary matches.
func (s *Session) ProcessQueuedEffects() bool {
	if s.effectCount == 0 {
		return false
	}
	e := s.effects[s.effectHead]
	s.effectHead = (s.effectHead + 1) % EffectQueueCap
	s.effectCount--

	s.cascadeDepth++
	s.addEffectScore(s.executeEffect(e))

	return s.effectCount > 0
}

// executeEffect dispatches one effect and returns the score it earned.
// Every kind destroys a deterministic cell pattern worth
// gemsDestroyed * 50 * max(1, cascadeDepth) * bonus.
func (s *Session) executeEffect(e QueuedEffect) int {
	depth := maxInt(1, s.cascadeDepth)
	trigger := Cell{X: e.X, Y: e.Y}

	switch e.Kind {
	case SpecialFlame:
		// 3x3 centered on the trigger, x1.5 bonus.
		destroyed := 0
		for y := e.Y - 1; y <= e.Y+1; y++ {
			for x := e.X - 1; x <= e.X+1; x++ {
				destroyed += s.destroyCell(x, y, trigger)
			}
		}
		return destroyed * 50 * depth * 3 / 2

	case SpecialStar:
		// Full row plus full column, shared cell counted once, x1.75 bonus.
		destroyed := 0
		for x := 0; x < BoardWidth; x++ {
			destroyed += s.destroyCell(x, e.Y, trigger)
		}
		for y := 0; y < BoardHeight; y++ {
			if y == e.Y {
				continue
			}
			destroyed += s.destroyCell(e.X, y, trigger)
		}
		return destroyed * 50 * depth * 7 / 4

	case SpecialHypercube:
		// Board-wide sweep of the target color, x1.5 bonus.
		destroyed := 0
		for y := 0; y < BoardHeight; y++ {
			for x := 0; x < BoardWidth; x++ {
				if s.gems[y][x] == e.TargetGem {
					destroyed += s.destroyCell(x, y, trigger)
				}
			}
		}
		return destroyed * 50 * depth * 3 / 2

	case SpecialSupernova:
		// Three rows and three columns centered on the trigger, each cell
		// destroyed at most once, x2 bonus.
		destroyed := 0
		for y := e.Y - 1; y <= e.Y+1; y++ {
			for x := 0; x < BoardWidth; x++ {
				destroyed += s.destroyCell(x, y, trigger)
			}
		}
		for x := e.X - 1; x <= e.X+1; x++ {
			for y := 0; y < BoardHeight; y++ {
				if y >= e.Y-1 && y <= e.Y+1 {
					continue
				}
				destroyed += s.destroyCell(x, y, trigger)
			}
		}
		return destroyed * 50 * depth * 2

	case SpecialNone:
		return 0
	default:
		return 0
	}
}

// destroyCell clears one cell for an effect, returning 1 if a gem was
// destroyed. A destroyed cell that itself carries a special (other than the
// triggering cell) queues a further effect; this is the chain-reaction
// mechanism.
func (s *Session) destroyCell(x, y int, trigger Cell) int {
	if !InBounds(x, y) {
		return 0
	}
	if s.gems[y][x] == GemEmpty {
		return 0
	}
	if sp := s.specials[y][x]; sp != SpecialNone && (x != trigger.X || y != trigger.Y) {
		s.enqueueEffect(QueuedEffect{
			X:         x,
			Y:         y,
			Kind:      sp,
			TargetGem: s.gems[y][x],
		})
	}
	s.clearCell(x, y)
	s.markRemoving(x, y)
	s.gemsDestroyed++
	return 1
}

// addEffectScore books score earned outside ordinary match removal.
func (s *Session) addEffectScore(earned int) {
	if earned == 0 {
		return
	}
	s.score += earned
	s.cascadeScore += earned
	if s.mode == ModeGemSurge {
		s.waveScore += earned
	}
	s.updateLevel()
}

// TriggerSpecialAt fires the special at (x, y) directly, destroying the cell
// and queuing its effect. Returns false when the cell holds no special.
func (s *Session) TriggerSpecialAt(x, y int) bool {
	sp := s.SpecialAt(x, y)
	if sp == SpecialNone {
		return false
	}
	s.enqueueEffect(QueuedEffect{
		X:         x,
		Y:         y,
		Kind:      sp,
		TargetGem: s.gems[y][x],
	})
	s.clearCell(x, y)
	s.markRemoving(x, y)
	s.gemsDestroyed++
	return true
}

// clearEntireBoard is the double-hypercube swap payoff: every cell is
// destroyed unconditionally, bypassing per-cell effect dispatch, for
// width*height * 50 * max(1, cascadeDepth) * 3.
func (s *Session) clearEntireBoard() int {
	for y := 0; y < BoardHeight; y++ {
		for x := 0; x < BoardWidth; x++ {
			if s.gems[y][x] != GemEmpty {
				s.gemsDestroyed++
			}
			s.clearCell(x, y)
			s.markRemoving(x, y)
		}
	}
	earned := BoardWidth * BoardHeight * 50 * maxInt(1, s.cascadeDepth) * 3
	s.addEffectScore(earned)
	return earned
}
