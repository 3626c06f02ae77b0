package engine

// ResolveStep runs one step of the post-move cycle synchronously:
// scan, synthesize, remove, drain the full effect queue, gravity, fill.
// Returns the score earned and whether anything happened; the caller loops
// while changed is true, incrementing the cascade depth between iterations.
// Hosts that animate instead pace these calls across ticks themselves.
func (s *Session) ResolveStep() (earned int, changed bool) {
	before := s.score

	matches, _ := s.ScanMatches()
	if len(matches) == 0 && s.effectCount == 0 && !s.hasEmptyCells() {
		return 0, false
	}

	if len(matches) > 0 {
		s.SynthesizeSpecials()
		s.RemoveMatches()
	}
	for s.ProcessQueuedEffects() {
	}

	s.ApplyGravity()
	s.FillBoard()
	return s.score - before, true
}

// hasEmptyCells reports whether any cell is vacant. Vacancies appear when an
// out-of-cycle action (a lightning strike, a surge line, a board clear)
// destroyed gems since the last fill.
func (s *Session) hasEmptyCells() bool {
	for y := 0; y < BoardHeight; y++ {
		for x := 0; x < BoardWidth; x++ {
			if s.gems[y][x] == GemEmpty {
				return true
			}
		}
	}
	return false
}

// ResolveAll runs ResolveStep until the board is stable, advancing the
// cascade depth for each pass after the first. Returns the total score
// earned. The caller is expected to have just applied a player move, so the
// first pass runs at the current (reset) depth.
func (s *Session) ResolveAll() int {
	total := 0
	first := true
	for {
		if !first {
			s.cascadeDepth++
		}
		earned, changed := s.ResolveStep()
		if !changed {
			if !first {
				s.cascadeDepth--
			}
			return total
		}
		total += earned
		first = false
	}
}
