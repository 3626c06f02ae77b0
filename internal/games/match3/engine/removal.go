package engine

// baseScore is the per-match base by run length.
func baseScore(length int) int {
	switch {
	case length >= 5:
		return 200
	case length == 4:
		return 100
	default:
		return 50
	}
}

// modeMultiplier is the per-mode score multiplier for match removal.
func (s *Session) modeMultiplier() int {
	switch s.mode {
	case ModeBlitz:
		return 2
	case ModeCascadeRush:
		return 3
	default:
		return 1
	}
}

// RemoveMatches converts the recorded match set into board mutations and
// score. Per match the score is
//
//	baseScore(len) * len * max(1, cascadeDepth) * modeMultiplier / 3
//
// with Gem Surge doubling the (already divided) result when the match color
// is the featured gem. Matched cells claimed by a pending special are not
// removed: they transform in place with a grow-in animation. Destroying a
// cell that already carries a special queues that special's effect.
// Returns the total score earned this call, 0 when no matches were pending.
func (s *Session) RemoveMatches() int {
	if len(s.matches) == 0 {
		return 0
	}

	depth := maxInt(1, s.cascadeDepth)
	mult := s.modeMultiplier()
	total := 0

	for i := range s.matches {
		m := &s.matches[i]

		matchScore := baseScore(m.Count) * m.Count * depth * mult / 3
		if s.mode == ModeGemSurge && m.Gem == s.featuredGem {
			matchScore *= 2
		}
		total += matchScore

		for _, c := range m.Cells {
			if p, ok := s.pendingAt(c.X, c.Y); ok {
				// Transform instead of remove; scale starts at 0 so the
				// host can grow the new special in.
				s.gems[c.Y][c.X] = p.Gem
				s.specials[c.Y][c.X] = p.Special
				s.markSpawning(c.X, c.Y, 0)
				continue
			}
			if s.gems[c.Y][c.X] == GemEmpty {
				// Already cleared by an intersecting match this pass.
				continue
			}
			if sp := s.specials[c.Y][c.X]; sp != SpecialNone {
				s.enqueueEffect(QueuedEffect{
					X:         c.X,
					Y:         c.Y,
					Kind:      sp,
					TargetGem: s.gems[c.Y][c.X],
				})
			}
			s.clearCell(c.X, c.Y)
			s.markRemoving(c.X, c.Y)
			s.gemsDestroyed++
		}
		s.totalMatches++
	}

	s.score += total
	s.cascadeScore += total
	if s.mode == ModeGemSurge {
		s.waveScore += total
	}
	if s.mode == ModeCascadeRush && s.cascadeDepth > 0 {
		s.AddTime(float64(2 * s.cascadeDepth))
	}
	s.updateLevel()

	// Both lists are consumed by exactly one removal pass.
	s.matches = s.matches[:0]
	s.matchedCells = 0
	s.pending = s.pending[:0]

	return total
}
