package engine

// PendingSpecial marks a matched cell that survives removal as a newly
// synthesized special gem instead of disappearing. Consumed exactly once by
// RemoveMatches, then the list is cleared.
type PendingSpecial struct {
	X, Y    int
	Gem     GemType
	Special SpecialType
}

// SynthesizeSpecials inspects the current match set (post-scan, pre-removal)
// and decides which cleared cells become special gems.
//
// Priority, highest first:
//  1. The first cell in row-major order that is the center of both a >=3
//     horizontal run and a >=3 vertical run becomes a STAR; at most one
//     star per pass.
//  2. Each remaining match of count >= 4 anchors a special at its middle
//     cell (count/2): SUPERNOVA for >= 6, HYPERCUBE for 5, FLAME for 4.
//     An anchor that already has a pending special is skipped.
//
// The pending list holds at most PendingSpecialCap entries; overflow is
// dropped and counted, never an error.
func (s *Session) SynthesizeSpecials() {
	s.pending = s.pending[:0]

	// Rule 1: star at a horizontal/vertical center intersection.
	if star, ok := s.findStarCell(); ok {
		s.addPending(PendingSpecial{
			X:       star.X,
			Y:       star.Y,
			Gem:     s.gems[star.Y][star.X],
			Special: SpecialStar,
		})
	}

	// Rule 2: long runs anchor specials at their middle cell.
	for i := range s.matches {
		m := &s.matches[i]
		if m.Count < 4 {
			continue
		}
		anchor := m.Cells[m.Count/2]
		if s.hasPendingAt(anchor.X, anchor.Y) {
			continue
		}

		var special SpecialType
		switch {
		case m.Count >= 6:
			special = SpecialSupernova
		case m.Count == 5:
			special = SpecialHypercube
		default:
			special = SpecialFlame
		}
		s.addPending(PendingSpecial{
			X:       anchor.X,
			Y:       anchor.Y,
			Gem:     m.Gem,
			Special: special,
		})
	}
}

// findStarCell returns the first cell in row-major order that is the center
// of both a horizontal and a vertical match.
func (s *Session) findStarCell() (Cell, bool) {
	for y := 0; y < BoardHeight; y++ {
		for x := 0; x < BoardWidth; x++ {
			c := Cell{X: x, Y: y}
			if s.isMatchCenter(c, Horizontal) && s.isMatchCenter(c, Vertical) {
				return c, true
			}
		}
	}
	return Cell{}, false
}

// isMatchCenter reports whether c is the middle cell of any recorded match
// with the given orientation.
func (s *Session) isMatchCenter(c Cell, orient Orientation) bool {
	for i := range s.matches {
		m := &s.matches[i]
		if m.Orient != orient {
			continue
		}
		if m.Cells[m.Count/2] == c {
			return true
		}
	}
	return false
}

// hasPendingAt reports whether a pending special already claims (x, y).
func (s *Session) hasPendingAt(x, y int) bool {
	for i := range s.pending {
		if s.pending[i].X == x && s.pending[i].Y == y {
			return true
		}
	}
	return false
}

// pendingAt returns the pending special claiming (x, y), if any.
func (s *Session) pendingAt(x, y int) (PendingSpecial, bool) {
	for i := range s.pending {
		if s.pending[i].X == x && s.pending[i].Y == y {
			return s.pending[i], true
		}
	}
	return PendingSpecial{}, false
}

// addPending appends to the pending list, dropping on overflow.
func (s *Session) addPending(p PendingSpecial) {
	if len(s.pending) >= PendingSpecialCap {
		s.droppedSpecials++
		return
	}
	s.pending = append(s.pending, p)
}

// PendingSpecials returns the pending specials from the most recent
// synthesis pass.
func (s *Session) PendingSpecials() []PendingSpecial {
	return s.pending
}
