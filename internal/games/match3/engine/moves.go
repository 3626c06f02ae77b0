package engine

// Move validation works on value copies of the gem grid: a hypothetical
// board is built, tested, and thrown away, so a check that answers false can
// never leave the live board mutated.

// swappedGrid returns a copy of the board with the two cells exchanged.
func (s *Session) swappedGrid(x1, y1, x2, y2 int) gemGrid {
	g := s.gems
	g[y1][x1], g[y2][x2] = g[y2][x2], g[y1][x1]
	return g
}

// rotatedGrid returns a copy of the board with the 2x2 block at (x, y)
// rotated one step clockwise.
func (s *Session) rotatedGrid(x, y int) gemGrid {
	g := s.gems
	rotateBlock(&g, x, y)
	return g
}

// rotateBlock cycles the 2x2 block at (x, y) clockwise:
// top-left <- bottom-left <- bottom-right <- top-right <- top-left.
func rotateBlock(g *gemGrid, x, y int) {
	tl := g[y][x]
	g[y][x] = g[y+1][x]
	g[y+1][x] = g[y+1][x+1]
	g[y+1][x+1] = g[y][x+1]
	g[y][x+1] = tl
}

// IsValidSwap reports whether exchanging the two adjacent cells would form a
// match (or is the unconditional double-hypercube swap). The live board is
// never touched.
func (s *Session) IsValidSwap(x1, y1, x2, y2 int) bool {
	if !InBounds(x1, y1) || !InBounds(x2, y2) {
		return false
	}
	if !IsAdjacent(x1, y1, x2, y2) {
		return false
	}
	if s.gems[y1][x1] == GemEmpty || s.gems[y2][x2] == GemEmpty {
		return false
	}
	if s.specials[y1][x1] == SpecialHypercube && s.specials[y2][x2] == SpecialHypercube {
		return true
	}
	g := s.swappedGrid(x1, y1, x2, y2)
	return gridHasMatchAt(&g, x1, y1) || gridHasMatchAt(&g, x2, y2)
}

// TrySwap performs a player swap. On success the swap is applied (specials
// travel with their gems), the cascade counters reset, and a move is
// consumed; swapping two hypercubes instead clears the whole board.
// Returns false, with the board unchanged, for an illegal swap.
func (s *Session) TrySwap(x1, y1, x2, y2 int) bool {
	if !s.IsValidSwap(x1, y1, x2, y2) {
		return false
	}

	s.cascadeDepth = 0
	s.cascadeScore = 0
	s.consumeMove()

	if s.specials[y1][x1] == SpecialHypercube && s.specials[y2][x2] == SpecialHypercube {
		s.clearEntireBoard()
		return true
	}

	s.gems[y1][x1], s.gems[y2][x2] = s.gems[y2][x2], s.gems[y1][x1]
	s.specials[y1][x1], s.specials[y2][x2] = s.specials[y2][x2], s.specials[y1][x1]
	return true
}

// IsValidRotation reports whether rotating the 2x2 block at (x, y) clockwise
// would form a match at any of its four cells. Used by Twist mode.
func (s *Session) IsValidRotation(x, y int) bool {
	if x < 0 || y < 0 || x+1 >= BoardWidth || y+1 >= BoardHeight {
		return false
	}
	for dy := 0; dy < 2; dy++ {
		for dx := 0; dx < 2; dx++ {
			if s.gems[y+dy][x+dx] == GemEmpty {
				return false
			}
		}
	}
	g := s.rotatedGrid(x, y)
	return gridHasMatchAt(&g, x, y) || gridHasMatchAt(&g, x+1, y) ||
		gridHasMatchAt(&g, x, y+1) || gridHasMatchAt(&g, x+1, y+1)
}

// TryRotate performs a player rotation of the 2x2 block at (x, y). Returns
// false, with the board unchanged, when the rotation makes no match.
func (s *Session) TryRotate(x, y int) bool {
	if !s.IsValidRotation(x, y) {
		return false
	}

	s.cascadeDepth = 0
	s.cascadeScore = 0
	s.consumeMove()

	rotateBlock(&s.gems, x, y)
	// Specials rotate with their gems.
	tl := s.specials[y][x]
	s.specials[y][x] = s.specials[y+1][x]
	s.specials[y+1][x] = s.specials[y+1][x+1]
	s.specials[y+1][x+1] = s.specials[y][x+1]
	s.specials[y][x+1] = tl
	return true
}

// CheckGameOver exhaustively probes every adjacent pair and reports whether
// no valid swap remains.
func (s *Session) CheckGameOver() bool {
	for y := 0; y < BoardHeight; y++ {
		for x := 0; x < BoardWidth; x++ {
			if x+1 < BoardWidth && s.IsValidSwap(x, y, x+1, y) {
				return false
			}
			if y+1 < BoardHeight && s.IsValidSwap(x, y, x, y+1) {
				return false
			}
		}
	}
	return true
}

// CheckTwistGameOver exhaustively probes every 2x2 block and reports whether
// no valid rotation remains.
func (s *Session) CheckTwistGameOver() bool {
	for y := 0; y+1 < BoardHeight; y++ {
		for x := 0; x+1 < BoardWidth; x++ {
			if s.IsValidRotation(x, y) {
				return false
			}
		}
	}
	return true
}

// GetHint returns the first valid swap in row-major order.
func (s *Session) GetHint() (x1, y1, x2, y2 int, ok bool) {
	for y := 0; y < BoardHeight; y++ {
		for x := 0; x < BoardWidth; x++ {
			if x+1 < BoardWidth && s.IsValidSwap(x, y, x+1, y) {
				return x, y, x + 1, y, true
			}
			if y+1 < BoardHeight && s.IsValidSwap(x, y, x, y+1) {
				return x, y, x, y + 1, true
			}
		}
	}
	return 0, 0, 0, 0, false
}

// GetTwistHint returns the top-left corner of the first valid rotation in
// row-major order.
func (s *Session) GetTwistHint() (x, y int, ok bool) {
	for y := 0; y+1 < BoardHeight; y++ {
		for x := 0; x+1 < BoardWidth; x++ {
			if s.IsValidRotation(x, y) {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}

// CountValidMoves counts the valid swaps over all adjacent pairs.
func (s *Session) CountValidMoves() int {
	count := 0
	for y := 0; y < BoardHeight; y++ {
		for x := 0; x < BoardWidth; x++ {
			if x+1 < BoardWidth && s.IsValidSwap(x, y, x+1, y) {
				count++
			}
			if y+1 < BoardHeight && s.IsValidSwap(x, y, x, y+1) {
				count++
			}
		}
	}
	return count
}

// MaxShuffleRetries bounds the reshuffle loop. Pathological gem
// distributions can make a movable layout impossible; after this many
// attempts the board is regenerated outright instead of recursing forever.
const MaxShuffleRetries = 8

// ShuffleBoard permutes all non-empty gems (Fisher-Yates), silently resolves
// any matches the permutation created, and retries while the result has no
// valid move, up to MaxShuffleRetries. The final fallback regenerates the
// whole board.
func (s *Session) ShuffleBoard() {
	for attempt := 0; attempt < MaxShuffleRetries; attempt++ {
		s.shuffleOnce()
		s.resolveSilently()
		if s.CountValidMoves() > 0 {
			return
		}
	}
	s.initBoard()
}

// shuffleOnce runs one Fisher-Yates permutation over the occupied cells,
// keeping specials attached to their gems.
func (s *Session) shuffleOnce() {
	var cells []Cell
	for y := 0; y < BoardHeight; y++ {
		for x := 0; x < BoardWidth; x++ {
			if s.gems[y][x] != GemEmpty {
				cells = append(cells, Cell{X: x, Y: y})
			}
		}
	}
	for i := len(cells) - 1; i > 0; i-- {
		j := s.rng.Intn(i + 1)
		a, b := cells[i], cells[j]
		s.gems[a.Y][a.X], s.gems[b.Y][b.X] = s.gems[b.Y][b.X], s.gems[a.Y][a.X]
		s.specials[a.Y][a.X], s.specials[b.Y][b.X] = s.specials[b.Y][b.X], s.specials[a.Y][a.X]
	}
}

// resolveSilently removes accidental matches without scoring or animation
// bookkeeping: remove, drop, fill, until the board is clean.
func (s *Session) resolveSilently() {
	for {
		matches, _ := s.ScanMatches()
		if len(matches) == 0 {
			break
		}
		for i := range matches {
			for _, c := range matches[i].Cells {
				s.clearCell(c.X, c.Y)
			}
		}
		s.ApplyGravity()
		s.FillBoard()
	}
	s.matches = s.matches[:0]
	s.matchedCells = 0
	s.lightning = Lightning{}
	s.ClearAnimations()
}
