package engine

// Orientation distinguishes horizontal from vertical runs.
type Orientation int8

const (
	Horizontal Orientation = iota
	Vertical
)

// MatchInfo describes one discovered run of three or more equal gems.
// Cells are ordered along the run. A cell may appear in one horizontal and
// one vertical MatchInfo at the same time; intersections are what the
// special-gem synthesizer looks for.
type MatchInfo struct {
	Cells  []Cell
	Count  int
	Orient Orientation
	Gem    GemType
}

// Lightning is the advisory marker produced by a run of five or more.
// It names a column (horizontal run) or row (vertical run) the host may
// clear with a follow-up LightningStrike call; nothing fires automatically.
type Lightning struct {
	Active bool
	Row    int
	Col    int
	Orient Orientation
}

// ScanMatches finds all horizontal and vertical runs of length >= 3 across
// the whole board in one pass and returns them with the total number of
// distinct matched cells.
//
// The horizontal pass runs first and claims its cells; the vertical pass
// still records full runs (so intersection cells can appear in two
// MatchInfo entries) but claimed cells are not counted twice. A run is
// skipped over whole, never split into sub-runs. The first run of five or
// more arms the lightning marker; horizontal outranks vertical.
func (s *Session) ScanMatches() ([]MatchInfo, int) {
	s.matches = s.matches[:0]
	s.matchedCells = 0
	s.lightning = Lightning{}

	var claimed [BoardHeight][BoardWidth]bool

	// Horizontal runs, row-major.
	for y := 0; y < BoardHeight; y++ {
		for x := 0; x < BoardWidth; {
			g := s.gems[y][x]
			run := 1
			for x+run < BoardWidth && s.gems[y][x+run] == g {
				run++
			}
			if g != GemEmpty && run >= 3 {
				m := MatchInfo{Count: run, Orient: Horizontal, Gem: g}
				for i := 0; i < run; i++ {
					m.Cells = append(m.Cells, Cell{X: x + i, Y: y})
					if !claimed[y][x+i] {
						claimed[y][x+i] = true
						s.matchedCells++
					}
				}
				s.matches = append(s.matches, m)
				if run >= 5 && !s.lightning.Active {
					s.lightning = Lightning{
						Active: true,
						Row:    y,
						Col:    x + run/2,
						Orient: Horizontal,
					}
				}
			}
			x += run
		}
	}

	// Vertical runs, column-major.
	for x := 0; x < BoardWidth; x++ {
		for y := 0; y < BoardHeight; {
			g := s.gems[y][x]
			run := 1
			for y+run < BoardHeight && s.gems[y+run][x] == g {
				run++
			}
			if g != GemEmpty && run >= 3 {
				m := MatchInfo{Count: run, Orient: Vertical, Gem: g}
				for i := 0; i < run; i++ {
					m.Cells = append(m.Cells, Cell{X: x, Y: y + i})
					if !claimed[y+i][x] {
						claimed[y+i][x] = true
						s.matchedCells++
					}
				}
				s.matches = append(s.matches, m)
				if run >= 5 && !s.lightning.Active {
					s.lightning = Lightning{
						Active: true,
						Row:    y + run/2,
						Col:    x,
						Orient: Vertical,
					}
				}
			}
			y += run
		}
	}

	return s.matches, s.matchedCells
}

// Matches returns the runs found by the most recent ScanMatches.
func (s *Session) Matches() []MatchInfo {
	return s.matches
}

// MatchedCells returns the distinct matched-cell count from the most recent
// ScanMatches.
func (s *Session) MatchedCells() int {
	return s.matchedCells
}

// Lightning returns the current advisory lightning marker.
func (s *Session) Lightning() Lightning {
	return s.lightning
}

// HasMatchAt reports whether the cell at (x, y) is part of a run of three or
// more, horizontally or vertically, on the live board.
func (s *Session) HasMatchAt(x, y int) bool {
	return gridHasMatchAt(&s.gems, x, y)
}

// gridHasMatchAt is the pure predicate behind HasMatchAt, usable on
// hypothetical board copies.
func gridHasMatchAt(g *gemGrid, x, y int) bool {
	if !InBounds(x, y) {
		return false
	}
	gem := g[y][x]
	if gem == GemEmpty {
		return false
	}

	// Horizontal run through (x, y).
	run := 1
	for i := x - 1; i >= 0 && g[y][i] == gem; i-- {
		run++
	}
	for i := x + 1; i < BoardWidth && g[y][i] == gem; i++ {
		run++
	}
	if run >= 3 {
		return true
	}

	// Vertical run through (x, y).
	run = 1
	for i := y - 1; i >= 0 && g[i][x] == gem; i-- {
		run++
	}
	for i := y + 1; i < BoardHeight && g[i][x] == gem; i++ {
		run++
	}
	return run >= 3
}

// LightningStrike clears the column (horizontal marker) or row (vertical
// marker) named by the pending lightning marker, scoring each destroyed gem
// like a plain effect gem and queuing any specials caught in the strike.
// Returns the score earned, 0 when no marker is armed.
func (s *Session) LightningStrike() int {
	if !s.lightning.Active {
		return 0
	}
	trigger := Cell{X: s.lightning.Col, Y: s.lightning.Row}

	destroyed := 0
	if s.lightning.Orient == Horizontal {
		for y := 0; y < BoardHeight; y++ {
			destroyed += s.destroyCell(s.lightning.Col, y, trigger)
		}
	} else {
		for x := 0; x < BoardWidth; x++ {
			destroyed += s.destroyCell(x, s.lightning.Row, trigger)
		}
	}
	s.lightning = Lightning{}

	earned := destroyed * 50 * maxInt(1, s.cascadeDepth)
	s.addEffectScore(earned)
	return earned
}
