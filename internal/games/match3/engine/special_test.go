package engine

import "testing"

func TestSynthesizeFlameFromFourRun(t *testing.T) {
	s := newTestSession(1)
	b := quietBoard()
	for x := 1; x <= 4; x++ {
		b[2][x] = 7
	}
	setBoard(s, b)
	s.ScanMatches()
	s.SynthesizeSpecials()

	pending := s.PendingSpecials()
	if len(pending) != 1 {
		t.Fatalf("got %d pending specials, want 1", len(pending))
	}
	p := pending[0]
	// Anchor is the middle cell, index count/2 = 2, so x = 1+2.
	if p.X != 3 || p.Y != 2 || p.Special != SpecialFlame || p.Gem != 7 {
		t.Errorf("pending = %+v, want flame gem 7 at (3,2)", p)
	}
}

func TestSynthesizeByRunLength(t *testing.T) {
	tests := []struct {
		name   string
		length int
		want   SpecialType
	}{
		{"four run flame", 4, SpecialFlame},
		{"five run hypercube", 5, SpecialHypercube},
		{"six run supernova", 6, SpecialSupernova},
		{"seven run supernova", 7, SpecialSupernova},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(1)
			b := quietBoard()
			for x := 0; x < tt.length; x++ {
				b[5][x] = 7
			}
			setBoard(s, b)
			s.ScanMatches()
			s.SynthesizeSpecials()

			pending := s.PendingSpecials()
			if len(pending) != 1 {
				t.Fatalf("got %d pending specials, want 1", len(pending))
			}
			if pending[0].Special != tt.want {
				t.Errorf("special = %v, want %v", pending[0].Special, tt.want)
			}
			if pending[0].X != tt.length/2 {
				t.Errorf("anchor x = %d, want middle %d", pending[0].X, tt.length/2)
			}
		})
	}
}

func TestSynthesizeStarAtIntersection(t *testing.T) {
	s := newTestSession(1)
	b := quietBoard()
	// Horizontal 3-run in row 4 centered at (4,4) and vertical 3-run in
	// column 4 centered at the same cell.
	b[4][3], b[4][4], b[4][5] = 7, 7, 7
	b[3][4], b[5][4] = 7, 7
	setBoard(s, b)
	s.ScanMatches()
	s.SynthesizeSpecials()

	pending := s.PendingSpecials()
	if len(pending) != 1 {
		t.Fatalf("got %d pending specials, want 1", len(pending))
	}
	p := pending[0]
	if p.Special != SpecialStar || p.X != 4 || p.Y != 4 {
		t.Errorf("pending = %+v, want star at (4,4)", p)
	}
}

func TestSynthesizeStarOutranksRunSpecial(t *testing.T) {
	s := newTestSession(1)
	b := quietBoard()
	// Horizontal 5-run in row 4 whose middle cell (4,4) is also the center
	// of a vertical 3-run. The star claims the cell first; the 5-run then
	// skips its occupied anchor, so no hypercube is synthesized.
	for x := 2; x <= 6; x++ {
		b[4][x] = 7
	}
	b[3][4], b[5][4] = 7, 7
	setBoard(s, b)
	s.ScanMatches()
	s.SynthesizeSpecials()

	pending := s.PendingSpecials()
	if len(pending) != 1 {
		t.Fatalf("got %d pending specials, want 1", len(pending))
	}
	if pending[0].Special != SpecialStar {
		t.Errorf("special = %v, want star (rule 1 runs first)", pending[0].Special)
	}
}

func TestSynthesizeAtMostOneStar(t *testing.T) {
	s := newTestSession(1)
	b := quietBoard()
	// Two separate plus shapes; only the first in row-major order becomes a
	// star, the second intersection yields nothing (its runs are only 3 long).
	b[1][1], b[1][2], b[1][3] = 7, 7, 7
	b[0][2], b[2][2] = 7, 7
	b[3][2] = 2 // keep the first vertical run at exactly three
	b[6][4], b[6][5], b[6][6] = 3, 3, 3
	b[5][5], b[7][5] = 3, 3
	b[4][5] = 7 // keep the second vertical run at exactly three
	setBoard(s, b)
	s.ScanMatches()
	s.SynthesizeSpecials()

	stars := 0
	for _, p := range s.PendingSpecials() {
		if p.Special == SpecialStar {
			stars++
			if p.X != 2 || p.Y != 1 {
				t.Errorf("star at (%d,%d), want first row-major intersection (2,1)", p.X, p.Y)
			}
		}
	}
	if stars != 1 {
		t.Errorf("got %d stars, want exactly 1 per pass", stars)
	}
}

func TestPendingCapDropsOverflow(t *testing.T) {
	s := newTestSession(1)
	s.pending = s.pending[:0]
	for i := 0; i < PendingSpecialCap+3; i++ {
		s.addPending(PendingSpecial{X: i % BoardWidth, Y: i / BoardWidth, Special: SpecialFlame})
	}
	if len(s.pending) != PendingSpecialCap {
		t.Errorf("pending length = %d, want cap %d", len(s.pending), PendingSpecialCap)
	}
	if s.DroppedSpecials() != 3 {
		t.Errorf("dropped = %d, want 3", s.DroppedSpecials())
	}
}
