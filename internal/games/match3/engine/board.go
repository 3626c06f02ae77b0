// Package engine implements the match-3 board simulation: match scanning,
// special-gem synthesis, removal and scoring, chained special effects,
// gravity and refill, move validation, and the per-mode economies.
// It is pure state + transition logic; the platform layer owns call
// sequencing and rendering.
package engine

// Board dimensions and capacity constants. The fixed-size queues keep every
// tick a bounded in-memory computation; overflow increments a dropped
// counter instead of growing.
const (
	BoardWidth  = 8
	BoardHeight = 8

	GemTypeCount = 7 // gem colors 1..7; 0 is empty

	PendingSpecialCap = 16
	EffectQueueCap    = 16
	SurgeLineCap      = 8
)

// GemType identifies a gem color. GemEmpty marks a vacant cell.
type GemType int8

// GemEmpty is the vacant-cell marker.
const GemEmpty GemType = 0

// SpecialType is the secondary behavior attached to a board cell,
// triggered when the cell is destroyed.
type SpecialType int8

const (
	SpecialNone SpecialType = iota
	SpecialFlame
	SpecialStar
	SpecialHypercube
	SpecialSupernova
)

// String returns a human-readable name for the special type.
func (t SpecialType) String() string {
	switch t {
	case SpecialNone:
		return "none"
	case SpecialFlame:
		return "flame"
	case SpecialStar:
		return "star"
	case SpecialHypercube:
		return "hypercube"
	case SpecialSupernova:
		return "supernova"
	default:
		return "unknown"
	}
}

// Cell is a board coordinate.
type Cell struct {
	X, Y int
}

// gemGrid is the board contents by value; copies of it back hypothetical-move
// predicates so validity checks never touch live state.
type gemGrid [BoardHeight][BoardWidth]GemType

// InBounds returns true if (x, y) is a valid board coordinate.
func InBounds(x, y int) bool {
	return x >= 0 && x < BoardWidth && y >= 0 && y < BoardHeight
}

// IsAdjacent returns true if the two cells share an edge.
func IsAdjacent(x1, y1, x2, y2 int) bool {
	dx := x1 - x2
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y2
	if dy < 0 {
		dy = -dy
	}
	return dx+dy == 1
}

// GemAt returns the gem at (x, y), or GemEmpty when out of bounds.
func (s *Session) GemAt(x, y int) GemType {
	if !InBounds(x, y) {
		return GemEmpty
	}
	return s.gems[y][x]
}

// SpecialAt returns the special type at (x, y), or SpecialNone when out of bounds.
func (s *Session) SpecialAt(x, y int) SpecialType {
	if !InBounds(x, y) {
		return SpecialNone
	}
	return s.specials[y][x]
}

// SetGem places a gem at (x, y). Out-of-bounds writes are ignored.
// Setting GemEmpty also clears the special to keep the empty-cell invariant.
func (s *Session) SetGem(x, y int, g GemType) {
	if !InBounds(x, y) {
		return
	}
	s.gems[y][x] = g
	if g == GemEmpty {
		s.specials[y][x] = SpecialNone
	}
}

// SetSpecial attaches a special type to the gem at (x, y).
// Ignored when out of bounds or when the cell is empty.
func (s *Session) SetSpecial(x, y int, t SpecialType) {
	if !InBounds(x, y) {
		return
	}
	if s.gems[y][x] == GemEmpty {
		return
	}
	s.specials[y][x] = t
}

// clearCell empties a cell, dropping any attached special.
func (s *Session) clearCell(x, y int) {
	if !InBounds(x, y) {
		return
	}
	s.gems[y][x] = GemEmpty
	s.specials[y][x] = SpecialNone
}

// randomGem returns a uniformly random gem color 1..GemTypeCount.
func (s *Session) randomGem() GemType {
	return GemType(s.rng.Intn(GemTypeCount) + 1)
}

// initBoard fills the board with random gems while avoiding any immediate
// run of three. Only initial generation corrects for this; refills do not.
func (s *Session) initBoard() {
	for y := 0; y < BoardHeight; y++ {
		for x := 0; x < BoardWidth; x++ {
			g := s.randomGem()
			for (x >= 2 && s.gems[y][x-1] == g && s.gems[y][x-2] == g) ||
				(y >= 2 && s.gems[y-1][x] == g && s.gems[y-2][x] == g) {
				g = s.randomGem()
			}
			s.gems[y][x] = g
			s.specials[y][x] = SpecialNone
		}
	}
}
