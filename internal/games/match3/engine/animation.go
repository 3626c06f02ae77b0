package engine

// GemAnimation is a per-cell presentation hint. It is not authoritative game
// state: the engine records that something should animate (a fall, a grow-in,
// a removal flash) and the host decides how frames progress.
type GemAnimation struct {
	OffsetY      float64 // current vertical draw offset in cells (negative = above rest)
	TargetOffset float64 // offset the host should ease toward
	Scale        float64 // draw scale while spawning, 0..1
	Spawning     bool    // gem appeared this step (refill or special transform)
	Removing     bool    // gem was destroyed this step
	FallDistance int     // cells fallen during the last gravity pass
}

// AnimationAt returns the animation hint for (x, y).
// Out-of-bounds reads return the zero hint.
func (s *Session) AnimationAt(x, y int) GemAnimation {
	if !InBounds(x, y) {
		return GemAnimation{}
	}
	return s.anims[y][x]
}

// ClearAnimations resets all animation hints. Hosts call this once they have
// finished playing back the current batch.
func (s *Session) ClearAnimations() {
	for y := 0; y < BoardHeight; y++ {
		for x := 0; x < BoardWidth; x++ {
			s.anims[y][x] = GemAnimation{}
		}
	}
}

// markRemoving flags a cell as destroyed for the host's removal animation.
func (s *Session) markRemoving(x, y int) {
	if !InBounds(x, y) {
		return
	}
	s.anims[y][x] = GemAnimation{Removing: true}
}

// markSpawning flags a cell as newly appeared. Transformed special gems start
// at scale 0 for a grow-in; refilled gems start offset above their column.
func (s *Session) markSpawning(x, y int, offset float64) {
	if !InBounds(x, y) {
		return
	}
	s.anims[y][x] = GemAnimation{
		OffsetY:  offset,
		Spawning: true,
	}
}
