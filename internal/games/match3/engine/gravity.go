package engine

// ApplyGravity compacts each column downward in a single stable pass: a
// write cursor walks up from the bottom and every non-empty cell is copied
// to it, preserving relative order. Fall distances are recorded for the
// host's drop animation. Gems are neither created nor destroyed.
func (s *Session) ApplyGravity() {
	for x := 0; x < BoardWidth; x++ {
		write := BoardHeight - 1
		for y := BoardHeight - 1; y >= 0; y-- {
			if s.gems[y][x] == GemEmpty {
				continue
			}
			if write != y {
				s.gems[write][x] = s.gems[y][x]
				s.specials[write][x] = s.specials[y][x]
				s.clearCell(x, y)

				fall := write - y
				s.anims[write][x] = GemAnimation{
					OffsetY:      -float64(fall),
					FallDistance: fall,
				}
			}
			write--
		}
		for y := write; y >= 0; y-- {
			s.clearCell(x, y)
		}
	}
}

// FillBoard spawns a new random gem in every vacated cell at the top of each
// column. Refill is uniform over the gem colors with no same-type bias
// correction; only initial board generation avoids immediate matches.
// Returns the number of gems spawned.
func (s *Session) FillBoard() int {
	spawned := 0
	for x := 0; x < BoardWidth; x++ {
		empty := 0
		for y := 0; y < BoardHeight && s.gems[y][x] == GemEmpty; y++ {
			empty++
		}
		for y := 0; y < empty; y++ {
			s.gems[y][x] = s.randomGem()
			// New gems start stacked above the board so they can drop in.
			s.markSpawning(x, y, -float64(empty-y))
			s.anims[y][x].FallDistance = empty - y
			spawned++
		}
	}
	return spawned
}
