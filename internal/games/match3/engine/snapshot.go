package engine

// Snapshot captures the observable session state for determinism testing and
// replay comparison. Two sessions seeded identically and fed the same moves
// must produce equal snapshots.
type Snapshot struct {
	Mode          string
	Phase         string
	Score         int
	Level         int
	MovesLeft     int
	TimeLeft      float64
	CascadeDepth  int
	GemsDestroyed int
	TotalMatches  int
	Gems          [BoardHeight][BoardWidth]GemType
	Specials      [BoardHeight][BoardWidth]SpecialType
	Wave          int
	WaveScore     int
	FeaturedGem   GemType
	ZoneCaptures  int
}

// Snapshot returns the current session snapshot for determinism verification.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Mode:          s.mode.String(),
		Phase:         s.phase.String(),
		Score:         s.score,
		Level:         s.level,
		MovesLeft:     s.movesLeft,
		TimeLeft:      s.timeLeft,
		CascadeDepth:  s.cascadeDepth,
		GemsDestroyed: s.gemsDestroyed,
		TotalMatches:  s.totalMatches,
		Gems:          s.gems,
		Specials:      s.specials,
		Wave:          s.wave,
		WaveScore:     s.waveScore,
		FeaturedGem:   s.featuredGem,
		ZoneCaptures:  s.zoneCaptures,
	}
}
