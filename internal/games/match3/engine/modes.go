package engine

// SurgeLine is a Gem Surge transient target: a full row or column that can be
// triggered for a flat plus per-gem bonus before its timer runs out.
type SurgeLine struct {
	Active     bool
	Horizontal bool
	Index      int // row for horizontal lines, column for vertical
	TimeLeft   float64
}

// UpdateTimers advances all mode clocks by dt seconds: the main countdown,
// the Cascade Rush zone spawn/expiry cycle, and Gem Surge line lifetimes and
// wave progression. Returns false once the main timer has run out.
func (s *Session) UpdateTimers(dt float64) bool {
	alive := s.ConsumeTime(dt)

	switch s.mode {
	case ModeCascadeRush:
		s.updateRushZone(dt)
	case ModeGemSurge:
		s.updateSurgeLines(dt)
		s.checkWaveAdvance()
	}

	return alive
}

// zoneDuration is how long a rush zone stays up at the given level:
// 10 seconds at level 1, scaled by 0.9 per level, never below 3.
func zoneDuration(level int) float64 {
	d := 10.0
	for i := 1; i < level; i++ {
		d *= 0.9
		if d <= 3.0 {
			return 3.0
		}
	}
	return d
}

// updateRushZone runs the spawn/expiry cycle: while no zone is active a
// spawn timer counts down to the next one; an active zone expires after its
// level-scaled duration.
func (s *Session) updateRushZone(dt float64) {
	if s.zoneActive {
		s.zoneTimer -= dt
		if s.zoneTimer <= 0 {
			s.zoneActive = false
			s.zoneSpawnTimer = RushZoneInterval
		}
		return
	}

	s.zoneSpawnTimer -= dt
	if s.zoneSpawnTimer <= 0 {
		s.spawnRushZone()
	}
}

// spawnRushZone places a new 3x3 zone fully inside the board at a random
// position.
func (s *Session) spawnRushZone() {
	s.zoneActive = true
	s.zoneX = s.rng.Intn(BoardWidth - RushZoneSize + 1)
	s.zoneY = s.rng.Intn(BoardHeight - RushZoneSize + 1)
	s.zoneTimer = zoneDuration(s.level)
}

// RushZone returns the active zone's top-left corner, or ok=false when no
// zone is up.
func (s *Session) RushZone() (x, y int, ok bool) {
	if !s.zoneActive {
		return 0, 0, false
	}
	return s.zoneX, s.zoneY, true
}

// ZoneTimeLeft returns the active zone's remaining seconds, 0 when none.
func (s *Session) ZoneTimeLeft() float64 {
	if !s.zoneActive {
		return 0
	}
	return s.zoneTimer
}

// InRushZone reports whether (x, y) lies inside the active zone.
func (s *Session) InRushZone(x, y int) bool {
	if !s.zoneActive {
		return false
	}
	return x >= s.zoneX && x < s.zoneX+RushZoneSize &&
		y >= s.zoneY && y < s.zoneY+RushZoneSize
}

// CaptureRushZone banks the active zone as captured. The host decides what
// counts as a capture (a move resolved through the zone); the engine only
// books the counter and restarts the spawn cycle. Returns false when no zone
// is active.
func (s *Session) CaptureRushZone() bool {
	if !s.zoneActive {
		return false
	}
	s.zoneCaptures++
	s.zoneActive = false
	s.zoneSpawnTimer = RushZoneInterval
	return true
}

// ZoneCaptures returns how many rush zones have been captured this session.
func (s *Session) ZoneCaptures() int { return s.zoneCaptures }

// updateSurgeLines ages every active line and spawns a new one whenever the
// spawn clock elapses and a slot is free.
func (s *Session) updateSurgeLines(dt float64) {
	for i := range s.surgeLines {
		if !s.surgeLines[i].Active {
			continue
		}
		s.surgeLines[i].TimeLeft -= dt
		if s.surgeLines[i].TimeLeft <= 0 {
			s.surgeLines[i] = SurgeLine{}
		}
	}

	s.lineSpawnTime -= dt
	if s.lineSpawnTime <= 0 {
		s.spawnSurgeLine()
		s.lineSpawnTime = SurgeLineSpawn
	}
}

// spawnSurgeLine activates a random row or column line in the first free
// slot. With all slots busy the spawn is skipped.
func (s *Session) spawnSurgeLine() {
	for i := range s.surgeLines {
		if s.surgeLines[i].Active {
			continue
		}
		horizontal := s.rng.Intn(2) == 0
		span := BoardWidth
		if horizontal {
			span = BoardHeight
		}
		s.surgeLines[i] = SurgeLine{
			Active:     true,
			Horizontal: horizontal,
			Index:      s.rng.Intn(span),
			TimeLeft:   SurgeLineLife,
		}
		return
	}
}

// SurgeLines returns all line slots; inactive slots are zero values.
func (s *Session) SurgeLines() [SurgeLineCap]SurgeLine {
	return s.surgeLines
}

// TriggerSurgeLine fires the line in slot i: every gem on its row or column
// is destroyed (specials chain as usual) and the bonus
//
//	150 + 25*gemsCleared
//
// is added to both total score and wave score. Returns false for an empty
// slot.
func (s *Session) TriggerSurgeLine(i int) bool {
	if i < 0 || i >= SurgeLineCap || !s.surgeLines[i].Active {
		return false
	}
	line := s.surgeLines[i]
	s.surgeLines[i] = SurgeLine{}

	// No cell is the trigger, so any special on the line chains.
	off := Cell{X: -1, Y: -1}
	destroyed := 0
	if line.Horizontal {
		for x := 0; x < BoardWidth; x++ {
			destroyed += s.destroyCell(x, line.Index, off)
		}
	} else {
		for y := 0; y < BoardHeight; y++ {
			destroyed += s.destroyCell(line.Index, y, off)
		}
	}

	earned := 150 + 25*destroyed
	s.score += earned
	s.cascadeScore += earned
	s.waveScore += earned
	s.updateLevel()
	s.checkWaveAdvance()
	return true
}

// checkWaveAdvance rolls the Gem Surge wave forward once the wave score
// reaches the target: the target grows by 1.75x, a new featured gem is drawn,
// and a shrinking time bonus is credited.
func (s *Session) checkWaveAdvance() {
	if s.mode != ModeGemSurge {
		return
	}
	for s.waveScore >= s.waveTarget {
		s.waveScore -= s.waveTarget
		s.wave++
		s.waveTarget = s.waveTarget * 7 / 4
		s.featuredGem = s.randomGem()

		bonus := 15.0 - 2.0*float64(s.wave-2)
		if bonus < 5.0 {
			bonus = 5.0
		}
		s.AddTime(bonus)
	}
}

// Wave returns the current Gem Surge wave number, starting at 1.
func (s *Session) Wave() int { return s.wave }

// WaveTarget returns the score needed to finish the current wave.
func (s *Session) WaveTarget() int { return s.waveTarget }

// WaveScore returns the score accumulated toward the current wave.
func (s *Session) WaveScore() int { return s.waveScore }

// FeaturedGem returns the gem color whose matches score double this wave.
func (s *Session) FeaturedGem() GemType { return s.featuredGem }
