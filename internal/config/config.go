// Package config provides YAML-based configuration loading and difficulty
// presets for the gemfall platform.
package config

// GemsConfig contains all tunables for the gem-matching games.
type GemsConfig struct {
	Modes      ModesConfig      `yaml:"modes"`
	UI         UIConfig         `yaml:"ui"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ModesConfig holds the per-mode budgets. A move limit of -1 means
// unlimited moves; a time limit of -1 means no countdown.
type ModesConfig struct {
	Classic ModeBudget `yaml:"classic"`
	Blitz   ModeBudget `yaml:"blitz"`
	Twist   ModeBudget `yaml:"twist"`
	Rush    ModeBudget `yaml:"rush"`
	Surge   ModeBudget `yaml:"surge"`
}

// ModeBudget defines the move and time budgets for one mode.
type ModeBudget struct {
	MoveLimit int     `yaml:"move_limit"`
	TimeLimit float64 `yaml:"time_limit"` // seconds
}

// UIConfig defines presentation pacing.
type UIConfig struct {
	HintSeconds    float64 `yaml:"hint_seconds"`     // how long a hint stays highlighted
	CascadeBeatMs  int     `yaml:"cascade_beat_ms"`  // delay between cascade passes
	ShowChainDepth bool    `yaml:"show_chain_depth"` // display the chain counter in the HUD
}

// DifficultyConfig scales the timed budgets.
type DifficultyConfig struct {
	TimeScale float64 `yaml:"time_scale"` // multiplier applied to every time limit
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// TimeScaleForPreset returns the time-budget multiplier for a preset.
func TimeScaleForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 1.5
	case DifficultyHard:
		return 0.75
	default:
		return 1.0
	}
}

// BudgetFor returns the budget for the given game ID, with the difficulty
// time scale applied. Unknown IDs get the classic budget.
func (c GemsConfig) BudgetFor(gameID string) ModeBudget {
	var b ModeBudget
	switch gameID {
	case "gems_blitz":
		b = c.Modes.Blitz
	case "gems_twist":
		b = c.Modes.Twist
	case "gems_rush":
		b = c.Modes.Rush
	case "gems_surge":
		b = c.Modes.Surge
	default:
		b = c.Modes.Classic
	}
	if b.TimeLimit > 0 && c.Difficulty.TimeScale > 0 {
		b.TimeLimit *= c.Difficulty.TimeScale
	}
	return b
}

// ApplyPreset sets the difficulty time scale from a named preset.
func ApplyPreset(cfg *GemsConfig, preset DifficultyPreset) {
	cfg.Difficulty.TimeScale = TimeScaleForPreset(preset)
}
