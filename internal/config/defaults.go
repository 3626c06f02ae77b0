package config

import (
	_ "embed"
)

//go:embed defaults/gems.yaml
var defaultGemsYAML []byte

// DefaultGemsConfig returns the built-in configuration, used when the
// embedded YAML cannot be parsed.
func DefaultGemsConfig() GemsConfig {
	return GemsConfig{
		Modes: ModesConfig{
			Classic: ModeBudget{MoveLimit: -1, TimeLimit: -1},
			Blitz:   ModeBudget{MoveLimit: -1, TimeLimit: 60},
			Twist:   ModeBudget{MoveLimit: -1, TimeLimit: -1},
			Rush:    ModeBudget{MoveLimit: -1, TimeLimit: 30},
			Surge:   ModeBudget{MoveLimit: -1, TimeLimit: 45},
		},
		UI: UIConfig{
			HintSeconds:    3.0,
			CascadeBeatMs:  160,
			ShowChainDepth: true,
		},
		Difficulty: DifficultyConfig{
			TimeScale: 1.0,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultGemsYAML
}
