package config

import (
	_ "embed"
)

//go:embed defaults/pipeslide.yaml
var defaultPipeSlideYAML []byte

//go:embed defaults/pipeslide_mini.yaml
var defaultMiniYAML []byte

// DefaultPipeSlideConfig returns the default configuration of the classic board.
func DefaultPipeSlideConfig() PipeSlideConfig {
	return PipeSlideConfig{
		Board: BoardConfig{
			Rows: 10,
			Cols: 14,
		},
		Water: WaterConfig{
			PeriodMS:    2000,
			MinPeriodMS: 600,
		},
		Scoring: ScoringConfig{
			PointsPerTile: 10,
			LengthBonusAt: 10,
			LengthBonus:   50,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 1500,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.5,
			},
		},
	}
}

// DefaultMiniConfig returns the default configuration of the small board.
func DefaultMiniConfig() PipeSlideConfig {
	return PipeSlideConfig{
		Board: BoardConfig{
			Rows:        5,
			Cols:        6,
			StrictEdges: true,
		},
		Water: WaterConfig{
			PeriodMS:    2500,
			MinPeriodMS: 900,
		},
		Gaps: GapsConfig{
			Count: 4,
		},
		Scoring: ScoringConfig{
			PointsPerTile: 10,
			LengthBonusAt: 5,
			LengthBonus:   25,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 400,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// DefaultFor returns the hardcoded default for a variant.
func DefaultFor(gameID string) PipeSlideConfig {
	if gameID == "pipeslide_mini" {
		return DefaultMiniConfig()
	}
	return DefaultPipeSlideConfig()
}

// GetDefaultYAML returns the embedded default YAML for a variant.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "pipeslide":
		return defaultPipeSlideYAML
	case "pipeslide_mini":
		return defaultMiniYAML
	default:
		return nil
	}
}
