// Package config provides YAML-based game configuration loading and
// difficulty management for PipeSlide.
package config

import (
	"errors"
	"fmt"
	"time"
)

// PipeSlideConfig contains all configuration for one PipeSlide variant.
type PipeSlideConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Water      WaterConfig      `yaml:"water"`
	Gaps       GapsConfig       `yaml:"gaps"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the grid.
type BoardConfig struct {
	Rows        int  `yaml:"rows"`
	Cols        int  `yaml:"cols"`
	StrictEdges bool `yaml:"strict_edges"` // Reject Left/Right moves across a row boundary
}

// WaterConfig defines water propagation timing.
type WaterConfig struct {
	PeriodMS    int `yaml:"period_ms"`     // Interval between water steps
	MinPeriodMS int `yaml:"min_period_ms"` // Floor when difficulty speeds the flow up
}

// GapsConfig defines how many gaps a random layout draws.
type GapsConfig struct {
	Count int `yaml:"count"` // 0 means 2*rows
}

// ScoringConfig defines score rewards.
type ScoringConfig struct {
	PointsPerTile int `yaml:"points_per_tile"`
	LengthBonusAt int `yaml:"length_bonus_at"` // Every N filled tiles
	LengthBonus   int `yaml:"length_bonus"`
}

// Period returns the water period as a duration.
func (w WaterConfig) Period() time.Duration {
	return time.Duration(w.PeriodMS) * time.Millisecond
}

// MinPeriod returns the water period floor as a duration.
func (w WaterConfig) MinPeriod() time.Duration {
	return time.Duration(w.MinPeriodMS) * time.Millisecond
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Water speed-up at max difficulty
}

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid")

// Validate checks that the config describes a playable board.
func (c PipeSlideConfig) Validate() error {
	if c.Board.Rows <= 0 || c.Board.Cols <= 0 {
		return fmt.Errorf("%w: board %dx%d", ErrInvalidConfig, c.Board.Rows, c.Board.Cols)
	}
	if c.Board.Rows*c.Board.Cols < 2 {
		return fmt.Errorf("%w: board needs at least 2 tiles", ErrInvalidConfig)
	}
	if c.Water.PeriodMS <= 0 {
		return fmt.Errorf("%w: water period %dms", ErrInvalidConfig, c.Water.PeriodMS)
	}
	if c.Gaps.Count < 0 {
		return fmt.Errorf("%w: gap count %d", ErrInvalidConfig, c.Gaps.Count)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}
