package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// isolate points HOME and the working directory at empty temp dirs so only
// the embedded defaults are found.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	return home
}

func TestLoadEmbeddedDefaults(t *testing.T) {
	isolate(t)

	tests := []struct {
		id         string
		rows, cols int
		strict     bool
	}{
		{"pipeslide", 10, 14, false},
		{"pipeslide_mini", 5, 6, true},
	}
	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			cfg, err := Load(tc.id, "")
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if cfg.Board.Rows != tc.rows || cfg.Board.Cols != tc.cols {
				t.Errorf("board = %dx%d, want %dx%d", cfg.Board.Rows, cfg.Board.Cols, tc.rows, tc.cols)
			}
			if cfg.Board.StrictEdges != tc.strict {
				t.Errorf("strict_edges = %v, want %v", cfg.Board.StrictEdges, tc.strict)
			}
			if cfg != DefaultFor(tc.id) {
				t.Errorf("embedded YAML and hardcoded defaults differ:\n%+v\n%+v", cfg, DefaultFor(tc.id))
			}
		})
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := isolate(t)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "pipeslide.yaml"), []byte("water:\n  period_ms: 1200\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("pipeslide", "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Water.PeriodMS != 1200 {
		t.Errorf("period = %d, want 1200 from ./configs", cfg.Water.PeriodMS)
	}
	if cfg.Board.Rows != 10 {
		t.Errorf("rows = %d, unspecified fields should keep defaults", cfg.Board.Rows)
	}

	userDir := filepath.Join(home, ".pipeslide", "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, "pipeslide.yaml"), []byte("water:\n  period_ms: 900\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err = Load("pipeslide", "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Water.PeriodMS != 900 {
		t.Errorf("period = %d, want 900 from user config", cfg.Water.PeriodMS)
	}
}

func TestLoadCustomPath(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	good := filepath.Join(dir, "good.yaml")
	if err := os.WriteFile(good, []byte("board:\n  rows: 3\n  cols: 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load("pipeslide", good)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Board.Rows != 3 || cfg.Board.Cols != 4 {
		t.Errorf("board = %dx%d, want 3x4", cfg.Board.Rows, cfg.Board.Cols)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("board:\n  rows: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load("pipeslide", bad); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}

	if _, err := Load("pipeslide", filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset     DifficultyPreset
		enabled    bool
		periodMS   int
		gapCount   int
		startLevel float64
	}{
		{DifficultyEasy, true, 3000, 30, 0.0},
		{DifficultyNormal, true, 2000, 0, 0.0},
		{DifficultyHard, true, 1500, 10, 0.0},
		{DifficultyFixed, false, 2000, 0, 0.0},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultPipeSlideConfig()
			ApplyPreset(&cfg, tc.preset)

			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("enabled = %v, want %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Water.PeriodMS != tc.periodMS {
				t.Errorf("period = %d, want %d", cfg.Water.PeriodMS, tc.periodMS)
			}
			if cfg.Gaps.Count != tc.gapCount {
				t.Errorf("gaps = %d, want %d", cfg.Gaps.Count, tc.gapCount)
			}
			if cfg.Difficulty.InitialLevel != tc.startLevel {
				t.Errorf("initial level = %v, want %v", cfg.Difficulty.InitialLevel, tc.startLevel)
			}
		})
	}
}

func TestApplyPresetKeepsConfiguredDifficulty(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "calm.yaml")
	yaml := "water:\n  period_ms: 2000\ndifficulty:\n  enabled: false\n  initial_level: 0.4\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	for _, preset := range []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard} {
		cfg, err := Load("pipeslide", path)
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		ApplyPreset(&cfg, preset)

		if cfg.Difficulty.Enabled {
			t.Errorf("%s: progression enabled, config disabled it", preset)
		}
		if cfg.Difficulty.InitialLevel != 0.4 {
			t.Errorf("%s: initial level = %v, want 0.4 from config", preset, cfg.Difficulty.InitialLevel)
		}
	}
}

func TestNormalPresetKeepsWaterPeriod(t *testing.T) {
	cfg := DefaultPipeSlideConfig()
	ApplyPreset(&cfg, DifficultyNormal)

	dm := NewDifficultyManager(cfg.Difficulty)
	if got := dm.WaterPeriod(cfg.Water.Period(), cfg.Water.MinPeriod(), 0, 0); got != 2*time.Second {
		t.Errorf("starting period = %v, want the configured 2s", got)
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset(""); err != nil || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = %q, %v", p, err)
	}
	if p, err := ParsePreset("hard"); err != nil || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, err)
	}
	if _, err := ParsePreset("insane"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestDifficultyWaterPeriod(t *testing.T) {
	cfg := DefaultPipeSlideConfig().Difficulty
	dm := NewDifficultyManager(cfg)

	base := 2 * time.Second
	floor := 600 * time.Millisecond

	if got := dm.WaterPeriod(base, floor, 0, 0); got != base {
		t.Errorf("period at score 0 = %v, want %v", got, base)
	}
	// Max difficulty: 2s / (1 + 1.5) = 800ms
	if got := dm.WaterPeriod(base, floor, 5000, 0); got != 800*time.Millisecond {
		t.Errorf("period at max = %v, want 800ms", got)
	}
	if got := dm.WaterPeriod(base, 900*time.Millisecond, 5000, 0); got != 900*time.Millisecond {
		t.Errorf("period should be floored, got %v", got)
	}

	dm.SetEnabled(false)
	dm.SetInitialLevel(2.0)
	if lvl := dm.Level(5000, 0); lvl != 1.0 {
		t.Errorf("level = %v, want clamped 1.0", lvl)
	}
}
