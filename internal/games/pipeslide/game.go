// Package pipeslide provides the PipeSlide puzzle game for the platform.
// The puzzle rules live in the core subpackage; this package drives them
// from fixed-rate ticks, keeps score and draws the board.
package pipeslide

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pipeslide/internal/config"
	platformcore "github.com/vovakirdan/pipeslide/internal/core"
	"github.com/vovakirdan/pipeslide/internal/games/pipeslide/core"
	"github.com/vovakirdan/pipeslide/internal/games/pipeslide/levels"
	"github.com/vovakirdan/pipeslide/internal/registry"
)

// Variant IDs.
const (
	IDClassic = "pipeslide"
	IDMini    = "pipeslide_mini"
)

// End reasons reported in run summaries.
const (
	EndSpilled = "spilled"
	EndInvalid = "invalid"
	EndNoBoard = "no_board"
)

// Options tune how a game loads its configuration and layout.
type Options struct {
	ConfigPath string                  // Custom YAML config; empty uses the search path
	Difficulty config.DifficultyPreset // Empty means normal
	Layout     string                  // Layout ID or file; empty means random
	Logger     *log.Logger             // nil discards

	// Config bypasses loading entirely when set.
	Config *config.PipeSlideConfig
}

var (
	optionsMu      sync.RWMutex
	defaultOptions Options
)

// SetOptions sets the options used by games created through the registry.
func SetOptions(o Options) {
	optionsMu.Lock()
	defaultOptions = o
	optionsMu.Unlock()
}

// GetOptions returns the options used by games created through the registry.
func GetOptions() Options {
	optionsMu.RLock()
	defer optionsMu.RUnlock()
	return defaultOptions
}

func init() {
	registry.Register(IDClassic, func() registry.Game {
		return New(IDClassic, GetOptions())
	})
	registry.Register(IDMini, func() registry.Game {
		return New(IDMini, GetOptions())
	})
}

// Game implements the PipeSlide puzzle.
type Game struct {
	id   string
	opts Options
	log  *log.Logger

	cfg    config.PipeSlideConfig
	diff   *config.DifficultyManager
	engine *core.Engine
	level  string // Layout name, empty for random boards

	seed    int64
	tickDur time.Duration
	tick    uint64
	score   int

	// Screen dimensions
	screenW int
	screenH int
	cellW   int
	cellH   int

	// Status
	gameOver  bool
	paused    bool
	tooSmall  bool
	endReason string
}

// New creates a game for the given variant ID.
func New(id string, opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		id:   id,
		opts: opts,
		log:  logger.With("game", id),
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.id == IDMini {
		return "PipeSlide Mini"
	}
	return "PipeSlide"
}

// Description returns a one-line summary for menus.
func (g *Game) Description() string {
	if g.id == IDMini {
		return "5x6 board for small terminals"
	}
	return "Slide and rotate pipes ahead of the water (10x14)"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.seed = cfg.Seed
	g.tickDur = cfg.TickDuration()
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tick = 0
	g.score = 0
	g.gameOver = false
	g.paused = false
	g.endReason = ""
	g.level = ""

	g.cfg = g.loadConfig()
	g.diff = config.NewDifficultyManager(g.cfg.Difficulty)

	engineCfg := core.EngineConfig{
		Rows:        g.cfg.Board.Rows,
		Cols:        g.cfg.Board.Cols,
		WaterPeriod: g.cfg.Water.Period(),
		StrictEdges: g.cfg.Board.StrictEdges,
		Layout:      core.RandomLayout{Seed: cfg.Seed, GapCount: g.cfg.Gaps.Count},
	}
	if g.opts.Layout != "" {
		lvl, err := levels.Resolve(g.opts.Layout)
		if err != nil {
			g.log.Warn("layout unavailable, using a random board", "layout", g.opts.Layout, "err", err)
		} else {
			engineCfg.Rows, engineCfg.Cols = lvl.Rows, lvl.Cols
			engineCfg.Layout = lvl.Source()
			g.level = lvl.Name
		}
	}

	engine, err := core.NewEngine(engineCfg)
	if err != nil {
		g.log.Error("cannot build board", "err", err)
		g.engine = nil
		g.gameOver = true
		g.endReason = EndNoBoard
		return
	}
	g.engine = engine
	g.log.Debug("board ready", "rows", engineCfg.Rows, "cols", engineCfg.Cols,
		"gaps", len(engine.Board().Gaps()), "seed", cfg.Seed)

	g.checkScreenSize()
}

// loadConfig resolves the variant config and applies the difficulty preset.
func (g *Game) loadConfig() config.PipeSlideConfig {
	var cfg config.PipeSlideConfig
	if g.opts.Config != nil {
		cfg = *g.opts.Config
	} else {
		loaded, err := config.Load(g.id, g.opts.ConfigPath)
		if err != nil {
			g.log.Warn("config rejected, using defaults", "path", g.opts.ConfigPath, "err", err)
			loaded = config.DefaultFor(g.id)
		}
		cfg = loaded
	}

	preset := g.opts.Difficulty
	if preset == "" {
		preset = config.DifficultyNormal
	}
	config.ApplyPreset(&cfg, preset)
	return cfg
}

// Step advances the game by one tick.
//
// Per tick: a direction moves the selection, or slides the selected pipe
// when the selection cannot move that way; rotate turns the selected pipe;
// then the water timer advances by one tick's worth of time.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.tick++

	if g.tooSmall || g.engine == nil {
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionPause) {
		g.TogglePause()
	}
	if g.paused || g.gameOver {
		return platformcore.StepResult{State: g.State()}
	}

	changed := false
	for _, a := range platformcore.DirectionalActions {
		if !in.Has(a) {
			continue
		}
		changed = g.Move(actionDirection(a))
		break
	}
	if in.Has(platformcore.ActionRotate) && g.engine.Rotate() {
		changed = true
	}

	if g.diff.IsEnabled() {
		g.engine.SetWaterPeriod(g.diff.WaterPeriod(g.cfg.Water.Period(), g.cfg.Water.MinPeriod(), g.score, int(g.tick)))
	}

	for _, ev := range g.engine.TickWater(g.tickDur) {
		changed = true
		if ev.Kind == core.WaterSpilled {
			g.gameOver = true
			g.endReason = EndSpilled
			g.log.Info("water spilled", "tile", ev.Tile, "exit", ev.Exit, "score", g.score)
		}
	}
	g.score = g.computeScore()

	if err := g.engine.Validate(); err != nil {
		g.log.Error("board invariant violated", "err", err, "tick", g.tick)
		g.gameOver = true
		g.endReason = EndInvalid
	}

	return platformcore.StepResult{State: g.State(), Changed: changed}
}

// Move moves the selection one step toward d, or slides the selected pipe
// into a gap when the selection cannot move that way.
func (g *Game) Move(d core.Direction) bool {
	if g.engine == nil {
		return false
	}
	return g.engine.Select(d) || g.engine.SlideToward(d)
}

// TogglePause pauses or resumes a running game and returns the new state.
// A finished run stays unpaused.
func (g *Game) TogglePause() bool {
	if !g.gameOver {
		g.paused = !g.paused
	}
	return g.paused
}

// computeScore rewards every pipe the flow has traversed, plus a bonus per
// completed stretch of LengthBonusAt pipes.
func (g *Game) computeScore() int {
	filled := g.engine.Stats().Filled
	s := filled * g.cfg.Scoring.PointsPerTile
	if g.cfg.Scoring.LengthBonusAt > 0 {
		s += (filled / g.cfg.Scoring.LengthBonusAt) * g.cfg.Scoring.LengthBonus
	}
	return s
}

func actionDirection(a platformcore.Action) core.Direction {
	switch a {
	case platformcore.ActionUp:
		return core.DirTop
	case platformcore.ActionRight:
		return core.DirRight
	case platformcore.ActionDown:
		return core.DirBottom
	default:
		return core.DirLeft
	}
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Run summarises the current run for the score store.
func (g *Game) Run() platformcore.RunSummary {
	r := platformcore.RunSummary{
		Score:     g.score,
		Seed:      g.seed,
		Ticks:     g.tick,
		EndReason: g.endReason,
	}
	if g.engine != nil {
		r.TilesFilled = g.engine.Stats().Filled
	}
	return r
}

// Engine exposes the puzzle engine for read access.
func (g *Game) Engine() *core.Engine {
	return g.engine
}
