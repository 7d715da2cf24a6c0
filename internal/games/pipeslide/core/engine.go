package core

import (
	"fmt"
	"time"
)

// EngineConfig configures a new Engine.
type EngineConfig struct {
	Rows        int
	Cols        int
	WaterPeriod time.Duration // 0 means DefaultWaterPeriod
	StrictEdges bool
	Layout      LayoutSource // nil means RandomLayout{Seed: Seed}
	Seed        int64
}

// Stats summarises progress.
type Stats struct {
	Filled     int    // Pipes the flow has fully traversed
	Locked     int    // Tiles locked by the flow
	WaterSteps uint64 // Water steps performed
	Moves      uint64 // Successful slides
	Rotations  uint64 // Successful rotations
}

// Engine is the puzzle: one board and the water timer.
// It is passive: the driver calls Select, SlideToward, Rotate and TickWater
// in that order once per frame. Not safe for concurrent use; a single
// goroutine owns it.
type Engine struct {
	board *Board
	timer *WaterTimer
	stats Stats
}

// NewEngine builds the board from the configured layout source.
func NewEngine(cfg EngineConfig) (*Engine, error) {
	src := cfg.Layout
	if src == nil {
		src = RandomLayout{Seed: cfg.Seed}
	}

	layout, err := src.Layout(cfg.Rows, cfg.Cols)
	if err != nil {
		return nil, fmt.Errorf("building layout: %w", err)
	}

	board, err := NewBoard(cfg.Rows, cfg.Cols, layout, BoardOptions{StrictEdges: cfg.StrictEdges})
	if err != nil {
		return nil, err
	}

	return &Engine{
		board: board,
		timer: NewWaterTimer(cfg.WaterPeriod),
	}, nil
}

// Board returns the board for read access.
func (e *Engine) Board() *Board {
	return e.board
}

// Timer returns the water timer.
func (e *Engine) Timer() *WaterTimer {
	return e.timer
}

// SetWaterPeriod changes the interval between water steps.
func (e *Engine) SetWaterPeriod(d time.Duration) {
	e.timer.SetPeriod(d)
}

// Select moves the selection. Returns false when the move is not allowed.
func (e *Engine) Select(d Direction) bool {
	return e.board.Select(d)
}

// SlideToward slides the active tile into an adjacent gap.
// Returns false when the slide is not allowed.
func (e *Engine) SlideToward(d Direction) bool {
	if !e.board.SlideToward(d) {
		return false
	}
	e.stats.Moves++
	return true
}

// Rotate rotates the active tile's pipe. Returns false for locked tiles.
func (e *Engine) Rotate() bool {
	if !e.board.RotateActive() {
		return false
	}
	e.stats.Rotations++
	return true
}

// TickWater advances the water timer by dt and performs one water step
// per elapsed interval. Returns the events of the steps performed.
func (e *Engine) TickWater(dt time.Duration) []WaterEvent {
	n := e.timer.Tick(dt)
	if n == 0 {
		return nil
	}

	events := make([]WaterEvent, 0, n)
	for range n {
		ev := e.board.AdvanceWater()
		events = append(events, ev)
		if ev.Kind == WaterIdle {
			break
		}
		e.stats.WaterSteps++
	}
	return events
}

// WaterReady reports whether the next water step would make progress.
func (e *Engine) WaterReady() bool {
	return e.board.WaterReady()
}

// Spilled reports whether the flow has left the board.
func (e *Engine) Spilled() bool {
	return e.board.Flow() == FlowSpilled
}

// Validate checks board consistency.
func (e *Engine) Validate() error {
	return e.board.Validate()
}

// Stats returns progress counters.
func (e *Engine) Stats() Stats {
	s := e.stats
	s.Filled = e.board.FilledCount()
	s.Locked = e.board.LockedCount()
	return s
}
