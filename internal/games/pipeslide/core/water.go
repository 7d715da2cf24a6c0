package core

import "time"

// DefaultWaterPeriod is the default interval between water steps.
const DefaultWaterPeriod = 2 * time.Second

// WaterEventKind describes what a single water step did.
type WaterEventKind uint8

const (
	WaterWaiting  WaterEventKind = iota // No pipe end matches; flow waits in place
	WaterEntered                        // Entry end painted, tile locked
	WaterAdvanced                       // Flow exited into the next tile
	WaterSpilled                        // Flow tried to leave the board
	WaterIdle                           // Flow already spilled; nothing to do
)

// String returns the string representation of a water event kind.
func (k WaterEventKind) String() string {
	switch k {
	case WaterWaiting:
		return "waiting"
	case WaterEntered:
		return "entered"
	case WaterAdvanced:
		return "advanced"
	case WaterSpilled:
		return "spilled"
	case WaterIdle:
		return "idle"
	default:
		return "unknown"
	}
}

// WaterEvent records one water step.
type WaterEvent struct {
	Kind  WaterEventKind
	Tile  int       // Water tile when the step started
	Entry Direction // Entry edge expected at Tile
	Exit  Direction // Valid for WaterAdvanced and WaterSpilled
	Next  int       // New water tile, valid for WaterAdvanced
}

// WaterTimer is a repeating interval timer driven by explicit elapsed time.
type WaterTimer struct {
	period  time.Duration
	elapsed time.Duration
}

// NewWaterTimer creates a timer. A non-positive period uses DefaultWaterPeriod.
func NewWaterTimer(period time.Duration) *WaterTimer {
	if period <= 0 {
		period = DefaultWaterPeriod
	}
	return &WaterTimer{period: period}
}

// Period returns the timer interval.
func (t *WaterTimer) Period() time.Duration {
	return t.period
}

// SetPeriod changes the interval. Time already elapsed in the current
// interval is kept. A non-positive period is ignored.
func (t *WaterTimer) SetPeriod(period time.Duration) {
	if period > 0 {
		t.period = period
	}
}

// Remaining returns the time left until the next interval elapses.
func (t *WaterTimer) Remaining() time.Duration {
	return max(0, t.period-t.elapsed)
}

// Tick advances the timer and returns how many intervals elapsed.
func (t *WaterTimer) Tick(dt time.Duration) int {
	if dt <= 0 {
		return 0
	}
	t.elapsed += dt
	n := int(t.elapsed / t.period)
	t.elapsed -= time.Duration(n) * t.period
	return n
}

// Reset restarts the current interval.
func (t *WaterTimer) Reset() {
	t.elapsed = 0
}

// initWater places the flow at the origin. The exit is the first origin
// end (Right, then Bottom) that leads onto the board, and the flow enters
// the origin through the other end.
func (b *Board) initWater() error {
	origin := b.tiles[0].pipe
	if origin == nil {
		return ErrOriginIsGap
	}

	for _, exit := range []Direction{DirRight, DirBottom} {
		if !origin.shape.Connects(exit) {
			continue
		}
		next, ok := b.step(0, exit, true)
		if !ok {
			continue
		}
		entry, _ := origin.shape.Other(exit)
		b.waterIndex = 0
		b.nextWaterIndex = next
		b.nextEntry = entry
		b.flow = FlowRunning
		return nil
	}
	return ErrOriginExit
}

// WaterReady reports whether the pipe at the water tile has an end
// matching the expected entry edge. Safe to call every frame.
func (b *Board) WaterReady() bool {
	if b.flow == FlowSpilled {
		return false
	}
	p := b.tiles[b.waterIndex].pipe
	return p != nil && p.accepts(b.nextEntry)
}

// AdvanceWater performs one water step. Call once per elapsed timer
// interval.
//
// A step on a dry pipe paints its entry end and locks the tile; the flow
// stays on the tile. The following step exits through the other end and
// moves the flow to the neighbouring tile. A pipe with no end matching the
// entry edge blocks the flow until it is rotated or replaced.
func (b *Board) AdvanceWater() WaterEvent {
	ev := WaterEvent{Tile: b.waterIndex, Entry: b.nextEntry}

	if b.flow == FlowSpilled {
		ev.Kind = WaterIdle
		return ev
	}
	if !b.WaterReady() {
		b.flow = FlowBlocked
		ev.Kind = WaterWaiting
		return ev
	}

	tile := &b.tiles[b.waterIndex]
	pipe := tile.pipe

	if pipe.mark == FlowDry {
		pipe.fill(b.nextEntry)
		tile.lock()
		b.flow = FlowRunning
		ev.Kind = WaterEntered
		return ev
	}

	// Re-entering a pipe that was already traversed counts as painted.
	if pipe.mark == FlowFull {
		pipe.entry = b.nextEntry
	}

	exit := pipe.exit()
	ev.Exit = exit

	next, ok := b.step(b.waterIndex, exit, b.strictEdges)
	if !ok {
		pipe.drain()
		b.nextWaterIndex = b.waterIndex
		b.flow = FlowSpilled
		ev.Kind = WaterSpilled
		return ev
	}

	pipe.drain()
	b.nextEntry = exit.Opposite()
	b.nextWaterIndex = next
	b.waterIndex = next
	b.flow = FlowRunning

	ev.Kind = WaterAdvanced
	ev.Next = next
	return ev
}

// FilledCount returns the number of pipes the flow has fully traversed.
func (b *Board) FilledCount() int {
	n := 0
	for i := range b.tiles {
		if p := b.tiles[i].pipe; p != nil && p.mark == FlowFull {
			n++
		}
	}
	return n
}

// LockedCount returns the number of tiles locked by the flow.
func (b *Board) LockedCount() int {
	n := 0
	for i := range b.tiles {
		if !b.tiles[i].movable {
			n++
		}
	}
	return n
}
