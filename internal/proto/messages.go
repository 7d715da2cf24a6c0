// Package proto defines the JSON messages exchanged with websocket clients.
package proto

import (
	"time"

	"github.com/vovakirdan/pipeslide/internal/games/pipeslide/core"
)

// Client message types.
const (
	TypeSelect  = "select"  // Move the selection one step toward dir
	TypeSlide   = "slide"   // Slide the selected pipe into the gap at dir
	TypeMove    = "move"    // Select toward dir, or slide when the selection cannot move
	TypeRotate  = "rotate"  // Rotate the selected pipe clockwise
	TypePause   = "pause"   // Toggle pause
	TypeRestart = "restart" // New board after game over
	TypePing    = "ping"
)

// Server message types.
const (
	TypeHello = "hello"
	TypeState = "state"
	TypeOver  = "over"
	TypeError = "error"
	TypePong  = "pong"
)

// Error codes.
const (
	ErrBadJSON      = "bad_json"
	ErrUnknownType  = "unknown_type"
	ErrBadDirection = "bad_direction"
	ErrRejected     = "rejected" // Command was valid but had no effect
)

// ---- Client -> Server ----

// ClientMsg is any client command.
type ClientMsg struct {
	Type      string `json:"type"`
	Dir       string `json:"dir,omitempty"`       // select, slide, move
	ClientSeq int    `json:"clientSeq,omitempty"` // Echoed in errors
}

// ---- Server -> Client ----

// Hello is sent once after the upgrade.
type Hello struct {
	Type     string `json:"type"`
	Game     string `json:"game"`
	Rows     int    `json:"rows"`
	Cols     int    `json:"cols"`
	Seed     int64  `json:"seed"`
	PeriodMS int64  `json:"periodMs"`
}

// Tile is one slot of the board.
type Tile struct {
	Shape  string   `json:"shape,omitempty"`  // Layout token such as "S>", empty for a gap
	Points [][2]int `json:"points,omitempty"` // Pipe ends as [dx, dy] from the tile centre, y down
	Mark   string   `json:"mark,omitempty"`   // dry, filling or full
	Locked bool     `json:"locked,omitempty"`
}

// State is a full board snapshot, sent after every change.
type State struct {
	Type        string `json:"type"`
	ServerSeq   int    `json:"serverSeq"`
	Rows        int    `json:"rows"`
	Cols        int    `json:"cols"`
	Tiles       []Tile `json:"tiles"`
	Active      int    `json:"active"`
	Water       int    `json:"water"`
	NextWater   int    `json:"nextWater"`
	Entry       string `json:"entry"`
	Flow        string `json:"flow"`
	Ready       bool   `json:"ready"`
	Score       int    `json:"score"`
	Filled      int    `json:"filled"`
	RemainingMS int64  `json:"remainingMs"`
	Paused      bool   `json:"paused,omitempty"`
}

// Over is sent once when the run ends.
type Over struct {
	Type   string `json:"type"`
	Reason string `json:"reason"`
	Score  int    `json:"score"`
	Filled int    `json:"filled"`
	Ticks  uint64 `json:"ticks"`
}

// Error reports a command the server could not apply.
type Error struct {
	Type      string `json:"type"`
	Code      string `json:"code"`
	Detail    string `json:"detail,omitempty"`
	ClientSeq int    `json:"clientSeq,omitempty"`
}

// Pong answers a ping.
type Pong struct {
	Type string `json:"type"`
}

// NewState converts a board snapshot to the wire form.
func NewState(seq int, snap core.Snapshot, score int, remaining time.Duration, paused bool) State {
	s := State{
		Type:        TypeState,
		ServerSeq:   seq,
		Rows:        snap.Rows,
		Cols:        snap.Cols,
		Tiles:       make([]Tile, len(snap.Tiles)),
		Active:      snap.Active,
		Water:       snap.WaterIndex,
		NextWater:   snap.NextWaterIndex,
		Entry:       snap.NextEntry.String(),
		Flow:        snap.Flow.String(),
		Ready:       snap.Ready,
		Score:       score,
		Filled:      snap.Stats.Filled,
		RemainingMS: remaining.Milliseconds(),
		Paused:      paused,
	}
	for i, v := range snap.Tiles {
		if v.Gap {
			continue
		}
		t := Tile{
			Shape:  v.Shape.String(),
			Points: make([][2]int, 0, len(v.Points)),
			Mark:   v.Mark.String(),
			Locked: !v.Movable,
		}
		for _, p := range v.Points {
			dx, dy := p.Vector()
			t.Points = append(t.Points, [2]int{dx, dy})
		}
		s.Tiles[i] = t
	}
	return s
}

// NewError builds an error message for a client command.
func NewError(code, detail string, clientSeq int) Error {
	return Error{Type: TypeError, Code: code, Detail: detail, ClientSeq: clientSeq}
}
