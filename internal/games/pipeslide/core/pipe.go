package core

// FlowMark tracks how far the water has progressed through a pipe.
type FlowMark uint8

const (
	FlowDry     FlowMark = iota // Never entered
	FlowFilling                 // Entry end painted, flow has not exited yet
	FlowFull                    // Flow has exited through the other end
)

// String returns the string representation of a flow mark.
func (m FlowMark) String() string {
	switch m {
	case FlowDry:
		return "dry"
	case FlowFilling:
		return "filling"
	case FlowFull:
		return "full"
	default:
		return "unknown"
	}
}

// Pipe is the mutable holder of one Shape attached to a tile.
type Pipe struct {
	shape Shape
	mark  FlowMark
	entry Direction // End the flow entered through; valid when mark != FlowDry
}

// NewPipe creates a dry pipe with the given shape.
func NewPipe(s Shape) *Pipe {
	return &Pipe{shape: s}
}

// Shape returns the current shape.
func (p *Pipe) Shape() Shape {
	return p.shape
}

// Points returns the two connection points of the current shape.
func (p *Pipe) Points() [2]Direction {
	return p.shape.Points()
}

// Mark returns the flow mark.
func (p *Pipe) Mark() FlowMark {
	return p.mark
}

// Entry returns the end the flow entered through.
// Meaningful only once the pipe is no longer dry.
func (p *Pipe) Entry() Direction {
	return p.entry
}

// rotate turns the pipe one step clockwise. Only the board calls it, after
// checking that the tile is movable.
func (p *Pipe) rotate() {
	p.shape = p.shape.Rotated()
}

// accepts reports whether flow arriving through edge d can enter.
func (p *Pipe) accepts(d Direction) bool {
	return p.shape.Connects(d)
}

// fill paints the entry end. The matched end becomes the entry regardless
// of its position in Points(); the segment is symmetric.
func (p *Pipe) fill(entry Direction) {
	p.entry = entry
	p.mark = FlowFilling
}

// exit returns the end opposite to the entry.
func (p *Pipe) exit() Direction {
	d, _ := p.shape.Other(p.entry)
	return d
}

// drain marks the pipe as fully traversed.
func (p *Pipe) drain() {
	p.mark = FlowFull
}
