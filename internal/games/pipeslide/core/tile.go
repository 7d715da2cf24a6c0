package core

// Tile is a grid slot. Its index never changes; the pipe it holds moves
// with slides. A gap slot holds no pipe.
type Tile struct {
	index   int
	movable bool
	pipe    *Pipe
}

// Index returns the grid index of the tile.
func (t *Tile) Index() int {
	return t.index
}

// Movable reports whether the tile can still be slid or rotated.
// Becomes false permanently once water enters it.
func (t *Tile) Movable() bool {
	return t.movable
}

// Pipe returns the pipe on this tile, or nil for a gap.
func (t *Tile) Pipe() *Pipe {
	return t.pipe
}

// Occupied reports whether the tile holds a pipe.
func (t *Tile) Occupied() bool {
	return t.pipe != nil
}

// lock makes the tile permanently immovable.
func (t *Tile) lock() {
	t.movable = false
}
