package core

// TileView is a read-only copy of one tile for renderers.
type TileView struct {
	Index     int
	Gap       bool
	Movable   bool
	Shape     Shape        // Zero value for gaps
	Points    [2]Direction // Connection points, valid when !Gap
	Mark      FlowMark
	Entry     Direction // Valid when Mark != FlowDry
	Active    bool
	Water     bool // Flow currently occupies this tile
	NextWater bool // Flow will enter this tile next
}

// Snapshot is a value copy of all renderable puzzle state.
type Snapshot struct {
	Rows           int
	Cols           int
	Gaps           []int
	Active         int
	WaterIndex     int
	NextWaterIndex int
	NextEntry      Direction
	Flow           FlowState
	Ready          bool
	Tiles          []TileView
	Stats          Stats
}

// Snapshot captures the current state.
func (e *Engine) Snapshot() Snapshot {
	b := e.board
	s := Snapshot{
		Rows:           b.rows,
		Cols:           b.cols,
		Gaps:           b.Gaps(),
		Active:         b.active,
		WaterIndex:     b.waterIndex,
		NextWaterIndex: b.nextWaterIndex,
		NextEntry:      b.nextEntry,
		Flow:           b.flow,
		Ready:          b.WaterReady(),
		Tiles:          make([]TileView, b.size),
		Stats:          e.Stats(),
	}

	for i := range b.tiles {
		t := &b.tiles[i]
		v := TileView{
			Index:     i,
			Gap:       t.pipe == nil,
			Movable:   t.movable,
			Active:    i == b.active,
			Water:     i == b.waterIndex,
			NextWater: i == b.nextWaterIndex && b.flow != FlowSpilled,
		}
		if t.pipe != nil {
			v.Shape = t.pipe.shape
			v.Points = t.pipe.shape.Points()
			v.Mark = t.pipe.mark
			v.Entry = t.pipe.entry
		}
		s.Tiles[i] = v
	}
	return s
}
