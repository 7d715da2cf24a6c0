package pipeslide

import (
	"fmt"

	platformcore "github.com/vovakirdan/pipeslide/internal/core"
	"github.com/vovakirdan/pipeslide/internal/games/pipeslide/core"
)

const (
	hudHeight    = 2 // Title and stats above the board
	statusHeight = 1 // Status line below the board
)

// Cell sizes, largest first. The biggest one that fits the screen wins.
var cellSizes = [...]struct{ w, h int }{
	{5, 3},
	{3, 1},
}

// checkScreenSize picks the tile size and flags screens that are too small.
func (g *Game) checkScreenSize() {
	g.tooSmall = true
	if g.engine == nil {
		return
	}
	b := g.engine.Board()
	for _, cs := range cellSizes {
		boardW := b.Cols()*cs.w + 2
		boardH := b.Rows()*cs.h + 2
		if g.screenW >= boardW && g.screenH >= boardH+hudHeight+statusHeight {
			g.cellW, g.cellH = cs.w, cs.h
			g.tooSmall = false
			return
		}
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.engine == nil {
		g.renderMessage(dst, "Cannot build board", "Check the config and layout")
		return
	}
	if g.tooSmall {
		g.renderMessage(dst, "Window too small", "Please resize terminal")
		return
	}

	snap := g.engine.Snapshot()
	boardW := snap.Cols*g.cellW + 2
	boardH := snap.Rows*g.cellH + 2
	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight

	g.renderHUD(dst, snap, boardX, boardW)

	frame := platformcore.NewRect(boardX, boardY, boardW, boardH)
	dst.DrawBox(frame, platformcore.ColorGray)
	// Source marker on the frame next to the origin tile
	dst.SetColored(boardX, boardY+1+g.cellH/2, '◆', platformcore.ColorBrightCyan)

	for _, v := range snap.Tiles {
		row, col := v.Index/snap.Cols, v.Index%snap.Cols
		r := platformcore.NewRect(boardX+1+col*g.cellW, boardY+1+row*g.cellH, g.cellW, g.cellH)
		g.renderTile(dst, r, v, snap)
	}

	g.renderStatus(dst, snap, boardY+boardH)
}

func (g *Game) renderMessage(dst *platformcore.Screen, msg, hint string) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, msg, platformcore.ColorDefault)
	dst.DrawTextCentered(y+1, hint, platformcore.ColorGray)
}

// renderHUD draws the title, score and water countdown.
func (g *Game) renderHUD(dst *platformcore.Screen, snap core.Snapshot, boardX, boardW int) {
	title := g.Title()
	if g.level != "" {
		title += " - " + g.level
	}
	dst.DrawTextCentered(0, title, platformcore.ColorBrightWhite)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d  Filled: %d", g.score, snap.Stats.Filled))

	var info string
	color := platformcore.ColorCyan
	switch {
	case snap.Flow == core.FlowSpilled:
		info = "Spilled"
		color = platformcore.ColorRed
	case !snap.Ready:
		info = fmt.Sprintf("Blocked! %.1fs", g.engine.Timer().Remaining().Seconds())
		color = platformcore.ColorBrightRed
	default:
		info = fmt.Sprintf("Water %.1fs", g.engine.Timer().Remaining().Seconds())
	}
	infoX := platformcore.Max(boardX, boardX+boardW-len(info))
	dst.DrawTextColored(infoX, 1, info, color)
}

// renderStatus draws pause and game over notices below the board.
func (g *Game) renderStatus(dst *platformcore.Screen, snap core.Snapshot, y int) {
	switch {
	case g.gameOver && g.endReason == EndSpilled:
		dst.DrawTextCentered(y, fmt.Sprintf("GAME OVER - %d pipes filled - press R", snap.Stats.Filled), platformcore.ColorBrightRed)
	case g.gameOver:
		dst.DrawTextCentered(y, "GAME OVER - press R", platformcore.ColorBrightRed)
	case g.paused:
		dst.DrawTextCentered(y, "PAUSED - press P to resume", platformcore.ColorYellow)
	}
}

// renderTile draws one slot: a gap dot or a pipe.
func (g *Game) renderTile(dst *platformcore.Screen, r platformcore.Rect, v core.TileView, snap core.Snapshot) {
	color := tileColor(v, snap)
	cx, cy := r.Center()

	if v.Gap {
		dst.SetColored(cx, cy, '·', color)
		return
	}

	drawPipe(dst, r, v.Points, color)

	// Corner ticks mark the selection on large tiles
	if v.Active && r.H >= 3 {
		dst.SetColored(r.X, r.Y, '┌', platformcore.ColorBrightYellow)
		dst.SetColored(r.Right()-1, r.Bottom()-1, '┘', platformcore.ColorBrightYellow)
	}
}

// tileColor picks the colour for a tile from its flow state.
func tileColor(v core.TileView, snap core.Snapshot) platformcore.Color {
	waiting := v.Water && (v.Gap || v.Mark == core.FlowDry)
	switch {
	case waiting && snap.Ready:
		return platformcore.ColorBrightGreen
	case waiting:
		return platformcore.ColorBrightRed
	case v.Active:
		return platformcore.ColorBrightYellow
	case v.NextWater:
		return platformcore.ColorMagenta
	case v.Gap:
		return platformcore.ColorGray
	case v.Mark == core.FlowFilling:
		return platformcore.ColorBrightCyan
	case v.Mark == core.FlowFull:
		return platformcore.ColorBlue
	default:
		return platformcore.ColorWhite
	}
}

// drawPipe draws a segment from the tile centre to each connected edge.
func drawPipe(dst *platformcore.Screen, r platformcore.Rect, points [2]core.Direction, c platformcore.Color) {
	cx, cy := r.Center()
	for _, p := range points {
		dx, dy := p.Vector()
		if dx == 0 && dy == 0 {
			continue
		}
		glyph := '═'
		if dx == 0 {
			glyph = '║'
		}
		for x, y := cx+dx, cy+dy; r.Contains(x, y); x, y = x+dx, y+dy {
			dst.SetColored(x, y, glyph, c)
		}
	}
	dst.SetColored(cx, cy, centreGlyph(points), c)
}

// centreGlyph returns the box-drawing rune joining two pipe ends.
func centreGlyph(points [2]core.Direction) rune {
	var mask uint8
	for _, p := range points {
		mask |= 1 << p
	}

	const (
		top    = 1 << core.DirTop
		right  = 1 << core.DirRight
		bottom = 1 << core.DirBottom
		left   = 1 << core.DirLeft
	)
	switch mask {
	case top | bottom:
		return '║'
	case left | right:
		return '═'
	case top | right:
		return '╚'
	case right | bottom:
		return '╔'
	case bottom | left:
		return '╗'
	case left | top:
		return '╝'
	default:
		return '?'
	}
}

// Resize adapts the layout to a new screen size without restarting.
func (g *Game) Resize(w, h int) {
	g.screenW, g.screenH = w, h
	g.checkScreenSize()
}
