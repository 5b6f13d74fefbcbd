package tetris

import (
	"fmt"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/tetris/engine"
)

// Visual characters for rendering
const (
	BlockChar = '█'
	GhostChar = '░'
	EmptyChar = '·'
)

// panelWidth is the width of the HUD column right of the board.
const panelWidth = 16

// pieceColors is the color of each identity.
var pieceColors = map[engine.Piece]core.Color{
	engine.PieceI: core.ColorCyan,
	engine.PieceO: core.ColorYellow,
	engine.PieceT: core.ColorMagenta,
	engine.PieceS: core.ColorGreen,
	engine.PieceZ: core.ColorRed,
	engine.PieceJ: core.ColorBlue,
	engine.PieceL: core.ColorOrange,
}

// PieceColor returns the display color of a piece identity.
func PieceColor(p engine.Piece) core.Color {
	if c, ok := pieceColors[p]; ok {
		return c
	}
	return core.ColorDefault
}

// layout holds screen positions computed from the window size.
type layout struct {
	cellW    int       // columns per board cell
	board    core.Rect // board frame including the border
	panelX   int       // left edge of the HUD column
	minW     int
	minH     int
	tooSmall bool
}

func computeLayout(display config.TetrisDisplay, screenW, screenH int) layout {
	cellW := display.CellWidth
	if cellW < 1 {
		cellW = 1
	}

	boardW := engine.Cols*cellW + 2
	boardH := engine.Rows + 2
	totalW := boardW + 2 + panelWidth

	l := layout{
		cellW: cellW,
		minW:  totalW,
		minH:  boardH,
	}
	l.tooSmall = screenW < l.minW || screenH < l.minH

	area := core.Centered(totalW, boardH, core.NewRect(0, 0, screenW, screenH))
	l.board = core.NewRect(area.X, area.Y, boardW, boardH)
	l.panelX = l.board.Right() + 2
	return l
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Check for screen too small
	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.layout.minW, g.layout.minH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	snap := g.eng.Snapshot()

	dst.DrawBoxColored(g.layout.board, core.ColorGray)
	g.renderBoard(dst, &snap)
	if g.cfg.Display.Ghost && !snap.GameOver {
		ghost := snap.Active
		ghost.Anchor.Row = snap.GhostRow
		g.renderPiece(dst, ghost, GhostChar, core.ColorGray)
	}
	if !snap.GameOver {
		g.renderPiece(dst, snap.Active, BlockChar, PieceColor(snap.Active.Piece))
	}
	g.renderHUD(dst, &snap)
	g.renderOverlay(dst, &snap)
}

// cellOrigin returns the screen position of board cell (row, col).
func (g *Game) cellOrigin(row, col int) (int, int) {
	inner := g.layout.board.Inner()
	return inner.X + col*g.layout.cellW, inner.Y + row
}

// fillCell paints one board cell. Anything outside the frame is clipped.
func (g *Game) fillCell(dst *core.Screen, row, col int, r rune, c core.Color) {
	inner := g.layout.board.Inner()
	x, y := g.cellOrigin(row, col)
	for dx := 0; dx < g.layout.cellW; dx++ {
		if inner.Contains(x+dx, y) {
			dst.SetColored(x+dx, y, r, c)
		}
	}
}

// renderBoard draws the settled cells.
func (g *Game) renderBoard(dst *core.Screen, snap *engine.Snapshot) {
	for row := 0; row < engine.Rows; row++ {
		for col := 0; col < engine.Cols; col++ {
			p := snap.Board[row][col]
			if p == engine.PieceNone {
				x, y := g.cellOrigin(row, col)
				dst.SetColored(x+g.layout.cellW-1, y, EmptyChar, core.ColorGray)
				continue
			}
			g.fillCell(dst, row, col, BlockChar, PieceColor(p))
		}
	}
}

// renderPiece draws the visible cells of a piece. Cells above the board are skipped.
func (g *Game) renderPiece(dst *core.Screen, piece engine.ActivePiece, r rune, c core.Color) {
	for _, cell := range piece.Cells() {
		if cell.Row < 0 {
			continue
		}
		g.fillCell(dst, cell.Row, cell.Col, r, c)
	}
}

// renderHUD draws score, statistics, the next and held pieces and controls.
func (g *Game) renderHUD(dst *core.Screen, snap *engine.Snapshot) {
	x := g.layout.panelX
	y := g.layout.board.Y

	dst.DrawTextColored(x, y, "BLOCKFALL", core.ColorBrightWhite)
	dst.DrawText(x, y+2, fmt.Sprintf("Score  %d", snap.Score))
	dst.DrawText(x, y+3, fmt.Sprintf("Lines  %d", snap.Lines))
	dst.DrawText(x, y+4, fmt.Sprintf("Pieces %d", snap.Pieces))

	row := y + 6
	if g.cfg.Display.NextPreview {
		dst.DrawText(x, row, "Next")
		g.renderPreview(dst, x, row+1, snap.Next, PieceColor(snap.Next))
		row += 5
	}

	dst.DrawText(x, row, "Hold")
	if snap.Held != engine.PieceNone {
		color := PieceColor(snap.Held)
		if !snap.CanHold {
			color = core.ColorGray
		}
		g.renderPreview(dst, x, row+1, snap.Held, color)
	}
	row += 5

	controls := []string{
		"<- -> move",
		"up/x  z rotate",
		"down  space drop",
		"c hold  p pause",
	}
	for i, line := range controls {
		if row+i >= g.layout.board.Bottom() {
			break
		}
		dst.DrawTextColored(x, row+i, line, core.ColorGray)
	}
}

// renderPreview draws a piece in its spawn orientation, trimmed to its
// occupied rows and columns, with the top-left at (x, y).
func (g *Game) renderPreview(dst *core.Screen, x, y int, p engine.Piece, c core.Color) {
	if !p.Valid() {
		return
	}
	offsets := engine.ShapeOf(p, engine.DefaultRotation).Offsets()
	minRow, minCol := offsets[0].Row, offsets[0].Col
	for _, o := range offsets {
		minRow = min(minRow, o.Row)
		minCol = min(minCol, o.Col)
	}
	for _, o := range offsets {
		px := x + (o.Col-minCol)*g.layout.cellW
		for dx := 0; dx < g.layout.cellW; dx++ {
			dst.SetColored(px+dx, y+o.Row-minRow, BlockChar, c)
		}
	}
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen, snap *engine.Snapshot) {
	switch {
	case snap.GameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", snap.Score)
		g.drawCenteredBox(dst, "GAME OVER", subtitle)
	case g.paused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	box := core.Centered(max(len(title), len(subtitle))+4, 5, core.NewRect(0, 0, dst.Width(), dst.Height()))

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawTextColored(box.X+(box.W-len(title))/2, box.Y+1, title, core.ColorBrightWhite)
	dst.DrawText(box.X+(box.W-len(subtitle))/2, box.Y+3, subtitle)
}
