package t2048

import (
	"fmt"
	"math/bits"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	minCellInner = 4 // Narrowest tile interior, fits "2048"
	cellHeight   = 2 // Height of each cell (including top border)
	hudHeight    = 3
)

// tileColors indexes colors by tile level, log2(value) clamped to 1..12.
var tileColors = [...]core.Color{
	core.ColorDefault,
	core.ColorWhite,         // 2
	core.ColorBrightWhite,   // 4
	core.ColorYellow,        // 8
	core.ColorOrange,        // 16
	core.ColorBrightRed,     // 32
	core.ColorRed,           // 64
	core.ColorBrightYellow,  // 128
	core.ColorBrightGreen,   // 256
	core.ColorGreen,         // 512
	core.ColorBrightCyan,    // 1024
	core.ColorBrightMagenta, // 2048
	core.ColorMagenta,       // 4096 and up
}

// TileLevel returns log2(value) clamped to 1..12. Empty cells are level 0.
func TileLevel(value int) int {
	if value <= 0 {
		return 0
	}
	return core.Clamp(bits.Len(uint(value))-1, 1, 12)
}

// TileColor returns the display color for a tile value.
func TileColor(value int) core.Color {
	return tileColors[TileLevel(value)]
}

// cellWidth is the width of one cell including its left border.
// It grows with the widest tile on the board.
func (g *Game) cellWidth() int {
	inner := minCellInner
	if g.session != nil {
		inner = max(inner, len(strconv.Itoa(MaxTile(g.session.board)))+1)
	}
	return inner + 1
}

// boardDims returns the board size in characters, borders included.
func (g *Game) boardDims() (w, h int) {
	n := DefaultBoardSize
	if g.session != nil {
		n = g.session.Size()
	}
	return n*g.cellWidth() + 1, n*cellHeight + 1
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall || g.session == nil {
		g.renderTooSmall(dst)
		return
	}

	boardW, boardH := g.boardDims()
	board := core.NewRect((g.screenW-boardW)/2, hudHeight+1, boardW, boardH)

	g.renderHUD(dst, board)
	g.renderBoard(dst, board)
	g.renderOverlays(dst, board)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws title, score, best tile and target.
func (g *Game) renderHUD(dst *core.Screen, board core.Rect) {
	title := g.variant.Title
	dst.DrawText(board.X+(board.W-len(title))/2, 0, title)

	scoreStr := fmt.Sprintf("Score: %d", g.session.Score())
	if g.lastPoints > 0 {
		scoreStr += fmt.Sprintf(" (+%d)", g.lastPoints)
	}
	dst.DrawText(board.X, 1, scoreStr)

	maxTile := MaxTile(g.session.board)
	maxStr := fmt.Sprintf("Best: %d", maxTile)
	dst.DrawTextColor(max(board.X, board.Right()-len(maxStr)), 1, maxStr, TileColor(maxTile))

	target := "Target: none"
	if win := g.session.WinValue(); win > 0 {
		target = fmt.Sprintf("Target: %d", win)
	}
	dst.DrawText(board.X+(board.W-len(target))/2, 2, target)
}

// renderBoard draws the NxN grid with tiles.
func (g *Game) renderBoard(dst *core.Screen, board core.Rect) {
	n := g.session.Size()
	cw := g.cellWidth()

	for y := range n + 1 {
		for x := range n + 1 {
			px := board.X + x*cw
			py := board.Y + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == n:
				corner = '┐'
			case y == n && x == 0:
				corner = '└'
			case y == n && x == n:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == n:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == n:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.Set(px, py, corner)

			if x < n {
				for i := 1; i < cw; i++ {
					dst.Set(px+i, py, '─')
				}
			}
			if y < n {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}

	for y, row := range g.session.board {
		for x, val := range row {
			if val == 0 {
				continue
			}
			cellX := board.X + x*cw + 1
			cellY := board.Y + y*cellHeight + 1

			valStr := strconv.Itoa(val)
			padLeft := max(0, (cw-1-len(valStr))/2)
			dst.DrawTextColor(cellX+padLeft, cellY, valStr, TileColor(val))
		}
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	cx, cy := board.Center()

	if g.paused {
		g.drawOverlay(dst, cx, cy, "PAUSED", "Press P to resume")
		return
	}

	switch g.session.Result() {
	case ResultWon:
		g.drawOverlay(dst, cx, cy, "YOU WIN!", fmt.Sprintf("Score: %d", g.session.Score()), "Press R to restart")
	case ResultStalemate:
		maxStr := fmt.Sprintf("Max tile: %d", MaxTile(g.session.board))
		g.drawOverlay(dst, cx, cy, "GAME OVER", maxStr, "Press R to restart")
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	dst.FillRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD/HJKL: Move | P: Pause | R: Restart | Q: Quit"
}
