package t2048

import (
	"fmt"
	"math"
	"sort"

	"github.com/vovakirdan/tilemerge/internal/board"
	"github.com/vovakirdan/tilemerge/internal/core"
	"github.com/vovakirdan/tilemerge/internal/session"
)

const (
	cellWidth  = 8 // Horizontal pitch of a board cell
	cellHeight = 3 // Vertical pitch of a board cell
	tileWidth  = 7 // Tile box width at scale 1
	tileHeight = 3 // Tile box height at scale 1
	labelWidth = tileWidth - 2
	hudHeight  = 3
)

// boardSize returns the framed board dimensions in screen cells.
func (g *Game) boardSize() (int, int) {
	return g.cfg.Board.Cols*cellWidth + 2, g.cfg.Board.Rows*cellHeight + 2
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.ctrl == nil {
		return
	}

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW, boardH := g.boardSize()
	frame := core.NewRect((g.screenW-boardW)/2, hudHeight, boardW, boardH)

	g.renderHUD(dst, frame)
	g.renderBoard(dst, frame)

	if g.ctrl.Lost() {
		dst.Tint(frame, core.ColorDarkGray)
		g.drawOverlay(dst, frame, "You lost", "Press any key to continue")
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, score, best tile and move counter.
func (g *Game) renderHUD(dst *core.Screen, frame core.Rect) {
	dst.DrawTextCentered(0, g.variant.Name)

	dst.DrawText(frame.X, 1, fmt.Sprintf("Score: %d", g.ctrl.Score()))

	best := fmt.Sprintf("Best: %s", Label(g.ctrl.BestRank(), 8))
	dst.DrawTextColor(max(frame.X, frame.Right()-len(best)), 1, best, RankColor(g.ctrl.BestRank()))

	info := fmt.Sprintf("Moves: %d  Undo: %d", g.ctrl.Moves(), g.ctrl.UndoDepth())
	dst.DrawTextColor(frame.X, 2, info, core.ColorGray)
}

// renderBoard draws the frame, empty cell markers and every sprite.
func (g *Game) renderBoard(dst *core.Screen, frame core.Rect) {
	dst.DrawBoxColor(frame, core.ColorGray)

	for r := range g.cfg.Board.Rows {
		for c := range g.cfg.Board.Cols {
			x, y := cellOrigin(frame, board.Cell{Row: r, Col: c})
			dst.SetCell(x+tileWidth/2, y+tileHeight/2, '·', core.ColorDarkGray)
		}
	}

	sprites := g.ctrl.Sprites(g.now)
	// Pulsing tiles overlap their neighbours, so draw them last.
	sort.SliceStable(sprites, func(i, j int) bool {
		return !sprites[i].Pulse && sprites[j].Pulse
	})
	for _, s := range sprites {
		g.drawSprite(dst, frame, s)
	}
}

// drawSprite draws one tile scaled about its own centre.
func (g *Game) drawSprite(dst *core.Screen, frame core.Rect, s session.Sprite) {
	tile := g.tiles.Get(s.Rank)

	cx := float64(frame.X+1) + s.Col*cellWidth + float64(tileWidth)/2
	cy := float64(frame.Y+1) + s.Row*cellHeight + float64(tileHeight)/2

	w := max(1, int(math.Round(tileWidth*s.Scale)))
	h := max(1, int(math.Round(tileHeight*s.Scale)))
	box := core.NewRect(int(math.Round(cx-float64(w)/2)), int(math.Round(cy-float64(h)/2)), w, h)

	dst.DrawRect(box, ' ', tile.Color)
	if h >= 3 && w >= 3 {
		dst.DrawBoxColor(box, tile.Color)
	} else {
		dst.DrawRect(box, '░', tile.Color)
	}

	label := tile.Label
	ly := int(cy)
	lx := int(math.Round(cx - float64(len(label))/2))
	dst.DrawTextColor(lx, ly, label, tile.Color)
}

// drawOverlay draws a centered text box over the board.
func (g *Game) drawOverlay(dst *core.Screen, frame core.Rect, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	centerX, centerY := frame.Center()
	box := core.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)

	// Clear area behind overlay
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBoxColor(box, core.ColorBrightWhite)

	for i, line := range lines {
		dst.DrawTextColor(centerX-len(line)/2, box.Y+1+i, line, core.ColorBrightWhite)
	}
}

// cellOrigin returns the top-left screen position of a board cell.
func cellOrigin(frame core.Rect, c board.Cell) (int, int) {
	return frame.X + 1 + c.Col*cellWidth, frame.Y + 1 + c.Row*cellHeight
}
