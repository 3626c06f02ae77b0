package match3

import (
	"fmt"

	"github.com/vovakirdan/gemfall/internal/core"
	"github.com/vovakirdan/gemfall/internal/games/match3/engine"
)

const (
	cellWidth  = 4
	cellHeight = 2

	boardPixelW = engine.BoardWidth*cellWidth + 1
	boardPixelH = engine.BoardHeight*cellHeight + 1
	hudHeight   = 3
)

// gemColors maps gem types to terminal colors. Index 0 (empty) is unused.
var gemColors = [engine.GemTypeCount + 1]core.Color{
	core.ColorDefault,
	core.ColorRed,
	core.ColorGreen,
	core.ColorBlue,
	core.ColorYellow,
	core.ColorMagenta,
	core.ColorCyan,
	core.ColorOrange,
}

// specialRunes maps special types to their board glyphs.
var specialRunes = map[engine.SpecialType]rune{
	engine.SpecialFlame:     '◆',
	engine.SpecialStar:      '★',
	engine.SpecialHypercube: '◎',
	engine.SpecialSupernova: '✹',
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardX := (g.screenW - boardPixelW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX)
	g.renderGrid(dst, boardX, boardY)
	g.renderSurgeLines(dst, boardX, boardY)
	g.renderGems(dst, boardX, boardY)
	g.renderCursor(dst, boardX, boardY)
	g.renderOverlays(dst, boardX, boardY)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	dst.DrawTextCentered(g.screenH/2, "Window too small")
	dst.DrawTextCentered(g.screenH/2+1, "Please resize terminal")
}

// renderHUD draws the title row, score, and per-mode status line.
func (g *Game) renderHUD(dst *core.Screen, boardX int) {
	dst.DrawTextCentered(0, g.Title())
	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", g.session.Score()))

	lvl := fmt.Sprintf("Level %d", g.session.Level())
	dst.DrawText(boardX+boardPixelW-len(lvl), 1, lvl)

	var status string
	switch g.mode {
	case engine.ModeBlitz:
		status = fmt.Sprintf("Time: %04.1fs", g.session.TimeLeft())
	case engine.ModeCascadeRush:
		status = fmt.Sprintf("Time: %04.1fs  Zones: %d", g.session.TimeLeft(), g.session.ZoneCaptures())
	case engine.ModeGemSurge:
		status = fmt.Sprintf("Time: %04.1fs  Wave %d: %d/%d",
			g.session.TimeLeft(), g.session.Wave(), g.session.WaveScore(), g.session.WaveTarget())
	default:
		if g.session.MovesLeft() != engine.UnlimitedMoves {
			status = fmt.Sprintf("Moves: %d", g.session.MovesLeft())
		} else {
			status = fmt.Sprintf("Matches: %d", g.session.TotalMatches())
		}
	}
	dst.DrawText(boardX, 2, status)

	if g.mode == engine.ModeGemSurge {
		label := "Featured: "
		dst.DrawText(boardX+boardPixelW-len(label)-1, 2, label)
		dst.SetColored(boardX+boardPixelW-1, 2, '●', gemColors[g.session.FeaturedGem()])
	}
	if g.showChain && g.session.CascadeDepth() > 0 {
		chain := fmt.Sprintf("Chain x%d", g.session.CascadeDepth())
		dst.DrawTextColored(boardX+(boardPixelW-len(chain))/2, 2, chain, core.ColorBrightYellow)
	}
}

// renderGrid draws the board frame and cell separators, tinting rush-zone
// cell interiors.
func (g *Game) renderGrid(dst *core.Screen, boardX, boardY int) {
	for y := 0; y <= engine.BoardHeight; y++ {
		for x := 0; x <= engine.BoardWidth; x++ {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == engine.BoardWidth:
				corner = '┐'
			case y == engine.BoardHeight && x == 0:
				corner = '└'
			case y == engine.BoardHeight && x == engine.BoardWidth:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == engine.BoardHeight:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == engine.BoardWidth:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.Set(px, py, corner)

			if x < engine.BoardWidth {
				for i := 1; i < cellWidth; i++ {
					dst.Set(px+i, py, '─')
				}
			}
			if y < engine.BoardHeight {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}

	if x, y, ok := g.session.RushZone(); ok {
		for zy := y; zy < y+engine.RushZoneSize; zy++ {
			for zx := x; zx < x+engine.RushZoneSize; zx++ {
				px := boardX + zx*cellWidth + 1
				py := boardY + zy*cellHeight + 1
				dst.SetColored(px, py, '·', core.ColorBrightYellow)
				dst.SetColored(px+2, py, '·', core.ColorBrightYellow)
			}
		}
	}
}

// renderSurgeLines marks active surge lines along the board edges.
func (g *Game) renderSurgeLines(dst *core.Screen, boardX, boardY int) {
	if g.mode != engine.ModeGemSurge {
		return
	}
	for _, line := range g.session.SurgeLines() {
		if !line.Active {
			continue
		}
		if line.Horizontal {
			py := boardY + line.Index*cellHeight + 1
			dst.SetColored(boardX-2, py, '»', core.ColorBrightCyan)
			dst.SetColored(boardX+boardPixelW+1, py, '«', core.ColorBrightCyan)
		} else {
			px := boardX + line.Index*cellWidth + 2
			dst.SetColored(px, boardY-1, '▼', core.ColorBrightCyan)
			dst.SetColored(px, boardY+boardPixelH, '▲', core.ColorBrightCyan)
		}
	}
}

// renderGems draws every gem at its cell center, with special glyphs and
// removal flashes.
func (g *Game) renderGems(dst *core.Screen, boardX, boardY int) {
	for y := 0; y < engine.BoardHeight; y++ {
		for x := 0; x < engine.BoardWidth; x++ {
			px := boardX + x*cellWidth + cellWidth/2
			py := boardY + y*cellHeight + 1

			if g.session.AnimationAt(x, y).Removing {
				dst.SetColored(px, py, '✦', core.ColorBrightWhite)
				continue
			}

			gem := g.session.GemAt(x, y)
			if gem == engine.GemEmpty {
				continue
			}

			r := '●'
			if sr, ok := specialRunes[g.session.SpecialAt(x, y)]; ok {
				r = sr
			}
			dst.SetColored(px, py, r, gemColors[gem])
		}
	}

	if g.hintActive {
		for _, c := range g.hintCells {
			px := boardX + c.X*cellWidth + cellWidth/2
			py := boardY + c.Y*cellHeight + 1
			dst.SetColored(px-1, py, '(', core.ColorBrightGreen)
			dst.SetColored(px+1, py, ')', core.ColorBrightGreen)
		}
	}
}

// renderCursor draws the cursor brackets and the selection highlight.
func (g *Game) renderCursor(dst *core.Screen, boardX, boardY int) {
	cx, cy := g.session.Cursor()
	px := boardX + cx*cellWidth + cellWidth/2
	py := boardY + cy*cellHeight + 1
	dst.SetColored(px-1, py, '[', core.ColorBrightWhite)
	dst.SetColored(px+1, py, ']', core.ColorBrightWhite)

	if g.selected {
		sx := boardX + g.selX*cellWidth + cellWidth/2
		sy := boardY + g.selY*cellHeight + 1
		dst.SetColored(sx-1, sy, '{', core.ColorBrightMagenta)
		dst.SetColored(sx+1, sy, '}', core.ColorBrightMagenta)
	}
}

// renderOverlays draws the paused and game-over boxes.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY int) {
	centerX := boardX + boardPixelW/2
	centerY := boardY + boardPixelH/2

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}
	if g.gameOver {
		scoreStr := fmt.Sprintf("Final score: %d", g.session.Score())
		g.drawOverlay(dst, centerX, centerY, "GAME OVER", scoreStr, "Press R to restart")
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	dst.DrawRect(core.Rect{X: boxX, Y: boxY, W: boxW, H: boxH}, ' ')
	dst.DrawBox(core.Rect{X: boxX, Y: boxY, W: boxW, H: boxH})
	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, boxY+1+i, line)
	}
}
