package quizmaze

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/quiz-maze/internal/core"
	"github.com/vovakirdan/quiz-maze/internal/games/quizmaze/engine"
)

// Screen layout: one tile is tileCols columns by one row.
const (
	tileCols   = 2
	hudRows    = 3 // Status line, question, separator
	footerRows = 2 // Option legend, hint
)

// Visual characters for rendering
const (
	WallChar    = '█'
	RoomChar    = '░'
	PlayerChar  = '@'
	ChaserChar  = '●'
	StalkerChar = '◉'
	BorderHoriz = '─'
)

// roomColors follows the answer rooms in order.
var roomColors = [4]core.Color{core.ColorIndigo, core.ColorMagenta, core.ColorGreen, core.ColorCyan}

// optionKeys label the rooms in the legend.
var optionKeys = [4]string{"A", "B", "C", "D"}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.initErr != nil {
		dst.DrawTextCentered(dst.Height()/2-1, "Cannot start the maze")
		dst.DrawTextCentered(dst.Height()/2+1, truncate(g.initErr.Error(), dst.Width()-2))
		return
	}

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	originX := (dst.Width() - g.engine.Grid().Cols()*tileCols) / 2

	g.renderHUD(dst)
	g.renderMaze(dst, originX)
	g.renderRooms(dst, originX)
	g.renderEnemies(dst, originX)
	g.renderPlayer(dst, originX)
	g.renderFooter(dst)
	g.renderOverlay(dst)
}

// toScreen maps a world position to a screen cell.
func (g *Game) toScreen(p core.Vec2, originX int) (int, int) {
	tile := g.engine.Grid().TileSize()
	x := originX + int(p.X/tile*tileCols)
	y := hudRows + int(p.Y/tile)
	return x, y
}

// renderHUD draws score, lives, level and the question.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.score))

	lives := strings.Repeat("♥", g.lives)
	dst.DrawTextColored((dst.Width()-utf8.RuneCountInString(lives))/2, 0, lives, core.ColorRed)

	var levelText string
	if g.mode == ModeEndless {
		levelText = fmt.Sprintf("Level: %d", g.levelIndex+1)
	} else {
		levelText = fmt.Sprintf("Level: %d/%d", core.Min(g.levelIndex+1, g.bank.Len()), g.bank.Len())
	}
	dst.DrawText(dst.Width()-len(levelText)-1, 0, levelText)

	if q, ok := g.engine.Question(); ok {
		text := truncate(q.Text, dst.Width()-2)
		dst.DrawTextColored((dst.Width()-utf8.RuneCountInString(text))/2, 1, text, core.ColorBrightWhite)
	}
	dst.DrawHLine(0, 2, dst.Width(), BorderHoriz)
}

// renderMaze draws the walls.
func (g *Game) renderMaze(dst *core.Screen, originX int) {
	grid := g.engine.Grid()
	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.Cols(); col++ {
			if !grid.IsWall(col, row) {
				continue
			}
			for dx := 0; dx < tileCols; dx++ {
				dst.SetColored(originX+col*tileCols+dx, hudRows+row, WallChar, core.ColorBlue)
			}
		}
	}
}

// renderRooms shades each answer room and writes its label in the middle.
// Inert rooms are drawn gray.
func (g *Game) renderRooms(dst *core.Screen, originX int) {
	tile := g.engine.Grid().TileSize()
	for _, z := range g.engine.Zones() {
		color := roomColors[z.Index%len(roomColors)]
		if !z.Armed {
			color = core.ColorGray
		}

		x, y := g.toScreen(core.V(z.Rect.X, z.Rect.Y), originX)
		w := int(z.Rect.W / tile * tileCols)
		h := int(z.Rect.H / tile)
		dst.DrawRect(core.NewRect(x, y, w, h), RoomChar, color)

		label := truncate(optionKeys[z.Index%len(optionKeys)]+":"+z.Label, w)
		lx := x + (w-utf8.RuneCountInString(label))/2
		dst.DrawTextColored(lx, y+h/2, label, core.ColorBrightWhite)
	}
}

// renderEnemies draws chasers and the stalker.
func (g *Game) renderEnemies(dst *core.Screen, originX int) {
	for _, e := range g.engine.Enemies() {
		x, y := g.toScreen(e.Pos, originX)
		if e.Behavior == engine.Stalker {
			dst.SetColored(x, y, StalkerChar, core.ColorWhite)
		} else {
			dst.SetColored(x, y, ChaserChar, core.ColorBrightRed)
		}
	}
}

// renderPlayer draws the player, blinking while invulnerable.
func (g *Game) renderPlayer(dst *core.Screen, originX int) {
	if !g.engine.PlayerVisible() {
		return
	}
	x, y := g.toScreen(g.engine.Player().Pos, originX)
	color := core.ColorBrightBlue
	if g.engine.Phase() == engine.PhaseSafe {
		color = core.ColorGreen
	}
	dst.SetColored(x, y, PlayerChar, color)
}

// renderFooter lists the full option labels and the controls.
func (g *Game) renderFooter(dst *core.Screen) {
	legendY := dst.Height() - footerRows
	if q, ok := g.engine.Question(); ok {
		x := 1
		for i, opt := range q.Options {
			entry := optionKeys[i] + ": " + opt + "  "
			dst.DrawTextColored(x, legendY, entry, roomColors[i])
			x += utf8.RuneCountInString(entry)
		}
	}

	hint := "Arrows/WASD move  Space stop  P pause  Q quit"
	switch g.engine.Phase() {
	case engine.PhaseSafe:
		hint = "Correct!"
	case engine.PhasePenaltyCooldown:
		hint = "Wrong room!"
	}
	dst.DrawTextCentered(dst.Height()-1, hint)
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.score)
		g.drawCenteredBox(dst, "GAME OVER", subtitle)

	case StateWin:
		subtitle := fmt.Sprintf("Final Score: %d  |  Press R to restart", g.score)
		g.drawCenteredBox(dst, "YOU WIN!", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)
	dst.DrawText(box.X+(boxW-len(title))/2, box.Y+1, title)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	if n == 1 {
		return string(r[:1])
	}
	return string(r[:n-1]) + "…"
}
