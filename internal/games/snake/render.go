package snake

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/snake-arcade/internal/core"
)

// tutorialPages holds the text of each tutorial screen.
var tutorialPages = []struct {
	title string
	lines []string
}{
	{
		title: "Controls",
		lines: []string{
			"Arrows / WASD / HJKL  steer",
			"P or Esc              pause",
			"B                     back to menu (paused)",
			"R                     restart after game over",
			"Q                     quit",
		},
	},
	{
		title: "Food",
		lines: []string{
			"Eat ● to grow and score.",
			"Points = food points x difficulty multiplier.",
			"Every few foods the snake speeds up.",
			"The board wraps: leave one edge, enter the other.",
			"Running into yourself ends the run.",
		},
	},
	{
		title: "Power-ups",
		lines: []string{
			"» FAST   move twice as fast",
			"« SLOW   move slower",
			"$ x2     food is worth double",
			"◊ GHOST  pass through your own body",
			"Pickups blink before they vanish.",
		},
	},
	{
		title: "Difficulty",
		lines: []string{
			"Easy    slow start, x1 points",
			"Normal  medium start, x2 points",
			"Hard    fast start, x3 points",
			"Each difficulty keeps its own high score.",
		},
	},
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	switch g.phase {
	case PhaseMenu:
		g.renderMenu(dst)
		return
	case PhaseTutorial:
		g.renderTutorial(dst)
		return
	}

	g.renderHUD(dst)

	if g.tooSmall {
		need := fmt.Sprintf("Need %dx%d", g.boardW*g.cellW+2, g.boardH+hudHeight+footerHeight+2)
		g.renderOverlay(dst, core.ColorBrightYellow, "Window too small", need, "Resize to continue")
		return
	}

	g.renderBoard(dst)
	g.renderFooter(dst)

	switch g.phase {
	case PhasePaused:
		hint := "P resume · B menu"
		if g.variant == VariantClassic {
			hint = "P resume"
		}
		g.renderOverlay(dst, core.ColorBrightWhite, "PAUSED", hint)
	case PhaseGameOver:
		lines := []string{"GAME OVER", fmt.Sprintf("Score: %d   Length: %d", g.score, g.Length())}
		if g.newHighScore {
			lines = append(lines, "NEW HIGH SCORE!")
		}
		if g.variant == VariantClassic {
			lines = append(lines, "R restart")
		} else {
			lines = append(lines, "R restart · Enter menu")
		}
		g.renderOverlay(dst, core.ColorBrightRed, lines...)
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s  Score: %d  Best: %d  Length: %d  %s",
		strings.ToUpper(g.Title()), g.score, g.highScores[g.difficulty], g.Length(), g.difficulty.Title())
	dst.DrawTextColor(0, 0, hud, core.ColorBrightWhite)

	// Active buffs with remaining seconds
	x := utf8.RuneCountInString(hud) + 2
	if g.snake != nil {
		for _, k := range Kinds() {
			if !g.snake.Active(k) {
				continue
			}
			label := fmt.Sprintf("[%s %ds]", k.Label(), g.seconds(g.snake.Remaining(k)))
			dst.DrawTextColor(x, 0, label, k.Color())
			x += utf8.RuneCountInString(label) + 1
		}
	}

	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorGray)
}

// seconds converts ticks to whole seconds, rounding up.
func (g *Game) seconds(ticks int) int {
	return (ticks + g.tickRate - 1) / g.tickRate
}

// renderBoard draws the box, food, pickup, snake and particles.
func (g *Game) renderBoard(dst *core.Screen) {
	box := core.NewRect(g.offsetX, g.offsetY, g.boardW*g.cellW+2, g.boardH+2)
	borderColor := core.ColorGray
	if !g.cfg.Board.Wrap {
		borderColor = core.ColorWhite
	}
	dst.DrawBox(box, borderColor)

	if g.food.Placed {
		g.drawCell(dst, g.food.Pos, g.food.Glyph(), false, core.ColorBrightRed)
	}

	if g.powerUp != nil && g.powerUp.Visible() {
		g.drawCell(dst, g.powerUp.Pos, g.powerUp.Kind.Glyph(), false, g.powerUp.Kind.Color())
	}

	g.renderSnake(dst)

	if g.phase == PhaseGameOver {
		g.drawCell(dst, g.crash, 'X', false, core.ColorBrightRed)
	}

	for _, p := range g.particles.Particles() {
		cell := core.Point{X: int(p.X), Y: int(p.Y)}
		if p.X < 0 || p.Y < 0 || !cell.In(g.boardW, g.boardH) {
			continue
		}
		g.drawCell(dst, cell, p.Glyph(), false, p.Shade())
	}
}

// renderSnake draws the body with a fading tail and a directional head.
func (g *Game) renderSnake(dst *core.Screen) {
	if g.snake == nil {
		return
	}

	headColor := core.ColorBrightGreen
	bodyColor := core.ColorGreen
	switch {
	case g.snake.Active(KindGhost):
		headColor, bodyColor = core.ColorBrightCyan, core.ColorGray
	case g.snake.Active(KindSpeed):
		headColor = core.ColorBrightYellow
	case g.snake.Active(KindSlow):
		headColor = core.ColorBrightBlue
	}

	body := g.snake.Body()
	for i := len(body) - 1; i >= 1; i-- {
		c := bodyColor
		if i*3 >= len(body)*2 {
			c = c.Dim()
		}
		g.drawCell(dst, body[i], '█', true, c)
	}
	g.drawCell(dst, body[0], g.snake.Direction().HeadGlyph(), false, headColor)
}

// drawCell draws one board cell. With fill the glyph covers every column
// of the cell, otherwise the trailing column is left blank.
func (g *Game) drawCell(dst *core.Screen, p core.Point, r rune, fill bool, c core.Color) {
	if !p.In(g.boardW, g.boardH) {
		return
	}
	x := g.offsetX + 1 + p.X*g.cellW
	y := g.offsetY + 1 + p.Y
	dst.SetColor(x, y, r, c)
	for i := 1; i < g.cellW; i++ {
		if fill {
			dst.SetColor(x+i, y, r, c)
		} else {
			dst.SetColor(x+i, y, ' ', core.ColorDefault)
		}
	}
}

// renderFooter draws the key hints under the board.
func (g *Game) renderFooter(dst *core.Screen) {
	y := g.offsetY + g.boardH + 2
	hint := "arrows steer · P pause · Q quit"
	if g.diff != nil && g.diff.IsProgressive() {
		hint = fmt.Sprintf("%s · speed %d%%", hint, int(g.diff.Level(g.foodEaten)*100))
	}
	dst.DrawTextCentered(y, hint, core.ColorGray)
}

// renderMenu draws the title screen with the menu items.
func (g *Game) renderMenu(dst *core.Screen) {
	title := []string{
		"╔═╗╔╗╔╔═╗╦╔═╔═╗",
		"╚═╗║║║╠═╣╠╩╗║╣ ",
		"╚═╝╝╚╝╩ ╩╩ ╩╚═╝",
	}
	top := max(0, (dst.Height()-16)/2)
	for i, line := range title {
		dst.DrawTextCentered(top+i, line, core.ColorBrightGreen)
	}

	y := top + len(title) + 2
	for i := range menuItemCount {
		label := i.String()
		if i == MenuDifficulty {
			label = fmt.Sprintf("Difficulty: ‹ %s ›", g.difficulty.Title())
		}
		color := core.ColorWhite
		if i == g.menuIndex {
			label = "▸ " + label + " ◂"
			color = core.ColorBrightYellow
		}
		dst.DrawTextCentered(y+int(i)*2, label, color)
	}

	y += int(menuItemCount)*2 + 1
	dst.DrawTextCentered(y, fmt.Sprintf("Best on %s: %d", g.difficulty.Title(), g.highScores[g.difficulty]), core.ColorCyan)
	dst.DrawTextCentered(y+2, "↑/↓ select · ←/→ difficulty · Enter confirm · Q quit", core.ColorGray)
}

// renderTutorial draws the current tutorial page.
func (g *Game) renderTutorial(dst *core.Screen) {
	page := tutorialPages[core.Clamp(g.tutorialPage, 0, len(tutorialPages)-1)]

	width := 0
	for _, line := range page.lines {
		width = max(width, utf8.RuneCountInString(line))
	}
	boxW := width + 6
	boxH := len(page.lines) + 6
	box := core.NewRect(max(0, (dst.Width()-boxW)/2), max(0, (dst.Height()-boxH)/2), boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorBrightGreen)

	dst.DrawTextCentered(box.Y+1, fmt.Sprintf("%s (%d/%d)", page.title, g.tutorialPage+1, len(tutorialPages)), core.ColorBrightYellow)
	for i, line := range page.lines {
		dst.DrawTextColor(box.X+3, box.Y+3+i, line, core.ColorWhite)
	}

	hint := "Enter next · ← previous · B back"
	if g.tutorialPage == len(tutorialPages)-1 {
		hint = "Enter done · ← previous · B back"
	}
	dst.DrawTextCentered(box.Bottom(), hint, core.ColorGray)
}

// renderOverlay draws a centered box with one line per argument.
func (g *Game) renderOverlay(dst *core.Screen, c core.Color, lines ...string) {
	width := 0
	for _, line := range lines {
		width = max(width, utf8.RuneCountInString(line))
	}
	boxW := width + 6
	boxH := len(lines) + 4
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, c)
	for i, line := range lines {
		color := core.ColorBrightWhite
		if i == 0 {
			color = c
		}
		if line == "NEW HIGH SCORE!" {
			color = core.ColorBrightYellow
		}
		dst.DrawTextCentered(box.Y+2+i, line, color)
	}
}

