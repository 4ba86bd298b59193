package battleship

import (
	"fmt"
	"strings"

	platformcore "github.com/vovakirdan/tui-battleship/internal/core"
	"github.com/vovakirdan/tui-battleship/internal/games/battleship/ai"
	"github.com/vovakirdan/tui-battleship/internal/games/battleship/control"
	"github.com/vovakirdan/tui-battleship/internal/games/battleship/core"
)

// Board geometry in terminal cells.
const (
	labelW    = 3 // Row number column
	cellW     = 2
	boardGap  = 6
	hudHeight = 3
)

var helpLines = []string{
	"Sink the enemy fleet before it sinks yours.",
	"",
	"Deployment",
	"  Arrows / WASD   move the cursor",
	"  Tab             select the next ship",
	"  R               rotate the ship",
	"  X               deploy the rest at random",
	"  Enter           place a ship, pick one up, start the battle",
	"",
	"Battle",
	"  Arrows / WASD   aim",
	"  Enter / Space   fire",
	"  Esc             game menu",
	"",
	"A hit lets you fire again. A miss hands the turn to the AI.",
	"",
	"Press any key to go back",
}

// boardWidth returns the on-screen width of a board with w columns.
func boardWidth(w int) int {
	return labelW + cellW*w
}

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()
	if g.ctrl == nil {
		return
	}

	needW := 2*boardWidth(g.cfg.Grid.Width) + boardGap
	needH := g.cfg.Grid.Height + hudHeight + 6
	if dst.Width() < needW || dst.Height() < needH {
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", needW, needH))
		return
	}

	g.renderHUD(dst)

	switch g.ctrl.State() {
	case control.ViewingMainMenu:
		g.renderMenu(dst, "BATTLESHIP", mainMenuItems, g.menuCursor)
		dst.DrawTextCenteredColored(dst.Height()-2, "Difficulty: "+g.ctrl.Difficulty().Title(), platformcore.ColorGray)
	case control.ViewingGameMenu:
		g.renderBattle(dst)
		g.renderMenu(dst, "PAUSED", gameMenuItems, g.gameMenuCursor)
	case control.AlteringSettings:
		g.renderSettings(dst)
	case control.Deploying:
		g.renderDeploying(dst)
	case control.Discovering:
		g.renderBattle(dst)
	case control.EndingGame:
		g.renderBattle(dst)
		if len(g.pending) == 0 {
			g.renderEnding(dst)
		}
	case control.ViewingHighScores:
		g.renderHighScores(dst)
	case control.ViewingHelp:
		g.renderHelp(dst)
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	hud := " BATTLESHIP | " + g.ctrl.Difficulty().Title()
	if s := g.ctrl.Session(); s != nil && g.ctrl.State().InGame() {
		sum := s.Summary()
		level, _ := ai.ParseLevel(sum.Difficulty)
		hud = fmt.Sprintf(" BATTLESHIP | %s | Shots: %d | Hits: %d | Sunk: %d/%d | Score: %d",
			level.Title(), sum.Shots, sum.Hits,
			sum.ShipsSunk, len(s.Computer().Fleet()), sum.Score)
	}
	dst.DrawTextColored(0, 0, hud, platformcore.ColorCyan)
	dst.DrawHLine(0, 1, dst.Width(), '─', platformcore.ColorGray)
}

// boardOrigins returns the top-left corners of the two boards.
func (g *Game) boardOrigins(dst *platformcore.Screen) (ownX, enemyX, y int) {
	bw := boardWidth(g.cfg.Grid.Width)
	total := 2*bw + boardGap
	ownX = (dst.Width() - total) / 2
	enemyX = ownX + bw + boardGap
	y = hudHeight + 1
	return ownX, enemyX, y
}

// drawLabels draws column letters above and row numbers left of a board.
func drawLabels(dst *platformcore.Screen, x, y, w, h int) {
	for col := 0; col < w; col++ {
		dst.SetColored(x+labelW+col*cellW, y, rune('A'+col), platformcore.ColorGray)
	}
	for row := 0; row < h; row++ {
		dst.DrawTextColored(x, y+1+row, fmt.Sprintf("%2d", row+1), platformcore.ColorGray)
	}
}

// cellPos returns the screen position of a board cell.
func cellPos(x, y int, c core.Coord) (int, int) {
	return x + labelW + c.Col*cellW, y + 1 + c.Row
}

func (g *Game) titleColor(owner core.PlayerID) platformcore.Color {
	at := g.changedAt[owner]
	if at > 0 && g.tick-at < uint64(g.cfg.Display.FlashTicks) {
		return platformcore.ColorBrightYellow
	}
	return platformcore.ColorWhite
}

func (g *Game) flashing(owner core.PlayerID, c core.Coord) bool {
	return g.flash.owner == owner && g.flash.at == c && g.tick < g.flash.until && (g.tick/4)%2 == 0
}

// hidden reports whether c on the human grid is the target of a computer shot
// that has not been revealed yet.
func (g *Game) hidden(c core.Coord) bool {
	for _, e := range g.pending {
		if e.shot.Result.Coord() == c {
			return true
		}
	}
	return false
}

func ownGlyph(cell core.Cell) (rune, platformcore.Color) {
	switch cell.State {
	case core.CellShip:
		return '■', platformcore.ColorShip
	case core.CellHit:
		return 'X', platformcore.ColorHit
	case core.CellMiss:
		return 'o', platformcore.ColorSplash
	default:
		return '·', platformcore.ColorWater
	}
}

func markGlyph(m core.Mark) (rune, platformcore.Color) {
	switch m {
	case core.MarkMiss:
		return 'o', platformcore.ColorSplash
	case core.MarkHit:
		return 'X', platformcore.ColorStruck
	case core.MarkSunk:
		return '#', platformcore.ColorSunk
	default:
		return '·', platformcore.ColorWater
	}
}

// renderOwnBoard draws the human's grid with ships visible.
func (g *Game) renderOwnBoard(dst *platformcore.Screen, x, y int) {
	grid := g.ctrl.Session().Human().Grid()
	dst.DrawTextColored(x+labelW, y-1, "YOUR FLEET", g.titleColor(core.HumanPlayer))
	drawLabels(dst, x, y, grid.Width(), grid.Height())

	for row := 0; row < grid.Height(); row++ {
		for col := 0; col < grid.Width(); col++ {
			c := core.At(row, col)
			cell := grid.Cell(c)
			if g.hidden(c) {
				// Show the cell as it was before the unrevealed shot.
				if cell.State == core.CellHit {
					cell.State = core.CellShip
				} else {
					cell.State = core.CellEmpty
				}
			}
			r, color := ownGlyph(cell)
			if g.flashing(core.HumanPlayer, c) {
				color = platformcore.ColorCursor
			}
			sx, sy := cellPos(x, y, c)
			dst.SetColored(sx, sy, r, color)
		}
	}
}

// renderEnemyBoard draws what the human knows about the computer's grid.
func (g *Game) renderEnemyBoard(dst *platformcore.Screen, x, y int, aiming bool) {
	k := g.ctrl.Session().Human().Knowledge()
	dst.DrawTextColored(x+labelW, y-1, "ENEMY WATERS", g.titleColor(core.ComputerPlayer))
	drawLabels(dst, x, y, k.Width(), k.Height())

	for row := 0; row < k.Height(); row++ {
		for col := 0; col < k.Width(); col++ {
			c := core.At(row, col)
			r, color := markGlyph(k.Mark(c))
			if g.flashing(core.ComputerPlayer, c) {
				color = platformcore.ColorCursor
			}
			sx, sy := cellPos(x, y, c)
			dst.SetColored(sx, sy, r, color)
		}
	}

	if aiming {
		sx, sy := cellPos(x, y, g.aim)
		color := platformcore.ColorBrightGreen
		if !k.IsUntried(g.aim) || len(g.pending) > 0 {
			color = platformcore.ColorRed
		}
		dst.SetColored(sx-1, sy, '[', color)
		dst.SetColored(sx+1, sy, ']', color)
	}
}

// renderStatus draws the message line and the key hints under the boards.
func (g *Game) renderStatus(dst *platformcore.Screen, hints string) {
	y := hudHeight + 1 + g.cfg.Grid.Height + 2
	if g.status != "" {
		dst.DrawTextCenteredColored(y, g.status, g.statusColor)
	}
	dst.DrawTextCenteredColored(dst.Height()-1, hints, platformcore.ColorGray)
}

func (g *Game) renderBattle(dst *platformcore.Screen) {
	if g.ctrl.Session() == nil {
		return
	}
	ownX, enemyX, y := g.boardOrigins(dst)
	g.renderOwnBoard(dst, ownX, y)
	g.renderEnemyBoard(dst, enemyX, y, g.ctrl.State() == control.Discovering)

	hints := "Arrows: Aim | Enter: Fire | Esc: Menu | ?: Help"
	if len(g.pending) > 0 {
		hints = "The AI is aiming..."
	}
	g.renderStatus(dst, hints)
}

func (g *Game) renderDeploying(dst *platformcore.Screen) {
	s := g.ctrl.Session()
	if s == nil {
		return
	}
	ownX, enemyX, y := g.boardOrigins(dst)
	g.renderOwnBoard(dst, ownX, y)

	human := s.Human()
	grid := human.Grid()

	// Ghost of the selected ship at the cursor.
	if g.selected != core.ShipNone {
		color := platformcore.ColorBrightGreen
		if !grid.CanPlace(g.selected, g.cursor, g.orient) {
			color = platformcore.ColorRed
		}
		for i := 0; i < g.selected.Length(); i++ {
			c := g.cursor.Add(0, i)
			if g.orient == core.Vertical {
				c = g.cursor.Add(i, 0)
			}
			if !grid.InBounds(c) {
				continue
			}
			sx, sy := cellPos(ownX, y, c)
			dst.SetColored(sx, sy, '□', color)
		}
	}
	sx, sy := cellPos(ownX, y, g.cursor)
	dst.SetColored(sx-1, sy, '[', platformcore.ColorCursor)
	dst.SetColored(sx+1, sy, ']', platformcore.ColorCursor)

	// Fleet list where the enemy board goes during battle.
	dst.DrawTextColored(enemyX, y-1, "FLEET", platformcore.ColorWhite)
	for i, name := range human.Fleet() {
		line := fmt.Sprintf("  %-17s %d", name, name.Length())
		color := platformcore.ColorDefault
		switch {
		case grid.Ship(name) != nil:
			line = "✓" + line[1:]
			color = platformcore.ColorGreen
		case name == g.selected:
			line = ">" + line[1:]
			color = platformcore.ColorBrightYellow
		}
		dst.DrawTextColored(enemyX, y+1+i, line, color)
	}
	dst.DrawTextColored(enemyX, y+2+len(human.Fleet()), "Orientation: "+g.orient.String(), platformcore.ColorGray)

	g.renderStatus(dst, "Arrows: Move | Tab: Ship | R: Rotate | X: Random | Enter: Place/Start")
}

func (g *Game) renderEnding(dst *platformcore.Screen) {
	sum := g.ctrl.Session().Summary()
	title := "DEFEAT"
	if sum.Won {
		title = "VICTORY"
	}
	g.renderOverlay(dst, title, fmt.Sprintf("Score %d | Accuracy %.0f%% | Enter: Menu", sum.Score, sum.Accuracy()*100))
}

// renderMenu draws a centered box with one line per item.
func (g *Game) renderMenu(dst *platformcore.Screen, title string, items []string, cursor int) {
	boxW := len(title) + 8
	for _, it := range items {
		boxW = platformcore.Max(boxW, len(it)+8)
	}
	boxH := len(items) + 4
	r := platformcore.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(r, ' ')
	dst.DrawBoxColored(r, platformcore.ColorCyan)
	dst.DrawTextCenteredColored(r.Y+1, title, platformcore.ColorBrightWhite)
	for i, it := range items {
		line := "  " + it + "  "
		color := platformcore.ColorDefault
		if i == cursor {
			line = "> " + it + " <"
			color = platformcore.ColorBrightYellow
		}
		dst.DrawTextCenteredColored(r.Y+3+i, line, color)
	}
}

func (g *Game) renderSettings(dst *platformcore.Screen) {
	levels := ai.Levels()
	items := make([]string, len(levels))
	cursor := 0
	for i, l := range levels {
		items[i] = l.Title()
		if l == g.ctrl.Difficulty() {
			cursor = i
		}
	}
	g.renderMenu(dst, "DIFFICULTY", items, cursor)
	dst.DrawTextCenteredColored(dst.Height()-1, "Arrows: Change | Enter: Done", platformcore.ColorGray)
}

func (g *Game) renderHighScores(dst *platformcore.Screen) {
	dst.DrawTextCenteredColored(hudHeight, "HIGH SCORES - "+g.scoreTab.Title(), platformcore.ColorBrightWhite)

	var tabs []string
	for _, l := range ai.Levels() {
		if l == g.scoreTab {
			tabs = append(tabs, "["+l.Title()+"]")
		} else {
			tabs = append(tabs, " "+l.Title()+" ")
		}
	}
	dst.DrawTextCenteredColored(hudHeight+1, strings.Join(tabs, " "), platformcore.ColorCyan)

	y := hudHeight + 3
	switch {
	case g.scores == nil:
		dst.DrawTextCenteredColored(y, "No score database", platformcore.ColorGray)
	case g.scoreErr != nil:
		dst.DrawTextCenteredColored(y, "Could not load scores: "+g.scoreErr.Error(), platformcore.ColorRed)
	case len(g.highScores) == 0:
		dst.DrawTextCenteredColored(y, "No scores recorded yet", platformcore.ColorGray)
	default:
		dst.DrawTextCenteredColored(y, fmt.Sprintf("%-4s %-16s %6s  %s", "#", "Player", "Score", "Result"), platformcore.ColorGray)
		for i, hs := range g.highScores {
			result := "lost"
			if hs.Won {
				result = "won"
			}
			dst.DrawTextCentered(y+1+i, fmt.Sprintf("%-4d %-16s %6d  %-6s", i+1, hs.Player, hs.Score, result))
		}
	}
	dst.DrawTextCenteredColored(dst.Height()-1, "Left/Right: Difficulty | Esc: Back", platformcore.ColorGray)
}

func (g *Game) renderHelp(dst *platformcore.Screen) {
	dst.DrawTextCenteredColored(hudHeight, "HOW TO PLAY", platformcore.ColorBrightWhite)
	x := (dst.Width() - 60) / 2
	for i, line := range helpLines {
		dst.DrawText(platformcore.Max(x, 0), hudHeight+2+i, line)
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *platformcore.Screen, line1, line2 string) {
	boxW := platformcore.Max(len([]rune(line1)), len([]rune(line2))) + 4
	boxH := 5
	r := platformcore.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)
	dst.DrawRect(r, ' ')
	dst.DrawBoxColored(r, platformcore.ColorWhite)
	dst.DrawTextCenteredColored(r.Y+1, line1, platformcore.ColorBrightYellow)
	dst.DrawTextCentered(r.Y+3, line2)
}
