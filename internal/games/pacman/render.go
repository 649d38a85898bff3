package pacman

import (
	"fmt"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/levels"
)

const hudRows = 2

// vulnerableBlinkWindow is the tail of the fright timer during which
// vulnerable ghosts blink as a warning.
const vulnerableBlinkWindow = 2.0

var ghostColors = map[Role]core.Color{
	RoleAggressive: core.ColorRed,
	RoleAmbush:     core.ColorMagenta,
	RolePatrol:     core.ColorCyan,
	RoleMixed:      core.ColorOrange,
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.loadErr != nil {
		g.renderOverlay(dst, "Failed to load game", g.loadErr.Error())
		return
	}

	g.renderHUD(dst)

	if dst.Width() < g.maze.Width() || dst.Height() < g.maze.Height()+hudRows {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	offX := (dst.Width() - g.maze.Width()) / 2
	offY := hudRows + (dst.Height()-hudRows-g.maze.Height())/2

	g.renderMaze(dst, offX, offY)
	g.renderGhosts(dst, offX, offY)
	g.renderPlayer(dst, offX, offY)

	switch g.state {
	case StateStarting:
		g.renderOverlay(dst, "Ready!", "Arrows or WASD to move")
	case StatePaused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	case StateVictory:
		g.renderOverlay(dst, "You Win!", fmt.Sprintf("Final Score: %d  Press R to restart", g.score))
	case StateGameOver:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Final Score: %d  Press R to restart", g.score))
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Pacman — Score: %d  Lives: %d  Dots: %d", g.score, g.lives, g.col.Remaining())
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderMaze draws walls and remaining collectibles.
func (g *Game) renderMaze(dst *core.Screen, offX, offY int) {
	for row := 0; row < g.maze.Height(); row++ {
		for col := 0; col < g.maze.Width(); col++ {
			t := Tile{Col: col, Row: row}
			x, y := offX+col, offY+row
			if g.maze.CellAt(t) == levels.CellWall {
				dst.SetCell(x, y, '█', core.ColorBlue)
				continue
			}
			if kind, ok := g.col.At(t); ok {
				switch kind {
				case PickupDot:
					dst.SetCell(x, y, '·', core.ColorWhite)
				case PickupPellet:
					dst.SetCell(x, y, 'o', core.ColorWhite)
				}
			}
		}
	}
}

// renderGhosts draws each ghost at its current tile. Vulnerable ghosts
// are blue and blink during the last seconds of the fright timer; eaten
// ghosts are drawn as eyes heading home.
func (g *Game) renderGhosts(dst *core.Screen, offX, offY int) {
	for _, gh := range g.ghosts {
		t := gh.Tile()
		x, y := offX+t.Col, offY+t.Row

		switch gh.Mode {
		case ModeEaten:
			dst.SetCell(x, y, '"', core.ColorGray)
		case ModeVulnerable:
			if gh.FrightTimer < vulnerableBlinkWindow && g.tick%16 < 8 {
				dst.SetCell(x, y, 'M', core.ColorWhite)
			} else {
				dst.SetCell(x, y, 'M', core.ColorBlue)
			}
		default:
			dst.SetCell(x, y, 'M', ghostColors[gh.Role])
		}
	}
}

// renderPlayer draws the player, blinking while respawn invincibility is
// active. During the death pause the player is hidden.
func (g *Game) renderPlayer(dst *core.Screen, offX, offY int) {
	if g.state == StatePlayerDeath {
		return
	}
	t := g.player.Tile()
	x, y := offX+t.Col, offY+t.Row

	if g.player.Invincible > 0 && g.tick%8 < 4 {
		return
	}

	glyph := 'C'
	switch g.player.Facing {
	case DirUp:
		glyph = 'v'
	case DirDown:
		glyph = '^'
	case DirRight:
		glyph = 'C'
	case DirLeft:
		glyph = 'Ɔ'
	}
	dst.SetCell(x, y, glyph, core.ColorYellow)
}

// renderOverlay draws a centered boxed message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY; y < boxY+boxH && y < h; y++ {
		for x := boxX; x < boxX+boxW && x < w; x++ {
			if x < 0 || y < 0 {
				continue
			}
			isTopOrBottom := y == boxY || y == boxY+boxH-1
			isLeftOrRight := x == boxX || x == boxX+boxW-1
			switch {
			case isTopOrBottom && isLeftOrRight:
				dst.Set(x, y, '+')
			case isTopOrBottom:
				dst.Set(x, y, '-')
			case isLeftOrRight:
				dst.Set(x, y, '|')
			default:
				dst.Set(x, y, ' ')
			}
		}
	}

	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
