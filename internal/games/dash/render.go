package dash

import (
	"fmt"
	"math"

	"github.com/vovakirdan/mouse-dash/internal/assets"
	"github.com/vovakirdan/mouse-dash/internal/core"
)

// Fallback glyphs used when no sprite art is available.
const (
	playerGlyph = '@'
	itemGlyph   = 'o'
	hazardGlyph = '#'
	heartGlyph  = '♥'
)

// blinkRate controls the invulnerability flicker: the player is hidden on
// alternating phases of HitCooldown.
const blinkRate = 12.0

// Render draws the current screen into the cell buffer. Rendering reads
// game state but never mutates it, so it is safe to call any number of
// times between steps.
func (g *Game) Render(screen *core.Screen) {
	screen.Clear()
	switch g.screen {
	case ScreenMenu:
		g.renderMenu(screen)
	case ScreenPlaying, ScreenPaused, ScreenGameOver:
		g.renderBoard(screen)
		g.renderHUD(screen)
		if g.screen == ScreenPaused {
			g.renderPauseOverlay(screen)
		}
		if g.screen == ScreenGameOver {
			g.renderGameOverOverlay(screen)
		}
	}
}

// worldToCell maps world coordinates to screen cells, including the
// current camera shake offset. Terminal cells are roughly twice as tall
// as wide, which the Y scale absorbs.
func (g *Game) worldToCell(screen *core.Screen, pos core.Vec2) (int, int) {
	shake := g.ShakeOffset()
	x := (pos.X + shake.X) / g.cfg.Board.Width * float64(screen.Width())
	y := (pos.Y + shake.Y) / g.cfg.Board.Height * float64(screen.Height())
	return int(x), int(y)
}

func (g *Game) hudRows(screen *core.Screen) int {
	rows := int(g.cfg.Board.HUDBand / g.cfg.Board.Height * float64(screen.Height()))
	return core.Max(rows, 2)
}

func (g *Game) renderMenu(screen *core.Screen) {
	w, h := screen.Width(), screen.Height()
	top := h/2 - len(g.cfg.Difficulties)/2 - 4
	if top < 1 {
		top = 1
	}

	screen.DrawTextCentered(top, "M O U S E   D A S H !", core.ColorBrightYellow)
	screen.DrawTextCentered(top+1, "collect cheese, dodge cats", core.ColorGray)

	for i, d := range g.cfg.Difficulties {
		line := fmt.Sprintf("  %d. %-8s %d lives  %ds", i+1, d.Name, d.Lives, int(d.Time))
		c := core.ColorWhite
		if i == g.difficultyIdx {
			line = "▸ " + line[2:]
			c = core.ColorBrightYellow
		}
		x := w/2 - len(line)/2
		screen.DrawText(x, top+3+i, line, c)
	}

	footY := top + 4 + len(g.cfg.Difficulties)
	screen.DrawTextCentered(footY, "enter/space start · 1-3 pick · ↑/↓ cycle · q quit", core.ColorGray)
	if g.highScore > 0 {
		screen.DrawTextCentered(footY+2, fmt.Sprintf("high score: %d", g.highScore), core.ColorGold)
	}
}

func (g *Game) renderHUD(screen *core.Screen) {
	rows := g.hudRows(screen)
	w := screen.Width()
	screen.DrawHLine(0, rows-1, w, '─', core.ColorGray)

	screen.DrawText(1, 0, fmt.Sprintf("Score %d", g.score), core.ColorBrightWhite)

	hearts := ""
	for i := 0; i < g.lives; i++ {
		hearts += string(heartGlyph) + " "
	}
	screen.DrawText(16, 0, hearts, core.ColorBrightRed)

	timeStr := fmt.Sprintf("Time %2d", int(math.Ceil(g.timeLeft)))
	timeColor := core.ColorWhite
	if g.timeLeft < 10 {
		timeColor = core.ColorBrightRed
	}
	screen.DrawText(w/2-len(timeStr)/2, 0, timeStr, timeColor)

	d := g.cfg.PresetByIndex(g.difficultyIdx)
	right := fmt.Sprintf("%s · High %d", d.Name, g.highScore)
	screen.DrawText(w-len(right)-1, 0, right, core.ColorGray)

	if g.combo >= 2 {
		screen.DrawText(1, 1, fmt.Sprintf("Combo x%d", g.combo), core.ColorCyan)
	}
}

func (g *Game) renderBoard(screen *core.Screen) {
	for _, it := range g.items {
		// Wobble is a small cosmetic bob, applied at render time only.
		bob := core.V(0, math.Sin(it.Wobble)*3)
		x, y := g.worldToCell(screen, it.Pos.Add(bob))
		if g.assets != nil && g.assets.HasItemSprite() {
			g.drawSprite(screen, g.assets.ItemSprite(), x, y, core.ColorYellow)
		} else {
			screen.SetColor(x, y, itemGlyph, core.ColorYellow)
		}
	}

	for _, h := range g.hazards {
		x, y := g.worldToCell(screen, h.Pos)
		screen.SetColor(x, y, hazardGlyph, core.ColorBrightRed)
	}

	g.renderPlayer(screen)

	for _, p := range g.particles {
		x, y := g.worldToCell(screen, p.Pos)
		glyph := '·'
		if p.Life > p.Total/2 {
			glyph = '*'
		}
		screen.SetColor(x, y, glyph, p.Color)
	}
	for _, f := range g.floaters {
		x, y := g.worldToCell(screen, f.Pos)
		screen.DrawText(x-len(f.Text)/2, y, f.Text, f.Color)
	}
}

func (g *Game) renderPlayer(screen *core.Screen) {
	if g.player == nil {
		return
	}
	// Flicker while invulnerable: skip drawing on alternating phases.
	if g.player.HitCooldown > 0 && int(g.player.HitCooldown*blinkRate)%2 == 0 {
		return
	}

	for i, t := range g.player.Trail {
		if i%3 != 0 {
			continue
		}
		x, y := g.worldToCell(screen, t)
		screen.SetColor(x, y, '·', core.ColorGray)
	}

	x, y := g.worldToCell(screen, g.player.Pos)
	if g.assets != nil && g.assets.HasPlayerSprite() {
		sprite := g.assets.PlayerFrame(g.player.AnimIndex)
		if g.player.LastMove.X < 0 {
			sprite = sprite.Mirrored()
		}
		g.drawSprite(screen, sprite, x, y, core.ColorBrightWhite)
	} else {
		screen.SetColor(x, y, playerGlyph, core.ColorBrightWhite)
	}
}

// drawSprite draws a multi-row sprite centered on (cx, cy). Space runes
// are transparent.
func (g *Game) drawSprite(screen *core.Screen, s assets.Sprite, cx, cy int, c core.Color) {
	ox := cx - s.Width()/2
	oy := cy - s.Height()/2
	for dy, row := range s.Rows() {
		for dx, r := range row {
			if r == ' ' {
				continue
			}
			screen.SetColor(ox+dx, oy+dy, r, c)
		}
	}
}

func (g *Game) renderPauseOverlay(screen *core.Screen) {
	g.renderOverlayBox(screen, []overlayLine{
		{"P A U S E D", core.ColorBrightYellow},
		{"", core.ColorDefault},
		{"p/esc resume · r restart", core.ColorWhite},
		{"m menu · q quit to menu", core.ColorWhite},
	})
}

func (g *Game) renderGameOverOverlay(screen *core.Screen) {
	lines := []overlayLine{
		{"G A M E   O V E R", core.ColorBrightRed},
		{"", core.ColorDefault},
		{fmt.Sprintf("final score: %d", g.score), core.ColorBrightWhite},
	}
	if g.newHighScore {
		lines = append(lines, overlayLine{"★ new high score! ★", core.ColorGold})
	}
	lines = append(lines,
		overlayLine{"", core.ColorDefault},
		overlayLine{"enter/space play again · r/m menu", core.ColorWhite},
	)
	g.renderOverlayBox(screen, lines)
}

type overlayLine struct {
	text  string
	color core.Color
}

func (g *Game) renderOverlayBox(screen *core.Screen, lines []overlayLine) {
	w, h := screen.Width(), screen.Height()
	boxW := 0
	for _, l := range lines {
		if len(l.text) > boxW {
			boxW = len(l.text)
		}
	}
	boxW += 6
	boxH := len(lines) + 2
	x := w/2 - boxW/2
	y := h/2 - boxH/2

	screen.FillRect(x, y, boxW, boxH, ' ', core.ColorDefault)
	screen.DrawBox(x, y, boxW, boxH, core.ColorWhite)
	for i, l := range lines {
		screen.DrawText(w/2-len(l.text)/2, y+1+i, l.text, l.color)
	}
}
