package game

import (
	"fmt"
	"strings"

	"github.com/snackfall/snackfall/internal/core"
)

// Screen layout constants. Row 0 is the HUD, the last row is the ground
// line, everything between is the arena.
const (
	hudRow   = 0
	arenaTop = 1
)

// Render draws the current simulation state into the screen buffer.
// Positions are kept in arena units internally and scaled to cells here,
// so the same session renders correctly at any terminal size.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	if w < 10 || h < 6 {
		return
	}
	groundRow := h - 1
	arenaRows := groundRow - arenaTop
	shake := g.effects.ShakeOffset()

	dst.DrawHLine(0, groundRow, w, '─')

	g.drawFoods(dst, w, arenaRows, shake)
	g.drawParticles(dst, w, arenaRows, shake)
	g.drawPlayer(dst, w, arenaRows, shake)
	g.drawHUD(dst, w)

	if g.bannerShown {
		drawCenteredMessage(dst, "G A M E   O V E R")
		if g.gameOver {
			dst.DrawTextCentered(h/2+2, fmt.Sprintf("Final Score: %d", g.score))
			dst.DrawTextCentered(h/2+3, "R: Restart  Q: Quit")
		}
	}
	if g.paused {
		drawCenteredMessage(dst, "PAUSED")
	}
}

// cellX maps an arena-unit x coordinate to a screen column.
func (g *Game) cellX(x float64, screenW int) int {
	return int(x / g.cfg.Arena.Width * float64(screenW))
}

// cellY maps an arena-unit y coordinate to a screen row inside the arena.
func (g *Game) cellY(y float64, arenaRows int) int {
	return arenaTop + int(y/g.cfg.Arena.Height*float64(arenaRows))
}

func (g *Game) drawHUD(dst *core.Screen, w int) {
	left := fmt.Sprintf(" Score: %d  Level: %d", g.score, g.level)
	dst.DrawTextColored(0, hudRow, left, core.ColorWhite)

	hearts := strings.Repeat("♥", g.lives)
	if hearts == "" {
		hearts = "-"
	}
	label := "Lives: "
	dst.DrawText(w-len(label)-g.lives-1, hudRow, label)
	dst.DrawTextColored(w-g.lives-1, hudRow, hearts, core.ColorRed)
}

func (g *Game) drawFoods(dst *core.Screen, w, arenaRows, shake int) {
	for _, f := range g.foods.Foods() {
		glyph, color := g.sprites.FoodGlyph(f.Category)
		x := g.cellX(f.X, w) + shake
		y := g.cellY(f.Y, arenaRows)
		cw := g.cellX(f.W, w)
		if cw < 1 {
			cw = 1
		}
		ch := int(f.H / g.cfg.Arena.Height * float64(arenaRows))
		if ch < 1 {
			ch = 1
		}
		for dy := 0; dy < ch; dy++ {
			row := y + dy
			if row < arenaTop || row >= arenaTop+arenaRows {
				continue
			}
			for dx := 0; dx < cw; dx++ {
				dst.SetColored(x+dx, row, glyph, color)
			}
		}
	}
}

func (g *Game) drawParticles(dst *core.Screen, w, arenaRows, shake int) {
	for _, p := range g.effects.Particles() {
		y := g.cellY(p.Y, arenaRows)
		if y < arenaTop || y >= arenaTop+arenaRows {
			continue
		}
		dst.SetColored(g.cellX(p.X, w)+shake, y, '·', p.Color)
	}
}

func (g *Game) drawPlayer(dst *core.Screen, w, arenaRows, shake int) {
	p := g.player
	x := g.cellX(p.X, w) + shake
	cw := g.cellX(p.Width, w)
	if cw < 1 {
		cw = 1
	}
	ch := int(p.Height / g.cfg.Arena.Height * float64(arenaRows))
	if ch < 1 {
		ch = 1
	}
	// Anchor the bottom of the art to the bottom of the player rect so the
	// player always stands on the ground line regardless of art height.
	bottom := g.cellY(p.Y+p.Height, arenaRows)

	frame, color, ok := g.sprites.Frame(p.State, p.Frame)
	if !ok || len(frame) == 0 {
		top := bottom - ch
		for dy := 0; dy < ch; dy++ {
			for dx := 0; dx < cw; dx++ {
				dst.SetColored(x+dx, top+dy, g.sprites.FallbackGlyph, g.sprites.FallbackColor)
			}
		}
		return
	}

	top := bottom - len(frame)
	for dy, line := range frame {
		row := top + dy
		if row < arenaTop {
			continue
		}
		runes := []rune(line)
		if p.Facing == FacingLeft {
			runes = mirrorRunes(runes)
		}
		for dx, r := range runes {
			if r == ' ' {
				continue
			}
			dst.SetColored(x+dx, row, r, color)
		}
	}
}

// mirrorRunes reverses a sprite row and swaps direction-sensitive glyphs so
// left-facing art reads correctly.
func mirrorRunes(runes []rune) []rune {
	out := make([]rune, len(runes))
	for i, r := range runes {
		switch r {
		case '(':
			r = ')'
		case ')':
			r = '('
		case '/':
			r = '\\'
		case '\\':
			r = '/'
		case '<':
			r = '>'
		case '>':
			r = '<'
		}
		out[len(runes)-1-i] = r
	}
	return out
}

// drawCenteredMessage draws a boxed message in the middle of the screen.
func drawCenteredMessage(dst *core.Screen, msg string) {
	w, h := dst.Width(), dst.Height()
	boxW := len(msg) + 4
	boxH := 3
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(boxY+1, msg)
}
