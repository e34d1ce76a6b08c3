package nuggets

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/nugget-hunt/internal/core"
	nc "github.com/vovakirdan/nugget-hunt/internal/games/nuggets/core"
)

const (
	hudHeight    = 2 // status line + separator
	footerHeight = 2 // banner line + key hints
	cellWidth    = 2 // terminal columns per tile
	minWidth     = 40

	bannerFadeIn  = 15
	bannerFadeOut = 20
)

var tintPalette = [nc.ParticleTints]core.Color{
	core.ColorGold,
	core.ColorBrightYellow,
	core.ColorYellow,
	core.ColorOrange,
	core.ColorBrightWhite,
}

// layout places the board on screen.
type layout struct {
	board    core.Rect // including the frame
	tooSmall bool
}

func computeLayout(g nc.Grid, width, height int) layout {
	boardW := g.Cols*cellWidth + 2
	boardH := g.Rows + 2
	if width < core.Max(boardW, minWidth) || height < hudHeight+boardH+footerHeight {
		return layout{tooSmall: true}
	}
	x := (width - boardW) / 2
	y := hudHeight + (height-hudHeight-footerHeight-boardH)/2
	return layout{board: core.NewRect(x, y, boardW, boardH)}
}

// cellOrigin returns the screen position of the left half of a tile.
func (l layout) cellOrigin(c nc.Coord) (int, int) {
	return l.board.X + 1 + c.X*cellWidth, l.board.Y + 1 + c.Y
}

// Render draws the current frame.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.state == nil {
		return
	}

	g.renderHUD(dst)

	if g.layout.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderBoard(dst)

	switch p := g.state.Phase().(type) {
	case *nc.HazardRecovery:
		g.renderFall(dst, p)
	case *nc.ItemFound:
		g.renderFound(dst, p)
	case *nc.Won:
		g.renderParticles(dst, p.Particles)
		g.renderVictory(dst, p)
	}

	g.renderFooter(dst)
}

// hudSlotX returns the screen column of a piece slot in the status line.
func hudSlotX(slot int) int {
	return len(" Pieces ") + slot*cellWidth
}

func (g *Game) renderHUD(dst *core.Screen) {
	items := g.state.Items()
	collected := g.state.Collected().Len()

	// The piece in flight lands in its slot only when the flight ends.
	flying := -1
	if p, ok := g.state.Phase().(*nc.ItemFound); ok && p.FlyProgress(g.cfg.Timers.ItemFly) < 1 {
		flying = p.Slot
	}

	dst.DrawText(0, 0, " Pieces ")
	for i := range items {
		r, color := '◇', core.ColorDarkGray
		if i < collected && i != flying {
			r, color = '◆', core.ColorGold
		}
		dst.SetColored(hudSlotX(i), 0, r, color)
	}

	right := fmt.Sprintf("Pits: %d  %s ", g.state.Deaths(), g.preset.Title())
	pitColor := core.ColorDefault
	if g.state.Deaths() > 0 {
		pitColor = core.ColorRed
	}
	dst.DrawTextColored(dst.Width()-len([]rune(right)), 0, right, pitColor)

	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorDarkGray)
}

func (g *Game) renderBoard(dst *core.Screen) {
	dst.DrawBox(g.layout.board, core.ColorGray)

	player := g.state.Player()
	for _, c := range g.state.Grid().Cells() {
		x, y := g.layout.cellOrigin(c)
		var tile string
		var color core.Color
		switch {
		case c == player:
			continue
		case g.state.IsRevealed(c):
			tile, color = "░░", core.ColorRed
		case g.state.IsCollected(c):
			tile, color = "··", core.ColorBrown
		case g.state.IsVisited(c):
			tile, color = "  ", core.ColorDefault
		default:
			tile, color = "▓▓", core.ColorDarkGray
		}
		dst.DrawTextColored(x, y, tile, color)
	}

	x, y := g.layout.cellOrigin(player)
	dst.DrawTextColored(x, y, playerGlyph(g.state.Facing()), core.ColorBrightWhite)
}

func playerGlyph(d nc.Dir) string {
	switch d {
	case nc.DirUp:
		return "▲ "
	case nc.DirLeft:
		return "◀ "
	case nc.DirRight:
		return " ▶"
	default:
		return "▼ "
	}
}

// renderFall flashes the pit under the player for the first two thirds of
// the recovery.
func (g *Game) renderFall(dst *core.Screen, p *nc.HazardRecovery) {
	if p.Progress() >= 2.0/3.0 || (p.Countdown/6)%2 == 1 {
		return
	}
	x, y := g.layout.cellOrigin(g.state.Player())
	dst.DrawTextColored(x, y, "▼▼", core.ColorBrightRed)
	dst.DrawTextCentered(g.layout.board.Bottom(), "You fell into a pit!", core.ColorBrightRed)
}

func (g *Game) renderFound(dst *core.Screen, p *nc.ItemFound) {
	elapsed := p.Elapsed()
	color := core.ColorGold
	if elapsed < bannerFadeIn || p.Countdown < bannerFadeOut {
		color = core.ColorYellow
	}
	if elapsed < bannerFadeIn/3 || p.Countdown < bannerFadeOut/3 {
		color = core.ColorDarkGray
	}
	banner := fmt.Sprintf("%d of %d pieces collected. Find the rest!", p.Slot+1, len(g.state.Items()))
	dst.DrawTextCentered(g.layout.board.Bottom(), banner, color)

	t := p.FlyProgress(g.cfg.Timers.ItemFly)
	if t >= 1 {
		return
	}
	fromX, fromY := g.layout.cellOrigin(p.Origin)
	eased := nc.EaseOutCubic(t)
	x := core.Lerp(fromX, hudSlotX(p.Slot), eased)
	y := core.Lerp(fromY, 0, eased)
	dst.SetColored(x, y, '◆', core.ColorBrightYellow)
}

func (g *Game) renderParticles(dst *core.Screen, ps []nc.Particle) {
	for _, p := range ps {
		if p.X < 0 || p.Y < 0 {
			continue
		}
		x := g.layout.board.X + 1 + int(p.X*cellWidth)
		y := g.layout.board.Y + 1 + int(p.Y)
		dst.SetColored(x, y, particleGlyph(p), tintPalette[p.Tint%nc.ParticleTints])
	}
}

func particleGlyph(p nc.Particle) rune {
	if p.Life < 0.25 {
		return '.'
	}
	switch p.Size {
	case 2:
		return '·'
	case 3:
		return '•'
	case 4:
		return '*'
	default:
		return '✦'
	}
}

func (g *Game) renderVictory(dst *core.Screen, p *nc.Won) {
	result := "Flawless run"
	if d := g.state.Deaths(); d == 1 {
		result = "Fell into 1 pit"
	} else if d > 1 {
		result = fmt.Sprintf("Fell into %d pits", d)
	}
	lines := []string{
		"You found every nugget!",
		result,
		fmt.Sprintf("Moves: %d  Time: %s", g.moves, g.runtime.TickDuration(g.ticks).Round(time.Second/10)),
	}

	boxW := 0
	for _, l := range lines {
		boxW = core.Max(boxW, len([]rune(l)))
	}
	boxW += 4
	box := g.layout.board.Centered(boxW, len(lines)+4)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorGold)

	nugget := '◆'
	if math.Sin(p.Angle*4) < 0 {
		nugget = '◇'
	}
	dst.SetColored(box.X+boxW/2, box.Y+1, nugget, core.ColorGold)

	for i, l := range lines {
		x := box.X + (boxW-len([]rune(l)))/2
		color := core.ColorBrightWhite
		if i == 1 && g.state.Deaths() == 0 {
			color = core.ColorGold
		}
		dst.DrawTextColored(x, box.Y+2+i, l, color)
	}
}

func (g *Game) renderFooter(dst *core.Screen) {
	hint := "Arrows/WASD: move · Esc: menu · Q: quit"
	if g.state.Won() {
		hint = "Enter/Space: new map · Esc: menu"
	}
	dst.DrawTextCentered(dst.Height()-1, hint, core.ColorGray)
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := core.Max(len(line1), len(line2)) + 4
	box := core.NewRect(0, 0, dst.Width(), dst.Height()).Centered(boxW, 5)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorDefault)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorGray)
}
