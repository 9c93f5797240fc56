package starfall

import (
	"fmt"
	"math"

	"github.com/vovakirdan/starfall/internal/core"
)

// Visual characters for rendering
const (
	DebrisChar    = '▓'
	StarSmallChar = '·'
	StarMidChar   = '+'
	StarBigChar   = '*'
	TargetChar    = '×'
)

// playerSprite is drawn centered on the player's cell.
var playerSprite = []rune("◢█◣")

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	s := g.Snapshot()
	if g.loop == nil {
		return
	}

	for _, e := range s.Entities {
		if e.Kind == KindStar {
			g.drawStar(dst, e)
		}
	}
	for _, e := range s.Entities {
		if e.Kind == KindDebris {
			g.drawDebris(dst, e)
		}
	}

	if s.Target != nil {
		tx, ty := g.worldToCell(*s.Target)
		dst.SetColored(tx, ty, TargetChar, core.ColorGray)
	}

	g.drawPlayer(dst, s.Player)
	g.drawHUD(dst, s)

	if s.LastRound != nil {
		subtitle := fmt.Sprintf("Round score: %d", s.LastRound.Score)
		if s.LastRound.NewHighScore {
			subtitle = fmt.Sprintf("New high score: %d!", s.LastRound.Score)
		}
		drawCenteredMessage(dst, "CRASH", subtitle)
	}

	if s.Paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

func (g *Game) drawHUD(dst *core.Screen, s Snapshot) {
	left := fmt.Sprintf(" Score: %d  High: %d  Round: %d ", s.Score, s.HighScore, s.Round)
	dst.DrawTextColored(0, 0, left, core.ColorBrightYellow)

	right := fmt.Sprintf(" Spawn: %.2fs ", s.SpawnInterval)
	color := core.ColorGreen
	switch {
	case s.Difficulty >= 1:
		color = core.ColorRed
	case s.Difficulty >= 0.5:
		color = core.ColorOrange
	}
	dst.DrawTextColored(dst.Width()-len(right), 0, right, color)
}

func (g *Game) drawPlayer(dst *core.Screen, p core.Vec2) {
	cx, cy := g.worldToCell(p)
	x := cx - len(playerSprite)/2
	for i, r := range playerSprite {
		dst.SetColored(x+i, cy, r, core.ColorBrightCyan)
	}
}

// drawDebris renders debris as a block roughly matching its collision box.
// Cells are about twice as tall as wide, so the block uses half the rows.
func (g *Game) drawDebris(dst *core.Screen, e Entity) {
	u := g.cfg.World.UnitsPerCell
	w := core.Max(1, int(math.Round(e.Size/u)))
	h := core.Max(1, int(math.Round(e.Size/u/2)))

	cx, cy := g.worldToCell(e.Position())
	x0, y0 := cx-w/2, cy-h/2
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			if y0+dy < hudRows {
				continue
			}
			dst.SetColored(x0+dx, y0+dy, DebrisChar, core.ColorOrange)
		}
	}
}

func (g *Game) drawStar(dst *core.Screen, e Entity) {
	cx, cy := g.worldToCell(e.Position())
	if cy < hudRows {
		return
	}
	r := StarSmallChar
	switch {
	case e.Scale >= 3:
		r = StarBigChar
	case e.Scale >= 1.5:
		r = StarMidChar
	}
	dst.SetColored(cx, cy, r, core.ColorYellow)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextColored(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, core.ColorBrightYellow)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}
