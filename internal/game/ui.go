package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var hudFace = basicfont.Face7x13

// Face7x13 metrics.
const (
	glyphW      = 7
	glyphAscent = 11
)

func textWidth(s string) int { return len(s) * glyphW }

// drawText draws s with its top-left corner at (x, y).
func drawText(dst *ebiten.Image, s string, x, y int, col RGB) {
	text.Draw(dst, s, hudFace, x, y+glyphAscent, col.NRGBA(255))
}

func drawTextCentered(dst *ebiten.Image, s string, cx, y int, col RGB) {
	drawText(dst, s, cx-textWidth(s)/2, y, col)
}

// drawTextBig draws s scaled up, top-left corner at (x, y).
func drawTextBig(dst *ebiten.Image, s string, x, y int, scale float64, col RGB) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x), float64(y)+glyphAscent*scale)
	op.ColorScale.ScaleWithColor(col.NRGBA(255))
	text.DrawWithOptions(dst, s, hudFace, op)
}

func drawTextBigCentered(dst *ebiten.Image, s string, cx, y int, scale float64, col RGB) {
	drawTextBig(dst, s, cx-int(float64(textWidth(s))*scale)/2, y, scale, col)
}

func truncName(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

// HUD is the shell's Display sink and widget painter. The engine pushes
// score, ranking and session end into it; Draw renders whatever arrived
// last. It never reaches back into the simulation.
type HUD struct {
	Score int
	Board []LeaderEntry
	Final int
	Over  bool
	Debug bool
}

func NewHUD() *HUD {
	return &HUD{}
}

// Reset clears per-run widgets at the start of a session.
func (h *HUD) Reset() {
	h.Score = 0
	h.Board = h.Board[:0]
	h.Final = 0
	h.Over = false
}

func (h *HUD) PushScore(score int) { h.Score = score }

func (h *HUD) PushLeaderboard(entries []LeaderEntry) {
	h.Board = append(h.Board[:0], entries...)
}

func (h *HUD) PushGameOver(finalScore int) {
	h.Final = finalScore
	h.Over = true
}

// Draw paints the shell widgets for the current session state.
func (h *HUD) Draw(dst *ebiten.Image, state GameState, world *World, vw, vh int) {
	switch state {
	case StateMenu:
		drawTextBigCentered(dst, "snake.io", vw/2, vh/2-130, 4.0, Palette.MeterFull)
		drawTextCentered(dst, "eat orbs, grow, cut off the others", vw/2, vh/2-60, Palette.HUDDim)
		drawTextCentered(dst, "Press SPACE or click to play", vw/2, vh/2+10, Palette.HUDText)
		drawTextCentered(dst, "steer: mouse    boost: hold LMB or SPACE    menu: ESC", vw/2, vh/2+40, Palette.HUDDim)

	case StatePlaying:
		drawText(dst, fmt.Sprintf("Score: %d", h.Score), 10, 8, Palette.HUDText)
		h.drawLeaderboard(dst, vw)
		if world != nil {
			h.drawBoostMeter(dst, world, vh)
		}

	case StateGameOver:
		px := float32(vw/2 - 190)
		py := float32(vh/2 - 100)
		vector.DrawFilledRect(dst, px, py, 380, 200, Palette.Background.NRGBA(230), false)
		vector.StrokeRect(dst, px, py, 380, 200, 2, Palette.Border.NRGBA(255), false)

		drawTextBigCentered(dst, "GAME OVER", vw/2, vh/2-80, 2.5, Palette.Border)
		drawTextCentered(dst, fmt.Sprintf("Final score: %d", h.Final), vw/2, vh/2-20, Palette.HUDAccent)
		drawTextCentered(dst, "SPACE to play again", vw/2, vh/2+30, Palette.HUDText)
		drawTextCentered(dst, "ESC for menu", vw/2, vh/2+55, Palette.HUDDim)
	}

	if h.Debug && world != nil {
		h.drawDebug(dst, world)
	}
}

// drawLeaderboard paints the last pushed ranking in the top-right corner.
func (h *HUD) drawLeaderboard(dst *ebiten.Image, vw int) {
	if len(h.Board) == 0 {
		return
	}
	const rowChars = 22
	x := vw - 10 - rowChars*glyphW
	drawText(dst, "TOP SNAKES", x, 8, Palette.HUDAccent)
	for i, e := range h.Board {
		row := fmt.Sprintf("%d. %-12s %6d", i+1, truncName(e.Name, 12), e.Score)
		col := Palette.HUDDim
		if i == 0 {
			col = Palette.HUDText
		}
		drawText(dst, row, x, 26+i*16, col)
	}
}

// drawBoostMeter paints the boost fuel bar: the length the player can
// still burn before hitting the floor, relative to a fixed span.
func (h *HUD) drawBoostMeter(dst *ebiten.Image, world *World, vh int) {
	p := world.Player()
	if p == nil {
		return
	}
	frac := clampF((p.TargetLen-StartLen)/BoostMeterSpan, 0, 1)

	const barW, barH = 180, 10
	x := float32(10)
	y := float32(vh - 24)
	drawText(dst, "BOOST", 10, vh-42, Palette.HUDDim)
	vector.DrawFilledRect(dst, x, y, barW, barH, Palette.Grid.NRGBA(255), false)
	if frac > 0 {
		col := lerpRGB(Palette.MeterEmpty, Palette.MeterFull, frac)
		vector.DrawFilledRect(dst, x, y, float32(barW*frac), barH, col.NRGBA(255), false)
	}
}

func (h *HUD) drawDebug(dst *ebiten.Image, world *World) {
	alive := 0
	for _, c := range world.Creatures {
		if c.Alive {
			alive++
		}
	}
	msg := fmt.Sprintf("tps %0.1f  fps %0.1f\ntick %d\ncreatures %d/%d\norbs %d\nparticles %d",
		ebiten.ActualTPS(), ebiten.ActualFPS(),
		world.Tick(), alive, len(world.Creatures), len(world.Orbs), len(world.Particles.P))
	ebitenutil.DebugPrintAt(dst, msg, 10, 30)
}
