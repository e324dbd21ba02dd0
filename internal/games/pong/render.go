package pong

import (
	"strconv"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Fonts used by the render pass.
var (
	scoreFont   = core.Font{Size: 48, Bold: true}
	controlFont = core.Font{Size: 16}
	winnerFont  = core.Font{Size: 72, Bold: true}
	restartFont = core.Font{Size: 24}
)

// Net dash pattern in world pixels.
const (
	netDash = 10
	netGap  = 10
)

// drawMatch renders one frame of the match. controls holds the hint shown
// under each paddle, left first.
func drawMatch(dst core.Surface, m *Match, controls [2]string) {
	cfg := m.Config()
	w := float64(cfg.Window.Width)
	h := float64(cfg.Window.Height)

	drawNet(dst, w, h)

	for _, p := range []Player{Player1, Player2} {
		pd := m.Paddle(p)
		r := pd.Rect()
		dst.FillRect(r.X, r.Y, r.W, r.H, core.ColorWhite)
	}

	ball := m.Ball()
	br := ball.Rect()
	dst.FillOval(br.X, br.Y, br.W, br.H, core.ColorBrightWhite)

	left, right := m.Scores()
	drawCentered(dst, strconv.Itoa(left), w/4, 80, scoreFont, core.ColorWhite)
	drawCentered(dst, strconv.Itoa(right), 3*w/4, 80, scoreFont, core.ColorWhite)

	dst.DrawText(controls[0], 20, h-60, controlFont, core.ColorGray)
	dst.DrawText(controls[1], w-20-dst.TextWidth(controls[1], controlFont), h-60, controlFont, core.ColorGray)

	if m.Phase() == PhaseGameOver {
		dst.FillRect(0, 0, w, h, core.ColorBlack)
		drawCentered(dst, m.WinnerLabel(), w/2, h/2-50, winnerFont, core.ColorBrightYellow)
		drawCentered(dst, "Press R to restart", w/2, h/2+30, restartFont, core.ColorWhite)
	}
}

// drawNet draws the dashed center line.
func drawNet(dst core.Surface, w, h float64) {
	x := w / 2
	for y := 0.0; y < h; y += netDash + netGap {
		dst.DrawLine(x, y, x, min(y+netDash, h), core.ColorGray)
	}
}

// drawCentered draws text horizontally centered on cx with its baseline at y.
func drawCentered(dst core.Surface, text string, cx, y float64, font core.Font, c core.Color) {
	dst.DrawText(text, cx-dst.TextWidth(text, font)/2, y, font, c)
}
