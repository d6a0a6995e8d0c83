package flappy

import (
	"fmt"

	"github.com/vovakirdan/flappy-kids/internal/canvas"
)

// Palette
var (
	skyTop      = canvas.Hex(0xFFEDD5)
	skyBottom   = canvas.Hex(0xFDBA74)
	pipeFill    = canvas.Hex(0x22C55E)
	pipeStroke  = canvas.Hex(0x15803D)
	birdBody    = canvas.Hex(0xFDE047)
	birdFlash   = canvas.Hex(0xFCA5A5)
	birdEye     = canvas.Hex(0x111827)
	birdBeak    = canvas.Hex(0xF97316)
	hudText     = canvas.Hex(0x1F2937)
	bannerFill  = canvas.Hex(0x1F2937)
	bannerTitle = canvas.Hex(0xFDE047)
	bannerText  = canvas.Hex(0xFFFFFF)
)

const (
	pipeStrokeWidth = 4
	eyeRadius       = 3
	hudX, hudY      = 16, 14
)

// Render draws the current frame. It only reads game state and may be
// called at any rate.
func (g *Game) Render(dst canvas.Surface, flashing bool) {
	Draw(dst, g.State(), flashing)
}

// Draw renders a snapshot onto dst.
func Draw(dst canvas.Surface, s State, flashing bool) {
	dst.VerticalGradient(skyTop, skyBottom)

	for _, p := range s.Pipes {
		drawPipe(dst, p, s.PipeWidth, s.FieldH)
	}
	drawBird(dst, s.Bird, flashing)

	dst.Text(hudX, hudY, fmt.Sprintf("Score: %d / %d", s.Score, s.Target), hudText)

	switch {
	case s.Paused:
		drawBanner(dst, s, "PAUSED", "Press P to resume")
	case s.Outcome == OutcomeGameOver:
		drawBanner(dst, s, "GAME OVER", fmt.Sprintf("Score %d. Press R to retry", s.Score))
	case s.Outcome == OutcomeLevelComplete && s.LastLevel:
		drawBanner(dst, s, "ALL LEVELS DONE!", "Press R to replay")
	case s.Outcome == OutcomeLevelComplete:
		drawBanner(dst, s, "LEVEL COMPLETE!", "Press Enter to continue")
	}
}

func drawPipe(dst canvas.Surface, p Pipe, width, fieldH float64) {
	bottomY := p.GapTop + p.GapHeight

	dst.FillRect(p.X, 0, width, p.GapTop, pipeFill)
	dst.StrokeRect(p.X, 0, width, p.GapTop, pipeStrokeWidth, pipeStroke)

	dst.FillRect(p.X, bottomY, width, fieldH-bottomY, pipeFill)
	dst.StrokeRect(p.X, bottomY, width, fieldH-bottomY, pipeStrokeWidth, pipeStroke)
}

func drawBird(dst canvas.Surface, b Bird, flashing bool) {
	body := birdBody
	if flashing {
		body = birdFlash
	}
	dst.FillCircle(b.X, b.Y, b.Radius, body)
	dst.FillCircle(b.X+6, b.Y-4, eyeRadius, birdEye)
	dst.FillTriangle(
		b.X+b.Radius, b.Y,
		b.X+b.Radius+8, b.Y+4,
		b.X+b.Radius, b.Y+8,
		birdBeak,
	)
}

func drawBanner(dst canvas.Surface, s State, title, subtitle string) {
	const inset, height = 24.0, 96.0
	y := (s.FieldH - height) / 2
	dst.FillRect(inset, y, s.FieldW-2*inset, height, bannerFill)
	dst.Text(inset+16, y+20, title, bannerTitle)
	dst.Text(inset+16, y+56, subtitle, bannerText)
}
