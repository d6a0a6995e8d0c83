// Package window runs the game in an Ebitengine window. The same code is the
// wasm build for browsers, where gdata maps progress to localStorage.
package window

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/flappy-kids/internal/canvas"
	"github.com/vovakirdan/flappy-kids/internal/core"
	"github.com/vovakirdan/flappy-kids/internal/games/flappy"
	"github.com/vovakirdan/flappy-kids/internal/session"
)

// Initial window size in device-independent pixels.
const (
	windowW = 405
	windowH = 720
)

var retryColor = canvas.Hex(0x1F2937)

type mode int

const (
	modeSelect mode = iota
	modePlay
)

// App implements ebiten.Game around a session.
type App struct {
	sess    *session.Session
	logger  *log.Logger
	vp      *canvas.Viewport
	surface *Surface
	fieldW  float64
	mode    mode
	token   session.Token
	now     func() time.Time
}

// NewApp creates the window game. With play set it skips the level select.
func NewApp(sess *session.Session, logger *log.Logger, play bool) *App {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	st := sess.Game().State()
	vp := canvas.NewViewport(st.FieldW, st.FieldH)
	a := &App{
		sess:    sess,
		logger:  logger,
		vp:      vp,
		surface: NewSurface(vp),
		fieldW:  st.FieldW,
		now:     time.Now,
	}
	if play {
		a.start()
	}
	return a
}

func (a *App) start() {
	a.token = a.sess.Start()
	a.mode = modePlay
}

// Update consumes input and advances the active run.
func (a *App) Update() error {
	in := readInput()
	if in.Frame.Has(core.ActionQuit) {
		a.sess.Stop()
		return ebiten.Termination
	}

	switch a.mode {
	case modeSelect:
		a.updateSelect(in)
	case modePlay:
		a.updatePlay(in)
	}
	return nil
}

func (a *App) updateSelect(in Input) {
	switch {
	case in.Level >= 0:
		if a.sess.Select(in.Level) {
			a.start()
		}
	case len(in.Pointers) > 0:
		p := in.Pointers[0]
		lx, ly := a.vp.ToLogical(float64(p.X), float64(p.Y))
		if i := levelRows.At(lx, ly, a.sess.Catalog().Count(), a.fieldW); i >= 0 && a.sess.Select(i) {
			a.start()
		}
	case in.Frame.Has(core.ActionUp):
		a.sess.MoveSelection(-1)
	case in.Frame.Has(core.ActionDown):
		a.sess.MoveSelection(1)
	case in.Frame.Has(core.ActionConfirm), in.Frame.Has(core.ActionJump):
		a.start()
	}
}

func (a *App) updatePlay(in Input) {
	g := a.sess.Game()
	if in.Frame.Has(core.ActionBack) {
		a.sess.Stop()
		a.mode = modeSelect
		return
	}

	if !g.Running() {
		switch {
		case in.Frame.Has(core.ActionConfirm):
			if tok, ok := a.sess.Next(); ok {
				a.token = tok
			} else {
				a.start()
			}
		case in.Frame.Has(core.ActionRestart):
			a.start()
		case in.Frame.Has(core.ActionJump) && a.sess.RetryReady():
			a.start()
		}
		return
	}

	a.sess.Input(in.Frame)
	if out := a.sess.Frame(a.token, a.now()); out != flappy.OutcomeContinue {
		a.logger.Debug("run ended", "level", g.Level(), "outcome", out, "score", g.Score())
	}
}

// Draw renders the letterboxed field.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(letterboxFill)
	a.surface.SetTarget(screen)

	if a.mode == modeSelect {
		drawLevelSelect(a.surface, a.sess, a.fieldW)
		return
	}

	a.sess.Render(a.surface)
	msg := a.sess.Status()
	if msg == "" && !a.sess.Game().Running() {
		switch {
		case a.sess.HasNext():
			msg = "Tap to retry, Enter for next"
		case a.sess.Game().Outcome() == flappy.OutcomeLevelComplete:
			msg = "Tap to replay, Esc for levels"
		default:
			msg = "Tap to retry, Esc for levels"
		}
		a.surface.Text(rowX-16, 600, msg, retryColor)
		return
	}
	drawStatus(a.surface, msg, a.fieldW)
}

// Layout is required by ebiten.Game. LayoutF takes precedence.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := a.LayoutF(float64(outsideWidth), float64(outsideHeight))
	return int(w), int(h)
}

// LayoutF sizes the backing store by the device scale factor so drawing stays
// crisp on high density displays, then refits the logical field.
func (a *App) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	dpr := 1.0
	if m := ebiten.Monitor(); m != nil {
		dpr = m.DeviceScaleFactor()
	}
	w, h, _ := canvas.BackingSize(outsideWidth, outsideHeight, dpr)
	a.vp.Resize(w, h)
	return w, h
}

// Run opens the window and blocks until it is closed.
func Run(sess *session.Session, cfg core.RuntimeConfig, logger *log.Logger, play bool) error {
	app := NewApp(sess, logger, play)

	ebiten.SetWindowSize(windowW, windowH)
	ebiten.SetWindowTitle("Flappy Kids")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}

	app.logger.Info("window opened", "tps", ebiten.TPS(), "level", sess.Selected())
	err := ebiten.RunGame(app)
	sess.Stop()
	if err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
