package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappy-kids/internal/canvas"
	"github.com/vovakirdan/flappy-kids/internal/core"
	"github.com/vovakirdan/flappy-kids/internal/games/flappy"
	"github.com/vovakirdan/flappy-kids/internal/session"
)

var statusStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#78350F")).
	Background(lipgloss.Color("#FEF3C7")).
	Bold(true)

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for playing a level.
// The bottom terminal row is reserved for status and controls.
type Model struct {
	sess      *session.Session
	screen    *core.Screen
	surface   *canvas.TermSurface
	keyMapper *KeyMapper
	config    core.RuntimeConfig
	token     session.Token
	quitting  bool
	back      bool // Return to the level select
}

// NewModel creates a play model for the session's selected level.
func NewModel(sess *session.Session, cfg core.RuntimeConfig) Model {
	screen := core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1))
	st := sess.Game().State()
	return Model{
		sess:      sess,
		screen:    screen,
		surface:   canvas.NewTermSurface(screen, st.FieldW, st.FieldH),
		keyMapper: NewKeyMapper(),
		config:    cfg,
	}
}

// Init starts the run and the tick loop.
func (m Model) Init() tea.Cmd {
	return func() tea.Msg { return startMsg{} }
}

// startMsg starts a run from inside Update so the token lands in the model.
type startMsg struct{}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case startMsg:
		return m.start()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.keyMapper.MapMouse(msg) == core.ActionJump {
			in := core.NewInputFrame()
			in.Set(core.ActionJump)
			m.sess.Input(in)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

func (m Model) start() (tea.Model, tea.Cmd) {
	m.token = m.sess.Start()
	return m, tickCmd(m.config.TickRate, m.token)
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	in := core.NewInputFrame()
	if m.keyMapper.MapKeyToFrame(msg, &in) {
		m.sess.Stop()
		m.quitting = true
		return m, tea.Quit
	}

	game := m.sess.Game()
	switch {
	case in.Has(core.ActionBack):
		m.sess.Stop()
		m.back = true
		return m, tea.Quit

	case in.Has(core.ActionRestart) && !game.Running():
		return m.start()

	case in.Has(core.ActionConfirm) && !game.Running():
		if tok, ok := m.sess.Next(); ok {
			m.token = tok
			return m, tickCmd(m.config.TickRate, tok)
		}
		return m.start()
	}

	m.sess.Input(in)
	return m, nil
}

// handleResize keeps the logical field and only changes its mapping.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.surface.Sync()
	return m, nil
}

// handleTick advances the game. Ticks from a replaced loop are dropped
// and not rescheduled.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.sess.Active(msg.Token) {
		return m, nil
	}
	m.sess.Frame(msg.Token, msg.Time)
	return m, tickCmd(m.config.TickRate, msg.Token)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.sess.Render(m.surface)

	dir := filepath.Join(xdg.DataHome, "flappy-kids", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("level%d_%s.txt", m.sess.Game().Level()+1, timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}

	m.sess.Render(m.surface)
	return RenderScreen(m.screen) + "\n" + m.footer()
}

func (m Model) footer() string {
	if status := m.sess.Status(); status != "" {
		return statusStyle.Render(" " + status + " ")
	}
	game := m.sess.Game()
	hint := "Space/Up/Click: flap  P: pause  Esc: levels  Q: quit"
	if !game.Running() {
		switch {
		case m.sess.HasNext():
			hint = "Enter: next level  R: replay  Esc: levels  Q: quit"
		case game.Outcome() == flappy.OutcomeLevelComplete:
			hint = "R: replay  Esc: levels  Q: quit"
		default:
			hint = "R: retry  Esc: levels  Q: quit"
		}
	}
	level := fmt.Sprintf("Level %d", game.Level()+1)
	if best := m.sess.Best(game.Level()); best > 0 {
		level += fmt.Sprintf("  Best %d", best)
	}
	return footerStyle.Render(level + "  " + hint)
}

// PlayResult reports how the play screen was left.
type PlayResult struct {
	Back   bool
	Config core.RuntimeConfig
}

// Run plays the session's selected level until the player leaves.
func Run(sess *session.Session, cfg core.RuntimeConfig) (PlayResult, error) {
	model := NewModel(sess, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks flap
	)

	finalModel, err := p.Run()
	sess.Stop()
	if err != nil {
		return PlayResult{Config: cfg}, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return PlayResult{Config: cfg}, nil
	}
	return PlayResult{Back: m.back, Config: m.config}, nil
}
