package tui

import (
	"fmt"
	"strings"
	"time"

	progressbar "github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappy-kids/internal/core"
	"github.com/vovakirdan/flappy-kids/internal/session"
)

var heroStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#7C2D12")).
	Background(lipgloss.Color("#FED7AA")).
	Padding(0, 2)

var (
	taglineStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#9A3412"))
	cursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EA580C"))
	lockedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	unlockedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C2D12"))
)

const progressWidth = 30

// MenuModel is the Bubble Tea model for the level select screen.
type MenuModel struct {
	sess           *session.Session
	bar            progressbar.Model
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	start          bool // Set when the player starts the selected level
	openScoreboard bool // True if the player pressed Tab for scores
}

// NewMenuModel creates a new level select model.
func NewMenuModel(sess *session.Session, cfg core.RuntimeConfig) MenuModel {
	bar := progressbar.New(
		progressbar.WithGradient("#FB923C", "#FBBF24"),
		progressbar.WithWidth(progressWidth),
	)
	return MenuModel{
		sess:      sess,
		bar:       bar,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// statusExpiredMsg redraws the menu once a status message has timed out.
type statusExpiredMsg struct{}

func expireStatus() tea.Cmd {
	return tea.Tick(session.StatusDuration, func(time.Time) tea.Msg {
		return statusExpiredMsg{}
	})
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case statusExpiredMsg:
		// A newer status may have replaced the one this tick was for.
		if m.sess.Status() != "" {
			return m, expireStatus()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for level selection.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, level := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		m.sess.MoveSelection(-1)

	case MenuActionDown:
		m.sess.MoveSelection(1)

	case MenuActionLevel:
		if level >= m.sess.Catalog().Count() {
			break
		}
		if !m.sess.Select(level) {
			return m, expireStatus()
		}
		m.start = true
		return m, tea.Quit

	case MenuActionSelect:
		m.start = true
		return m, tea.Quit

	case MenuActionReset:
		//nolint:errcheck // Failure is logged by the session; the menu shows the reset state
		m.sess.ResetProgress()
		return m, expireStatus()

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the level select.
func (m MenuModel) View() string {
	if m.quitting || m.start || m.openScoreboard {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(heroStyle.Render("Tap, Fly, and Unlock Levels!"), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(taglineStyle.Render("Beat each level to unlock the next. Progress saves automatically."), m.width))
	b.WriteString("\n\n")

	p := m.sess.Progress()
	for i, lvl := range m.sess.Catalog().Levels() {
		cursor := "  "
		if i == m.sess.Selected() {
			cursor = cursorStyle.Render("> ")
		}

		var line string
		if p.IsUnlocked(i) {
			line = unlockedStyle.Render(fmt.Sprintf("Level %d  %-14s target %d", i+1, lvl.Name, lvl.ScoreTarget))
			if i == p.Unlocked {
				line += cursorStyle.Render(" *")
			}
		} else {
			line = lockedStyle.Render(fmt.Sprintf("Level %d  %-14s locked", i+1, lvl.Name))
		}
		b.WriteString(centerText(cursor+line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	pct := m.sess.Percent()
	b.WriteString(centerText(fmt.Sprintf("Progress %3.0f%%", pct), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(m.bar.ViewAs(pct/100), m.width))
	b.WriteString("\n\n")

	if status := m.sess.Status(); status != "" {
		b.WriteString(centerText(statusStyle.Render(" "+status+" "), m.width))
		b.WriteString("\n")
	}

	controls := "Up/Down: Choose  |  Enter: Play  |  1-5: Jump to level  |  R: Reset  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(footerStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Start           bool
	WantsScoreboard bool
	Quit            bool
	Config          core.RuntimeConfig
}

// RunMenu runs the level select and returns what the player chose.
func RunMenu(sess *session.Session, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(sess, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return menuResult(m), nil
}

func menuResult(m MenuModel) MenuResult {
	result := MenuResult{Config: m.Config()}
	switch {
	case m.openScoreboard:
		result.WantsScoreboard = true
	case m.start:
		result.Start = true
	default:
		result.Quit = true
	}
	return result
}
