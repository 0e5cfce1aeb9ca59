package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/banana/internal/core"
	"github.com/vovakirdan/banana/internal/game"
	"github.com/vovakirdan/banana/internal/platform/eventlog"
	"github.com/vovakirdan/banana/internal/render"
)

// footerHeight is the number of rows reserved below the playfield for help.
const footerHeight = 1

// Model is the Bubble Tea model for a running game.
type Model struct {
	game       *game.Game
	renderer   *render.Renderer
	screen     *core.Screen
	logger     *log.Logger
	keys       KeyMap
	help       help.Model
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
}

// NewModel creates a Bubble Tea model around g. A nil logger discards output.
func NewModel(g *game.Game, r *render.Renderer, logger *log.Logger, cfg core.RuntimeConfig) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       g,
		renderer:   r,
		screen:     core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-footerHeight, 1)),
		logger:     logger,
		keys:       DefaultKeyMap(),
		help:       h,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		gameState:  g.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("game started", "game", m.game.ID(), "tick_rate", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records the action for the next tick. Keys pressed between two
// ticks all land in the same input frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Copy):
		m.copyFrame()
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "score", m.gameState.Score, "tick", m.game.Snapshot().Tick)
		return m, tea.Quit
	}
	m.inputFrame.Set(action)
	return m, nil
}

// handleResize resizes the playfield. The world keeps its size; only the
// projection onto cells changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(msg.Height-footerHeight, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation step with the collected input.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) {
		if err := m.game.Reset(); err != nil {
			m.logger.Error("restart failed", "error", err)
		} else {
			m.logger.Info("restarted", "previous_score", m.gameState.Score)
		}
		m.gameState = m.game.State()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	wasPaused := m.gameState.Paused
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	if wasPaused != m.gameState.Paused {
		m.logger.Debug("pause toggled", "paused", m.gameState.Paused)
	}
	eventlog.Events(m.logger, m.game.Snapshot().Tick, result.Events)

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current playfield as plain text.
func (m *Model) saveScreenshot() {
	m.renderer.Draw(m.screen, m.game.Snapshot())

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path, err := xdg.DataFile(filepath.Join("banana", "screenshots", name))
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// copyFrame puts the current playfield on the system clipboard.
func (m *Model) copyFrame() {
	if clipboard.Unsupported {
		m.logger.Warn("clipboard unsupported on this system")
		return
	}
	m.renderer.Draw(m.screen, m.game.Snapshot())
	if err := clipboard.WriteAll(m.screen.String()); err != nil {
		m.logger.Warn("copy failed", "error", err)
		return
	}
	m.logger.Info("frame copied to clipboard")
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.renderer.Draw(m.screen, m.game.Snapshot())

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(ansi.Truncate(helpStyle.Render(m.help.View(m.keys)), m.screen.Width(), "…"))
	return b.String()
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(g *game.Game, r *render.Renderer, logger *log.Logger, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(g, r, logger, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
