package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/grapplecore/internal/core"
	"github.com/vovakirdan/grapplecore/internal/storage"
)

// helpMinRows is the terminal height from which a help line fits under the
// game.
const helpMinRows = 25

// RunRecorder stores finished lives.
type RunRecorder interface {
	SaveRun(r storage.RunRecord) (int64, error)
}

// Model is the Bubble Tea model for playing Grapplecore.
type Model struct {
	game       Game
	screen     *core.Screen
	runs       RunRecorder
	logger     *log.Logger
	keys       KeyMap
	help       help.Model
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	showHelp   bool
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// runs may be nil; finished lives are then only logged.
func NewModel(game Game, runs RunRecorder, logger *log.Logger, cfg core.RuntimeConfig) Model {
	if logger == nil {
		logger = log.New(os.Stderr)
	}

	m := Model{
		game:       game,
		runs:       runs,
		logger:     logger,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.gameRows(cfg.ScreenH))
	m.game.Reset(m.gameConfig())
	return m
}

// gameRows returns how many rows the game may draw into.
func (m *Model) gameRows(height int) int {
	m.showHelp = height >= helpMinRows
	if m.showHelp {
		return height - 1
	}
	return height
}

func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = m.screen.Height()
	return cfg
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("game started", "game", m.game.ID(), "fps", m.config.TickRate)
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

// handleKey records the key's action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	m.keys.MapKeyToFrame(msg, &m.inputFrame)
	return m, nil
}

// handleResize resizes the screen buffer. The simulation keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, m.gameRows(msg.Height))
	m.help.Width = msg.Width

	if r, ok := m.game.(resizer); ok {
		r.Resize(m.screen.Width(), m.screen.Height())
	}
	return m, nil
}

// handleTick runs one simulation step and reacts to its events.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	for _, ev := range result.Events {
		m.record(ev)
	}

	if m.gameState.Quit {
		m.logger.Info("game quit", "escapes", m.gameState.Score)
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// record logs a simulation event and stores finished lives.
func (m Model) record(ev core.Event) {
	LogEvent(m.logger, ev)

	run, ok := storage.RunFromEvent(ev)
	if !ok || m.runs == nil {
		return
	}
	if _, err := m.runs.SaveRun(run); err != nil {
		m.logger.Error("could not save run", "error", err)
	}
}

// LogEvent writes one simulation event as a structured log line. Rejected
// intents are debug noise and deaths are warnings.
func LogEvent(logger *log.Logger, ev core.Event) {
	kv := []any{"tick", ev.Tick, "life", ev.Life, "x", ev.X, "y", ev.Y, "amber", ev.Amber, "turns", ev.Turns}
	if ev.Cause != "" {
		kv = append(kv, "cause", ev.Cause)
	}

	switch ev.Kind {
	case core.EventIntentRejected:
		logger.Debug(ev.Kind.String(), kv...)
	case core.EventDied:
		logger.Warn(ev.Kind.String(), kv...)
	default:
		logger.Info(ev.Kind.String(), kv...)
	}
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".grapplecore", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	view := RenderScreen(m.screen)

	if m.showHelp {
		helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
		view += "\n" + helpStyle.Render(m.help.View(m.keys))
	}
	return view
}

// Run starts the Bubble Tea program for the given game.
func Run(game Game, runs RunRecorder, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, runs, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
