package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cubic-hopper/internal/core"
	"github.com/vovakirdan/cubic-hopper/internal/games/hopper"
	"github.com/vovakirdan/cubic-hopper/internal/storage"
)

// Game is the simulation the model drives.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) hopper.StepResult
	Render(dst *core.Screen)
	Snapshot() hopper.Snapshot
	State() core.GameState
}

// SoundPlayer plays sound events at a volume in [0, 1].
type SoundPlayer interface {
	Play(event hopper.SoundEvent, volume float64)
}

// Options wires the model's side effects. Every field is optional.
type Options struct {
	Ledger *storage.Ledger
	Sound  SoundPlayer
	Logger *log.Logger
}

// Model is the Bubble Tea model running one game.
type Model struct {
	game       Game
	screen     *core.Screen
	ledger     *storage.Ledger
	sound      SoundPlayer
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       keyMap
	help       help.Model
	inputFrame core.InputFrame
	mode       hopper.Mode
	status     string
	statusTTL  int
	quitting   bool
}

// statusTicks is how long a status line stays visible.
const statusTicks = 120

// NewModel creates a model for game. The bottom row is kept for the help
// footer.
func NewModel(game Game, cfg core.RuntimeConfig, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(1, cfg.ScreenH-1)),
		ledger:     opts.Ledger,
		sound:      opts.Sound,
		logger:     logger,
		config:     cfg,
		keys:       newKeyMap(),
		help:       h,
		inputFrame: core.NewInputFrame(),
	}
}

// Init resets the game and starts the tick loop under the game title.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tea.Batch(tea.SetWindowTitle(m.game.Title()), tickCmd(m.config.TickRate))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(1, msg.Height-1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.MapKey(msg)
	if action == core.ActionQuit {
		m.logger.Info("quit requested")
		m.quitting = true
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	res := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()
	m.apply(res)

	if m.statusTTL > 0 {
		m.statusTTL--
		if m.statusTTL == 0 {
			m.status = ""
		}
	}

	if res.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

// apply performs the side effects of one step.
func (m *Model) apply(res hopper.StepResult) {
	m.mode = res.Mode
	if res.ModeChanged() {
		m.logger.Debug("mode changed", "from", res.PrevMode, "to", res.Mode)
	}

	if m.sound != nil && len(res.Events.Sounds) > 0 {
		snap := m.game.Snapshot()
		volume := snap.Settings.SFXLevel()
		for _, ev := range res.Events.Sounds {
			m.sound.Play(ev, volume)
		}
	}

	if s := res.Summary; s != nil {
		m.logger.Info("run finished",
			"score", s.Score,
			"best", s.HighScore,
			"distance", int(s.Distance),
			"zone", s.Zone,
			"difficulty", s.Difficulty,
		)
		m.recordRun(*s)
	}
}

func (m *Model) recordRun(s hopper.RunSummary) {
	if m.ledger == nil {
		return
	}
	_, err := m.ledger.RecordRun(RunFromSummary(s))
	if err != nil {
		m.logger.Warn("cannot record run", "err", err)
	}
}

// RunFromSummary converts a finished run into a ledger row.
func RunFromSummary(s hopper.RunSummary) storage.Run {
	return storage.Run{
		Score:      s.Score,
		Distance:   s.Distance,
		Zone:       s.Zone,
		Ticks:      s.Ticks,
		Difficulty: s.Difficulty,
	}
}

// saveScreenshot writes the current frame under the XDG state directory
// and copies it to the clipboard.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)
	frame := m.screen.String()

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path, err := xdg.StateFile(filepath.Join("hopper", "screenshots", name))
	if err == nil {
		err = os.WriteFile(path, []byte(frame), 0o600)
	}
	if err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		m.setStatus("screenshot failed")
		return
	}

	if err := clipboard.WriteAll(frame); err != nil {
		m.logger.Debug("clipboard unavailable", "err", err)
		m.setStatus("saved " + path)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
	m.setStatus("saved " + path + " (copied)")
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusTTL = statusTicks
}

// View renders the current frame and the footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	footer := m.help.View(m.keys.HelpFor(m.mode))
	if m.status != "" {
		footer = statusStyle.Render(m.status)
	}
	return RenderScreen(m.screen) + "\n" + footer
}

// Run starts the Bubble Tea program for game.
func Run(game Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
