package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cubic-hopper/internal/core"
	"github.com/vovakirdan/cubic-hopper/internal/games/hopper"
)

// keyMap defines all keybindings for the game.
type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Jump       key.Binding
	Confirm    key.Binding
	Back       key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "decrease"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "increase"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "jump"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "menu"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r/space", "restart"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to a game action.
// Quit and Screenshot are handled by the host and map to themselves.
func (k keyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Jump):
		return core.ActionJump
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm
	case key.Matches(msg, k.Back):
		return core.ActionBack
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// modeHelp is the help.KeyMap for one session mode.
type modeHelp []key.Binding

func (h modeHelp) ShortHelp() []key.Binding { return h }

func (h modeHelp) FullHelp() [][]key.Binding { return [][]key.Binding{h} }

// HelpFor returns the bindings that do something in mode.
func (k keyMap) HelpFor(mode hopper.Mode) modeHelp {
	switch mode {
	case hopper.ModeMainMenu:
		return modeHelp{k.Up, k.Down, k.Confirm, k.Quit}
	case hopper.ModeSettings:
		return modeHelp{k.Up, k.Down, k.Left, k.Right, k.Confirm}
	case hopper.ModePlaying:
		return modeHelp{k.Jump, k.Back, k.Screenshot, k.Quit}
	case hopper.ModeGameOver:
		return modeHelp{k.Restart, k.Screenshot, k.Quit}
	default:
		return modeHelp{k.Screenshot, k.Quit}
	}
}
