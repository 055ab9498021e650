package hopper

import "github.com/vovakirdan/cubic-hopper/internal/core"

// Autopilot is a scripted input source for headless runs. It walks the
// menus to start a game and jumps when a spike comes into range.
type Autopilot struct {
	// MinGap and MaxGap bound the distance from the player's right edge to
	// a spike's left edge at which a grounded jump clears it.
	MinGap, MaxGap float64
	// Restart makes the pilot restart after a game over.
	Restart bool
}

// NewAutopilot creates a pilot tuned for the default physics.
func NewAutopilot(restart bool) *Autopilot {
	return &Autopilot{MinGap: 25, MaxGap: 60, Restart: restart}
}

// Decide returns the input for the next tick.
func (a *Autopilot) Decide(snap Snapshot) core.InputFrame {
	switch snap.Mode {
	case ModeMainMenu:
		if snap.MenuItems[wrap(snap.MenuSelected, len(snap.MenuItems))] == MenuPlay {
			return core.NewInputFrame(core.ActionConfirm)
		}
		return core.NewInputFrame(core.ActionUp)

	case ModeSettings:
		if snap.Settings.Current() == OptionBack {
			return core.NewInputFrame(core.ActionConfirm)
		}
		return core.NewInputFrame(core.ActionDown)

	case ModePlaying:
		if a.shouldJump(snap) {
			return core.NewInputFrame(core.ActionJump)
		}

	case ModeGameOver:
		if a.Restart {
			return core.NewInputFrame(core.ActionRestart)
		}
	}
	return core.NewInputFrame()
}

func (a *Autopilot) shouldJump(snap Snapshot) bool {
	p := snap.Player
	if p.Jumping || p.Dead {
		return false
	}
	front := p.X + p.Size
	for _, e := range snap.Entities {
		if e.Kind != KindSpike {
			continue
		}
		gap := e.X - front
		if gap >= a.MinGap && gap <= a.MaxGap {
			return true
		}
	}
	return false
}
