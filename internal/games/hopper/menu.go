package hopper

// MenuItem is an entry of the main menu.
type MenuItem int

const (
	MenuPlay MenuItem = iota
	MenuSettings
	MenuQuit
)

var menuItems = [...]MenuItem{MenuPlay, MenuSettings, MenuQuit}

// String returns the label shown for the item.
func (m MenuItem) String() string {
	switch m {
	case MenuPlay:
		return "Play"
	case MenuSettings:
		return "Settings"
	case MenuQuit:
		return "Quit"
	default:
		return "?"
	}
}

// MenuItems returns the main menu entries in display order.
func MenuItems() []MenuItem {
	return menuItems[:]
}

// Menu tracks the main menu cursor. It survives leaving and re-entering.
type Menu struct {
	Selected int
}

// Move shifts the cursor by delta with wrap-around.
func (m *Menu) Move(delta int) {
	m.Selected = wrap(m.Selected+delta, len(menuItems))
}

// Current returns the highlighted item.
func (m *Menu) Current() MenuItem {
	return menuItems[wrap(m.Selected, len(menuItems))]
}

// wrap maps i into [0, n).
func wrap(i, n int) int {
	return ((i % n) + n) % n
}
