package hopper

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/cubic-hopper/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar     = '■'
	PlayerSpinChar = '◆'
	BlockChar      = '█'
	SpikeChar      = '▲'
	PlatformChar   = '▬'
	PadChar        = '▂'
	PortalChar     = '║'
	GroundChar     = '▓'
	GridChar       = '·'
	ParticleChar   = '*'
	BarChar        = '█'
)

// gridSpacing is the world-unit distance between background grid dots.
const gridSpacing = 80

// viewport projects world units onto screen cells.
type viewport struct {
	camX, camY float64
	sx, sy     float64
}

func newViewport(dst *core.Screen, snap Snapshot) viewport {
	return viewport{
		camX: snap.CameraX,
		camY: snap.CameraY,
		sx:   float64(dst.Width()) / snap.ScreenW,
		sy:   float64(dst.Height()) / snap.ScreenH,
	}
}

func (v viewport) cell(x, y float64) (int, int) {
	return int(math.Floor((x - v.camX) * v.sx)), int(math.Floor((y - v.camY) * v.sy))
}

func (v viewport) rect(x, y, w, h float64) core.Rect {
	cx, cy := v.cell(x, y)
	cw := max(1, int(math.Round(w*v.sx)))
	ch := max(1, int(math.Round(h*v.sy)))
	return core.NewRect(cx, cy, cw, ch)
}

// renderSnapshot draws one frame for the snapshot's mode.
func renderSnapshot(dst *core.Screen, snap Snapshot, particles []Particle) {
	dst.Clear()

	switch snap.Mode {
	case ModeMainMenu:
		drawMainMenu(dst, snap)
	case ModeSettings:
		drawSettings(dst, snap)
	case ModeLoading:
		drawLoading(dst, snap)
	case ModePlaying, ModePaused:
		drawWorld(dst, snap, particles)
		drawHUD(dst, snap)
	case ModeRespawning:
		drawWorld(dst, snap, particles)
		drawHUD(dst, snap)
		drawRespawnBanner(dst, snap)
	case ModeGameOver:
		drawWorld(dst, snap, particles)
		drawGameOver(dst, snap)
	}
}

func drawWorld(dst *core.Screen, snap Snapshot, particles []Particle) {
	v := newViewport(dst, snap)
	tint := snap.Zone.Tint

	// Background grid scrolls with the camera.
	startX := math.Floor(snap.CameraX/gridSpacing) * gridSpacing
	startY := math.Floor(snap.CameraY/gridSpacing) * gridSpacing
	for wy := startY; wy < snap.CameraY+snap.ScreenH; wy += gridSpacing {
		for wx := startX; wx < snap.CameraX+snap.ScreenW; wx += gridSpacing {
			cx, cy := v.cell(wx, wy)
			dst.SetColored(cx, cy, GridChar, core.ColorGray)
		}
	}

	// Ground fills everything below the player's resting bottom edge.
	_, groundRow := v.cell(0, snap.GroundLine)
	for y := max(0, groundRow); y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), GroundChar, tint)
	}

	for _, e := range snap.Entities {
		drawEntity(dst, v, e)
	}

	for _, p := range particles {
		cx, cy := v.cell(p.X, p.Y)
		dst.SetColored(cx, cy, ParticleChar, nearestColor(p.Color))
	}

	drawPlayer(dst, v, snap)
}

func drawEntity(dst *core.Screen, v viewport, e Entity) {
	r := v.rect(e.X, e.Y, e.W, e.H)
	switch e.Kind {
	case KindBlock:
		dst.DrawRect(r, BlockChar, core.ColorRed)
	case KindSpike:
		dst.DrawRect(r, SpikeChar, core.ColorBrightRed)
	case KindPlatform:
		dst.DrawRect(r, PlatformChar, core.ColorBrightWhite)
	case KindJumpPad:
		dst.DrawRect(r, PadChar, core.ColorYellow)
	case KindPortal:
		dst.DrawRect(r, PortalChar, nearestColor(PortalColor(e.Portal)))
	}
}

func drawPlayer(dst *core.Screen, v viewport, snap Snapshot) {
	p := snap.Player
	r := v.rect(p.X, p.Y, p.Size, p.Size)

	ch := PlayerChar
	if p.Jumping && int(math.Mod(math.Abs(p.Rotation), 90)) >= 45 {
		ch = PlayerSpinChar
	}
	c := core.ColorBrightBlue
	switch {
	case p.Dead:
		c = core.ColorBlue
	case snap.Mode == ModeRespawning && snap.Tick%10 < 5:
		c = core.ColorBrightWhite
	}
	dst.DrawRect(r, ch, c)
}

func drawHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawTextColored(1, 0, fmt.Sprintf(" Score: %d ", snap.Score), core.ColorBrightWhite)

	p := snap.Player
	var mods []string
	if p.SpeedMultiplier != 1 {
		mods = append(mods, fmt.Sprintf("spd x%.1f", p.SpeedMultiplier))
	}
	if p.GravityMultiplier != 1 {
		mods = append(mods, fmt.Sprintf("grav x%g", p.GravityMultiplier))
	}
	if p.SizeMultiplier != 1 {
		mods = append(mods, fmt.Sprintf("size x%.1f", p.SizeMultiplier))
	}

	right := fmt.Sprintf(" %s  %.0fm ", strings.ToUpper(snap.Zone.Name), p.Distance)
	if len(mods) > 0 {
		right = " " + strings.Join(mods, "  ") + " |" + right
	}
	dst.DrawTextColored(dst.Width()-len([]rune(right))-1, 0, right, snap.Zone.Tint)
}

func drawRespawnBanner(dst *core.Screen, snap Snapshot) {
	seconds := int(math.Ceil(float64(snap.RespawnRemaining) / float64(max(1, snap.TickRate))))
	dst.DrawTextCentered(2, fmt.Sprintf("GET READY  %d", seconds), core.ColorBrightYellow)
}

func drawMainMenu(dst *core.Screen, snap Snapshot) {
	h := dst.Height()

	// Scrolling stripes behind the title.
	for i := 0; i < h; i += 4 {
		y := (i + snap.Tick/6) % h
		dst.DrawHLine(0, y, dst.Width(), '─', core.ColorBlue)
	}

	dst.DrawTextCentered(h/4, " C U B I C   H O P P E R ", core.ColorBrightCyan)

	for i, item := range snap.MenuItems {
		label := "  " + item.String() + "  "
		c := core.ColorWhite
		if i == snap.MenuSelected {
			label = "▶ " + item.String() + " ◀"
			c = core.ColorBrightCyan
		}
		dst.DrawTextCentered(h/2+i*2, label, c)
	}
}

func drawSettings(dst *core.Screen, snap Snapshot) {
	h := dst.Height()
	dst.DrawTextCentered(h/5, "SETTINGS", core.ColorBrightWhite)

	s := snap.Settings
	for i, opt := range SettingsOptions() {
		var label string
		switch opt {
		case OptionMusicVolume:
			label = fmt.Sprintf("Music Volume: %d%%", s.MusicVolume)
		case OptionSFXVolume:
			label = fmt.Sprintf("SFX Volume: %d%%", s.SFXVolume)
		case OptionDifficulty:
			label = "Difficulty: " + s.DifficultyName()
		default:
			label = opt.String()
		}

		c := core.ColorWhite
		if i == s.Selected {
			c = core.ColorBrightCyan
			if opt == OptionBack {
				label = "▶ " + label + " ◀"
			} else {
				label = "◀ " + label + " ▶"
			}
		}
		dst.DrawTextCentered(h/3+i*2, label, c)
	}
}

func drawLoading(dst *core.Screen, snap Snapshot) {
	w, h := dst.Width(), dst.Height()
	barW := max(10, w/2)
	box := core.NewRect((w-barW)/2-1, h/2-1, barW+2, 3)
	dst.DrawBox(box, core.ColorBlue)

	filled := barW * min(100, snap.LoadingProgress) / 100
	dst.DrawHLine(box.X+1, box.Y+1, filled, BarChar, core.ColorBrightCyan)

	dots := strings.Repeat(".", (snap.Tick/30)%4)
	dst.DrawTextCentered(h/2+3, "Loading"+dots, core.ColorWhite)
}

func drawGameOver(dst *core.Screen, snap Snapshot) {
	lines := []struct {
		text  string
		color core.Color
	}{
		{"Game Over!", core.ColorBrightWhite},
		{"", core.ColorDefault},
		{fmt.Sprintf("Score: %d", snap.Score), core.ColorYellow},
		{fmt.Sprintf("Best: %d", snap.HighScore), core.ColorGray},
		{"", core.ColorDefault},
		{"Press SPACE to Restart", core.ColorWhite},
	}

	boxW := 28
	boxH := len(lines) + 2
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightBlue)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+1+i, l.text, l.color)
	}
}

// terminalColors are the RGB anchors for nearestColor.
var terminalColors = []struct {
	rgb RGB
	c   core.Color
}{
	{RGB{0, 0, 255}, core.ColorBlue},
	{RGB{255, 0, 0}, core.ColorRed},
	{RGB{0, 255, 0}, core.ColorBrightGreen},
	{RGB{34, 139, 34}, core.ColorGreen},
	{RGB{255, 255, 0}, core.ColorYellow},
	{RGB{255, 165, 0}, core.ColorOrange},
	{RGB{147, 0, 211}, core.ColorPurple},
	{RGB{0, 255, 255}, core.ColorCyan},
	{RGB{255, 255, 255}, core.ColorBrightWhite},
	{RGB{128, 128, 128}, core.ColorGray},
}

// nearestColor maps an RGB colour to the closest terminal colour.
func nearestColor(rgb RGB) core.Color {
	best, bestDist := core.ColorDefault, math.MaxFloat64
	for _, tc := range terminalColors {
		dr := float64(rgb[0]) - float64(tc.rgb[0])
		dg := float64(rgb[1]) - float64(tc.rgb[1])
		db := float64(rgb[2]) - float64(tc.rgb[2])
		if d := dr*dr + dg*dg + db*db; d < bestDist {
			best, bestDist = tc.c, d
		}
	}
	return best
}
