package hopper

import (
	"github.com/vovakirdan/cubic-hopper/internal/config"
	"github.com/vovakirdan/cubic-hopper/internal/core"
)

// Zone is a fixed-length band of the world with its own look.
type Zone struct {
	Name       string
	StartX     float64
	Length     float64
	Background RGB
	Palette    []RGB
	Tint       core.Color
}

// Contains reports whether x falls inside the zone.
func (z Zone) Contains(x float64) bool {
	return x >= z.StartX && x < z.StartX+z.Length
}

// BuildZones lays the configured zones end to end from x = 0.
func BuildZones(cfgs []config.ZoneConfig) []Zone {
	zones := make([]Zone, 0, len(cfgs))
	start := 0.0
	for _, zc := range cfgs {
		tint, ok := core.ParseColor(zc.Tint)
		if !ok {
			tint = core.ColorDefault
		}
		palette := make([]RGB, len(zc.Palette))
		for i, c := range zc.Palette {
			palette[i] = RGB(c)
		}
		zones = append(zones, Zone{
			Name:       zc.Name,
			StartX:     start,
			Length:     zc.Length,
			Background: RGB(zc.Background),
			Palette:    palette,
			Tint:       tint,
		})
		start += zc.Length
	}
	return zones
}

// ZoneIndex returns the index of the zone containing x. When no zone
// contains x (past the last one) current is returned unchanged.
func ZoneIndex(zones []Zone, x float64, current int) int {
	for i, z := range zones {
		if z.Contains(x) {
			return i
		}
	}
	return current
}
