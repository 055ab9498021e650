package hopper

import "github.com/vovakirdan/cubic-hopper/internal/config"

// Camera is the world offset of the view's top-left corner.
type Camera struct {
	X, Y float64

	width, height float64
	lead          float64
	smoothing     float64
}

// NewCamera creates a camera for a view of the given size.
func NewCamera(cfg config.CameraConfig, width, height float64) *Camera {
	return &Camera{
		width:     width,
		height:    height,
		lead:      cfg.LeadFraction,
		smoothing: cfg.Smoothing,
	}
}

// Update snaps x so the target sits at the lead fraction of the width and
// eases y toward centring the target. Bounds are not clamped.
func (c *Camera) Update(targetX, targetY float64) {
	c.X = targetX - c.width*c.lead
	c.Y += (targetY - c.height/2 - c.Y) * c.smoothing
}

// Reset returns the camera to the origin.
func (c *Camera) Reset() {
	c.X, c.Y = 0, 0
}
