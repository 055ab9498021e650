package hopper

import (
	"github.com/vovakirdan/cubic-hopper/internal/config"
	"github.com/vovakirdan/cubic-hopper/internal/core"
)

// Kind tags what an entity is; collision dispatch switches on it.
type Kind int

const (
	KindBlock Kind = iota
	KindSpike
	KindPlatform
	KindJumpPad
	KindPortal
)

// String returns the display name of the kind.
func (k Kind) String() string {
	switch k {
	case KindBlock:
		return "block"
	case KindSpike:
		return "spike"
	case KindPlatform:
		return "platform"
	case KindJumpPad:
		return "jump_pad"
	case KindPortal:
		return "portal"
	default:
		return "unknown"
	}
}

// PortalKind selects which player multiplier a portal changes.
type PortalKind int

const (
	PortalSpeed PortalKind = iota
	PortalGravity
	PortalSize
)

// portalKinds is the uniform draw set for the generator.
var portalKinds = [...]PortalKind{PortalSpeed, PortalGravity, PortalSize}

// String returns the display name of the portal kind.
func (p PortalKind) String() string {
	switch p {
	case PortalSpeed:
		return "speed"
	case PortalGravity:
		return "gravity"
	case PortalSize:
		return "size"
	default:
		return "unknown"
	}
}

// Entity is anything in the world besides the player.
// Kind and box never change after creation; only the position does.
type Entity struct {
	Kind        Kind
	Portal      PortalKind // meaningful only for KindPortal
	X, Y        float64    // top-left corner in world units
	W, H        float64
	ScrollSpeed float64
}

// Box returns the collision box of the entity.
func (e Entity) Box() core.Box {
	return core.NewBox(e.X, e.Y, e.W, e.H)
}

// Right returns the x coordinate of the right edge.
func (e Entity) Right() float64 {
	return e.X + e.W
}

// Advance moves the entity left by its scroll speed.
func (e *Entity) Advance() {
	e.X -= e.ScrollSpeed
}

// Catalog builds entities with the dimensions from the config.
type Catalog struct {
	entities config.EntityConfig
	portals  config.PortalConfig
}

// NewCatalog creates a catalog for the given entity and portal settings.
func NewCatalog(entities config.EntityConfig, portals config.PortalConfig) Catalog {
	return Catalog{entities: entities, portals: portals}
}

// Obstacle creates a block, spike or platform at (x, y).
func (c Catalog) Obstacle(kind Kind, x, y float64) Entity {
	e := Entity{Kind: kind, X: x, Y: y, ScrollSpeed: c.entities.ScrollSpeed}
	switch kind {
	case KindSpike:
		e.W, e.H = c.entities.SpikeSize, c.entities.SpikeSize
	case KindPlatform:
		e.W, e.H = c.entities.PlatformWidth, c.entities.PlatformHeight
	default:
		e.Kind = KindBlock
		e.W, e.H = c.entities.BlockSize, c.entities.BlockSize
	}
	return e
}

// JumpPad creates a jump pad at (x, y).
func (c Catalog) JumpPad(x, y float64) Entity {
	return Entity{
		Kind:        KindJumpPad,
		X:           x,
		Y:           y,
		W:           c.entities.PadWidth,
		H:           c.entities.PadHeight,
		ScrollSpeed: c.entities.ScrollSpeed,
	}
}

// Portal creates a portal of the given kind at (x, y).
func (c Catalog) Portal(kind PortalKind, x, y float64) Entity {
	return Entity{
		Kind:        KindPortal,
		Portal:      kind,
		X:           x,
		Y:           y,
		W:           c.portals.Width,
		H:           c.portals.Height,
		ScrollSpeed: c.entities.ScrollSpeed,
	}
}

// Multiplier returns the multiplier a portal of the given kind applies.
func (c Catalog) Multiplier(kind PortalKind) float64 {
	switch kind {
	case PortalSpeed:
		return c.portals.SpeedMultiplier
	case PortalGravity:
		return c.portals.GravityMultiplier
	case PortalSize:
		return c.portals.SizeMultiplier
	default:
		return 1
	}
}
