package hopper

// Resolver applies entity contacts to the player.
type Resolver struct {
	catalog        Catalog
	deathParticles int
	portalBurst    int
}

// NewResolver creates a resolver using the catalog's portal multipliers.
func NewResolver(catalog Catalog, deathParticles, portalParticles int) Resolver {
	return Resolver{
		catalog:        catalog,
		deathParticles: deathParticles,
		portalBurst:    portalParticles,
	}
}

// Resolve runs one collision pass. Spikes kill on full box overlap,
// portals fire on horizontal overlap alone and again on every tick the
// overlap lasts. Blocks, platforms and jump pads have no effect.
// Nothing happens once the player is dead. A spike that kills stays in
// the world and leaves with the rolling window like any other entity.
func (r Resolver) Resolve(p *Player, entities []Entity, ev *Events) {
	if p.Dead {
		return
	}

	box := p.Box()
	for _, e := range entities {
		switch e.Kind {
		case KindPortal:
			if !box.OverlapsX(e.Box()) {
				continue
			}
			p.ApplyPortalEffect(e.Portal, r.catalog.Multiplier(e.Portal))
			ev.AddSound(SoundPortal)
			ev.AddBurst(Burst{X: e.X, Y: e.Y, Count: r.portalBurst, Color: PortalColor(e.Portal)})
			// A size portal changes the box for the remaining checks.
			box = p.Box()

		case KindSpike:
			if !box.Intersects(e.Box()) {
				continue
			}
			if p.Die() {
				cx, cy := p.Center()
				ev.AddSound(SoundDeath)
				ev.AddBurst(Burst{X: cx, Y: cy, Count: r.deathParticles, Color: colorDeath})
			}

		case KindBlock, KindPlatform, KindJumpPad:
			// Decorative.
		}
	}
}
