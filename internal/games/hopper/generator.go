package hopper

import "math"

// Rand is the random source the generator draws from. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Spawner produces level segments on demand.
type Spawner interface {
	GenerateSegment(startX, difficulty int) []Entity
}

// Generator lays out segments of obstacles, portals and jump pads.
// Difficulty must be >= 0; all tuning uses integer division.
type Generator struct {
	rng     Rand
	catalog Catalog
	screenH int
}

// NewGenerator creates a generator for a playfield of the given height.
func NewGenerator(rng Rand, catalog Catalog, screenH float64) *Generator {
	return &Generator{rng: rng, catalog: catalog, screenH: int(screenH)}
}

// ObstacleCount returns how many obstacles a segment holds.
func ObstacleCount(difficulty int) int {
	return max(3, 3+difficulty/1000)
}

// SpikeWeight returns the spike weight against block and platform weights of 1.
func SpikeWeight(difficulty int) int {
	return min(10, 2+difficulty/500)
}

// PortalChance returns the probability of a portal before each obstacle.
func PortalChance(difficulty int) float64 {
	return math.Min(0.4, 0.1+float64(difficulty)/10000)
}

// JumpPadChance returns the probability of a jump pad before each obstacle.
func JumpPadChance(difficulty int) float64 {
	return math.Min(0.5, 0.3+float64(difficulty)/5000)
}

// MinSpace returns the smallest gap between consecutive obstacles.
func MinSpace(difficulty int) int {
	return max(100, 200-difficulty/1000)
}

// MaxSpace returns the largest gap between consecutive obstacles.
func MaxSpace(difficulty int) int {
	return max(MinSpace(difficulty)+50, 300-difficulty/800)
}

// Weights returns the {block, spike, platform} draw weights.
func Weights(difficulty int) [3]int {
	return [3]int{1, SpikeWeight(difficulty), 1}
}

// GenerateSegment returns the entities of one segment in placement order.
// Each slot may emit a portal 150 units and a jump pad 100 units ahead of
// its obstacle.
func (g *Generator) GenerateSegment(startX, difficulty int) []Entity {
	count := ObstacleCount(difficulty)
	weights := Weights(difficulty)
	portalChance := PortalChance(difficulty)
	padChance := JumpPadChance(difficulty)
	minSpace, maxSpace := MinSpace(difficulty), MaxSpace(difficulty)

	out := make([]Entity, 0, count*3)
	x := startX
	for i := 0; i < count; i++ {
		kind := g.pickObstacle(weights)

		y := g.screenH - 150
		if kind == KindPlatform {
			y = g.randRange(g.screenH-250, g.screenH-200)
		}

		if g.rng.Float64() < portalChance {
			pk := portalKinds[g.rng.Intn(len(portalKinds))]
			out = append(out, g.catalog.Portal(pk, float64(x-150), float64(g.screenH-200)))
		}
		if g.rng.Float64() < padChance {
			out = append(out, g.catalog.JumpPad(float64(x-100), float64(g.screenH-160)))
		}

		out = append(out, g.catalog.Obstacle(kind, float64(x), float64(y)))
		x += g.randRange(minSpace, maxSpace)
	}
	return out
}

// pickObstacle draws block, spike or platform by weight.
func (g *Generator) pickObstacle(w [3]int) Kind {
	r := g.rng.Intn(w[0] + w[1] + w[2])
	switch {
	case r < w[0]:
		return KindBlock
	case r < w[0]+w[1]:
		return KindSpike
	default:
		return KindPlatform
	}
}

// randRange returns a uniform integer in [lo, hi].
func (g *Generator) randRange(lo, hi int) int {
	return lo + g.rng.Intn(hi-lo+1)
}
