package population

import (
	"math"

	"gol-arcade/pkg/core"
	"gol-arcade/pkg/geom"
	"gol-arcade/pkg/life"
)

// LifeForceConfig bounds the rule-respecting density controller.
type LifeForceConfig struct {
	// FloorFrac and CeilingFrac size the target band relative to grid
	// capacity (cols*rows).
	FloorFrac   float64
	CeilingFrac float64
	// MaxAdjust caps how many cells one Apply may revive or kill.
	MaxAdjust int
}

// DefaultLifeForceConfig returns the band used by the arcade demo.
func DefaultLifeForceConfig() LifeForceConfig {
	return LifeForceConfig{FloorFrac: 0.08, CeilingFrac: 0.45, MaxAdjust: 96}
}

// LifeForce nudges a free-evolution grid's population toward a target band
// while respecting the rule's emergent texture: revived cells always touch
// the existing live set, never open dead space. It is a damping loop, not a
// clamp; a tick may overshoot the band and self-correct on later ticks.
// Hosts apply it once per executed step and never combine it with a
// DensityKeeper on the same grid.
type LifeForce struct {
	cfg LifeForceConfig
	rng *core.RNG

	// scratch index buffer reused across applications.
	candidates []int
}

// NewLifeForce builds a controller around the injected random source.
func NewLifeForce(cfg LifeForceConfig, rng *core.RNG) *LifeForce {
	return &LifeForce{cfg: cfg, rng: rng}
}

// Band returns the absolute [floor, ceiling] live-cell counts for g.
func (lf *LifeForce) Band(g *life.Grid) (floor, ceiling int) {
	capacity := float64(g.Cols() * g.Rows())
	floor = int(lf.cfg.FloorFrac * capacity)
	ceiling = int(lf.cfg.CeilingFrac * capacity)
	return floor, ceiling
}

// Apply measures g against the band and revives or kills a bounded number
// of cells. Only FreeEvolution grids are touched. Returns the net cell
// delta: positive for revivals, negative for kills, zero when in band.
func (lf *LifeForce) Apply(g *life.Grid) int {
	if g.Mode() != life.FreeEvolution {
		return 0
	}
	pop := g.Population()
	floor, ceiling := lf.Band(g)
	switch {
	case pop < floor:
		want := floor - pop
		if want > lf.cfg.MaxAdjust {
			want = lf.cfg.MaxAdjust
		}
		return lf.revive(g, want)
	case pop > ceiling:
		want := pop - ceiling
		if want > lf.cfg.MaxAdjust {
			want = lf.cfg.MaxAdjust
		}
		return -lf.kill(g, want)
	}
	return 0
}

// revive turns up to want dead cells live, choosing uniformly among dead
// cells with at least one live neighbor. The candidate set is fixed before
// any mutation so cells revived this pass do not seed further revivals.
func (lf *LifeForce) revive(g *life.Grid, want int) int {
	if want <= 0 {
		return 0
	}
	cells := g.Cells()
	cols, rows := g.Cols(), g.Rows()
	lf.candidates = lf.candidates[:0]
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			idx := y*cols + x
			if cells[idx] != 0 {
				continue
			}
			if hasLiveNeighbor(cells, cols, rows, x, y) {
				lf.candidates = append(lf.candidates, idx)
			}
		}
	}
	return lf.pick(cells, want, 1)
}

// kill turns up to want live cells dead, chosen uniformly.
func (lf *LifeForce) kill(g *life.Grid, want int) int {
	if want <= 0 {
		return 0
	}
	cells := g.Cells()
	lf.candidates = lf.candidates[:0]
	for idx, v := range cells {
		if v != 0 {
			lf.candidates = append(lf.candidates, idx)
		}
	}
	return lf.pick(cells, want, 0)
}

// pick applies value to want randomly drawn candidate cells using a partial
// Fisher-Yates pass over the scratch buffer.
func (lf *LifeForce) pick(cells []uint8, want int, value uint8) int {
	n := len(lf.candidates)
	if n == 0 {
		return 0
	}
	if want > n {
		want = n
	}
	for i := 0; i < want; i++ {
		j := i + lf.rng.IntN(n-i)
		lf.candidates[i], lf.candidates[j] = lf.candidates[j], lf.candidates[i]
		cells[lf.candidates[i]] = value
	}
	return want
}

func hasLiveNeighbor(cells []uint8, cols, rows, x, y int) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := x + dx
			ny := y + dy
			if nx < 0 || nx >= cols || ny < 0 || ny >= rows {
				continue
			}
			if cells[ny*cols+nx] != 0 {
				return true
			}
		}
	}
	return false
}

// DensityKeeperConfig bounds the rule-agnostic maintenance passes.
type DensityKeeperConfig struct {
	// TargetFrac is the live fraction the keeper pulls toward.
	TargetFrac float64
	// Cadence is the frame interval between passes, coarser than a step.
	Cadence int
	// MaxToggle caps how many cells one pass may flip.
	MaxToggle int
}

// DefaultDensityKeeperConfig returns the cadence used for backdrop grids.
func DefaultDensityKeeperConfig() DensityKeeperConfig {
	return DensityKeeperConfig{TargetFrac: 0.22, Cadence: 30, MaxToggle: 96}
}

// DensityKeeper holds decorative grids near a target live fraction by
// toggling random cells directly, ignoring neighbor structure. Cheaper and
// cruder than LifeForce; meant for backdrops where visual stability beats
// rule fidelity. Never run it on a grid that is under LifeForce.
type DensityKeeper struct {
	cfg DensityKeeperConfig
	rng *core.RNG
}

// NewDensityKeeper builds a keeper around the injected random source.
func NewDensityKeeper(cfg DensityKeeperConfig, rng *core.RNG) *DensityKeeper {
	if cfg.Cadence < 1 {
		cfg.Cadence = 1
	}
	return &DensityKeeper{cfg: cfg, rng: rng}
}

// Apply runs one maintenance pass when frameCounter lands on the keeper's
// cadence. Cells are probed at random; a bounded number of tries keeps the
// pass cheap, so a single pass may close only part of the gap. Returns the
// net cell delta.
func (dk *DensityKeeper) Apply(g *life.Grid, frameCounter int) int {
	if frameCounter%dk.cfg.Cadence != 0 {
		return 0
	}
	cells := g.Cells()
	capacity := len(cells)
	target := int(math.Round(dk.cfg.TargetFrac * float64(capacity)))
	gap := target - g.Population()
	if gap == 0 {
		return 0
	}
	want := gap
	if want < 0 {
		want = -want
	}
	if want > dk.cfg.MaxToggle {
		want = dk.cfg.MaxToggle
	}
	flipped := 0
	for tries := 0; tries < want*8 && flipped < want; tries++ {
		idx := dk.rng.IntN(capacity)
		switch {
		case gap > 0 && cells[idx] == 0:
			cells[idx] = 1
			flipped++
		case gap < 0 && cells[idx] != 0:
			cells[idx] = 0
			flipped++
		}
	}
	if gap < 0 {
		return -flipped
	}
	return flipped
}

// SeedRadial populates g once with a per-cell live probability that
// interpolates linearly from centerProb at the grid center to edgeProb at
// the corners. Existing content is overwritten. Used for grids that carry
// no canonical stamped pattern.
func SeedRadial(g *life.Grid, centerProb, edgeProb float64, rng *core.RNG) {
	cols, rows := g.Cols(), g.Rows()
	cells := g.Cells()
	cx := float64(cols-1) / 2
	cy := float64(rows-1) / 2
	maxDist := math.Hypot(cx, cy)
	if maxDist == 0 {
		maxDist = 1
	}
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			d := math.Hypot(float64(x)-cx, float64(y)-cy) / maxDist
			p := geom.Lerp(centerProb, edgeProb, geom.Clamp(d, 0, 1))
			idx := y*cols + x
			cells[idx] = 0
			if rng.Chance(p) {
				cells[idx] = 1
			}
		}
	}
}
