package app

import (
	"gol-arcade/internal/render"
	"gol-arcade/pkg/core"
	"gol-arcade/pkg/life"
	"gol-arcade/pkg/life/pattern"
	"gol-arcade/pkg/population"
)

// Sprite is the capability the draw loop needs from any automaton-backed
// entity: a screen position plus the grid and gradient it renders with.
// Entity types satisfy it by composition instead of sharing one struct
// shape.
type Sprite interface {
	Position() (x, y float64)
	Grid() *life.Grid
	CellSize() float64
	Gradient() *render.Gradient
}

// field is a fixed grid region such as the backdrop or the tank.
type field struct {
	x, y float64
	cell float64
	grid *life.Grid
	fill *render.Gradient
}

func (f *field) Position() (float64, float64) { return f.x, f.y }
func (f *field) Grid() *life.Grid             { return f.grid }
func (f *field) CellSize() float64            { return f.cell }
func (f *field) Gradient() *render.Gradient   { return f.fill }

// showpiece is a drifting sprite carrying a canonical pattern.
type showpiece struct {
	x, y     float64
	vx, vy   float64
	cell     float64
	grid     *life.Grid
	fill     *render.Gradient
	cooldown int
}

func (s *showpiece) Position() (float64, float64) { return s.x, s.y }
func (s *showpiece) Grid() *life.Grid             { return s.grid }
func (s *showpiece) CellSize() float64            { return s.cell }
func (s *showpiece) Gradient() *render.Gradient   { return s.fill }

func (s *showpiece) width() float64  { return float64(s.grid.Cols()) * s.cell }
func (s *showpiece) height() float64 { return float64(s.grid.Rows()) * s.cell }

// center returns the sprite's visual midpoint.
func (s *showpiece) center() (float64, float64) {
	return s.x + s.width()/2, s.y + s.height()/2
}

// advance moves the piece one frame and bounces it off the play area
// walls, clamping back inside on contact.
func (s *showpiece) advance(w, h float64) {
	s.x += s.vx
	s.y += s.vy
	if s.x < 0 {
		s.x = 0
		s.vx = -s.vx
	}
	if right := w - s.width(); s.x > right {
		s.x = right
		s.vx = -s.vx
	}
	if s.y < 0 {
		s.y = 0
		s.vy = -s.vy
	}
	if bottom := h - s.height(); s.y > bottom {
		s.y = bottom
		s.vy = -s.vy
	}
}

const (
	backdropCell   = 8
	backdropPeriod = 4
	tankCell       = 6
	tankInset      = 96
	tankPeriod     = 3

	// The probe's hit circle derives from its visual sprite size, not from
	// its live-cell bounding box: shrinking the cosmetic pattern shrinks
	// the hitbox with it.
	probeRadiusFraction = 0.45

	popScore        = 100
	collideScore    = 25
	popCooldown     = 30
	collideCooldown = 45

	// Bursts may drift this far off screen before they are reaped.
	particleMargin = 64
)

// mustPreset resolves a built-in gradient; the names are compiled in, so a
// miss is a build defect.
func mustPreset(name string) *render.Gradient {
	g, ok := render.Lookup(name)
	if !ok {
		panic("app: unknown gradient preset " + name)
	}
	return g
}

// buildScene assembles the demo layout: a decorative backdrop kept stable
// by a DensityKeeper, a free tank under LifeForce control, the drifting
// showpieces, and the mouse probe.
func buildScene(cfg *Config, rng *core.RNG) (backdrop, tank *field, pieces []*showpiece, probe *showpiece) {
	w := float64(cfg.Width)
	h := float64(cfg.Height)

	bg := life.New(cfg.Width/backdropCell, cfg.Height/backdropCell, backdropPeriod)
	population.SeedRadial(bg, 0.3, 0.1, rng)
	backdrop = &field{cell: backdropCell, grid: bg, fill: mustPreset("lagoon")}

	tw := (cfg.Width - 2*tankInset) / tankCell
	th := (cfg.Height - 2*tankInset) / tankCell
	tg := life.New(tw, th, tankPeriod)
	population.SeedRadial(tg, 0.8, 0.2, rng)
	tank = &field{
		x:    tankInset,
		y:    tankInset,
		cell: tankCell,
		grid: tg,
		fill: mustPreset("verdant"),
	}

	type spec struct {
		pat    pattern.Pattern
		margin int
		period int
		cell   float64
		fill   string
		vx, vy float64
	}
	specs := []spec{
		{pattern.Pulsar, 2, 6, 5, "ember", 0.7, 0.5},
		{pattern.Beacon, 2, 8, 7, "ultraviolet", -0.9, 0.6},
		{pattern.Toad, 2, 8, 7, "verdant", 0.6, -0.8},
		{pattern.Glider, 2, 5, 6, "ember", -0.5, -0.4},
		{pattern.Blinker, 2, 7, 8, "ultraviolet", 0.8, -0.5},
	}
	for _, sp := range specs {
		pw, ph := sp.pat.Cells.Dims()
		g := life.New(pw+2*sp.margin, ph+2*sp.margin, sp.period)
		g.MarkOscillator(sp.pat, sp.margin, sp.margin)
		p := &showpiece{
			vx:   sp.vx,
			vy:   sp.vy,
			cell: sp.cell,
			grid: g,
			fill: mustPreset(sp.fill),
		}
		p.x = rng.Float64() * (w - p.width())
		p.y = rng.Float64() * (h - p.height())
		pieces = append(pieces, p)
	}

	// One frozen still life drifts along as a prop.
	bw, bh := pattern.Boat.Cells.Dims()
	bgGrid := life.New(bw+4, bh+4, 1)
	bgGrid.SetPattern(pattern.Boat.Cells, 2, 2)
	bgGrid.MarkStill()
	bgGrid.Freeze()
	boat := &showpiece{
		vx:   0.4,
		vy:   0.9,
		cell: 8,
		grid: bgGrid,
		fill: mustPreset("lagoon"),
	}
	boat.x = rng.Float64() * (w - boat.width())
	boat.y = rng.Float64() * (h - boat.height())
	pieces = append(pieces, boat)

	pg := life.New(3, 3, 1)
	pg.SetPattern(pattern.Tub.Cells, 0, 0)
	pg.MarkStill()
	pg.Freeze()
	probe = &showpiece{cell: 8, grid: pg, fill: mustPreset("ultraviolet")}

	return backdrop, tank, pieces, probe
}
