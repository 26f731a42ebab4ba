package particles

import (
	"math"

	"gol-arcade/pkg/core"
	"gol-arcade/pkg/life"
)

// Particle is one ephemeral automaton-backed fragment: a tiny evolving grid
// that drifts across the playfield while it fades out.
type Particle struct {
	X, Y   float64
	VX, VY float64
	// Alpha is the current opacity; Fade is subtracted from it every tick,
	// saturating at 0.
	Alpha uint8
	Fade  uint8
	// Life is the remaining tick budget. Zero means spent; a negative value
	// disables the budget entirely.
	Life int
	// Grid is the particle's cell texture, throttled on the host's frame
	// counter like any other grid.
	Grid *life.Grid
	// Preset names the gradient the renderer fills the live cells with.
	Preset string
	// CellSize is the on-screen pixel size of one grid cell.
	CellSize float64

	dead bool
}

// Dead reports whether the particle has been marked for removal.
func (p *Particle) Dead() bool { return p.dead }

// tick advances one frame and then applies the death conditions in order:
// faded out, automaton extinct, out of bounds, budget spent. The first one
// that holds marks the particle dead.
func (p *Particle) tick(frameCounter int, m *Manager) {
	p.X += p.VX
	p.Y += p.VY
	if p.Grid != nil {
		p.Grid.UpdateThrottled(frameCounter)
	}
	if p.Fade >= p.Alpha {
		p.Alpha = 0
	} else {
		p.Alpha -= p.Fade
	}
	if p.Life > 0 {
		p.Life--
	}
	switch {
	case p.Alpha == 0:
		p.dead = true
	case p.Grid != nil && p.Grid.Population() == 0:
		p.dead = true
	case p.X < -m.margin || p.Y < -m.margin || p.X > m.width+m.margin || p.Y > m.height+m.margin:
		p.dead = true
	case p.Life == 0:
		p.dead = true
	}
}

// Manager owns the active particle set for one playfield. It is not safe
// for concurrent use; the host drives it from its update loop.
type Manager struct {
	width, height float64
	margin        float64
	parts         []*Particle
	reaped        int
}

// NewManager sizes the playfield used for bounds pruning. margin extends
// the kill boundary beyond the visible edges so particles finish fading
// off screen instead of popping.
func NewManager(width, height, margin float64) *Manager {
	return &Manager{width: width, height: height, margin: margin}
}

// Spawn adds one particle to the active set.
func (m *Manager) Spawn(p *Particle) {
	m.parts = append(m.parts, p)
}

// SpawnBurst scatters n automaton-backed particles radially from (x, y).
// Each particle gets its own small randomized grid so the debris keeps
// shimmering while it flies.
func (m *Manager) SpawnBurst(n int, x, y, speed float64, preset string, rng *core.RNG) {
	for i := 0; i < n; i++ {
		jitter := rng.Float64() * 0.5
		if rng.Bool() {
			jitter = -jitter
		}
		angle := 2*math.Pi*float64(i)/float64(n) + jitter
		v := speed * (0.5 + rng.Float64())
		side := 3 + rng.IntN(3)
		g := life.New(side, side, 2+rng.IntN(3))
		g.Randomize(rng.Source())
		// At least one live cell, so a burst never spawns already extinct.
		g.Cells()[(side/2)*side+side/2] = 1
		m.Spawn(&Particle{
			X:        x,
			Y:        y,
			VX:       math.Cos(angle) * v,
			VY:       math.Sin(angle) * v,
			Alpha:    0xff,
			Fade:     3 + rng.Uint8n(4),
			Life:     30 + rng.IntN(30),
			Grid:     g,
			Preset:   preset,
			CellSize: 2,
		})
	}
}

// Update advances every particle one tick and compacts the active set in
// place, dropping dead particles in the same tick their condition fired.
func (m *Manager) Update(frameCounter int) {
	live := m.parts[:0]
	for _, p := range m.parts {
		p.tick(frameCounter, m)
		if p.dead {
			m.reaped++
			continue
		}
		live = append(live, p)
	}
	// Zero the tail so dropped particles can be collected.
	for i := len(live); i < len(m.parts); i++ {
		m.parts[i] = nil
	}
	m.parts = live
}

// Particles exposes the active set for drawing. The slice is reused across
// Update calls and must not be retained.
func (m *Manager) Particles() []*Particle { return m.parts }

// Alive returns the active particle count.
func (m *Manager) Alive() int { return len(m.parts) }

// Reaped returns the total number of particles pruned since construction.
func (m *Manager) Reaped() int { return m.reaped }
