package life

import (
	"fmt"
	"math/rand/v2"

	"gol-arcade/pkg/core"
	"gol-arcade/pkg/life/pattern"
)

// Mode tags how a grid's contents are meant to evolve over a run.
type Mode uint8

const (
	// FreeEvolution grids run the plain rule and may take population nudging.
	FreeEvolution Mode = iota
	// FrozenStill marks intentionally static content such as stamped still
	// lifes used as props.
	FrozenStill
	// CanonicalOscillator marks a grid stamped with a known oscillator that
	// the host snaps back to its textbook phase once per period.
	CanonicalOscillator
)

// String returns the mode identifier.
func (m Mode) String() string {
	switch m {
	case FreeEvolution:
		return "free"
	case FrozenStill:
		return "still"
	case CanonicalOscillator:
		return "oscillator"
	}
	return fmt.Sprintf("mode(%d)", uint8(m))
}

// oscillator remembers the stamped pattern so the grid can be resynced to
// its canonical phase.
type oscillator struct {
	pat   pattern.Pattern
	offX  int
	offY  int
	phase int
}

// Grid is a bounded Conway B3/S23 board. Cells outside the edges are
// permanently dead, so patterns evolve differently near walls than on an
// unbounded plane. Dimensions are fixed at construction; all mutation runs
// on the caller's goroutine.
type Grid struct {
	cols, rows int
	cur, nxt   []uint8
	generation uint64
	frozen     bool
	mode       Mode
	osc        oscillator

	// updatePeriodTicks throttles UpdateThrottled: the grid steps only on
	// frames where the counter lands on a multiple of it.
	updatePeriodTicks int
}

// New allocates a dead grid. updatePeriodTicks below 1 is clamped to 1
// (step every frame). Non-positive dimensions are a programming error and
// panic.
func New(cols, rows, updatePeriodTicks int) *Grid {
	if cols <= 0 || rows <= 0 {
		panic(fmt.Sprintf("life: non-positive grid size %dx%d", cols, rows))
	}
	if updatePeriodTicks < 1 {
		updatePeriodTicks = 1
	}
	cells := make([]uint8, cols*rows)
	return &Grid{
		cols:              cols,
		rows:              rows,
		cur:               cells,
		nxt:               make([]uint8, len(cells)),
		updatePeriodTicks: updatePeriodTicks,
	}
}

// Cols returns the grid width in cells.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the grid height in cells.
func (g *Grid) Rows() int { return g.rows }

// Generation returns how many steps have executed since construction.
func (g *Grid) Generation() uint64 { return g.generation }

// Mode returns the grid's evolution mode.
func (g *Grid) Mode() Mode { return g.mode }

// UpdatePeriod returns the throttle in frames between steps.
func (g *Grid) UpdatePeriod() int { return g.updatePeriodTicks }

// Cells exposes the current cell buffer, row-major, 0 dead and 1 live.
// Callers may mutate it between steps; the buffer is reused after each
// step so it must not be retained.
func (g *Grid) Cells() []uint8 { return g.cur }

// At reports whether the cell at (x, y) is live. Out-of-bounds coordinates
// read as dead.
func (g *Grid) At(x, y int) bool {
	if x < 0 || x >= g.cols || y < 0 || y >= g.rows {
		return false
	}
	return g.cur[y*g.cols+x] == 1
}

// Population counts the live cells in the current buffer.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cur {
		if c != 0 {
			n++
		}
	}
	return n
}

// Step advances one generation under B3/S23. The board is bounded:
// out-of-range neighbors count as dead. Frozen grids do not advance.
func (g *Grid) Step() {
	if g.frozen {
		return
	}
	w, h := g.cols, g.rows
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx := x + dx
					ny := y + dy
					if nx < 0 || nx >= w || ny < 0 || ny >= h {
						continue
					}
					neighbors += int(g.cur[ny*w+nx])
				}
			}
			idx := y*w + x
			alive := g.cur[idx] == 1
			g.nxt[idx] = 0
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				g.nxt[idx] = 1
			}
		}
	}
	g.cur, g.nxt = g.nxt, g.cur
	g.generation++
	if g.mode == CanonicalOscillator && g.osc.pat.Period > 0 {
		g.osc.phase = (g.osc.phase + 1) % g.osc.pat.Period
	}
}

// UpdateThrottled steps the grid when frameCounter lands on the grid's
// update period and reports whether a generation actually executed. This
// is the only coupling between frame rate and automaton rate; frozen grids
// never execute.
func (g *Grid) UpdateThrottled(frameCounter int) bool {
	if frameCounter%g.updatePeriodTicks != 0 {
		return false
	}
	before := g.generation
	g.Step()
	return g.generation != before
}

// SetPattern overlays the pattern's live cells onto the current buffer at
// the given cell offset. Dead pattern cells never clear existing live
// cells, and any part falling outside the grid is clipped silently.
// Stamping is allowed while frozen.
func (g *Grid) SetPattern(m pattern.Matrix, offX, offY int) {
	for y, row := range m {
		gy := offY + y
		if gy < 0 || gy >= g.rows {
			continue
		}
		for x, v := range row {
			if v == 0 {
				continue
			}
			gx := offX + x
			if gx < 0 || gx >= g.cols {
				continue
			}
			g.cur[gy*g.cols+gx] = 1
		}
	}
}

// Clear kills every cell in the current buffer.
func (g *Grid) Clear() {
	for i := range g.cur {
		g.cur[i] = 0
	}
}

// Randomize fills the board with a uniform half-live field.
func (g *Grid) Randomize(r *rand.Rand) {
	core.FillBinary(r, g.cur)
}

// Freeze suspends evolution until Unfreeze. Stamping still works.
func (g *Grid) Freeze() { g.frozen = true }

// Unfreeze resumes evolution.
func (g *Grid) Unfreeze() { g.frozen = false }

// IsFrozen reports whether evolution is suspended.
func (g *Grid) IsFrozen() bool { return g.frozen }

// MarkFree returns the grid to plain rule evolution and drops any recorded
// oscillator.
func (g *Grid) MarkFree() {
	g.mode = FreeEvolution
	g.osc = oscillator{}
}

// MarkStill tags the grid as intentionally static content.
func (g *Grid) MarkStill() {
	g.mode = FrozenStill
	g.osc = oscillator{}
}

// MarkOscillator clears the grid, stamps p at the given offset and tags the
// grid as a canonical oscillator whose phase the host can resync. Patterns
// without a positive period cannot loop; for those the call reports false
// and leaves the grid untouched.
func (g *Grid) MarkOscillator(p pattern.Pattern, offX, offY int) bool {
	if p.Period <= 0 {
		return false
	}
	g.Clear()
	g.SetPattern(p.Cells, offX, offY)
	g.mode = CanonicalOscillator
	g.osc = oscillator{pat: p, offX: offX, offY: offY}
	return true
}

// ResyncOscillator clears the board and restamps the recorded pattern at
// its original offset, snapping the grid back to the canonical phase. The
// host calls this once per declared period to cancel boundary-clipping
// drift. Reports false for grids not in CanonicalOscillator mode.
func (g *Grid) ResyncOscillator() bool {
	if g.mode != CanonicalOscillator {
		return false
	}
	g.Clear()
	g.SetPattern(g.osc.pat.Cells, g.osc.offX, g.osc.offY)
	g.osc.phase = 0
	return true
}

// OscillatorPeriod returns the declared period of the stamped oscillator,
// or 0 when the grid is not in CanonicalOscillator mode.
func (g *Grid) OscillatorPeriod() int {
	if g.mode != CanonicalOscillator {
		return 0
	}
	return g.osc.pat.Period
}

// Phase returns the number of steps into the current oscillation cycle,
// always 0 outside CanonicalOscillator mode.
func (g *Grid) Phase() int { return g.osc.phase }

// OscillatorPattern returns the stamped pattern name, or "" when the grid
// is not in CanonicalOscillator mode.
func (g *Grid) OscillatorPattern() string {
	if g.mode != CanonicalOscillator {
		return ""
	}
	return g.osc.pat.Name
}
