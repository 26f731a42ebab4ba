package population

import (
	"testing"

	"gol-arcade/pkg/core"
	"gol-arcade/pkg/life"
	"gol-arcade/pkg/life/pattern"
)

func TestLifeForceRevivesAdjacentToLiveSet(t *testing.T) {
	g := life.New(10, 10, 1)
	g.SetPattern(pattern.Block.Cells, 4, 4)

	before := make([]uint8, len(g.Cells()))
	copy(before, g.Cells())

	lf := NewLifeForce(LifeForceConfig{FloorFrac: 0.2, CeilingFrac: 0.8, MaxAdjust: 50}, core.NewRNG(5))

	// The block has exactly 12 dead neighbors, so the first pass can only
	// revive those even though the deficit is 16.
	if delta := lf.Apply(g); delta != 12 {
		t.Fatalf("first apply delta = %d, want 12", delta)
	}
	cells := g.Cells()
	cols, rows := g.Cols(), g.Rows()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			idx := y*cols + x
			if cells[idx] == 1 && before[idx] == 0 {
				if !hasLiveNeighbor(before, cols, rows, x, y) {
					t.Fatalf("revived cell (%d,%d) was disconnected from the live set", x, y)
				}
			}
		}
	}

	// The second pass finishes the climb to the floor.
	if delta := lf.Apply(g); delta != 4 {
		t.Fatalf("second apply delta = %d, want 4", delta)
	}
	floor, _ := lf.Band(g)
	if g.Population() != floor {
		t.Fatalf("population = %d, want floor %d", g.Population(), floor)
	}
	if delta := lf.Apply(g); delta != 0 {
		t.Fatalf("in-band apply delta = %d, want 0", delta)
	}
}

func TestLifeForceKillsTowardCeiling(t *testing.T) {
	g := life.New(10, 10, 1)
	cells := g.Cells()
	for i := range cells {
		cells[i] = 1
	}

	lf := NewLifeForce(LifeForceConfig{FloorFrac: 0.2, CeilingFrac: 0.8, MaxAdjust: 12}, core.NewRNG(9))

	if delta := lf.Apply(g); delta != -12 {
		t.Fatalf("first apply delta = %d, want -12 (capped)", delta)
	}
	if delta := lf.Apply(g); delta != -8 {
		t.Fatalf("second apply delta = %d, want -8", delta)
	}
	_, ceiling := lf.Band(g)
	if g.Population() != ceiling {
		t.Fatalf("population = %d, want ceiling %d", g.Population(), ceiling)
	}
	if delta := lf.Apply(g); delta != 0 {
		t.Fatalf("in-band apply delta = %d, want 0", delta)
	}
}

func TestLifeForceIgnoresNonFreeGrids(t *testing.T) {
	lf := NewLifeForce(DefaultLifeForceConfig(), core.NewRNG(1))

	g := life.New(8, 8, 1)
	g.MarkOscillator(pattern.Beacon, 2, 2)
	if delta := lf.Apply(g); delta != 0 {
		t.Fatalf("oscillator grid adjusted by %d", delta)
	}

	g = life.New(8, 8, 1)
	g.SetPattern(pattern.Block.Cells, 3, 3)
	g.MarkStill()
	if delta := lf.Apply(g); delta != 0 {
		t.Fatalf("still grid adjusted by %d", delta)
	}
}

func TestLifeForceCannotReviveDeadGrid(t *testing.T) {
	// With nothing live there is no adjacency to grow from; the controller
	// leaves a fully dead grid dead rather than inventing noise.
	g := life.New(10, 10, 1)
	lf := NewLifeForce(DefaultLifeForceConfig(), core.NewRNG(2))
	if delta := lf.Apply(g); delta != 0 {
		t.Fatalf("dead grid adjusted by %d", delta)
	}
	if g.Population() != 0 {
		t.Fatalf("dead grid gained %d cells", g.Population())
	}
}

func TestLifeForceHoldsBandOverLongRun(t *testing.T) {
	rng := core.NewRNG(1234)
	g := life.New(48, 48, 1)
	SeedRadial(g, 0.9, 0.2, rng)

	lf := NewLifeForce(LifeForceConfig{FloorFrac: 0.05, CeilingFrac: 0.5, MaxAdjust: 180}, rng)
	floor, ceiling := lf.Band(g)
	capacity := g.Cols() * g.Rows()

	const (
		warmup = 100
		total  = 260
	)
	for i := 1; i <= total; i++ {
		g.Step()
		lf.Apply(g)
		pop := g.Population()
		if pop == 0 || pop == capacity {
			t.Fatalf("step %d: population pinned at %d", i, pop)
		}
		if i > warmup && (pop < floor || pop > ceiling) {
			t.Fatalf("step %d: population %d outside band [%d,%d]", i, pop, floor, ceiling)
		}
	}
}

func TestDensityKeeperConverges(t *testing.T) {
	rng := core.NewRNG(77)
	g := life.New(32, 32, 1)
	g.Randomize(rng.Source())
	g.Freeze()

	dk := NewDensityKeeper(DensityKeeperConfig{TargetFrac: 0.2, Cadence: 1, MaxToggle: 64}, rng)

	start := g.Population()
	target := 205 // round(0.2 * 1024)
	for pass := 1; pass <= 30; pass++ {
		dk.Apply(g, pass)
	}
	pop := g.Population()
	if pop >= start {
		t.Fatalf("keeper did not reduce population (start %d, now %d)", start, pop)
	}
	if pop < target-2 || pop > target+2 {
		t.Fatalf("population = %d after 30 passes, want about %d", pop, target)
	}
}

func TestDensityKeeperCadence(t *testing.T) {
	rng := core.NewRNG(3)
	g := life.New(16, 16, 1)

	dk := NewDensityKeeper(DensityKeeperConfig{TargetFrac: 0.5, Cadence: 5, MaxToggle: 32}, rng)
	for frame := 1; frame <= 4; frame++ {
		if delta := dk.Apply(g, frame); delta != 0 {
			t.Fatalf("frame %d: keeper ran off cadence (delta %d)", frame, delta)
		}
	}
	if delta := dk.Apply(g, 5); delta == 0 {
		t.Fatalf("frame 5: keeper did not run on cadence")
	}
}

func TestDensityKeeperBoundsToggles(t *testing.T) {
	rng := core.NewRNG(8)
	g := life.New(32, 32, 1)

	// Empty grid, so every probe hits an eligible cell and the pass flips
	// exactly MaxToggle.
	dk := NewDensityKeeper(DensityKeeperConfig{TargetFrac: 0.9, Cadence: 1, MaxToggle: 16}, rng)
	if delta := dk.Apply(g, 1); delta != 16 {
		t.Fatalf("delta = %d, want exactly MaxToggle 16", delta)
	}
}

func TestSeedRadialExtremes(t *testing.T) {
	rng := core.NewRNG(4)

	g := life.New(21, 21, 1)
	SeedRadial(g, 1, 1, rng)
	if g.Population() != 21*21 {
		t.Fatalf("probability 1 everywhere left %d dead cells", 21*21-g.Population())
	}

	SeedRadial(g, 0, 0, rng)
	if g.Population() != 0 {
		t.Fatalf("probability 0 everywhere left %d live cells", g.Population())
	}

	SeedRadial(g, 1, 0, rng)
	if !g.At(10, 10) {
		t.Fatalf("grid center dead despite centerProb 1")
	}
	if g.At(0, 0) || g.At(20, 0) || g.At(0, 20) || g.At(20, 20) {
		t.Fatalf("corner live despite edgeProb 0")
	}
}

func TestSeedRadialOverwrites(t *testing.T) {
	rng := core.NewRNG(6)
	g := life.New(12, 12, 1)
	cells := g.Cells()
	for i := range cells {
		cells[i] = 1
	}
	SeedRadial(g, 0, 0, rng)
	if g.Population() != 0 {
		t.Fatalf("seeding did not overwrite existing content")
	}
}
