package main

import (
	"fmt"
	"strings"
	"time"

	"gol-arcade/internal/render"
	"gol-arcade/pkg/core"
	"gol-arcade/pkg/life"
	"gol-arcade/pkg/life/pattern"
	"gol-arcade/pkg/population"

	"github.com/integrii/flaggy"
	"github.com/logrusorgru/aurora"
)

// options carries the flaggy-bound command line surface.
type options struct {
	width       int
	height      int
	patternName string
	presetName  string
	interval    time.Duration
	maxSteps    int
	seed        int
	interactive bool
}

func main() {
	opt := parseOptions()
	l := newLab(opt)

	if opt.interactive {
		newConsoleUI(l, opt).Start()
		return
	}
	runBatch(l, opt)
}

func parseOptions() *options {
	opt := &options{
		width:      48,
		height:     32,
		presetName: "verdant",
		interval:   80 * time.Millisecond,
		maxSteps:   240,
		seed:       42,
	}

	flaggy.SetName("lifelab")
	flaggy.SetDescription("terminal inspector for the arcade life grids")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&opt.width, "x", "width", "grid width in cells")
	flaggy.Int(&opt.height, "y", "height", "grid height in cells")
	flaggy.String(&opt.patternName, "p", "pattern",
		"canonical pattern to stamp ["+strings.Join(patternNames(), "|")+"]; empty seeds radially")
	flaggy.String(&opt.presetName, "g", "preset",
		"gradient preset tinting live cells ["+strings.Join(presetNames(), "|")+"]")
	flaggy.Duration(&opt.interval, "i", "interval",
		"delay between steps, for example 80ms")
	flaggy.Int(&opt.maxSteps, "s", "max-steps", "steps to run in batch mode")
	flaggy.Int(&opt.seed, "", "seed", "seed for reseeding and the band controller")
	flaggy.Bool(&opt.interactive, "n", "interactive", "start the interactive viewer")
	flaggy.Parse()

	if opt.patternName != "" {
		if _, ok := pattern.ByName(opt.patternName); !ok {
			flaggy.ShowHelpAndExit("unknown pattern " + opt.patternName)
		}
	}
	if _, ok := render.Lookup(opt.presetName); !ok {
		flaggy.ShowHelpAndExit("unknown preset " + opt.presetName)
	}
	if opt.interval <= 0 {
		opt.interval = 80 * time.Millisecond
	}
	return opt
}

// stepRate converts a step interval into whole ticks per second, at
// least 1 so long intervals do not collapse to the pacer default.
func stepRate(interval time.Duration) int {
	tps := int(time.Second / interval)
	if tps < 1 {
		tps = 1
	}
	return tps
}

func patternNames() []string {
	all := pattern.All()
	names := make([]string, 0, len(all))
	for _, p := range all {
		names = append(names, p.Name)
	}
	return names
}

func presetNames() []string {
	all := render.Presets()
	names := make([]string, 0, len(all))
	for _, g := range all {
		names = append(names, g.Name)
	}
	return names
}

// lab bundles one grid with its band controller and display gradient.
type lab struct {
	grid  *life.Grid
	force *population.LifeForce
	fill  *render.Gradient
	rng   *core.RNG
}

func newLab(opt *options) *lab {
	rng := core.NewRNG(int64(opt.seed))
	g := life.New(opt.width, opt.height, 1)
	fill, _ := render.Lookup(opt.presetName)
	l := &lab{
		grid:  g,
		force: population.NewLifeForce(population.DefaultLifeForceConfig(), rng),
		fill:  fill,
		rng:   rng,
	}

	if opt.patternName == "" {
		population.SeedRadial(g, 0.85, 0.15, rng)
		return l
	}
	p, _ := pattern.ByName(opt.patternName)
	pw, ph := p.Cells.Dims()
	offX := (opt.width - pw) / 2
	offY := (opt.height - ph) / 2
	if p.Periodic() {
		g.MarkOscillator(p, offX, offY)
		return l
	}
	g.SetPattern(p.Cells, offX, offY)
	if p.Still() {
		g.MarkStill()
	}
	return l
}

// step advances one generation, lets the band controller act on free
// grids, and restamps loops that completed a cycle.
func (l *lab) step() {
	l.grid.Step()
	l.force.Apply(l.grid)
	if l.grid.Mode() == life.CanonicalOscillator && l.grid.Phase() == 0 {
		l.grid.ResyncOscillator()
	}
}

// reseed turns the grid into a free radially-seeded field.
func (l *lab) reseed() {
	l.grid.MarkFree()
	l.grid.Unfreeze()
	population.SeedRadial(l.grid, 0.85, 0.15, l.rng)
}

// bandLabel describes the population's relation to the control band,
// colored for terminal output.
func (l *lab) bandLabel() string {
	if l.grid.Mode() != life.FreeEvolution {
		return l.grid.Mode().String()
	}
	floor, ceiling := l.force.Band(l.grid)
	switch pop := l.grid.Population(); {
	case pop < floor:
		return aurora.Red("below band").String()
	case pop > ceiling:
		return aurora.Yellow("above band").String()
	default:
		return aurora.Green("in band").String()
	}
}

func runBatch(l *lab, opt *options) {
	floor, ceiling := l.force.Band(l.grid)
	fmt.Println("Running configuration:")
	fmt.Printf("  Dimension: %v x %v\n", opt.width, opt.height)
	fmt.Printf("  Interval: %v\n", opt.interval)
	fmt.Printf("  Max steps: %v\n", opt.maxSteps)
	if opt.patternName != "" {
		fmt.Printf("  Pattern: %v\n", opt.patternName)
	}
	fmt.Printf("  Seed: %v\n", opt.seed)
	fmt.Printf("  Band: [%d, %d]\n", floor, ceiling)
	fmt.Println("\nSimulation started...")

	pace := core.NewFixedStep(stepRate(opt.interval))
	start := time.Now()
	steps := 0
	for steps < opt.maxSteps {
		if !pace.ShouldStep() {
			time.Sleep(time.Millisecond)
			continue
		}
		l.step()
		steps++
		if steps%10 == 0 {
			fmt.Printf("  step %4d: population %4d (%s)\n", steps, l.grid.Population(), l.bandLabel())
		}
		if l.grid.Population() == 0 {
			fmt.Println(aurora.Red("  grid went extinct").String())
			break
		}
	}

	total := time.Since(start).Round(time.Millisecond)
	fmt.Println("\nFinished:")
	fmt.Printf("  Generation: %v\n", l.grid.Generation())
	fmt.Printf("  Live cells: %v\n", l.grid.Population())
	fmt.Printf("  Total time: %v\n", total)
}
