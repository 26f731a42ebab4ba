package main

import (
	"flag"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"gol-arcade/pkg/core"
	"gol-arcade/pkg/life"
	"gol-arcade/pkg/population"
)

// bandSet is one LifeForce configuration candidate.
type bandSet struct {
	floor     float64
	ceiling   float64
	maxAdjust int
}

func (b bandSet) String() string {
	return fmt.Sprintf("floor=%.2f ceiling=%.2f adjust=%d", b.floor, b.ceiling, b.maxAdjust)
}

// sweepResult aggregates one candidate's runs across all seeds.
type sweepResult struct {
	params      bandSet
	inBand      float64
	meanDensity float64
	minDensity  float64
	maxDensity  float64
	extinctions int
}

func main() {
	steps := flag.Int("steps", 400, "ticks to simulate per run")
	warmup := flag.Int("warmup", 120, "ticks to ignore before scoring")
	width := flag.Int("width", 64, "grid width for tuning runs")
	height := flag.Int("height", 64, "grid height for tuning runs")
	seeds := flag.Int("seeds", 6, "seeds per candidate")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	floorOptions := []float64{0.04, 0.06, 0.08, 0.10}
	ceilingOptions := []float64{0.30, 0.40, 0.50}
	adjustOptions := []int{32, 64, 96, 160}

	var sets []bandSet
	for _, fl := range floorOptions {
		for _, ce := range ceilingOptions {
			for _, ad := range adjustOptions {
				sets = append(sets, bandSet{floor: fl, ceiling: ce, maxAdjust: ad})
			}
		}
	}

	fmt.Printf("Sweeping %d band candidates (%d workers, %d seeds, %d steps)\n",
		len(sets), *workers, *seeds, *steps)

	jobs := make(chan bandSet)
	results := make(chan sweepResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				results <- runCandidate(params, *width, *height, *seeds, *steps, *warmup)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, s := range sets {
			jobs <- s
		}
		close(jobs)
	}()

	start := time.Now()
	var all []sweepResult
	for res := range results {
		all = append(all, res)
		if res.extinctions > 0 {
			fmt.Printf("Candidate went extinct %d times: %s\n", res.extinctions, res.params)
		}
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].inBand != all[j].inBand {
			return all[i].inBand > all[j].inBand
		}
		return all[i].extinctions < all[j].extinctions
	})
	elapsed := time.Since(start)

	fmt.Printf("\nTop 10 results (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < 10; i++ {
		res := all[i]
		fmt.Printf("%2d) inBand=%5.1f%% density[min=%.3f mean=%.3f max=%.3f] extinct=%d %s\n",
			i+1, res.inBand*100, res.minDensity, res.meanDensity, res.maxDensity,
			res.extinctions, res.params)
	}
	if len(all) > 0 {
		best := all[0]
		fmt.Printf("\nBest overall: inBand=%5.1f%% density[min=%.3f mean=%.3f max=%.3f] extinct=%d %s\n",
			best.inBand*100, best.minDensity, best.meanDensity, best.maxDensity,
			best.extinctions, best.params)
	}
}

// runCandidate scores one band configuration across several seeded runs.
// Steps inside the warmup window are simulated but not scored.
func runCandidate(params bandSet, width, height, seeds, steps, warmup int) sweepResult {
	res := sweepResult{params: params, minDensity: 1}
	capacity := float64(width * height)
	samples := 0
	inBand := 0

	for s := 0; s < seeds; s++ {
		rng := core.NewRNG(int64(1000 + s*7919))
		g := life.New(width, height, 1)
		population.SeedRadial(g, 0.9, 0.2, rng)
		force := population.NewLifeForce(population.LifeForceConfig{
			FloorFrac:   params.floor,
			CeilingFrac: params.ceiling,
			MaxAdjust:   params.maxAdjust,
		}, rng)
		floor, ceiling := force.Band(g)

		for i := 0; i < steps; i++ {
			g.Step()
			force.Apply(g)
			if i < warmup {
				continue
			}
			pop := g.Population()
			if pop == 0 {
				res.extinctions++
				break
			}
			density := float64(pop) / capacity
			samples++
			res.meanDensity += density
			if density < res.minDensity {
				res.minDensity = density
			}
			if density > res.maxDensity {
				res.maxDensity = density
			}
			if pop >= floor && pop <= ceiling {
				inBand++
			}
		}
	}

	if samples == 0 {
		res.minDensity = 0
		return res
	}
	res.meanDensity /= float64(samples)
	res.inBand = float64(inBand) / float64(samples)
	return res
}
