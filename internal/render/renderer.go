//go:build ebiten

package render

import (
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/hajimehoshi/ebiten/v2"

	"gol-arcade/pkg/life"
)

// gridMask is a reusable stencil image shared by all grids of one size.
type gridMask struct {
	img *ebiten.Image
	buf []byte
}

// Renderer owns the masked-gradient pipeline: one compiled fill shader, a
// stencil image pool keyed by grid size, and one precomputed uniform pack
// per warmed preset. Warmup must finish before the first render call; the
// renderer performs no readiness checks of its own, hosts gate on Ready or
// Done.
type Renderer struct {
	shader *ebiten.Shader
	packs  map[string]*uniformPack
	masks  map[[2]int]*gridMask

	ready atomic.Bool
	done  chan struct{}
}

// NewRenderer allocates an unwarmed renderer.
func NewRenderer() *Renderer {
	return &Renderer{
		packs: map[string]*uniformPack{},
		masks: map[[2]int]*gridMask{},
		done:  make(chan struct{}),
	}
}

// Warmup compiles the fill shader and precomputes one uniform pack per
// preset, asynchronously. There is no timeout and no cancellation: warm-up
// either completes or fails the process, since a broken built-in ramp or
// shader cannot be recovered at runtime. Call it once, before the first
// frame that renders.
func (r *Renderer) Warmup(gradients []*Gradient) {
	go func() {
		shader, err := ebiten.NewShader(fillShaderSrc)
		if err != nil {
			panic(fmt.Sprintf("render: compiling fill shader: %v", err))
		}
		r.shader = shader

		packs := make([]*uniformPack, len(gradients))
		var eg errgroup.Group
		for i, g := range gradients {
			i, g := i, g
			eg.Go(func() error {
				pack, err := buildUniformPack(g)
				if err != nil {
					return err
				}
				packs[i] = pack
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			panic(fmt.Sprintf("render: warming gradient presets: %v", err))
		}
		for i, g := range gradients {
			r.packs[g.Name] = packs[i]
		}
		r.ready.Store(true)
		close(r.done)
	}()
}

// Ready reports whether warm-up has finished.
func (r *Renderer) Ready() bool { return r.ready.Load() }

// Done exposes warm-up completion for hosts that block instead of polling.
func (r *Renderer) Done() <-chan struct{} { return r.done }

// UpdateAnimation advances every preset's phase. Hosts call it exactly
// once per frame, no matter how many entities they draw.
func (r *Renderer) UpdateAnimation() { AdvanceAnimation() }

// RenderMaskedGrid stencils g's live cells over the preset's color field.
// Each live cell covers a cellSize-sized block at (x + col*cellSize,
// y + row*cellSize), and every pixel in the block takes the field color at
// its own screen position, so the grid reads as holes cut over one
// continuous scrolling gradient. Dead cells draw nothing. Rendering an
// unwarmed preset is a programming error and panics.
func (r *Renderer) RenderMaskedGrid(dst *ebiten.Image, g *life.Grid, x, y, cellSize float64, preset *Gradient) {
	r.RenderMaskedGridFaded(dst, g, x, y, cellSize, preset, 0xff)
}

// RenderMaskedGridFaded is RenderMaskedGrid with a whole-sprite opacity,
// used for fading particles.
func (r *Renderer) RenderMaskedGridFaded(dst *ebiten.Image, g *life.Grid, x, y, cellSize float64, preset *Gradient, alpha uint8) {
	pack, ok := r.packs[preset.Name]
	if !ok {
		panic(fmt.Sprintf("render: preset %q was not warmed", preset.Name))
	}
	if alpha == 0 {
		return
	}

	cols, rows := g.Cols(), g.Rows()
	m := r.maskFor(cols, rows)
	fillMaskRGBA(m.buf, g.Cells())
	m.img.ReplacePixels(m.buf)

	op := &ebiten.DrawRectShaderOptions{}
	op.GeoM.Scale(cellSize, cellSize)
	op.GeoM.Translate(x, y)
	op.Images[0] = m.img
	op.Uniforms = map[string]any{
		"Dir":        pack.dir,
		"Wavelength": pack.wavelength,
		"Phase":      float32(preset.Phase()),
		"Alpha":      float32(alpha) / 255,
		"StopPos":    pack.stopPos,
		"Col0":       pack.stopCols[0],
		"Col1":       pack.stopCols[1],
		"Col2":       pack.stopCols[2],
		"Col3":       pack.stopCols[3],
	}
	dst.DrawRectShader(cols, rows, r.shader, op)
}

// maskFor returns the pooled stencil for a grid size, allocating it on
// first use. Grids of equal size share one stencil; it is refilled before
// every draw so sharing is safe.
func (r *Renderer) maskFor(cols, rows int) *gridMask {
	key := [2]int{cols, rows}
	if m, ok := r.masks[key]; ok {
		return m
	}
	m := &gridMask{
		img: ebiten.NewImage(cols, rows),
		buf: make([]byte, 4*cols*rows),
	}
	r.masks[key] = m
	return m
}
