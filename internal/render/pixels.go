package render

import (
	"errors"
	"fmt"
	"image/color"
)

// fillMaskRGBA converts binary cell data (0/1) into stencil texels: opaque
// white for live cells, transparent black for dead ones. The fill shader
// tests only the alpha channel.
func fillMaskRGBA(buf []byte, cells []uint8) {
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = 0xff
			buf[base+1] = 0xff
			buf[base+2] = 0xff
			buf[base+3] = 0xff
			continue
		}
		buf[base+0] = 0
		buf[base+1] = 0
		buf[base+2] = 0
		buf[base+3] = 0
	}
}

// uniformPack is the precomputed per-preset data handed to the fill shader
// on every draw: the ramp padded to MaxStops plus the field parameters.
type uniformPack struct {
	dir        []float32
	wavelength float32
	stopPos    []float32
	stopCols   [][]float32
}

// buildUniformPack flattens a preset's ramp into shader uniforms. Ramps
// shorter than MaxStops are padded by repeating the last stop at position
// 1 so the shader's unrolled mix chain stays valid.
func buildUniformPack(g *Gradient) (*uniformPack, error) {
	if g == nil || len(g.Stops) == 0 {
		return nil, errors.New("render: gradient has no stops")
	}
	if len(g.Stops) > MaxStops {
		return nil, fmt.Errorf("render: gradient %q has %d stops, max %d", g.Name, len(g.Stops), MaxStops)
	}
	wl := g.Wavelength
	if wl <= 0 {
		wl = 1
	}
	p := &uniformPack{
		dir:        []float32{float32(g.DirX), float32(g.DirY)},
		wavelength: float32(wl),
		stopPos:    make([]float32, MaxStops),
		stopCols:   make([][]float32, MaxStops),
	}
	last := len(g.Stops) - 1
	for i := 0; i < MaxStops; i++ {
		if i <= last {
			p.stopPos[i] = float32(g.Stops[i].Pos)
			p.stopCols[i] = rgbaToVec4(g.Stops[i].Color)
			continue
		}
		p.stopPos[i] = 1
		p.stopCols[i] = rgbaToVec4(g.Stops[last].Color)
	}
	return p, nil
}

// rgbaToVec4 converts a color into the shader's premultiplied-alpha space.
func rgbaToVec4(c color.RGBA) []float32 {
	a := float32(c.A) / 255
	return []float32{
		float32(c.R) / 255 * a,
		float32(c.G) / 255 * a,
		float32(c.B) / 255 * a,
		a,
	}
}
