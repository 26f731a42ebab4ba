package render

import (
	"image/color"
	"math"
	"sort"
)

// MaxStops is the most color stops a gradient ramp may carry; the fill
// shader unrolls exactly this many.
const MaxStops = 4

// Stop anchors a color at a normalized position along the gradient axis.
type Stop struct {
	Pos   float64
	Color color.RGBA
}

// Gradient is an animated, position-sampled color field. The GPU renderer
// uses it as the fill behind live-cell stencils; headless viewers read the
// same field through Sample. The phase is mutated only by the per-frame
// animation advance.
type Gradient struct {
	Name string
	// Stops hold the color ramp in ascending Pos order over [0, 1]. Ramps
	// whose first and last colors match scroll without a visible seam.
	Stops []Stop
	// DirX, DirY set the field axis; Register normalizes the vector.
	DirX, DirY float64
	// Wavelength is the screen-pixel span of one full color cycle.
	Wavelength float64
	// Speed is the phase fraction added per frame by AdvanceAnimation.
	Speed float64

	phase float64
}

// Phase returns the current animation phase in [0, 1).
func (g *Gradient) Phase() float64 { return g.phase }

// Sample evaluates the color field at screen position (x, y) under the
// current phase. This is the CPU mirror of the fill shader.
func (g *Gradient) Sample(x, y float64) color.RGBA {
	return g.colorAt(g.fieldAt(x, y))
}

// fieldAt projects a screen position onto the gradient axis and wraps the
// result into [0, 1).
func (g *Gradient) fieldAt(x, y float64) float64 {
	wl := g.Wavelength
	if wl <= 0 {
		wl = 1
	}
	t := (x*g.DirX+y*g.DirY)/wl + g.phase
	return t - math.Floor(t)
}

// colorAt resolves the ramp color for a normalized field value.
func (g *Gradient) colorAt(t float64) color.RGBA {
	stops := g.Stops
	if len(stops) == 0 {
		return color.RGBA{}
	}
	if t <= stops[0].Pos {
		return stops[0].Color
	}
	for i := 1; i < len(stops); i++ {
		curr := stops[i]
		if t <= curr.Pos {
			prev := stops[i-1]
			span := curr.Pos - prev.Pos
			var local float64
			if span > 0 {
				local = (t - prev.Pos) / span
			}
			return lerpRGBA(prev.Color, curr.Color, clamp01(local))
		}
	}
	return stops[len(stops)-1].Color
}

// advance moves the animation phase one frame forward, wrapping at 1.
func (g *Gradient) advance() {
	g.phase += g.Speed
	g.phase -= math.Floor(g.phase)
}

var presets = map[string]*Gradient{}

// Register normalizes and stores a preset under its name. Ramps longer
// than MaxStops are truncated so the CPU and GPU paths stay identical.
// Presets with an empty name are ignored.
func Register(g *Gradient) {
	if g == nil || g.Name == "" {
		return
	}
	if len(g.Stops) > MaxStops {
		g.Stops = g.Stops[:MaxStops]
	}
	sort.SliceStable(g.Stops, func(i, j int) bool { return g.Stops[i].Pos < g.Stops[j].Pos })
	n := math.Hypot(g.DirX, g.DirY)
	if n == 0 {
		g.DirX, g.DirY = 1, 0
	} else {
		g.DirX /= n
		g.DirY /= n
	}
	presets[g.Name] = g
}

// Lookup returns the preset registered under name.
func Lookup(name string) (*Gradient, bool) {
	g, ok := presets[name]
	return g, ok
}

// Presets returns every registered gradient, sorted by name.
func Presets() []*Gradient {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	out := make([]*Gradient, len(names))
	for i, n := range names {
		out[i] = presets[n]
	}
	return out
}

// AdvanceAnimation moves every registered preset one frame forward. Hosts
// call it exactly once per frame, no matter how many entities share a
// preset.
func AdvanceAnimation() {
	for _, g := range presets {
		g.advance()
	}
}

func init() {
	Register(&Gradient{
		Name: "ember",
		Stops: []Stop{
			{0.0, color.RGBA{R: 122, G: 22, B: 8, A: 255}},
			{0.45, color.RGBA{R: 232, G: 110, B: 20, A: 255}},
			{0.75, color.RGBA{R: 255, G: 204, B: 64, A: 255}},
			{1.0, color.RGBA{R: 122, G: 22, B: 8, A: 255}},
		},
		DirX: 1, DirY: 0.35, Wavelength: 180, Speed: 0.004,
	})
	Register(&Gradient{
		Name: "lagoon",
		Stops: []Stop{
			{0.0, color.RGBA{R: 10, G: 48, B: 96, A: 255}},
			{0.5, color.RGBA{R: 28, G: 160, B: 170, A: 255}},
			{0.8, color.RGBA{R: 120, G: 230, B: 200, A: 255}},
			{1.0, color.RGBA{R: 10, G: 48, B: 96, A: 255}},
		},
		DirX: 0.2, DirY: 1, Wavelength: 220, Speed: 0.003,
	})
	Register(&Gradient{
		Name: "ultraviolet",
		Stops: []Stop{
			{0.0, color.RGBA{R: 48, G: 10, B: 90, A: 255}},
			{0.55, color.RGBA{R: 150, G: 40, B: 200, A: 255}},
			{0.85, color.RGBA{R: 250, G: 120, B: 230, A: 255}},
			{1.0, color.RGBA{R: 48, G: 10, B: 90, A: 255}},
		},
		DirX: 1, DirY: -0.6, Wavelength: 140, Speed: 0.006,
	})
	Register(&Gradient{
		Name: "verdant",
		Stops: []Stop{
			{0.0, color.RGBA{R: 12, G: 60, B: 24, A: 255}},
			{0.5, color.RGBA{R: 60, G: 170, B: 70, A: 255}},
			{0.8, color.RGBA{R: 180, G: 240, B: 130, A: 255}},
			{1.0, color.RGBA{R: 12, G: 60, B: 24, A: 255}},
		},
		DirX: 1, DirY: 1, Wavelength: 260, Speed: 0.002,
	})
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	return color.RGBA{
		R: lerpComponent(a.R, b.R, t),
		G: lerpComponent(a.G, b.G, t),
		B: lerpComponent(a.B, b.B, t),
		A: lerpComponent(a.A, b.A, t),
	}
}

func lerpComponent(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}
