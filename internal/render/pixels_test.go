package render

import (
	"image/color"
	"math"
	"testing"
)

func TestFillMaskRGBA(t *testing.T) {
	cells := []uint8{0, 1, 1, 0}
	buf := make([]byte, 4*len(cells))
	fillMaskRGBA(buf, cells)

	for i, c := range cells {
		base := i * 4
		want := byte(0)
		if c != 0 {
			want = 0xff
		}
		for offset := 0; offset < 4; offset++ {
			if buf[base+offset] != want {
				t.Fatalf("texel %d byte %d = %#x, want %#x", i, offset, buf[base+offset], want)
			}
		}
	}
}

func TestBuildUniformPackPadsShortRamps(t *testing.T) {
	g := &Gradient{
		Name: "pack-short",
		Stops: []Stop{
			{0, color.RGBA{R: 10, A: 255}},
			{0.5, color.RGBA{R: 20, A: 255}},
			{0.9, color.RGBA{R: 30, A: 255}},
		},
		DirX:       1,
		Wavelength: 64,
	}
	p, err := buildUniformPack(g)
	if err != nil {
		t.Fatalf("buildUniformPack: %v", err)
	}
	if len(p.stopPos) != MaxStops || len(p.stopCols) != MaxStops {
		t.Fatalf("pack not padded to %d stops", MaxStops)
	}
	if p.stopPos[3] != 1 {
		t.Fatalf("padded stop position = %v, want 1", p.stopPos[3])
	}
	for i := range p.stopCols[3] {
		if p.stopCols[3][i] != p.stopCols[2][i] {
			t.Fatalf("padded stop color differs from the last real stop")
		}
	}
}

func TestBuildUniformPackRejectsBadRamps(t *testing.T) {
	if _, err := buildUniformPack(&Gradient{Name: "pack-empty"}); err == nil {
		t.Fatalf("empty ramp accepted")
	}
	long := &Gradient{Name: "pack-long", Stops: make([]Stop, MaxStops+1)}
	if _, err := buildUniformPack(long); err == nil {
		t.Fatalf("oversized ramp accepted")
	}
	if _, err := buildUniformPack(nil); err == nil {
		t.Fatalf("nil gradient accepted")
	}
}

func TestBuildUniformPackClampsWavelength(t *testing.T) {
	g := &Gradient{
		Name:  "pack-flat",
		Stops: []Stop{{0, color.RGBA{A: 255}}, {1, color.RGBA{A: 255}}},
	}
	p, err := buildUniformPack(g)
	if err != nil {
		t.Fatalf("buildUniformPack: %v", err)
	}
	if p.wavelength != 1 {
		t.Fatalf("zero wavelength packed as %v, want clamp to 1", p.wavelength)
	}
}

func TestRGBAToVec4Premultiplies(t *testing.T) {
	v := rgbaToVec4(color.RGBA{R: 200, G: 100, B: 50, A: 255})
	want := []float64{200.0 / 255, 100.0 / 255, 50.0 / 255, 1}
	for i := range v {
		if math.Abs(float64(v[i])-want[i]) > 1e-6 {
			t.Fatalf("opaque component %d = %v, want %v", i, v[i], want[i])
		}
	}

	v = rgbaToVec4(color.RGBA{R: 255, A: 102})
	a := 102.0 / 255
	if math.Abs(float64(v[0])-a) > 1e-6 || math.Abs(float64(v[3])-a) > 1e-6 {
		t.Fatalf("translucent red packed as %v, want premultiplied %v", v, a)
	}
	if v[1] != 0 || v[2] != 0 {
		t.Fatalf("zero channels gained premultiplied energy: %v", v)
	}
}
