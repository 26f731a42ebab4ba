package geom

import "testing"

func TestBoxOverlap(t *testing.T) {
	cases := []struct {
		name                           string
		ax, ay, aw, ah, bx, by, bw, bh float64
		want                           bool
	}{
		{"disjoint", 0, 0, 10, 10, 20, 20, 5, 5, false},
		{"partial", 0, 0, 10, 10, 5, 5, 10, 10, true},
		{"contained", 0, 0, 10, 10, 2, 2, 3, 3, true},
		{"touching right edge", 0, 0, 10, 10, 10, 0, 5, 5, false},
		{"touching bottom edge", 0, 0, 10, 10, 0, 10, 5, 5, false},
		{"touching corner", 0, 0, 10, 10, 10, 10, 5, 5, false},
		{"one pixel in", 0, 0, 10, 10, 9, 9, 5, 5, true},
	}
	for _, c := range cases {
		got := BoxOverlap(c.ax, c.ay, c.aw, c.ah, c.bx, c.by, c.bw, c.bh)
		if got != c.want {
			t.Fatalf("%s: BoxOverlap = %v, want %v", c.name, got, c.want)
		}
		sym := BoxOverlap(c.bx, c.by, c.bw, c.bh, c.ax, c.ay, c.aw, c.ah)
		if sym != got {
			t.Fatalf("%s: BoxOverlap is not symmetric", c.name)
		}
	}
}

func TestCircleBoxOverlap(t *testing.T) {
	cases := []struct {
		name           string
		cx, cy, r      float64
		bx, by, bw, bh float64
		want           bool
	}{
		{"center inside box", 5, 5, 1, 0, 0, 10, 10, true},
		{"far away", 100, 100, 3, 0, 0, 10, 10, false},
		{"overlapping edge", 12, 5, 3, 0, 0, 10, 10, true},
		{"tangent to edge", 13, 5, 3, 0, 0, 10, 10, false},
		{"tangent to corner", 13, 14, 5, 0, 0, 10, 10, false},
		{"cutting corner", 12, 12, 3, 0, 0, 10, 10, true},
	}
	for _, c := range cases {
		got := CircleBoxOverlap(c.cx, c.cy, c.r, c.bx, c.by, c.bw, c.bh)
		if got != c.want {
			t.Fatalf("%s: CircleBoxOverlap = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Fatalf("Clamp(5,0,10) = %v, want 5", got)
	}
	if got := Clamp(-1, 0, 10); got != 0 {
		t.Fatalf("Clamp(-1,0,10) = %v, want 0", got)
	}
	if got := Clamp(11, 0, 10); got != 10 {
		t.Fatalf("Clamp(11,0,10) = %v, want 10", got)
	}
	if got := Clamp(0, 0, 10); got != 0 {
		t.Fatalf("Clamp(0,0,10) = %v, want 0", got)
	}
	if got := Clamp(10, 0, 10); got != 10 {
		t.Fatalf("Clamp(10,0,10) = %v, want 10", got)
	}
}

func TestLerpUnclamped(t *testing.T) {
	if got := Lerp(0, 10, 0.5); got != 5 {
		t.Fatalf("Lerp(0,10,0.5) = %v, want 5", got)
	}
	if got := Lerp(0, 10, 0); got != 0 {
		t.Fatalf("Lerp(0,10,0) = %v, want 0", got)
	}
	if got := Lerp(0, 10, 1); got != 10 {
		t.Fatalf("Lerp(0,10,1) = %v, want 10", got)
	}
	if got := Lerp(0, 10, 1.5); got != 15 {
		t.Fatalf("Lerp(0,10,1.5) = %v, want 15 (no clamping)", got)
	}
	if got := Lerp(0, 10, -0.5); got != -5 {
		t.Fatalf("Lerp(0,10,-0.5) = %v, want -5 (no clamping)", got)
	}
}
