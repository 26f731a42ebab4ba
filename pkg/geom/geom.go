package geom

// BoxOverlap reports whether two axis-aligned boxes overlap. Boxes that
// merely touch along an edge or at a corner do not count as overlapping.
func BoxOverlap(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return ax < bx+bw && bx < ax+aw && ay < by+bh && by < ay+ah
}

// CircleBoxOverlap reports whether a circle overlaps an axis-aligned box.
// The circle overlaps when the nearest point of the box lies strictly
// inside its radius, so tangency does not count.
func CircleBoxOverlap(cx, cy, r, bx, by, bw, bh float64) bool {
	nx := Clamp(cx, bx, bx+bw)
	ny := Clamp(cy, by, by+bh)
	dx := cx - nx
	dy := cy - ny
	return dx*dx+dy*dy < r*r
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp linearly interpolates between a and b. t is not clamped; callers
// bound it themselves when extrapolation is unwanted.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
