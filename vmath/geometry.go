package vmath

// CircleIntersectsRect tests circle (cx, cy, r) against axis-aligned rectangle (rx, ry, rw, rh)
// The circle center is clamped per axis into the rectangle to find the closest point,
// then the squared distance is compared strictly against r²
func CircleIntersectsRect(cx, cy, r, rx, ry, rw, rh float64) bool {
	closestX := Clamp(cx, rx, rx+rw)
	closestY := Clamp(cy, ry, ry+rh)

	dx := cx - closestX
	dy := cy - closestY
	return dx*dx+dy*dy < r*r
}
