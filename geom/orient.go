package geom

// Cross returns the cross product of the vectors oa and ob. It is positive
// if b lies left of the directed line from o to a.
func Cross(o, a, b Point) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

// IsLeft reports whether p lies on or left of the directed line from a to b.
func IsLeft(a, b, p Point) bool {
	return Cross(a, b, p) >= 0
}

// Above reports whether p lies strictly above the line through a and b,
// where a is left of b.
func Above(a, b, p Point) bool {
	return Cross(a, b, p) > 0
}

// LineIntersectionX returns the x coordinate where the line through a and b
// meets the line through c and d. ok is false for parallel lines.
func LineIntersectionX(a, b, c, d Point) (x float64, ok bool) {
	denom := (a.X-b.X)*(c.Y-d.Y) - (a.Y-b.Y)*(c.X-d.X)
	if denom == 0 {
		return 0, false
	}

	det1 := a.X*b.Y - a.Y*b.X
	det2 := c.X*d.Y - c.Y*d.X
	return (det1*(c.X-d.X) - (a.X-b.X)*det2) / denom, true
}
