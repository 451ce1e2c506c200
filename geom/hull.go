package geom

import (
	"slices"
)

// ConvexHull returns the convex hull of a set of points using Andrew's
// algorithm. The result is in counter-clockwise order, starting with the
// point of lowest x. Collinear points on the boundary are dropped.
func ConvexHull(points []Point) []Point {
	n := len(points)
	if n <= 1 {
		return slices.Clone(points)
	}

	points = sorted(points)

	var lower []Point
	for _, p := range points {
		for len(lower) >= 2 && Cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}

	var upper []Point
	for i := n - 1; i >= 0; i-- {
		p := points[i]
		for len(upper) >= 2 && Cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	// the last point of each half is the first point of the other one
	return append(lower[:len(lower)-1], upper[:len(upper)-1]...)
}

// UpperHull returns the upper hull of the points from left to right.
func UpperHull(points []Point) []Point {
	var upper []Point
	for _, p := range sorted(points) {
		for len(upper) >= 2 && Cross(upper[len(upper)-2], upper[len(upper)-1], p) >= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	return upper
}

// LowerHull returns the lower hull of the points from left to right.
func LowerHull(points []Point) []Point {
	var lower []Point
	for _, p := range sorted(points) {
		for len(lower) >= 2 && Cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}

	return lower
}

// PointInConvexHull checks whether point p is inside the convex hull defined by hull.
// The hull must be ordered counter-clockwise.
func PointInConvexHull(hull []Point, p Point) bool {
	n := len(hull)
	if n < 3 {
		// not a polygon
		return false
	}

	for i := 0; i < n; i++ {
		a := hull[i]
		b := hull[(i+1)%n]
		if Cross(a, b, p) < 0 {
			return false
		}
	}

	return true
}

func sorted(points []Point) []Point {
	points = slices.Clone(points)
	slices.SortFunc(points, Point.Compare)
	return points
}
