package hull

import (
	"slices"

	"github.com/oliverbestmann/hullchains/geom"
)

// ConvexHull maintains the convex hull of a dynamic point set. The upper
// hull is kept in one tree, the lower hull is the upper hull of the
// mirrored points kept in a second tree.
type ConvexHull struct {
	upper *Tree
	lower *Tree
}

func New(opts ...Option) *ConvexHull {
	return &ConvexHull{
		upper: NewTree(opts...),
		lower: NewTree(opts...),
	}
}

func (h *ConvexHull) Insert(p geom.Point) bool {
	inserted := h.upper.Insert(p)
	h.lower.Insert(p.Mirrored())
	return inserted
}

func (h *ConvexHull) Delete(p geom.Point) bool {
	deleted := h.upper.Delete(p)
	h.lower.Delete(p.Mirrored())
	return deleted
}

func (h *ConvexHull) Contains(p geom.Point) bool {
	return h.upper.Contains(p)
}

func (h *ConvexHull) Len() int {
	return h.upper.Len()
}

// Height returns the height of the taller of both trees.
func (h *ConvexHull) Height() int {
	return max(h.upper.Height(), h.lower.Height())
}

// Points returns all points, ordered by x.
func (h *ConvexHull) Points() []geom.Point {
	return h.upper.Points()
}

// Upper returns the upper hull from left to right.
func (h *ConvexHull) Upper() []geom.Point {
	return h.upper.Hull()
}

// Lower returns the lower hull from left to right.
func (h *ConvexHull) Lower() []geom.Point {
	lower := h.lower.Hull()
	for idx := range lower {
		lower[idx] = lower[idx].Mirrored()
	}

	if len(lower) == 0 {
		return lower
	}

	// mirroring flips the order of points sharing an x coordinate, so the
	// mirrored hull starts at the top of the leftmost column and ends at
	// the bottom of the rightmost one. The lower hull starts at the bottom
	// of the leftmost column and ends at the top of the rightmost one.
	if len(lower) >= 2 && lower[0].X == lower[1].X {
		lower = lower[1:]
	}

	upper := h.upper.Hull()

	last := upper[len(upper)-1]
	if tail := lower[len(lower)-1]; last.X == tail.X && !last.Same(tail) {
		lower = append(lower, last)
	}

	return lower
}

// Polygon returns the hull in counter-clockwise order, starting with the
// leftmost point.
func (h *ConvexHull) Polygon() []geom.Point {
	lower := h.Lower()
	if len(lower) <= 1 {
		return lower
	}

	upper := h.Upper()
	slices.Reverse(upper)

	// the end points of both halves are shared
	return append(lower[:len(lower)-1], upper[:len(upper)-1]...)
}
