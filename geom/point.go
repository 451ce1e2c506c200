package geom

import (
	"fmt"

	"github.com/quasilyte/gmath"
)

// Point is an immutable position in the plane. Two points are the same
// point if their coordinates match, the ID is only used to tell points apart
// when printing them.
type Point struct {
	gmath.Vec
	ID int
}

func Pt(x, y float64) Point {
	return Point{Vec: gmath.Vec{X: x, Y: y}}
}

func (p Point) WithID(id int) Point {
	p.ID = id
	return p
}

// Same reports whether p and q have the same coordinates.
func (p Point) Same(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// Less orders points by x, breaking ties with the smaller y.
func (p Point) Less(q Point) bool {
	return p.X < q.X || (p.X == q.X && p.Y < q.Y)
}

// Compare is Less as a three way comparison, usable with slices.SortFunc.
func (p Point) Compare(q Point) int {
	switch {
	case p.Less(q):
		return -1
	case q.Less(p):
		return 1
	default:
		return 0
	}
}

// Mirrored returns the point reflected on the x axis.
func (p Point) Mirrored() Point {
	p.Y = -p.Y
	return p
}

func (p Point) String() string {
	return fmt.Sprintf("(%g; %g)", p.X, p.Y)
}

// Sequence hands out ascending ids, starting at one.
type Sequence struct {
	last int
}

func (s *Sequence) Next() int {
	s.last++
	return s.last
}

// Assign returns the point with the next id of the sequence.
func (s *Sequence) Assign(p Point) Point {
	return p.WithID(s.Next())
}
