package hull

import (
	"errors"
	"fmt"
	"slices"

	"github.com/oliverbestmann/hullchains/geom"
)

var ErrEmptyChain = errors.New("chain is empty")

var ErrNoBridge = errors.New("no bridge between chains")

// Class describes where a candidate point of one chain lies relative to the
// bridge, judged by the line through the candidate and the current
// candidate of the other chain.
type Class int

const (
	// Supporting points have no neighbour above the line.
	Supporting Class = iota

	// Concave points have the neighbour facing the other chain above the
	// line, the bridge lies further towards the other chain.
	Concave

	// Convex points have the neighbour facing away from the other chain
	// on or above the line, the bridge lies further away from the other
	// chain. A point between two collinear points is never part of a hull.
	Convex
)

func (c Class) String() string {
	switch c {
	case Supporting:
		return "supporting"
	case Concave:
		return "concave"
	case Convex:
		return "convex"
	default:
		return "unknown"
	}
}

// Bridge is the result of merging two upper hull chains.
type Bridge struct {
	// KeptLeft and KeptRight form the upper hull of both chains.
	KeptLeft  []geom.Point
	KeptRight []geom.Point

	// DroppedLeft and DroppedRight are the points that are no longer
	// part of the merged hull.
	DroppedLeft  []geom.Point
	DroppedRight []geom.Point

	// Split is the index of the last left point in the merged hull.
	Split int
}

// Hull returns the merged chain.
func (b Bridge) Hull() []geom.Point {
	return slices.Concat(b.KeptLeft, b.KeptRight)
}

// Merge finds the bridge between two upper hull chains. Both chains must be
// ordered by x, then y, and every point of left must come before every point
// of right in that order.
//
// The search keeps a window of candidates on each chain and halves at least
// one of them per step, so it runs in O(log(len(left)) + log(len(right))).
func Merge(left, right []geom.Point) (Bridge, error) {
	if len(left) == 0 || len(right) == 0 {
		return Bridge{}, ErrEmptyChain
	}

	if len(left) == 1 && len(right) == 1 {
		return bridgeAt(left, right, 0, 0), nil
	}

	minLeft, maxLeft := 0, len(left)-1
	minRight, maxRight := 0, len(right)-1

	i := (minLeft + maxLeft) / 2
	j := (minRight + maxRight) / 2

	for range len(left) + len(right) + 1 {
		classLeft := classifyLeft(left, i, right[j])
		classRight := classifyRight(right, j, left[i])

		if classLeft == Supporting && classRight == Supporting {
			return bridgeAt(left, right, i, j), nil
		}

		switch classLeft {
		case Convex:
			maxLeft = i - 1

		case Supporting:
			maxLeft = i

		case Concave:
			if classRight == Supporting {
				minLeft = i + 1
			}
		}

		switch classRight {
		case Convex:
			minRight = j + 1

		case Supporting:
			minRight = j

		case Concave:
			if classLeft == Supporting {
				maxRight = j - 1
			}
		}

		if classLeft == Concave && classRight == Concave {
			dropLeft, dropRight := resolveConcave(left, right, i, j)

			if dropLeft {
				minLeft = i + 1
			}

			if dropRight {
				maxRight = j - 1
			}
		}

		minLeft, maxLeft = clampWindow(minLeft, maxLeft)
		minRight, maxRight = clampWindow(minRight, maxRight)

		i = (minLeft + maxLeft) / 2
		j = (minRight + maxRight) / 2
	}

	return Bridge{}, fmt.Errorf("%w: %d left and %d right points, stopped at %s and %s",
		ErrNoBridge, len(left), len(right), left[i], right[j])
}

// resolveConcave decides which candidates can not be part of the bridge when
// both edges leaving the candidates towards the other chain rise above the
// line between them. If the lines through both edges meet left of a vertical
// line separating the chains, the left candidate is ruled out. If they meet
// right of one, the right candidate is.
func resolveConcave(left, right []geom.Point, i, j int) (dropLeft, dropRight bool) {
	a, b := left[i], left[i+1]

	// every vertical line between lo and hi separates both chains
	lo := left[len(left)-1].X
	hi := right[0].X

	x, ok := geom.LineIntersectionX(a, b, right[j-1], right[j])
	if !ok {
		x = (lo + hi) / 2
	}

	dropLeft = x < hi
	dropRight = x > lo

	if dropLeft || dropRight {
		return dropLeft, dropRight
	}

	// both chains touch the column the edges meet in. The left candidate is
	// still the bridge if the edge leaving it runs into a right point of that
	// column, the edge point between them is collinear and dropped.
	for _, q := range right[:min(2, len(right))] {
		if q.X == hi && geom.Cross(a, b, q) == 0 {
			return false, true
		}
	}

	return true, false
}

// classifyLeft classifies left[i] against the line to q on the right chain.
// A missing neighbour at either end of the chain never lies above the line.
func classifyLeft(left []geom.Point, i int, q geom.Point) Class {
	p := left[i]

	switch {
	case i > 0 && geom.IsLeft(p, q, left[i-1]):
		return Convex
	case i < len(left)-1 && geom.Above(p, q, left[i+1]):
		return Concave
	default:
		return Supporting
	}
}

// classifyRight classifies right[j] against the line from p on the left chain.
func classifyRight(right []geom.Point, j int, p geom.Point) Class {
	q := right[j]

	switch {
	case j < len(right)-1 && geom.IsLeft(p, q, right[j+1]):
		return Convex
	case j > 0 && geom.Above(p, q, right[j-1]):
		return Concave
	default:
		return Supporting
	}
}

func clampWindow(lo, hi int) (int, int) {
	if hi < lo {
		// only reachable if the inputs are not upper hulls
		return lo, lo
	}

	return lo, hi
}

func bridgeAt(left, right []geom.Point, i, j int) Bridge {
	return Bridge{
		KeptLeft:     slices.Clone(left[:i+1]),
		DroppedLeft:  slices.Clone(left[i+1:]),
		DroppedRight: slices.Clone(right[:j]),
		KeptRight:    slices.Clone(right[j:]),
		Split:        i,
	}
}
