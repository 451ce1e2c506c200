package hull

import (
	"fmt"

	"github.com/oliverbestmann/hullchains/geom"
)

type OpKind int

const (
	OpInsert OpKind = iota
	OpDelete
)

func (k OpKind) String() string {
	switch k {
	case OpInsert:
		return "i"
	case OpDelete:
		return "d"
	default:
		return fmt.Sprintf("OpKind(%d)", int(k))
	}
}

// Operation is a single update of the point set.
type Operation struct {
	Kind  OpKind
	Point geom.Point
}

func Insert(p geom.Point) Operation {
	return Operation{Kind: OpInsert, Point: p}
}

func Delete(p geom.Point) Operation {
	return Operation{Kind: OpDelete, Point: p}
}

func (op Operation) String() string {
	return fmt.Sprintf("%s %g %g", op.Kind, op.Point.X, op.Point.Y)
}

type Stats struct {
	Inserted   int
	Deleted    int
	Duplicates int
	Missing    int
}

// Apply runs the operations in order.
func (h *ConvexHull) Apply(ops ...Operation) Stats {
	var stats Stats

	for _, op := range ops {
		switch op.Kind {
		case OpInsert:
			if h.Insert(op.Point) {
				stats.Inserted++
			} else {
				stats.Duplicates++
			}

		case OpDelete:
			if h.Delete(op.Point) {
				stats.Deleted++
			} else {
				stats.Missing++
			}
		}
	}

	return stats
}
