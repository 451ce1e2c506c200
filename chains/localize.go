package chains

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/oliverbestmann/hullchains/geom"
	"github.com/quasilyte/gmath"
)

// Chain is a path through the graph from the lowest to the highest
// vertex with ascending y.
type Chain []*Vertex

// Points returns the positions of the vertices of the chain.
func (c Chain) Points() []geom.Point {
	points := make([]geom.Point, len(c))
	for idx, vertex := range c {
		points[idx] = vertex.Point
	}

	return points
}

// Indices returns the index of every vertex of the chain.
func (c Chain) Indices() []int {
	indices := make([]int, len(c))
	for idx, vertex := range c {
		indices[idx] = vertex.Index
	}

	return indices
}

func (c Chain) String() string {
	return fmt.Sprint(c.Indices())
}

// Discriminate reports whether p lies on or left of the chain. The chain
// needs at least two vertices.
func Discriminate(chain Chain, p geom.Point) bool {
	if len(chain) < 2 {
		panic("chain needs at least two vertices")
	}

	lo, hi := 0, len(chain)-1
	for hi-lo > 1 {
		mid := lo + (hi-lo+1)/2
		if p.Y < chain[mid].Y {
			hi = mid
		} else {
			lo = mid
		}
	}

	return geom.IsLeft(chain[lo].Point, chain[hi].Point, p)
}

// Bracket holds the indices of the two neighbouring chains that enclose a
// point. A point outside of all chains has -1 on the open side.
type Bracket struct {
	Left  int
	Right int
}

func (b Bracket) String() string {
	return fmt.Sprintf("(%d, %d)", b.Left, b.Right)
}

// Localize finds the chains directly left and right of p. The chains must be
// ordered from left to right. A point on a chain counts as left of it.
func Localize(chains []Chain, p geom.Point) Bracket {
	lo, hi := 0, len(chains)
	if lo == hi {
		return Bracket{Left: -1, Right: -1}
	}

	for hi-lo > 1 {
		mid := lo + (hi-lo)/2 - 1

		if Discriminate(chains[mid], p) {
			hi = mid + 1
			continue
		}

		if Discriminate(chains[mid+1], p) {
			return Bracket{Left: mid, Right: mid + 1}
		}

		lo = mid + 1
	}

	if Discriminate(chains[lo], p) {
		return Bracket{Left: lo - 1, Right: lo}
	}

	right := lo + 1
	if right == len(chains) {
		right = -1
	}

	return Bracket{Left: lo, Right: right}
}

// Localizer answers localization queries against a fixed set of chains
// and remembers recent answers.
type Localizer struct {
	chains []Chain
	cache  *lru.Cache[gmath.Vec, Bracket]
}

// NewLocalizer creates a localizer over chains ordered from left to right.
// A cacheSize of zero disables caching.
func NewLocalizer(chains []Chain, cacheSize int) (*Localizer, error) {
	l := &Localizer{chains: chains}

	if cacheSize > 0 {
		cache, err := lru.New[gmath.Vec, Bracket](cacheSize)
		if err != nil {
			return nil, fmt.Errorf("create cache: %w", err)
		}

		l.cache = cache
	}

	return l, nil
}

func (l *Localizer) Chains() []Chain {
	return l.chains
}

// Locate returns the bracket of p, see Localize.
func (l *Localizer) Locate(p geom.Point) Bracket {
	if l.cache == nil {
		return Localize(l.chains, p)
	}

	if bracket, ok := l.cache.Get(p.Vec); ok {
		return bracket
	}

	bracket := Localize(l.chains, p)
	l.cache.Add(p.Vec, bracket)

	return bracket
}
