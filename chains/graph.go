package chains

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"slices"

	"github.com/oliverbestmann/hullchains/geom"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/mat"
)

var ErrNotSTGraph = errors.New("not a planar st-graph")

var ErrInvalidEdge = errors.New("invalid edge")

// Vertex is a vertex of a planar graph. The ID of its point is the position
// the vertex was added at.
type Vertex struct {
	geom.Point

	// Index is the position of the vertex when ordered by y, then x.
	// Only valid after Graph.Prepare.
	Index int

	// In holds the neighbours with a smaller index, Out the ones with a
	// larger index. Both start with the leftmost neighbour.
	In  []*Vertex
	Out []*Vertex
}

func (v *Vertex) String() string {
	return fmt.Sprintf("%d: %s", v.Index, v.Point)
}

// Graph is a planar graph that can be decomposed into monotone chains
// running from its lowest to its highest vertex.
type Graph struct {
	// vertices in the order they were added
	added []*Vertex

	// vertices in index order, valid once prepared
	vertices []*Vertex

	adjacency *simple.UndirectedGraph

	// edge weights by vertex index, zero where there is no edge
	weights *mat.SymDense

	prepared bool
	balanced bool

	logger *slog.Logger
}

type Option func(g *Graph)

func WithLogger(logger *slog.Logger) Option {
	return func(g *Graph) {
		g.logger = logger
	}
}

func NewGraph(opts ...Option) *Graph {
	g := &Graph{
		adjacency: simple.NewUndirectedGraph(),
	}

	for _, opt := range opts {
		opt(g)
	}

	if g.logger == nil {
		g.logger = slog.Default()
	}

	return g
}

// AddVertex adds a vertex and returns the id used to reference it in AddEdge.
func (g *Graph) AddVertex(x, y float64) int {
	id := len(g.added)

	g.added = append(g.added, &Vertex{
		Point: geom.Pt(x, y).WithID(id),
		Index: -1,
	})

	g.adjacency.AddNode(simple.Node(id))
	g.invalidate()

	return id
}

// AddEdge connects the vertices with the given ids.
func (g *Graph) AddEdge(first, second int) error {
	if first < 0 || first >= len(g.added) || second < 0 || second >= len(g.added) {
		return fmt.Errorf("edge %d-%d with %d vertices: %w", first, second, len(g.added), ErrInvalidEdge)
	}

	if first == second {
		return fmt.Errorf("self loop at vertex %d: %w", first, ErrInvalidEdge)
	}

	edge := g.adjacency.NewEdge(simple.Node(first), simple.Node(second))
	g.adjacency.SetEdge(edge)
	g.invalidate()

	return nil
}

func (g *Graph) invalidate() {
	g.prepared = false
	g.balanced = false
}

// Len returns the number of vertices.
func (g *Graph) Len() int {
	return len(g.added)
}

// Vertices returns the vertices in index order. Before the graph is
// prepared they are returned in the order they were added.
func (g *Graph) Vertices() []*Vertex {
	if !g.prepared {
		return slices.Clone(g.added)
	}

	return slices.Clone(g.vertices)
}

// Edges returns all edges as pairs of vertices, the lower vertex first.
func (g *Graph) Edges() [][2]*Vertex {
	var edges [][2]*Vertex

	it := g.adjacency.Edges()
	for it.Next() {
		edge := it.Edge()

		one := g.added[edge.From().ID()]
		two := g.added[edge.To().ID()]
		if below(two, one) {
			one, two = two, one
		}

		edges = append(edges, [2]*Vertex{one, two})
	}

	slices.SortFunc(edges, func(a, b [2]*Vertex) int {
		if c := compareVertices(a[0], b[0]); c != 0 {
			return c
		}

		return compareVertices(a[1], b[1])
	})

	return edges
}

// Prepare orders the vertices by y, then x and derives the incoming and
// outgoing neighbours of every vertex. It fails if the graph can not be an
// st-graph.
func (g *Graph) Prepare() error {
	if g.prepared {
		return nil
	}

	n := len(g.added)
	if n < 2 {
		return fmt.Errorf("graph has %d vertices: %w", n, ErrNotSTGraph)
	}

	if err := g.checkConnected(); err != nil {
		return err
	}

	g.vertices = slices.Clone(g.added)
	slices.SortStableFunc(g.vertices, compareVertices)

	for idx, vertex := range g.vertices {
		vertex.Index = idx
	}

	for _, vertex := range g.vertices {
		vertex.In = nil
		vertex.Out = nil

		neighbours := g.adjacency.From(int64(vertex.ID))
		for neighbours.Next() {
			neighbour := g.added[neighbours.Node().ID()]

			if neighbour.Index < vertex.Index {
				vertex.In = append(vertex.In, neighbour)
			} else {
				vertex.Out = append(vertex.Out, neighbour)
			}
		}

		sortByAngle(vertex, vertex.In, true)
		sortByAngle(vertex, vertex.Out, false)
	}

	for _, vertex := range g.vertices {
		switch {
		case vertex.Index > 0 && len(vertex.In) == 0:
			return fmt.Errorf("vertex %s has no incoming edge: %w", vertex, ErrNotSTGraph)

		case vertex.Index < n-1 && len(vertex.Out) == 0:
			return fmt.Errorf("vertex %s has no outgoing edge: %w", vertex, ErrNotSTGraph)
		}
	}

	g.prepared = true
	g.balanced = false

	return nil
}

func (g *Graph) checkConnected() error {
	ids := make([]int64, len(g.added))
	for idx := range ids {
		ids[idx] = int64(idx)
	}

	uf := NewUnionFind(ids)

	edges := g.adjacency.Edges()
	for edges.Next() {
		edge := edges.Edge()
		uf.Union(edge.From().ID(), edge.To().ID())
	}

	if uf.Sets() != 1 {
		return fmt.Errorf("graph has %d components: %w", uf.Sets(), ErrNotSTGraph)
	}

	return nil
}

// Balance assigns every edge a weight, so that the weight flowing into a
// vertex equals the weight flowing out of it. The graph is prepared first
// if required.
func (g *Graph) Balance() error {
	if g.balanced {
		return nil
	}

	if err := g.Prepare(); err != nil {
		return err
	}

	n := len(g.vertices)

	g.weights = mat.NewSymDense(n, nil)
	for _, vertex := range g.vertices {
		for _, out := range vertex.Out {
			g.weights.SetSym(vertex.Index, out.Index, 1)
		}
	}

	// push surplus weight upwards over the leftmost outgoing edge
	for idx := 1; idx < n-1; idx++ {
		vertex := g.vertices[idx]

		in, out := g.flow(vertex)
		if in > out {
			g.addWeight(vertex, vertex.Out[0], in-out)
		}
	}

	// push surplus weight downwards over the leftmost incoming edge
	for idx := n - 2; idx >= 1; idx-- {
		vertex := g.vertices[idx]

		in, out := g.flow(vertex)
		if out > in {
			g.addWeight(vertex.In[0], vertex, out-in)
		}
	}

	g.balanced = true

	g.logger.Debug("Graph balanced",
		slog.Int("vertices", n),
		slog.Int("chains", g.ChainCount()),
	)

	return nil
}

// flow returns the summed weights of the incoming and outgoing edges.
func (g *Graph) flow(vertex *Vertex) (in, out int) {
	for _, other := range vertex.In {
		in += g.weight(vertex, other)
	}

	for _, other := range vertex.Out {
		out += g.weight(vertex, other)
	}

	return in, out
}

func (g *Graph) weight(one, two *Vertex) int {
	return int(g.weights.At(one.Index, two.Index))
}

func (g *Graph) addWeight(one, two *Vertex, delta int) {
	g.weights.SetSym(one.Index, two.Index, float64(g.weight(one, two)+delta))
}

// Weight returns the balanced weight of the edge between the vertices
// with the given indices. ok is false if there is no such edge or the
// graph is not yet balanced.
func (g *Graph) Weight(first, second int) (weight int, ok bool) {
	n := len(g.vertices)
	if !g.balanced || first < 0 || first >= n || second < 0 || second >= n {
		return 0, false
	}

	weight = int(g.weights.At(first, second))
	return weight, weight > 0
}

// ChainCount returns the number of chains the balanced graph decomposes
// into. It is zero for a graph that is not yet balanced.
func (g *Graph) ChainCount() int {
	if !g.balanced {
		return 0
	}

	source := g.vertices[0]

	_, out := g.flow(source)
	return out
}

// FindChains decomposes the graph into monotone chains from the lowest to
// the highest vertex, ordered from left to right.
func (g *Graph) FindChains() ([]Chain, error) {
	if err := g.Balance(); err != nil {
		return nil, err
	}

	n := len(g.vertices)

	remaining := mat.NewSymDense(n, nil)
	remaining.CopySym(g.weights)

	source := g.vertices[0]
	sink := g.vertices[n-1]

	count := g.ChainCount()

	chains := make([]Chain, 0, count)
	for range count {
		chain := Chain{source}

		current := source
		for current != sink {
			next := firstPositive(remaining, current)
			if next == nil {
				return nil, fmt.Errorf("chain %d is stuck at vertex %s: %w", len(chains), current, ErrNotSTGraph)
			}

			value := remaining.At(current.Index, next.Index)
			remaining.SetSym(current.Index, next.Index, value-1)

			chain = append(chain, next)
			current = next
		}

		chains = append(chains, chain)
	}

	return chains, nil
}

func firstPositive(weights *mat.SymDense, vertex *Vertex) *Vertex {
	for _, out := range vertex.Out {
		if weights.At(vertex.Index, out.Index) >= 1 {
			return out
		}
	}

	return nil
}

// below orders vertices by y, breaking ties with the smaller x.
func below(a, b *Vertex) bool {
	return a.Y < b.Y || (a.Y == b.Y && a.X < b.X)
}

func compareVertices(a, b *Vertex) int {
	switch {
	case below(a, b):
		return -1
	case below(b, a):
		return 1
	default:
		return 0
	}
}

// sortByAngle orders the neighbours of center by their direction seen
// from center, starting with the leftmost one. Incoming neighbours lie
// below center, outgoing ones above.
func sortByAngle(center *Vertex, neighbours []*Vertex, incoming bool) {
	angle := func(v *Vertex) float64 {
		return math.Atan2(v.Y-center.Y, v.X-center.X)
	}

	slices.SortStableFunc(neighbours, func(a, b *Vertex) int {
		angleA, angleB := angle(a), angle(b)

		var c int
		switch {
		case angleA < angleB:
			c = -1
		case angleA > angleB:
			c = 1
		}

		if !incoming {
			c = -c
		}

		if c == 0 {
			return a.Index - b.Index
		}

		return c
	})
}
