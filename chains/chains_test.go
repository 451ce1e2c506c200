package chains

import (
	"math/rand/v2"
	"testing"

	"github.com/oliverbestmann/hullchains/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exampleGraph returns a triangulation of five points with
// three inner faces.
func exampleGraph(t *testing.T) *Graph {
	g := NewGraph()

	for _, p := range [][2]float64{{0, 0}, {1, 2}, {2, -1}, {2, 3}, {3, 1}} {
		g.AddVertex(p[0], p[1])
	}

	edges := [][2]int{{0, 2}, {2, 4}, {4, 3}, {3, 1}, {1, 0}, {2, 1}, {2, 3}}
	for _, edge := range edges {
		require.NoError(t, g.AddEdge(edge[0], edge[1]))
	}

	return g
}

// gridGraph returns a triangulated grid of size*size vertices. Each row is
// tilted slightly so no two vertices share a y coordinate.
func gridGraph(t *testing.T, size int) *Graph {
	g := NewGraph()

	id := func(col, row int) int { return row*size + col }

	for row := range size {
		for col := range size {
			g.AddVertex(float64(col), float64(row)+0.01*float64(col))
		}
	}

	for row := range size {
		for col := range size {
			if col+1 < size {
				require.NoError(t, g.AddEdge(id(col, row), id(col+1, row)))
			}

			if row+1 < size {
				require.NoError(t, g.AddEdge(id(col, row), id(col, row+1)))
			}

			if col+1 < size && row+1 < size {
				require.NoError(t, g.AddEdge(id(col, row), id(col+1, row+1)))
			}
		}
	}

	return g
}

func ids(vertices []*Vertex) []int {
	var result []int
	for _, vertex := range vertices {
		result = append(result, vertex.ID)
	}

	return result
}

func indices(vertices []*Vertex) []int {
	var result []int
	for _, vertex := range vertices {
		result = append(result, vertex.Index)
	}

	return result
}

func TestPrepare(t *testing.T) {
	g := exampleGraph(t)
	require.NoError(t, g.Prepare())

	vertices := g.Vertices()
	assert.Equal(t, []int{2, 0, 4, 1, 3}, ids(vertices))
	assert.Equal(t, []int{0, 1, 2, 3, 4}, indices(vertices))

	source := vertices[0]
	assert.Empty(t, source.In)
	assert.Equal(t, []int{1, 3, 4, 2}, indices(source.Out))

	// (1; 2) is entered from (0; 0) and (2; -1)
	assert.Equal(t, []int{1, 0}, indices(vertices[3].In))
	assert.Equal(t, []int{4}, indices(vertices[3].Out))

	sink := vertices[4]
	assert.Equal(t, []int{3, 0, 2}, indices(sink.In))
	assert.Empty(t, sink.Out)
}

func TestBalance(t *testing.T) {
	g := exampleGraph(t)

	assert.Equal(t, 0, g.ChainCount())
	_, ok := g.Weight(0, 1)
	assert.False(t, ok, "not balanced yet")

	require.NoError(t, g.Balance())

	assert.Equal(t, 4, g.ChainCount())

	weight, ok := g.Weight(3, 4)
	assert.True(t, ok)
	assert.Equal(t, 2, weight)

	weight, ok = g.Weight(4, 3)
	assert.True(t, ok)
	assert.Equal(t, 2, weight)

	for _, edge := range [][2]int{{0, 1}, {0, 2}, {0, 3}, {0, 4}, {1, 3}, {2, 4}} {
		weight, ok := g.Weight(edge[0], edge[1])
		assert.True(t, ok)
		assert.Equal(t, 1, weight, "edge %v", edge)
	}

	_, ok = g.Weight(1, 2)
	assert.False(t, ok, "no edge")

	_, ok = g.Weight(0, 9)
	assert.False(t, ok, "out of range")
}

func TestFindChains(t *testing.T) {
	g := exampleGraph(t)

	chains, err := g.FindChains()
	require.NoError(t, err)

	var actual [][]int
	for _, chain := range chains {
		actual = append(actual, chain.Indices())
	}

	expected := [][]int{
		{0, 1, 3, 4},
		{0, 3, 4},
		{0, 4},
		{0, 2, 4},
	}

	assert.Equal(t, expected, actual)

	source := g.Vertices()[0]
	assert.Len(t, chains, len(source.Out))

	assert.Equal(t, []geom.Point{
		geom.Pt(2, -1).WithID(2),
		geom.Pt(2, 3).WithID(3),
	}, chains[2].Points())

	assert.Equal(t, "[0 2 4]", chains[3].String())
}

func TestChainConservation(t *testing.T) {
	for _, g := range []*Graph{exampleGraph(t), gridGraph(t, 6)} {
		chains, err := g.FindChains()
		require.NoError(t, err)

		vertices := g.Vertices()
		n := len(vertices)

		source := vertices[0]
		sink := vertices[n-1]

		var out, in int
		for _, vertex := range source.Out {
			weight, _ := g.Weight(source.Index, vertex.Index)
			out += weight
		}

		for _, vertex := range sink.In {
			weight, _ := g.Weight(vertex.Index, sink.Index)
			in += weight
		}

		assert.Equal(t, out, in)
		assert.Equal(t, out, len(chains))
		assert.Equal(t, out, g.ChainCount())

		usage := map[[2]int]int{}
		for _, chain := range chains {
			require.Equal(t, 0, chain[0].Index)
			require.Equal(t, n-1, chain[len(chain)-1].Index)

			for idx := 1; idx < len(chain); idx++ {
				require.Less(t, chain[idx-1].Index, chain[idx].Index)
				require.Less(t, chain[idx-1].Y, chain[idx].Y)
				usage[[2]int{chain[idx-1].Index, chain[idx].Index}]++
			}
		}

		for edge, used := range usage {
			weight, ok := g.Weight(edge[0], edge[1])
			require.True(t, ok)
			assert.LessOrEqual(t, used, weight, "edge %v", edge)
		}

		// every edge is covered by some chain
		assert.Len(t, usage, len(g.Edges()))
	}
}

func TestNotSTGraph(t *testing.T) {
	t.Run("single vertex", func(t *testing.T) {
		g := NewGraph()
		g.AddVertex(0, 0)

		_, err := g.FindChains()
		assert.ErrorIs(t, err, ErrNotSTGraph)
	})

	t.Run("disconnected", func(t *testing.T) {
		g := NewGraph()
		g.AddVertex(0, 0)
		g.AddVertex(0, 1)
		g.AddVertex(5, 5)
		g.AddVertex(5, 6)
		require.NoError(t, g.AddEdge(0, 1))
		require.NoError(t, g.AddEdge(2, 3))

		err := g.Prepare()
		assert.ErrorIs(t, err, ErrNotSTGraph)
	})

	t.Run("dead end", func(t *testing.T) {
		g := NewGraph()
		g.AddVertex(0, 0)
		g.AddVertex(1, 1)
		g.AddVertex(-1, 1)
		g.AddVertex(0, 2)
		require.NoError(t, g.AddEdge(0, 1))
		require.NoError(t, g.AddEdge(0, 2))
		require.NoError(t, g.AddEdge(1, 3))

		err := g.Balance()
		assert.ErrorIs(t, err, ErrNotSTGraph)
		assert.ErrorContains(t, err, "no outgoing edge")
	})

	t.Run("second source", func(t *testing.T) {
		g := NewGraph()
		g.AddVertex(0, 0)
		g.AddVertex(0, 2)
		g.AddVertex(1, 1)
		g.AddVertex(3, 1)
		require.NoError(t, g.AddEdge(0, 1))
		require.NoError(t, g.AddEdge(2, 1))
		require.NoError(t, g.AddEdge(3, 2))

		_, err := g.FindChains()
		assert.ErrorIs(t, err, ErrNotSTGraph)
		assert.ErrorContains(t, err, "no incoming edge")
	})
}

func TestAddEdgeValidation(t *testing.T) {
	g := NewGraph()
	g.AddVertex(0, 0)
	g.AddVertex(1, 1)

	assert.ErrorIs(t, g.AddEdge(0, 2), ErrInvalidEdge)
	assert.ErrorIs(t, g.AddEdge(-1, 0), ErrInvalidEdge)
	assert.ErrorIs(t, g.AddEdge(1, 1), ErrInvalidEdge)

	require.NoError(t, g.AddEdge(0, 1))

	// adding the same edge again does not change the graph
	require.NoError(t, g.AddEdge(1, 0))
	assert.Len(t, g.Edges(), 1)

	chains, err := g.FindChains()
	require.NoError(t, err)
	require.Len(t, chains, 1)
	assert.Equal(t, []int{0, 1}, chains[0].Indices())
}

func TestGraphChangesAfterPrepare(t *testing.T) {
	g := NewGraph()
	g.AddVertex(0, 0)
	g.AddVertex(0, 2)
	require.NoError(t, g.AddEdge(0, 1))

	chains, err := g.FindChains()
	require.NoError(t, err)
	assert.Len(t, chains, 1)

	g.AddVertex(1, 1)
	require.NoError(t, g.AddEdge(0, 2))
	require.NoError(t, g.AddEdge(2, 1))

	chains, err = g.FindChains()
	require.NoError(t, err)
	assert.Len(t, chains, 2)
	assert.Equal(t, 2, g.ChainCount())
}

func TestUnionFind(t *testing.T) {
	uf := NewUnionFind([]string{"a", "b", "c", "d", "a"})
	assert.Equal(t, 4, uf.Sets())

	assert.True(t, uf.Union("a", "b"))
	assert.True(t, uf.Union("c", "d"))
	assert.False(t, uf.Union("b", "a"))
	assert.Equal(t, 2, uf.Sets())

	assert.Equal(t, uf.Find("a"), uf.Find("b"))
	assert.NotEqual(t, uf.Find("a"), uf.Find("c"))

	assert.True(t, uf.Union("b", "d"))
	assert.Equal(t, 1, uf.Sets())
	assert.Equal(t, uf.Find("a"), uf.Find("d"))
}

func TestLocalizeGrid(t *testing.T) {
	g := gridGraph(t, 5)

	chains, err := g.FindChains()
	require.NoError(t, err)

	rng := rand.New(rand.NewPCG(5, 6))

	for range 500 {
		// stay within the y range of the chains
		p := geom.Pt(rng.Float64()*6-0.5, 0.05+rng.Float64()*3.9)

		bracket := Localize(chains, p)

		if bracket.Left >= 0 {
			assert.False(t, Discriminate(chains[bracket.Left], p), "%s right of chain %d", p, bracket.Left)
		} else {
			assert.True(t, Discriminate(chains[0], p))
		}

		if bracket.Right >= 0 {
			assert.True(t, Discriminate(chains[bracket.Right], p), "%s left of chain %d", p, bracket.Right)
			assert.Equal(t, bracket.Left+1, bracket.Right)
		} else {
			assert.False(t, Discriminate(chains[len(chains)-1], p))
		}
	}
}
