package hull

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/oliverbestmann/hullchains/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pts(coords ...float64) []geom.Point {
	var points []geom.Point
	for i := 0; i+1 < len(coords); i += 2 {
		points = append(points, geom.Pt(coords[i], coords[i+1]))
	}

	return points
}

func randomPoints(rng *rand.Rand, n int) []geom.Point {
	points := make([]geom.Point, n)
	for idx := range points {
		points[idx] = geom.Pt(rng.Float64()*1000, rng.Float64()*1000).WithID(idx + 1)
	}

	return points
}

// gridPoints returns up to n distinct points on a small integer grid, so
// that many of them share a coordinate or lie on a common line.
func gridPoints(rng *rand.Rand, n int) []geom.Point {
	var points []geom.Point
	for range n {
		p := geom.Pt(float64(rng.IntN(6)), float64(rng.IntN(6))).WithID(len(points) + 1)

		if !slices.ContainsFunc(points, p.Same) {
			points = append(points, p)
		}
	}

	return points
}

func TestMergeSingletons(t *testing.T) {
	a := geom.Pt(1, 1)

	bridge, err := Merge([]geom.Point{a}, []geom.Point{a})
	require.NoError(t, err)

	assert.Equal(t, []geom.Point{a}, bridge.KeptLeft)
	assert.Equal(t, []geom.Point{a}, bridge.KeptRight)
	assert.Empty(t, bridge.DroppedLeft)
	assert.Empty(t, bridge.DroppedRight)
	assert.Equal(t, 0, bridge.Split)
}

func TestMergeEmptyChain(t *testing.T) {
	_, err := Merge(nil, pts(1, 1))
	require.ErrorIs(t, err, ErrEmptyChain)

	_, err = Merge(pts(1, 1), nil)
	require.ErrorIs(t, err, ErrEmptyChain)
}

func TestMerge(t *testing.T) {
	cases := []struct {
		name         string
		left, right  []geom.Point
		keptLeft     []geom.Point
		droppedLeft  []geom.Point
		droppedRight []geom.Point
		keptRight    []geom.Point
	}{
		{
			name:      "nothing dropped",
			left:      pts(0, 0, 1, 2),
			right:     pts(2, 2, 3, 0),
			keptLeft:  pts(0, 0, 1, 2),
			keptRight: pts(2, 2, 3, 0),
		},
		{
			name:      "single left point",
			left:      pts(0, 0),
			right:     pts(1, 2, 2, 2, 3, 0),
			keptLeft:  pts(0, 0),
			keptRight: pts(1, 2, 2, 2, 3, 0),
		},
		{
			name:        "left chain absorbed",
			left:        pts(0, 0, 1, 1, 2, 1.5),
			right:       pts(3, 10),
			keptLeft:    pts(0, 0),
			droppedLeft: pts(1, 1, 2, 1.5),
			keptRight:   pts(3, 10),
		},
		{
			name:         "right chain absorbed",
			left:         pts(0, 10),
			right:        pts(1, 1, 2, 1.5, 3, 0),
			keptLeft:     pts(0, 10),
			droppedRight: pts(1, 1, 2, 1.5),
			keptRight:    pts(3, 0),
		},
		{
			name:         "left tail absorbed",
			left:         pts(0, 0, 1, 3, 2, 4, 3, 3.5),
			right:        pts(4, 3.6, 5, 3, 6, 0),
			keptLeft:     pts(0, 0, 1, 3, 2, 4),
			droppedLeft:  pts(3, 3.5),
			droppedRight: nil,
			keptRight:    pts(4, 3.6, 5, 3, 6, 0),
		},
		{
			name:         "bridge over a valley",
			left:         pts(0, 0, 1, 5, 2, 4, 3, 1),
			right:        pts(4, 1, 5, 4, 6, 5, 7, 0),
			keptLeft:     pts(0, 0, 1, 5),
			droppedLeft:  pts(2, 4, 3, 1),
			droppedRight: pts(4, 1, 5, 4),
			keptRight:    pts(6, 5, 7, 0),
		},
		{
			name:        "collinear left point",
			left:        pts(0, 5, 1, 5),
			right:       pts(3, 5),
			keptLeft:    pts(0, 5),
			droppedLeft: pts(1, 5),
			keptRight:   pts(3, 5),
		},
		{
			name:         "collinear right point",
			left:         pts(0, 5),
			right:        pts(1, 5, 3, 5),
			keptLeft:     pts(0, 5),
			droppedRight: pts(1, 5),
			keptRight:    pts(3, 5),
		},
		{
			name:      "vertical left edge",
			left:      pts(0, 0, 0, 5),
			right:     pts(1, 1),
			keptLeft:  pts(0, 0, 0, 5),
			keptRight: pts(1, 1),
		},
		{
			name:         "vertical right edge",
			left:         pts(0, 0),
			right:        pts(2, 1, 2, 5),
			keptLeft:     pts(0, 0),
			droppedRight: pts(2, 1),
			keptRight:    pts(2, 5),
		},
		{
			name:        "column split between chains",
			left:        pts(0, 0, 0, 3),
			right:       pts(0, 5, 1, 4, 2, 0),
			keptLeft:    pts(0, 0),
			droppedLeft: pts(0, 3),
			keptRight:   pts(0, 5, 1, 4, 2, 0),
		},
		{
			name:         "column shared by both chains",
			left:         pts(0, 0, 0, 1),
			right:        pts(0, 2, 0, 3, 1, 0),
			keptLeft:     pts(0, 0),
			droppedLeft:  pts(0, 1),
			droppedRight: pts(0, 2),
			keptRight:    pts(0, 3, 1, 0),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bridge, err := Merge(tc.left, tc.right)
			require.NoError(t, err)

			assert.Equal(t, tc.keptLeft, bridge.KeptLeft)
			assert.ElementsMatch(t, tc.droppedLeft, bridge.DroppedLeft)
			assert.ElementsMatch(t, tc.droppedRight, bridge.DroppedRight)
			assert.Equal(t, tc.keptRight, bridge.KeptRight)
			assert.Equal(t, len(tc.keptLeft)-1, bridge.Split)
		})
	}
}

func TestMergeMatchesBatchHull(t *testing.T) {
	for seed := range uint64(200) {
		rng := rand.New(rand.NewPCG(seed, seed))

		points := randomPoints(rng, 2+rng.IntN(60))
		slices.SortFunc(points, geom.Point.Compare)

		k := 1 + rng.IntN(len(points)-1)
		left := geom.UpperHull(points[:k])
		right := geom.UpperHull(points[k:])

		bridge, err := Merge(left, right)
		require.NoError(t, err)

		require.Equal(t, geom.UpperHull(points), bridge.Hull(), "seed %d", seed)

		// both inputs split into a kept and a dropped part
		assert.Equal(t, left, slices.Concat(bridge.KeptLeft, bridge.DroppedLeft))
		assert.Equal(t, right, slices.Concat(bridge.DroppedRight, bridge.KeptRight))
		assert.Equal(t, len(bridge.KeptLeft)-1, bridge.Split)
	}
}

func TestMergeMatchesBatchHullOnGrid(t *testing.T) {
	for seed := range uint64(500) {
		rng := rand.New(rand.NewPCG(seed, 3))

		points := gridPoints(rng, 2+rng.IntN(30))
		if len(points) < 2 {
			continue
		}

		slices.SortFunc(points, geom.Point.Compare)

		k := 1 + rng.IntN(len(points)-1)
		left := geom.UpperHull(points[:k])
		right := geom.UpperHull(points[k:])

		bridge, err := Merge(left, right)
		require.NoError(t, err, "seed %d", seed)

		require.Equal(t, geom.UpperHull(points), bridge.Hull(), "seed %d: %v | %v", seed, left, right)
		assert.Equal(t, left, slices.Concat(bridge.KeptLeft, bridge.DroppedLeft))
		assert.Equal(t, right, slices.Concat(bridge.DroppedRight, bridge.KeptRight))
	}
}

func TestMergeUnorderedChain(t *testing.T) {
	// the right chain is ordered from right to left
	_, err := Merge(pts(0, 0, 1, 7), pts(8, 6, 6, 5))
	require.ErrorIs(t, err, ErrNoBridge)
}

func TestMergeDoesNotAliasInput(t *testing.T) {
	left := pts(0, 0, 1, 2)
	right := pts(2, 2, 3, 0)

	bridge, err := Merge(left, right)
	require.NoError(t, err)

	bridge.KeptLeft[0] = geom.Pt(-1, -1)
	bridge.KeptRight[0] = geom.Pt(-1, -1)

	assert.Equal(t, pts(0, 0, 1, 2), left)
	assert.Equal(t, pts(2, 2, 3, 0), right)
}

func TestClassString(t *testing.T) {
	assert.Equal(t, "supporting", Supporting.String())
	assert.Equal(t, "concave", Concave.String())
	assert.Equal(t, "convex", Convex.String())
}
