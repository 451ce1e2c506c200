package hull

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/oliverbestmann/hullchains/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvexHullMatchesBatchHull(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 12))

	h := New()

	var present []geom.Point
	for step, p := range randomPoints(rng, 250) {
		require.True(t, h.Insert(p))
		present = append(present, p)

		if step%3 == 2 {
			idx := rng.IntN(len(present))
			require.True(t, h.Delete(present[idx]))
			present = append(present[:idx], present[idx+1:]...)
		}

		require.Equal(t, geom.UpperHull(present), h.Upper())
		require.Equal(t, geom.LowerHull(present), h.Lower())
		require.Equal(t, geom.ConvexHull(present), h.Polygon())
	}

	assert.Equal(t, len(present), h.Len())
}

func TestConvexHullMatchesBatchHullOnGrid(t *testing.T) {
	for seed := range uint64(20) {
		rng := rand.New(rand.NewPCG(seed, 13))

		h := New()

		var present []geom.Point
		for step := range 300 {
			if len(present) > 0 && rng.Float64() < 0.3 {
				idx := rng.IntN(len(present))
				require.True(t, h.Delete(present[idx]))
				present = slices.Delete(present, idx, idx+1)
			} else {
				p := geom.Pt(float64(rng.IntN(6)), float64(rng.IntN(6)))
				if h.Insert(p) {
					present = append(present, p)
				}
			}

			if len(present) == 0 {
				assert.Empty(t, h.Polygon())
				continue
			}

			require.Equal(t, geom.UpperHull(present), h.Upper(), "seed %d, step %d", seed, step)
			require.Equal(t, geom.LowerHull(present), h.Lower(), "seed %d, step %d", seed, step)
			require.Equal(t, geom.ConvexHull(present), h.Polygon(), "seed %d, step %d", seed, step)
		}
	}
}

func TestConvexHullVerticalEdges(t *testing.T) {
	cases := []struct {
		name    string
		points  []geom.Point
		upper   []geom.Point
		lower   []geom.Point
		polygon []geom.Point
	}{
		{
			name:    "columns at both ends",
			points:  pts(0, 1, 0, 5, 1, 3, 2, 1, 2, 5),
			upper:   pts(0, 1, 0, 5, 2, 5),
			lower:   pts(0, 1, 2, 1, 2, 5),
			polygon: pts(0, 1, 2, 1, 2, 5, 0, 5),
		},
		{
			name:    "single column",
			points:  pts(0, 1, 0, 3, 0, 5),
			upper:   pts(0, 1, 0, 5),
			lower:   pts(0, 1, 0, 5),
			polygon: pts(0, 1, 0, 5),
		},
		{
			name:    "diagonal",
			points:  pts(0, 0, 1, 1, 2, 2),
			upper:   pts(0, 0, 2, 2),
			lower:   pts(0, 0, 2, 2),
			polygon: pts(0, 0, 2, 2),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := New()
			for _, p := range tc.points {
				require.True(t, h.Insert(p))
			}

			assert.Equal(t, tc.upper, h.Upper())
			assert.Equal(t, tc.lower, h.Lower())
			assert.Equal(t, tc.polygon, h.Polygon())
		})
	}
}

func TestConvexHullSmall(t *testing.T) {
	h := New()
	assert.Empty(t, h.Polygon())

	h.Insert(geom.Pt(1, 1))
	assert.Equal(t, pts(1, 1), h.Polygon())

	h.Insert(geom.Pt(3, 0))
	assert.Equal(t, pts(1, 1, 3, 0), h.Polygon())

	h.Insert(geom.Pt(2, 5))
	assert.Equal(t, pts(1, 1, 3, 0, 2, 5), h.Polygon())
	assert.Equal(t, pts(1, 1, 2, 5, 3, 0), h.Upper())
	assert.Equal(t, pts(1, 1, 3, 0), h.Lower())

	// a point inside the triangle changes nothing
	h.Insert(geom.Pt(1.8, 2))
	assert.Equal(t, pts(1, 1, 3, 0, 2, 5), h.Polygon())
	assert.True(t, h.Contains(geom.Pt(1.8, 2)))
	assert.Equal(t, pts(1, 1, 1.8, 2, 2, 5, 3, 0), h.Points())
}

func TestConvexHullApply(t *testing.T) {
	h := New()

	stats := h.Apply(
		Insert(geom.Pt(0, 0)),
		Insert(geom.Pt(4, 0)),
		Insert(geom.Pt(2, 3)),
		Insert(geom.Pt(2, 3)),
		Delete(geom.Pt(4, 0)),
		Delete(geom.Pt(9, 9)),
		Insert(geom.Pt(2.5, -3)),
	)

	assert.Equal(t, Stats{Inserted: 4, Deleted: 1, Duplicates: 1, Missing: 1}, stats)
	assert.Equal(t, pts(0, 0, 2.5, -3, 2, 3), h.Polygon())
}

func TestOperationString(t *testing.T) {
	assert.Equal(t, "i 1.5 -2", Insert(geom.Pt(1.5, -2)).String())
	assert.Equal(t, "d 3 4", Delete(geom.Pt(3, 4)).String())
	assert.Equal(t, "OpKind(7)", OpKind(7).String())
}
