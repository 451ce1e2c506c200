// Package pointgen generates reproducible point workloads. Points are not
// spread uniformly: a noise field thins them out in some regions and lets
// them cluster in others, which gives hulls with long and short edges.
package pointgen

import (
	"math"
	"math/rand/v2"

	"github.com/furui/fastnoiselite-go"
	"github.com/oliverbestmann/hullchains/geom"
	"github.com/oliverbestmann/hullchains/hull"
	"github.com/quasilyte/gmath"
)

// minDensity keeps every region reachable, so sampling always terminates.
const minDensity = 0.05

type Generator struct {
	rng   *rand.Rand
	noise *fastnoiselite.FastNoiseLite

	bounds gmath.Rect

	// scale applied to positions before sampling the noise field
	scale float64

	// number of decimals kept for every coordinate, negative to keep all
	precision int

	seq geom.Sequence

	// points inserted and not yet deleted, in insertion order
	present []geom.Point
	known   map[gmath.Vec]struct{}
}

type Option func(g *Generator)

// WithFeatureSize sets the typical distance between dense regions.
func WithFeatureSize(size float64) Option {
	return func(g *Generator) {
		g.scale = 1 / size
	}
}

// WithPrecision rounds every coordinate to the given number of decimals.
func WithPrecision(decimals int) Option {
	return func(g *Generator) {
		g.precision = decimals
	}
}

func New(seed uint64, bounds gmath.Rect, opts ...Option) *Generator {
	rng := RandWithSeed(seed)

	noise := fastnoiselite.NewNoise()
	noise.Seed = rng.Int32()
	noise.Frequency = 1

	g := &Generator{
		rng:       rng,
		noise:     noise,
		bounds:    bounds,
		scale:     4 / math.Max(bounds.Max.X-bounds.Min.X, bounds.Max.Y-bounds.Min.Y),
		precision: -1,
		known:     map[gmath.Vec]struct{}{},
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Density returns the probability that a sampled position at pos is kept.
func (g *Generator) Density(pos gmath.Vec) float64 {
	type F = fastnoiselite.FNLfloat

	value := float64(g.noise.GetNoise2D(F(pos.X*g.scale), F(pos.Y*g.scale)))

	// noise is roughly within [-1, 1]
	return min(1, math.Max(minDensity, (value+1)/2))
}

// Point returns a new point that was not returned before.
func (g *Generator) Point() geom.Point {
	for {
		pos := gmath.Vec{
			X: g.round(randf(g.rng, g.bounds.Min.X, g.bounds.Max.X)),
			Y: g.round(randf(g.rng, g.bounds.Min.Y, g.bounds.Max.Y)),
		}

		if _, ok := g.known[pos]; ok {
			continue
		}

		if !prob(g.rng, g.Density(pos)) {
			continue
		}

		g.known[pos] = struct{}{}

		p := g.seq.Assign(geom.Point{Vec: pos})
		g.present = append(g.present, p)

		return p
	}
}

// Points returns n new points.
func (g *Generator) Points(n int) []geom.Point {
	points := make([]geom.Point, 0, n)
	for range n {
		points = append(points, g.Point())
	}

	return points
}

// Operations returns n operations. Each one deletes a present point with
// probability deleteProb, otherwise it inserts a new point.
func (g *Generator) Operations(n int, deleteProb float64) []hull.Operation {
	ops := make([]hull.Operation, 0, n)

	for range n {
		if len(g.present) > 0 && prob(g.rng, deleteProb) {
			ops = append(ops, hull.Delete(g.take(g.rng.IntN(len(g.present)))))
			continue
		}

		ops = append(ops, hull.Insert(g.Point()))
	}

	return ops
}

// Drain returns operations deleting all present points in random order.
func (g *Generator) Drain() []hull.Operation {
	var ops []hull.Operation

	for _, p := range Shuffled(g.rng, g.present) {
		ops = append(ops, hull.Delete(geom.Point{Vec: p.Vec}))
		delete(g.known, p.Vec)
	}

	g.present = nil

	return ops
}

// Present returns the points that were generated and not deleted since.
func (g *Generator) Present() []geom.Point {
	return append([]geom.Point(nil), g.present...)
}

// take removes the present point at idx and returns it as a lookup key.
func (g *Generator) take(idx int) geom.Point {
	p := g.present[idx]

	g.present[idx] = g.present[len(g.present)-1]
	g.present = g.present[:len(g.present)-1]

	delete(g.known, p.Vec)

	return geom.Point{Vec: p.Vec}
}

func (g *Generator) round(value float64) float64 {
	if g.precision < 0 {
		return value
	}

	factor := math.Pow(10, float64(g.precision))
	return math.Round(value*factor) / factor
}
