package tween

import (
	"slices"
	"time"

	"github.com/quasilyte/gmath"
)

type Tween interface {
	Update(dt time.Duration) (done bool)
}

// Tweens runs a set of tweens until they are done.
type Tweens struct {
	tweens []Tween
}

func (t *Tweens) Add(tween Tween) {
	if tween.Update(0) {
		return
	}

	t.tweens = append(t.tweens, tween)
}

func (t *Tweens) Update(dt time.Duration) {
	t.tweens = slices.DeleteFunc(t.tweens, func(tween Tween) bool {
		return tween.Update(dt)
	})
}

// Clear drops all running tweens at their current state.
func (t *Tweens) Clear() {
	t.tweens = nil
}

func (t *Tweens) Len() int {
	return len(t.tweens)
}

type Target func(f float64)

// Simple drives a target from zero to one over the duration.
type Simple struct {
	Duration time.Duration
	Target   Target
	Ease     func(t float64) float64

	elapsed time.Duration
}

func (t *Simple) Update(dt time.Duration) bool {
	if t.Duration <= 0 {
		if t.Target != nil {
			t.Target(1)
		}

		return true
	}

	t.elapsed += dt

	f := min(1, float64(t.elapsed)/float64(t.Duration))

	if t.Ease != nil {
		f = t.Ease(f)
	}

	if t.Target != nil {
		t.Target(f)
	}

	return t.elapsed >= t.Duration
}

func LerpValue(target *float64, from, to float64) Target {
	return func(f float64) {
		*target = gmath.Lerp(from, to, f)
	}
}

func LerpVec(target *gmath.Vec, from, to gmath.Vec) Target {
	return func(f float64) {
		*target = gmath.Vec{
			X: gmath.Lerp(from.X, to.X, f),
			Y: gmath.Lerp(from.Y, to.Y, f),
		}
	}
}
