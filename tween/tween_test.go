package tween

import (
	"slices"
	"testing"
	"time"

	"github.com/fogleman/ease"
	"github.com/quasilyte/gmath"
	"github.com/stretchr/testify/assert"
)

func TestSimple(t *testing.T) {
	var value float64

	var tweens Tweens
	tweens.Add(&Simple{
		Duration: time.Second,
		Target:   LerpValue(&value, 10, 20),
	})

	assert.Equal(t, 1, tweens.Len())
	assert.Equal(t, 10.0, value)

	tweens.Update(500 * time.Millisecond)
	assert.InDelta(t, 15.0, value, 1e-9)

	tweens.Update(time.Second)
	assert.Equal(t, 20.0, value)
	assert.Equal(t, 0, tweens.Len())
}

func TestSimpleWithEase(t *testing.T) {
	var pos gmath.Vec

	var tweens Tweens
	tweens.Add(&Simple{
		Duration: time.Second,
		Target:   LerpVec(&pos, gmath.Vec{}, gmath.Vec{X: 8, Y: -8}),
		Ease:     ease.InQuad,
	})

	tweens.Update(500 * time.Millisecond)
	assert.InDelta(t, 2.0, pos.X, 1e-9)
	assert.InDelta(t, -2.0, pos.Y, 1e-9)
}

func TestZeroDurationFinishesImmediately(t *testing.T) {
	var value float64

	var tweens Tweens
	tweens.Add(&Simple{Target: LerpValue(&value, 0, 3)})

	assert.Equal(t, 3.0, value)
	assert.Equal(t, 0, tweens.Len())
}

func TestTweensClear(t *testing.T) {
	var value float64

	var tweens Tweens
	tweens.Add(&Simple{Duration: time.Second, Target: LerpValue(&value, 0, 1)})
	tweens.Clear()
	tweens.Update(time.Second)

	assert.Equal(t, 0.0, value)
}

func TestFades(t *testing.T) {
	fades := Fades[string]{Duration: 100 * time.Millisecond}

	fades.Show("a")
	fades.Show("b")
	assert.Equal(t, 0.0, fades.Visibility("a"))

	fades.Update(50 * time.Millisecond)
	assert.InDelta(t, 0.5, fades.Visibility("a"), 1e-9)

	fades.Update(time.Second)
	assert.Equal(t, 1.0, fades.Visibility("a"))

	fades.Hide("a")
	fades.Update(25 * time.Millisecond)
	assert.InDelta(t, 0.75, fades.Visibility("a"), 1e-9)

	// showing again turns the fade around
	fades.Show("a")
	fades.Update(10 * time.Millisecond)
	assert.InDelta(t, 0.85, fades.Visibility("a"), 1e-9)

	fades.Hide("b")
	fades.Update(100 * time.Millisecond)

	visible := fades.Visible()
	slices.Sort(visible)
	assert.Equal(t, []string{"a"}, visible)
	assert.Equal(t, 0.0, fades.Visibility("b"))
	assert.Equal(t, 1, fades.Len())
}

func TestFadesEasing(t *testing.T) {
	fades := Fades[int]{
		Duration: time.Second,
		EaseIn:   ease.InQuad,
		EaseOut:  ease.OutQuad,
	}

	fades.Show(1)
	fades.Update(500 * time.Millisecond)
	assert.InDelta(t, 0.25, fades.Visibility(1), 1e-9)

	fades.Hide(1)
	assert.InDelta(t, 0.75, fades.Visibility(1), 1e-9)

	// hiding unknown items is a no-op
	fades.Hide(2)
	assert.Equal(t, 1, fades.Len())
}
