package tween

import (
	"maps"
	"time"
)

// Fades tracks how visible a set of items is. Items fade in when they are
// shown and are forgotten once they have faded out.
type Fades[K comparable] struct {
	Duration time.Duration

	// EaseIn and EaseOut shape the visibility, both are optional.
	EaseIn  func(t float64) float64
	EaseOut func(t float64) float64

	items map[K]*fade
}

type fade struct {
	// linear progress, one is fully visible
	progress float64
	out      bool
}

// Show starts to fade in the item. An item that is fading out turns around.
func (f *Fades[K]) Show(key K) {
	if f.items == nil {
		f.items = map[K]*fade{}
	}

	if item, ok := f.items[key]; ok {
		item.out = false
		return
	}

	f.items[key] = &fade{}
}

// Hide starts to fade out the item.
func (f *Fades[K]) Hide(key K) {
	if item, ok := f.items[key]; ok {
		item.out = true
	}
}

func (f *Fades[K]) Update(dt time.Duration) {
	step := 1.0
	if f.Duration > 0 {
		step = float64(dt) / float64(f.Duration)
	}

	for key, item := range f.items {
		if item.out {
			item.progress -= step
			if item.progress <= 0 {
				delete(f.items, key)
			}

			continue
		}

		item.progress = min(1, item.progress+step)
	}
}

// Visibility returns the eased visibility of the item, zero for unknown items.
func (f *Fades[K]) Visibility(key K) float64 {
	item, ok := f.items[key]
	if !ok {
		return 0
	}

	value := max(0, min(1, item.progress))

	switch {
	case item.out && f.EaseOut != nil:
		return f.EaseOut(value)
	case !item.out && f.EaseIn != nil:
		return f.EaseIn(value)
	default:
		return value
	}
}

// Visible returns all items that are not completely faded out.
func (f *Fades[K]) Visible() []K {
	var keys []K
	for key := range maps.Keys(f.items) {
		keys = append(keys, key)
	}

	return keys
}

// Len returns the number of items that are not completely faded out.
func (f *Fades[K]) Len() int {
	return len(f.items)
}
