package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	. "github.com/quasilyte/gmath"
)

var touchIds []ebiten.TouchID

// Clicked reports whether the button was just pressed and where, in
// screen coordinates. A touch counts as a click of the left button.
func Clicked(button ebiten.MouseButton) (Vec, bool) {
	if button == ebiten.MouseButtonLeft {
		touchIds = inpututil.AppendJustPressedTouchIDs(touchIds[:0])
		for _, touchId := range touchIds {
			touchX, touchY := ebiten.TouchPosition(touchId)
			return Vec{X: float64(touchX), Y: float64(touchY)}, true
		}
	}

	if inpututil.IsMouseButtonJustPressed(button) {
		mouseX, mouseY := ebiten.CursorPosition()
		return Vec{X: float64(mouseX), Y: float64(mouseY)}, true
	}

	return Vec{}, false
}

func CursorPosition() Vec {
	touchIds = ebiten.AppendTouchIDs(touchIds[:0])
	for _, touchId := range touchIds {
		touchX, touchY := ebiten.TouchPosition(touchId)
		return Vec{X: float64(touchX), Y: float64(touchY)}
	}

	mouseX, mouseY := ebiten.CursorPosition()
	return Vec{X: float64(mouseX), Y: float64(mouseY)}
}
