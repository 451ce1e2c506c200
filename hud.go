package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	. "github.com/quasilyte/gmath"
	"image/color"
)

type Text struct {
	Text  string
	Face  text.Face
	Color color.Color
}

func lineSpacing(face text.Face) float64 {
	return face.Metrics().XHeight * 2
}

func MeasureTexts(texts []Text) Vec {
	var size Vec
	for _, t := range texts {
		width, height := text.Measure(t.Text, t.Face, lineSpacing(t.Face))
		size.X = max(size.X, width)
		size.Y += height
	}

	return size
}

// DrawPanel draws the texts on top of each other on a translucent panel.
func DrawPanel(target *ebiten.Image, offset Vec, texts []Text) {
	const padding = 8

	size := MeasureTexts(texts)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size.X+2*padding, size.Y+2*padding)
	op.GeoM.Translate(offset.X, offset.Y)
	op.ColorScale.ScaleWithColor(HudPanelColor)
	target.DrawImage(whiteImage, op)

	pos := offset.Add(Vec{X: padding, Y: padding})

	for _, t := range texts {
		DrawTextLeft(target, t.Text, t.Face, pos, t.Color)

		_, height := text.Measure(t.Text, t.Face, lineSpacing(t.Face))
		pos.Y += height
	}
}

func DrawTextLeft(target *ebiten.Image, msg string, face text.Face, pos Vec, c color.Color) {
	if c == nil {
		c = DebugColor
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(pos.X, pos.Y)
	op.PrimaryAlign = text.AlignStart
	op.SecondaryAlign = text.AlignStart
	op.ColorScale.ScaleWithColor(c)
	op.LineSpacing = lineSpacing(face)
	text.Draw(target, msg, face, op)
}
