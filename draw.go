package main

import (
	"bytes"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	. "github.com/quasilyte/gmath"
	"golang.org/x/image/font/gofont/goregular"
)

var whiteImage *ebiten.Image

var Font14 *text.GoTextFace

func init() {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	whiteImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	Font14 = &text.GoTextFace{Source: source, Size: 14}
}

var circleVertices []ebiten.Vertex
var circleIndices []uint16

var circleScratch []ebiten.Vertex

func DrawFillCircle(target *ebiten.Image, center Vec, radius float64, c color.Color) {
	if circleVertices == nil {
		var path vector.Path
		path.Arc(0, 0, 100, 0, 2*math.Pi, vector.Clockwise)
		circleVertices, circleIndices = path.AppendVerticesAndIndicesForFilling(nil, nil)
	}

	var tr ebiten.GeoM
	tr.Scale(0.01*radius, 0.01*radius)
	tr.Translate(center.X, center.Y)

	vertices := TransformVertices(tr, circleVertices, &circleScratch)

	ApplyColorToVertices(vertices, c)

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	target.DrawTriangles(vertices, circleIndices, whiteImage, op)
}

// DrawPoint paints a point with an outline, scaled by visibility.
func DrawPoint(target *ebiten.Image, center Vec, radius float64, c PointColor) {
	if radius <= 0 {
		return
	}

	DrawFillCircle(target, center, radius+1.5, c.Stroke)
	DrawFillCircle(target, center, radius, c.Fill)
}

// StrokePolyline draws the line segments between consecutive points,
// given in world coordinates.
func StrokePolyline(target *ebiten.Image, points []Vec, toScreen ebiten.GeoM, width float32, c color.Color, closed bool) {
	if len(points) < 2 {
		return
	}

	var path vector.Path

	first := TransformVec(toScreen, points[0])
	path.MoveTo(float32(first.X), float32(first.Y))

	for _, point := range points[1:] {
		screen := TransformVec(toScreen, point)
		path.LineTo(float32(screen.X), float32(screen.Y))
	}

	if closed {
		path.Close()
	}

	op := &vector.StrokeOptions{
		Width:    width,
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapRound,
	}

	vertices, indices := path.AppendVerticesAndIndicesForStroke(nil, nil, op)
	ApplyColorToVertices(vertices, c)

	target.DrawTriangles(vertices, indices, whiteImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// FillPolygon fills the convex polygon given in world coordinates.
func FillPolygon(target *ebiten.Image, points []Vec, toScreen ebiten.GeoM, c color.Color) {
	if len(points) < 3 {
		return
	}

	var path vector.Path
	for idx, point := range points {
		screen := TransformVec(toScreen, point)
		if idx == 0 {
			path.MoveTo(float32(screen.X), float32(screen.Y))
		} else {
			path.LineTo(float32(screen.X), float32(screen.Y))
		}
	}

	path.Close()

	vertices, indices := path.AppendVerticesAndIndicesForFilling(nil, nil)
	ApplyColorToVertices(vertices, c)

	target.DrawTriangles(vertices, indices, whiteImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func ApplyColorToVertices(vertices []ebiten.Vertex, c color.Color) {
	nrgba := color.NRGBAModel.Convert(c).(color.NRGBA)

	r := float32(nrgba.R) / 0xff
	g := float32(nrgba.G) / 0xff
	b := float32(nrgba.B) / 0xff
	a := float32(nrgba.A) / 0xff

	for idx := range vertices {
		vertices[idx].SrcX = 0
		vertices[idx].SrcY = 0
		vertices[idx].ColorR = r
		vertices[idx].ColorG = g
		vertices[idx].ColorB = b
		vertices[idx].ColorA = a
	}
}

func TransformVertices(tr ebiten.GeoM, vertices []ebiten.Vertex, reuse *[]ebiten.Vertex) []ebiten.Vertex {
	var trVertices []ebiten.Vertex

	if reuse != nil {
		trVertices = (*reuse)[:0]
	}

	for _, vertex := range vertices {
		x, y := tr.Apply(float64(vertex.DstX), float64(vertex.DstY))
		vertex.DstX, vertex.DstY = float32(x), float32(y)
		trVertices = append(trVertices, vertex)
	}

	if reuse != nil {
		*reuse = trVertices[:0]
	}

	return trVertices
}

func TransformVec(tr ebiten.GeoM, value Vec) Vec {
	x, y := tr.Apply(value.X, value.Y)
	return Vec{X: x, Y: y}
}

func rgbaOf(rgba uint32) color.NRGBA {
	return color.NRGBA{
		R: uint8((rgba >> 24) & 0xff),
		G: uint8((rgba >> 16) & 0xff),
		B: uint8((rgba >> 8) & 0xff),
		A: uint8((rgba >> 0) & 0xff),
	}
}
