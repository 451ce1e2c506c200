package main

import "image/color"

type PointColor struct {
	Fill   color.NRGBA
	Stroke color.NRGBA
}

var PointColorIdle = PointColor{
	Fill:   rgbaOf(0x839ca9ff),
	Stroke: rgbaOf(0x6d838eff),
}

var PointColorHull = PointColor{
	Fill:   rgbaOf(0xcc9970ff),
	Stroke: rgbaOf(0xa97e5cff),
}

var PointColorHover = PointColor{
	Fill:   rgbaOf(0xb089abff),
	Stroke: rgbaOf(0x8e6d89ff),
}

var DebugColor color.Color = color.RGBA{R: 0xff, B: 0xff, A: 0xff}
var BackgroundColor color.Color = rgbaOf(0xdbcfb1ff)
var HudTextColor color.Color = rgbaOf(0x937b6aff)
var HudPanelColor color.Color = rgbaOf(0xeee1c480)

var UpperHullColor color.Color = rgbaOf(0xa97e5cff)
var LowerHullColor color.Color = rgbaOf(0x6f8b6eff)
var HullFillColor color.Color = rgbaOf(0xcc997030)

var EdgeColor color.Color = rgbaOf(0xada387ff)
var QueryColor color.Color = rgbaOf(0xa05e5eff)

// ChainColors is cycled through when painting chains.
var ChainColors = []color.NRGBA{
	rgbaOf(0x6d838eff),
	rgbaOf(0x8e6d89ff),
	rgbaOf(0x6f8b6eff),
	rgbaOf(0xa97e5cff),
	rgbaOf(0x5c7ba9ff),
	rgbaOf(0xa05e5eff),
}
