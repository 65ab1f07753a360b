package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Filled paths may be concave and need a winding rule; stroke triangles never overlap.
const (
	fillRule   = ebiten.FillRuleNonZero
	strokeRule = ebiten.FillRuleFillAll
)

var whiteImage *ebiten.Image

// whiteSubImage is the 1x1 source texture for DrawTriangles fills.
func whiteSubImage() *ebiten.Image {
	if whiteImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
	}
	return whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

func fillPath(dst *ebiten.Image, path *vector.Path, clr color.Color) {
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	drawVertices(dst, vs, is, clr, fillRule)
}

func strokePath(dst *ebiten.Image, path *vector.Path, width float32, clr color.Color) {
	vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{
		Width:    width,
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapRound,
	})
	drawVertices(dst, vs, is, clr, strokeRule)
}

func trianglesOptions(rule ebiten.FillRule) *ebiten.DrawTrianglesOptions {
	return &ebiten.DrawTrianglesOptions{AntiAlias: true, FillRule: rule}
}

func drawVertices(dst *ebiten.Image, vs []ebiten.Vertex, is []uint16, clr color.Color, rule ebiten.FillRule) {
	nc := color.NRGBAModel.Convert(clr).(color.NRGBA)
	r := float32(nc.R) / 0xff
	g := float32(nc.G) / 0xff
	b := float32(nc.B) / 0xff
	a := float32(nc.A) / 0xff
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = r
		vs[i].ColorG = g
		vs[i].ColorB = b
		vs[i].ColorA = a
	}
	dst.DrawTriangles(vs, is, whiteSubImage(), trianglesOptions(rule))
}
