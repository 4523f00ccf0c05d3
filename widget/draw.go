package widget

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	colorBG       = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
	colorBaseline = color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xFF}
	colorCurve    = color.RGBA{R: 0x4A, G: 0xD1, B: 0xFF, A: 0xFF}
	colorArea     = color.NRGBA{R: 0x4A, G: 0xD1, B: 0xFF, A: 0x46}
	colorMarker   = color.RGBA{R: 0xFF, G: 0xD1, B: 0x4A, A: 0xFF}
)

// whiteSubImage is the triangle source for vector paths. The 1px inset
// avoids bleeding from the texture atlas border.
var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Draw renders the plot. Geometry is rebuilt from the profile and the
// current camera transform on every call; the hover marker and tooltip are
// drawn in screen space, unaffected by the view transform.
func (w *Plot) Draw(dst *ebiten.Image) {
	dst.Fill(colorBG)

	tf := w.cam.Transform()
	base, offset := w.prof.Outline()
	n := 0
	for i := range base {
		b := base[i].Transform(tf)
		o := offset[i].Transform(tf)
		if b.IsNaN() || b.IsInf() || o.IsNaN() || o.IsInf() {
			continue
		}
		base[n], offset[n] = b, o
		n++
	}
	base, offset = base[:n], offset[:n]

	if w.opts.Area && len(offset) >= 2 {
		var path vector.Path
		path.MoveTo(float32(base[0].X), float32(base[0].Y))
		for _, pt := range base[1:] {
			path.LineTo(float32(pt.X), float32(pt.Y))
		}
		for i := len(offset) - 1; i >= 0; i-- {
			path.LineTo(float32(offset[i].X), float32(offset[i].Y))
		}
		path.Close()
		vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
		drawTriangles(dst, vs, is, colorArea)
	}

	if w.prof.Start != w.prof.End {
		s := w.prof.Start.Transform(tf)
		e := w.prof.End.Transform(tf)
		vector.StrokeLine(dst,
			float32(s.X), float32(s.Y), float32(e.X), float32(e.Y),
			1, colorBaseline, true)
	}

	if len(offset) >= 2 {
		var path vector.Path
		path.MoveTo(float32(offset[0].X), float32(offset[0].Y))
		for _, pt := range offset[1:] {
			path.LineTo(float32(pt.X), float32(pt.Y))
		}
		op := &vector.StrokeOptions{
			Width:    2,
			LineJoin: vector.LineJoinRound,
			LineCap:  vector.LineCapRound,
		}
		vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, op)
		drawTriangles(dst, vs, is, color.NRGBA(colorCurve))
	}

	if w.hover.active {
		cx := float32(w.hover.screen.X)
		cy := float32(w.hover.screen.Y)
		vector.StrokeCircle(dst, cx, cy, hoverRadius/2, 1.5, colorMarker, true)
		label := fmt.Sprintf("t=%.3g  value=%.3g", w.hover.sample.T, w.hover.sample.Value)
		ebitenutil.DebugPrintAt(dst, label, int(cx)+8, int(cy)-16)
	}
}

func drawTriangles(dst *ebiten.Image, vs []ebiten.Vertex, is []uint16, clr color.NRGBA) {
	r := float32(clr.R) / 255
	g := float32(clr.G) / 255
	b := float32(clr.B) / 255
	a := float32(clr.A) / 255
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = r
		vs[i].ColorG = g
		vs[i].ColorB = b
		vs[i].ColorA = a
	}
	op := &ebiten.DrawTrianglesOptions{
		ColorScaleMode: ebiten.ColorScaleModeStraightAlpha,
		AntiAlias:      true,
		FillRule:       ebiten.NonZero,
	}
	dst.DrawTriangles(vs, is, whiteSubImage, op)
}
