package view

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"honnef.co/go/curve"
)

func TestFitUniformScale(t *testing.T) {
	b := curve.NewRectFromPoints(curve.Pt(0, 0), curve.Pt(1, 20))
	c := NewCamera()
	c.Fit(b, 400, 400)
	tf := c.Transform()

	// Usable viewport is 320px per axis; the y extent dominates: 320/20.
	if math.Abs(tf.N0-16) > 1e-9 || math.Abs(tf.N3+16) > 1e-9 {
		t.Fatalf("scale = (%g, %g), want (16, -16)", tf.N0, tf.N3)
	}
	if tf.N1 != 0 || tf.N2 != 0 {
		t.Fatalf("unexpected shear: %v", tf)
	}

	if got := curve.Pt(0.5, 10).Transform(tf); got.Distance(curve.Pt(200, 200)) > 1e-9 {
		t.Fatalf("bounds center maps to %s, want viewport center", got)
	}

	tb := tf.TransformRectBoundingBox(b)
	if tb.Width() > 320+1e-9 || tb.Height() > 320+1e-9 {
		t.Fatalf("fitted bounds %v exceed the 10%% margin", tb)
	}
}

func TestFitIdempotent(t *testing.T) {
	b := curve.NewRectFromPoints(curve.Pt(-3, 2), curve.Pt(9, 5))
	c := NewCamera()
	c.Fit(b, 640, 480)
	first := c.Transform()
	c.Fit(b, 640, 480)
	if d := cmp.Diff(first, c.Transform()); d != "" {
		t.Error(d)
	}
}

func TestFitTinyExtent(t *testing.T) {
	// A single point has no extent; both axes are framed as width 1.
	c := NewCamera()
	c.Fit(curve.NewRectFromPoints(curve.Pt(5, 5), curve.Pt(5, 5)), 400, 300)
	tf := c.Transform()
	if want := 240.0; math.Abs(tf.N0-want) > 1e-9 {
		t.Fatalf("scale = %g, want %g", tf.N0, want)
	}
	if got := curve.Pt(5, 5).Transform(tf); got.Distance(curve.Pt(200, 150)) > 1e-9 {
		t.Fatalf("point maps to %s, want viewport center", got)
	}
}

func TestFitEmptyViewport(t *testing.T) {
	c := NewCamera()
	c.Pan(curve.Vec(7, 7))
	c.Fit(curve.NewRectFromPoints(curve.Pt(0, 0), curve.Pt(1, 1)), 0, 400)
	if c.Transform() != curve.Identity {
		t.Fatalf("transform = %v, want identity", c.Transform())
	}
}

func TestZoomAtAnchorPreserving(t *testing.T) {
	c := NewCamera()
	c.Fit(curve.NewRectFromPoints(curve.Pt(0, 0), curve.Pt(1, 20)), 400, 400)

	anchor := curve.Pt(50, 50)
	before, ok := c.WorldAt(anchor)
	if !ok {
		t.Fatal("transform not invertible")
	}
	if !c.ZoomAt(anchor, 1.1) {
		t.Fatal("zoom refused")
	}
	if got := before.Transform(c.Transform()); got.Distance(anchor) > 1e-9 {
		t.Fatalf("anchor drifted to %s", got)
	}
	if got := c.Transform().N0; math.Abs(got-16*1.1) > 1e-9 {
		t.Fatalf("scale = %g, want %g", got, 16*1.1)
	}
}

func TestZoomAtNonInvertible(t *testing.T) {
	c := NewCamera()
	c.tf = curve.Scale(0, 0)
	if c.ZoomAt(curve.Pt(10, 10), 1.1) {
		t.Fatal("zoomed through a singular transform")
	}
	if c.tf != curve.Scale(0, 0) {
		t.Fatalf("transform changed: %v", c.tf)
	}
}

func TestPanTranslationOnly(t *testing.T) {
	c := NewCamera()
	c.Fit(curve.NewRectFromPoints(curve.Pt(0, 0), curve.Pt(1, 20)), 400, 400)
	before := c.Transform()
	c.Pan(curve.Vec(20, -10))
	after := c.Transform()

	if after.N0 != before.N0 || after.N1 != before.N1 || after.N2 != before.N2 || after.N3 != before.N3 {
		t.Fatalf("pan touched the linear part: %v -> %v", before, after)
	}
	if after.N4-before.N4 != 20 || after.N5-before.N5 != -10 {
		t.Fatalf("translation delta = (%g, %g), want (20, -10)",
			after.N4-before.N4, after.N5-before.N5)
	}
}

func TestWorldAtRoundTrip(t *testing.T) {
	c := NewCamera()
	c.Fit(curve.NewRectFromPoints(curve.Pt(-2, 1), curve.Pt(4, 7)), 800, 600)
	sp := curve.Pt(123, 456)
	wp, ok := c.WorldAt(sp)
	if !ok {
		t.Fatal("transform not invertible")
	}
	if got := wp.Transform(c.Transform()); got.Distance(sp) > 1e-9 {
		t.Fatalf("round trip %s -> %s", sp, got)
	}
}
