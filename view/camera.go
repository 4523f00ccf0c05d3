// Package view implements the world-to-screen camera for the plot widget.
package view

import (
	"math"

	"honnef.co/go/curve"
)

const (
	// fitMargin is the fraction of the viewport left free on each side by Fit.
	fitMargin = 0.1
	// minExtent guards Fit against dividing by a world extent that is
	// effectively zero (a single point, or a baseline parallel to an axis).
	minExtent = 1e-6
)

// Camera owns the affine transform mapping world coordinates to screen
// pixels. It starts at identity and is mutated only through Fit, ZoomAt
// and Pan.
type Camera struct {
	tf curve.Affine
}

func NewCamera() *Camera {
	return &Camera{tf: curve.Identity}
}

// Transform returns the current world-to-screen transform.
func (c *Camera) Transform() curve.Affine {
	return c.tf
}

// Reset restores the identity transform.
func (c *Camera) Reset() {
	c.tf = curve.Identity
}

// Fit replaces the transform so bounds fills the w×h viewport with a 10%
// margin per side. The scale is uniform (aspect ratio is preserved) and the
// Y axis is flipped so world "up" maps to screen "up". An axis extent below
// 1e-6 is framed as if it were 1. A viewport without area resets to identity.
func (c *Camera) Fit(bounds curve.Rect, w, h float64) {
	if w <= 0 || h <= 0 {
		c.Reset()
		return
	}

	ww := bounds.Width()
	wh := bounds.Height()
	if ww < minExtent {
		ww = 1
	}
	if wh < minExtent {
		wh = 1
	}

	usable := 1 - 2*fitMargin
	s := math.Min(w*usable/ww, h*usable/wh)

	sc := curve.Scale(s, -s)
	center := curve.Pt(w/2, h/2)
	c.tf = sc.ThenTranslate(center.Sub(bounds.Center().Transform(sc)))
}

// WorldAt maps a screen point back into world space. Returns false when the
// current transform cannot be inverted.
func (c *Camera) WorldAt(screen curve.Point) (curve.Point, bool) {
	det := c.tf.Determinant()
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return curve.Point{}, false
	}
	inv := c.tf.Invert()
	if inv.IsNaN() || inv.IsInf() {
		return curve.Point{}, false
	}
	return screen.Transform(inv), true
}

// ZoomAt scales the view by factor about the world point currently under
// anchor, keeping that point fixed on screen. It is a no-op, returning
// false, when the transform cannot be inverted.
func (c *Camera) ZoomAt(anchor curve.Point, factor float64) bool {
	w, ok := c.WorldAt(anchor)
	if !ok {
		return false
	}
	c.tf = c.tf.
		PreTranslate(curve.Vec2(w)).
		PreScale(factor, factor).
		PreTranslate(curve.Vec2(w).Negate())
	return true
}

// Pan shifts the view by a screen-space delta. Only the translation
// component changes.
func (c *Camera) Pan(delta curve.Vec2) {
	c.tf = c.tf.ThenTranslate(delta)
}
