// Package profile holds the plot state for an offset-curve plot: a baseline
// segment, a sequence of samples offset perpendicular to it, and the value
// scale applied to those offsets. All operations are pure; the widget treats
// a Profile as read-only and the owner may swap it out between frames.
package profile

import (
	"cmp"
	"slices"

	"honnef.co/go/curve"
)

// minBaselineLength is the baseline length below which sampling treats the
// segment as degenerate and collapses to Start.
const minBaselineLength = 1e-9

// Sample is one measurement along the baseline. T parameterizes the position
// on the segment (0 at Start, 1 at End, extrapolating outside that range);
// Value is the perpendicular offset magnitude before scaling.
type Sample struct {
	T     float64
	Value float64
}

// Profile is the full plot state.
type Profile struct {
	Start      curve.Point
	End        curve.Point
	Samples    []Sample
	ValueScale float64
}

// BasePoint returns the point on the baseline at parameter t.
func (p *Profile) BasePoint(t float64) curve.Point {
	return p.Start.Lerp(p.End, t)
}

// OffsetPoint returns the sample's position: its base point displaced along
// the left normal of the baseline by Value*ValueScale. A baseline shorter
// than 1e-9 degenerates to Start regardless of the sample.
func (p *Profile) OffsetPoint(s Sample) curve.Point {
	d := p.End.Sub(p.Start)
	if d.Hypot() < minBaselineLength {
		return p.Start
	}
	n := leftNormal(d.Normalize())
	return p.BasePoint(s.T).Translate(n.Mul(s.Value * p.ValueScale))
}

// SortedSamples returns a copy of the samples ordered by ascending T.
// The sort is stable, so samples sharing a T keep their input order.
func (p *Profile) SortedSamples() []Sample {
	out := slices.Clone(p.Samples)
	slices.SortStableFunc(out, func(a, b Sample) int {
		return cmp.Compare(a.T, b.T)
	})
	return out
}

// Outline returns the two polylines the renderer needs, in sorted sample
// order: base[i] is the baseline foot of sample i and offset[i] its
// displaced position. Both slices are rebuilt on every call.
func (p *Profile) Outline() (base, offset []curve.Point) {
	ss := p.SortedSamples()
	base = make([]curve.Point, len(ss))
	offset = make([]curve.Point, len(ss))
	for i, s := range ss {
		base[i] = p.BasePoint(s.T)
		offset[i] = p.OffsetPoint(s)
	}
	return base, offset
}

// Bounds returns the axis-aligned bounding box over the baseline endpoints
// and all offset points, skipping points with a NaN or infinite coordinate.
// The second return is false when no finite point remains.
func (p *Profile) Bounds() (curve.Rect, bool) {
	var r curve.Rect
	ok := false
	add := func(pt curve.Point) {
		if pt.IsNaN() || pt.IsInf() {
			return
		}
		if !ok {
			r = curve.NewRectFromPoints(pt, pt)
			ok = true
			return
		}
		r = r.UnionPoint(pt)
	}
	add(p.Start)
	add(p.End)
	for _, s := range p.Samples {
		add(p.OffsetPoint(s))
	}
	return r, ok
}

// leftNormal rotates v a quarter turn counter-clockwise (in y-up terms).
func leftNormal(v curve.Vec2) curve.Vec2 {
	return curve.Vec2{X: -v.Y, Y: v.X}
}
