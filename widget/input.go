package widget

import (
	"time"

	"honnef.co/go/curve"

	"curveview/profile"
)

// MouseButton identifies the buttons the widget reacts to.
type MouseButton int

const (
	ButtonPrimary MouseButton = iota
	ButtonMiddle
)

const (
	// zoomStep is the per-wheel-notch zoom factor.
	zoomStep = 1.1
	// hoverRadius is the pick distance for hover, in pixels.
	hoverRadius = 10
	// Middle-button presses this close in time and space count as a
	// double click.
	doubleClickWindow = 500 * time.Millisecond
	doubleClickSlop   = 5.0
)

// MouseDown handles a button press at a widget-local position. A primary
// press starts a pan gesture; a middle double click reframes the view.
func (w *Plot) MouseDown(b MouseButton, pos curve.Point, now time.Time) {
	switch b {
	case ButtonPrimary:
		w.panning = true
		w.panLast = pos
	case ButtonMiddle:
		if !w.lastMiddle.at.IsZero() &&
			now.Sub(w.lastMiddle.at) <= doubleClickWindow &&
			pos.Distance(w.lastMiddle.pos) <= doubleClickSlop {
			w.lastMiddle.at = time.Time{}
			w.ZoomFit()
			return
		}
		w.lastMiddle.at = now
		w.lastMiddle.pos = pos
	}
}

// MouseUp ends a pan gesture on primary release.
func (w *Plot) MouseUp(b MouseButton, pos curve.Point) {
	if b == ButtonPrimary {
		w.panning = false
	}
	_ = pos
}

// EndPan force-ends a pan gesture. The poll loop calls it when the primary
// button is observed up without a release event (focus loss mid-drag), so
// the widget can never stay stuck panning.
func (w *Plot) EndPan() {
	w.panning = false
}

// MouseMove pans while the primary button is held and recomputes hover
// state at the new position.
func (w *Plot) MouseMove(pos curve.Point) {
	if w.panning {
		w.cam.Pan(pos.Sub(w.panLast))
		w.panLast = pos
	}
	w.updateHover(pos)
}

// MouseWheel zooms about the cursor position; dy > 0 zooms in. Available
// during a pan gesture as well. A non-invertible transform makes the event
// a no-op.
func (w *Plot) MouseWheel(pos curve.Point, dy float64) {
	if dy == 0 {
		return
	}
	f := zoomStep
	if dy < 0 {
		f = 1 / zoomStep
	}
	if w.cam.ZoomAt(pos, f) {
		w.updateHover(pos)
	}
}

// Panning reports whether a pan gesture is in progress.
func (w *Plot) Panning() bool {
	return w.panning
}

// Hover returns the hovered sample, if any.
func (w *Plot) Hover() (profile.Sample, bool) {
	return w.hover.sample, w.hover.active
}

// updateHover picks the sample whose screen projection is nearest to pos,
// if it is within hoverRadius. Linear scan; sample counts are small.
func (w *Plot) updateHover(pos curve.Point) {
	w.hover.active = false
	if !w.opts.Tooltips {
		return
	}
	tf := w.cam.Transform()
	best := float64(hoverRadius * hoverRadius)
	for _, s := range w.prof.SortedSamples() {
		sp := w.prof.OffsetPoint(s).Transform(tf)
		if sp.IsNaN() || sp.IsInf() {
			continue
		}
		if d2 := sp.DistanceSquared(pos); d2 <= best {
			best = d2
			w.hover.active = true
			w.hover.screen = sp
			w.hover.sample = s
		}
	}
}
