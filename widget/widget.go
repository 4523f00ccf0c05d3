// Package widget implements the interactive offset-curve plot widget: an
// Ebitengine-drawn view of a profile with mouse pan, anchor-preserving
// wheel zoom, zoom-to-fit framing and optional hover tooltips.
//
// All state lives on the widget instance and is mutated only inside input
// handlers on the game loop goroutine; Draw just reads.
package widget

import (
	"time"

	"honnef.co/go/curve"

	"curveview/profile"
	"curveview/view"
)

// Options toggle the widget's optional capabilities.
type Options struct {
	// Area fills the region between baseline and curve with a translucent
	// polygon.
	Area bool
	// Tooltips enables the hover marker and (t, value) tooltip.
	Tooltips bool
}

// Plot is an interactive plot of a single profile.
type Plot struct {
	prof *profile.Profile
	cam  *view.Camera
	opts Options

	width  int
	height int
	fitted bool

	panning bool
	panLast curve.Point
	cursor  curve.Point

	hover struct {
		active bool
		screen curve.Point
		sample profile.Sample
	}

	lastMiddle struct {
		at  time.Time
		pos curve.Point
	}
}

func New(p *profile.Profile, opts Options) *Plot {
	return &Plot{prof: p, cam: view.NewCamera(), opts: opts}
}

// Profile returns the plotted profile.
func (w *Plot) Profile() *profile.Profile {
	return w.prof
}

// SetProfile replaces the plotted profile and reframes the view around it.
func (w *Plot) SetProfile(p *profile.Profile) {
	w.prof = p
	w.hover.active = false
	w.ZoomFit()
}

// Camera returns the widget's view transform owner.
func (w *Plot) Camera() *view.Camera {
	return w.cam
}

// Resize records the viewport size. The first usable size triggers the
// initial zoom-to-fit.
func (w *Plot) Resize(width, height int) {
	w.width, w.height = width, height
	if !w.fitted && width > 0 && height > 0 {
		w.fitted = true
		w.ZoomFit()
	}
}

// ZoomFit reframes the view so the whole profile is visible with margin.
// Degenerate geometry or an empty viewport falls back to the identity view.
func (w *Plot) ZoomFit() {
	if w.width <= 0 || w.height <= 0 {
		w.cam.Reset()
		return
	}
	b, ok := w.prof.Bounds()
	if !ok {
		w.cam.Reset()
		return
	}
	w.cam.Fit(b, float64(w.width), float64(w.height))
}
