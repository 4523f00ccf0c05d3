package widget

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"honnef.co/go/curve"
)

// Update polls Ebitengine input once per tick and forwards it to the
// pointer handlers.
func (w *Plot) Update() error {
	x, y := ebiten.CursorPosition()
	pos := curve.Pt(float64(x), float64(y))

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		w.MouseDown(ButtonPrimary, pos, time.Now())
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle) {
		w.MouseDown(ButtonMiddle, pos, time.Now())
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		w.MouseUp(ButtonPrimary, pos)
	}
	if w.panning && !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		// Release was lost (focus change mid-drag).
		w.EndPan()
	}

	if pos != w.cursor {
		w.cursor = pos
		w.MouseMove(pos)
	}

	if _, dy := ebiten.Wheel(); dy != 0 {
		w.MouseWheel(pos, dy)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		w.ZoomFit()
	}
	return nil
}
