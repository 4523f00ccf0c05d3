// Package app hosts the plot widget in a desktop window.
package app

import (
	"github.com/hajimehoshi/ebiten/v2"

	"curveview/internal/buildinfo"
	"curveview/profile"
	"curveview/widget"
)

// Config describes the window and the plot it hosts.
type Config struct {
	Title  string
	Width  int
	Height int

	Profile *profile.Profile
	Widget  widget.Options
}

// Run opens a desktop window displaying the plot and forwards mouse and
// keyboard input to it. It blocks until the window closes.
func Run(cfg Config) error {
	title := cfg.Title
	if title == "" {
		title = "curveview"
	}
	width := cfg.Width
	if width <= 0 {
		width = 800
	}
	height := cfg.Height
	if height <= 0 {
		height = 600
	}

	g := &game{plot: widget.New(cfg.Profile, cfg.Widget)}
	ebiten.SetWindowTitle(title + " (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type game struct {
	plot *widget.Plot
}

func (g *game) Update() error {
	return g.plot.Update()
}

func (g *game) Draw(screen *ebiten.Image) {
	g.plot.Draw(screen)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.plot.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
