// Command curveview opens an interactive viewer for a perpendicular-offset
// curve profile: a baseline segment with sampled values plotted as a curve
// offset to its side. Pan with the left button, zoom with the wheel,
// double-click the middle button (or press A) to zoom to fit.
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"curveview/app"
	"curveview/internal/buildinfo"
	"curveview/profile"
	"curveview/widget"
)

func main() {
	var (
		profilePath string
		width       int
		height      int
		valueScale  float64
		area        bool
		tooltips    bool
	)

	cmd := &cobra.Command{
		Use:           "curveview",
		Short:         "Interactive viewer for offset-curve profiles",
		Version:       buildinfo.Short(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := profile.Demo()
			if profilePath != "" {
				var err error
				p, err = profile.Load(profilePath)
				if err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("value-scale") {
				p.ValueScale = valueScale
			}

			log.Info("starting",
				"version", buildinfo.Short(),
				"samples", len(p.Samples),
				"value_scale", p.ValueScale)

			return app.Run(app.Config{
				Width:   width,
				Height:  height,
				Profile: p,
				Widget:  widget.Options{Area: area, Tooltips: tooltips},
			})
		},
	}

	cmd.Flags().StringVarP(&profilePath, "profile", "p", "", "Profile YAML file (default: built-in demo profile).")
	cmd.Flags().IntVar(&width, "width", 800, "Window width in pixels.")
	cmd.Flags().IntVar(&height, "height", 600, "Window height in pixels.")
	cmd.Flags().Float64Var(&valueScale, "value-scale", 0, "Override the profile's value scale.")
	cmd.Flags().BoolVar(&area, "area", true, "Fill the area between baseline and curve.")
	cmd.Flags().BoolVar(&tooltips, "tooltips", true, "Show hover markers and tooltips.")

	if err := cmd.Execute(); err != nil {
		log.Error("exiting", "err", err)
		os.Exit(1)
	}
}
