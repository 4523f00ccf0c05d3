package profile

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v2"
	"honnef.co/go/curve"
)

type filePoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type fileSample struct {
	T     float64 `yaml:"t"`
	Value float64 `yaml:"value"`
}

type fileProfile struct {
	Start      filePoint    `yaml:"start"`
	End        filePoint    `yaml:"end"`
	ValueScale *float64     `yaml:"value_scale"`
	Samples    []fileSample `yaml:"samples"`
}

// Load reads a profile document:
//
//	start: {x: 0, y: 0}
//	end: {x: 1, y: 20}
//	value_scale: 0.4
//	samples:
//	  - {t: 0, value: 0}
//	  - {t: 0.5, value: 1.2}
//
// value_scale defaults to 1 when omitted. Unknown keys are rejected.
func Load(path string) (*Profile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f fileProfile
	if err := yaml.UnmarshalStrict(raw, &f); err != nil {
		return nil, fmt.Errorf("parse profile %s: %w", path, err)
	}

	p := &Profile{
		Start:      curve.Pt(f.Start.X, f.Start.Y),
		End:        curve.Pt(f.End.X, f.End.Y),
		ValueScale: 1,
	}
	if f.ValueScale != nil {
		p.ValueScale = *f.ValueScale
	}
	for _, s := range f.Samples {
		p.Samples = append(p.Samples, Sample{T: s.T, Value: s.Value})
	}
	return p, nil
}

// Demo returns the built-in demonstration profile: a steep baseline with
// eleven evenly spaced samples tracing one period of a sine wave, so the
// curve swings to both sides of the baseline.
func Demo() *Profile {
	p := &Profile{
		Start:      curve.Pt(0, 0),
		End:        curve.Pt(1, 20),
		ValueScale: 0.4,
	}
	for i := 0; i <= 10; i++ {
		t := float64(i) / 10
		p.Samples = append(p.Samples, Sample{T: t, Value: math.Sin(2 * math.Pi * t)})
	}
	return p
}
