// Package scene describes compositions of absolutely positioned visuals.
package scene

import (
	"errors"
	"fmt"

	"github.com/noriah/catwave/wave"
)

// Kind is the type of a visual
type Kind int

// Visual kinds
const (
	Bars Kind = iota
	RadialBars
	Hills
	Wave
)

var kindNames = [...]string{
	Bars:       "bars",
	RadialBars: "radial-bars",
	Hills:      "hills",
	Wave:       "wave",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// Kinds lists every kind a scene may hold.
func Kinds() []Kind {
	return []Kind{Bars, RadialBars, Hills, Wave}
}

// ParseKind returns the kind with the given name.
func ParseKind(name string) (Kind, error) {
	for idx, n := range kindNames {
		if n == name {
			return Kind(idx), nil
		}
	}
	return 0, fmt.Errorf("unknown visual kind: %q", name)
}

// Visual is one positioned element of a scene. Only wave visuals carry
// geometry here; the other kinds are drawn by external compositors.
type Visual struct {
	Kind   Kind
	Left   float64
	Top    float64
	Width  float64
	Height float64

	Wave *wave.Visualization
}

// Scene is a fixed size canvas holding visuals in z-order.
type Scene struct {
	Width    float64
	Height   float64
	FPS      float64
	Duration int // in frames

	// Portion is the share of the frequency array handed to the visuals.
	Portion float64

	Visuals []Visual
}

// Validate checks the scene and every wave visual in it.
func (sc *Scene) Validate() error {
	switch {
	case !(sc.Width > 0) || !(sc.Height > 0):
		return errors.New("scene size must be positive")

	case !(sc.FPS > 0):
		return errors.New("fps must be positive")

	case sc.Duration < 1:
		return errors.New("duration too short (1 frame min)")

	case !(sc.Portion > 0) || sc.Portion > 1:
		return errors.New("portion out of range (0, 1]")
	}

	for idx, v := range sc.Visuals {
		if v.Kind != Wave {
			continue
		}

		if v.Wave == nil {
			return fmt.Errorf("visual %d: wave kind without wave settings", idx)
		}

		if err := v.Wave.Validate(); err != nil {
			return fmt.Errorf("visual %d: %w", idx, err)
		}
	}

	return nil
}

// Skipped returns the kinds in the scene that Compose does not draw.
func (sc *Scene) Skipped() []Kind {
	var seen = map[Kind]bool{}
	var out []Kind

	for _, v := range sc.Visuals {
		if v.Kind == Wave || seen[v.Kind] {
			continue
		}
		seen[v.Kind] = true
		out = append(out, v.Kind)
	}

	return out
}

// Single returns a scene holding one wave that covers the whole canvas.
func Single(vis wave.Visualization, fps float64, duration int) Scene {
	return Scene{
		Width:    vis.Width,
		Height:   vis.Height,
		FPS:      fps,
		Duration: duration,
		Portion:  1,
		Visuals: []Visual{{
			Kind:   Wave,
			Width:  vis.Width,
			Height: vis.Height,
			Wave:   &vis,
		}},
	}
}
