package scene

import (
	"math"

	"github.com/noriah/catwave/wave"
)

// Layer is a drawn visual.
type Layer struct {
	Visual Visual
	Wave   wave.Frame
}

// Composition is a scene rendered for one frame. Layers keep the
// declaration order of the scene.
type Composition struct {
	Frame  int
	Width  float64
	Height float64
	Layers []Layer
}

// Compose renders every wave visual of the scene for frame using the given
// frequency magnitudes.
func Compose(sc Scene, frame int, freq []float64) Composition {
	var comp = Composition{
		Frame:  frame,
		Width:  sc.Width,
		Height: sc.Height,
	}

	freq = portion(freq, sc.Portion)

	for _, v := range sc.Visuals {
		if v.Kind != Wave || v.Wave == nil {
			continue
		}

		comp.Layers = append(comp.Layers, Layer{
			Visual: v,
			Wave:   v.Wave.Frame(frame, sc.FPS, freq),
		})
	}

	return comp
}

// portion returns the leading share p of freq.
func portion(freq []float64, p float64) []float64 {
	if !(p > 0) || p >= 1 {
		return freq
	}

	var n = int(math.Floor(float64(len(freq)) * p))
	return freq[:n]
}
