package wave

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Visualization drives a wave from frequency data and the frame clock.
type Visualization struct {
	Config

	// OffsetPixelSpeed is the scroll speed in pixels per second. Negative
	// values scroll the other way.
	OffsetPixelSpeed float64
	// Sensitivity scales the mean magnitude before it is clamped to 1.
	Sensitivity float64
}

// NewVisualization returns a visualization with default settings for the
// given bounds.
func NewVisualization(width, height float64) Visualization {
	var cfg = NewZeroConfig()
	cfg.Width = width
	cfg.Height = height
	cfg.Lines = 2

	return Visualization{
		Config:           cfg,
		OffsetPixelSpeed: 100,
		Sensitivity:      4,
	}
}

// Offset returns the scroll offset for a frame.
func (v *Visualization) Offset(frame int, fps float64) float64 {
	if !(fps > 0) {
		return 0
	}
	return v.OffsetPixelSpeed * float64(frame) / fps
}

// Amplitude maps frequency magnitudes to a peak height that keeps the
// stroke inside the bounds.
func (v *Visualization) Amplitude(freq []float64) float64 {
	if len(freq) == 0 {
		return 0
	}

	var level = floats.Sum(freq) / float64(len(freq)) * v.Sensitivity
	if math.IsNaN(level) {
		return 0
	}

	level = math.Max(0, math.Min(1, level))

	var room = v.Height/2 - v.LineThickness
	if room < 0 {
		room = 0
	}

	return level * room
}

// Frame renders the wave for one animation frame.
func (v *Visualization) Frame(frame int, fps float64, freq []float64) Frame {
	return Render(v.Config, v.Offset(frame, fps), v.Amplitude(freq))
}
