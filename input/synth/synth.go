// Package synth generates deterministic spectra for previews and tests.
package synth

import (
	"math"

	"github.com/noriah/catwave/input"
)

func init() {
	input.RegisterBackend("synth", Backend{})
}

// Backend opens synthetic sources. The session path is ignored.
type Backend struct{}

func (b Backend) Init() error {
	return nil
}

func (b Backend) Close() error {
	return nil
}

func (b Backend) Open(cfg input.SessionConfig) (input.Source, error) {
	return New(cfg.Samples), nil
}

// Beat is the pulse rate of the synthetic spectrum in beats per second.
const Beat = 2.0

// Source is a spectrum that falls off toward the high bins and pulses with
// a beat.
type Source struct {
	buf []float64
}

// New returns a synthetic source with the given number of bins.
func New(samples int) *Source {
	return &Source{buf: make([]float64, samples)}
}

func (s *Source) Frame(frame int, fps float64) ([]float64, error) {
	var t float64
	if fps > 0 {
		t = float64(frame) / fps
	}

	var count = float64(len(s.buf))

	// pulse in [0.2, 1]
	var pulse = 0.6 + 0.4*math.Cos(2*math.Pi*Beat*t)

	for xBin := range s.buf {
		var pos = float64(xBin) / count
		var falloff = math.Exp(-4 * pos)
		var ripple = 0.5 + 0.5*math.Sin(2*math.Pi*(pos*6+t*0.5))

		s.buf[xBin] = falloff * (0.3*ripple + 0.7*pulse) * 0.5
	}

	return s.buf, nil
}

func (s *Source) Close() error {
	return nil
}
