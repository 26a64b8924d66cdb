package silence

import "github.com/noriah/catwave/input"

func init() {
	input.RegisterBackend("silence", Backend{})
}

// Backend produces flat spectra.
type Backend struct{}

func (b Backend) Init() error {
	return nil
}

func (b Backend) Close() error {
	return nil
}

func (b Backend) Open(cfg input.SessionConfig) (input.Source, error) {
	return &Source{buf: make([]float64, cfg.Samples)}, nil
}

// Source returns zeros for every frame.
type Source struct {
	buf []float64
}

func (s *Source) Frame(int, float64) ([]float64, error) {
	for idx := range s.buf {
		s.buf[idx] = 0
	}
	return s.buf, nil
}

func (s *Source) Close() error {
	return nil
}
