// Package input provides per-frame frequency magnitudes.
//
// The magnitudes are produced elsewhere (audio decoding and analysis are not
// part of this module) and arrive already normalized to [0, 1].
package input

// Source hands out the frequency magnitudes for a frame.
type Source interface {
	// Frame returns the magnitudes for frame at fps. The returned slice must
	// not be kept past the next call.
	Frame(frame int, fps float64) ([]float64, error)
	Close() error
}

// SessionConfig is the configuration for opening a source.
type SessionConfig struct {
	Path    string  // where to read from, backend specific
	Samples int     // number of frequency bins per frame
	MinDb   float64 // bottom of the decibel range
	MaxDb   float64 // top of the decibel range
}

// Decibels reports whether values read for this session are decibels.
func (cfg SessionConfig) Decibels() bool {
	return cfg.MinDb < cfg.MaxDb
}

// DecibelScale maps a decibel value onto [0, 1] using the given range.
func DecibelScale(db, minDb, maxDb float64) float64 {
	if !(maxDb > minDb) {
		return 0
	}

	var v = (db - minDb) / (maxDb - minDb)

	switch {
	case v < 0 || v != v:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
