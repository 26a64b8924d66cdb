package input

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

type combined struct {
	samples int
	sources []Source
	buf     []float64
}

// Combine merges sources by keeping the loudest value of each bin. The
// result has samples bins; sources with fewer bins count as silent past
// their end.
func Combine(samples int, sources ...Source) Source {
	return &combined{
		samples: samples,
		sources: sources,
		buf:     make([]float64, samples),
	}
}

func (c *combined) Frame(frame int, fps float64) ([]float64, error) {
	for idx := range c.buf {
		c.buf[idx] = 0
	}

	for idx, src := range c.sources {
		values, err := src.Frame(frame, fps)
		if err != nil {
			return nil, errors.Wrapf(err, "source %d", idx)
		}

		for xBin, v := range values {
			if xBin >= len(c.buf) {
				break
			}

			if c.buf[xBin] < v {
				c.buf[xBin] = v
			}
		}
	}

	return c.buf, nil
}

func (c *combined) Close() error {
	var first error
	for _, src := range c.sources {
		if err := src.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

type smoothed struct {
	src Source
	buf []float64
}

// Smooth averages each frame with its neighbours. Frames before the first
// one are skipped rather than read as silence.
func Smooth(src Source) Source {
	return &smoothed{src: src}
}

func (s *smoothed) Frame(frame int, fps float64) ([]float64, error) {
	var count float64

	s.buf = s.buf[:0]

	for xFrame := frame - 1; xFrame <= frame+1; xFrame++ {
		if xFrame < 0 {
			continue
		}

		values, err := s.src.Frame(xFrame, fps)
		if err != nil {
			return nil, err
		}

		switch {
		case count == 0:
			s.buf = append(s.buf, values...)
		case len(values) == len(s.buf):
			floats.Add(s.buf, values)
		default:
			addPrefix(s.buf, values)
		}

		count++
	}

	if count > 0 {
		floats.Scale(1/count, s.buf)
	}

	return s.buf, nil
}

func (s *smoothed) Close() error {
	return s.src.Close()
}

// addPrefix adds the overlapping part of src to dst.
func addPrefix(dst, src []float64) {
	n := len(dst)
	if len(src) < n {
		n = len(src)
	}
	floats.Add(dst[:n], src[:n])
}
