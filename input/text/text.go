// Package text reads frequency frames from a plain text stream.
//
// Each line holds the magnitudes of one frame separated by whitespace. Empty
// lines and lines starting with '#' are skipped. When the session carries a
// decibel range the values are read as decibels and scaled to [0, 1].
package text

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/noriah/catwave/input"
	"github.com/pkg/errors"
)

func init() {
	input.RegisterBackend("text", Backend{})
}

// StdinPath selects standard input as the stream.
const StdinPath = "-"

type Backend struct{}

func (b Backend) Init() error {
	return nil
}

func (b Backend) Close() error {
	return nil
}

func (b Backend) Open(cfg input.SessionConfig) (input.Source, error) {
	if cfg.Path == "" || cfg.Path == StdinPath {
		return Read(os.Stdin, cfg)
	}

	path, err := homedir.Expand(cfg.Path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to expand path")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open frame file")
	}
	defer f.Close()

	return Read(f, cfg)
}

// Source holds every frame read from a stream.
type Source struct {
	frames [][]float64
	buf    []float64
}

// Read parses every frame from r. Frames are resized to cfg.Samples bins
// when it is positive.
func Read(r io.Reader, cfg input.SessionConfig) (*Source, error) {
	var src = &Source{}

	var scanner = bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)

	var xLine int

	for scanner.Scan() {
		xLine++

		var line = strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		var fields = strings.Fields(line)
		var values = make([]float64, len(fields))

		for idx, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", xLine)
			}

			if cfg.Decibels() {
				v = input.DecibelScale(v, cfg.MinDb, cfg.MaxDb)
			}

			values[idx] = v
		}

		if cfg.Samples > 0 && len(values) != cfg.Samples {
			values = resize(values, cfg.Samples)
		}

		src.frames = append(src.frames, values)
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read frames")
	}

	return src, nil
}

// Len returns the number of frames read.
func (s *Source) Len() int {
	return len(s.frames)
}

// Frame returns the stored frame. Frames past the end are silent.
func (s *Source) Frame(frame int, _ float64) ([]float64, error) {
	if frame >= 0 && frame < len(s.frames) {
		return s.frames[frame], nil
	}

	var size int
	if len(s.frames) > 0 {
		size = len(s.frames[0])
	}

	if cap(s.buf) < size {
		s.buf = make([]float64, size)
	}

	s.buf = s.buf[:size]
	for idx := range s.buf {
		s.buf[idx] = 0
	}

	return s.buf, nil
}

func (s *Source) Close() error {
	return nil
}

func resize(values []float64, size int) []float64 {
	var out = make([]float64, size)
	copy(out, values)
	return out
}
