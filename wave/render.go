package wave

import (
	"errors"
	"fmt"
	"math"
)

// DefaultColor is used when a palette is empty.
const DefaultColor = "blue"

// Palette is an ordered list of CSS-like colors. Lines reuse the colors
// cyclically when there are more lines than colors.
type Palette []string

// At returns the color for line idx.
func (p Palette) At(idx int) string {
	if len(p) == 0 {
		return DefaultColor
	}

	idx %= len(p)
	if idx < 0 {
		idx += len(p)
	}

	return p[idx]
}

// Config holds the parameters of one wave visual.
type Config struct {
	// Width of the bounds in pixels
	Width float64
	// Height of the bounds in pixels
	Height float64
	// Sections is the number of samples per line
	Sections int
	// Lines is the number of wave lines
	Lines int
	// LineGap is the extra offset in pixels for each following line
	LineGap float64
	// LineColor is the color palette
	LineColor Palette
	// LineThickness is the stroke width
	LineThickness float64
	// TopRoundness is the roundness of wave peaks (0-1)
	TopRoundness float64
	// BottomRoundness is the roundness of wave valleys (0-1)
	BottomRoundness float64
	// Ease shapes the samples. nil means Cubic
	Ease EaseFunc
}

// NewZeroConfig returns a config with the default line settings. Bounds are
// left for the caller.
func NewZeroConfig() Config {
	return Config{
		Sections:        10,
		Lines:           1,
		LineGap:         20,
		LineColor:       Palette{DefaultColor},
		LineThickness:   2,
		TopRoundness:    0.4,
		BottomRoundness: 0.4,
	}
}

// Validate checks the config for values the renderer can not draw.
func (cfg *Config) Validate() error {
	switch {
	case !(cfg.Width > 0) || math.IsInf(cfg.Width, 0):
		return errors.New("width must be positive")

	case !(cfg.Height > 0) || math.IsInf(cfg.Height, 0):
		return errors.New("height must be positive")

	case cfg.Sections < 1:
		return errors.New("too few sections (1 min)")

	case cfg.Lines < 0:
		return errors.New("line count can not be negative")

	case cfg.LineThickness < 0:
		return errors.New("line thickness can not be negative")
	}

	if err := checkRoundness("top", cfg.TopRoundness); err != nil {
		return err
	}

	return checkRoundness("bottom", cfg.BottomRoundness)
}

func checkRoundness(name string, v float64) error {
	if v < 0 || v > 1 || math.IsNaN(v) {
		return fmt.Errorf("%s roundness out of range [0, 1]: %v", name, v)
	}
	return nil
}

// Line is one rendered wave line.
type Line struct {
	Index     int
	Color     string
	Thickness float64
	Points    []Point
	Path      Path
}

// Frame is every line of one wave visual for one animation frame.
type Frame struct {
	Width  float64
	Height float64
	Lines  []Line
}

// LineOffsets returns the pixel offset of every line. The base offset is
// reduced to one sample pair so scrolling repeats.
func LineOffsets(cfg Config, offsetPixels float64) []float64 {
	if cfg.Lines <= 0 || cfg.Sections <= 0 {
		return nil
	}

	var off = math.Mod(offsetPixels, (2*cfg.Width)/float64(cfg.Sections))

	var offsets = make([]float64, cfg.Lines)
	for xLine := range offsets {
		offsets[xLine] = float64(xLine)*cfg.LineGap + off
	}

	return offsets
}

// Render draws every line of the wave for the given offset and amplitude.
// An invalid config renders an empty frame.
func Render(cfg Config, offsetPixels, amplitude float64) Frame {
	if cfg.Validate() != nil {
		return Frame{}
	}

	var frame = Frame{
		Width:  cfg.Width,
		Height: cfg.Height,
		Lines:  make([]Line, 0, cfg.Lines),
	}

	var sectionWidth = cfg.Width / float64(cfg.Sections)
	var topDist = cfg.TopRoundness * sectionWidth
	var bottomDist = cfg.BottomRoundness * sectionWidth

	for xLine, off := range LineOffsets(cfg, offsetPixels) {
		var points = SampleEased(LineSpec{
			Points:       cfg.Sections,
			Amplitude:    amplitude,
			OffsetPixels: off,
			Width:        cfg.Width,
		}, cfg.Ease)

		frame.Lines = append(frame.Lines, Line{
			Index:     xLine,
			Color:     cfg.LineColor.At(xLine),
			Thickness: cfg.LineThickness,
			Points:    points,
			Path:      BuildPath(points, cfg.Width, topDist, bottomDist),
		})
	}

	return frame
}

// BuildPath joins points with cubic curves, starting at the origin and
// finishing at (width, 0). topDist and bottomDist are the control point
// distances for peaks and valleys.
func BuildPath(points []Point, width, topDist, bottomDist float64) Path {
	var path = Path{Segments: make([]Segment, 0, len(points)+2)}

	path.moveTo(0, 0)

	var prev Point

	for _, p := range points {
		var currDist, prevDist = bottomDist, topDist

		if p.Y < 0 {
			currDist, prevDist = topDist, bottomDist
		}

		path.cubeTo(
			float64(prev.X)+prevDist, float64(prev.Y),
			float64(p.X)-currDist, float64(p.Y),
			float64(p.X), float64(p.Y),
		)

		prev = p
	}

	path.lineTo(width, 0)

	return path
}
