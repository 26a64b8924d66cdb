// Package wave generates the geometry of audio reactive wave lines.
//
// A line is described by a LineSpec. Sample turns it into points that
// alternate above and below the center line, and BuildPath joins those points
// with cubic curves. Everything is recomputed for every frame.
package wave

import (
	"math"
	"sort"
)

// Point is a sample position in pixels. Y is relative to the center line,
// negative values are above it.
type Point struct {
	X int
	Y int
}

// LineSpec fully describes the points of one line for one frame.
type LineSpec struct {
	Points       int     // number of samples
	Amplitude    float64 // peak height in pixels
	OffsetPixels float64 // horizontal shift of the sampling grid
	Width        float64 // bounding width in pixels
}

// Sample returns the points of a line using the default easing.
func Sample(spec LineSpec) []Point {
	return SampleEased(spec, Cubic())
}

// SampleEased returns spec.Points points sorted by X. It returns nil when the
// spec has no points or no width.
func SampleEased(spec LineSpec, ease EaseFunc) []Point {
	if spec.Points <= 0 || !(spec.Width > 0) || math.IsInf(spec.Width, 0) {
		return nil
	}

	if ease == nil {
		ease = Cubic()
	}

	var count = float64(spec.Points)
	var step = 1.0 / count
	var stepOffset = spec.OffsetPixels / spec.Width

	var points = make([]Point, spec.Points)

	for xPoint := range points {
		var fraction = math.Mod(float64(xPoint)+0.5, count)*step - stepOffset

		var x = (fraction - math.Floor(fraction)) * spec.Width

		var y = ease(math.Sin(fraction * math.Pi))
		y *= spec.Amplitude
		// every other point above/below center
		y *= parity(xPoint)

		points[xPoint] = Point{X: round(x), Y: round(y)}
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].X < points[j].X
	})

	return points
}

// parity is +1 for even indexes and -1 for odd ones.
func parity(idx int) float64 {
	if idx%2 == 0 {
		return 1
	}
	return -1
}

// round rounds halves toward positive infinity.
func round(v float64) int {
	return int(math.Floor(v + 0.5))
}
