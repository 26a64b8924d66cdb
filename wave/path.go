package wave

import (
	"strconv"
	"strings"
)

// Vec is a position on the drawing surface.
type Vec struct {
	X float64
	Y float64
}

// SegmentOp is the kind of a path segment.
type SegmentOp int

// Segment operations
const (
	MoveTo SegmentOp = iota
	CubeTo
	LineTo
)

// Segment is one path element. MoveTo and LineTo use only Points[0].
// CubeTo holds both control points followed by the end point.
type Segment struct {
	Op     SegmentOp
	Points [3]Vec
}

// End returns the position the segment finishes at.
func (s Segment) End() Vec {
	if s.Op == CubeTo {
		return s.Points[2]
	}
	return s.Points[0]
}

// Path is an open stroked curve.
type Path struct {
	Segments []Segment
}

func (p *Path) moveTo(x, y float64) {
	p.Segments = append(p.Segments, Segment{
		Op:     MoveTo,
		Points: [3]Vec{{x, y}},
	})
}

func (p *Path) cubeTo(cx1, cy1, cx2, cy2, x, y float64) {
	p.Segments = append(p.Segments, Segment{
		Op:     CubeTo,
		Points: [3]Vec{{cx1, cy1}, {cx2, cy2}, {x, y}},
	})
}

func (p *Path) lineTo(x, y float64) {
	p.Segments = append(p.Segments, Segment{
		Op:     LineTo,
		Points: [3]Vec{{x, y}},
	})
}

// End returns the last position of the path, or the origin for an empty one.
func (p Path) End() Vec {
	if len(p.Segments) == 0 {
		return Vec{}
	}
	return p.Segments[len(p.Segments)-1].End()
}

// D returns the path as SVG path data.
func (p Path) D() string {
	var sb strings.Builder

	for xSeg, seg := range p.Segments {
		if xSeg > 0 {
			sb.WriteString(", ")
		}

		switch seg.Op {
		case MoveTo:
			sb.WriteString("M ")
			writeVec(&sb, seg.Points[0])

		case CubeTo:
			sb.WriteString("C ")
			writeVec(&sb, seg.Points[0])
			sb.WriteString(", ")
			writeVec(&sb, seg.Points[1])
			sb.WriteString(", ")
			writeVec(&sb, seg.Points[2])

		case LineTo:
			sb.WriteString("L ")
			writeVec(&sb, seg.Points[0])
		}
	}

	return sb.String()
}

func writeVec(sb *strings.Builder, v Vec) {
	sb.WriteString(strconv.FormatFloat(v.X, 'f', -1, 64))
	sb.WriteByte(' ')
	sb.WriteString(strconv.FormatFloat(v.Y, 'f', -1, 64))
}

// Flatten approximates the path with straight lines. Each cubic segment is
// split into steps pieces.
func (p Path) Flatten(steps int) []Vec {
	if steps < 1 {
		steps = 1
	}

	var out []Vec
	var pos Vec

	for _, seg := range p.Segments {
		switch seg.Op {
		case MoveTo, LineTo:
			pos = seg.Points[0]
			out = append(out, pos)

		case CubeTo:
			for xStep := 1; xStep <= steps; xStep++ {
				var t = float64(xStep) / float64(steps)
				out = append(out, cubicAt(pos, seg.Points[0], seg.Points[1], seg.Points[2], t))
			}
			pos = seg.Points[2]
		}
	}

	return out
}

func cubicAt(p0, p1, p2, p3 Vec, t float64) Vec {
	if t >= 1 {
		return p3
	}

	var mt = 1 - t
	var a = mt * mt * mt
	var b = 3 * mt * mt * t
	var c = 3 * mt * t * t
	var d = t * t * t

	return Vec{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}
