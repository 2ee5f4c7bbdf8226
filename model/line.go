package model

import "math"

// Orientation classifies a line segment by its angle.
type Orientation string

const (
	Horizontal Orientation = "H"
	Vertical   Orientation = "V"
	Diagonal   Orientation = "D"
)

// AngleTolerance is the maximum deviation in radians from 0°/180° (or 90°)
// for a segment to count as horizontal (or vertical).
const AngleTolerance = 0.1

// OrientationOf derives the orientation of the segment (x1,y1)-(x2,y2).
func OrientationOf(x1, y1, x2, y2 float64) Orientation {
	angle := math.Abs(math.Atan2(y2-y1, x2-x1))
	switch {
	case angle < AngleTolerance || math.Pi-angle < AngleTolerance:
		return Horizontal
	case math.Abs(angle-math.Pi/2) < AngleTolerance:
		return Vertical
	default:
		return Diagonal
	}
}

// Line is a straight segment in page space.
type Line struct {
	X1, Y1      float64
	X2, Y2      float64
	Length      float64
	Orientation Orientation
	StrokeWidth float64
}

// NewLine builds a Line from two page-space points, computing its length
// and orientation.
func NewLine(x1, y1, x2, y2, strokeWidth float64) Line {
	return Line{
		X1:          x1,
		Y1:          y1,
		X2:          x2,
		Y2:          y2,
		Length:      math.Hypot(x2-x1, y2-y1),
		Orientation: OrientationOf(x1, y1, x2, y2),
		StrokeWidth: strokeWidth,
	}
}

// Start returns the first endpoint.
func (l Line) Start() Point { return Point{X: l.X1, Y: l.Y1} }

// End returns the second endpoint.
func (l Line) End() Point { return Point{X: l.X2, Y: l.Y2} }

// Position returns the coordinate that places the line across its axis:
// the mean y for horizontal lines and the mean x otherwise.
func (l Line) Position() float64 {
	if l.Orientation == Horizontal {
		return (l.Y1 + l.Y2) / 2
	}
	return (l.X1 + l.X2) / 2
}

// MinAlong returns the smaller coordinate along the line's axis.
func (l Line) MinAlong() float64 {
	if l.Orientation == Horizontal {
		return math.Min(l.X1, l.X2)
	}
	return math.Min(l.Y1, l.Y2)
}

// MaxAlong returns the larger coordinate along the line's axis.
func (l Line) MaxAlong() float64 {
	if l.Orientation == Horizontal {
		return math.Max(l.X1, l.X2)
	}
	return math.Max(l.Y1, l.Y2)
}

// Bounds returns the bounding box of the segment.
func (l Line) Bounds() BBox {
	return NewBBoxFromPoints(l.Start(), l.End())
}

// PageGeometry is the classified line set of one page. Lines are sorted by
// descending length and must not be modified once the value is built.
type PageGeometry struct {
	Width  float64
	Height float64
	Lines  []Line
}

// Horizontal returns the horizontal lines in their stored order.
func (g PageGeometry) Horizontal() []Line {
	return g.filter(Horizontal)
}

// Vertical returns the vertical lines in their stored order.
func (g PageGeometry) Vertical() []Line {
	return g.filter(Vertical)
}

func (g PageGeometry) filter(o Orientation) []Line {
	var out []Line
	for _, l := range g.Lines {
		if l.Orientation == o {
			out = append(out, l)
		}
	}
	return out
}
